package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestParseInstantShapes(t *testing.T) {
	want := time.Date(2024, 10, 20, 7, 0, 0, 0, time.UTC)
	cases := []string{
		"2024-10-20T07:00Z",
		"2024-10-20T07:00:00Z",
		"2024-10-20T07:00:00.000Z",
		"2024-10-20T03:00:00-04:00",
		"2024-10-20T07:00:00",
		"2024-10-20T07:00",
		"2024-10-20 07:00:00",
	}
	for _, raw := range cases {
		got, ok := ParseInstant(raw)
		if !ok {
			t.Fatalf("expected %q to parse", raw)
		}
		if !got.Equal(want) {
			t.Fatalf("expected %s for %q, got %s", want, raw, got)
		}
	}
	if _, ok := ParseInstant("not-a-date"); ok {
		t.Fatalf("expected malformed input to fail")
	}
	if _, ok := ParseInstant(""); ok {
		t.Fatalf("expected empty input to fail")
	}
}

func TestFormatInstantInZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	if got := FormatInstant("2024-10-20T17:05:00Z", ny); got != "Oct 20, 2024 1:05 PM EDT" {
		t.Fatalf("unexpected formatted instant %q", got)
	}
	if got := FormatInstant("2024-12-01T05:30Z", ny); got != "Dec 01, 2024 12:30 AM EST" {
		t.Fatalf("unexpected formatted instant %q", got)
	}
}

func TestFormatInstantOmitsNumericZone(t *testing.T) {
	zone := time.FixedZone("", -5*60*60)
	if got := FormatInstant("2024-10-20T17:05:00Z", zone); got != "Oct 20, 2024 12:05 PM" {
		t.Fatalf("expected no zone suffix, got %q", got)
	}
}

func TestFormatInstantReturnsRawOnFailure(t *testing.T) {
	if got := FormatInstant("not-a-date", time.UTC); got != "not-a-date" {
		t.Fatalf("expected raw input back, got %q", got)
	}
}

func TestFormatGameDate(t *testing.T) {
	if got := FormatGameDate("2024-09-07T23:30Z", time.UTC, true); got != "Sep 07 / 11:30 PM" {
		t.Fatalf("unexpected game date with time %q", got)
	}
	if got := FormatGameDate("2024-09-07T23:30Z", time.UTC, false); got != "Sep 07" {
		t.Fatalf("unexpected game date without time %q", got)
	}
	if got := FormatGameDate("", time.UTC, true); got != TBD {
		t.Fatalf("expected TBD for empty date, got %q", got)
	}
	if got := FormatGameDate("soon", time.UTC, true); got != TBD {
		t.Fatalf("expected TBD for malformed date, got %q", got)
	}
}

func TestFormatUpdatedEpochAndISO(t *testing.T) {
	utc := time.UTC
	if got := FormatUpdated("1729407600", utc); got != "Oct 20, 2024 7:00 AM UTC" {
		t.Fatalf("unexpected epoch seconds format %q", got)
	}
	if got := FormatUpdated("1729407600000", utc); got != "Oct 20, 2024 7:00 AM UTC" {
		t.Fatalf("unexpected epoch millis format %q", got)
	}
	if got := FormatUpdated("2024-10-20T07:00Z", utc); got != "Oct 20, 2024 7:00 AM UTC" {
		t.Fatalf("unexpected iso format %q", got)
	}
	if got := FormatUpdated("garbage", utc); got != "" {
		t.Fatalf("expected empty for garbage, got %q", got)
	}
}

func TestLoadLocation(t *testing.T) {
	if loc := LoadLocation(" America/Chicago "); loc == nil || loc.String() != "America/Chicago" {
		t.Fatalf("expected America/Chicago, got %v", loc)
	}
	if loc := LoadLocation("LOCAL"); loc != time.Local {
		t.Fatalf("expected process local zone, got %v", loc)
	}
	for _, name := range []string{"", "Not/AZone"} {
		if loc := LoadLocation(name); loc != nil {
			t.Fatalf("expected nil for %q, got %v", name, loc)
		}
	}
}
