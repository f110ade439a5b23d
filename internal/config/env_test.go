package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{" TRUE ", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"No", false},
		{"0", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %q, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestNonNegativeIntEnvAcceptsZero(t *testing.T) {
	cases := map[string]int{
		"":    30,
		"0":   0,
		" 45": 45,
		"-1":  30,
		"abc": 30,
	}
	for raw, want := range cases {
		t.Setenv("CACHE_TEST", raw)
		if got := nonNegativeIntEnvOrDefault("CACHE_TEST", 30); got != want {
			t.Fatalf("expected %d for %q, got %d", want, raw, got)
		}
	}
}

func TestDurationEnvRejectsNonPositive(t *testing.T) {
	cases := map[string]time.Duration{
		"":      time.Minute,
		"90s":   90 * time.Second,
		"0s":    time.Minute,
		"-5m":   time.Minute,
		"bogus": time.Minute,
	}
	for raw, want := range cases {
		t.Setenv("DUR_TEST", raw)
		if got := durationEnvOrDefault("DUR_TEST", time.Minute); got != want {
			t.Fatalf("expected %s for %q, got %s", want, raw, got)
		}
	}
}

func TestListEnvTrimsAndDropsEmpty(t *testing.T) {
	t.Setenv("LIST_TEST", " https://a.example , ,https://b.example")
	got := listEnvOrDefault("LIST_TEST", "*")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("expected two trimmed origins, got %v", got)
	}

	t.Setenv("LIST_TEST", "")
	if got := listEnvOrDefault("LIST_TEST", "*"); len(got) != 1 || got[0] != "*" {
		t.Fatalf("expected default list, got %v", got)
	}
}
