package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

const (
	instantLayout  = "Jan 02, 2006 3:04 PM"
	gameDateLayout = "Jan 02"
	gameTimeLayout = "3:04 PM"

	// TBD is shown for schedule events without a usable date.
	TBD = "TBD"
)

// offset-bearing layouts, tried first.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
}

// layouts without an offset; parsed as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseInstant parses an ISO-8601 timestamp. A trailing "Z" means UTC and a
// missing offset is assumed to be UTC.
func ParseInstant(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatInstant renders raw as "Jan 02, 2006 3:04 PM MST" in loc (process local when nil).
// The zone abbreviation is dropped when the zone has no name. Unparseable input is returned unchanged.
func FormatInstant(raw string, loc *time.Location) string {
	t, ok := ParseInstant(raw)
	if !ok {
		return raw
	}
	return formatInLocation(t, loc)
}

// FormatGameDate renders a schedule date as "Jan 02" or "Jan 02 / 3:04 PM".
func FormatGameDate(raw string, loc *time.Location, showTime bool) string {
	t, ok := ParseInstant(raw)
	if !ok {
		return TBD
	}
	local := t.In(resolve(loc))
	if !showTime {
		return local.Format(gameDateLayout)
	}
	return local.Format(gameDateLayout) + " / " + local.Format(gameTimeLayout)
}

// FormatUpdated renders an ISO timestamp or epoch seconds/milliseconds like FormatInstant.
// It returns "" when raw cannot be interpreted.
func FormatUpdated(raw string, loc *time.Location) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if isDigits(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return ""
		}
		var t time.Time
		if len(s) >= 12 {
			t = time.UnixMilli(n)
		} else {
			t = time.Unix(n, 0)
		}
		return formatInLocation(t, loc)
	}
	t, ok := ParseInstant(s)
	if !ok {
		return ""
	}
	return formatInLocation(t, loc)
}

func formatInLocation(t time.Time, loc *time.Location) string {
	local := t.In(resolve(loc))
	out := local.Format(instantLayout)
	if abbr, _ := local.Zone(); abbr != "" && !strings.HasPrefix(abbr, "+") && !strings.HasPrefix(abbr, "-") {
		out += " " + abbr
	}
	return out
}

func resolve(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// LoadLocation resolves an IANA zone name. "local" selects the process zone;
// empty or unknown names yield nil so callers can apply their own default.
func LoadLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil
	case strings.EqualFold(name, "local"):
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil
	}
	return loc
}
