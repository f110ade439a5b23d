package rankings

import (
	"strings"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/timeutil"
)

// PollKind classifies a ranking poll.
type PollKind string

const (
	KindAP      PollKind = "AP"
	KindCoaches PollKind = "COACHES"
	KindCFP     PollKind = "CFP"
	KindUnknown PollKind = "UNKNOWN"
)

// Priority breaks timestamp ties during automatic selection.
func (k PollKind) Priority() int {
	switch k {
	case KindCFP:
		return 3
	case KindAP:
		return 2
	case KindCoaches:
		return 1
	default:
		return 0
	}
}

// Known reports whether k is one of the three named polls.
func (k PollKind) Known() bool {
	return k.Priority() > 0
}

// Choice is the user's requested poll.
type Choice string

const (
	ChoiceAuto    Choice = "auto"
	ChoiceAP      Choice = "ap"
	ChoiceCoaches Choice = "coaches"
	ChoiceCFP     Choice = "cfp"
)

// ParseChoice normalizes a settings value; anything unrecognized is auto.
func ParseChoice(raw string) Choice {
	switch Choice(strings.ToLower(strings.TrimSpace(raw))) {
	case ChoiceAP:
		return ChoiceAP
	case ChoiceCoaches:
		return ChoiceCoaches
	case ChoiceCFP:
		return ChoiceCFP
	default:
		return ChoiceAuto
	}
}

// Kind maps a specific choice to the poll kind it selects. Auto maps to KindUnknown.
func (c Choice) Kind() PollKind {
	switch c {
	case ChoiceAP:
		return KindAP
	case ChoiceCoaches:
		return KindCoaches
	case ChoiceCFP:
		return KindCFP
	default:
		return KindUnknown
	}
}

// Poll is one ranking poll extracted from an upstream document.
type Poll struct {
	Kind      PollKind
	Name      string
	ShortName string
	// RawDate is the first present date field, kept verbatim for display.
	RawDate string
	// Timestamp is the parsed RawDate, or the Unix epoch when absent or unparseable.
	Timestamp time.Time
	Raw       map[string]any
}

var pollDateKeys = []string{"date", "lastUpdated", "lastUpdate", "updated", "updateDate"}

var epoch = time.Unix(0, 0).UTC()

// NewPoll classifies and timestamps a raw poll object.
func NewPoll(raw map[string]any) Poll {
	p := Poll{
		Kind:      Classify(raw),
		Name:      jsonshape.String(raw, "name"),
		ShortName: jsonshape.String(raw, "shortName"),
		Timestamp: epoch,
		Raw:       raw,
	}
	if v, ok := jsonshape.FirstPresent(raw, pollDateKeys...); ok {
		p.RawDate = jsonshape.Text(v)
		if ts, ok := timeutil.ParseInstant(p.RawDate); ok {
			p.Timestamp = ts
		}
	}
	return p
}

// Label is the display name of the poll: name, then shortName.
func (p Poll) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ShortName
}

// ShortLabel prefers the short name, used where space is tight.
func (p Poll) ShortLabel() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	return p.Name
}

// Entries returns the poll's rank entries in document order.
func (p Poll) Entries() []map[string]any {
	return ExtractRankEntries(p.Raw)
}

var (
	cfpKeywords     = []string{"playoff", "cfp", "selection committee"}
	coachesKeywords = []string{"coaches", "afca"}
)

// Classify labels a raw poll object. An explicit type token wins; otherwise keywords are
// matched against the lowercased name, short name, abbreviation and headline.
func Classify(raw map[string]any) PollKind {
	switch strings.ToLower(jsonshape.String(raw, "type")) {
	case "ap":
		return KindAP
	case "coaches":
		return KindCoaches
	case "cfp":
		return KindCFP
	}

	short := strings.ToLower(jsonshape.String(raw, "shortName"))
	blob := strings.ToLower(strings.Join([]string{
		jsonshape.String(raw, "name"),
		jsonshape.String(raw, "shortName"),
		jsonshape.String(raw, "abbreviation"),
		jsonshape.String(raw, "headline"),
	}, " "))

	if containsAny(blob, cfpKeywords) {
		return KindCFP
	}
	// "AFCA Coaches Poll" also contains "poll", so coaches is checked before AP.
	if containsAny(blob, coachesKeywords) {
		return KindCoaches
	}
	if (strings.Contains(blob, "ap") && strings.Contains(blob, "poll")) || short == "ap" {
		return KindAP
	}
	return KindUnknown
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
