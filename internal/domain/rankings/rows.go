package rankings

import (
	"strconv"

	"github.com/preston-bernstein/cfb-display-service/internal/domain/teams"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

const (
	// MaxTopN is the most entries a poll publishes.
	MaxTopN = 25
	// NoRank is displayed for entries without a rank.
	NoRank = "--"

	MovementUp   = "up"
	MovementDown = "down"
)

// Row is one display-ready ranking line.
type Row struct {
	Rank          string `json:"rank"`
	School        string `json:"school"`
	Nickname      string `json:"nickname"`
	Logo          string `json:"logo"`
	Record        string `json:"record"`
	Movement      string `json:"movement,omitempty"`
	MovementDelta int    `json:"movement_delta,omitempty"`
}

// RowOptions controls which columns are populated.
type RowOptions struct {
	TopN         int
	ShowRecord   bool
	ShowMovement bool
}

var (
	rankKeys     = []string{"current", "rank", "position", "ranking"}
	previousKeys = []string{"previous", "previousRank", "lastRank"}
)

// ClampTopN bounds n to [1, MaxTopN].
func ClampTopN(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxTopN {
		return MaxTopN
	}
	return n
}

// BuildRows projects the first TopN entries into rows.
func BuildRows(entries []map[string]any, opts RowOptions) []Row {
	n := ClampTopN(opts.TopN)
	if n > len(entries) {
		n = len(entries)
	}
	rows := make([]Row, 0, n)
	for _, entry := range entries[:n] {
		rows = append(rows, buildRow(entry, opts))
	}
	return rows
}

func buildRow(entry map[string]any, opts RowOptions) Row {
	team := teams.FromEntry(entry)
	school := teams.School(team, nil)
	row := Row{
		Rank:     rankText(entry),
		School:   school,
		Nickname: teams.Nickname(team, school),
		Logo:     teams.BestLogo(team),
	}
	if opts.ShowRecord {
		row.Record = recordText(entry)
	}
	if opts.ShowMovement {
		row.Movement, row.MovementDelta = movement(entry)
	}
	return row
}

func rankText(entry map[string]any) string {
	v, ok := jsonshape.FirstPresent(entry, rankKeys...)
	if !ok {
		return NoRank
	}
	if n, ok := jsonshape.Int(v); ok {
		return strconv.Itoa(n)
	}
	if s := jsonshape.Text(v); s != "" {
		return s
	}
	return NoRank
}

func recordText(entry map[string]any) string {
	if s := jsonshape.String(entry, "recordSummary"); s != "" {
		return s
	}
	switch rec := entry["record"].(type) {
	case map[string]any:
		return jsonshape.FirstString(rec, "summary", "displayValue")
	default:
		return jsonshape.Text(rec)
	}
}

// movement compares current and previous rank. A previous rank of zero or less means
// the team was unranked last week and no movement is shown.
func movement(entry map[string]any) (string, int) {
	cv, ok := jsonshape.FirstPresent(entry, rankKeys...)
	if !ok {
		return "", 0
	}
	current, ok := jsonshape.Int(cv)
	if !ok {
		return "", 0
	}
	pv, ok := jsonshape.FirstPresent(entry, previousKeys...)
	if !ok {
		return "", 0
	}
	previous, ok := jsonshape.Int(pv)
	if !ok || previous <= 0 || previous == current {
		return "", 0
	}
	if current < previous {
		return MovementUp, previous - current
	}
	return MovementDown, current - previous
}
