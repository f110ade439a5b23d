package schedule

import "time"

const (
	SiteHome    = "Home"
	SiteAway    = "Away"
	SiteNeutral = "Neutral"

	ResultWin  = "win"
	ResultLoss = "lose"
	ResultTie  = "tie"
)

// Game is one schedule event seen from the tracked team's side.
type Game struct {
	EventID string
	// RawDate is the event's unformatted date; Date is valid only when HasDate.
	RawDate string
	Date    time.Time
	HasDate bool

	Site      string
	Completed bool

	MyScore       int
	OpponentScore int
	HasScores     bool

	Result      string
	ResultClass string

	OpponentID   string
	OpponentTeam map[string]any
}

// Row is one display-ready schedule line.
type Row struct {
	Date        string `json:"date"`
	Site        string `json:"site"`
	OppRank     *int   `json:"opp_rank"`
	Logo        string `json:"logo"`
	OppSchool   string `json:"opp_school"`
	OppNickname string `json:"opp_nickname"`
	OppRecord   string `json:"opp_record"`
	Result      string `json:"result"`
	ResultClass string `json:"result_class"`
}

// Record is a win-loss-tie tally.
type Record struct {
	Wins   int
	Losses int
	Ties   int
}

// String renders "W-L", or "W-L-T" when any tie exists.
func (r Record) String() string {
	if r.Ties > 0 {
		return itoa(r.Wins) + "-" + itoa(r.Losses) + "-" + itoa(r.Ties)
	}
	return itoa(r.Wins) + "-" + itoa(r.Losses)
}
