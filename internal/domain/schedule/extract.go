package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/domain/teams"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/timeutil"
)

var finalStatusKeys = []string{"name", "detail", "shortDetail", "description"}

// Events returns the event objects of a schedule document.
func Events(doc jsonshape.Document) []map[string]any {
	return jsonshape.Objects(doc["events"])
}

// HasEvents reports whether doc carries a non-empty events list.
func HasEvents(doc jsonshape.Document) bool {
	return len(jsonshape.List(doc["events"])) > 0
}

// Competition returns the first competition of an event, or the event itself when absent.
func Competition(event map[string]any) map[string]any {
	if comps := jsonshape.Objects(event["competitions"]); len(comps) > 0 {
		return comps[0]
	}
	return event
}

// FindSides splits a competition's competitors into the tracked team and its opponent.
func FindSides(comp map[string]any, teamID string) (mine, theirs map[string]any, ok bool) {
	for _, c := range jsonshape.Objects(comp["competitors"]) {
		if teams.ID(jsonshape.Child(c, "team")) == teamID {
			mine = c
		} else {
			theirs = c
		}
	}
	return mine, theirs, mine != nil && theirs != nil
}

// Site reports where the game is played from the tracked team's perspective.
func Site(comp, mine map[string]any) string {
	if neutral, _ := jsonshape.Bool(comp["neutralSite"]); neutral {
		return SiteNeutral
	}
	switch strings.ToLower(jsonshape.String(mine, "homeAway")) {
	case "home":
		return SiteHome
	case "away":
		return SiteAway
	}
	return ""
}

// IsFinal inspects the competition status for a completed game.
func IsFinal(comp map[string]any) bool {
	if comp == nil {
		return false
	}
	if st := jsonshape.Child(jsonshape.Child(comp, "status"), "type"); st != nil {
		if done, _ := jsonshape.Bool(st["completed"]); done {
			return true
		}
		if strings.EqualFold(jsonshape.String(st, "state"), "post") {
			return true
		}
		for _, key := range finalStatusKeys {
			v := strings.ToUpper(jsonshape.String(st, key))
			if strings.HasPrefix(v, "FINAL") || strings.HasPrefix(v, "STATUS_FINAL") {
				return true
			}
		}
	}
	switch strings.ToLower(jsonshape.String(comp, "status")) {
	case "final", "post":
		return true
	}
	return false
}

// hasWinnerFlag reports a boolean winner flag on either side.
func hasWinnerFlag(mine, theirs map[string]any) bool {
	_, a := jsonshape.Bool(mine["winner"])
	_, b := jsonshape.Bool(theirs["winner"])
	return a || b
}

// Completed is true when the status says so or either side carries a winner flag.
func Completed(comp, mine, theirs map[string]any) bool {
	return IsFinal(comp) || hasWinnerFlag(mine, theirs)
}

// Result formats "W 31-17" style outcomes. It is empty unless completed and both scores parse.
func Result(mine, theirs int, completed, hasScores bool) (string, string) {
	if !completed || !hasScores {
		return "", ""
	}
	score := fmt.Sprintf("%d-%d", mine, theirs)
	switch {
	case mine > theirs:
		return "W " + score, ResultWin
	case mine < theirs:
		return "L " + score, ResultLoss
	default:
		return "T " + score, ResultTie
	}
}

// Extract lists the tracked team's games in document order, skipping events where
// either side cannot be identified.
func Extract(doc jsonshape.Document, teamID string) []Game {
	events := Events(doc)
	games := make([]Game, 0, len(events))
	for _, event := range events {
		comp := Competition(event)
		mine, theirs, ok := FindSides(comp, teamID)
		if !ok {
			continue
		}

		g := Game{
			EventID:      jsonshape.String(event, "id"),
			RawDate:      jsonshape.String(event, "date"),
			Site:         Site(comp, mine),
			Completed:    Completed(comp, mine, theirs),
			OpponentTeam: jsonshape.Child(theirs, "team"),
		}
		if g.OpponentTeam == nil {
			g.OpponentTeam = map[string]any{}
		}
		g.OpponentID = teams.ID(g.OpponentTeam)
		g.Date, g.HasDate = timeutil.ParseInstant(g.RawDate)

		myScore, okMine := jsonshape.Int(mine["score"])
		theirScore, okTheirs := jsonshape.Int(theirs["score"])
		if okMine && okTheirs {
			g.MyScore, g.OpponentScore, g.HasScores = myScore, theirScore, true
		}
		g.Result, g.ResultClass = Result(g.MyScore, g.OpponentScore, g.Completed, g.HasScores)

		games = append(games, g)
	}
	return games
}

// PregameRecord folds teamID's completed games strictly before cutoff into a record.
// Scores decide the outcome when both are present; otherwise the team's winner flag does.
func PregameRecord(doc jsonshape.Document, teamID string, cutoff time.Time) Record {
	var rec Record
	for _, event := range Events(doc) {
		date, ok := timeutil.ParseInstant(jsonshape.String(event, "date"))
		if !ok || !date.Before(cutoff) {
			continue
		}
		comp := Competition(event)
		mine, theirs, ok := FindSides(comp, teamID)
		if !ok || !Completed(comp, mine, theirs) {
			continue
		}

		myScore, okMine := jsonshape.Int(mine["score"])
		theirScore, okTheirs := jsonshape.Int(theirs["score"])
		if okMine && okTheirs {
			switch {
			case myScore > theirScore:
				rec.Wins++
			case myScore < theirScore:
				rec.Losses++
			default:
				rec.Ties++
			}
			continue
		}
		if won, ok := jsonshape.Bool(mine["winner"]); ok {
			if won {
				rec.Wins++
			} else {
				rec.Losses++
			}
		}
	}
	return rec
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
