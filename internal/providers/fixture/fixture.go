package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
)

// Provider returns deterministic ESPN-shaped documents useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewWithClock creates a fixture provider whose dates are anchored on the given clock.
func NewWithClock(now func() time.Time) *Provider {
	if now == nil {
		now = time.Now
	}
	return &Provider{now: now}
}

// Name reports the provider label.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchDocument routes by URL path the same way the ESPN endpoints are laid out.
func (p *Provider) FetchDocument(ctx context.Context, raw string) (jsonshape.Document, error) {
	_ = ctx
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &providers.FetchError{URL: raw, Err: err}
	}

	path := strings.TrimSuffix(u.Path, "/")
	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	switch {
	case last == "rankings" && u.Query().Get("type") == "2":
		return decode(raw, cfpRankingsJSON)
	case last == "rankings":
		return decode(raw, rankingsJSON)
	case last == "schedule" && len(segments) >= 3 && segments[len(segments)-3] == "teams":
		return p.schedule(segments[len(segments)-2]), nil
	case len(segments) >= 2 && segments[len(segments)-2] == "teams":
		return team(last), nil
	case last == "college-football":
		return jsonshape.Document{"season": map[string]any{"year": float64(p.season())}}, nil
	}
	return nil, &providers.FetchError{URL: raw, StatusCode: 404, Err: fmt.Errorf("fixture: no document for %s", path)}
}

func (p *Provider) season() int {
	now := p.now().UTC()
	if now.Month() < time.March {
		return now.Year() - 1
	}
	return now.Year()
}

// schedule builds a four-game season: two completed, two upcoming relative to the clock.
func (p *Provider) schedule(teamID string) jsonshape.Document {
	now := p.now().UTC().Truncate(time.Hour)
	opponents := []string{"245", "2459", "2509", "30"}
	if teamID != "87" {
		opponents = []string{"87", "2", "9", "12"}
	}

	events := make([]any, 0, len(opponents))
	for i, opp := range opponents {
		date := now.AddDate(0, 0, (i-2)*7)
		mine := map[string]any{
			"homeAway": homeAway(i),
			"team":     team(teamID)["team"],
		}
		theirs := map[string]any{
			"homeAway": homeAway(i + 1),
			"team":     team(opp)["team"],
		}
		status := map[string]any{"type": map[string]any{"completed": false, "state": "pre", "name": "STATUS_SCHEDULED"}}
		if i < 2 {
			mine["score"] = map[string]any{"value": float64(24 + i*7), "displayValue": fmt.Sprint(24 + i*7)}
			theirs["score"] = map[string]any{"value": float64(17 + i*14), "displayValue": fmt.Sprint(17 + i*14)}
			status = map[string]any{"type": map[string]any{"completed": true, "state": "post", "name": "STATUS_FINAL"}}
		}
		events = append(events, map[string]any{
			"id":   fmt.Sprintf("fixture-%s-%d", teamID, i+1),
			"date": date.Format("2006-01-02T15:04Z"),
			"competitions": []any{map[string]any{
				"neutralSite": i == 3,
				"status":      status,
				"competitors": []any{mine, theirs},
			}},
		})
	}

	return jsonshape.Document{
		"timestamp": now.Format(time.RFC3339),
		"season":    map[string]any{"year": float64(p.season())},
		"team":      team(teamID)["team"],
		"events":    events,
	}
}

func homeAway(i int) string {
	if i%2 == 0 {
		return "home"
	}
	return "away"
}

var teams = map[string][4]string{
	"87":   {"Notre Dame", "Fighting Irish", "ND", "https://a.espncdn.com/i/teamlogos/ncaa/500/87.png"},
	"245":  {"Texas A&M", "Aggies", "TA&M", "https://a.espncdn.com/i/teamlogos/ncaa/500/245.png"},
	"2459": {"Northern Illinois", "Huskies", "NIU", "https://a.espncdn.com/i/teamlogos/ncaa/500/2459.png"},
	"2509": {"Purdue", "Boilermakers", "PUR", "https://a.espncdn.com/i/teamlogos/ncaa/500/2509.png"},
	"30":   {"USC", "Trojans", "USC", "https://a.espncdn.com/i/teamlogos/ncaa/500/30.png"},
	"2":    {"Auburn", "Tigers", "AUB", "https://a.espncdn.com/i/teamlogos/ncaa/500/2.png"},
	"9":    {"Arizona State", "Sun Devils", "ASU", "https://a.espncdn.com/i/teamlogos/ncaa/500/9.png"},
	"12":   {"Arizona", "Wildcats", "ARIZ", "https://a.espncdn.com/i/teamlogos/ncaa/500/12.png"},
}

func team(id string) jsonshape.Document {
	info, ok := teams[id]
	if !ok {
		info = [4]string{"Team " + id, "", id, ""}
	}
	t := map[string]any{
		"id":               id,
		"location":         info[0],
		"shortDisplayName": info[0],
		"displayName":      strings.TrimSpace(info[0] + " " + info[1]),
		"name":             info[1],
		"abbreviation":     info[2],
	}
	if info[3] != "" {
		t["logos"] = []any{map[string]any{"href": info[3], "width": float64(500), "height": float64(500), "rel": []any{"full", "default"}}}
	}
	return jsonshape.Document{"team": t}
}

func decode(raw, body string) (jsonshape.Document, error) {
	var doc jsonshape.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, &providers.FetchError{URL: raw, Err: err}
	}
	return doc, nil
}

const rankingsJSON = `{
  "season": {"year": 2024},
  "week": {"number": 9},
  "rankings": [
    {
      "name": "AP Top 25",
      "shortName": "AP Poll",
      "type": "ap",
      "date": "2024-10-20T07:00Z",
      "ranks": [
        {"current": 1, "previous": 1, "recordSummary": "7-0", "team": {"id": "2633", "location": "Tennessee", "name": "Volunteers", "logos": [{"href": "https://a.espncdn.com/i/teamlogos/ncaa/500/2633.png", "rel": ["full", "default"], "width": 500, "height": 500}]}},
        {"current": 2, "previous": 3, "recordSummary": "7-0", "team": {"id": "2", "location": "Auburn", "name": "Tigers"}},
        {"current": 3, "previous": 2, "recordSummary": "6-1", "team": {"id": "9", "location": "Arizona State", "name": "Sun Devils"}},
        {"current": 4, "previous": 4, "recordSummary": "6-1", "team": {"id": "245", "location": "Texas A&M", "name": "Aggies"}},
        {"current": 5, "previous": 8, "recordSummary": "6-1", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish", "logos": [{"href": "https://a.espncdn.com/i/teamlogos/ncaa/500/87.png", "rel": ["full", "default"], "width": 500, "height": 500}]}}
      ]
    },
    {
      "name": "AFCA Coaches Poll",
      "shortName": "Coaches Poll",
      "type": "usa",
      "date": "2024-10-20T07:00Z",
      "ranks": [
        {"current": 1, "previous": 2, "recordSummary": "7-0", "team": {"id": "2", "location": "Auburn", "name": "Tigers"}},
        {"current": 2, "previous": 1, "recordSummary": "7-0", "team": {"id": "2633", "location": "Tennessee", "name": "Volunteers"}},
        {"current": 3, "recordSummary": "6-1", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}}
      ]
    }
  ]
}`

const cfpRankingsJSON = `{
  "season": {"year": 2024},
  "rankings": [
    {
      "name": "College Football Playoff Selection Committee Rankings",
      "shortName": "CFP Rankings",
      "type": "cfp",
      "date": "2024-11-05T23:00Z",
      "ranks": [
        {"current": 1, "recordSummary": "9-0", "team": {"id": "2", "location": "Auburn", "name": "Tigers"}},
        {"current": 2, "recordSummary": "8-1", "team": {"id": "2633", "location": "Tennessee", "name": "Volunteers"}},
        {"current": 3, "recordSummary": "8-1", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}}
      ]
    }
  ]
}`
