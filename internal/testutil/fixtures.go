package testutil

import (
	"encoding/json"
	"testing"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// Team ids and season used across the ESPN-shaped fixtures.
const (
	NotreDameID   = "87"
	TexasAMID     = "245"
	NorthernIllID = "2459"
	GeorgiaTechID = "59"
	TempleID      = "218"
	FixtureSeason = 2024
)

// Document decodes raw JSON into a document, failing the test on error.
func Document(t *testing.T, raw string) jsonshape.Document {
	t.Helper()
	var doc jsonshape.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	return doc
}

// RankingsDocument returns a site rankings listing carrying an AP and a Coaches poll
// published at the same instant.
func RankingsDocument(t *testing.T) jsonshape.Document {
	t.Helper()
	return Document(t, rankingsJSON)
}

// CFPRankingsDocument returns a committee rankings listing.
func CFPRankingsDocument(t *testing.T) jsonshape.Document {
	t.Helper()
	return Document(t, cfpRankingsJSON)
}

// LeagueDocument returns a league document reporting the given current season.
func LeagueDocument(season int) jsonshape.Document {
	return jsonshape.Document{"season": map[string]any{"year": float64(season)}}
}

// TeamDocument returns a team detail document. An empty logo omits the logos list.
func TeamDocument(id, location, name, logo string) jsonshape.Document {
	team := map[string]any{
		"id":               id,
		"location":         location,
		"shortDisplayName": location,
		"displayName":      location + " " + name,
		"name":             name,
	}
	if logo != "" {
		team["logos"] = []any{map[string]any{"href": logo, "rel": []any{"full", "default"}, "width": float64(500), "height": float64(500)}}
	}
	return jsonshape.Document{"team": team}
}

// ScheduleDocument returns Notre Dame's 2024 schedule: a road win, a home loss and
// an upcoming neutral-site game.
func ScheduleDocument(t *testing.T) jsonshape.Document {
	t.Helper()
	return Document(t, scheduleJSON)
}

// OpponentScheduleDocument returns Northern Illinois' schedule, one win before
// the Notre Dame game.
func OpponentScheduleDocument(t *testing.T) jsonshape.Document {
	t.Helper()
	return Document(t, opponentScheduleJSON)
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
        {"current": 1, "previous": 1, "recordSummary": "7-0", "team": {"id": "2633", "location": "Tennessee", "name": "Volunteers"}},
        {"current": 2, "previous": 3, "recordSummary": "7-0", "team": {"id": "2", "location": "Auburn", "name": "Tigers"}},
        {"current": 3, "previous": 2, "recordSummary": "6-1", "team": {"id": "9", "location": "Arizona State", "name": "Sun Devils"}},
        {"current": 4, "previous": 4, "recordSummary": "6-1", "team": {"id": "245", "location": "Texas A&M", "name": "Aggies"}},
        {"current": 5, "previous": 8, "recordSummary": "6-1", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}}
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
      "name": "College Football Playoff Rankings",
      "shortName": "CFP Rankings",
      "date": "2024-11-05T23:00Z",
      "ranks": [
        {"current": 1, "recordSummary": "9-0", "team": {"id": "2", "location": "Auburn", "name": "Tigers"}},
        {"current": 2, "recordSummary": "8-1", "team": {"id": "2633", "location": "Tennessee", "name": "Volunteers"}},
        {"current": 3, "recordSummary": "8-1", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}}
      ]
    }
  ]
}`

const scheduleJSON = `{
  "timestamp": "2024-10-21T12:00:00Z",
  "season": {"year": 2024},
  "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"},
  "events": [
    {
      "id": "401628374",
      "date": "2024-08-31T23:30Z",
      "competitions": [{
        "neutralSite": false,
        "status": {"type": {"completed": true, "state": "post", "name": "STATUS_FINAL"}},
        "competitors": [
          {"homeAway": "home", "score": {"value": 13, "displayValue": "13"}, "team": {"id": "245", "location": "Texas A&M", "name": "Aggies", "logos": [{"href": "https://a.espncdn.com/i/teamlogos/ncaa/500/245.png"}]}},
          {"homeAway": "away", "score": {"value": 23, "displayValue": "23"}, "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}}
        ]
      }]
    },
    {
      "id": "401628375",
      "date": "2024-09-07T19:30Z",
      "competitions": [{
        "status": {"type": {"completed": true, "state": "post", "name": "STATUS_FINAL"}},
        "competitors": [
          {"homeAway": "home", "score": "14", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}},
          {"homeAway": "away", "score": "16", "team": {"id": "2459", "location": "Northern Illinois", "name": "Huskies"}}
        ]
      }]
    },
    {
      "id": "401628380",
      "date": "2024-10-19T23:30Z",
      "competitions": [{
        "neutralSite": true,
        "status": {"type": {"completed": false, "state": "pre", "name": "STATUS_SCHEDULED"}},
        "competitors": [
          {"homeAway": "home", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}},
          {"homeAway": "away", "team": {"id": "59", "location": "Georgia Tech", "name": "Yellow Jackets"}}
        ]
      }]
    }
  ]
}`

const opponentScheduleJSON = `{
  "events": [
    {
      "id": "401628100",
      "date": "2024-08-29T23:00Z",
      "competitions": [{
        "status": {"type": {"completed": true}},
        "competitors": [
          {"homeAway": "home", "score": "28", "team": {"id": "2459", "location": "Northern Illinois", "name": "Huskies"}},
          {"homeAway": "away", "score": "14", "team": {"id": "218", "location": "Temple", "name": "Owls"}}
        ]
      }]
    },
    {
      "id": "401628375",
      "date": "2024-09-07T19:30Z",
      "competitions": [{
        "status": {"type": {"completed": true}},
        "competitors": [
          {"homeAway": "home", "score": "14", "team": {"id": "87", "location": "Notre Dame", "name": "Fighting Irish"}},
          {"homeAway": "away", "score": "16", "team": {"id": "2459", "location": "Northern Illinois", "name": "Huskies"}}
        ]
      }]
    }
  ]
}`
