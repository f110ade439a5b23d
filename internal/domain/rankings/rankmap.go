package rankings

import (
	"github.com/preston-bernstein/cfb-display-service/internal/domain/teams"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// RankMap is a team-id keyed lookup of top-25 ranks from one poll.
type RankMap struct {
	Ranks map[string]int
	// Label names the source poll, short name first.
	Label string
	// RawDate is the source poll's unformatted date.
	RawDate string
}

// Rank returns the rank for teamID when ranked.
func (m RankMap) Rank(teamID string) (int, bool) {
	r, ok := m.Ranks[teamID]
	return r, ok
}

// Empty reports whether no poll was found.
func (m RankMap) Empty() bool {
	return m.Label == "" && len(m.Ranks) == 0
}

// BuildRankMap uses the most recent CFP poll, else the most recent AP poll.
func BuildRankMap(doc jsonshape.Document) RankMap {
	polls := Polls(doc)
	poll, ok := mostRecent(polls, KindCFP)
	if !ok {
		poll, ok = mostRecent(polls, KindAP)
	}
	if !ok {
		return RankMap{Ranks: map[string]int{}}
	}

	out := RankMap{
		Ranks:   make(map[string]int),
		Label:   poll.ShortLabel(),
		RawDate: poll.RawDate,
	}
	for _, entry := range poll.Entries() {
		id := teams.ID(teams.FromEntry(entry))
		if id == "" {
			continue
		}
		v, ok := jsonshape.FirstPresent(entry, "current", "rank", "position")
		if !ok {
			continue
		}
		rank, ok := jsonshape.Int(v)
		if !ok || rank < 1 || rank > MaxTopN {
			continue
		}
		out.Ranks[id] = rank
	}
	return out
}
