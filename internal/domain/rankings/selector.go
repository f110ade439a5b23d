package rankings

import (
	"sort"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// Polls extracts and classifies every poll in a rankings document.
func Polls(doc jsonshape.Document) []Poll {
	raw := ExtractPollList(doc)
	polls := make([]Poll, 0, len(raw))
	for _, p := range raw {
		polls = append(polls, NewPoll(p))
	}
	return polls
}

// Select picks one poll for choice.
//
// A specific choice returns the most recent poll of that kind. Auto takes the most
// recent poll of each known kind and orders them by timestamp, then kind priority,
// so CFP wins same-instant ties. When nothing classifies, auto falls back to the most
// recent poll of any shape.
func Select(polls []Poll, choice Choice) (Poll, error) {
	if choice != ChoiceAuto {
		best, ok := mostRecent(polls, choice.Kind())
		if !ok {
			return Poll{}, notFound(choice)
		}
		return best, nil
	}

	candidates := make([]Poll, 0, 3)
	for _, kind := range []PollKind{KindCFP, KindAP, KindCoaches} {
		if p, ok := mostRecent(polls, kind); ok {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if !a.Timestamp.Equal(b.Timestamp) {
				return a.Timestamp.After(b.Timestamp)
			}
			return a.Kind.Priority() > b.Kind.Priority()
		})
		return candidates[0], nil
	}

	if best, ok := mostRecent(polls, ""); ok {
		return best, nil
	}
	return Poll{}, notFound(choice)
}

// SelectFromDocument extracts polls from doc and applies Select.
func SelectFromDocument(doc jsonshape.Document, choice Choice) (Poll, error) {
	return Select(Polls(doc), choice)
}

// mostRecent returns the latest poll of kind, or of any kind when kind is empty.
// Earlier polls win timestamp ties.
func mostRecent(polls []Poll, kind PollKind) (Poll, bool) {
	var best Poll
	found := false
	for _, p := range polls {
		if kind != "" && p.Kind != kind {
			continue
		}
		if !found || p.Timestamp.After(best.Timestamp) {
			best = p
			found = true
		}
	}
	return best, found
}
