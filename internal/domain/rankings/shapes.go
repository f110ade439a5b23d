package rankings

import "github.com/preston-bernstein/cfb-display-service/internal/jsonshape"

// ExtractPollList finds the poll objects in a rankings document. It accepts a
// "rankings" list, a "rankings" object wrapping "items" or "rankings", a document
// that is itself a poll (has "ranks"), or a single poll under "ranking".
func ExtractPollList(doc jsonshape.Document) []map[string]any {
	if doc == nil {
		return nil
	}
	switch rankings := doc["rankings"].(type) {
	case []any:
		if polls := jsonshape.Objects(rankings); len(polls) > 0 {
			return polls
		}
	case map[string]any:
		for _, key := range []string{"items", "rankings"} {
			if polls := jsonshape.Objects(rankings[key]); len(polls) > 0 {
				return polls
			}
		}
	}
	if isPollShaped(doc) {
		return []map[string]any{doc}
	}
	if ranking := jsonshape.Child(doc, "ranking"); isPollShaped(ranking) {
		return []map[string]any{ranking}
	}
	return nil
}

// ExtractRankEntries finds a poll's entries: a "ranks" list, a "ranks" object wrapping
// "items", "entries" or "ranks", or an "entries" list.
func ExtractRankEntries(poll map[string]any) []map[string]any {
	if poll == nil {
		return nil
	}
	switch ranks := poll["ranks"].(type) {
	case []any:
		return jsonshape.Objects(ranks)
	case map[string]any:
		for _, key := range []string{"items", "entries", "ranks"} {
			if entries := jsonshape.Objects(ranks[key]); len(entries) > 0 {
				return entries
			}
		}
	}
	return jsonshape.Objects(poll["entries"])
}

func isPollShaped(obj map[string]any) bool {
	if obj == nil {
		return false
	}
	switch obj["ranks"].(type) {
	case []any, map[string]any:
		return true
	}
	return false
}
