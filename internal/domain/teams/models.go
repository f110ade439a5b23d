package teams

import (
	"strings"

	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
)

// UnknownSchool is displayed when no name field resolves.
const UnknownSchool = "Unknown"

// Team is the normalized display identity of a team.
type Team struct {
	ID       string `json:"id"`
	School   string `json:"school"`
	Nickname string `json:"nickname"`
	Logo     string `json:"logo"`
}

var schoolKeys = []string{"shortDisplayName", "location", "displayName", "abbreviation"}

// ID returns the team id as a string, whether upstream encoded it as a string or number.
func ID(team map[string]any) string {
	return jsonshape.String(team, "id")
}

// School resolves the display name from the inline team object first, then the
// team detail document, falling back to the bare name fields and finally UnknownSchool.
func School(team, detail map[string]any) string {
	if s := jsonshape.FirstString(team, schoolKeys...); s != "" {
		return s
	}
	if s := jsonshape.FirstString(detail, schoolKeys...); s != "" {
		return s
	}
	if s := jsonshape.String(team, "name"); s != "" {
		return s
	}
	if s := jsonshape.String(detail, "name"); s != "" {
		return s
	}
	return UnknownSchool
}

// Nickname returns the mascot name unless it is empty or already part of school.
func Nickname(team map[string]any, school string) string {
	nickname := jsonshape.FirstString(team, "name", "nickname")
	if nickname == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(school), strings.ToLower(nickname)) {
		return ""
	}
	return nickname
}

// BestLogo prefers a logo tagged "default", then the largest image, then the first with an href.
func BestLogo(team map[string]any) string {
	if team == nil {
		return ""
	}
	logos := jsonshape.Objects(team["logos"])
	if len(logos) == 0 {
		return ""
	}

	for _, logo := range logos {
		href := jsonshape.String(logo, "href")
		if href != "" && hasRel(logo, "default") {
			return href
		}
	}

	best, bestArea := "", -1
	for _, logo := range logos {
		href := jsonshape.String(logo, "href")
		if href == "" {
			continue
		}
		w, okW := jsonshape.Int(logo["width"])
		h, okH := jsonshape.Int(logo["height"])
		if !okW || !okH {
			continue
		}
		if area := w * h; area > bestArea {
			best, bestArea = href, area
		}
	}
	if best != "" {
		return best
	}

	return firstHref(logos)
}

// FirstLogo returns the first logo href, falling back to a plain "logo" field.
func FirstLogo(team map[string]any) string {
	if team == nil {
		return ""
	}
	if href := firstHref(jsonshape.Objects(team["logos"])); href != "" {
		return href
	}
	return jsonshape.String(team, "logo")
}

func firstHref(logos []map[string]any) string {
	for _, logo := range logos {
		if href := jsonshape.String(logo, "href"); href != "" {
			return href
		}
	}
	return ""
}

// FromEntry picks the team object out of a ranking entry, which may be keyed "team" or "school".
func FromEntry(entry map[string]any) map[string]any {
	if team := jsonshape.Child(entry, "team"); team != nil {
		return team
	}
	if team := jsonshape.Child(entry, "school"); team != nil {
		return team
	}
	return map[string]any{}
}

// Unwrap returns the "team" object of a team detail document, or the document itself.
func Unwrap(doc map[string]any) map[string]any {
	if team := jsonshape.Child(doc, "team"); team != nil {
		return team
	}
	return doc
}

func hasRel(logo map[string]any, rel string) bool {
	switch v := logo["rel"].(type) {
	case []any:
		for _, r := range v {
			if jsonshape.Text(r) == rel {
				return true
			}
		}
	case string:
		return v == rel
	}
	return false
}
