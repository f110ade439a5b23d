package espn

import (
	"net/url"
	"strconv"
)

// RankingsURL is the site API rankings listing (AP, Coaches, and sometimes CFP).
func (c *Client) RankingsURL() string {
	return c.siteBaseURL + "/rankings"
}

// CFPRankingsURL is the web API committee rankings endpoint. A zero year omits the year filter.
func (c *Client) CFPRankingsURL(year int) string {
	q := url.Values{}
	q.Set("type", cfpRankingsType)
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	return c.webBaseURL + "/rankings?" + q.Encode()
}

// TeamURL is the team detail document.
func (c *Client) TeamURL(teamID string) string {
	return c.siteBaseURL + "/teams/" + url.PathEscape(teamID)
}

// ScheduleURL is the bare team schedule document.
func (c *Client) ScheduleURL(teamID string) string {
	return c.TeamURL(teamID) + "/schedule"
}

// ScheduleCandidates lists schedule URLs for a season in the order they should be tried.
// The upstream honours different parameter spellings depending on the season, so the
// bare URL is last.
func (c *Client) ScheduleCandidates(teamID string, year int) []string {
	base := c.ScheduleURL(teamID)
	y := strconv.Itoa(year)
	return []string{
		base + "?season=" + y,
		base + "?year=" + y,
		base + "?season=" + y + "&seasontype=2",
		base + "?season=" + y + "&seasontype=3",
		base + "?year=" + y + "&seasontype=2",
		base + "?year=" + y + "&seasontype=3",
		base,
	}
}

// TeamLogoURL is the CDN logo used when a team document carries no logos.
func (c *Client) TeamLogoURL(teamID string) string {
	return logoCDNBaseURL + "/" + url.PathEscape(teamID) + ".png"
}

// LeagueURL is the core league document carrying the current season.
func (c *Client) LeagueURL() string {
	return c.coreBaseURL + "?lang=en&region=us"
}
