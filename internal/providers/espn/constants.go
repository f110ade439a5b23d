package espn

import "time"

const (
	providerName = "espn"

	defaultSiteBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultWebBaseURL  = "https://site.web.api.espn.com/apis/site/v2/sports/football/college-football"
	defaultCoreBaseURL = "https://sports.core.api.espn.com/v2/sports/football/leagues/college-football"
	defaultUserAgent   = "cfb-display-service/1.0"
	defaultHTTPTimeout = 20 * time.Second
	logoCDNBaseURL     = "https://a.espncdn.com/i/teamlogos/ncaa/500"

	// cfpRankingsType selects the committee rankings on the web API.
	cfpRankingsType = "2"

	maxErrorBody = 512
)
