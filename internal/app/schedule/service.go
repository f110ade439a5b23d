package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/cfb-display-service/internal/device"
	"github.com/preston-bernstein/cfb-display-service/internal/domain/rankings"
	domain "github.com/preston-bernstein/cfb-display-service/internal/domain/schedule"
	"github.com/preston-bernstein/cfb-display-service/internal/domain/teams"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
	"github.com/preston-bernstein/cfb-display-service/internal/settings"
	"github.com/preston-bernstein/cfb-display-service/internal/timeutil"
)

const (
	// PluginName labels logs and metrics for this renderer.
	PluginName = "schedule"

	Template   = "ndschedule.html"
	Stylesheet = "ndschedule.css"

	defaultConcurrency = 4
	maxCacheMinutes    = 1440
)

var updatedKeys = []string{"timestamp", "lastUpdated", "date", "updateDate"}

// Fetcher returns upstream documents, served from cache when younger than ttl.
type Fetcher interface {
	Fetch(ctx context.Context, url string, ttl time.Duration) (jsonshape.Document, error)
}

// Endpoints builds the team, schedule, rankings and league URLs.
type Endpoints interface {
	RankingsURL() string
	TeamURL(teamID string) string
	TeamLogoURL(teamID string) string
	ScheduleCandidates(teamID string, year int) []string
	LeagueURL() string
}

// Options configures a Service.
type Options struct {
	TeamID              string
	TeamName            string
	DefaultCacheMinutes int
	// Concurrency bounds parallel opponent lookups; values below 1 use the default.
	Concurrency int
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Now         func() time.Time
}

// Service builds a team's season schedule display.
type Service struct {
	fetcher      Fetcher
	endpoints    Endpoints
	device       device.Device
	teamID       string
	teamName     string
	cacheMinutes int
	concurrency  int
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
}

// View is the template parameter bundle for one schedule image.
type View struct {
	Title        string
	TeamLogo     string
	UpdateLine   string
	Season       int
	Rows         []domain.Row
	ShowTime     bool
	HideRank     bool
	HideNickname bool
	HideLogo     bool
	Settings     settings.Bundle
	Width        int
	Height       int
}

// NewService constructs a Service.
func NewService(fetcher Fetcher, endpoints Endpoints, dev device.Device, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Service{
		fetcher:      fetcher,
		endpoints:    endpoints,
		device:       dev,
		teamID:       opts.TeamID,
		teamName:     opts.TeamName,
		cacheMinutes: opts.DefaultCacheMinutes,
		concurrency:  concurrency,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		now:          now,
	}
}

// Render builds the view and packages it for the external renderer.
func (s *Service) Render(ctx context.Context, bundle settings.Bundle) (render.Request, error) {
	view, err := s.Build(ctx, bundle)
	if err != nil {
		return render.Request{}, err
	}
	return view.Request(), nil
}

// Build fetches the schedule and enriches every game with opponent details.
func (s *Service) Build(ctx context.Context, bundle settings.Bundle) (view View, err error) {
	start := s.now()
	logger := logging.FromContext(ctx, s.logger)
	defer func() {
		s.metrics.RecordRender(PluginName, s.now().Sub(start), err)
	}()

	showTime := bundle.Bool("show_time", true)
	showRank := bundle.Bool("show_rank", true)
	hideRank := bundle.Bool("hide_rank", false)
	hideLogo := bundle.Bool("hide_logo", false)
	ttl := time.Duration(bundle.IntClamped("cache_minutes", s.cacheMinutes, 0, maxCacheMinutes)) * time.Minute
	loc := device.Location(s.device)

	teamID := s.teamID
	if override, ok := bundle.Raw("team_id"); ok && jsonshape.Text(override) != "" {
		teamID = jsonshape.Text(override)
	}

	current := s.detectSeason(ctx, ttl)
	season := bundle.Int("season_year", current)
	if season <= 0 {
		season = current
	}

	view = View{
		Season:       season,
		ShowTime:     showTime,
		HideRank:     hideRank,
		HideNickname: bundle.Bool("hide_nickname", false),
		HideLogo:     hideLogo,
		Settings:     bundle,
	}
	view.Width, view.Height = device.Dimensions(s.device, bundle.String("screen_size", "auto"))

	sched, err := s.fetchSchedule(ctx, teamID, season, ttl)
	if err != nil {
		logging.Warn(logger, "schedule render failed",
			slog.String(logging.FieldTeamID, teamID),
			slog.Int(logging.FieldSeason, season),
			slog.Any("error", err),
		)
		return View{}, fmt.Errorf("schedule: %w", err)
	}

	teamDoc := s.teamDetail(ctx, teamID, ttl)
	if !hideLogo {
		view.TeamLogo = teams.FirstLogo(teamDoc)
		if view.TeamLogo == "" {
			view.TeamLogo = s.endpoints.TeamLogoURL(teamID)
		}
	}
	view.Title = fmt.Sprintf("%s Football Schedule for %d", s.displayName(teamID, teamDoc), season)

	var rankMap rankings.RankMap
	effectiveRank := showRank && !hideRank && season == current
	if effectiveRank {
		doc, err := s.fetcher.Fetch(ctx, s.endpoints.RankingsURL(), ttl)
		if err != nil {
			return View{}, fmt.Errorf("schedule: rankings: %w", err)
		}
		rankMap = rankings.BuildRankMap(doc)
	}

	view.Rows, err = s.buildRows(ctx, domain.Extract(sched, teamID), rowContext{
		season:   season,
		ttl:      ttl,
		loc:      loc,
		showTime: showTime,
		hideLogo: hideLogo,
		showRank: effectiveRank,
		ranks:    rankMap,
	})
	if err != nil {
		return View{}, err
	}

	if effectiveRank && rankMap.Label != "" {
		if rankMap.RawDate != "" {
			view.UpdateLine = fmt.Sprintf("Updated %s • Rank source: %s", timeutil.FormatInstant(rankMap.RawDate, loc), rankMap.Label)
		} else {
			view.UpdateLine = "Rank source: " + rankMap.Label
		}
	} else if updated := timeutil.FormatUpdated(jsonshape.FirstString(sched, updatedKeys...), loc); updated != "" {
		view.UpdateLine = "Updated " + updated
	} else {
		view.UpdateLine = fmt.Sprintf("Season %d", season)
	}

	logging.Info(logger, "schedule rendered",
		slog.String(logging.FieldTeamID, teamID),
		slog.Int(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(view.Rows)),
	)
	return view, nil
}

type rowContext struct {
	season   int
	ttl      time.Duration
	loc      *time.Location
	showTime bool
	hideLogo bool
	showRank bool
	ranks    rankings.RankMap
}

// buildRows resolves opponent details with bounded parallelism; rows keep schedule order.
func (s *Service) buildRows(ctx context.Context, games []domain.Game, rc rowContext) ([]domain.Row, error) {
	rows := make([]domain.Row, len(games))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, game := range games {
		i, game := i, game
		g.Go(func() error {
			rows[i] = s.buildRow(gctx, game, rc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) buildRow(ctx context.Context, game domain.Game, rc rowContext) domain.Row {
	var detail map[string]any
	if game.OpponentID != "" {
		detail = s.teamDetail(ctx, game.OpponentID, rc.ttl)
	}
	school := teams.School(game.OpponentTeam, detail)
	nicknameSource := game.OpponentTeam
	if len(detail) > 0 {
		nicknameSource = detail
	}

	row := domain.Row{
		Date:        timeutil.FormatGameDate(game.RawDate, rc.loc, rc.showTime),
		Site:        game.Site,
		OppSchool:   school,
		OppNickname: teams.Nickname(nicknameSource, school),
		Result:      game.Result,
		ResultClass: game.ResultClass,
	}
	if !rc.hideLogo {
		row.Logo = teams.FirstLogo(game.OpponentTeam)
	}
	if rc.showRank {
		if rank, ok := rc.ranks.Rank(game.OpponentID); ok {
			row.OppRank = &rank
		}
	}
	if game.OpponentID != "" && game.HasDate {
		row.OppRecord = s.pregameRecord(ctx, game.OpponentID, rc.season, game.Date, rc.ttl)
	}
	return row
}

// pregameRecord never fails the render; lookup errors yield "".
func (s *Service) pregameRecord(ctx context.Context, teamID string, season int, before time.Time, ttl time.Duration) string {
	doc, err := s.fetchSchedule(ctx, teamID, season, ttl)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "opponent record unavailable",
			slog.String(logging.FieldTeamID, teamID),
			slog.Any("error", err),
		)
		return ""
	}
	return domain.PregameRecord(doc, teamID, before).String()
}

// fetchSchedule tries each candidate URL and returns the first document with events.
// Failed candidates are skipped; when none has events the last fetched document is
// used, and when every candidate fails the last error is returned.
func (s *Service) fetchSchedule(ctx context.Context, teamID string, season int, ttl time.Duration) (jsonshape.Document, error) {
	var (
		last    jsonshape.Document
		lastErr error
	)
	for _, url := range s.endpoints.ScheduleCandidates(teamID, season) {
		doc, err := s.fetcher.Fetch(ctx, url, ttl)
		if err != nil {
			lastErr = err
			continue
		}
		last = doc
		if domain.HasEvents(doc) {
			return doc, nil
		}
	}
	if last != nil {
		return last, nil
	}
	return nil, lastErr
}

// detectSeason reads the league's current season, falling back to the clock year.
func (s *Service) detectSeason(ctx context.Context, ttl time.Duration) int {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.LeagueURL(), ttl)
	if err == nil {
		if year, ok := jsonshape.Int(jsonshape.Child(doc, "season")["year"]); ok && year > 0 {
			return year
		}
	}
	return s.now().Year()
}

// teamDetail returns the team object from the team document, or nil on failure.
func (s *Service) teamDetail(ctx context.Context, teamID string, ttl time.Duration) map[string]any {
	doc, err := s.fetcher.Fetch(ctx, s.endpoints.TeamURL(teamID), ttl)
	if err != nil {
		logging.Debug(logging.FromContext(ctx, s.logger), "team detail unavailable",
			slog.String(logging.FieldTeamID, teamID),
			slog.Any("error", err),
		)
		return nil
	}
	return teams.Unwrap(doc)
}

func (s *Service) displayName(teamID string, detail map[string]any) string {
	if teamID == s.teamID && s.teamName != "" {
		return s.teamName
	}
	if detail != nil {
		if name := jsonshape.FirstString(detail, "location", "shortDisplayName", "displayName"); name != "" {
			return name
		}
	}
	return "Team " + teamID
}

// Request packages the view for the external renderer.
func (v View) Request() render.Request {
	return render.Request{
		Width:      v.Width,
		Height:     v.Height,
		Template:   Template,
		Stylesheet: Stylesheet,
		Params: map[string]any{
			"title":           v.Title,
			"team_logo":       v.TeamLogo,
			"update_line":     v.UpdateLine,
			"rows":            v.Rows,
			"show_time":       v.ShowTime,
			"hide_rank":       v.HideRank,
			"hide_nickname":   v.HideNickname,
			"hide_logo":       v.HideLogo,
			"plugin_settings": v.Settings,
		},
	}
}
