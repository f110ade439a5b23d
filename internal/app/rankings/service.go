package rankings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/cfb-display-service/internal/device"
	domain "github.com/preston-bernstein/cfb-display-service/internal/domain/rankings"
	"github.com/preston-bernstein/cfb-display-service/internal/jsonshape"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/metrics"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
	"github.com/preston-bernstein/cfb-display-service/internal/settings"
	"github.com/preston-bernstein/cfb-display-service/internal/timeutil"
)

const (
	// PluginName labels logs and metrics for this renderer.
	PluginName = "rankings"

	Template   = "cfbrankings.html"
	Stylesheet = "cfbrankings.css"

	defaultTitle    = "College Football Rankings"
	defaultTopN     = 20
	maxRecordTopN   = 20
	twoColumnAbove  = 15
	maxCacheMinutes = 1440
	defaultFontSize = "normal"
)

var fontSizes = []string{"normal", "large", "larger", "largest"}

// Fetcher returns upstream documents, served from cache when younger than ttl.
type Fetcher interface {
	Fetch(ctx context.Context, url string, ttl time.Duration) (jsonshape.Document, error)
}

// Endpoints builds the rankings URLs.
type Endpoints interface {
	RankingsURL() string
	CFPRankingsURL(year int) string
}

// Options configures a Service.
type Options struct {
	DefaultCacheMinutes int
	Logger              *slog.Logger
	Metrics             *metrics.Recorder
	Now                 func() time.Time
}

// Service builds the rankings display from a rankings document and user settings.
type Service struct {
	fetcher      Fetcher
	endpoints    Endpoints
	device       device.Device
	cacheMinutes int
	logger       *slog.Logger
	metrics      *metrics.Recorder
	now          func() time.Time
}

// View is the template parameter bundle for one rankings image.
type View struct {
	Title        string
	Meta         string
	PollDate     string
	Note         string
	Rows         []domain.Row
	ShowRecord   bool
	ShowMovement bool
	TwoColumn    bool
	TopN         int
	FontSize     string
	PollKind     domain.PollKind
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
	return &Service{
		fetcher:      fetcher,
		endpoints:    endpoints,
		device:       dev,
		cacheMinutes: opts.DefaultCacheMinutes,
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

// Build fetches the rankings document, selects a poll and projects its rows.
func (s *Service) Build(ctx context.Context, bundle settings.Bundle) (view View, err error) {
	start := s.now()
	logger := logging.FromContext(ctx, s.logger)
	defer func() {
		s.metrics.RecordRender(PluginName, s.now().Sub(start), err)
	}()

	choice := domain.ParseChoice(bundle.String("poll", string(domain.ChoiceAuto)))
	topN := domain.ClampTopN(bundle.Int("top_n", defaultTopN))
	year := bundle.Year("year")
	showMeta := bundle.Bool("show_meta", true)
	ttl := time.Duration(bundle.IntClamped("cache_minutes", s.cacheMinutes, 0, maxCacheMinutes)) * time.Minute

	view = View{
		Note:         "",
		ShowRecord:   bundle.Bool("show_record", true) && topN <= maxRecordTopN,
		ShowMovement: bundle.Bool("show_movement", false),
		TwoColumn:    topN > twoColumnAbove,
		TopN:         topN,
		FontSize:     bundle.OneOf("font_size", defaultFontSize, fontSizes...),
		Settings:     bundle,
	}
	view.Width, view.Height = device.Dimensions(s.device, bundle.String("screen_size", "auto"))

	doc, poll, err := s.selectPoll(ctx, choice, year, ttl)
	if err != nil {
		logging.Warn(logger, "rankings render failed",
			slog.String(logging.FieldPollKind, string(choice)),
			slog.Any("error", err),
		)
		return View{}, err
	}

	view.PollKind = poll.Kind
	view.Title = poll.Label()
	if view.Title == "" {
		view.Title = defaultTitle
	}
	if showMeta {
		view.Meta = seasonMeta(doc)
	}
	view.PollDate = pollDateLine(poll, view.Title, device.Location(s.device))
	view.Rows = domain.BuildRows(poll.Entries(), domain.RowOptions{
		TopN:         topN,
		ShowRecord:   view.ShowRecord,
		ShowMovement: view.ShowMovement,
	})

	logging.Info(logger, "rankings rendered",
		slog.String(logging.FieldPollKind, string(poll.Kind)),
		slog.Int(logging.FieldCount, len(view.Rows)),
	)
	return view, nil
}

func (s *Service) selectPoll(ctx context.Context, choice domain.Choice, year int, ttl time.Duration) (jsonshape.Document, domain.Poll, error) {
	url := s.endpoints.RankingsURL()
	if choice == domain.ChoiceCFP {
		url = s.endpoints.CFPRankingsURL(year)
	}
	doc, err := s.fetcher.Fetch(ctx, url, ttl)
	if err != nil {
		return nil, domain.Poll{}, fmt.Errorf("rankings: %w", err)
	}
	poll, err := domain.SelectFromDocument(doc, choice)
	if err != nil {
		return nil, domain.Poll{}, err
	}
	return doc, poll, nil
}

// seasonMeta renders "Season 2024 • Week 9", "Season 2024", or "".
func seasonMeta(doc jsonshape.Document) string {
	var season map[string]any
	for _, key := range []string{"season", "requestedSeason", "currentSeason"} {
		if season = jsonshape.Child(doc, key); season != nil {
			break
		}
	}
	year := jsonshape.String(season, "year")
	if year == "" {
		return ""
	}
	if week := jsonshape.String(jsonshape.Child(doc, "week"), "number"); week != "" {
		return fmt.Sprintf("Season %s • Week %s", year, week)
	}
	return "Season " + year
}

func pollDateLine(poll domain.Poll, label string, loc *time.Location) string {
	if poll.RawDate == "" {
		return ""
	}
	line := "Updated " + timeutil.FormatInstant(poll.RawDate, loc)
	if label != "" {
		line += " • " + label
	}
	return line
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
			"meta":            v.Meta,
			"poll_date":       v.PollDate,
			"note":            v.Note,
			"rows":            v.Rows,
			"show_record":     v.ShowRecord,
			"show_movement":   v.ShowMovement,
			"two_column":      v.TwoColumn,
			"top_n":           v.TopN,
			"font_size":       v.FontSize,
			"plugin_settings": v.Settings,
		},
	}
}
