package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/preston-bernstein/cfb-display-service/internal/app/rankings"
	"github.com/preston-bernstein/cfb-display-service/internal/app/schedule"
	"github.com/preston-bernstein/cfb-display-service/internal/cache"
	"github.com/preston-bernstein/cfb-display-service/internal/config"
	"github.com/preston-bernstein/cfb-display-service/internal/device"
	"github.com/preston-bernstein/cfb-display-service/internal/logging"
	"github.com/preston-bernstein/cfb-display-service/internal/providers"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/espn"
	"github.com/preston-bernstein/cfb-display-service/internal/providers/fixture"
	"github.com/preston-bernstein/cfb-display-service/internal/render"
	"github.com/preston-bernstein/cfb-display-service/internal/settings"
)

// toolEnv carries the wiring shared by every subcommand.
type toolEnv struct {
	cfg     config.Config
	out     io.Writer
	logger  *slog.Logger
	client  *espn.Client
	fetcher *providers.CachedFetcher
	device  device.Static
}

func newToolEnv(cfg config.Config, g globalCmd, stdout, stderr io.Writer) *toolEnv {
	logger := logging.NewLogger(logging.Config{
		Level:   g.LogLevel,
		Service: "cfbtool",
		Output:  stderr,
	})
	client := espn.NewClient(espn.Config{
		SiteBaseURL: cfg.ESPN.SiteBaseURL,
		WebBaseURL:  cfg.ESPN.WebBaseURL,
		CoreBaseURL: cfg.ESPN.CoreBaseURL,
		UserAgent:   cfg.ESPN.UserAgent,
		HTTPClient:  &http.Client{Timeout: cfg.ESPN.Timeout},
	})
	var provider providers.DocumentProvider = client
	if g.Provider == "fixture" {
		provider = fixture.New()
	}
	return &toolEnv{
		cfg:     cfg,
		out:     stdout,
		logger:  logger,
		client:  client,
		fetcher: providers.NewCachedFetcher(g.Provider, provider, cache.New(), logger, nil),
		device:  device.FromConfig(cfg.Device),
	}
}

func (e *toolEnv) printJSON(req render.Request) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(req)
}

type rankingsCmd struct{}

func (r *rankingsCmd) Run(g *globalCmd, env *toolEnv) error {
	svc := rankings.NewService(env.fetcher, env.client, env.device, rankings.Options{
		DefaultCacheMinutes: env.cfg.DefaultCacheMinutes,
		Logger:              env.logger,
	})
	view, err := svc.Build(context.Background(), settings.FromPairs(g.Set))
	if err != nil {
		return err
	}
	if g.JSON {
		return env.printJSON(view.Request())
	}

	t := table.NewWriter()
	t.SetOutputMirror(env.out)
	t.SetTitle(view.Title)
	header := table.Row{"Rank", "School", "Nickname"}
	if view.ShowRecord {
		header = append(header, "Record")
	}
	if view.ShowMovement {
		header = append(header, "Move")
	}
	t.AppendHeader(header)
	for _, row := range view.Rows {
		line := table.Row{row.Rank, row.School, row.Nickname}
		if view.ShowRecord {
			line = append(line, row.Record)
		}
		if view.ShowMovement {
			line = append(line, row.Movement)
		}
		t.AppendRow(line)
	}
	if view.PollDate != "" {
		t.SetCaption(view.PollDate)
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

type scheduleCmd struct {
	Team string `help:"ESPN team id; overrides TEAM_ID." placeholder:"ID"`
}

func (s *scheduleCmd) Run(g *globalCmd, env *toolEnv) error {
	teamID, teamName := env.cfg.TeamID, env.cfg.TeamName
	if s.Team != "" && s.Team != teamID {
		teamID, teamName = s.Team, ""
	}
	svc := schedule.NewService(env.fetcher, env.client, env.device, schedule.Options{
		TeamID:              teamID,
		TeamName:            teamName,
		DefaultCacheMinutes: env.cfg.DefaultCacheMinutes,
		Logger:              env.logger,
	})
	view, err := svc.Build(context.Background(), settings.FromPairs(g.Set))
	if err != nil {
		return err
	}
	if g.JSON {
		return env.printJSON(view.Request())
	}

	t := table.NewWriter()
	t.SetOutputMirror(env.out)
	t.SetTitle(view.Title)
	t.AppendHeader(table.Row{"Date", "Site", "Rank", "Opponent", "Record", "Result"})
	for _, row := range view.Rows {
		rank := ""
		if row.OppRank != nil {
			rank = strconv.Itoa(*row.OppRank)
		}
		opponent := row.OppSchool
		if row.OppNickname != "" {
			opponent = fmt.Sprintf("%s %s", row.OppSchool, row.OppNickname)
		}
		t.AppendRow(table.Row{row.Date, row.Site, rank, opponent, row.OppRecord, row.Result})
	}
	if view.UpdateLine != "" {
		t.SetCaption(view.UpdateLine)
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
