// Command cfbtool renders the rankings and schedule plugins once and prints the result.
package main

import (
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/alecthomas/kong"

	"github.com/preston-bernstein/cfb-display-service/internal/config"
)

type globalCmd struct {
	Provider string   `help:"Document source." enum:"espn,fixture" default:"espn" env:"PROVIDER"`
	JSON     bool     `help:"Print the render bundle as JSON instead of a table." name:"json"`
	Set      []string `help:"Plugin setting as key=value. Repeatable." short:"s" sep:"none" placeholder:"KEY=VALUE"`
	LogLevel string   `help:"Log level for diagnostics on stderr." default:"warn" env:"LOG_LEVEL"`
}

type cli struct {
	globalCmd

	Rankings rankingsCmd `cmd:"" help:"Render the poll rankings."`
	Schedule scheduleCmd `cmd:"" help:"Render a team schedule."`
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "cfbtool: %v\n", err)
	}
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "cfbtool: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("cfbtool"),
		kong.Description("Render college football display plugins from ESPN data."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	env := newToolEnv(config.Load(), c.globalCmd, stdout, stderr)
	return ctx.Run(&c.globalCmd, env)
}
