// Package main implements the tabulate CLI for rendering tabular data as
// bordered text tables.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	logcmd "github.com/quou/tabulate/cmd/tabulate/log"
	"github.com/quou/tabulate/cmd/tabulate/query"
	"github.com/quou/tabulate/cmd/tabulate/render"
	"github.com/quou/tabulate/cmd/tabulate/styles"
	"github.com/quou/tabulate/internal/config"
	"github.com/quou/tabulate/internal/output"
	"github.com/quou/tabulate/internal/version"
	"github.com/quou/tabulate/table"
)

type cli struct {
	Config    string           `help:"Path to a YAML config file."                                   optional:"" type:"existingfile"`
	Style     string           `help:"Border style: ascii, single or double. Overrides the config."  optional:""`
	NoPadding bool             `help:"Do not surround tables with blank lines."`
	Version   kong.VersionFlag `help:"Print version and exit."`

	Render render.Command `cmd:"" help:"Render CSV or TSV data as a table."`
	Query  query.Command  `cmd:"" help:"Run a SQL query against a SQLite database and tabulate the result."`
	Log    logcmd.Command `cmd:"" help:"Tabulate the recent history of a git repository."`
	Styles styles.Command `cmd:"" help:"Show a sample table in every border style."`
}

func main() {
	c := &cli{}
	ctx := kong.Parse(c,
		kong.Name("tabulate"),
		kong.Description("Render tabular data as bordered text tables."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	p, err := printer(c)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(p, log))
}

// printer resolves the output printer from the config file and flags.
// Flags win over the file, the file wins over defaults.
func printer(c *cli) (*output.Printer, error) {
	cfg := config.Default()
	if c.Config != "" {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return nil, err
		}
	}

	if c.Style != "" {
		s, err := table.ParseStyle(c.Style)
		if err != nil {
			return nil, err
		}
		cfg.Style = s
	}
	if c.NoPadding {
		cfg.Padding = false
	}

	return output.NewPrinter(os.Stdout,
		output.WithStyle(cfg.Style),
		output.WithPadding(cfg.Padding),
	), nil
}
