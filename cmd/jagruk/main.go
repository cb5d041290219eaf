package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jagruklabs/jagruk/internal/cli"
	"github.com/jagruklabs/jagruk/internal/constants"
	apperrors "github.com/jagruklabs/jagruk/internal/errors"
	"github.com/jagruklabs/jagruk/internal/logger"
	"github.com/jagruklabs/jagruk/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects the JSON blob store, anything else SQLite." type:"path" default:"~/.config/jagruk/jagruk.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize jagruk storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Status  cli.StatusCmd  `cmd:"" help:"Print today's summary."`
	Rate    cli.RateCmd    `cmd:"" help:"Set today's discipline rating."`
	Mood    cli.MoodCmd    `cmd:"" help:"Set today's mood."`
	Journal cli.JournalCmd `cmd:"" help:"Answer today's prompt."`
	Lock    cli.LockCmd    `cmd:"" help:"Seal today's entry."`
	Todo    cli.TodoCmd    `cmd:"" help:"Manage today's objectives."`
	Txn     cli.TxnCmd     `cmd:"" help:"Manage the money ledger."`
	Quick   cli.QuickCmd   `cmd:"" help:"Log a habit preset."`
	Crave   cli.CraveCmd   `cmd:"" help:"Log a craving event."`
	Goal    cli.GoalCmd    `cmd:"" help:"Manage long-term goals."`
	Budget  cli.BudgetCmd  `cmd:"" help:"Show or set the daily budget."`
	Remind  cli.RemindCmd  `cmd:"" help:"Show or set reminder times."`
	Chart   cli.ChartCmd   `cmd:"" help:"Show the weekly spend chart."`
	Reset   cli.ResetCmd   `cmd:"" help:"Delete all data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit, finance and journal companion"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatal(err)
	}

	// Storage backend follows the data file extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Provider: provider}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
