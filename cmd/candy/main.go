package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/candyhq/candy/internal/cli"
	"github.com/candyhq/candy/internal/constants"
	"github.com/candyhq/candy/internal/errors"
	"github.com/candyhq/candy/internal/kv"
	"github.com/candyhq/candy/internal/ledger"
	"github.com/candyhq/candy/internal/logger"
	"github.com/candyhq/candy/internal/mood"
	"github.com/candyhq/candy/internal/query"
	"github.com/candyhq/candy/internal/taskstore"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a JSON file) or a PostgreSQL connection string." type:"string" default:"~/.config/candy/candy.db"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize candy storage."`
	Task     cli.TaskCmd     `cmd:"" help:"Manage routine tasks."`
	Today    cli.TodayCmd    `cmd:"" default:"1" help:"Show active tasks for a day."`
	Done     cli.DoneCmd     `cmd:"" help:"Toggle a task's completion for a day."`
	Week     cli.WeekCmd     `cmd:"" help:"Show the weekly completion chart."`
	Month    cli.MonthCmd    `cmd:"" help:"Show the monthly completion calendar."`
	Mood     cli.MoodCmd     `cmd:"" help:"Track daily mood."`
	Remind   cli.RemindCmd   `cmd:"" help:"List or schedule reminders for unfinished tasks."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Routine task and mood tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	config := expandHome(CLI.Config)

	var store kv.Store
	switch {
	case kv.IsPostgresTarget(config):
		store = kv.NewPostgresStore(config)
	case strings.HasSuffix(config, ".json"):
		store = kv.NewJSONStore(config)
	default:
		store = kv.NewSQLiteStore(config)
	}

	logDir := filepath.Dir(config)
	if kv.IsPostgresTarget(config) {
		if home, err := os.UserConfigDir(); err == nil {
			logDir = filepath.Join(home, constants.AppName)
		} else {
			logDir = "."
		}
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	tasks := taskstore.New(store)
	ldgr := ledger.New(store)
	moods := mood.New(store)

	appCtx := &cli.Context{
		KV:     store,
		Tasks:  tasks,
		Ledger: ldgr,
		Moods:  moods,
		Engine: query.New(tasks, ldgr),
	}
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
	store.Close()
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
