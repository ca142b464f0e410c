package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/cli/categories"
	"github.com/lininnin/mindtrack/internal/cli/events"
	"github.com/lininnin/mindtrack/internal/cli/goalcmds"
	"github.com/lininnin/mindtrack/internal/cli/system"
	"github.com/lininnin/mindtrack/internal/cli/tasks"
	"github.com/lininnin/mindtrack/internal/cli/wellness"
	"github.com/lininnin/mindtrack/internal/config"
	"github.com/lininnin/mindtrack/internal/constants"
	"github.com/lininnin/mindtrack/internal/errors"
	"github.com/lininnin/mindtrack/internal/keyring"
	"github.com/lininnin/mindtrack/internal/logger"
	"github.com/lininnin/mindtrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Store   string `help:"Storage target: SQLite file path or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the OS keyring ('mindtrack config set') or .pgpass instead."`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd   `cmd:"" help:"Initialize mindtrack storage."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the Today So Far dashboard." default:"1"`
	Today   cli.TodayCmd     `cmd:"" help:"Print the Today So Far snapshot and persist today's daily log."`
	History struct {
		Export cli.HistoryExportCmd `cmd:"" help:"Write the plain-text history report."`
		Show   cli.HistoryShowCmd   `cmd:"" help:"Show daily logs in a date range."`
	} `cmd:"" help:"History reports and daily logs."`
	Task struct {
		Add      tasks.TaskAddCmd      `cmd:"" help:"Add a new task."`
		List     tasks.TaskListCmd     `cmd:"" help:"List tasks."`
		Complete tasks.TaskCompleteCmd `cmd:"" help:"Mark a task completed."`
		Schedule tasks.TaskScheduleCmd `cmd:"" help:"Schedule a task for today (or remove it with -r)."`
		Delete   tasks.TaskDeleteCmd   `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Event struct {
		Add      events.EventAddCmd      `cmd:"" help:"Add a new event."`
		List     events.EventListCmd     `cmd:"" help:"List events."`
		Complete events.EventCompleteCmd `cmd:"" help:"Mark an event completed."`
	} `cmd:"" help:"Manage events."`
	Wellness struct {
		Log  wellness.LogCmd  `cmd:"" help:"Log a wellness check-in (interactive when no flags are given)."`
		List wellness.ListCmd `cmd:"" help:"List wellness entries."`
	} `cmd:"" help:"Wellness check-ins."`
	Goal struct {
		Add      goalcmds.GoalAddCmd      `cmd:"" help:"Add a new goal."`
		List     goalcmds.GoalListCmd     `cmd:"" help:"List goals."`
		Progress goalcmds.GoalProgressCmd `cmd:"" help:"Record progress on a goal."`
		Minus    goalcmds.GoalMinusCmd    `cmd:"" help:"Undo one unit of progress."`
		Delete   goalcmds.GoalDeleteCmd   `cmd:"" help:"Delete a goal everywhere."`
		Current  struct {
			Add    goalcmds.CurrentAddCmd    `cmd:"" help:"Add a goal to the current list."`
			Remove goalcmds.CurrentRemoveCmd `cmd:"" help:"Remove a goal from the current list."`
			List   goalcmds.CurrentListCmd   `cmd:"" help:"List current goals." default:"1"`
		} `cmd:"" help:"Manage the current goal list."`
		Today struct {
			Add    goalcmds.TodayAddCmd    `cmd:"" help:"Add a goal to today's list."`
			Remove goalcmds.TodayRemoveCmd `cmd:"" help:"Remove a goal from today's list."`
			List   goalcmds.TodayListCmd   `cmd:"" help:"List today's goals." default:"1"`
		} `cmd:"" help:"Manage today's goal list."`
	} `cmd:"" help:"Manage goals."`
	Category struct {
		Add    categories.CategoryAddCmd    `cmd:"" help:"Add a category."`
		List   categories.CategoryListCmd   `cmd:"" help:"List categories."`
		Rename categories.CategoryRenameCmd `cmd:"" help:"Rename a category, keeping its id."`
		Remove categories.CategoryRemoveCmd `cmd:"" help:"Remove a category and clear references to it."`
	} `cmd:"" help:"Manage categories."`
	ConfigCmds struct {
		Set    system.ConfigSetCmd    `cmd:"" help:"Store the PostgreSQL connection string in the OS keyring."`
		Get    system.ConfigGetCmd    `cmd:"" help:"Show the stored connection string (password masked)."`
		Delete system.ConfigDeleteCmd `cmd:"" help:"Delete the stored connection string."`
	} `cmd:"" name:"config" help:"Manage stored database credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal task, event, wellness and goal tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: cfg.DataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store, err := selectStore(cfg)
	if err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{Cfg: cfg, Store: store}

	// init and doctor manage the store lifecycle themselves, and the
	// credential commands only touch the keyring.
	command := ctx.Command()
	needsStore := command != "init" && command != "doctor" && !strings.HasPrefix(command, "config ")
	if needsStore {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		if err := appCtx.Bootstrap(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// selectStore resolves the storage target: the --store flag, then the
// config file, then the OS keyring, then the default SQLite file. A
// postgres target from the flag or config file must not embed a password;
// keyring-sourced connection strings may, since the keyring is encrypted.
func selectStore(cfg config.Config) (storage.Provider, error) {
	target := CLI.Store
	if target == "" {
		target = cfg.Store
	}
	fromKeyring := false
	if target == "" {
		if connStr, err := keyring.GetConnectionString(); err == nil {
			target = connStr
			fromKeyring = true
		}
	}
	if target == "" {
		target = filepath.Join(cfg.DataDir, constants.AppName+".db")
	}

	if storage.IsPostgresTarget(target) {
		if !fromKeyring && storage.HasEmbeddedCredentials(target) {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; store them with 'mindtrack config set' or use .pgpass")
		}
		return storage.NewPostgresStore(target), nil
	}
	return storage.NewSQLiteStore(target), nil
}
