// Command migrate manages the hostel database schema. It reads the SQL files
// compiled into the binary unless -path points at a directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/hostel/backend/internal/app"
	"github.com/hostel/backend/internal/infrastructure/config"
	"github.com/hostel/backend/internal/infrastructure/logger"
	"github.com/hostel/backend/internal/infrastructure/migration"
	"github.com/hostel/backend/migrations"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "migrations"

// env is what a command runs with. Migrator is nil for commands that only
// touch files.
type env struct {
	log      *zap.Logger
	source   migration.Source
	dir      string
	migrator *migration.Migrator
}

type command struct {
	usage    string
	minArgs  int
	database bool
	run      func(e *env, args []string) error
}

var commands = map[string]command{
	"up": {usage: "up", database: true, run: func(e *env, _ []string) error {
		return e.migrator.Up()
	}},
	"down": {usage: "down", database: true, run: func(e *env, _ []string) error {
		return e.migrator.Down()
	}},
	"step": {usage: "step <n>", minArgs: 1, database: true, run: func(e *env, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n == 0 {
			return fmt.Errorf("invalid step count %q", args[0])
		}
		return e.migrator.Steps(n)
	}},
	"goto": {usage: "goto <version>", minArgs: 1, database: true, run: func(e *env, args []string) error {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return e.migrator.GoTo(uint(v))
	}},
	"version": {usage: "version", database: true, run: func(e *env, _ []string) error {
		v, dirty, err := e.migrator.Version()
		if err != nil {
			return err
		}
		if v == 0 {
			e.log.Info("No migrations applied")
			return nil
		}
		e.log.Info("Current migration version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		return nil
	}},
	"force": {usage: "force <version>", minArgs: 1, database: true, run: func(e *env, args []string) error {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q", args[0])
		}
		return e.migrator.Force(v)
	}},
	"drop": {usage: "drop -confirm", database: true, run: func(e *env, args []string) error {
		if !slices.Contains(args, "-confirm") && !slices.Contains(args, "--confirm") {
			return errors.New("refusing to drop without -confirm")
		}
		return e.migrator.Drop()
	}},
	"create": {usage: "create <name> [description]", minArgs: 1, run: func(e *env, args []string) error {
		description := ""
		if len(args) > 1 {
			description = args[1]
		}
		pair, err := migration.Scaffold(e.dir, args[0], description, time.Now())
		if err != nil {
			return err
		}
		e.log.Info("Migration created",
			zap.String("version", pair.Version),
			zap.String("up", pair.UpPath),
			zap.String("down", pair.DownPath))
		return nil
	}},
	"list": {usage: "list", run: func(e *env, _ []string) error {
		entries, err := e.source.List()
		if err != nil {
			return err
		}
		e.log.Info("Available migrations", zap.Stringer("source", e.source), zap.Int("count", len(entries)))
		for _, m := range entries {
			missing := ""
			if !m.HasDown {
				missing = "  (no down)"
			}
			fmt.Printf("  %d  %s%s\n", m.Version, m.Name, missing)
		}
		return nil
	}},
}

func main() {
	var dir, logLevel string
	flag.StringVar(&dir, "path", "", "migrations directory (default: built into the binary; create writes to ./migrations)")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", name)
		usage()
		os.Exit(2)
	}
	if len(args) < cmd.minArgs {
		fmt.Fprintf(os.Stderr, "usage: migrate %s\n", cmd.usage)
		os.Exit(2)
	}

	log, err := logger.New(logger.CLIConfig(logLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(log, dir, cmd, args); err != nil {
		log.Error("Migration command failed", zap.String("command", name), zap.Error(err))
		_ = logger.Sync(log)
		os.Exit(1)
	}
	_ = logger.Sync(log)
}

func run(log *zap.Logger, dir string, cmd command, args []string) error {
	e := &env{log: log, source: migration.Embedded(migrations.FS), dir: defaultMigrationsDir}
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("invalid -path: %w", err)
		}
		dir = abs
		e.source, e.dir = migration.Dir(dir), dir
	}

	if cmd.database {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		m, closeFn, err := app.OpenMigrator(cfg, dir, log)
		if err != nil {
			return err
		}
		defer closeFn()
		e.migrator = m
	}

	return cmd.run(e, args)
}

func usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintln(os.Stderr, "Hostel database migrations\n\nUsage:\n  migrate [flags] <command> [arguments]\n\nCommands:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nThe database is configured through config.toml or HOSTEL_DATABASE_* variables.")
}
