package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"addressable/config"
	logs "addressable/internal/infra/log"
	"addressable/internal/infra/persistence/migration"
	"addressable/internal/infra/persistence/postgres"
	"addressable/internal/util"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      Apply pending migrations
// - down:    Roll back the latest migration
// - status:  Print the applied state of every migration
// - publish: Copy the bundled migrations into a directory

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)
	publishCmd := flag.NewFlagSet("publish", flag.ExitOnError)

	upForce := upCmd.Bool("force", false, "Run in production")
	downForce := downCmd.Bool("force", false, "Run in production")
	publishDir := publishCmd.String("dir", "", "Target directory (default addresses.migrations.dir)")
	publishForce := publishCmd.Bool("force", false, "Overwrite locally edited files")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := migrateFlags{
		Up:      schemaFlags{cmd: upCmd, force: upForce},
		Down:    schemaFlags{cmd: downCmd, force: downForce},
		Status:  schemaFlags{cmd: statusCmd},
		Publish: publishFlags{cmd: publishCmd, dir: publishDir, force: publishForce},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	Up      schemaFlags
	Down    schemaFlags
	Status  schemaFlags
	Publish publishFlags
}

type schemaFlags struct {
	cmd   *flag.FlagSet
	force *bool
}

func (f schemaFlags) forced() bool {
	return f.force != nil && *f.force
}

type publishFlags struct {
	cmd   *flag.FlagSet
	dir   *string
	force *bool
}

func runSubcommand(ctx context.Context, flags *migrateFlags) error {
	switch os.Args[1] {
	case "up":
		return handleSchema(ctx, flags.Up, func(r *migration.Runner, db *sql.DB) error {
			return r.Up(ctx, db, flags.Up.forced())
		})
	case "down":
		return handleSchema(ctx, flags.Down, func(r *migration.Runner, db *sql.DB) error {
			return r.Down(ctx, db, flags.Down.forced())
		})
	case "status":
		return handleSchema(ctx, flags.Status, func(r *migration.Runner, db *sql.DB) error {
			return r.Status(ctx, db)
		})
	case "publish":
		return handlePublish(flags.Publish)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

// handleSchema parses the flags, connects and runs fn, reporting the elapsed time.
func handleSchema(ctx context.Context, flags schemaFlags, fn func(*migration.Runner, *sql.DB) error) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrapf(err, "failed to parse %s flags", flags.cmd.Name())
	}

	cfg, logger, err := load()
	if err != nil {
		return err
	}

	gormDB, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	db, err := gormDB.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	start := time.Now()
	if err := fn(migration.NewRunner(cfg, logger), db); err != nil {
		return err
	}

	fmt.Printf("%s finished in %s\n", flags.cmd.Name(), util.FormatDuration(time.Since(start)))

	return nil
}

func handlePublish(flags publishFlags) error {
	if err := flags.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse publish flags")
	}

	dir := *flags.dir
	if dir == "" {
		cfg, _, err := load()
		if err != nil {
			return err
		}
		dir = cfg.Addresses.Migrations.Dir
	}

	report, err := migration.Publish(dir, *flags.force)
	if err != nil {
		return err
	}

	fmt.Printf("Publishing migrations to %s\n", dir)
	for _, file := range report {
		fmt.Printf("  %-12s %s (%s)\n", file.Status, file.Name, util.FormatBytes(file.Size))
	}

	return nil
}

func load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  up         Apply pending address migrations")
	fmt.Println("  down       Roll back the latest address migration")
	fmt.Println("  status     Show the state of every address migration")
	fmt.Println("  publish    Copy the bundled migrations into a directory")
	fmt.Println("")
	fmt.Println("Use 'migrate <command> -h' for more information about a command.")
}
