package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"finance-control/internal/config"
	"finance-control/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const usage = `usage: migrate [flags] <command> [arg]

commands:
  up             apply all pending migrations
  down <steps>   roll back the given number of migrations
  force <ver>    mark the schema as clean at version ver
  version        print the current version
  seed           load db/seeds
`

func main() {
	migrationsDir := flag.String("migrations", "db/migrations", "directory holding the SQL migrations")
	seedsDir := flag.String("seeds", "db/seeds", "directory holding seed files")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load(".env")
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.Database.MigrationURL())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db).WithPaths(*migrationsDir, *seedsDir)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := runner.WaitForDatabase(ctx); err != nil {
		logger.Error("database not reachable", "error", err)
		os.Exit(1)
	}

	if err := run(runner, flag.Args()); err != nil {
		logger.Error("migration command failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(runner *database.MigrationRunner, args []string) error {
	switch args[0] {
	case "up":
		return runner.RunMigrations()
	case "down":
		steps, err := intArg(args)
		if err != nil {
			return err
		}
		return runner.RollbackMigrations(steps)
	case "force":
		version, err := intArg(args)
		if err != nil {
			return err
		}
		return runner.ForceVersion(version)
	case "version":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	case "seed":
		return runner.LoadSeeds()
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func intArg(args []string) (int, error) {
	if len(args) < 2 {
		return 0, fmt.Errorf("%s needs a numeric argument", args[0])
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("%s: %w", args[0], err)
	}
	return n, nil
}
