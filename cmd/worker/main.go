package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/config"
	"github.com/openci/openci-backend/internal/bootstrap"
	"github.com/openci/openci-backend/internal/logging"
	"github.com/openci/openci-backend/internal/maintenance"
	"github.com/openci/openci-backend/internal/projects/repository"
)

const usage = "usage: worker <orphans|schedule>"

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}
	logger := logging.New(cfg.App.LogLevel, cfg.App.Environment).
		With().Str("service", "openci-worker").Logger()

	if err := runCommand(args[0], cfg, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "unknown command: %s\n%s\n", args[0], usage)
			return 2
		}
		logger.Error().Err(err).Str("command", args[0]).Msg("worker failed")
		return 1
	}
	return 0
}

func runCommand(command string, cfg *config.Config, logger zerolog.Logger) error {
	if command != "orphans" && command != "schedule" {
		return errUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := bootstrap.OpenDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	reporter := maintenance.NewOrphanReporter(repository.NewStore(db).Plans(), logger)

	if command == "orphans" {
		_, err := reporter.Run(ctx)
		return err
	}
	return schedule(ctx, cfg, reporter, logger)
}

func schedule(ctx context.Context, cfg *config.Config, reporter *maintenance.OrphanReporter, logger zerolog.Logger) error {
	s := maintenance.NewScheduler(logger)
	err := s.Add("orphan_report", cfg.Maintenance.OrphanReportSchedule, func(ctx context.Context) error {
		_, err := reporter.Run(ctx)
		return err
	})
	if err != nil {
		return err
	}

	s.Start()
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Stop(stopCtx)
	logger.Info().Msg("scheduler stopped")
	return nil
}
