package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/subtlepseudonym/almanac"
	"github.com/subtlepseudonym/almanac/config"
	"github.com/subtlepseudonym/almanac/julian"
	"github.com/subtlepseudonym/almanac/observability"
	"github.com/subtlepseudonym/almanac/server"
	"github.com/subtlepseudonym/almanac/timescale"
)

const defaultConfigFile = "almanac.json"

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run scheduled reports and the HTTP API",
	Long: `Run the jobs listed in the config file and serve the conversion API.

Jobs take a standard cron schedule or "@sidereal HH:MM[:SS]", which fires
whenever the observer's local mean sidereal time reaches that hour.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", defaultConfigFile, "path to the JSON config file")
	rootCmd.AddCommand(serveCmd)
}

// cronLogger adapts slog to the robfig/cron logging interface
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Open(configFile)
	if err != nil {
		return err
	}
	err = cfg.Validate()
	if err != nil {
		return err
	}
	shutdownTimeout, err := cfg.Shutdown()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	provider, err := loadProvider(leapSecondsPath(cfg.LeapSecondsFile), logger, metrics)
	if err != nil {
		return err
	}
	observer := almanac.NewObserver(cfg.Observer, julian.NewTimeScales(provider))

	scheduler := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLogger{logger}),
		cron.WithChain(cron.Recover(cronLogger{logger})),
	)

	now := clock.Now()
	for _, job := range cfg.Jobs {
		schedule, err := almanac.ParseSchedule(job.Schedule, observer)
		if err != nil {
			return err
		}
		kind, err := almanac.ParseReportKind(job.Report)
		if err != nil {
			return err
		}

		scheduler.Schedule(schedule, almanac.Report{
			Kind:     kind,
			Observer: observer,
			Clock:    clock,
			Logger:   logger,
			Metrics:  metrics,
		})
		logger.Info("job scheduled",
			"schedule", job.Schedule,
			"report", kind,
			"next", schedule.Next(now).Format(time.RFC3339),
		)
	}

	srv := server.New(cfg.HTTPAddr, observer, clock, logger, metrics)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		err := srv.Start()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	scheduler.Start()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
		logger.Error("http server error", "error", err)
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("reports still running at shutdown")
	}
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("http server shutdown error", "error", shutdownErr)
	}

	return err
}

// leapSecondsPath prefers the --leap-seconds flag over the config file
func leapSecondsPath(configured string) string {
	if leapSecondsFile != "" {
		return leapSecondsFile
	}
	return configured
}

// loadProvider reads the configured leap second list, if any, and
// warns when it has expired
func loadProvider(filename string, logger *slog.Logger, metrics *observability.Metrics) (*timescale.Provider, error) {
	if filename == "" {
		logger.Info("using built-in leap second table")
		return timescale.Default(), nil
	}

	list, err := timescale.LoadLeapSecondsFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load leap seconds: %w", err)
	}

	if list.Expires != 0 {
		expires := julian.MustNew(list.Expires)
		metrics.LeapSecondsExpiry.Set(float64(expires.Time().Unix()))
		if list.Expired(julian.FromTime(clock.Now()).Value()) {
			logger.Warn("leap second list has expired", "file", filename, "expired", expires.CalendarDateTime().String())
		}
	}

	logger.Info("loaded leap second list", "file", filename, "entries", len(list.Table))
	return timescale.NewProvider(timescale.WithLeapSeconds(list.Table)), nil
}
