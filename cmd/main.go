package main

//
//  @title           bondcalc API
//  @version         1.0
//  @description     Bond math and par-curve service backed by a bisection rate solver.
//  @termsOfService  https://github.com/guttosm/bondcalc
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/bondcalc
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        bonds
//  @tag.description Rate, price and yield calculations
//
//  @tag.name        curves
//  @tag.description Stored par curves, tenor statistics and ingestion gaps
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/bondcalc/config"
	_ "github.com/guttosm/bondcalc/docs" // swagger docs
	"github.com/guttosm/bondcalc/internal/app"
	"github.com/guttosm/bondcalc/internal/ingestion"
	"github.com/guttosm/bondcalc/internal/logger"
)

const (
	dateLayout   = "2006-01-02"
	defaultRange = 30 // days looked back by --mode missing when --start is empty
	maxDays      = 7
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// clampDays keeps --days within 1..7.
func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// ingestOptions merges CLI flags with the ingestion settings from cfg.
func ingestOptions(cfg config.Config, dir string, days, parallel int, force bool) ingestion.Options {
	return ingestion.Options{
		Dir:            dir,
		Days:           clampDays(days),
		Parallel:       parallel,
		Force:          force,
		BatchSize:      cfg.Ingest.BatchSize,
		MaxAttempts:    cfg.Ingest.MaxAttempts,
		BackoffInitial: cfg.Ingest.BackoffInitial,
		Calendar:       ingestion.NewCalendar(cfg.Ingest.Holidays),
	}
}

// parseDateRange reads --start and --end. An empty end means today and an
// empty start means defaultRange days before end.
func parseDateRange(start, end string, today time.Time) (time.Time, time.Time, error) {
	to := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if end != "" {
		d, err := time.Parse(dateLayout, end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end: %w", err)
		}
		to = d
	}
	from := to.AddDate(0, 0, -defaultRange)
	if start != "" {
		d, err := time.Parse(dateLayout, start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start: %w", err)
		}
		from = d
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, fmt.Errorf("--start %s is after --end %s", from.Format(dateLayout), to.Format(dateLayout))
	}
	return from, to, nil
}

// printMissing writes one date per line followed by the expected file name.
func printMissing(w io.Writer, dates []time.Time) {
	for _, d := range dates {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", d.Format(dateLayout), ingestion.FileName(d))
	}
}

// main is the entry point of the bondcalc application.
//
// Modes (selected via --mode flag):
//   - ingest:  Loads the last N business days of par-curve files from --dir.
//   - api:     Starts the REST API.
//   - missing: Prints business days in [--start, --end] without a stored curve.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "ingest", "Mode: ingest, api or missing")
	dir := flag.String("dir", "./data/input", "Directory with YYYY-MM-DD_PARCURVE.csv files")
	days := flag.Int("days", maxDays, "Number of last business days to ingest (1-7)")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto up to CPU, max 7)")
	force := flag.Bool("force", false, "Reprocess days even if already ingested (deletes existing points for that day)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	start := flag.String("start", "", "First day for missing mode (YYYY-MM-DD, default: 30 days before --end)")
	end := flag.String("end", "", "Last day for missing mode (YYYY-MM-DD, default: today)")
	flag.Parse()

	switch *mode {
	case "ingest":
		logger.L().Info().Msg("running ingestion")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		opts := ingestOptions(config.AppConfig, *dir, *days, *parallel, *force)
		if err := ingestion.ProcessDirectory(ctx, db, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "missing":
		from, to, err := parseDateRange(*start, *end, time.Now().UTC())
		if err != nil {
			logger.L().Fatal().Err(err).Msg("invalid date range")
		}

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		dates, err := app.NewCurveService(db, config.AppConfig).MissingDates(ctx, from, to)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("missing dates lookup failed")
		}
		logger.L().Info().Int("count", len(dates)).
			Str("start", from.Format(dateLayout)).Str("end", to.Format(dateLayout)).
			Msg("missing business days")
		printMissing(os.Stdout, dates)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
