package app

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bondcalc/config"
	"github.com/guttosm/bondcalc/internal/api"
	"github.com/guttosm/bondcalc/internal/ingestion"
	"github.com/guttosm/bondcalc/internal/service"
	"github.com/guttosm/bondcalc/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the bond and curve services on top of the storage layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close the DB connection.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	bonds := service.NewBondService(cfg.SolverPolicy(), storage.NewCalculationRepository(db))
	curves := NewCurveService(db, cfg)

	router := api.NewRouter(
		api.NewBondHandler(bonds),
		api.NewCurveHandler(curves),
		routerOptions(cfg),
	)

	api.NewHealthHandler(db.PingContext).Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

// NewCurveService wires a CurveService over db using the configured solver
// policy and holiday calendar. The missing-dates CLI mode shares it with the API.
func NewCurveService(db *sql.DB, cfg config.Config) service.CurveService {
	return service.NewCurveService(
		storage.NewCurveRepository(db),
		cfg.SolverPolicy(),
		ingestion.NewCalendar(cfg.Ingest.Holidays),
	)
}

// routerOptions falls back to the router defaults for unset values, which
// only happens when AppConfig was built without LoadConfig (tests).
func routerOptions(cfg config.Config) api.RouterOptions {
	opts := api.DefaultRouterOptions()
	if cfg.Server.RateLimit > 0 {
		opts.RateLimit = cfg.Server.RateLimit
	}
	if cfg.Server.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.Server.RequestTimeout
	}
	return opts
}
