package api

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/guttosm/bondcalc/docs"
	"github.com/guttosm/bondcalc/internal/middleware"
)

// RouterOptions tunes the global middlewares.
type RouterOptions struct {
	RateLimit      int           // requests per client IP per minute
	RequestTimeout time.Duration // deadline applied to every request context
}

// DefaultRouterOptions matches the configuration defaults.
func DefaultRouterOptions() RouterOptions {
	return RouterOptions{RateLimit: 60, RequestTimeout: 10 * time.Second}
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/api/v1/bonds, /api/v1/curves).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(bonds *BondHandler, curves *CurveHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit, time.Minute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		b := v1.Group("/bonds")
		b.POST("/forward-rate", bonds.ForwardRate)
		b.POST("/price", bonds.Price)
		b.POST("/par-yield", bonds.ParYield)
		b.POST("/spot-rate", bonds.SpotRate)
		b.POST("/zero-price", bonds.ZeroPrice)
		b.POST("/ytm", bonds.YieldToMaturity)
		b.POST("/horizon-return", bonds.HorizonReturn)

		cv := v1.Group("/curves")
		cv.GET("/missing", curves.MissingDates)
		cv.GET("/tenors/:tenor/stats", curves.TenorStats)
		cv.GET("/:date", curves.GetCurve)
	}

	return router
}
