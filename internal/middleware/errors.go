package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bondcalc/internal/domain/dto"
	"github.com/guttosm/bondcalc/internal/logger"
	"github.com/guttosm/bondcalc/internal/solver"
)

// ErrorHandler turns the last error attached with c.Error into a JSON
// dto.ErrorResponse, unless the handler already wrote a body.
//
// Status mapping:
//   - solver.ErrInvalidArgument                → 400 Bad Request
//   - solver.ErrBracketing, ErrConvergence     → 422 Unprocessable Entity
//   - context.DeadlineExceeded                 → 504 Gateway Timeout
//   - anything else                            → 500 Internal Server Error
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//	...
//	if err != nil { _ = c.Error(err); return }
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status, message := StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.With("http").Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// StatusFor classifies an error into an HTTP status and a short message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, solver.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, solver.ErrBracketing), errors.Is(err, solver.ErrConvergence):
		return http.StatusUnprocessableEntity, "calculation failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
