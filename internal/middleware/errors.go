package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/statusinvest-mcp/internal/domain/dto"
	"github.com/guttosm/statusinvest-mcp/internal/domain/models"
	"github.com/guttosm/statusinvest-mcp/internal/logger"
	"github.com/guttosm/statusinvest-mcp/internal/service"
)

// AbortWithError stops the handler chain and writes a standardized JSON error.
//
// Parameters:
//   - c (*gin.Context): current request context.
//   - status (int): HTTP status to send.
//   - message (string): client-facing summary.
//   - err (error): optional cause, copied into ErrorDetails and recorded on c.Errors.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// ErrorHandler converts errors attached with c.Error into a JSON response
// when the handler did not write one itself.
//
// Status mapping:
//   - models.ErrInvalidQuery: 400 Bad Request.
//   - service.ErrInternal: 500 Internal Server Error.
//   - anything else: 500 with a generic upstream failure message.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	status, message := classify(err)

	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Err(err).
		Str("request_id", toString(rid)).
		Int("status", status).
		Msg("request failed")

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidQuery):
		return http.StatusBadRequest, "Invalid query"
	case errors.Is(err, service.ErrInternal):
		return http.StatusInternalServerError, "Internal server error"
	default:
		return http.StatusInternalServerError, "Failed to fetch stock data"
	}
}
