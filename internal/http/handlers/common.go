package handlers

import (
	"strconv"
	"strings"

	"newsportal/internal/domain"
	"newsportal/internal/http/middleware"
	"newsportal/internal/utils"

	"github.com/gin-gonic/gin"
)

// Respond writes the envelope with the HTTP status mirroring its code family.
func Respond(c *gin.Context, env domain.Envelope) {
	c.JSON(env.Code.HTTPStatus(), env)
}

// RespondData wraps a success payload.
func RespondData(c *gin.Context, data any) {
	Respond(c, domain.NewResult(data))
}

// RespondStatus wraps a payload-free outcome.
func RespondStatus(c *gin.Context, code domain.StatusCode, message string) {
	Respond(c, domain.NewStatus(code, message))
}

// RespondError maps a domain error onto the envelope taxonomy. Anything
// unrecognized (storage failures included) surfaces as GenericError.
func RespondError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err), domain.IsInvalidAction(err), domain.IsConflict(err):
		RespondStatus(c, domain.StatusBadRequest, err.Error())
	case domain.IsAuth(err):
		RespondStatus(c, domain.StatusUnauthorized, err.Error())
	case domain.IsNotFound(err):
		RespondStatus(c, domain.StatusNotFound, err.Error())
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "error", err.Error())
		RespondStatus(c, domain.StatusGenericError, err.Error())
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondStatus(c, domain.StatusBadRequest, "request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondStatus(c, domain.StatusBadRequest, "invalid payload")
		return false
	}
	return true
}

// queryInt parses an int query param, using def when absent. A malformed
// value parses to 0 so the pagination validator rejects it.
func queryInt(c *gin.Context, name string, def int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
