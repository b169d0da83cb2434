package web

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"raffle-admin-panel/internal/common/errors"
	"raffle-admin-panel/internal/common/logger"
)

// fail answers with the backend-provided message when there is one, the
// fallback otherwise. The shape is always {"message": ...}.
func fail(c *gin.Context, err error, fallback string) {
	logger.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	c.JSON(errors.StatusFor(err), gin.H{"message": errors.Message(err, fallback)})
}

func badRequest(c *gin.Context, message string) {
	fail(c, errors.Validation(message), message)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
