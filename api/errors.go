package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInvalidBody = "Invalid request body"

// respondError maps service errors onto the three response kinds the API
// knows: 400 for missing fields, 404 for unknown status records and 500 with
// a fixed per-operation message for anything else.
func respondError(c *gin.Context, logger *zap.Logger, err error, internalMsg string) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(internalMsg,
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalMsg})
	}
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
}

// bindJSON decodes the request body into dst. An empty body leaves dst zero
// so the required-field check reports it like any other missing input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		respondBadBody(c)
		return false
	}
	return true
}
