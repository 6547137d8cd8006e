// Package handlers maps HTTP requests onto the service layer. Every failure
// is translated exactly once, here, into the error taxonomy's JSON shape.
package handlers

import (
	"net/http"

	"github.com/gabrieldubiela/DocControl/internal/api/middleware"
	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func abortWithError(c *gin.Context, logger *zap.Logger, err error) {
	ae := apperr.From(err)
	if ae.Status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("request_id", c.GetString("requestID")),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.AbortWithStatusJSON(ae.Status, gin.H{
		"error": ae.Message,
		"code":  ae.Code,
	})
}

func callerSetor(c *gin.Context) int {
	return c.GetInt(middleware.CtxSetorID)
}

func callerID(c *gin.Context) string {
	return c.GetString(middleware.CtxUserID)
}
