package handlers

import (
	"net/http"

	"github.com/gabrieldubiela/DocControl/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SignatureHandler struct {
	signatures *services.SignatureService
	logger     *zap.Logger
}

func NewSignatureHandler(signatures *services.SignatureService, logger *zap.Logger) *SignatureHandler {
	return &SignatureHandler{
		signatures: signatures,
		logger:     logger.With(zap.String("handler", "signature")),
	}
}

func (h *SignatureHandler) Sign(c *gin.Context) {
	assinatura, err := h.signatures.Sign(
		c.Request.Context(),
		c.Param("documentId"),
		callerID(c),
		callerSetor(c),
	)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"signature": assinatura,
	})
}

func (h *SignatureHandler) List(c *gin.Context) {
	assinaturas, err := h.signatures.List(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, assinaturas)
}
