package handlers

import (
	"net/http"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ModelHandler struct {
	templates *services.TemplateService
	logger    *zap.Logger
}

func NewModelHandler(templates *services.TemplateService, logger *zap.Logger) *ModelHandler {
	return &ModelHandler{
		templates: templates,
		logger:    logger.With(zap.String("handler", "model")),
	}
}

type modelRequest struct {
	Nome          string `json:"nome" binding:"required"`
	TipoDocumento string `json:"tipo_documento" binding:"required"`
	ConteudoHTML  string `json:"conteudo_html" binding:"required"`
}

func (h *ModelHandler) List(c *gin.Context) {
	modelos, err := h.templates.List(c.Request.Context(), callerSetor(c))
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, modelos)
}

func (h *ModelHandler) Create(c *gin.Context) {
	var req modelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, h.logger, apperr.Validation("nome, tipo_documento e conteudo_html são obrigatórios"))
		return
	}

	modelo, err := h.templates.Create(c.Request.Context(), callerSetor(c), services.TemplateInput{
		Nome:          req.Nome,
		TipoDocumento: req.TipoDocumento,
		ConteudoHTML:  req.ConteudoHTML,
	})
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, modelo)
}

func (h *ModelHandler) Update(c *gin.Context) {
	var req modelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, h.logger, apperr.Validation("nome, tipo_documento e conteudo_html são obrigatórios"))
		return
	}

	modelo, err := h.templates.Update(c.Request.Context(), c.Param("id"), callerSetor(c), services.TemplateInput{
		Nome:          req.Nome,
		TipoDocumento: req.TipoDocumento,
		ConteudoHTML:  req.ConteudoHTML,
	})
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, modelo)
}

func (h *ModelHandler) Delete(c *gin.Context) {
	if err := h.templates.Delete(c.Request.Context(), c.Param("id"), callerSetor(c)); err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
