package handlers

import (
	"context"
	"net/http"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PDFRenderer turns a (template, content) pair into a stored artifact URL.
type PDFRenderer interface {
	Render(ctx context.Context, templateHTML, contentHTML string) (string, error)
}

type DocumentHandler struct {
	documents  *services.DocumentService
	templates  *services.TemplateService
	generation *services.GenerationService
	renderer   PDFRenderer
	logger     *zap.Logger
}

func NewDocumentHandler(
	documents *services.DocumentService,
	templates *services.TemplateService,
	generation *services.GenerationService,
	renderer PDFRenderer,
	logger *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		documents:  documents,
		templates:  templates,
		generation: generation,
		renderer:   renderer,
		logger:     logger.With(zap.String("handler", "document")),
	}
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documents.List(c.Request.Context(), callerSetor(c))
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

type createDocumentRequest struct {
	Titulo        string `json:"titulo" binding:"required"`
	TipoDocumento string `json:"tipo_documento" binding:"required"`
	ConteudoHTML  string `json:"conteudo_html"`
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, h.logger, apperr.Validation("titulo e tipo_documento são obrigatórios"))
		return
	}

	doc, err := h.documents.Create(c.Request.Context(), callerSetor(c), services.CreateDocumentInput{
		Titulo:        req.Titulo,
		TipoDocumento: req.TipoDocumento,
		ConteudoHTML:  req.ConteudoHTML,
	})
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

type generateContentRequest struct {
	Prompt        string `json:"prompt" binding:"required"`
	TipoDocumento string `json:"tipo_documento" binding:"required"`
}

func (h *DocumentHandler) GenerateContent(c *gin.Context) {
	var req generateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, h.logger, apperr.Validation("prompt e tipo_documento são obrigatórios"))
		return
	}

	content, err := h.generation.Generate(c.Request.Context(), req.Prompt, req.TipoDocumento)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// GeneratePDF looks up the document and its sector's template for the same
// type, renders synchronously, and appends the artifact URL to the document.
func (h *DocumentHandler) GeneratePDF(c *gin.Context) {
	ctx := c.Request.Context()
	setorID := callerSetor(c)

	doc, err := h.documents.Get(ctx, c.Param("id"), setorID)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	modelo, err := h.templates.FindByTipo(ctx, doc.TipoDocumento, setorID)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	pdfURL, err := h.renderer.Render(ctx, modelo.ConteudoHTML, doc.ConteudoHTML)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	updated, err := h.documents.AppendPDFLink(ctx, doc, pdfURL)
	if err != nil {
		abortWithError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pdfUrl":   pdfURL,
		"document": updated,
	})
}
