// Package render merges a template with document content, rasterizes the
// result to PDF through headless Chrome, and persists the artifact.
package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/db/models"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"go.uber.org/zap"
)

// PDFEngine rasterizes an HTML page to PDF bytes.
type PDFEngine interface {
	PDF(ctx context.Context, html string) ([]byte, error)
}

// ObjectStore persists an artifact and returns its durable public URL.
type ObjectStore interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Merge substitutes the document content into the template's marker.
func Merge(templateHTML, contentHTML string) string {
	return strings.ReplaceAll(templateHTML, models.MarkerConteudo, contentHTML)
}

type Service struct {
	engine  PDFEngine
	store   ObjectStore
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewService(engine PDFEngine, store ObjectStore, logger *zap.Logger, collector *metrics.Collector) *Service {
	return &Service{
		engine:  engine,
		store:   store,
		logger:  logger.With(zap.String("service", "render_service")),
		metrics: collector,
	}
}

// Render merges, rasterizes and stores in one synchronous pass. Any failure
// along the way is reported as a rendering failure; nothing is retried.
func (s *Service) Render(ctx context.Context, templateHTML, contentHTML string) (string, error) {
	start := time.Now()

	pdf, err := s.engine.PDF(ctx, Merge(templateHTML, contentHTML))
	if err != nil {
		s.logger.Error("PDF rasterization failed", zap.Error(err))
		return "", apperr.Upstream("Erro ao gerar PDF", err)
	}

	name := fmt.Sprintf("documentos/%d.pdf", time.Now().UnixMilli())
	url, err := s.store.Put(ctx, name, pdf)
	if err != nil {
		s.logger.Error("PDF upload failed", zap.Error(err))
		return "", apperr.Upstream("Erro ao fazer upload do PDF", err)
	}

	s.metrics.ObserveLatency("renderizacao_pdf", time.Since(start))
	s.metrics.ObserveSize("tamanho_pdf", float64(len(pdf)))
	s.logger.Info("PDF rendered", zap.String("artifact", name), zap.Int("bytes", len(pdf)))
	return url, nil
}
