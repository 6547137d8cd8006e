package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"go.uber.org/zap"
)

// TextGenerator produces HTML content from a prompt. The Gemini client is the
// production implementation.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GenerationService struct {
	generator TextGenerator
	logger    *zap.Logger
	metrics   *metrics.Collector
}

func NewGenerationService(generator TextGenerator, logger *zap.Logger, collector *metrics.Collector) *GenerationService {
	return &GenerationService{
		generator: generator,
		logger:    logger.With(zap.String("service", "generation_service")),
		metrics:   collector,
	}
}

// Generate enriches the user's prompt with the document type and formatting
// instructions and delegates to the text-generation provider. No retries; a
// provider failure surfaces immediately.
func (gs *GenerationService) Generate(ctx context.Context, prompt, tipoDocumento string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", apperr.Validation("prompt é obrigatório")
	}

	enhanced := fmt.Sprintf(
		"Gere um conteúdo para um %s com base nas seguintes informações: %s. "+
			"O conteúdo deve ser formatado em HTML, adequado para um documento formal, "+
			"com parágrafos bem estruturados e linguagem profissional.",
		tipoDocumento, prompt)

	start := time.Now()
	content, err := gs.generator.GenerateContent(ctx, enhanced)
	if err != nil {
		gs.logger.Error("Content generation failed", zap.Error(err))
		return "", apperr.Upstream("Erro ao gerar conteúdo", err)
	}

	gs.metrics.Increment("conteudos_gerados")
	gs.metrics.ObserveLatency("geracao_conteudo", time.Since(start))
	return content, nil
}
