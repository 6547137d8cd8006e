package services

import (
	"context"
	"errors"
	"strings"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/db/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TemplateService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewTemplateService(db *gorm.DB, logger *zap.Logger) *TemplateService {
	return &TemplateService{
		db:     db,
		logger: logger.With(zap.String("service", "template_service")),
	}
}

type TemplateInput struct {
	Nome          string
	TipoDocumento string
	ConteudoHTML  string
}

func (in *TemplateInput) validate() (*TemplateInput, error) {
	nome := strings.TrimSpace(in.Nome)
	tipo := models.NormalizeTipo(in.TipoDocumento)
	if nome == "" || tipo == "" || in.ConteudoHTML == "" {
		return nil, apperr.Validation("nome, tipo_documento e conteudo_html são obrigatórios")
	}
	if !strings.Contains(in.ConteudoHTML, models.MarkerConteudo) {
		return nil, apperr.Validation("conteudo_html deve conter o marcador " + models.MarkerConteudo)
	}
	return &TemplateInput{Nome: nome, TipoDocumento: tipo, ConteudoHTML: in.ConteudoHTML}, nil
}

func (ts *TemplateService) List(ctx context.Context, setorID int) ([]models.Modelo, error) {
	modelos := make([]models.Modelo, 0)
	err := ts.db.WithContext(ctx).
		Where("setor_id = ?", setorID).
		Order("created_at DESC").
		Find(&modelos).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return modelos, nil
}

func (ts *TemplateService) Create(ctx context.Context, setorID int, in TemplateInput) (*models.Modelo, error) {
	valid, err := in.validate()
	if err != nil {
		return nil, err
	}

	modelo := &models.Modelo{
		ID:            uuid.New().String(),
		Nome:          valid.Nome,
		TipoDocumento: valid.TipoDocumento,
		SetorID:       setorID,
		ConteudoHTML:  valid.ConteudoHTML,
	}
	if err := ts.db.WithContext(ctx).Create(modelo).Error; err != nil {
		return nil, apperr.Store(err)
	}

	ts.logger.Info("Template created",
		zap.String("id", modelo.ID),
		zap.String("tipo", modelo.TipoDocumento),
		zap.Int("setor_id", setorID))
	return modelo, nil
}

// Update rewrites a template after confirming it exists in the caller's
// sector. A template in another sector is reported as not found.
func (ts *TemplateService) Update(ctx context.Context, id string, setorID int, in TemplateInput) (*models.Modelo, error) {
	valid, err := in.validate()
	if err != nil {
		return nil, err
	}

	modelo, err := ts.getInSector(ctx, id, setorID)
	if err != nil {
		return nil, err
	}

	modelo.Nome = valid.Nome
	modelo.TipoDocumento = valid.TipoDocumento
	modelo.ConteudoHTML = valid.ConteudoHTML
	if err := ts.db.WithContext(ctx).Save(modelo).Error; err != nil {
		return nil, apperr.Store(err)
	}
	return modelo, nil
}

// Delete removes a template after the same sector-scoped existence check.
func (ts *TemplateService) Delete(ctx context.Context, id string, setorID int) error {
	modelo, err := ts.getInSector(ctx, id, setorID)
	if err != nil {
		return err
	}

	err = ts.db.WithContext(ctx).
		Where("id = ? AND setor_id = ?", id, setorID).
		Delete(&models.Modelo{}).Error
	if err != nil {
		return apperr.Store(err)
	}

	ts.logger.Info("Template deleted", zap.String("id", modelo.ID), zap.Int("setor_id", setorID))
	return nil
}

// FindByTipo resolves the template matching a document's type within the
// sector, used by the PDF rendering flow.
func (ts *TemplateService) FindByTipo(ctx context.Context, tipo string, setorID int) (*models.Modelo, error) {
	var modelo models.Modelo
	err := ts.db.WithContext(ctx).
		Where("tipo_documento = ? AND setor_id = ?", models.NormalizeTipo(tipo), setorID).
		First(&modelo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Modelo não encontrado")
		}
		return nil, apperr.Store(err)
	}
	return &modelo, nil
}

func (ts *TemplateService) getInSector(ctx context.Context, id string, setorID int) (*models.Modelo, error) {
	var modelo models.Modelo
	err := ts.db.WithContext(ctx).
		Where("id = ? AND setor_id = ?", id, setorID).
		First(&modelo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Modelo não encontrado")
		}
		return nil, apperr.Store(err)
	}
	return &modelo, nil
}
