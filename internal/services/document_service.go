package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/db/models"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DocumentService struct {
	db      *gorm.DB
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewDocumentService(db *gorm.DB, logger *zap.Logger, collector *metrics.Collector) *DocumentService {
	return &DocumentService{
		db:      db,
		logger:  logger.With(zap.String("service", "document_service")),
		metrics: collector,
	}
}

type CreateDocumentInput struct {
	Titulo        string
	TipoDocumento string
	ConteudoHTML  string
}

// Create assigns the next sequential number within the (tipo, setor)
// partition and inserts the document, both inside one transaction. The unique
// index on (tipo_documento, setor_id, numero_documento) backstops concurrent
// creations that read the same maximum.
func (ds *DocumentService) Create(ctx context.Context, setorID int, in CreateDocumentInput) (*models.Documento, error) {
	titulo := strings.TrimSpace(in.Titulo)
	tipo := models.NormalizeTipo(in.TipoDocumento)
	if titulo == "" || tipo == "" {
		return nil, apperr.Validation("titulo e tipo_documento são obrigatórios")
	}

	doc := &models.Documento{
		ID:            uuid.New().String(),
		Titulo:        titulo,
		TipoDocumento: tipo,
		SetorID:       setorID,
		ConteudoHTML:  in.ConteudoHTML,
		LinksPDF:      datatypes.JSONSlice[string]{},
	}

	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextNumber(tx, tipo, setorID)
		if err != nil {
			return err
		}
		doc.NumeroDocumento = next
		return tx.Create(doc).Error
	})
	if err != nil {
		return nil, apperr.Store(err)
	}

	ds.metrics.Increment("documentos_criados")
	ds.logger.Info("Document created",
		zap.String("id", doc.ID),
		zap.String("tipo", tipo),
		zap.Int("setor_id", setorID),
		zap.Int("numero", doc.NumeroDocumento))
	return doc, nil
}

// nextNumber returns one greater than the current maximum inside the
// (tipo, setor) partition, or 1 when the partition is empty.
func nextNumber(tx *gorm.DB, tipo string, setorID int) (int, error) {
	var last models.Documento
	err := tx.
		Where("tipo_documento = ? AND setor_id = ?", tipo, setorID).
		Order("numero_documento DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return last.NumeroDocumento + 1, nil
}

// List returns every document visible to the caller's sector, newest first.
func (ds *DocumentService) List(ctx context.Context, setorID int) ([]models.Documento, error) {
	docs := make([]models.Documento, 0)
	err := ds.db.WithContext(ctx).
		Where("setor_id = ?", setorID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, apperr.Store(err)
	}
	return docs, nil
}

// Get fetches a document by id within the caller's sector. A document owned
// by another sector is reported as not found, never as forbidden.
func (ds *DocumentService) Get(ctx context.Context, id string, setorID int) (*models.Documento, error) {
	var doc models.Documento
	err := ds.db.WithContext(ctx).
		Where("id = ? AND setor_id = ?", id, setorID).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Documento não encontrado")
		}
		return nil, apperr.Store(err)
	}
	return &doc, nil
}

// AppendPDFLink appends a rendered artifact URL to the document's locator
// list. The list is append-only; existing entries are never rewritten.
func (ds *DocumentService) AppendPDFLink(ctx context.Context, doc *models.Documento, pdfURL string) (*models.Documento, error) {
	doc.LinksPDF = append(doc.LinksPDF, pdfURL)
	doc.UpdatedAt = time.Now()

	err := ds.db.WithContext(ctx).
		Model(&models.Documento{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"links_pdf":  doc.LinksPDF,
			"updated_at": doc.UpdatedAt,
		}).Error
	if err != nil {
		return nil, apperr.Store(err)
	}

	ds.metrics.Increment("pdfs_gerados")
	return doc, nil
}
