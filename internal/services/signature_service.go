package services

import (
	"context"
	"errors"
	"time"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/db/models"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SignatureService struct {
	db      *gorm.DB
	logger  *zap.Logger
	metrics *metrics.Collector
}

func NewSignatureService(db *gorm.DB, logger *zap.Logger, collector *metrics.Collector) *SignatureService {
	return &SignatureService{
		db:      db,
		logger:  logger.With(zap.String("service", "signature_service")),
		metrics: collector,
	}
}

// AssinaturaComUsuario is a ledger row joined with the signer's public
// identity. The password hash never crosses this boundary.
type AssinaturaComUsuario struct {
	models.Assinatura
	UsuarioInfo models.UsuarioPublico `json:"usuario"`
}

// Sign records an attestation for (documento, usuario). The existing-pair
// lookup produces the friendly duplicate error; the unique index on the table
// is authoritative when two requests race past the lookup.
func (ss *SignatureService) Sign(ctx context.Context, documentoID string, usuarioID string, setorID int) (*models.Assinatura, error) {
	var doc models.Documento
	err := ss.db.WithContext(ctx).
		Where("id = ? AND setor_id = ?", documentoID, setorID).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Documento não encontrado")
		}
		return nil, apperr.Store(err)
	}

	assinatura := &models.Assinatura{
		ID:             uuid.New().String(),
		DocumentoID:    documentoID,
		UsuarioID:      usuarioID,
		DataAssinatura: time.Now(),
	}

	err = ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Assinatura
		err := tx.
			Where("documento_id = ? AND usuario_id = ?", documentoID, usuarioID).
			First(&existing).Error
		if err == nil {
			return apperr.ErrDuplicateSignature
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Store(err)
		}
		if err := tx.Create(assinatura).Error; err != nil {
			// A concurrent sign that won the race trips the unique index.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.ErrDuplicateSignature
			}
			return apperr.Store(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ss.metrics.Increment("documentos_assinados")
	ss.logger.Info("Document signed",
		zap.String("documento_id", documentoID),
		zap.String("usuario_id", usuarioID))
	return assinatura, nil
}

// List returns every signature on the document joined with the signer's
// public identity, newest first. An unsigned document yields an empty slice.
func (ss *SignatureService) List(ctx context.Context, documentoID string) ([]AssinaturaComUsuario, error) {
	var rows []models.Assinatura
	err := ss.db.WithContext(ctx).
		Preload("Usuario").
		Where("documento_id = ?", documentoID).
		Order("data_assinatura DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Store(err)
	}

	out := make([]AssinaturaComUsuario, 0, len(rows))
	for _, row := range rows {
		entry := AssinaturaComUsuario{Assinatura: row}
		if row.Usuario != nil {
			entry.UsuarioInfo = row.Usuario.Publico()
		}
		entry.Usuario = nil
		out = append(out, entry)
	}
	return out, nil
}
