package services

import (
	"testing"

	"github.com/gabrieldubiela/DocControl/internal/db"
	"github.com/gabrieldubiela/DocControl/internal/db/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gabrieldubiela/DocControl/pkg/metrics"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(database))
	return database
}

func newDocumentService(t *testing.T, database *gorm.DB) *DocumentService {
	t.Helper()
	return NewDocumentService(database, zap.NewNop(), metrics.NewCollector())
}

func newSignatureService(t *testing.T, database *gorm.DB) *SignatureService {
	t.Helper()
	return NewSignatureService(database, zap.NewNop(), metrics.NewCollector())
}

func newTemplateService(t *testing.T, database *gorm.DB) *TemplateService {
	t.Helper()
	return NewTemplateService(database, zap.NewNop())
}

func createUser(t *testing.T, database *gorm.DB, email string, setorID int) *models.Usuario {
	t.Helper()
	usuario := &models.Usuario{
		ID:      uuid.New().String(),
		Email:   email,
		Senha:   "hash-irrelevante",
		SetorID: setorID,
	}
	require.NoError(t, database.Create(usuario).Error)
	return usuario
}
