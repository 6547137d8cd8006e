package services

import (
	"context"
	"errors"
	"testing"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)
	ctx := context.Background()

	var numbers []int
	for i := 0; i < 5; i++ {
		doc, err := ds.Create(ctx, 1, CreateDocumentInput{
			Titulo:        "Ofício de teste",
			TipoDocumento: "oficio",
			ConteudoHTML:  "<p>conteúdo</p>",
		})
		require.NoError(t, err)
		numbers = append(numbers, doc.NumeroDocumento)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers)
}

func TestNumberingPartitionsAreIndependent(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := ds.Create(ctx, 1, CreateDocumentInput{Titulo: "Ofício", TipoDocumento: "oficio"})
		require.NoError(t, err)
	}

	// Same type, different sector starts over at 1.
	doc, err := ds.Create(ctx, 2, CreateDocumentInput{Titulo: "Ofício", TipoDocumento: "oficio"})
	require.NoError(t, err)
	assert.Equal(t, 1, doc.NumeroDocumento)

	// Different type, same sector also starts at 1.
	doc, err = ds.Create(ctx, 1, CreateDocumentInput{Titulo: "Despacho", TipoDocumento: "despacho"})
	require.NoError(t, err)
	assert.Equal(t, 1, doc.NumeroDocumento)
}

func TestCreateNormalizesTipo(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)
	ctx := context.Background()

	first, err := ds.Create(ctx, 1, CreateDocumentInput{Titulo: "A", TipoDocumento: "oficio"})
	require.NoError(t, err)
	require.Equal(t, 1, first.NumeroDocumento)

	// Case and whitespace variants land in the same partition.
	second, err := ds.Create(ctx, 1, CreateDocumentInput{Titulo: "B", TipoDocumento: "  Oficio "})
	require.NoError(t, err)
	assert.Equal(t, "oficio", second.TipoDocumento)
	assert.Equal(t, 2, second.NumeroDocumento)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)

	_, err := ds.Create(context.Background(), 1, CreateDocumentInput{Titulo: "  ", TipoDocumento: "oficio"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)

	_, err = ds.Create(context.Background(), 1, CreateDocumentInput{Titulo: "Título", TipoDocumento: ""})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
}

func TestListIsScopedBySector(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)
	ctx := context.Background()

	_, err := ds.Create(ctx, 1, CreateDocumentInput{Titulo: "Setor 1", TipoDocumento: "oficio"})
	require.NoError(t, err)
	_, err = ds.Create(ctx, 2, CreateDocumentInput{Titulo: "Setor 2", TipoDocumento: "oficio"})
	require.NoError(t, err)

	docs, err := ds.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Setor 1", docs[0].Titulo)

	docs, err = ds.List(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGetHidesOtherSectors(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)
	ctx := context.Background()

	doc, err := ds.Create(ctx, 1, CreateDocumentInput{Titulo: "Restrito", TipoDocumento: "oficio"})
	require.NoError(t, err)

	got, err := ds.Get(ctx, doc.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)

	// Another sector sees not-found, not forbidden.
	_, err = ds.Get(ctx, doc.ID, 2)
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.Equal(t, 404, ae.Status)
}

func TestAppendPDFLinkIsAppendOnly(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)
	ctx := context.Background()

	doc, err := ds.Create(ctx, 1, CreateDocumentInput{Titulo: "Com PDF", TipoDocumento: "oficio"})
	require.NoError(t, err)
	require.Empty(t, doc.LinksPDF)

	doc, err = ds.AppendPDFLink(ctx, doc, "http://files/documentos/1.pdf")
	require.NoError(t, err)
	doc, err = ds.AppendPDFLink(ctx, doc, "http://files/documentos/2.pdf")
	require.NoError(t, err)

	reloaded, err := ds.Get(ctx, doc.ID, 1)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"http://files/documentos/1.pdf", "http://files/documentos/2.pdf"},
		[]string(reloaded.LinksPDF))
}

func TestCreateFailsWhenReadFails(t *testing.T) {
	database := newTestDB(t)
	ds := newDocumentService(t, database)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = ds.Create(context.Background(), 1, CreateDocumentInput{Titulo: "Falha", TipoDocumento: "oficio"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrDuplicateSignature))
}
