package services

import (
	"context"
	"testing"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templateHTML = "<html><body>{{CONTEUDO}}</body></html>"

func TestTemplateCreateAndList(t *testing.T) {
	database := newTestDB(t)
	ts := newTemplateService(t, database)
	ctx := context.Background()

	modelo, err := ts.Create(ctx, 1, TemplateInput{
		Nome:          "Modelo de Ofício",
		TipoDocumento: "Oficio",
		ConteudoHTML:  templateHTML,
	})
	require.NoError(t, err)
	assert.Equal(t, "oficio", modelo.TipoDocumento)

	modelos, err := ts.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, modelos, 1)

	// Another sector sees nothing.
	modelos, err = ts.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, modelos)
}

func TestTemplateRequiresMarker(t *testing.T) {
	database := newTestDB(t)
	ts := newTemplateService(t, database)

	_, err := ts.Create(context.Background(), 1, TemplateInput{
		Nome:          "Sem marcador",
		TipoDocumento: "oficio",
		ConteudoHTML:  "<html><body>fixo</body></html>",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.From(err).Code)
}

func TestTemplateUpdate(t *testing.T) {
	database := newTestDB(t)
	ts := newTemplateService(t, database)
	ctx := context.Background()

	modelo, err := ts.Create(ctx, 1, TemplateInput{
		Nome:          "Original",
		TipoDocumento: "oficio",
		ConteudoHTML:  templateHTML,
	})
	require.NoError(t, err)

	updated, err := ts.Update(ctx, modelo.ID, 1, TemplateInput{
		Nome:          "Renomeado",
		TipoDocumento: "despacho",
		ConteudoHTML:  templateHTML,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renomeado", updated.Nome)
	assert.Equal(t, "despacho", updated.TipoDocumento)
}

func TestTemplateCrossSectorIsNotFound(t *testing.T) {
	database := newTestDB(t)
	ts := newTemplateService(t, database)
	ctx := context.Background()

	modelo, err := ts.Create(ctx, 1, TemplateInput{
		Nome:          "Do setor 1",
		TipoDocumento: "oficio",
		ConteudoHTML:  templateHTML,
	})
	require.NoError(t, err)

	_, err = ts.Update(ctx, modelo.ID, 2, TemplateInput{
		Nome:          "Invasor",
		TipoDocumento: "oficio",
		ConteudoHTML:  templateHTML,
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperr.From(err).Status)

	err = ts.Delete(ctx, modelo.ID, 2)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.From(err).Status)

	// Still present for its own sector.
	modelos, err := ts.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, modelos, 1)
}

func TestTemplateDelete(t *testing.T) {
	database := newTestDB(t)
	ts := newTemplateService(t, database)
	ctx := context.Background()

	modelo, err := ts.Create(ctx, 1, TemplateInput{
		Nome:          "Descartável",
		TipoDocumento: "oficio",
		ConteudoHTML:  templateHTML,
	})
	require.NoError(t, err)

	require.NoError(t, ts.Delete(ctx, modelo.ID, 1))

	err = ts.Delete(ctx, modelo.ID, 1)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.From(err).Status)
}

func TestFindByTipo(t *testing.T) {
	database := newTestDB(t)
	ts := newTemplateService(t, database)
	ctx := context.Background()

	_, err := ts.Create(ctx, 1, TemplateInput{
		Nome:          "Modelo",
		TipoDocumento: "oficio",
		ConteudoHTML:  templateHTML,
	})
	require.NoError(t, err)

	modelo, err := ts.FindByTipo(ctx, "Oficio", 1)
	require.NoError(t, err)
	assert.Equal(t, "oficio", modelo.TipoDocumento)

	_, err = ts.FindByTipo(ctx, "oficio", 2)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.From(err).Status)
}
