package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMerge(t *testing.T) {
	merged := Merge("<html><body>{{CONTEUDO}}</body></html>", "<p>texto</p>")
	assert.Equal(t, "<html><body><p>texto</p></body></html>", merged)
}

func TestMergeWithoutMarkerLeavesTemplate(t *testing.T) {
	template := "<html><body>estático</body></html>"
	assert.Equal(t, template, Merge(template, "<p>ignorado</p>"))
}

func TestDiskStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:3001/files/")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "documentos/123.pdf", []byte("%PDF-fake"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/files/documentos/123.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "documentos", "123.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
}

func TestDiskStoreRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost/files")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../fora.pdf", []byte("x"))
	require.Error(t, err)
}

type stubEngine struct {
	html string
	pdf  []byte
	err  error
}

func (s *stubEngine) PDF(ctx context.Context, html string) ([]byte, error) {
	s.html = html
	return s.pdf, s.err
}

type stubStore struct {
	name string
	url  string
	err  error
}

func (s *stubStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	s.name = name
	return s.url, s.err
}

func TestServiceRender(t *testing.T) {
	engine := &stubEngine{pdf: []byte("%PDF-fake")}
	store := &stubStore{url: "http://files/documentos/1.pdf"}
	svc := NewService(engine, store, zap.NewNop(), metrics.NewCollector())

	url, err := svc.Render(context.Background(),
		"<html>{{CONTEUDO}}</html>", "<p>corpo</p>")
	require.NoError(t, err)
	assert.Equal(t, "http://files/documentos/1.pdf", url)
	assert.Equal(t, "<html><p>corpo</p></html>", engine.html)
	assert.True(t, strings.HasPrefix(store.name, "documentos/"))
	assert.True(t, strings.HasSuffix(store.name, ".pdf"))
}

func TestServiceRenderEngineFailure(t *testing.T) {
	engine := &stubEngine{err: errors.New("browser crashed")}
	svc := NewService(engine, &stubStore{}, zap.NewNop(), metrics.NewCollector())

	_, err := svc.Render(context.Background(), "{{CONTEUDO}}", "<p>x</p>")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUpstream, apperr.From(err).Code)
}

func TestServiceRenderUploadFailure(t *testing.T) {
	engine := &stubEngine{pdf: []byte("%PDF")}
	store := &stubStore{err: errors.New("bucket unavailable")}
	svc := NewService(engine, store, zap.NewNop(), metrics.NewCollector())

	_, err := svc.Render(context.Background(), "{{CONTEUDO}}", "<p>x</p>")
	require.Error(t, err)
	assert.Equal(t, apperr.CodeUpstream, apperr.From(err).Code)
}
