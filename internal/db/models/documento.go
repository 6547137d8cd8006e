package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Known document types. The field stays an open enumeration: unknown values
// are accepted after normalization so a new type does not require a release,
// but normalization keeps documents joinable with their templates.
const (
	TipoDespacho  = "despacho"
	TipoOficio    = "oficio"
	TipoMemorando = "memorando"
	TipoPortaria  = "portaria"
)

// NormalizeTipo canonicalizes a tipo_documento value. Documents and templates
// are joined on this field, so both sides must normalize identically.
func NormalizeTipo(tipo string) string {
	return strings.ToLower(strings.TrimSpace(tipo))
}

type Documento struct {
	ID              string                      `gorm:"primaryKey" json:"id"`
	Titulo          string                      `gorm:"not null" json:"titulo"`
	TipoDocumento   string                      `gorm:"not null;uniqueIndex:idx_documentos_numero,priority:1" json:"tipo_documento"`
	SetorID         int                         `gorm:"not null;uniqueIndex:idx_documentos_numero,priority:2;index" json:"setor_id"`
	NumeroDocumento int                         `gorm:"not null;uniqueIndex:idx_documentos_numero,priority:3" json:"numero_documento"`
	ConteudoHTML    string                      `gorm:"type:text" json:"conteudo_html"`
	LinksPDF        datatypes.JSONSlice[string] `json:"links_pdf"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (Documento) TableName() string {
	return "documentos"
}
