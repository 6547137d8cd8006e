package models

import (
	"time"
)

// MarkerConteudo is the substitution marker a template must contain. The
// renderer replaces it with the document's HTML at render time.
const MarkerConteudo = "{{CONTEUDO}}"

type Modelo struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Nome          string    `gorm:"not null" json:"nome"`
	TipoDocumento string    `gorm:"not null;index:idx_modelos_tipo_setor,priority:1" json:"tipo_documento"`
	SetorID       int       `gorm:"not null;index:idx_modelos_tipo_setor,priority:2" json:"setor_id"`
	ConteudoHTML  string    `gorm:"type:text;not null" json:"conteudo_html"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Modelo) TableName() string {
	return "modelos"
}
