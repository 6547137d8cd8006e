package models

import (
	"time"
)

// Assinatura is an append-only attestation row. The unique index on
// (documento_id, usuario_id) is the authoritative guard against a user
// signing the same document twice, even under concurrent requests.
type Assinatura struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	DocumentoID    string    `gorm:"not null;uniqueIndex:idx_assinatura_doc_usuario,priority:1" json:"documento_id"`
	UsuarioID      string    `gorm:"not null;uniqueIndex:idx_assinatura_doc_usuario,priority:2" json:"usuario_id"`
	DataAssinatura time.Time `gorm:"not null" json:"data_assinatura"`
	Usuario        *Usuario  `gorm:"foreignKey:UsuarioID;references:ID" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Assinatura) TableName() string {
	return "assinaturas"
}
