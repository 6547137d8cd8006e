package models

import (
	"time"
)

type Usuario struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Senha     string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	SetorID   int       `gorm:"index;not null" json:"setor_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// UsuarioPublico is the identity projection safe to return to clients.
type UsuarioPublico struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	SetorID int    `json:"setor_id"`
}

func (u *Usuario) Publico() UsuarioPublico {
	return UsuarioPublico{ID: u.ID, Email: u.Email, SetorID: u.SetorID}
}
