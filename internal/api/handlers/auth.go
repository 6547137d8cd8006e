package handlers

import (
	"errors"
	"net/http"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/auth"
	"github.com/gabrieldubiela/DocControl/internal/db/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		db:     db,
		tokens: tokens,
		logger: logger.With(zap.String("handler", "auth")),
	}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	SetorID  int    `json:"setor_id" binding:"required"`
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, ah.logger, apperr.Validation("email, password e setor_id são obrigatórios"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		abortWithError(c, ah.logger, err)
		return
	}

	usuario := &models.Usuario{
		ID:      uuid.New().String(),
		Email:   req.Email,
		Senha:   hash,
		SetorID: req.SetorID,
	}
	if err := ah.db.Create(usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			abortWithError(c, ah.logger, apperr.Validation("Email já cadastrado"))
			return
		}
		abortWithError(c, ah.logger, apperr.Store(err))
		return
	}

	ah.logger.Info("User registered",
		zap.String("user_id", usuario.ID),
		zap.Int("setor_id", usuario.SetorID))
	c.JSON(http.StatusCreated, gin.H{"message": "Usuário criado com sucesso"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login answers every credential failure with the same message and status so
// a caller cannot tell an unknown email from a wrong password.
func (ah *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, ah.logger, apperr.Validation("email e password são obrigatórios"))
		return
	}

	var usuario models.Usuario
	if err := ah.db.Where("email = ?", req.Email).First(&usuario).Error; err != nil {
		ah.logger.Warn("Login failed", zap.String("client_ip", c.ClientIP()))
		abortWithError(c, ah.logger, apperr.ErrInvalidCredentials)
		return
	}

	if !auth.VerifyPassword(usuario.Senha, req.Password) {
		ah.logger.Warn("Login failed", zap.String("client_ip", c.ClientIP()))
		abortWithError(c, ah.logger, apperr.ErrInvalidCredentials)
		return
	}

	token, err := ah.tokens.Issue(usuario.ID, usuario.Email, usuario.SetorID)
	if err != nil {
		abortWithError(c, ah.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  usuario.Publico(),
	})
}
