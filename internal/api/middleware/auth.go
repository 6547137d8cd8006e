package middleware

import (
	"net/http"
	"strings"

	"github.com/gabrieldubiela/DocControl/internal/apperr"
	"github.com/gabrieldubiela/DocControl/internal/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set for authenticated requests.
const (
	CtxUserID  = "userID"
	CtxEmail   = "email"
	CtxSetorID = "setorID"
)

type AuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates the bearer token and exposes its identity and sector
// claims to handlers. Every protected read/write is scoped by CtxSetorID.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "Token não fornecido")
			return
		}

		claims, err := am.tokens.Verify(token)
		if err != nil {
			unauthorized(c, "Token inválido")
			return
		}

		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxSetorID, claims.SetorID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
		"code":  apperr.CodeAuth,
	})
}
