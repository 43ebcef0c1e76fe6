package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/WathsalaM369/stress-management-coach/internal/model"
	"github.com/gin-gonic/gin"
)

// AuthConfig contém a configuração do middleware de autenticação
type AuthConfig struct {
	TokenAPI string
}

// BearerAuth retorna um middleware que valida o token Bearer da API
func BearerAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Success: false,
				Error:   "header Authorization ausente",
			})
			return
		}

		// Extrai o token do formato "Bearer {token}"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Success: false,
				Error:   "formato inválido, esperado: Bearer {token}",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(cfg.TokenAPI)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
				Success: false,
				Error:   "token inválido",
			})
			return
		}

		c.Next()
	}
}
