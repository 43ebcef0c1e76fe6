package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/WathsalaM369/stress-management-coach/internal/metrics"
)

// Metrics registra contadores de sucesso/falha por requisição
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.Global().RecordRequest(c.Writer.Status() < 400)
	}
}
