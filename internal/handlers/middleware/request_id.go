package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDContextKey é a chave do request id no contexto do Gin
	RequestIDContextKey = "request_id"
	// RequestIDHeader é o header propagado na resposta
	RequestIDHeader = "X-Request-ID"
)

// RequestID atribui um identificador por requisição, reaproveitando o
// header do cliente quando presente
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
