package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID はリクエスト ID を受け渡すヘッダー。
	HeaderRequestID = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID は受け取った X-Request-ID を引き継ぎ、無ければ UUID を採番してレスポンスにも載せる。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom は RequestID が設定した ID を返す。未設定なら空文字。
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
