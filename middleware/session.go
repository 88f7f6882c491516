package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "sessionId"

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context.
// SessionId nhận từ header X-Session-ID hoặc cookie, cái nào có trước.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			if cookie, err := c.Cookie(sessionCookieName); err == nil {
				sessionId = cookie
			}
		}
		if sessionId == "" {
			// Tạo sessionId mới
			sessionId = uuid.NewString()
			c.SetCookie(sessionCookieName, sessionId, 0, "/", "", false, true)
		}

		// Gán vào context để dùng trong controller hoặc service
		c.Set("sessionId", sessionId)

		c.Writer.Header().Set("X-Session-ID", sessionId)

		c.Next()
	}
}
