package middleware

import (
	"strings"

	"bff/response"
	"bff/services"

	"github.com/gin-gonic/gin"
)

// tokenFromRequest lấy bearer token: ưu tiên Authorization header,
// fallback về cookie accessToken do backend set khi đăng nhập
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie("accessToken"); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware chặn các route cần đăng nhập; truyền roles để giới hạn thêm.
// Chưa xác thực thì trả 401 kèm redirect về /login; sai role thì 403.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, userRole, err := services.GetUserIDFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra role nếu có yêu cầu
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin user vào context
		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Set("accessToken", tokenString)
		c.Next()
	}
}
