package middleware

import (
	"net/http"
	"strings"

	"wedding/store"

	"github.com/gin-gonic/gin"
)

// Auth 认证中间件
// 浏览器端通过会话 Cookie 认证；App 端可通过 Authorization: Bearer <jwt> 认证。
// 认证通过后把 userID 写入请求上下文。
func Auth(sessions store.SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 会话 Cookie
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			sess, err := sessions.Get(token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "会话查询失败"})
				return
			}
			if sess != nil {
				c.Set("userID", sess.UserID)
				c.Set("sessionToken", token)
				c.Next()
				return
			}
		}

		// 2. Bearer JWT
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			claims, err := ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err == nil {
				c.Set("userID", claims.UserID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未登录"})
	}
}
