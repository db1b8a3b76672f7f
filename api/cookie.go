package api

import (
	"net/http"
	"time"

	"wedding/config"

	"github.com/gin-gonic/gin"
)

// getCookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输），并设置 SameSite 以防止 CSRF
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GlobalConfig
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	// SameSite=Lax: 防止跨站 POST 请求携带 Cookie，同时允许同站导航
	sameSite = http.SameSiteLaxMode
	return
}

// setSessionCookie 下发 HTTP-only 会话 Cookie
func setSessionCookie(c *gin.Context, name, token string, ttl time.Duration) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(name, token, int(ttl.Seconds()), "/", "", secure, true)
}

// clearSessionCookie 清除会话 Cookie
func clearSessionCookie(c *gin.Context, name string) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
