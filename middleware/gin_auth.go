package middleware

import (
	"net/http"
	"strings"

	"github.com/cydxin/board-sdk/response"
	"github.com/cydxin/board-sdk/service"
	"github.com/gin-gonic/gin"
)

const (
	// ContextNameKey gin context 里保存会话展示名的 key
	ContextNameKey  = "session_name"
	ContextTokenKey = "token"
)

// AuthOptions 可选配置。
type AuthOptions struct {
	// CookieKey 默认 board_session
	CookieKey string
	// HeaderKey 默认 Authorization
	HeaderKey string
	// QueryKey 默认 token
	QueryKey string
	// RedirectTo 非空时，鉴权失败的浏览器请求 302 到该路径（如 /login）而不是回 401
	RedirectTo string
}

func (o *AuthOptions) withDefaults() AuthOptions {
	if o == nil {
		return AuthOptions{CookieKey: service.SessionCookieName, HeaderKey: "Authorization", QueryKey: "token"}
	}
	out := *o
	if out.CookieKey == "" {
		out.CookieKey = service.SessionCookieName
	}
	if out.HeaderKey == "" {
		out.HeaderKey = "Authorization"
	}
	if out.QueryKey == "" {
		out.QueryKey = "token"
	}
	return out
}

/*
	GinAuthMiddleware Gin 口令闸门中间件：

- 未配置口令时直接放行（闸门关闭）
- 优先从 cookie 读取会话 token
- 其次 Authorization: Bearer <token>，最后 query 参数（默认 token=xxx）
- 校验 token（Redis）成功后，把会话展示名写入 gin.Context

使用：router.Use(middleware.GinAuthMiddleware(authService, nil))
*/
func GinAuthMiddleware(auth *service.AuthService, opt *AuthOptions) gin.HandlerFunc {
	cfg := opt.withDefaults()

	return func(c *gin.Context) {
		// 闸门关闭：无口令部署，全部放行
		if !auth.Enabled() {
			c.Next()
			return
		}

		// 1) cookie
		token := ""
		if ck, err := c.Cookie(cfg.CookieKey); err == nil {
			token = strings.TrimSpace(ck)
		}

		// 2) header bearer
		if token == "" {
			ah := strings.TrimSpace(c.GetHeader(cfg.HeaderKey))
			if ah != "" {
				parts := strings.SplitN(ah, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					token = strings.TrimSpace(parts[1])
				}
			}
		}

		// 3) query fallback
		if token == "" {
			token = strings.TrimSpace(c.Query(cfg.QueryKey))
		}

		if token == "" {
			abortUnauthorized(c, cfg, "missing session")
			return
		}

		name, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, cfg, err.Error())
			return
		}

		c.Set(ContextNameKey, name)
		c.Set(ContextTokenKey, token)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, cfg AuthOptions, msg string) {
	if cfg.RedirectTo != "" && acceptsHTML(c) {
		c.Redirect(http.StatusFound, cfg.RedirectTo)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Err(msg))
}

func acceptsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
