package service

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// SessionCookieName 浏览器端会话 cookie 名
const SessionCookieName = "board_session"

// AuthService 口令闸门：
// - 配置了口令时，登录校验口令并发会话 token（Redis）
// - 未配置口令时闸门整体关闭，所有请求直接放行
// - 解析 token：cookie 优先，其次 Authorization: Bearer，最后 query
//
// Gin 等框架的中间件建议作为单独适配层，内部调用该 service。
type AuthService struct {
	sessions *SessionService

	// passHash 配置口令的 bcrypt 哈希；nil 表示未配置口令（闸门关闭）
	passHash []byte
}

func NewAuthService(rdb *redis.Client, passphrase string) *AuthService {
	a := &AuthService{sessions: NewSessionService(rdb)}
	if passphrase != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
		if err != nil {
			// bcrypt 只会因口令超长失败；超长口令截断到上限再哈希
			log.Printf("hash passphrase: %v, truncating", err)
			hash, _ = bcrypt.GenerateFromPassword([]byte(passphrase)[:72], bcrypt.DefaultCost)
		}
		a.passHash = hash
	}
	return a
}

// Enabled 闸门是否开启（是否配置了口令）
func (a *AuthService) Enabled() bool {
	return a != nil && a.passHash != nil
}

// Login 校验口令，通过后创建会话并返回 token。
func (a *AuthService) Login(ctx context.Context, passphrase, name string) (string, error) {
	if !a.Enabled() {
		return "", ErrBadPassphrase
	}
	if err := bcrypt.CompareHashAndPassword(a.passHash, []byte(passphrase)); err != nil {
		return "", ErrBadPassphrase
	}
	return a.sessions.Create(ctx, name)
}

// Authenticate 校验会话 token，返回会话展示名。
func (a *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	return a.sessions.Validate(ctx, token)
}

// Logout 注销会话。
func (a *AuthService) Logout(ctx context.Context, token string) error {
	return a.sessions.Revoke(ctx, token)
}

// ExtractToken 从 HTTP 请求中提取 token：cookie 优先，其次 Authorization: Bearer，最后 query: token。
func (a *AuthService) ExtractToken(r *http.Request) string {
	if r == nil {
		return ""
	}

	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return strings.TrimSpace(c.Value)
	}

	// Authorization: Bearer <token>
	ah := strings.TrimSpace(r.Header.Get("Authorization"))
	if ah != "" {
		parts := strings.SplitN(ah, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	// query: ?token=xxx
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// AuthenticateRequest 从请求里抽 token 并鉴权。
func (a *AuthService) AuthenticateRequest(ctx context.Context, r *http.Request) (string, string, error) {
	t := a.ExtractToken(r)
	name, err := a.Authenticate(ctx, t)
	return name, t, err
}
