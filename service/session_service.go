package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	// 默认会话过期时间
	defaultSessionTTL = 7 * 24 * time.Hour
)

// SessionService 专门负责会话 token 的生成、存储、校验与注销。
// 看板没有用户账号体系，口令闸门通过后发一个匿名会话。
// Redis Key 设计：
// - bb:session:{token} -> 展示名（String, TTL）
//
// 这样可以：
// - 单会话注销：DEL sessionKey
// - 滑动过期：每次校验通过后 Expire 续期
type SessionService struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionService(rdb *redis.Client) *SessionService {
	return &SessionService{rdb: rdb, ttl: defaultSessionTTL}
}

func (s *SessionService) ensure() error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis client is nil")
	}
	return nil
}

func (s *SessionService) sessionKey(token string) string {
	return "bb:session:" + token
}

// Create 新建会话，返回 token。name 是客户端上报的展示名，可为空。
func (s *SessionService) Create(ctx context.Context, name string) (string, error) {
	if err := s.ensure(); err != nil {
		return "", err
	}

	token := uuid.NewString()
	if name == "" {
		name = "anonymous"
	}
	if err := s.rdb.Set(ctx, s.sessionKey(token), name, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Validate 校验 token 并滑动续期，返回会话展示名。
func (s *SessionService) Validate(ctx context.Context, token string) (string, error) {
	if err := s.ensure(); err != nil {
		return "", err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("missing token")
	}

	name, err := s.rdb.Get(ctx, s.sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", fmt.Errorf("invalid or expired session")
		}
		return "", err
	}

	// 滑动过期：每次访问都续期
	_ = s.rdb.Expire(ctx, s.sessionKey(token), s.ttl).Err()
	return name, nil
}

// Revoke 注销会话。token 不存在视为已注销。
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if err := s.ensure(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.rdb.Del(ctx, s.sessionKey(token)).Err()
}
