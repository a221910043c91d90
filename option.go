package board_sdk

import "gorm.io/gorm"
import "github.com/go-redis/redis/v8"
import "time"

// BrandingProvider 品牌信息提供方。
// 配色推导、logo/favicon 生成都是纯展示层的事，核心只认这个接口：
// 返回应用名和一组颜色，由宿主注入实现。
type BrandingProvider interface {
	AppName() string
	Palette() map[string]string
}

// StaticBranding 固定品牌信息（默认实现）
type StaticBranding struct {
	Name   string
	Colors map[string]string
}

func (b StaticBranding) AppName() string {
	if b.Name == "" {
		return "Byteboard"
	}
	return b.Name
}

func (b StaticBranding) Palette() map[string]string {
	if len(b.Colors) == 0 {
		return map[string]string{
			"primary":   "#111827",
			"onPrimary": "#ffffff",
			"secondary": "#6b7280",
		}
	}
	return b.Colors
}

type Config struct {
	DB          *gorm.DB
	RDB         *redis.Client
	TablePrefix string

	// UploadDir 上传目录；为空时默认 ./uploads
	UploadDir string
	// MaxFileSize 单文件上限（字节），默认 2 GiB
	MaxFileSize int64

	// Retention 保留期；nil 表示永不过期
	Retention *time.Duration
	// SweepInterval 清理任务执行间隔，默认 10 分钟
	SweepInterval time.Duration

	// Passphrase 访问口令；为空时口令闸门整体关闭
	Passphrase string

	// RejectEmptyText 创建文本条目时是否拒绝空白内容（默认不拒绝）
	RejectEmptyText bool

	// PageSize 条目分页大小，默认 10
	PageSize int

	Branding BrandingProvider

	// retentionSet 标记 Retention 被 option 显式设置过（含设置为 never）
	retentionSet bool
}

type Option func(*Config)

func WithDB(db *gorm.DB) Option {
	return func(c *Config) {
		c.DB = db
	}
}

func WithRDB(RDB *redis.Client) Option {
	return func(c *Config) {
		c.RDB = RDB
	}
}

func WithTablePrefix(prefix string) Option {
	return func(c *Config) {
		c.TablePrefix = prefix
	}
}

func WithUploadDir(dir string) Option {
	return func(c *Config) {
		c.UploadDir = dir
	}
}

func WithMaxFileSize(bytes int64) Option {
	return func(c *Config) {
		c.MaxFileSize = bytes
	}
}

// WithRetention 设置保留期。清理任务只清早于 now-retention 的未固定条目。
func WithRetention(d time.Duration) Option {
	return func(c *Config) {
		c.Retention = &d
		c.retentionSet = true
	}
}

// WithNoRetention 关闭自动过期（条目永久保留）
func WithNoRetention() Option {
	return func(c *Config) {
		c.Retention = nil
		c.retentionSet = true
	}
}

func WithSweepInterval(d time.Duration) Option {
	return func(c *Config) {
		c.SweepInterval = d
	}
}

func WithPassphrase(p string) Option {
	return func(c *Config) {
		c.Passphrase = p
	}
}

// WithRejectEmptyText 创建文本条目时拒绝空白内容。
// 默认保持旧行为：创建不校验，编辑才校验。
func WithRejectEmptyText(reject bool) Option {
	return func(c *Config) {
		c.RejectEmptyText = reject
	}
}

func WithPageSize(n int) Option {
	return func(c *Config) {
		c.PageSize = n
	}
}

func WithBranding(b BrandingProvider) Option {
	return func(c *Config) {
		c.Branding = b
	}
}
