package board_sdk

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cydxin/board-sdk/middleware"
	"github.com/cydxin/board-sdk/models"
	"github.com/cydxin/board-sdk/service"
	"github.com/gin-gonic/gin"
)

// defaultRetention 未显式配置时条目保留 24 小时
const defaultRetention = 24 * time.Hour

type BoardEngine struct {
	config *Config

	ItemService    *service.ItemService
	ChannelService *service.ChannelService
	AuthService    *service.AuthService // 口令闸门
	Sweeper        *service.Sweeper
	WsServer       *WsServer
}

var (
	Instance *BoardEngine
	once     sync.Once
)

// NewEngine 创建实例
// 使用选项模式传入配置，Option回调
func NewEngine(opts ...Option) *BoardEngine {
	once.Do(func() {
		c := &Config{
			TablePrefix: "bb_", // Default
		}
		for _, opt := range opts {
			opt(c)
		}
		if !c.retentionSet {
			d := defaultRetention
			c.Retention = &d
		}
		if c.Branding == nil {
			c.Branding = StaticBranding{}
		}

		Instance = &BoardEngine{config: c}

		// 初始化 WS
		Instance.WsServer = NewWsServer()
		go Instance.WsServer.Run()

		// 初始化上传目录
		files, err := service.NewFileStore(c.UploadDir, c.MaxFileSize)
		if err != nil {
			// 兜底到系统临时目录，保证进程能起来
			log.Printf("init upload dir failed: %v, falling back to temp dir", err)
			files, err = service.NewFileStore(filepath.Join(os.TempDir(), "board-uploads"), c.MaxFileSize)
			if err != nil {
				// 降级运行：Files 保持 nil，文件操作统一拒绝，文本功能不受影响
				files = nil
				log.Printf("init fallback upload dir failed: %v, file operations disabled", err)
			}
		}

		// 初始化基础 Service，注入广播回调
		baseService := &service.Service{
			DB:              c.DB,
			RDB:             c.RDB,
			TablePrefix:     c.TablePrefix,
			Broadcast:       Instance.WsServer.BroadcastEvent, // 注入 WebSocket 广播函数
			Files:           files,
			RejectEmptyText: c.RejectEmptyText,
			PageSize:        c.PageSize,
		}

		// 初始化各个 Service
		Instance.ItemService = service.NewItemService(baseService)
		Instance.ChannelService = service.NewChannelService(baseService)
		Instance.AuthService = service.NewAuthService(c.RDB, c.Passphrase) // 初始化口令闸门

		// 迁移表 + 默认频道
		if err := Instance.AutoMigrate(); err != nil {
			log.Printf("AutoMigrate failed: %v", err)
		}

		// 启动保留期清理任务
		Instance.Sweeper = service.NewSweeper(baseService, c.Retention, c.SweepInterval)
		go Instance.Sweeper.Run()

		// 绑定 WS 上行消息处理（join / seen）
		Instance.bindWsHandlersOnMessage()
	})

	return Instance
}

// Stop 停掉后台任务（清理任务）。HTTP 层的 drain 由宿主的 http.Server 负责。
func (c *BoardEngine) Stop() {
	if c.Sweeper != nil {
		c.Sweeper.Stop()
	}
}

// Branding 当前品牌信息提供方
func (c *BoardEngine) Branding() BrandingProvider {
	return c.config.Branding
}

// MaxFileSize 上传大小上限（字节）
func (c *BoardEngine) MaxFileSize() int64 {
	if c.ItemService != nil && c.ItemService.Files != nil {
		return c.ItemService.Files.MaxSize()
	}
	return service.DefaultMaxFileSize
}

// UploadDir 上传目录（宿主挂静态路由用）
func (c *BoardEngine) UploadDir() string {
	if c.ItemService != nil && c.ItemService.Files != nil {
		return c.ItemService.Files.Dir()
	}
	return ""
}

// ServeWS 处理 WebSocket 请求
func (c *BoardEngine) ServeWS(w http.ResponseWriter, r *http.Request) {
	c.WsServer.ServeWS(w, r)
}

// GinAuthMiddleware 返回配置好的 Gin 鉴权中间件
// 使用 BoardEngine 内部的 AuthService 和 Redis 配置
//
// 使用示例:
//
//	engine := board_sdk.NewEngine(...)
//	r := gin.Default()
//	r.Use(engine.GinAuthMiddleware(nil)) // 使用默认配置
func (c *BoardEngine) GinAuthMiddleware(opt *middleware.AuthOptions) gin.HandlerFunc {
	return middleware.GinAuthMiddleware(c.AuthService, opt)
}

// AutoMigrate 建表 + 幂等补列 + 默认频道播种
func (c *BoardEngine) AutoMigrate() error {
	db := c.config.DB
	if db == nil {
		log.Println("AutoMigrate skipped: no DB configured")
		return nil
	}
	log.Println("AutoMigrate...")
	if err := db.AutoMigrate(
		&models.Item{},
		&models.Channel{},
	); err != nil {
		return err
	}
	if err := c.EnsureColumns(); err != nil {
		return err
	}
	return c.SeedDefaultChannels()
}
