package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	board_sdk "github.com/cydxin/board-sdk"
	"github.com/cydxin/board-sdk/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// 1. 读取配置（文件缺失时用默认值启动）
	cfg := board_sdk.LoadConfig("board.yaml")

	// 2. 初始化数据库连接
	dsn := "root:password@tcp(127.0.0.1:3306)/board_db?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("数据库连接失败:", err)
	}

	// 3. Redis 用于会话存储（未配口令时可以不配 Redis）
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})

	// 4. 初始化 Board Engine（单例模式，全局只需调用一次）
	opts := []board_sdk.Option{
		board_sdk.WithDB(db),
		board_sdk.WithRDB(rdb),
		board_sdk.WithTablePrefix("bb_"),
		board_sdk.WithUploadDir(cfg.Storage.UploadDir),
		board_sdk.WithMaxFileSize(board_sdk.ParseFileSize(cfg.Storage.MaxFileSize)),
		board_sdk.WithPassphrase(cfg.Auth.Passphrase),
		board_sdk.WithBranding(board_sdk.StaticBranding{
			Name:   cfg.Branding.AppName,
			Colors: map[string]string{"primary": cfg.Branding.PrimaryColor},
		}),
	}
	if retention := board_sdk.ParseRetention(cfg.Storage.Retention); retention == nil {
		log.Println("条目永不过期，清理器空转")
		opts = append(opts, board_sdk.WithNoRetention())
	} else {
		opts = append(opts, board_sdk.WithRetention(*retention))
	}
	engine := board_sdk.NewEngine(opts...)

	// 5. 创建 Gin 路由
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 注册 Swagger UI
	board_sdk.RegisterSwagger(r, "/swagger/*any")

	// 6. 开放路由：登录 / 部署信息 / 品牌
	r.POST("/login", engine.GinHandleLogin)
	r.GET("/info", engine.GinHandleInfo)
	r.GET("/branding", engine.GinHandleBranding)

	// 7. 口令闸门之内的业务路由
	auth := engine.GinAuthMiddleware(&middleware.AuthOptions{RedirectTo: "/login.html"})
	api := r.Group("/", auth)
	{
		api.POST("/logout", engine.GinHandleLogout)

		// 条目
		api.POST("/upload", engine.GinHandleUpload)
		api.POST("/text", engine.GinHandleCreateText)
		api.GET("/items/:channel", engine.GinHandleGetItems)
		api.DELETE("/item/:id", engine.GinHandleDeleteItem)
		api.POST("/pin/:id", engine.GinHandleTogglePin)
		api.PATCH("/item/:id/move", engine.GinHandleMoveItem)
		api.PATCH("/item/:id/title", engine.GinHandleEditTitle)
		api.PATCH("/item/:id/content", engine.GinHandleEditContent)
		api.GET("/search/:channel", engine.GinHandleSearch)
		api.GET("/search/:channel/:q", engine.GinHandleSearch)

		// 频道
		api.GET("/channels", engine.GinHandleGetChannels)
		api.POST("/channels", engine.GinHandleCreateChannel)
		api.DELETE("/channels/:name", engine.GinHandleDeleteChannel)
		api.PATCH("/channels/:name", engine.GinHandleRenameChannel)
		api.POST("/channels/:name/pin", engine.GinHandleToggleChannelPin)

		// 上传的文件直接静态下载
		api.Static("/uploads", engine.UploadDir())

		// WebSocket 连接：ws://localhost:3000/ws?name=YOUR_NAME
		api.GET("/ws", func(c *gin.Context) {
			engine.ServeWS(c.Writer, c.Request)
		})
	}

	// 8. 启动服务器并优雅退出
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Println("Board Server 启动在", addr)
		log.Printf("Swagger UI: http://localhost%s/swagger/index.html", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("服务器启动失败:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，开始优雅关闭")

	// 卡死保护：10 秒内没关完就强制退出
	forced := time.AfterFunc(10*time.Second, func() {
		log.Println("关闭超时，强制退出")
		os.Exit(1)
	})
	defer forced.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("HTTP 关闭失败:", err)
	}

	engine.Stop()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
	log.Println("已退出")
}
