package service

import (
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// Service 基础服务，包含数据库和配置
type Service struct {
	DB          *gorm.DB
	RDB         *redis.Client
	TablePrefix string

	// Broadcast 用于向全部在线客户端广播事件的回调函数
	// 避免循环依赖，通过函数注入的方式（由 engine 注入 WsServer.BroadcastEvent）
	Broadcast func(event string, payload interface{})

	// Files 上传目录管理（保存/删除备份文件）
	Files *FileStore

	// RejectEmptyText 创建文本条目时是否拒绝空白内容。
	// 默认 false：保持“创建不校验、编辑校验”的既有行为。
	RejectEmptyText bool

	// PageSize 条目分页大小，0 表示用默认值
	PageSize int
}

// Table 获取带前缀的表名
func (s *Service) Table(name string) *gorm.DB {
	return s.DB.Table(name)
}

// notify 广播事件；未注入回调时为 no-op（纯库用法/测试）
func (s *Service) notify(event string, payload interface{}) {
	if s.Broadcast != nil {
		s.Broadcast(event, payload)
	}
}
