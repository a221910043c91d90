package service

import (
	"log"
	"sync"
	"time"

	"github.com/cydxin/board-sdk/event"
	"github.com/cydxin/board-sdk/models"
)

// DefaultSweepInterval 清理任务默认执行间隔
const DefaultSweepInterval = 10 * time.Minute

// Sweeper 保留期清理任务：周期性清除过期且未固定的条目及其备份文件。
// retention 为 nil 表示永不过期，每轮直接 no-op。
// 固定条目无论多旧都不会被清。
type Sweeper struct {
	*Service
	itemDAO *models.ItemDAO

	retention *time.Duration
	interval  time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

func NewSweeper(s *Service, retention *time.Duration, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		Service:   s,
		itemDAO:   models.NewItemDAO(s.DB),
		retention: retention,
		interval:  interval,
		stop:      make(chan struct{}),
	}
}

// Run 周期执行清理，直到 Stop。用法：go sweeper.Run()
func (w *Sweeper) Run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := w.SweepOnce(); err != nil {
				log.Printf("sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("sweep purged %d expired item(s)", n)
			}
		case <-w.stop:
			return
		}
	}
}

// Stop 停止清理任务（幂等）
func (w *Sweeper) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// SweepOnce 执行一轮清理，返回清掉的条目数。
// 幂等：过期集合为空时什么都不做；按 ID 删除天然幂等，
// 和用户手动删除赛跑时后到的一方只会删到 0 行。
// 单个条目失败记日志后继续，不中断整轮。
func (w *Sweeper) SweepOnce() (int, error) {
	if w.retention == nil {
		return 0, nil
	}

	cutoff := time.Now().Add(-*w.retention).UnixMilli()
	expired, err := w.itemDAO.FindExpired(cutoff)
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, item := range expired {
		if item.Filename != "" {
			if err := w.Files.Remove(item.Filename); err != nil {
				log.Printf("sweep: remove backing file: %v (item=%d file=%s)", err, item.ID, item.Filename)
			}
		}
		deleted, err := w.itemDAO.DeleteByID(item.ID)
		if err != nil {
			log.Printf("sweep: delete item %d: %v", item.ID, err)
			continue
		}
		if deleted {
			purged++
			w.notify(event.DeleteItem, event.DeleteItemData{ID: item.ID})
		}
	}

	return purged, nil
}
