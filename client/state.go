// Package client 维护单个客户端的本地视图状态：
// 当前频道、页码、频道列表，以及最多一个处于撤销窗口内的软删除。
package client

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/cydxin/board-sdk/event"
	"github.com/cydxin/board-sdk/models"
)

// DefaultUndoWindow 软删除撤销窗口时长
const DefaultUndoWindow = 5 * time.Second

var (
	// ErrDeleteNotConfirmed 固定条目的删除必须显式确认
	ErrDeleteNotConfirmed = errors.New("pinned item delete requires confirmation")
)

// pendingDelete 记录一个尚未提交的软删除
type pendingDelete struct {
	ID       uint64
	Deadline time.Time
	timer    *time.Timer
}

// SyncState 客户端同步状态机。
// 软删除约定：标记删除后立即从可见列表移除并开始倒计时；
// 窗口内撤销则重新加载恢复；窗口耗尽则提交到服务端；
// 窗口未关闭时发起新的软删除会立即提交前一个（同一时刻最多一个撤销窗口）。
type SyncState struct {
	mu sync.Mutex

	channel  string
	page     int
	channels []string
	items    []models.Item

	pending *pendingDelete
	window  time.Duration

	// commit 把删除落到服务端，reload 重新拉取当前视图
	commit func(id uint64) error
	reload func()
}

// NewSyncState commit/reload 由调用方注入，nil 时降级为空操作
func NewSyncState(commit func(id uint64) error, reload func()) *SyncState {
	if commit == nil {
		commit = func(uint64) error { return nil }
	}
	if reload == nil {
		reload = func() {}
	}
	return &SyncState{
		commit: commit,
		reload: reload,
		window: DefaultUndoWindow,
		page:   1,
	}
}

// SetUndoWindow 调整撤销窗口，仅用于测试
func (s *SyncState) SetUndoWindow(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.window = d
	}
}

// SetView 装载一页条目作为当前可见视图
func (s *SyncState) SetView(channel string, page int, items []models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channel = channel
	if page < 1 {
		page = 1
	}
	s.page = page
	s.items = append(s.items[:0:0], items...)
}

// SetChannels 装载频道列表
func (s *SyncState) SetChannels(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels = append(s.channels[:0:0], names...)
}

// Channel 当前频道名
func (s *SyncState) Channel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channel
}

// Page 当前页码
func (s *SyncState) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Channels 频道列表快照
func (s *SyncState) Channels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(s.channels[:0:0], s.channels...)
}

// Items 当前可见条目快照
func (s *SyncState) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(s.items[:0:0], s.items...)
}

// PendingID 返回处于撤销窗口内的条目 id，无则返回 0,false
func (s *SyncState) PendingID() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return 0, false
	}
	return s.pending.ID, true
}

// SoftDelete 发起软删除：条目立即从视图移除并开始倒计时。
// 若已有未提交的软删除，先立即提交它再开启新窗口。
// 固定条目不走撤销窗口，必须用 confirmed=true 直接提交。
func (s *SyncState) SoftDelete(id uint64) error {
	s.mu.Lock()

	item, ok := s.findLocked(id)
	if ok && item.Pinned {
		s.mu.Unlock()
		return ErrDeleteNotConfirmed
	}

	// 抢占提交：新删除到来时旧窗口立即结束
	prev, hadPrev := s.takePendingLocked()

	s.removeLocked(id)
	p := &pendingDelete{ID: id, Deadline: time.Now().Add(s.window)}
	p.timer = time.AfterFunc(s.window, func() { s.expire(p) })
	s.pending = p
	s.mu.Unlock()

	if hadPrev {
		s.doCommit(prev)
	}
	return nil
}

// DeletePinned 删除固定条目：跳过撤销窗口，confirmed 必须为 true
func (s *SyncState) DeletePinned(id uint64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	s.mu.Lock()
	s.removeLocked(id)
	s.mu.Unlock()
	return s.commit(id)
}

// Undo 撤销处于窗口内的软删除，通过重新加载恢复条目
func (s *SyncState) Undo() bool {
	s.mu.Lock()
	if s.pending == nil {
		s.mu.Unlock()
		return false
	}
	s.pending.timer.Stop()
	s.pending = nil
	s.mu.Unlock()
	s.reload()
	return true
}

// Flush 立即提交窗口内的软删除（例如页面卸载前调用）
func (s *SyncState) Flush() {
	s.mu.Lock()
	id, ok := s.takePendingLocked()
	s.mu.Unlock()
	if ok {
		s.doCommit(id)
	}
}

// expire 倒计时到期回调，只提交仍然有效的那个窗口
func (s *SyncState) expire(p *pendingDelete) {
	s.mu.Lock()
	if s.pending != p {
		s.mu.Unlock()
		return
	}
	id, ok := s.takePendingLocked()
	s.mu.Unlock()
	if ok {
		s.doCommit(id)
	}
}

// takePendingLocked 停表并取走待提交的删除 id，调用方持锁。
// 提交本身不能持锁做：commit 回调可能同步回调进 SyncState。
func (s *SyncState) takePendingLocked() (uint64, bool) {
	p := s.pending
	if p == nil {
		return 0, false
	}
	s.pending = nil
	p.timer.Stop()
	return p.ID, true
}

// doCommit 把删除落到服务端，必须在锁外调用
func (s *SyncState) doCommit(id uint64) {
	if err := s.commit(id); err != nil {
		log.Printf("[client] 提交删除失败 id=%d err=%v", id, err)
	}
}

// HandleEvent 按广播事件对本地视图做对账
func (s *SyncState) HandleEvent(name string, data json.RawMessage) {
	switch name {
	case event.DeleteItem:
		var d event.DeleteItemData
		if json.Unmarshal(data, &d) != nil {
			return
		}
		s.mu.Lock()
		// 处于撤销窗口内的 id 已在本地移除，忽略
		if s.pending != nil && s.pending.ID == d.ID {
			s.mu.Unlock()
			return
		}
		s.removeLocked(d.ID)
		s.mu.Unlock()

	case event.ItemMoved:
		var d event.ItemMovedData
		if json.Unmarshal(data, &d) != nil {
			return
		}
		s.mu.Lock()
		if s.pending != nil && s.pending.ID == d.ID {
			s.mu.Unlock()
			return
		}
		moved := d.Channel != s.channel
		s.mu.Unlock()
		// 目标频道不是当前频道就整页重载，条目可能在未加载的页上
		if moved {
			s.reload()
		}

	case event.NewItem, event.PinUpdate, event.ItemUpdated:
		s.reload()

	case event.ChannelAdded:
		var ch models.Channel
		if json.Unmarshal(data, &ch) != nil {
			return
		}
		s.mu.Lock()
		s.channels = append(s.channels, ch.Name)
		s.mu.Unlock()

	case event.ChannelDeleted:
		var d event.ChannelDeletedData
		if json.Unmarshal(data, &d) != nil {
			return
		}
		s.mu.Lock()
		s.dropChannelLocked(d.Name)
		active := s.channel == d.Name
		if active && len(s.channels) > 0 {
			s.channel = s.channels[0]
			s.page = 1
		}
		s.mu.Unlock()
		if active {
			s.reload()
		}

	case event.ChannelRenamed:
		var d event.ChannelRenamedData
		if json.Unmarshal(data, &d) != nil {
			return
		}
		s.mu.Lock()
		for i, name := range s.channels {
			if name == d.OldName {
				s.channels[i] = d.NewName
			}
		}
		active := s.channel == d.OldName
		if active {
			s.channel = d.NewName
		}
		s.mu.Unlock()
		if active {
			s.reload()
		}

	case event.ChannelPin:
		// 只影响频道排序，不必重载条目
	}
}

func (s *SyncState) findLocked(id uint64) (models.Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}

func (s *SyncState) removeLocked(id uint64) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *SyncState) dropChannelLocked(name string) {
	for i, n := range s.channels {
		if n == name {
			s.channels = append(s.channels[:i], s.channels[i+1:]...)
			return
		}
	}
}
