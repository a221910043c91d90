package client

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cydxin/board-sdk/event"
	"github.com/cydxin/board-sdk/models"
)

// commitRecorder 线程安全地记录提交的删除 id
type commitRecorder struct {
	mu  sync.Mutex
	ids []uint64
}

func (r *commitRecorder) commit(id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = append(r.ids, id)
	return nil
}

func (r *commitRecorder) committed() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint64(nil), r.ids...)
}

func testItems() []models.Item {
	return []models.Item{
		{ID: 1, Type: models.ItemTypeText, Content: "one", Channel: "general"},
		{ID: 2, Type: models.ItemTypeText, Content: "two", Channel: "general"},
		{ID: 3, Type: models.ItemTypeFile, Filename: "123-a.bin", Channel: "general", Pinned: true},
	}
}

// 软删除：条目立即从视图消失，窗口耗尽后提交
func TestSyncState_SoftDeleteCommitsOnTimeout(t *testing.T) {
	rec := &commitRecorder{}
	s := NewSyncState(rec.commit, nil)
	s.SetUndoWindow(30 * time.Millisecond)
	s.SetView("general", 1, testItems())

	if err := s.SoftDelete(1); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	for _, it := range s.Items() {
		if it.ID == 1 {
			t.Fatal("soft-deleted item must leave the view immediately")
		}
	}
	if id, ok := s.PendingID(); !ok || id != 1 {
		t.Fatalf("pending = (%d,%v), want (1,true)", id, ok)
	}
	if got := rec.committed(); len(got) != 0 {
		t.Fatalf("commit must wait for the window, got %v", got)
	}

	time.Sleep(80 * time.Millisecond)
	if got := rec.committed(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected commit of id 1 after timeout, got %v", got)
	}
	if _, ok := s.PendingID(); ok {
		t.Error("pending window should be closed after commit")
	}
}

func TestSyncState_Undo(t *testing.T) {
	rec := &commitRecorder{}
	reloaded := make(chan struct{}, 1)
	s := NewSyncState(rec.commit, func() { reloaded <- struct{}{} })
	s.SetUndoWindow(30 * time.Millisecond)
	s.SetView("general", 1, testItems())

	if err := s.SoftDelete(2); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if !s.Undo() {
		t.Fatal("Undo should succeed inside the window")
	}

	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("undo must trigger a reload to restore the item")
	}

	time.Sleep(80 * time.Millisecond)
	if got := rec.committed(); len(got) != 0 {
		t.Fatalf("undone delete must never be committed, got %v", got)
	}
	if s.Undo() {
		t.Error("Undo with no pending delete should report false")
	}
}

// 第二个软删除抢占：第一个立即提交（按存储状态验证，不止是视图）
func TestSyncState_SecondDeletePreempts(t *testing.T) {
	rec := &commitRecorder{}
	s := NewSyncState(rec.commit, nil)
	s.SetUndoWindow(time.Minute) // 窗口远未到期
	s.SetView("general", 1, testItems())

	if err := s.SoftDelete(1); err != nil {
		t.Fatalf("SoftDelete(1): %v", err)
	}
	if err := s.SoftDelete(2); err != nil {
		t.Fatalf("SoftDelete(2): %v", err)
	}

	if got := rec.committed(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("first delete must be committed immediately on preempt, got %v", got)
	}
	if id, ok := s.PendingID(); !ok || id != 2 {
		t.Fatalf("pending = (%d,%v), want (2,true)", id, ok)
	}
}

// 固定条目不走撤销窗口，必须显式确认
func TestSyncState_PinnedDeleteNeedsConfirmation(t *testing.T) {
	rec := &commitRecorder{}
	s := NewSyncState(rec.commit, nil)
	s.SetView("general", 1, testItems())

	if err := s.SoftDelete(3); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("expected ErrDeleteNotConfirmed for pinned item, got %v", err)
	}
	if err := s.DeletePinned(3, false); !errors.Is(err, ErrDeleteNotConfirmed) {
		t.Fatalf("expected ErrDeleteNotConfirmed without confirmation, got %v", err)
	}

	if err := s.DeletePinned(3, true); err != nil {
		t.Fatalf("DeletePinned: %v", err)
	}
	if got := rec.committed(); len(got) != 1 || got[0] != 3 {
		t.Fatalf("confirmed pinned delete commits immediately, got %v", got)
	}
	if _, ok := s.PendingID(); ok {
		t.Error("pinned delete must not open an undo window")
	}
}

func TestSyncState_Flush(t *testing.T) {
	rec := &commitRecorder{}
	s := NewSyncState(rec.commit, nil)
	s.SetUndoWindow(time.Minute)
	s.SetView("general", 1, testItems())

	if err := s.SoftDelete(1); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	s.Flush()
	if got := rec.committed(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("Flush must commit the pending delete, got %v", got)
	}
}

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

// 窗口内 id 的广播被忽略（本地早已移除）；别人删的条目从视图摘掉
func TestSyncState_HandleDeleteEvent(t *testing.T) {
	rec := &commitRecorder{}
	reloads := 0
	s := NewSyncState(rec.commit, func() { reloads++ })
	s.SetUndoWindow(time.Minute)
	s.SetView("general", 1, testItems())

	if err := s.SoftDelete(1); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	// 自己窗口内的 id：忽略
	s.HandleEvent(event.DeleteItem, mustJSON(t, event.DeleteItemData{ID: 1}))
	if id, ok := s.PendingID(); !ok || id != 1 {
		t.Fatalf("pending window must survive its own broadcast, got (%d,%v)", id, ok)
	}

	// 别人的删除：直接从视图摘掉
	s.HandleEvent(event.DeleteItem, mustJSON(t, event.DeleteItemData{ID: 2}))
	for _, it := range s.Items() {
		if it.ID == 2 {
			t.Fatal("foreign delete must remove the item from the view")
		}
	}
	if reloads != 0 {
		t.Errorf("delete events must not force a reload, got %d", reloads)
	}
}

// 目标频道不是当前频道就重载，条目是否在已加载的页上无关紧要
func TestSyncState_HandleItemMoved(t *testing.T) {
	reloads := 0
	s := NewSyncState(nil, func() { reloads++ })
	s.SetUndoWindow(time.Minute)
	s.SetView("general", 1, testItems())

	// 视图内条目移到别的频道：重载
	s.HandleEvent(event.ItemMoved, mustJSON(t, event.ItemMovedData{ID: 2, Channel: "dev"}))
	if reloads != 1 {
		t.Fatalf("expected 1 reload after item moved away, got %d", reloads)
	}

	// 当前频道未加载页上的条目移走：同样要重载
	s.HandleEvent(event.ItemMoved, mustJSON(t, event.ItemMovedData{ID: 99, Channel: "dev"}))
	if reloads != 2 {
		t.Fatalf("move off an unloaded page must still reload, got %d", reloads)
	}

	// 目标就是当前频道：不重载
	s.HandleEvent(event.ItemMoved, mustJSON(t, event.ItemMovedData{ID: 7, Channel: "general"}))
	if reloads != 2 {
		t.Fatalf("move landing in the active channel must not reload, got %d", reloads)
	}

	// 撤销窗口内的条目：忽略移动广播
	if err := s.SoftDelete(1); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	s.HandleEvent(event.ItemMoved, mustJSON(t, event.ItemMovedData{ID: 1, Channel: "dev"}))
	if reloads != 2 {
		t.Fatalf("pending delete id must ignore move broadcasts, got %d", reloads)
	}
}

// commit 回调同步回调进状态机不能死锁：提交在锁外执行
func TestSyncState_CommitCallbackReentry(t *testing.T) {
	rec := &commitRecorder{}
	var s *SyncState
	s = NewSyncState(func(id uint64) error {
		// 宿主的提交路径把产生的 delete-item 广播喂回来
		s.HandleEvent(event.DeleteItem, mustJSON(t, event.DeleteItemData{ID: id}))
		_ = s.Items()
		return rec.commit(id)
	}, nil)
	s.SetUndoWindow(time.Minute)
	s.SetView("general", 1, testItems())

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := s.SoftDelete(1); err != nil {
			t.Errorf("SoftDelete(1): %v", err)
			return
		}
		// 抢占提交第一个窗口，commit 回调在此同步重入
		if err := s.SoftDelete(2); err != nil {
			t.Errorf("SoftDelete(2): %v", err)
			return
		}
		s.Flush()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("commit callback re-entry deadlocked")
	}

	if got := rec.committed(); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("committed = %v, want [1 2]", got)
	}
}

func TestSyncState_HandleChannelEvents(t *testing.T) {
	reloads := 0
	s := NewSyncState(nil, func() { reloads++ })
	s.SetView("general", 1, testItems())
	s.SetChannels([]string{"general", "dev", "temp"})

	// 新频道进列表，不重载条目
	s.HandleEvent(event.ChannelAdded, mustJSON(t, models.Channel{ID: 9, Name: "design"}))
	if got := s.Channels(); len(got) != 4 || got[3] != "design" {
		t.Fatalf("channels = %v", got)
	}
	if reloads != 0 {
		t.Fatalf("channel-added must not reload items, got %d", reloads)
	}

	// 删非活动频道：只改列表
	s.HandleEvent(event.ChannelDeleted, mustJSON(t, event.ChannelDeletedData{Name: "temp"}))
	if got := s.Channels(); len(got) != 3 {
		t.Fatalf("channels = %v", got)
	}
	if reloads != 0 {
		t.Fatalf("deleting an inactive channel must not reload, got %d", reloads)
	}

	// 改活动频道名：跟随新名并重载
	s.HandleEvent(event.ChannelRenamed, mustJSON(t, event.ChannelRenamedData{OldName: "general", NewName: "main"}))
	if s.Channel() != "main" {
		t.Fatalf("active channel = %q, want main", s.Channel())
	}
	if reloads != 1 {
		t.Fatalf("renaming the active channel must reload, got %d", reloads)
	}

	// 删活动频道：切到列表头部并重载
	s.HandleEvent(event.ChannelDeleted, mustJSON(t, event.ChannelDeletedData{Name: "main"}))
	if s.Channel() == "main" {
		t.Fatal("active channel must change after it is deleted")
	}
	if reloads != 2 {
		t.Fatalf("deleting the active channel must reload, got %d", reloads)
	}
}
