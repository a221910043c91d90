package service

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/cydxin/board-sdk/event"
	"github.com/cydxin/board-sdk/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ItemService 条目读写：创建/删除/固定/移动/编辑/搜索/分页。
// 所有完成的写操作都会通过注入的 Broadcast 回调广播对应事件。
type ItemService struct {
	*Service
	itemDAO    *models.ItemDAO
	channelDAO *models.ChannelDAO
}

func NewItemService(s *Service) *ItemService {
	return &ItemService{Service: s, itemDAO: models.NewItemDAO(s.DB), channelDAO: models.NewChannelDAO(s.DB)}
}

// fileExtra 写进 items.extra 的文件元数据
type fileExtra struct {
	OriginalName string `json:"original_name"`
	Mime         string `json:"mime,omitempty"`
}

// CreateTextItem 创建文本/链接条目。
// 内容默认不做校验（空白内容也接受）；RejectEmptyText 开启时拒绝空白。
func (s *ItemService) CreateTextItem(content, channel, uploader string) (*models.Item, error) {
	if strings.TrimSpace(channel) == "" {
		return nil, ErrMissingChannel
	}
	if s.RejectEmptyText && strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	item := &models.Item{
		Type:     models.ItemTypeText,
		Content:  content,
		Channel:  channel,
		Uploader: uploader,
	}
	if err := s.itemDAO.Create(item); err != nil {
		return nil, err
	}

	s.notify(event.NewItem, item)
	return item, nil
}

// CreateFileItem 创建文件条目：先落盘（超限返回 ErrFileTooLarge，不写任何行），
// 再写 DB 行；写行失败时把刚存的文件删掉，保证不留孤儿（行或文件都不单独存在）。
func (s *ItemService) CreateFileItem(fh *multipart.FileHeader, channel, uploader string) (*models.Item, error) {
	if strings.TrimSpace(channel) == "" {
		return nil, ErrMissingChannel
	}

	storedName, size, err := s.Files.SaveMultipart(fh)
	if err != nil {
		return nil, err
	}

	extraBytes, _ := json.Marshal(fileExtra{
		OriginalName: fh.Filename,
		Mime:         fh.Header.Get("Content-Type"),
	})

	item := &models.Item{
		Type:     models.ItemTypeFile,
		Filename: storedName,
		Size:     size,
		Channel:  channel,
		Uploader: uploader,
		Extra:    datatypes.JSON(extraBytes),
	}
	if err := s.itemDAO.Create(item); err != nil {
		if rmErr := s.Files.Remove(storedName); rmErr != nil {
			log.Printf("remove uploaded file after failed insert: %v (file=%s)", rmErr, storedName)
		}
		return nil, err
	}

	s.notify(event.NewItem, item)
	return item, nil
}

// DeleteItem 删除条目。file 条目先删备份文件再删行；
// 文件删除失败只记日志，不阻塞行删除（行不能比文件活得久，反之要报错给读取方）。
func (s *ItemService) DeleteItem(id uint64) error {
	item, err := s.itemDAO.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if item.Filename != "" {
		if err := s.Files.Remove(item.Filename); err != nil {
			log.Printf("remove backing file: %v (item=%d file=%s)", err, id, item.Filename)
		}
	}

	if _, err := s.itemDAO.DeleteByID(id); err != nil {
		return err
	}

	s.notify(event.DeleteItem, event.DeleteItemData{ID: id})
	return nil
}

// TogglePin 翻转条目固定标记。广播的 pin-update 不带差量，客户端收到后重载。
func (s *ItemService) TogglePin(id uint64) (*models.Item, error) {
	item, err := s.itemDAO.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	item.Pinned = !item.Pinned
	if err := s.itemDAO.SetPinned(id, item.Pinned); err != nil {
		return nil, err
	}

	s.notify(event.PinUpdate, nil)
	return item, nil
}

// MoveItem 把条目改派到另一个频道。目标频道必须存在。
func (s *ItemService) MoveItem(id uint64, channel string) error {
	if strings.TrimSpace(channel) == "" {
		return ErrMissingChannel
	}
	if _, err := s.channelDAO.FindByName(channel); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChannelNotFound
		}
		return err
	}
	if _, err := s.itemDAO.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.itemDAO.MoveTo(id, channel); err != nil {
		return err
	}

	s.notify(event.ItemMoved, event.ItemMovedData{ID: id, Channel: channel})
	return nil
}

// EditTitle 更新条目标签（任意类型的条目都可以打标签）
func (s *ItemService) EditTitle(id uint64, title string) (*models.Item, error) {
	item, err := s.itemDAO.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.itemDAO.UpdateTitle(id, title); err != nil {
		return nil, err
	}
	item.Title = title

	s.notify(event.ItemUpdated, item)
	return item, nil
}

// EditContent 编辑文本内容。只允许 text 条目，且去空白后必须非空；打 edited_at 时间戳。
func (s *ItemService) EditContent(id uint64, content string) (*models.Item, error) {
	item, err := s.itemDAO.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.Type != models.ItemTypeText {
		return nil, ErrNotEditable
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	editedAt := time.Now().UnixMilli()
	if err := s.itemDAO.UpdateContent(id, content, editedAt); err != nil {
		return nil, err
	}
	item.Content = content
	item.EditedAt = &editedAt

	s.notify(event.ItemUpdated, item)
	return item, nil
}

// ItemPage 分页结果
type ItemPage struct {
	Items   []models.Item `json:"items"`
	HasMore bool          `json:"hasMore"`
	Page    int           `json:"page"`
}

// ListPage 分页列出频道条目（第 1 页固定条目全量置顶，详见 ItemDAO.ListPage）
func (s *ItemService) ListPage(channel string, page int) (*ItemPage, error) {
	if page < 1 {
		page = 1
	}
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	items, hasMore, err := s.itemDAO.ListPage(channel, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &ItemPage{Items: items, HasMore: hasMore, Page: page}, nil
}

// Search 子串搜索，channel 为空时跨全部频道
func (s *ItemService) Search(query, channel string) ([]models.Item, error) {
	return s.itemDAO.Search(query, channel)
}
