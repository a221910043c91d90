package service

import (
	"errors"
	"log"
	"regexp"
	"strings"

	"github.com/cydxin/board-sdk/event"
	"github.com/cydxin/board-sdk/models"
	"gorm.io/gorm"
)

// channelNameRe 频道命名规则：1-32 位的字母/数字/空格/下划线/连字符
var channelNameRe = regexp.MustCompile(`^[A-Za-z0-9 _-]{1,32}$`)

// ChannelService 频道管理：创建/删除/重命名/固定。
// 删除与重命名的级联写都在 Store 层事务里完成。
type ChannelService struct {
	*Service
	channelDAO *models.ChannelDAO
	itemDAO    *models.ItemDAO
}

func NewChannelService(s *Service) *ChannelService {
	return &ChannelService{Service: s, channelDAO: models.NewChannelDAO(s.DB), itemDAO: models.NewItemDAO(s.DB)}
}

func validateChannelName(name string) error {
	if !channelNameRe.MatchString(name) {
		return ErrInvalidChannelName
	}
	return nil
}

// ListChannels 全部频道，固定的在前
func (s *ChannelService) ListChannels() ([]models.Channel, error) {
	return s.channelDAO.List()
}

// CreateChannel 创建频道。名称合法、不重复，且总数不超过上限。
func (s *ChannelService) CreateChannel(name string) (*models.Channel, error) {
	name = strings.TrimSpace(name)
	if err := validateChannelName(name); err != nil {
		return nil, err
	}

	count, err := s.channelDAO.Count()
	if err != nil {
		return nil, err
	}
	if count >= models.MaxChannels {
		return nil, ErrChannelLimit
	}

	if _, err := s.channelDAO.FindByName(name); err == nil {
		return nil, ErrChannelExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ch := &models.Channel{Name: name}
	if err := s.channelDAO.Create(ch); err != nil {
		return nil, err
	}

	s.notify(event.ChannelAdded, ch)
	return ch, nil
}

// DeleteChannel 删除频道并级联删除其全部条目。
// 固定的频道和最后一个频道不允许删除。
// 条目行和频道行在同一事务里删除；备份文件在事务提交后尽力清理，
// 清理失败只记日志（行已删，读取方不会再看到这些文件名）。
func (s *ChannelService) DeleteChannel(name string) error {
	ch, err := s.channelDAO.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChannelNotFound
		}
		return err
	}
	if ch.Pinned {
		return ErrChannelPinned
	}

	count, err := s.channelDAO.Count()
	if err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastChannel
	}

	filenames, err := s.itemDAO.FilenamesInChannel(name)
	if err != nil {
		return err
	}

	if err := s.channelDAO.DeleteCascade(name); err != nil {
		return err
	}

	for _, fn := range filenames {
		if err := s.Files.Remove(fn); err != nil {
			log.Printf("remove backing file on channel delete: %v (channel=%s file=%s)", err, name, fn)
		}
	}

	s.notify(event.ChannelDeleted, event.ChannelDeletedData{Name: name})
	return nil
}

// RenameChannel 重命名频道。校验与创建一致；
// 频道行和引用旧名的条目行在同一事务里改名，改完不会有条目指向旧名。
func (s *ChannelService) RenameChannel(oldName, newName string) (*models.Channel, error) {
	newName = strings.TrimSpace(newName)
	if err := validateChannelName(newName); err != nil {
		return nil, err
	}

	ch, err := s.channelDAO.FindByName(oldName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}
	if newName == oldName {
		return ch, nil
	}

	if _, err := s.channelDAO.FindByName(newName); err == nil {
		return nil, ErrChannelExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.channelDAO.Rename(oldName, newName); err != nil {
		return nil, err
	}
	ch.Name = newName

	s.notify(event.ChannelRenamed, event.ChannelRenamedData{OldName: oldName, NewName: newName})
	return ch, nil
}

// ToggleChannelPin 翻转频道固定标记（固定的频道受删除保护）
func (s *ChannelService) ToggleChannelPin(name string) (*models.Channel, error) {
	ch, err := s.channelDAO.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChannelNotFound
		}
		return nil, err
	}

	ch.Pinned = !ch.Pinned
	if err := s.channelDAO.SetPinned(name, ch.Pinned); err != nil {
		return nil, err
	}

	s.notify(event.ChannelPin, event.ChannelPinData{Name: ch.Name, Pinned: ch.Pinned})
	return ch, nil
}
