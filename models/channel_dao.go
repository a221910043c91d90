package models

import (
	"gorm.io/gorm"
)

// ChannelDAO 封装 Channel 相关的数据库操作
type ChannelDAO struct {
	db *gorm.DB
}

// NewChannelDAO 创建 ChannelDAO 实例
func NewChannelDAO(db *gorm.DB) *ChannelDAO {
	return &ChannelDAO{db: db}
}

// Create 创建频道
func (dao *ChannelDAO) Create(ch *Channel) error {
	return dao.db.Create(ch).Error
}

// Count 频道总数
func (dao *ChannelDAO) Count() (int64, error) {
	var n int64
	err := dao.db.Model(&Channel{}).Count(&n).Error
	return n, err
}

// FindByName 按名称查找频道
func (dao *ChannelDAO) FindByName(name string) (*Channel, error) {
	var ch Channel
	err := dao.db.Where("name = ?", name).First(&ch).Error
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// List 列出全部频道：固定的在前，其余按创建顺序
func (dao *ChannelDAO) List() ([]Channel, error) {
	var chs []Channel
	err := dao.db.Order("pinned DESC, id ASC").Find(&chs).Error
	return chs, err
}

// SetPinned 更新频道固定标记
func (dao *ChannelDAO) SetPinned(name string, pinned bool) error {
	return dao.db.Model(&Channel{}).Where("name = ?", name).Update("pinned", pinned).Error
}

// Rename 重命名频道并把引用旧名的条目全部改到新名。
// 两步写在同一事务里：重命名之后不允许有条目仍引用旧名。
func (dao *ChannelDAO) Rename(oldName, newName string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Channel{}).Where("name = ?", oldName).
			Update("name", newName).Error; err != nil {
			return err
		}
		return tx.Model(&Item{}).Where("channel = ?", oldName).
			Update("channel", newName).Error
	})
}

// DeleteCascade 删除频道及其全部条目行。
// 备份文件的清理由调用方在事务提交后尽力完成（文件系统无法参与事务）。
func (dao *ChannelDAO) DeleteCascade(name string) error {
	return dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel = ?", name).Delete(&Item{}).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", name).Delete(&Channel{}).Error
	})
}
