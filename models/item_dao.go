package models

import (
	"strings"

	"gorm.io/gorm"
)

// ItemDAO 封装 Item 相关的数据库操作
type ItemDAO struct {
	db *gorm.DB
}

// NewItemDAO 创建 ItemDAO 实例
func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{db: db}
}

// Create 创建条目
func (dao *ItemDAO) Create(item *Item) error {
	return dao.db.Create(item).Error
}

// FindByID 根据ID查找条目
func (dao *ItemDAO) FindByID(id uint64) (*Item, error) {
	var item Item
	err := dao.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteByID 按 ID 删除条目。按 ID 删除天然幂等：重复删除 RowsAffected=0，不报错。
// 返回是否确实删掉了一行。
func (dao *ItemDAO) DeleteByID(id uint64) (bool, error) {
	res := dao.db.Where("id = ?", id).Delete(&Item{})
	return res.RowsAffected > 0, res.Error
}

// CountUnpinned 统计频道内未固定条目数（分页 hasMore 用）
func (dao *ItemDAO) CountUnpinned(channel string) (int64, error) {
	var n int64
	err := dao.db.Model(&Item{}).
		Where("channel = ? AND pinned = ?", channel, false).
		Count(&n).Error
	return n, err
}

// ListPage 分页列出频道条目。
// 排序规则：固定条目优先，其余按 created_at 倒序。
// 第 1 页返回“全部固定条目 + 前 pageSize 条未固定条目”（固定条目永不被翻页翻走）；
// 后续页只返回对应偏移的未固定条目。
// hasMore 当且仅当 page*pageSize < 未固定条目总数。
func (dao *ItemDAO) ListPage(channel string, page, pageSize int) ([]Item, bool, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	items := make([]Item, 0, pageSize)

	if page == 1 {
		var pinned []Item
		err := dao.db.Where("channel = ? AND pinned = ?", channel, true).
			Order("created_at DESC").
			Find(&pinned).Error
		if err != nil {
			return nil, false, err
		}
		items = append(items, pinned...)
	}

	var unpinned []Item
	err := dao.db.Where("channel = ? AND pinned = ?", channel, false).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&unpinned).Error
	if err != nil {
		return nil, false, err
	}
	items = append(items, unpinned...)

	total, err := dao.CountUnpinned(channel)
	if err != nil {
		return nil, false, err
	}
	hasMore := int64(page*pageSize) < total

	return items, hasMore, nil
}

// Search 子串搜索（不区分大小写，不锚定），匹配 content 和 filename。
// channel 为空时全局搜索。
// 排序：channel 升序、pinned 降序、created_at 降序。
func (dao *ItemDAO) Search(query, channel string) ([]Item, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	q := dao.db.Where("LOWER(content) LIKE ? OR LOWER(filename) LIKE ?", pattern, pattern)
	if channel != "" {
		q = dao.db.Where("channel = ?", channel).
			Where(dao.db.Where("LOWER(content) LIKE ?", pattern).Or("LOWER(filename) LIKE ?", pattern))
	}

	var items []Item
	err := q.Order("channel ASC, pinned DESC, created_at DESC").Find(&items).Error
	return items, err
}

// FindExpired 查找早于 cutoff（epoch 毫秒）创建的未固定条目。固定条目不参与过期。
func (dao *ItemDAO) FindExpired(cutoff int64) ([]Item, error) {
	var items []Item
	err := dao.db.Where("pinned = ? AND created_at < ?", false, cutoff).
		Find(&items).Error
	return items, err
}

// SetPinned 更新固定标记
func (dao *ItemDAO) SetPinned(id uint64, pinned bool) error {
	return dao.db.Model(&Item{}).Where("id = ?", id).Update("pinned", pinned).Error
}

// MoveTo 重新指派条目所属频道
func (dao *ItemDAO) MoveTo(id uint64, channel string) error {
	return dao.db.Model(&Item{}).Where("id = ?", id).Update("channel", channel).Error
}

// UpdateTitle 更新条目标签
func (dao *ItemDAO) UpdateTitle(id uint64, title string) error {
	return dao.db.Model(&Item{}).Where("id = ?", id).Update("title", title).Error
}

// UpdateContent 更新文本内容并打上编辑时间戳（epoch 毫秒）
func (dao *ItemDAO) UpdateContent(id uint64, content string, editedAt int64) error {
	return dao.db.Model(&Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{"content": content, "edited_at": editedAt}).Error
}

// FilenamesInChannel 列出频道内全部 file 条目的存储文件名（频道级联删除前收集）
func (dao *ItemDAO) FilenamesInChannel(channel string) ([]string, error) {
	var names []string
	err := dao.db.Model(&Item{}).
		Where("channel = ? AND filename <> ''", channel).
		Pluck("filename", &names).Error
	return names, err
}
