package board_sdk

import (
	"log"

	"github.com/cydxin/board-sdk/models"
)

// upgradeColumns 老库升级时补的列。
// items 表最早只有 type/content/filename/channel/uploader/created_at，
// 后续版本才加了 size/title/pinned/edited_at/extra；channels 表后加了 pinned。
var upgradeColumns = []struct {
	model  interface{}
	column string
}{
	{&models.Item{}, "size"},
	{&models.Item{}, "title"},
	{&models.Item{}, "pinned"},
	{&models.Item{}, "edited_at"},
	{&models.Item{}, "extra"},
	{&models.Channel{}, "pinned"},
}

// EnsureColumns 幂等补列：列已存在时跳过（no-op），不存在才 ADD COLUMN。
// 重复执行无副作用，不会动已有数据。
func (c *BoardEngine) EnsureColumns() error {
	m := c.config.DB.Migrator()
	for _, uc := range upgradeColumns {
		if m.HasColumn(uc.model, uc.column) {
			continue
		}
		if err := m.AddColumn(uc.model, uc.column); err != nil {
			return err
		}
		log.Printf("added column %s", uc.column)
	}
	return nil
}

// SeedDefaultChannels 频道表为空时播种默认频道。
// 保证“任何时刻至少存在一个频道”的不变量在启动后即成立。
func (c *BoardEngine) SeedDefaultChannels() error {
	dao := models.NewChannelDAO(c.config.DB)

	count, err := dao.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []string{"general", "dev", "design", "temp"}
	for _, name := range defaults {
		if err := dao.Create(&models.Channel{Name: name}); err != nil {
			return err
		}
	}
	log.Printf("seeded %d default channels", len(defaults))
	return nil
}
