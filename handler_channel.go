package board_sdk

import (
	"net/http"

	"github.com/cydxin/board-sdk/response"
	"github.com/gin-gonic/gin"
)

// -------------------- 频道（Channel）相关接口 --------------------

// GinHandleGetChannels 频道列表
// @Summary 频道列表
// @Description 全部频道，固定的在前
// @Tags 频道
// @Produce json
// @Success 200 {array} models.Channel "频道列表"
// @Router /channels [get]
func (c *BoardEngine) GinHandleGetChannels(ctx *gin.Context) {
	channels, err := c.ChannelService.ListChannels()
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, channels)
}

type CreateChannelReq struct {
	Name string `json:"name" binding:"required"`
}

// GinHandleCreateChannel 创建频道
// @Summary 创建频道
// @Description 名称 1-32 位字母/数字/空格/下划线/连字符；最多 10 个频道
// @Tags 频道
// @Accept json
// @Produce json
// @Param req body CreateChannelReq true "频道名"
// @Success 200 {object} models.Channel "创建的频道"
// @Failure 400 {object} response.ErrorBody "名称非法/重名/超出上限"
// @Router /channels [post]
func (c *BoardEngine) GinHandleCreateChannel(ctx *gin.Context) {
	var req CreateChannelReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	ch, err := c.ChannelService.CreateChannel(req.Name)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ch)
}

// GinHandleDeleteChannel 删除频道（级联删除条目和备份文件）
// @Summary 删除频道
// @Tags 频道
// @Produce json
// @Param name path string true "频道名"
// @Success 200 "已删除"
// @Failure 403 {object} response.ErrorBody "频道被固定"
// @Failure 400 {object} response.ErrorBody "最后一个频道"
// @Failure 404 {object} response.ErrorBody "频道不存在"
// @Router /channels/{name} [delete]
func (c *BoardEngine) GinHandleDeleteChannel(ctx *gin.Context) {
	if err := c.ChannelService.DeleteChannel(ctx.Param("name")); err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}

type RenameChannelReq struct {
	Name string `json:"name" binding:"required"`
}

// GinHandleRenameChannel 重命名频道（级联更新条目）
// @Summary 重命名频道
// @Tags 频道
// @Accept json
// @Produce json
// @Param name path string true "旧频道名"
// @Param req body RenameChannelReq true "新频道名"
// @Success 200 {object} models.Channel "更新后的频道"
// @Failure 400 {object} response.ErrorBody "名称非法/重名"
// @Failure 404 {object} response.ErrorBody "频道不存在"
// @Router /channels/{name} [patch]
func (c *BoardEngine) GinHandleRenameChannel(ctx *gin.Context) {
	var req RenameChannelReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	ch, err := c.ChannelService.RenameChannel(ctx.Param("name"), req.Name)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ch)
}

// GinHandleToggleChannelPin 翻转频道固定标记
// @Summary 固定/取消固定频道
// @Description 固定的频道受删除保护
// @Tags 频道
// @Produce json
// @Param name path string true "频道名"
// @Success 200 {object} map[string]bool "{pinned}"
// @Failure 404 {object} response.ErrorBody "频道不存在"
// @Router /channels/{name}/pin [post]
func (c *BoardEngine) GinHandleToggleChannelPin(ctx *gin.Context) {
	ch, err := c.ChannelService.ToggleChannelPin(ctx.Param("name"))
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"pinned": ch.Pinned})
}
