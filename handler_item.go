package board_sdk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cydxin/board-sdk/response"
	"github.com/cydxin/board-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 条目（Item）相关接口 --------------------

type CreateTextReq struct {
	Content  string `json:"content"`
	Channel  string `json:"channel" binding:"required"`
	Uploader string `json:"uploader"`
}

// GinHandleCreateText 创建文本/链接条目
// @Summary 发布文本
// @Description 向频道发布一条文本或链接
// @Tags 条目
// @Accept json
// @Produce json
// @Param req body CreateTextReq true "内容"
// @Success 200 {object} models.Item "创建的条目"
// @Failure 400 {object} response.ErrorBody "参数错误"
// @Router /text [post]
func (c *BoardEngine) GinHandleCreateText(ctx *gin.Context) {
	var req CreateTextReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	item, err := c.ItemService.CreateTextItem(req.Content, req.Channel, req.Uploader)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GinHandleUpload 上传文件条目（multipart）
// @Summary 上传文件
// @Description multipart 上传一个文件到频道，超过大小上限返回 413
// @Tags 条目
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "文件"
// @Param channel formData string true "频道名"
// @Param uploader formData string false "上传者展示名"
// @Success 200 {object} models.Item "创建的条目"
// @Failure 413 {object} response.ErrorBody "超过大小上限"
// @Failure 500 {object} response.ErrorBody "IO 错误"
// @Router /upload [post]
func (c *BoardEngine) GinHandleUpload(ctx *gin.Context) {
	// 上限之外给 multipart 边界留点余量；真正的限额在 FileStore 里按文件字节数判
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.MaxFileSize()+10*1024*1024)

	fh, err := ctx.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			abortWithErr(ctx, service.ErrFileTooLarge)
			return
		}
		ctx.JSON(http.StatusBadRequest, response.Err("missing file"))
		return
	}

	item, err := c.ItemService.CreateFileItem(fh, ctx.PostForm("channel"), ctx.PostForm("uploader"))
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GinHandleGetItems 分页获取频道条目
// @Summary 频道条目列表
// @Description 第 1 页包含全部固定条目 + 前 10 条未固定条目；后续页只有未固定条目
// @Tags 条目
// @Produce json
// @Param channel path string true "频道名"
// @Param page query int false "页码，默认 1"
// @Success 200 {object} service.ItemPage "条目分页"
// @Router /items/{channel} [get]
func (c *BoardEngine) GinHandleGetItems(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))

	result, err := c.ItemService.ListPage(ctx.Param("channel"), page)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GinHandleDeleteItem 删除条目
// @Summary 删除条目
// @Description 删除条目；file 条目连同备份文件一起删
// @Tags 条目
// @Produce json
// @Param id path int true "条目ID"
// @Success 200 "已删除"
// @Failure 404 {object} response.ErrorBody "条目不存在"
// @Router /item/{id} [delete]
func (c *BoardEngine) GinHandleDeleteItem(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := c.ItemService.DeleteItem(id); err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.Status(http.StatusOK)
}

// GinHandleTogglePin 翻转条目固定标记
// @Summary 固定/取消固定条目
// @Tags 条目
// @Produce json
// @Param id path int true "条目ID"
// @Success 200 {object} models.Item "更新后的条目"
// @Failure 404 {object} response.ErrorBody "条目不存在"
// @Router /pin/{id} [post]
func (c *BoardEngine) GinHandleTogglePin(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	item, err := c.ItemService.TogglePin(id)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

type MoveItemReq struct {
	Channel string `json:"channel"`
}

// GinHandleMoveItem 把条目改派到另一个频道
// @Summary 移动条目
// @Tags 条目
// @Accept json
// @Produce json
// @Param id path int true "条目ID"
// @Param req body MoveItemReq true "目标频道"
// @Success 200 {object} map[string]interface{} "{id, channel}"
// @Failure 400 {object} response.ErrorBody "缺少频道"
// @Router /item/{id}/move [patch]
func (c *BoardEngine) GinHandleMoveItem(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req MoveItemReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		abortWithErr(ctx, service.ErrMissingChannel)
		return
	}

	if err := c.ItemService.MoveItem(id, req.Channel); err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": id, "channel": req.Channel})
}

type EditTitleReq struct {
	Title string `json:"title"`
}

// GinHandleEditTitle 更新条目标签
// @Summary 编辑条目标签
// @Tags 条目
// @Accept json
// @Produce json
// @Param id path int true "条目ID"
// @Param req body EditTitleReq true "新标签"
// @Success 200 {object} models.Item "更新后的条目"
// @Failure 404 {object} response.ErrorBody "条目不存在"
// @Router /item/{id}/title [patch]
func (c *BoardEngine) GinHandleEditTitle(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req EditTitleReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	item, err := c.ItemService.EditTitle(id, req.Title)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

type EditContentReq struct {
	Content string `json:"content"`
}

// GinHandleEditContent 编辑文本内容（仅 text 条目，空白内容拒绝）
// @Summary 编辑条目内容
// @Tags 条目
// @Accept json
// @Produce json
// @Param id path int true "条目ID"
// @Param req body EditContentReq true "新内容"
// @Success 200 {object} models.Item "更新后的条目"
// @Failure 400 {object} response.ErrorBody "内容为空"
// @Failure 404 {object} response.ErrorBody "条目不存在或不可编辑"
// @Router /item/{id}/content [patch]
func (c *BoardEngine) GinHandleEditContent(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req EditContentReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	item, err := c.ItemService.EditContent(id, req.Content)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// GinHandleSearch 子串搜索
// @Summary 搜索条目
// @Description 大小写不敏感的子串匹配，命中 content 或 filename。
// @Description 路由挂两次：/search/{q} 全局搜索，/search/{channel}/{q} 限定频道。
// @Tags 条目
// @Produce json
// @Param channel path string true "频道名（或全局搜索时的关键词）"
// @Param q path string false "关键词"
// @Success 200 {array} models.Item "命中条目"
// @Router /search/{channel}/{q} [get]
func (c *BoardEngine) GinHandleSearch(ctx *gin.Context) {
	channel := ctx.Param("channel")
	query := ctx.Param("q")
	if query == "" {
		// 单段路由：/search/:channel 其实是全局搜索，第一段就是关键词
		query = channel
		channel = ""
	}

	items, err := c.ItemService.Search(query, channel)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}
