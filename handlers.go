package board_sdk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cydxin/board-sdk/service"
	"github.com/gin-gonic/gin"

	"github.com/cydxin/board-sdk/response"
)

/*
	HTTP处理都在 handler_item.go / handler_channel.go / handler_auth.go，
	这里只放共享的小工具：错误 -> 状态码映射、路径参数解析。
	也可以不用这些 GinHandle*，自己写 controller 然后直接调对应的 service。
*/

// httpStatusFor 业务错误映射 HTTP 状态码。
// 校验失败 400；口令错误 401；固定保护 403；不存在/不可编辑 404；超限 413；存储不可用 503；其余 500。
func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrChannelNotFound),
		errors.Is(err, service.ErrNotEditable):
		return http.StatusNotFound
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, service.ErrChannelPinned):
		return http.StatusForbidden
	case errors.Is(err, service.ErrBadPassphrase):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrInvalidChannelName),
		errors.Is(err, service.ErrChannelExists),
		errors.Is(err, service.ErrChannelLimit),
		errors.Is(err, service.ErrLastChannel),
		errors.Is(err, service.ErrMissingChannel),
		errors.Is(err, service.ErrEmptyContent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithErr 统一的错误出口：状态码 + {"error": 文案}
func abortWithErr(ctx *gin.Context, err error) {
	ctx.JSON(httpStatusFor(err), response.Err(err.Error()))
}

// paramID 解析路径里的 :id
func paramID(ctx *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, response.Err("invalid item id"))
		return 0, false
	}
	return id, true
}
