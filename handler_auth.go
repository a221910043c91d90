package board_sdk

import (
	"net/http"

	"github.com/cydxin/board-sdk/response"
	"github.com/cydxin/board-sdk/service"
	"github.com/gin-gonic/gin"
)

// -------------------- 口令闸门 / 元信息接口 --------------------

type LoginReq struct {
	Passphrase string `json:"passphrase" binding:"required"`
	Name       string `json:"name"`
}

// GinHandleLogin 口令登录，发会话 cookie
// @Summary 登录
// @Description 校验口令，通过后种会话 cookie（未配置口令的部署不需要登录）
// @Tags 鉴权
// @Accept json
// @Produce json
// @Param req body LoginReq true "口令"
// @Success 200 {object} map[string]string "{token}"
// @Failure 401 {object} response.ErrorBody "口令错误"
// @Router /login [post]
func (c *BoardEngine) GinHandleLogin(ctx *gin.Context) {
	var req LoginReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}

	token, err := c.AuthService.Login(ctx.Request.Context(), req.Passphrase, req.Name)
	if err != nil {
		abortWithErr(ctx, err)
		return
	}

	// cookie 给浏览器；token 同时返回，给非浏览器客户端走 Bearer
	ctx.SetCookie(service.SessionCookieName, token, 7*24*3600, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{"token": token})
}

// GinHandleLogout 注销会话
// @Summary 登出
// @Tags 鉴权
// @Produce json
// @Success 200 "已登出"
// @Router /logout [post]
func (c *BoardEngine) GinHandleLogout(ctx *gin.Context) {
	token := c.AuthService.ExtractToken(ctx.Request)
	if token != "" {
		_ = c.AuthService.Logout(ctx.Request.Context(), token)
	}
	ctx.SetCookie(service.SessionCookieName, "", -1, "/", "", false, true)
	ctx.Status(http.StatusOK)
}

// GinHandleInfo 部署信息
// @Summary 部署信息
// @Description 是否开启口令闸门、本机访问地址
// @Tags 鉴权
// @Produce json
// @Success 200 {object} map[string]interface{} "{hasAuth, url}"
// @Router /info [get]
func (c *BoardEngine) GinHandleInfo(ctx *gin.Context) {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	ctx.JSON(http.StatusOK, gin.H{
		"hasAuth": c.AuthService.Enabled(),
		"url":     scheme + "://" + ctx.Request.Host,
	})
}

// GinHandleBranding 品牌信息
// @Summary 品牌信息
// @Description 应用名和配色，由注入的 BrandingProvider 决定
// @Tags 鉴权
// @Produce json
// @Success 200 {object} map[string]interface{} "{appName, palette}"
// @Router /branding [get]
func (c *BoardEngine) GinHandleBranding(ctx *gin.Context) {
	b := c.Branding()
	ctx.JSON(http.StatusOK, gin.H{
		"appName": b.AppName(),
		"palette": b.Palette(),
	})
}
