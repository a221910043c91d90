// Package board_sdk 提供局域网剪贴板/文件共享看板核心能力
// @title Board SDK API
// @version 1.0
// @description 局域网共享看板的 RESTful API 文档：频道、条目、搜索、口令闸门
// @description
// @description ## 响应格式
// @description 成功时各接口直接返回自己的载荷（条目 JSON、分页对象、数组）。
// @description 失败时统一返回：
// @description ```json
// @description {
// @description   "error": "reason"
// @description }
// @description ```
// @description
// @description ## HTTP 状态码说明
// @description - **200**: 成功
// @description - **400**: 校验失败（频道名非法、缺字段、数量超限）
// @description - **401**: 口令/会话无效
// @description - **403**: 固定保护（删除被固定的频道）
// @description - **404**: 条目/频道不存在
// @description - **413**: 上传超过大小上限
// @description - **500**: 存储/IO 错误
//
// @termsOfService https://github.com/cydxin/board-sdk
//
// @contact.name API Support
// @contact.url https://github.com/cydxin/board-sdk/issues
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式：Bearer <token>（浏览器端走会话 cookie）
//
// @securityDefinitions.apikey QueryToken
// @in query
// @name token
// @description 用于 WebSocket 等无法传 header 的场景
package board_sdk
