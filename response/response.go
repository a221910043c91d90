package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody 错误响应结构。
// 约定：成功时各接口直接返回自己的载荷（条目 JSON、{items,hasMore,page} 等），
// 失败时统一返回 {"error": "<原因>"}，文案会被客户端原样弹窗展示，
// 业务状态通过 HTTP 状态码表达（400/401/403/404/413/500）。
type ErrorBody struct {
	Error string `json:"error" example:"channel name already exists"`
}

// Err 错误响应
func Err(msg string) *ErrorBody {
	return &ErrorBody{Error: msg}
}

// WriteJSON 写入 JSON 响应（指定 HTTP 状态码）。
// 给不走 gin 的调用方（如自建 net/http handler）用。
func (e *ErrorBody) WriteJSON(w http.ResponseWriter, httpStatus int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteData 写入成功载荷（HTTP 200）
func WriteData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
