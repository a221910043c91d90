package service

import "errors"

// 校验/业务错误。handler 层用 errors.Is 映射到 HTTP 状态码，
// 错误文案会原样透传给客户端弹窗展示。
var (
	ErrNotFound           = errors.New("not found")
	ErrFileTooLarge       = errors.New("file exceeds the maximum allowed size")
	ErrInvalidChannelName = errors.New("channel name must be 1-32 characters: letters, numbers, spaces, - and _")
	ErrChannelExists      = errors.New("channel name already exists")
	ErrChannelLimit       = errors.New("maximum 10 channels allowed")
	ErrChannelNotFound    = errors.New("channel not found")
	ErrChannelPinned      = errors.New("cannot delete a pinned channel")
	ErrLastChannel        = errors.New("cannot delete the last channel")
	ErrMissingChannel     = errors.New("channel is required")
	ErrEmptyContent       = errors.New("content cannot be empty")
	ErrNotEditable        = errors.New("only text items can be edited")
	ErrBadPassphrase      = errors.New("wrong passphrase")
	ErrStorageUnavailable = errors.New("file storage is unavailable")
)
