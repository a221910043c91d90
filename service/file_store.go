package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultMaxFileSize 上传大小上限默认 2 GiB
const DefaultMaxFileSize int64 = 2 * 1024 * 1024 * 1024

// FileStore 管理上传目录里的备份文件。
// 存储文件名 = 毫秒时间戳 + "-" + 原始文件名，避免同名冲突；
// 原始文件名保留在条目的 extra 元数据里。
type FileStore struct {
	dir     string
	maxSize int64
}

// NewFileStore 创建 FileStore 并确保目录存在。maxSize<=0 时用默认 2 GiB。
func NewFileStore(dir string, maxSize int64) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		dir = filepath.Join(".", "uploads")
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir, maxSize: maxSize}, nil
}

// Dir 上传目录路径
func (f *FileStore) Dir() string {
	if f == nil {
		return ""
	}
	return f.dir
}

// MaxSize 单文件大小上限（字节）
func (f *FileStore) MaxSize() int64 {
	if f == nil {
		return DefaultMaxFileSize
	}
	return f.maxSize
}

// Path 存储文件的磁盘路径。只取 base name，防止路径穿越。
func (f *FileStore) Path(storedName string) string {
	if f == nil {
		return ""
	}
	return filepath.Join(f.dir, filepath.Base(storedName))
}

// sanitizeName 把客户端上报的文件名压成安全的 base name
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		name = "file"
	}
	return name
}

// SaveMultipart 把 multipart 文件写入上传目录，返回存储文件名和字节数。
// 超过大小上限返回 ErrFileTooLarge，且不落盘；写入中途失败会清掉半成品文件。
// 存储未初始化（nil）时拒绝写入，返回 ErrStorageUnavailable。
func (f *FileStore) SaveMultipart(fh *multipart.FileHeader) (string, int64, error) {
	if f == nil {
		return "", 0, ErrStorageUnavailable
	}
	if fh.Size > f.maxSize {
		return "", 0, ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(fh.Filename))
	dstPath := filepath.Join(f.dir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", 0, err
	}

	// LimitReader 多读 1 字节：客户端申报的 Size 不可信，实际超限也要拒绝
	n, err := io.Copy(dst, io.LimitReader(src, f.maxSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dstPath)
		return "", 0, err
	}
	if n > f.maxSize {
		_ = os.Remove(dstPath)
		return "", 0, ErrFileTooLarge
	}

	return storedName, n, nil
}

// Remove 删除存储文件。文件不存在或存储未初始化都视为已删除。
func (f *FileStore) Remove(storedName string) error {
	if f == nil || storedName == "" {
		return nil
	}
	err := os.Remove(f.Path(storedName))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Exists 存储文件是否在磁盘上
func (f *FileStore) Exists(storedName string) bool {
	if f == nil || storedName == "" {
		return false
	}
	_, err := os.Stat(f.Path(storedName))
	return err == nil
}
