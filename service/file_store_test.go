package service

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeFileHeader 构造一个真实的 multipart.FileHeader（走标准库的表单解析）
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req, err := http.NewRequest(http.MethodPost, "/upload", &buf)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File["file"]
	if len(fhs) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(fhs))
	}
	return fhs[0]
}

func TestFileStore_SaveMultipart(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	fh := makeFileHeader(t, "notes.txt", []byte("hello board"))
	storedName, size, err := fs.SaveMultipart(fh)
	if err != nil {
		t.Fatalf("SaveMultipart: %v", err)
	}
	if size != int64(len("hello board")) {
		t.Errorf("size = %d, want %d", size, len("hello board"))
	}
	// 存储文件名 = 时间戳-原始名
	if !strings.HasSuffix(storedName, "-notes.txt") {
		t.Errorf("stored name should keep the original name as suffix, got %s", storedName)
	}
	if !fs.Exists(storedName) {
		t.Error("stored file should exist on disk")
	}

	data, err := os.ReadFile(fs.Path(storedName))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "hello board" {
		t.Errorf("stored content = %q", data)
	}
}

// 恰好等于上限通过，超 1 字节拒绝且不落盘
func TestFileStore_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir, 16)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	exact := makeFileHeader(t, "exact.bin", bytes.Repeat([]byte("a"), 16))
	if _, _, err := fs.SaveMultipart(exact); err != nil {
		t.Fatalf("file of exactly max size should be accepted: %v", err)
	}

	over := makeFileHeader(t, "over.bin", bytes.Repeat([]byte("a"), 17))
	if _, _, err := fs.SaveMultipart(over); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "-over.bin") {
			t.Error("rejected upload must not leave a file behind")
		}
	}
}

// 客户端上报的路径被压成 base name，不能穿越出上传目录
func TestFileStore_SanitizeName(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	fh := makeFileHeader(t, "../../etc/passwd", []byte("x"))
	storedName, _, err := fs.SaveMultipart(fh)
	if err != nil {
		t.Fatalf("SaveMultipart: %v", err)
	}
	if strings.Contains(storedName, "/") || strings.Contains(storedName, "..") {
		t.Errorf("stored name must be a plain base name, got %s", storedName)
	}
	if filepath.Dir(fs.Path(storedName)) != fs.Dir() {
		t.Errorf("stored path escaped the upload dir: %s", fs.Path(storedName))
	}
}

func TestFileStore_RemoveIdempotent(t *testing.T) {
	fs, err := NewFileStore(t.TempDir(), 1024)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	fh := makeFileHeader(t, "gone.txt", []byte("bye"))
	storedName, _, err := fs.SaveMultipart(fh)
	if err != nil {
		t.Fatalf("SaveMultipart: %v", err)
	}

	if err := fs.Remove(storedName); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if fs.Exists(storedName) {
		t.Error("file should be gone after Remove")
	}
	// 第二次删除同名文件不报错
	if err := fs.Remove(storedName); err != nil {
		t.Fatalf("repeat Remove should be a no-op: %v", err)
	}
	if err := fs.Remove(""); err != nil {
		t.Fatalf("Remove of empty name should be a no-op: %v", err)
	}
}

// 存储未初始化（nil）时降级运行：写入报错，删除/查询安全空操作
func TestFileStore_NilDegraded(t *testing.T) {
	var fs *FileStore

	fh := makeFileHeader(t, "a.txt", []byte("x"))
	if _, _, err := fs.SaveMultipart(fh); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if err := fs.Remove("123-a.txt"); err != nil {
		t.Fatalf("Remove on nil store should be a no-op: %v", err)
	}
	if fs.Exists("123-a.txt") {
		t.Error("Exists on nil store should report false")
	}
	if got := fs.MaxSize(); got != DefaultMaxFileSize {
		t.Errorf("MaxSize on nil store = %d, want default", got)
	}
	if fs.Dir() != "" || fs.Path("a.txt") != "" {
		t.Error("nil store has no directory")
	}
}
