package board_sdk

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseFileSize(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1024", 1024},
		{"500KB", 500 * 1024},
		{"500MB", 500 * 1024 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1.5GB", int64(1.5 * 1024 * 1024 * 1024)},
		{" 2gb ", 2 * 1024 * 1024 * 1024},
		{"garbage", 2 * 1024 * 1024 * 1024}, // 解析失败回落默认 2 GiB
		{"", 2 * 1024 * 1024 * 1024},
	}
	for _, c := range cases {
		if got := ParseFileSize(c.in); got != c.want {
			t.Errorf("ParseFileSize(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseRetention(t *testing.T) {
	if got := ParseRetention("never"); got != nil {
		t.Errorf("ParseRetention(never) = %v, want nil", got)
	}
	if got := ParseRetention("null"); got != nil {
		t.Errorf("ParseRetention(null) = %v, want nil", got)
	}

	cases := []struct {
		in   string
		want time.Duration
	}{
		{"48h", 48 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"1D", 24 * time.Hour},
		{"garbage", 24 * time.Hour}, // 解析失败回落默认 24h
		{"", 24 * time.Hour},
	}
	for _, c := range cases {
		got := ParseRetention(c.in)
		if got == nil || *got != c.want {
			t.Errorf("ParseRetention(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// 文件缺失：静默用默认配置，不让启动失败
func TestLoadConfig_MissingFile(t *testing.T) {
	fc := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
	if fc.Server.Port != 3000 {
		t.Errorf("default port = %d, want 3000", fc.Server.Port)
	}
	if fc.Storage.MaxFileSize != "2GB" || fc.Storage.Retention != "24h" {
		t.Errorf("unexpected storage defaults: %+v", fc.Storage)
	}
	if fc.Branding.AppName != "Byteboard" {
		t.Errorf("default app name = %q, want Byteboard", fc.Branding.AppName)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	raw := `
server:
  port: 8080
auth:
  passphrase: hunter2
storage:
  upload_dir: /srv/board/uploads
  max_file_size: 500MB
  retention: 7d
branding:
  app_name: TeamDrop
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fc := LoadConfig(path)
	if fc.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", fc.Server.Port)
	}
	if fc.Auth.Passphrase != "hunter2" {
		t.Errorf("passphrase = %q", fc.Auth.Passphrase)
	}
	if fc.Storage.MaxFileSize != "500MB" || fc.Storage.Retention != "7d" {
		t.Errorf("unexpected storage: %+v", fc.Storage)
	}
	if fc.Branding.AppName != "TeamDrop" {
		t.Errorf("app name = %q, want TeamDrop", fc.Branding.AppName)
	}
	// 没写的字段保持默认
	if fc.Branding.PrimaryColor != "#111827" {
		t.Errorf("primary color = %q, want default", fc.Branding.PrimaryColor)
	}
}

// 非法 YAML：警告并整体回落默认
func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fc := LoadConfig(path)
	if fc.Server.Port != 3000 {
		t.Errorf("port = %d, want default 3000", fc.Server.Port)
	}
}
