package board_sdk

import (
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig 宿主进程的 board.yaml。全部字段可选，缺省即默认值。
//
//	server:
//	  port: 3000
//	auth:
//	  passphrase: ""        # 空 = 不需要口令
//	storage:
//	  upload_dir: ./uploads
//	  max_file_size: 2GB    # 数字（字节）或 KB/MB/GB 后缀
//	  retention: 24h        # Nh / Nd，或 never
//	branding:
//	  app_name: Byteboard
//	  primary_color: "#111827"
type FileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		Passphrase string `yaml:"passphrase"`
	} `yaml:"auth"`
	Storage struct {
		UploadDir   string `yaml:"upload_dir"`
		MaxFileSize string `yaml:"max_file_size"`
		Retention   string `yaml:"retention"`
	} `yaml:"storage"`
	Branding struct {
		AppName      string `yaml:"app_name"`
		PrimaryColor string `yaml:"primary_color"`
	} `yaml:"branding"`
}

func defaultFileConfig() *FileConfig {
	fc := &FileConfig{}
	fc.Server.Port = 3000
	fc.Storage.UploadDir = "./uploads"
	fc.Storage.MaxFileSize = "2GB"
	fc.Storage.Retention = "24h"
	fc.Branding.AppName = "Byteboard"
	fc.Branding.PrimaryColor = "#111827"
	return fc
}

// LoadConfig 读取配置文件。文件不存在或不是合法 YAML 时警告并返回默认配置，
// 不让启动失败。
func LoadConfig(path string) *FileConfig {
	fc := defaultFileConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("read config %s: %v, using defaults", path, err)
		}
		return fc
	}

	if err := yaml.Unmarshal(raw, fc); err != nil {
		log.Printf("config %s is not valid YAML, using defaults: %v", path, err)
		return defaultFileConfig()
	}
	log.Printf("config loaded from %s", path)
	return fc
}

var fileSizeRe = regexp.MustCompile(`(?i)^(\d+(\.\d+)?)\s*(KB|MB|GB)$`)

// ParseFileSize 解析 "500MB" / "2GB" / 纯字节数。解析失败返回默认 2 GiB。
func ParseFileSize(val string) int64 {
	val = strings.TrimSpace(val)
	if n, err := strconv.ParseInt(val, 10, 64); err == nil && n > 0 {
		return n
	}

	m := fileSizeRe.FindStringSubmatch(val)
	if m == nil {
		return 2 * 1024 * 1024 * 1024
	}
	num, _ := strconv.ParseFloat(m[1], 64)
	switch strings.ToUpper(m[3]) {
	case "KB":
		return int64(num * 1024)
	case "MB":
		return int64(num * 1024 * 1024)
	default: // GB
		return int64(num * 1024 * 1024 * 1024)
	}
}

var retentionRe = regexp.MustCompile(`(?i)^(\d+)(h|d)$`)

// ParseRetention 解析 "48h" / "7d"；"never"（或 "null"）表示永不过期，返回 nil。
// 解析失败返回默认 24 小时。
func ParseRetention(val string) *time.Duration {
	val = strings.TrimSpace(strings.ToLower(val))
	if val == "never" || val == "null" {
		return nil
	}

	d := 24 * time.Hour
	if m := retentionRe.FindStringSubmatch(val); m != nil {
		n, _ := strconv.Atoi(m[1])
		if m[2] == "d" || m[2] == "D" {
			d = time.Duration(n) * 24 * time.Hour
		} else {
			d = time.Duration(n) * time.Hour
		}
	}
	return &d
}
