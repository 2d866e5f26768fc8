package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 默认值
const (
	DefaultPort            = 3001
	DefaultLogLevel        = "info"
	DefaultLogFile         = "logs/uptime-board.log"
	DefaultTimezone        = "Local"
	DefaultMaxDowntimeLogs = 15
	DefaultRefreshInterval = 300 // 秒
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`  // 为空只输出到 stdout
}

// DisplayConfig 仪表盘展示配置
type DisplayConfig struct {
	Timezone        string `yaml:"timezone"`          // 计算自然日边界使用的时区，如 Asia/Shanghai
	MaxDowntimeLogs int    `yaml:"max_downtime_logs"` // 卡片显示的宕机日志条数，默认 15
	RefreshInterval int    `yaml:"refresh_interval"`  // 前端刷新间隔（秒），默认 300
	ReportTitle     string `yaml:"report_title"`
}

var GlobalConfig Config

func LoadConfig(path string) error {
	// .env 不存在时忽略
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, we might still be okay if env vars are set
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
			return err
		}
	}

	// Environment variable overrides
	if port := os.Getenv("PORT"); port != "" {
		var p int
		fmt.Sscanf(port, "%d", &p)
		if p != 0 {
			GlobalConfig.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		GlobalConfig.Log.Level = level
	}
	if file, ok := os.LookupEnv("LOG_FILE"); ok {
		GlobalConfig.Log.File = file
	}
	if tz := os.Getenv("TIMEZONE"); tz != "" {
		GlobalConfig.Display.Timezone = tz
	}
	if n := os.Getenv("MAX_DOWNTIME_LOGS"); n != "" {
		var v int
		fmt.Sscanf(n, "%d", &v)
		if v > 0 {
			GlobalConfig.Display.MaxDowntimeLogs = v
		}
	}

	GlobalConfig.ApplyDefaults()
	return nil
}

// ApplyDefaults 填充未配置的字段。日志文件只在 yaml 与环境变量都未设置时使用默认路径
func (c *Config) ApplyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = DefaultPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		if _, ok := os.LookupEnv("LOG_FILE"); !ok {
			c.Log.File = DefaultLogFile
		}
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = DefaultTimezone
	}
	if c.Display.MaxDowntimeLogs <= 0 {
		c.Display.MaxDowntimeLogs = DefaultMaxDowntimeLogs
	}
	if c.Display.RefreshInterval <= 0 {
		c.Display.RefreshInterval = DefaultRefreshInterval
	}
	if c.Display.ReportTitle == "" {
		c.Display.ReportTitle = "服务状态报告"
	}
}

// Location 解析配置的时区，无效时回退到本地时区
func (c *Config) Location() *time.Location {
	if c.Display.Timezone == "" || c.Display.Timezone == DefaultTimezone {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// RefreshDuration 刷新间隔
func (c *Config) RefreshDuration() time.Duration {
	return time.Duration(c.Display.RefreshInterval) * time.Second
}
