package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// 存储驱动
const (
	StorageFile  = "file"
	StorageMongo = "mongo"
	StorageMySQL = "mysql"
)

// Config 应用程序配置
type Config struct {
	APIPort  int
	LogLevel string
	LogFile  LogFileConfig

	// TrustedProxies 可信反向代理地址或网段，为空时忽略 X-Forwarded-For
	TrustedProxies []string

	StorageDriver string
	DataDir       string
	Database      DatabaseConfig
	Mongo         MongoConfig
	Redis         RedisConfig
	Admin         AdminConfig
	Email         EmailConfig
	Geetest       GeetestConfig

	// DigestHour 每日待审核照片提醒的小时（0-23），小于0时不启用
	DigestHour int
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // 单个文件最大大小，单位MB
	MaxBackups int
	MaxAge     int // 保留天数
	Compress   bool
}

// DatabaseConfig MySQL数据库配置
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URI    string
	DBName string
}

// RedisConfig Redis配置，Host为空时不启用
type RedisConfig struct {
	Host     string
	Port     int
	Password string
}

// Enabled 是否启用Redis
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// AdminConfig 管理员认证配置
type AdminConfig struct {
	PasswordHash string // 密码摘要，为空时回退到存储中的管理员记录
	MaxFailures  int    // 锁定前允许的连续失败次数
	LockMinutes  int    // 失败计数窗口（分钟）
}

// EmailConfig 邮件配置
type EmailConfig struct {
	Host     string // SMTP服务器地址
	Port     int    // SMTP服务器端口
	Username string // 邮箱账号
	Password string // 邮箱密码
	From     string // 发件人
	FromName string // 发件人名称
	NotifyTo string // 新提交通知收件人
}

// Enabled 是否启用通知邮件
func (c EmailConfig) Enabled() bool {
	return c.Host != "" && c.NotifyTo != ""
}

// GeetestConfig 极验验证配置
type GeetestConfig struct {
	CaptchaID  string // 验证ID
	CaptchaKey string // 验证密钥
	APIServer  string // API服务器地址
}

// Enabled 是否启用极验验证
func (c GeetestConfig) Enabled() bool {
	return c.CaptchaID != "" && c.CaptchaKey != "" && c.APIServer != ""
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	// 加载.env文件，不存在时直接使用环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	driver := getString("STORAGE_DRIVER", StorageFile)
	switch driver {
	case StorageFile, StorageMongo, StorageMySQL:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
	}

	return &Config{
		APIPort:        getInt("API_PORT", 8080),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		TrustedProxies: getList("TRUSTED_PROXIES"),
		LogFile: LogFileConfig{
			Enabled:    getBool("LOG_FILE_ENABLED", false),
			Path:       getString("LOG_FILE_PATH", "logs/techfest.log"),
			MaxSize:    getInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: getInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     getInt("LOG_FILE_MAX_AGE", 30),
			Compress:   getBool("LOG_FILE_COMPRESS", false),
		},
		StorageDriver: driver,
		DataDir:       getString("DATA_DIR", "./data"),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getInt("DB_PORT", 3306),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   os.Getenv("DB_NAME"),
		},
		Mongo: MongoConfig{
			URI:    getString("MONGO_URI", "mongodb://localhost:27017"),
			DBName: getString("MONGO_DB", "techfest"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Admin: AdminConfig{
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			MaxFailures:  getInt("LOGIN_MAX_FAILURES", 5),
			LockMinutes:  getInt("LOGIN_LOCK_MINUTES", 15),
		},
		Email: EmailConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     getInt("EMAIL_PORT", 465),
			Username: os.Getenv("EMAIL_USERNAME"),
			Password: os.Getenv("EMAIL_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
			FromName: os.Getenv("EMAIL_FROM_NAME"),
			NotifyTo: os.Getenv("NOTIFY_EMAIL"),
		},
		Geetest: GeetestConfig{
			CaptchaID:  os.Getenv("GEETEST_CAPTCHA_ID"),
			CaptchaKey: os.Getenv("GEETEST_CAPTCHA_KEY"),
			APIServer:  os.Getenv("GEETEST_API_SERVER"),
		},
		DigestHour: getInt("MODERATION_DIGEST_HOUR", 9),
	}, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getList 读取逗号分隔的列表，忽略空项
func getList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
