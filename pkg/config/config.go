package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Log      LogConfig
	Client   ClientConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Env     string
	Version string
}

// DatabaseConfig รองรับ 2 driver: postgres (production) และ sqlite (local dev)
type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string // ใช้เมื่อ Driver = sqlite
}

// RedisConfig สำหรับ cache task list — URL ว่างคือปิด cache
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig สำหรับ publish task events — URL ว่างคือปิด events
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // วัน
	Compress   bool
}

// ClientConfig สำหรับฝั่ง TUI client
type ClientConfig struct {
	APIBaseURL string
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Taskboard API"),
			Port:    getEnv("APP_PORT", "8080"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "taskboard"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "taskboard.db"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/taskboard.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Client: ClientConfig{
			APIBaseURL: getEnv("TASKBOARD_API_URL", "http://localhost:8080"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
