package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server struct {
		Host        string   `yaml:"host" env:"SERVER_HOST"`
		Port        int      `yaml:"port" env:"SERVER_PORT"`
		Env         string   `yaml:"env" env:"SERVER_ENV"`
		Debug       bool     `yaml:"debug" env:"DEBUG"`
		CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DATABASE_DRIVER"` // sqlite, postgres, mysql
		DSN             string `yaml:"url" env:"DATABASE_URL"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"` // seconds
		AutoMigrate     bool   `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE"`
	} `yaml:"database"`

	Auth struct {
		AdminPassword   string `yaml:"admin_password" env:"ADMIN_PASSWORD"`
		JWTSecret       string `yaml:"jwt_secret" env:"JWT_SECRET"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes" env:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	} `yaml:"auth"`

	Storage struct {
		Type       string `yaml:"type" env:"STORAGE_TYPE"`          // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path" env:"UPLOAD_DIR"`       // upload root for local storage
		BaseURL    string `yaml:"base_url" env:"STORAGE_BASE_URL"`  // public URL prefix
		Bucket     string `yaml:"bucket" env:"STORAGE_BUCKET"`      // S3/R2
		Region     string `yaml:"region" env:"STORAGE_REGION"`      // S3
		AccessKey  string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
		SecretKey  string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
		Endpoint   string `yaml:"endpoint" env:"STORAGE_ENDPOINT"` // R2 or custom S3
		PublicRead bool   `yaml:"public_read" env:"STORAGE_PUBLIC_READ"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize            int64    `yaml:"max_size" env:"MAX_FILE_SIZE"` // bytes
		ImageExtensions    []string `yaml:"image_extensions" env:"ALLOWED_IMAGE_EXTENSIONS" envSeparator:","`
		DocumentExtensions []string `yaml:"document_extensions" env:"ALLOWED_DOCUMENT_EXTENSIONS" envSeparator:","`
		OptimizeImages     bool     `yaml:"optimize_images" env:"OPTIMIZE_IMAGES"`
		MaxImageWidth      int      `yaml:"max_image_width" env:"MAX_IMAGE_WIDTH"`
		MaxImageHeight     int      `yaml:"max_image_height" env:"MAX_IMAGE_HEIGHT"`
		ImageQuality       int      `yaml:"image_quality" env:"IMAGE_QUALITY"` // JPEG quality (1-100)
	} `yaml:"upload"`

	Workers struct {
		ImportLogRetentionDays int `yaml:"import_log_retention_days" env:"IMPORT_LOG_RETENTION_DAYS"` // 0 - не чистить
		PruneIntervalMinutes   int `yaml:"prune_interval_minutes" env:"PRUNE_INTERVAL_MINUTES"`
	} `yaml:"workers"`
}

var AppConfig *Config

// Default возвращает настройки по умолчанию (sqlite, локальное хранилище, 10MB)
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Server.Debug = true
	cfg.Server.CORSOrigins = []string{"*"}

	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = "moto_education.db"
	cfg.Database.MaxOpenConns = 10
	cfg.Database.MaxIdleConns = 5
	cfg.Database.ConnMaxLifetime = 3600
	cfg.Database.AutoMigrate = true

	cfg.Auth.AdminPassword = "admin123"
	cfg.Auth.JWTSecret = "supersecret"
	cfg.Auth.TokenTTLMinutes = 30

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "static/uploads"
	cfg.Storage.BaseURL = "/static/uploads"

	cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	cfg.Upload.ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	cfg.Upload.DocumentExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx"}
	cfg.Upload.MaxImageWidth = 1920
	cfg.Upload.MaxImageHeight = 1080
	cfg.Upload.ImageQuality = 85

	cfg.Workers.ImportLogRetentionDays = 90
	cfg.Workers.PruneIntervalMinutes = 60

	return &cfg
}

// Load читает YAML (если файл есть) поверх значений по умолчанию,
// затем применяет переменные окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("CONFIG_PATH")
		explicit = path != ""
	}
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// без файла работаем на значениях по умолчанию
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig загружает конфиг в глобальную AppConfig
func LoadConfig() error {
	cfg, err := Load("")
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		if err := LoadConfig(); err != nil {
			AppConfig = Default()
		}
	}
	return AppConfig
}

// Validate проверяет то, без чего сервер не запустится
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database url is required")
	}
	if c.Upload.MaxSize <= 0 {
		return errors.New("upload.max_size must be positive")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	if c.Auth.TokenTTLMinutes <= 0 {
		return errors.New("auth.token_ttl_minutes must be positive")
	}
	if c.Workers.ImportLogRetentionDays > 0 && c.Workers.PruneIntervalMinutes <= 0 {
		return errors.New("workers.prune_interval_minutes must be positive when retention is enabled")
	}
	return nil
}

// IsDevelopment - режим разработки (подробные ошибки, SQL-логи)
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// normalize приводит расширения к виду ".ext" в нижнем регистре
func (c *Config) normalize() {
	c.Upload.ImageExtensions = normalizeExtensions(c.Upload.ImageExtensions)
	c.Upload.DocumentExtensions = normalizeExtensions(c.Upload.DocumentExtensions)
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
