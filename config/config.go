package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config là cấu hình của gateway, đọc từ etc/app.yml + biến môi trường
type Config struct {
	UpstreamBaseURL        string `yaml:"upstream_base_url" validate:"required,url"`
	Port                   int    `yaml:"port" validate:"required"`
	UpstreamTimeoutSeconds int    `yaml:"upstream_timeout_seconds" validate:"required,min=1"`
	SessionTTLHours        int    `yaml:"session_ttl_hours" validate:"required,min=1"`
	CacheTTLMinutes        int    `yaml:"cache_ttl_minutes" validate:"required,min=1"`

	// Secrets, nạp từ .env
	RedisAddr     string
	RedisUser     string
	RedisPassword string
}

var App *Config

var Cloudinary *cloudinary.Cloudinary

// LoadConfig nạp và validate cấu hình; secrets lấy từ .env
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	path := filepath.Join("etc", "app.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisUser = os.Getenv("REDIS_USER")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	App = &cfg
	return &cfg, nil
}

// ConnectCloudinary khởi tạo client Cloudinary cho upload ảnh phòng
func ConnectCloudinary() error {
	var err error
	Cloudinary, err = cloudinary.NewFromURL(os.Getenv("CLOUDINARY_URL"))
	if err != nil {
		return err
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
