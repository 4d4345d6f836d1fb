package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the portal API.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	DatabaseURL   string
	RedisURL      string
	AdminPassword string
	JWTSecret     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	ClassworkBucket string
	PapersBucket    string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	MaxUploadMB int
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PORTAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Englishroom Portal API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("classwork.bucket", "classwork")
	v.SetDefault("papers.bucket", "pyqs")
	v.SetDefault("cloudinary.folder", "englishroom/sessions")
	v.SetDefault("max_upload_mb", 25)

	cfg := Config{
		AppName:             v.GetString("app.name"),
		AppEnv:              v.GetString("app.env"),
		AppPort:             v.GetString("app.port"),
		DatabaseURL:         v.GetString("database.url"),
		RedisURL:            v.GetString("redis.url"),
		AdminPassword:       v.GetString("admin.password"),
		JWTSecret:           v.GetString("jwt.secret"),
		MinioEndpoint:       v.GetString("minio.endpoint"),
		MinioAccessKey:      v.GetString("minio.access_key"),
		MinioSecretKey:      v.GetString("minio.secret_key"),
		MinioUseSSL:         v.GetBool("minio.use_ssl"),
		ClassworkBucket:     v.GetString("classwork.bucket"),
		PapersBucket:        v.GetString("papers.bucket"),
		CloudinaryCloudName: v.GetString("cloudinary.cloud_name"),
		CloudinaryAPIKey:    v.GetString("cloudinary.api_key"),
		CloudinaryAPISecret: v.GetString("cloudinary.api_secret"),
		CloudinaryFolder:    v.GetString("cloudinary.folder"),
		MaxUploadMB:         v.GetInt("max_upload_mb"),
	}

	if cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("admin password must be provided")
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret must be provided")
	}

	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 25
	}

	return cfg, nil
}
