package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const devJWTSecret = "dev-only-change-me"

type Config struct {
	Port        string
	AppEnv      string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	JWTExpire   time.Duration
	FrontendURL string
	LogLevel    string

	RateLimitPerMinute int

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string
}

// IsDevelopment reports whether the app runs in development mode (relaxed CORS, debug gin)
func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// CloudinaryEnabled reports whether image upload credentials are configured
func (c Config) CloudinaryEnabled() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// Load reads .env (if present) and the process environment once.
func Load() (Config, error) {
	// A missing .env is normal in containers
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:                   v.GetString("PORT"),
		AppEnv:                 v.GetString("NODE_ENV"),
		MongoURI:               v.GetString("MONGODB_URI"),
		MongoDB:                v.GetString("MONGODB_DB"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTExpire:              time.Duration(v.GetInt("JWT_EXPIRE_HOURS")) * time.Hour,
		FrontendURL:            v.GetString("FRONTEND_URL"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		RateLimitPerMinute:     v.GetInt("RATE_LIMIT_PER_MINUTE"),
		CloudinaryCloudName:    v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       v.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    v.GetString("CLOUDINARY_API_SECRET"),
		CloudinaryUploadFolder: v.GetString("CLOUDINARY_UPLOAD_FOLDER"),
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return Config{}, errors.New("JWT_SECRET must be set outside development")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.JWTExpire <= 0 {
		cfg.JWTExpire = 24 * time.Hour
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("NODE_ENV", "development")
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DB", "charity")
	v.SetDefault("JWT_EXPIRE_HOURS", 24)
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 30)
	v.SetDefault("CLOUDINARY_UPLOAD_FOLDER", "charity")
}
