package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	LogFile           string `mapstructure:"LOG_FILE"`
	Timezone          string `mapstructure:"TIMEZONE"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Database configuration. Driver is one of mongo, postgres, sqlite, memory.
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`

	// Auth configuration.
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	TokenTTL      time.Duration `mapstructure:"TOKEN_TTL"`
	SessionDriver string        `mapstructure:"SESSION_DRIVER"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Object storage. Driver is gcs or cloudinary.
	StorageDriver       string        `mapstructure:"STORAGE_DRIVER"`
	StorageBucket       string        `mapstructure:"STORAGE_BUCKET"`
	GCSCredentialsFile  string        `mapstructure:"GCS_CREDENTIALS_FILE"`
	CloudinaryCloudName string        `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string        `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string        `mapstructure:"CLOUDINARY_API_SECRET"`
	SignedURLTTL        time.Duration `mapstructure:"SIGNED_URL_TTL"`

	// Cron spec for the lapsed online reservation purge. Empty disables it.
	PurgeSchedule string `mapstructure:"PURGE_SCHEDULE"`

	// Seeded administrator account.
	AdminEmail       string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword    string `mapstructure:"ADMIN_PASSWORD"`
	AdminDisplayName string `mapstructure:"ADMIN_DISPLAY_NAME"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("TIMEZONE", "Asia/Manila")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("DATABASE_DRIVER", "mongo")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "catering")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL", "12h")
	v.SetDefault("SESSION_DRIVER", "redis")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_AUTH_DB", 1)
	v.SetDefault("STORAGE_DRIVER", "gcs")
	v.SetDefault("STORAGE_BUCKET", "offers-image")
	v.SetDefault("GCS_CREDENTIALS_FILE", "")
	v.SetDefault("CLOUDINARY_CLOUD_NAME", "")
	v.SetDefault("CLOUDINARY_API_KEY", "")
	v.SetDefault("CLOUDINARY_API_SECRET", "")
	v.SetDefault("SIGNED_URL_TTL", "8760h")
	v.SetDefault("PURGE_SCHEDULE", "")
	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_DISPLAY_NAME", "")
}

// Load reads .env, config.yaml and the environment into a Config.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig populates AppConfig and exits on failure.
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location returns the configured business timezone, falling back to time.Local.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("invalid TIMEZONE %q, using local time", c.Timezone)
		return time.Local
	}
	return loc
}
