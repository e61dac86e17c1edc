package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type Config struct {
	App struct {
		Env         string
		Port        string
		FrontendURL string
	}
	Mongo struct {
		URI      string
		Database string
	}
	JWT struct {
		AccessTokenSecret        string
		AccessTokenExpiryMinutes int
		RefreshTokenSecret       string
		RefreshTokenExpiryDays   int
	}
	Storage struct {
		Endpoint        string
		Region          string
		AccessKeyID     string
		AccessKeySecret string
		Bucket          string
		CDNBaseURL      string
	}
	Rates struct {
		BaseURL string
	}
}

// Global Mongo database handle, set by ConnectMongo via Initialize.
var DB *mongo.Database

// Global process logger, set by Initialize.
var Logger *zap.Logger

var appConfig *Config
var once sync.Once

// LoadConfig reads configuration from the environment into a Config struct.
// MONGODB_URI and MONGODB_DB are mandatory; everything else has a default.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; production sets env vars directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables.")
	}

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	cfg.Mongo.URI = os.Getenv("MONGODB_URI")
	cfg.Mongo.Database = os.Getenv("MONGODB_DB")
	if cfg.Mongo.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.Mongo.Database == "" {
		return nil, fmt.Errorf("MONGODB_DB is required")
	}

	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", "dev-access-secret")
	cfg.JWT.RefreshTokenSecret = getEnv("JWT_REFRESH_TOKEN_SECRET", "dev-refresh-secret")

	var err error
	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}
	cfg.JWT.RefreshTokenExpiryDays, err = getEnvAsInt("JWT_REFRESH_TOKEN_EXPIRY_DAYS", 7)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_TOKEN_EXPIRY_DAYS: %w", err)
	}

	cfg.Storage.Endpoint = getEnv("STORAGE_ENDPOINT", "")
	cfg.Storage.Region = getEnv("STORAGE_REGION", "auto")
	cfg.Storage.AccessKeyID = getEnv("STORAGE_ACCESS_KEY_ID", "")
	cfg.Storage.AccessKeySecret = getEnv("STORAGE_ACCESS_KEY_SECRET", "")
	cfg.Storage.Bucket = getEnv("STORAGE_BUCKET", "")
	cfg.Storage.CDNBaseURL = getEnv("CDN_BASE_URL", "")

	cfg.Rates.BaseURL = getEnv("EXCHANGE_RATE_API_URL", "https://api.exchangerate-api.com/v4/latest")

	if cfg.App.Env == "production" &&
		(cfg.JWT.AccessTokenSecret == "dev-access-secret" || cfg.JWT.RefreshTokenSecret == "dev-refresh-secret") {
		log.Println("WARNING: Using default JWT secrets in production. Set JWT_ACCESS_TOKEN_SECRET and JWT_REFRESH_TOKEN_SECRET.")
	}

	appConfig = cfg
	return cfg, nil
}

// ConnectMongo establishes the MongoDB connection and pings the primary.
// The driver's built-in connection pool is the only concurrency primitive
// configured here; pool sizing stays at driver defaults.
func ConnectMongo(cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	DB = client.Database(cfg.Mongo.Database)
	return DB, nil
}

// NewLogger builds the process logger: development config locally,
// production JSON config otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Initialize loads configuration, builds the logger and connects to MongoDB.
// Call once from main before anything else.
func Initialize() error {
	var initErr error
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			initErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}

		Logger, err = NewLogger(cfg.App.Env)
		if err != nil {
			initErr = fmt.Errorf("failed to build logger: %w", err)
			return
		}

		if _, err = ConnectMongo(cfg); err != nil {
			initErr = err
			return
		}
		Logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))
	})
	return initErr
}

// GetConfig returns the loaded configuration. It must not be called before
// Initialize.
func GetConfig() *Config {
	if appConfig == nil {
		log.Fatal("Configuration not loaded. Call config.Initialize() first.")
	}
	return appConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
