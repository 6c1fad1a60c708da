package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StoreMemory    = "memory"
	StoreMongo     = "mongo"
	StoreFirestore = "firestore"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
	Port     string `env:"PORT"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Storage
	StoreDriver                  string        `env:"STORE_DRIVER" envDefault:"memory"`
	MongoURI                     string        `env:"MONGO_URI" envDefault:"mongodb://mongo:27017"`
	MongoDatabase                string        `env:"MONGO_DB" envDefault:"liff-survey"`
	MongoConnectTimeout          time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	FirestoreProjectID           string        `env:"FIRESTORE_PROJECT_ID"`
	GoogleCloudProject           string        `env:"GOOGLE_CLOUD_PROJECT"`
	ResponseCollection           string        `env:"RESPONSE_COLLECTION" envDefault:"survey_responses"`
	FailedNotificationCollection string        `env:"FAILED_NOTIFICATION_COLLECTION" envDefault:"failed_notifications"`

	// HTTP
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	AllowedOrigins []string      `env:"API_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// Auth
	LineJWTSecret string   `env:"AUTH_LINE_JWT_SECRET"`
	LineJWTIssuer string   `env:"AUTH_LINE_JWT_ISSUER" envDefault:"https://access.line.me"`
	JWTAudience   string   `env:"AUTH_JWT_AUDIENCE"`
	AuthRequired  bool     `env:"AUTH_REQUIRED" envDefault:"false"`
	AdminUserIDs  []string `env:"ADMIN_USER_IDS" envSeparator:","`
	JWTConfigs    []JWTConfig

	// Messenger gateway
	MessengerEndpoint    string        `env:"MESSENGER_GATEWAY_URL"`
	MessengerDestination string        `env:"MESSENGER_GATEWAY_DESTINATION" envDefault:"line"`
	MessengerTimeout     time.Duration `env:"MESSENGER_GATEWAY_TIMEOUT" envDefault:"3s"`
}

// Load は .env があれば読み込んだ上で環境変数から Config を組み立てる。
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf(".env の読み込みに失敗: %w", err)
	}
	return Parse()
}

// Parse reads only the process environment.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("環境変数の解析に失敗: %w", err)
	}
	cfg.normalise()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalise() {
	if port := strings.TrimSpace(c.Port); port != "" {
		c.Addr = ":" + port
	}
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	if strings.TrimSpace(c.FirestoreProjectID) == "" {
		c.FirestoreProjectID = strings.TrimSpace(c.GoogleCloudProject)
	}
	c.AllowedOrigins = trimList(c.AllowedOrigins)
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	c.AdminUserIDs = trimList(c.AdminUserIDs)
	c.MessengerEndpoint = strings.TrimRight(strings.TrimSpace(c.MessengerEndpoint), "/")
	c.JWTAudience = strings.TrimSpace(c.JWTAudience)

	c.JWTConfigs = nil
	if secret := strings.TrimSpace(c.LineJWTSecret); secret != "" {
		c.JWTConfigs = append(c.JWTConfigs, JWTConfig{
			Issuer: strings.TrimSpace(c.LineJWTIssuer),
			Secret: []byte(secret),
		})
	}
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreMongo:
	case StoreFirestore:
		if c.FirestoreProjectID == "" {
			return errors.New("STORE_DRIVER=firestore には FIRESTORE_PROJECT_ID か GOOGLE_CLOUD_PROJECT が必要です")
		}
	default:
		return fmt.Errorf("未知の STORE_DRIVER です: %q", c.StoreDriver)
	}
	if c.AuthRequired && len(c.JWTConfigs) == 0 {
		return errors.New("AUTH_REQUIRED=true には AUTH_LINE_JWT_SECRET が必要です")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT は正の値を指定してください")
	}
	return nil
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "production")
}

func trimList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
