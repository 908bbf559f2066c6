package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Email    EmailConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name      string
	Env       string
	Host      string
	HTTPPort  string
	HTTPSPort string
	CertFile  string
	KeyFile   string
	Version   string
	MenuPath  string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	HashingSecret   string
	TokenTTLMinutes int
}

// PaymentConfig holds the card-charge provider settings.
type PaymentConfig struct {
	BaseURL        string
	SecretKey      string
	Currency       string
	TimeoutSeconds int
}

// EmailConfig holds the transactional mail provider settings.
type EmailConfig struct {
	BaseURL        string
	Domain         string
	APIKey         string
	From           string
	TimeoutSeconds int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:      getEnv("APP_NAME", "food-order-service"),
			Env:       getEnv("APP_ENV", "development"),
			Host:      getEnv("APP_HOST", "0.0.0.0"),
			HTTPPort:  getEnv("APP_HTTP_PORT", "3000"),
			HTTPSPort: getEnv("APP_HTTPS_PORT", ""),
			CertFile:  os.Getenv("APP_TLS_CERT_FILE"),
			KeyFile:   os.Getenv("APP_TLS_KEY_FILE"),
			Version:   getEnv("APP_VERSION", "dev"),
			MenuPath:  os.Getenv("MENU_PATH"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			HashingSecret:   getEnv("AUTH_HASHING_SECRET", "dev-secret"),
			TokenTTLMinutes: getEnvAsInt("AUTH_TOKEN_TTL_MINUTES", 60),
		},
		Payment: PaymentConfig{
			BaseURL:        getEnv("PAYMENT_BASE_URL", "https://api.stripe.com"),
			SecretKey:      os.Getenv("PAYMENT_SECRET_KEY"),
			Currency:       getEnv("PAYMENT_CURRENCY", "kes"),
			TimeoutSeconds: getEnvAsInt("PAYMENT_TIMEOUT_SECONDS", 10),
		},
		Email: EmailConfig{
			BaseURL:        getEnv("EMAIL_BASE_URL", "https://api.mailgun.net"),
			Domain:         os.Getenv("EMAIL_DOMAIN"),
			APIKey:         os.Getenv("EMAIL_API_KEY"),
			From:           getEnv("EMAIL_FROM", "Noritas FoodShack <info@noritafoods.com>"),
			TimeoutSeconds: getEnvAsInt("EMAIL_TIMEOUT_SECONDS", 10),
		},
	}

	return cfg, nil
}

// HTTPAddr returns the plain HTTP bind address.
func (a AppConfig) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.HTTPPort)
}

// HTTPSAddr returns the TLS bind address, empty when TLS is not configured.
func (a AppConfig) HTTPSAddr() string {
	if a.HTTPSPort == "" || a.CertFile == "" || a.KeyFile == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s", a.Host, a.HTTPSPort)
}

// TokenTTL returns the session token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// Timeout returns the bounded timeout for charge requests.
func (p PaymentConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Timeout returns the bounded timeout for mail requests.
func (e EmailConfig) Timeout() time.Duration {
	if e.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(e.TimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
