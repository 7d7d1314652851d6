package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, buckets)
// -----------------------------------------------------------------------------

const ModeProduction = "production"

type Config struct {
	App       AppConfig
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Storage   StorageConfig
	Payment   PaymentConfig
	Mail      MailConfig
	Notify    NotifyConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Mode            string `envconfig:"APP_MODE" default:"development"`
	TimeZone        string `envconfig:"APP_TIMEZONE" default:"Asia/Dhaka"`
	ClientOriginURL string `envconfig:"CLIENT_ORIGIN_URL" default:"http://localhost:3000"`
	APIURL          string `envconfig:"API_URL" default:"http://localhost:8000"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Asia/Dhaka"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Dhaka"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"21600"` // 6*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"60m"`
}

type AuthConfig struct {
	APIKey string `envconfig:"API_KEY" required:"true"`
}

// S3-compatible object storage (Supabase storage exposes this protocol).
type StorageConfig struct {
	Endpoint        string        `envconfig:"STORAGE_ENDPOINT" default:""`
	Region          string        `envconfig:"STORAGE_REGION" default:"ap-southeast-1"`
	AccessKeyID     string        `envconfig:"STORAGE_ACCESS_KEY_ID" default:""`
	SecretAccessKey string        `envconfig:"STORAGE_SECRET_ACCESS_KEY" default:""`
	MenuBucket      string        `envconfig:"STORAGE_MENU_BUCKET" default:"menu-images"`
	VendorBucket    string        `envconfig:"STORAGE_VENDOR_BUCKET" default:"vendor-images"`
	SignedURLTTL    time.Duration `envconfig:"STORAGE_SIGNED_URL_TTL" default:"1h"`
	MaxUploadBytes  int64         `envconfig:"STORAGE_MAX_UPLOAD_BYTES" default:"5242880"`
}

type PaymentConfig struct {
	StoreID   string        `envconfig:"SSLCOMMERZ_STORE_ID" default:""`
	StorePass string        `envconfig:"SSLCOMMERZ_STORE_PASS" default:""`
	Sandbox   bool          `envconfig:"SSLCOMMERZ_SANDBOX" default:"true"`
	Currency  string        `envconfig:"PAYMENT_CURRENCY" default:"BDT"`
	Timeout   time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
}

type MailConfig struct {
	APIKey  string        `envconfig:"RESEND_API_KEY" default:""`
	BaseURL string        `envconfig:"RESEND_BASE_URL" default:"https://api.resend.com"`
	From    string        `envconfig:"MAIL_FROM" default:"TiffinTime <onboarding@resend.dev>"`
	Timeout time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type NotifyConfig struct {
	QueueSize    int           `envconfig:"NOTIFY_QUEUE_SIZE" default:"64"`
	DrainTimeout time.Duration `envconfig:"NOTIFY_DRAIN_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	AuthRPS   float64 `envconfig:"RATE_LIMIT_AUTH_RPS" default:"5"`
	AuthBurst int     `envconfig:"RATE_LIMIT_AUTH_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c AppConfig) IsProduction() bool {
	return c.Mode == ModeProduction
}

// Location falls back to UTC when the zone database lacks the configured name.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		slog.Warn("unknown APP_TIMEZONE, falling back to UTC", "timezone", c.TimeZone, "error", err.Error())
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for the migrate command.
func LoadDBConfig() (DBConfig, error) {
	_ = godotenv.Load()

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Mode:            "test",
			TimeZone:        "Asia/Dhaka",
			ClientOriginURL: "http://localhost:3000",
			APIURL:          "http://localhost:8889",
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Dhaka",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Dhaka",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 21600,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "60m",
		},
		Auth: AuthConfig{
			APIKey: "test-api-key",
		},
		Storage: StorageConfig{
			Region:         "ap-southeast-1",
			MenuBucket:     "menu-images",
			VendorBucket:   "vendor-images",
			SignedURLTTL:   time.Hour,
			MaxUploadBytes: 5 << 20,
		},
		Payment: PaymentConfig{
			Sandbox:  true,
			Currency: "BDT",
			Timeout:  5 * time.Second,
		},
		Mail: MailConfig{
			BaseURL: "http://localhost:0",
			From:    "TiffinTime <test@example.com>",
			Timeout: time.Second,
		},
		Notify: NotifyConfig{
			QueueSize:    8,
			DrainTimeout: time.Second,
		},
		RateLimit: RateLimitConfig{
			AuthRPS:   1000,
			AuthBurst: 1000,
		},
	}
}
