package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Quota    QuotaConfig
	Lease    LeaseConfig
	Compute  ComputeConfig
	Notifier NotifierConfig
	Worker   WorkerConfig
	Janitor  JanitorConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Format     string `envconfig:"LOG_FORMAT" default:"json"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// JWTConfig validates bearer tokens minted by the identity provider; the service never issues them.
type JWTConfig struct {
	Secret    string `envconfig:"JWT_SECRET" required:"true"`
	Issuer    string `envconfig:"JWT_ISSUER"`
	AdminRole string `envconfig:"JWT_ADMIN_ROLE" default:"admin"`
}

// Non-positive limits disable the corresponding check.
type QuotaConfig struct {
	MaxReservations int `envconfig:"QUOTA_MAX_RESERVATIONS" default:"2"`
	MaxHours        int `envconfig:"QUOTA_MAX_HOURS" default:"720"`
}

type LeaseConfig struct {
	Endpoint  string        `envconfig:"LEASE_ENDPOINT" default:"http://localhost:1234/v1"`
	Token     string        `envconfig:"LEASE_TOKEN"`
	Timeout   time.Duration `envconfig:"LEASE_TIMEOUT" default:"30s"`
	RateLimit float64       `envconfig:"LEASE_RATE_LIMIT" default:"10"`
	RateBurst int           `envconfig:"LEASE_RATE_BURST" default:"5"`
}

type ComputeConfig struct {
	Endpoint string        `envconfig:"COMPUTE_ENDPOINT"`
	Token    string        `envconfig:"COMPUTE_TOKEN"`
	Timeout  time.Duration `envconfig:"COMPUTE_TIMEOUT" default:"15s"`
}

type NotifierConfig struct {
	Backend          string `envconfig:"NOTIFIER_BACKEND" default:"logging"`
	TicketingURL     string `envconfig:"NOTIFIER_TICKETING_URL"`
	TicketingToken   string `envconfig:"NOTIFIER_TICKETING_TOKEN"`
	MessagingChannel string `envconfig:"NOTIFIER_MESSAGING_CHANNEL" default:"reservation.user"`
	AuditStream      string `envconfig:"NOTIFIER_AUDIT_STREAM" default:"reservation.audit"`
}

type WorkerConfig struct {
	Concurrency  int           `envconfig:"WORKER_CONCURRENCY" default:"4"`
	PollInterval time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"2s"`
	ClaimTTL     time.Duration `envconfig:"WORKER_CLAIM_TTL" default:"5m"`
	MaxAttempts  int           `envconfig:"WORKER_MAX_ATTEMPTS" default:"5"`
	EventStream  string        `envconfig:"WORKER_EVENT_STREAM" default:"lease.events"`
	EventGroup   string        `envconfig:"WORKER_EVENT_GROUP" default:"reservation"`
	Consumer     string        `envconfig:"WORKER_CONSUMER" default:"worker-1"`
	MetricsPort  string        `envconfig:"WORKER_METRICS_PORT" default:"9090"`
}

type JanitorConfig struct {
	Interval  time.Duration `envconfig:"JANITOR_INTERVAL" default:"1h"`
	Retention time.Duration `envconfig:"JANITOR_RETENTION" default:"168h"`
	LockTTL   time.Duration `envconfig:"JANITOR_LOCK_TTL" default:"30m"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads an optional dotenv file (ENV_FILE, default .env) before
// processing the environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
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
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Redis: RedisConfig{Addr: "localhost:16379"},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			Format:     "text",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT:   JWTConfig{Secret: "test-secret", AdminRole: "admin"},
		Quota: QuotaConfig{MaxReservations: 2, MaxHours: 720},
		Notifier: NotifierConfig{
			Backend:          "logging",
			MessagingChannel: "reservation.user",
			AuditStream:      "reservation.audit",
		},
		Worker: WorkerConfig{
			Concurrency:  1,
			PollInterval: 10 * time.Millisecond,
			ClaimTTL:     time.Minute,
			MaxAttempts:  3,
			EventStream:  "lease.events",
			EventGroup:   "reservation",
			Consumer:     "test",
			MetricsPort:  "19090",
		},
		Janitor: JanitorConfig{
			Interval:  time.Hour,
			Retention: 7 * 24 * time.Hour,
			LockTTL:   time.Minute,
		},
	}
}
