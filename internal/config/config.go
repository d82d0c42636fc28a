package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database and redis
// connections, email delivery, authentication, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"scrumsan" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis contains the connection settings for the realtime event bridge
	Redis struct {
		// Addr is the redis server address
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication, empty when auth is disabled
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB is the redis logical database number
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
	} `yaml:"redis"`

	// Email contains SMTP relay settings for outbound invitation mail.
	// When Host is empty, mail delivery falls back to logging the invite link.
	Email struct {
		// Host is the SMTP relay hostname
		Host string `env:"EMAIL_SMTP_HOST" env-default:"" yaml:"host"`
		// Port is the SMTP relay port
		Port int `env:"EMAIL_SMTP_PORT" env-default:"587" yaml:"port"`
		// Username for SMTP authentication
		Username string `env:"EMAIL_SMTP_USERNAME" env-default:"" yaml:"username"`
		// Password for SMTP authentication
		Password string `env:"EMAIL_SMTP_PASSWORD" env-default:"" yaml:"password"`
		// From is the sender address on outbound mail
		From string `env:"EMAIL_FROM" env-default:"noreply@scrumsan.local" yaml:"from"`
		// FromName is the display name on outbound mail
		FromName string `env:"EMAIL_FROM_NAME" env-default:"ScrumSan" yaml:"fromName"`
		// BaseURL is the public URL invite links are built against
		BaseURL string `env:"EMAIL_BASE_URL" env-default:"http://localhost:3000" yaml:"baseURL"`
	} `yaml:"email"`

	// JWT contains the RS256 key pair used for authenticating API requests
	JWT struct {
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM-encoded RSA private key used by the jwt subcommand
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Invites controls invitation issuance
	Invites struct {
		// TTL is how long an invitation stays acceptable
		TTL time.Duration `env:"INVITES_TTL" env-default:"168h" yaml:"ttl"`
		// MaxAttempts bounds email delivery retries in the background worker
		MaxAttempts int `env:"INVITES_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"invites"`

	// RateLimit bounds per-client request rates on the API
	RateLimit struct {
		// RequestsPerMinute is the sustained per-client budget; 0 disables limiting
		RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"120" yaml:"requestsPerMinute"`
	} `yaml:"rateLimit"`

	// Realtime controls the change-event bridge
	Realtime struct {
		// DebounceWindow is how long bursts of writes are coalesced before one
		// event is published per channel and entity
		DebounceWindow time.Duration `env:"REALTIME_DEBOUNCE_WINDOW" env-default:"100ms" yaml:"debounceWindow"`
	} `yaml:"realtime"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
