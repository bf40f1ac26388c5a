package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultAuthSecret      = "dev-secret-key"
	defaultBaseURL         = "localhost:8081"
	defaultDatabaseDSN     = "secretkeeper.db"
	defaultDatabaseName    = "secretkeeper"
	defaultTokenTTL        = 15 * time.Minute
	defaultShutdownTimeout = 10 * time.Second
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)

type Config struct {
	// Storage
	DatabaseDSN  string `env:"DATABASE_URI"`
	DatabaseName string `env:"DATABASE_NAME"` // только для MongoDB

	// Auth
	AuthSecret string        `env:"AUTH_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"`

	// HTTP server
	BaseURL         string        `env:"BASE_URL"`
	EnableHTTPS     bool          `env:"ENABLE_HTTPS"`
	TLSCertFile     string        `env:"TLS_CERT_FILE"`
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	LogJSON bool `env:"LOG_JSON"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env служат умолчаниями для флагов
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (mongodb://, postgres:// или путь к SQLite)")
	flag.StringVar(&cfg.DatabaseName, "db-name", cfg.DatabaseName, "имя базы MongoDB")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни access-токена")
	flag.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "адрес сервера host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "включить HTTPS")
	flag.StringVar(&cfg.TLSCertFile, "tls-cert", cfg.TLSCertFile, "путь к сертификату TLS")
	flag.StringVar(&cfg.TLSKeyFile, "tls-key", cfg.TLSKeyFile, "путь к ключу TLS")
	flag.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "время на завершение активных запросов")
	flag.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "писать логи в JSON")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = defaultDatabaseDSN
	}
	if c.DatabaseName == "" {
		c.DatabaseName = defaultDatabaseName
	}
	if c.AuthSecret == "" {
		c.AuthSecret = defaultAuthSecret
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = defaultTokenTTL
	}
	// BaseURL должен быть "address:port" без схемы и пути, иначе берём умолчание
	if !hostPortRe.MatchString(c.BaseURL) {
		c.BaseURL = defaultBaseURL
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if c.EnableHTTPS {
		if c.TLSCertFile == "" {
			c.TLSCertFile = "cert.pem"
		}
		if c.TLSKeyFile == "" {
			c.TLSKeyFile = "key.pem"
		}
	}
}
