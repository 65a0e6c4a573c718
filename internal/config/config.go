package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env       string `env:"ENV" env-required:"true"`
	Store     string `env:"STORE" env-default:"postgres"`
	HTTP      HTTPConfig
	Postgres  PostgresConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Password  PasswordConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Auth      AuthConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"5000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-default:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE" env-default:"projects"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
	MigrateOnStart bool          `env:"POSTGRES_MIGRATE_ON_START" env-default:"true"`
}

type JWTConfig struct {
	Issuer     string        `env:"JWT_ISSUER" env-default:"go-projects"`
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	TTL        time.Duration `env:"JWT_TTL" env-default:"72h"`
}

type CookieConfig struct {
	MaxAge time.Duration `env:"COOKIE_MAX_AGE" env-default:"72h"`
	Secure bool          `env:"COOKIE_SECURE" env-default:"false"`
}

type PasswordConfig struct {
	Algorithm  string `env:"PASSWORD_HASH_ALGORITHM" env-default:"bcrypt"`
	BcryptCost int    `env:"PASSWORD_BCRYPT_COST" env-default:"10"`
}

type RedisConfig struct {
	// Addr left empty disables rate limiting.
	Addr        string        `env:"REDIS_ADDR"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" env-default:"0"`
	PingTimeout time.Duration `env:"REDIS_PING_TIMEOUT" env-default:"5s"`
}

type RateLimitConfig struct {
	AuthAttempts int           `env:"RATE_LIMIT_AUTH_ATTEMPTS" env-default:"10"`
	AuthWindow   time.Duration `env:"RATE_LIMIT_AUTH_WINDOW" env-default:"1m"`
}

type AuthConfig struct {
	// EnforceOwnership requires a session on project routes and
	// restricts every project operation to the session's user.
	EnforceOwnership bool `env:"AUTH_ENFORCE_OWNERSHIP" env-default:"false"`
}
