package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-projects/internal/config"
)

// MustReadEnv reads the configuration from the environment and a .env
// file in the working directory, if present.
func MustReadEnv() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	globalLogger.Info().
		Str("env", cfg.Env).
		Str("store", cfg.Store).
		Bool("enforce_ownership", cfg.Auth.EnforceOwnership).
		Msg("read env")

	config.SetGlobal(cfg)
}

// MustConnectStore opens the configured store and applies migrations
// when asked to. It returns a func releasing the connections.
func MustConnectStore() func() {
	cfg := config.Global()
	if cfg.Store == config.StoreMemory {
		return func() {}
	}

	MustConnectPostgres()
	if cfg.Postgres.MigrateOnStart {
		MustMigratePostgres()
	}
	return DisconnectPostgres
}
