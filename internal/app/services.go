package app

import (
	"github.com/adanyl0v/go-projects/internal/config"
	"github.com/adanyl0v/go-projects/internal/delivery/http/v1"
	"github.com/adanyl0v/go-projects/internal/metrics"
	"github.com/adanyl0v/go-projects/internal/ratelimit"
	"github.com/adanyl0v/go-projects/internal/repositories/memory"
	"github.com/adanyl0v/go-projects/internal/repositories/projects"
	"github.com/adanyl0v/go-projects/internal/repositories/users"
	"github.com/adanyl0v/go-projects/internal/services"
)

func mustNewV1Handler(cfg *config.Config, m *metrics.Metrics) v1.Handler {
	var (
		userRepo    users.Repository
		projectRepo projects.Repository
	)
	switch cfg.Store {
	case config.StoreMemory:
		memUsers := memory.NewUserRepository()
		userRepo = memUsers
		projectRepo = memory.NewProjectRepository(memUsers)
		globalLogger.Warn().Msg("using in-memory store, data is lost on restart")
	default:
		userRepo = users.NewPostgresRepository(globalPostgresPool)
		projectRepo = projects.NewPostgresRepository(globalPostgresPool)
	}

	hasher, err := services.NewPasswordHasher(cfg.Password.Algorithm, cfg.Password.BcryptCost)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to create password hasher")
		panic(err)
	}

	tokens := services.NewTokenManager(cfg.JWT.Issuer, cfg.JWT.SigningKey, cfg.JWT.TTL)

	var limiter v1.RateLimiter
	if globalRedisClient != nil {
		limiter = ratelimit.NewRedisLimiter(
			globalRedisClient,
			"",
			cfg.RateLimit.AuthAttempts,
			cfg.RateLimit.AuthWindow,
		)
	}

	return v1.New(
		globalLogger,
		services.NewAuthService(globalLogger, userRepo, hasher, tokens),
		services.NewProjectService(globalLogger, projectRepo),
		limiter,
		m,
		v1.CookieOptions{
			MaxAge: cfg.Cookie.MaxAge,
			Secure: cfg.Cookie.Secure || cfg.Env == config.EnvProd,
		},
	)
}
