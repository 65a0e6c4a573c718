package v1

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-projects/internal/services"
)

const userIDCtxKey = "user_id"

// HandleSessionMiddleware rejects requests without a valid session cookie
// and scopes the request context to the session's user.
func (h *handlerImpl) HandleSessionMiddleware(c *gin.Context) {
	profile, apiErr, ok := h.profileFromCookie(c)
	if !ok {
		abort(c, apiErr)
		return
	}

	c.Set(userIDCtxKey, profile.UserID)
	c.Request = c.Request.WithContext(services.WithActor(c.Request.Context(), profile.UserID))
	c.Next()
}

// HandleRateLimitMiddleware limits attempts per route and client ip.
// Limiter failures let the request through.
func (h *handlerImpl) HandleRateLimitMiddleware(c *gin.Context) {
	if h.limiter == nil {
		c.Next()
		return
	}

	key := c.FullPath() + ":" + c.ClientIP()
	allowed, retryAfter, err := h.limiter.Allow(c.Request.Context(), key)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to check rate limit")
		c.Next()
		return
	}
	if !allowed {
		h.logger.Warn().
			Str("key", key).
			Dur("retry_after", retryAfter).
			Msg("rate limit exceeded")
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		abort(c, newTooManyRequestsError())
		return
	}
	c.Next()
}

// RequestLogger writes one access log line per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		switch {
		case status >= 500:
			event = logger.Error()
		case status >= 400:
			event = logger.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("handled request")
	}
}
