package v1

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-projects/internal/services"
)

type Handler interface {
	HandleLogin(c *gin.Context)
	HandleSignup(c *gin.Context)
	HandleGetProfile(c *gin.Context)
	HandleLogout(c *gin.Context)
	HandleSessionMiddleware(c *gin.Context)
	HandleRateLimitMiddleware(c *gin.Context)

	HandleListProjects(c *gin.Context)
	HandleGetProject(c *gin.Context)
	HandleCreateProject(c *gin.Context)
	HandleDeleteProject(c *gin.Context)

	HandleAddTask(c *gin.Context)
	HandleUpdateTaskStatus(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

// RateLimiter is satisfied by *ratelimit.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// AuthObserver is satisfied by *metrics.Metrics.
type AuthObserver interface {
	ObserveAuth(event, outcome string)
}

type CookieOptions struct {
	MaxAge time.Duration
	Secure bool
}

type handlerImpl struct {
	logger   zerolog.Logger
	auth     services.AuthService
	projects services.ProjectService
	limiter  RateLimiter
	observer AuthObserver
	cookie   CookieOptions
}

// New builds the API handler. limiter and observer may be nil.
func New(
	logger zerolog.Logger,
	authService services.AuthService,
	projectService services.ProjectService,
	limiter RateLimiter,
	observer AuthObserver,
	cookie CookieOptions,
) Handler {
	return &handlerImpl{
		logger:   logger,
		auth:     authService,
		projects: projectService,
		limiter:  limiter,
		observer: observer,
		cookie:   cookie,
	}
}

func (h *handlerImpl) observeAuth(event, outcome string) {
	if h.observer != nil {
		h.observer.ObserveAuth(event, outcome)
	}
}

// Register mounts the API routes on router. With requireSession every
// project route runs behind the session middleware and operates on
// behalf of the session's user only.
func Register(router gin.IRouter, h Handler, requireSession bool) {
	router.POST("/login", h.HandleRateLimitMiddleware, h.HandleLogin)
	router.POST("/signup", h.HandleRateLimitMiddleware, h.HandleSignup)
	router.GET("/getProfile", h.HandleGetProfile)
	router.POST("/logout", h.HandleLogout)

	usersRouter := router.Group("/users")
	if requireSession {
		usersRouter.Use(h.HandleSessionMiddleware)
	}
	usersRouter.GET("/projects/:userId", h.HandleListProjects)
	usersRouter.GET("/project/:projectId", h.HandleGetProject)
	usersRouter.POST("/createProject", h.HandleCreateProject)
	usersRouter.DELETE("/deleteProject/:projectId", h.HandleDeleteProject)
	usersRouter.POST("/project/:projectId/task", h.HandleAddTask)
	usersRouter.PUT("/project/:projectId/task/:taskId", h.HandleUpdateTaskStatus)
	usersRouter.DELETE("/project/:projectId/task/:taskId", h.HandleDeleteTask)
}
