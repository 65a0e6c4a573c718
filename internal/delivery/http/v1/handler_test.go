package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adanyl0v/go-projects/internal/repositories/memory"
	"github.com/adanyl0v/go-projects/internal/services"
)

type testServer struct {
	router *gin.Engine
	tokens *services.TokenManager
}

type serverOption func(*serverOptions)

type serverOptions struct {
	limiter        RateLimiter
	requireSession bool
}

func withLimiter(l RateLimiter) serverOption {
	return func(o *serverOptions) { o.limiter = l }
}

func withRequiredSession() serverOption {
	return func(o *serverOptions) { o.requireSession = true }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}

	hasher, err := services.NewPasswordHasher(services.HashAlgorithmBcrypt, bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository()
	projectRepo := memory.NewProjectRepository(userRepo)
	tokens := services.NewTokenManager("test", "test-signing-key", 72*time.Hour)

	h := New(
		zerolog.Nop(),
		services.NewAuthService(zerolog.Nop(), userRepo, hasher, tokens),
		services.NewProjectService(zerolog.Nop(), projectRepo),
		o.limiter,
		nil,
		CookieOptions{MaxAge: 72 * time.Hour},
	)

	router := gin.New()
	Register(router.Group("/api"), h, o.requireSession)
	return &testServer{router: router, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a user and returns its id with the session cookie.
func (s *testServer) signupAndLogin(t *testing.T, name string) (string, *http.Cookie) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/signup", gin.H{
		"name":     name,
		"email":    name + "@example.com",
		"password": "Str0ng!pass",
		"country":  "Norway",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/login", gin.H{
		"identifier": name + "@example.com",
		"password":   "Str0ng!pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp loginResponse
	decode(t, w, &resp)
	return resp.UserID, sessionCookieFrom(t, w)
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie {
			return cookie
		}
	}
	t.Fatalf("no %q cookie in response", sessionCookie)
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

type stubLimiter struct {
	allowed int
	calls   int
	err     error
}

func (l *stubLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	l.calls++
	if l.err != nil {
		return false, 0, l.err
	}
	return l.calls <= l.allowed, 1500 * time.Millisecond, nil
}
