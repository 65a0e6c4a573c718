package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-projects/internal/services"
)

const sessionCookie = "jwt"

const msgInvalidRequestBody = "Invalid request body"

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required,max=255"`
	Password   string `json:"password" binding:"required,max=72"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Token    string `json:"token"`
	Created  bool   `json:"created"`
	Username string `json:"username"`
	UserID   string `json:"userid"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError(msgInvalidRequestBody))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), services.LoginParams{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to login")
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			h.observeAuth("login", "user_not_found")
			abort(c, newUserNotFoundError())
		case errors.Is(err, services.ErrIncorrectPassword):
			h.observeAuth("login", "incorrect_password")
			abort(c, newIncorrectPasswordError())
		default:
			h.observeAuth("login", "error")
			abort(c, newInternalError())
		}
		return
	}

	h.setSessionCookie(c, result.Token)
	h.observeAuth("login", "success")

	c.JSON(http.StatusOK, loginResponse{
		Status:   "success",
		Token:    result.Token,
		Created:  true,
		Username: result.Username,
		UserID:   result.UserID,
	})
}

type signupRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
	Country  string `json:"country" binding:"required,max=255"`
}

type signupResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

func (h *handlerImpl) HandleSignup(c *gin.Context) {
	var req signupRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newValidationError(msgInvalidRequestBody))
		return
	}
	h.logger.Info().
		Str("email", req.Email).
		Msg("signup request")

	result, err := h.auth.Signup(c.Request.Context(), services.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Country:  req.Country,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to sign up user")
		switch {
		case errors.Is(err, services.ErrUserExists):
			h.observeAuth("signup", "user_exists")
			abort(c, newUserExistsError())
		default:
			h.observeAuth("signup", "error")
			abort(c, newInternalError())
		}
		return
	}

	h.observeAuth("signup", "success")
	c.JSON(http.StatusCreated, signupResponse{
		Status:   "success",
		Message:  "User created successfully",
		UserID:   result.UserID,
		Username: result.Username,
	})
}

type profileResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserID   string `json:"userid"`
}

func (h *handlerImpl) HandleGetProfile(c *gin.Context) {
	profile, apiErr, ok := h.profileFromCookie(c)
	if !ok {
		abort(c, apiErr)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		Username: profile.Username,
		Role:     profile.Role,
		UserID:   profile.UserID,
	})
}

func (h *handlerImpl) HandleLogout(c *gin.Context) {
	h.clearSessionCookie(c)
	h.observeAuth("logout", "success")

	h.logger.Info().Msg("logged out")
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *handlerImpl) profileFromCookie(c *gin.Context) (*services.Profile, apiError, bool) {
	token, err := c.Cookie(sessionCookie)
	if err != nil {
		token = ""
	}

	profile, err := h.auth.GetProfile(token)
	if err != nil {
		if errors.Is(err, services.ErrNoToken) {
			h.logger.Debug().Msg("session cookie not found")
			return nil, newUnauthorizedError("No token found"), false
		}

		h.logger.Error().
			Err(err).
			Msg("failed to get profile")
		if errors.Is(err, services.ErrInvalidToken) {
			return nil, newUnauthorizedError("Invalid token"), false
		}
		return nil, newInternalError(), false
	}
	return profile, apiError{}, true
}

func (h *handlerImpl) setSessionCookie(c *gin.Context, token string) {
	const httpOnly = true
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, token, int(h.cookie.MaxAge.Seconds()),
		"/", "", h.cookie.Secure, httpOnly)
}

func (h *handlerImpl) clearSessionCookie(c *gin.Context) {
	const httpOnly = true
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookie, "", -1,
		"/", "", h.cookie.Secure, httpOnly)
}
