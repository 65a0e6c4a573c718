package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	codeValidation      = "ValidationError"
	codeUserExists      = "UserExists"
	codeUnauthorized    = "Unauthorized"
	codeUserNotFound    = "UserNotFound"
	codeWrongPassword   = "IncorrectPassword"
	codeForbidden       = "Forbidden"
	codeNotFound        = "NotFound"
	codeTooManyRequests = "TooManyRequests"
	codeInternal        = "InternalError"
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func newAPIError(status int, code, message string) apiError {
	return apiError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Status, err)
}

func newInternalError() apiError {
	return newAPIError(http.StatusInternalServerError, codeInternal, http.StatusText(http.StatusInternalServerError))
}

func newValidationError(message string) apiError {
	return newAPIError(http.StatusBadRequest, codeValidation, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, codeUnauthorized, message)
}

func newUserNotFoundError() apiError {
	return newAPIError(http.StatusUnauthorized, codeUserNotFound, "User not found")
}

func newIncorrectPasswordError() apiError {
	return newAPIError(http.StatusUnauthorized, codeWrongPassword, "Incorrect password")
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, codeNotFound, message)
}

func newForbiddenError(message string) apiError {
	return newAPIError(http.StatusForbidden, codeForbidden, message)
}

// Duplicate signups are a 400, not a 409.
func newUserExistsError() apiError {
	return newAPIError(http.StatusBadRequest, codeUserExists, "A user with that name or email already exists")
}

func newTooManyRequestsError() apiError {
	return newAPIError(http.StatusTooManyRequests, codeTooManyRequests, "Too many attempts, try again later")
}
