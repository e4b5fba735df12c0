package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dballard10/Planner-Calendar-Goal-App/internal/services"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errMissingTaskID      = errors.New("task id required")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// abortWithServiceError maps task service errors to responses.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDate):
		abort(c, newBadRequestError(services.ErrInvalidDate.Error()))
	case errors.Is(err, services.ErrNoFieldsToUpdate):
		abort(c, newBadRequestError(services.ErrNoFieldsToUpdate.Error()))
	case errors.Is(err, services.ErrRequiredFieldNull):
		abort(c, newBadRequestError(err.Error()))
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
	case errors.Is(err, services.ErrTaskNotCreated):
		abort(c, newAPIError(http.StatusInternalServerError, services.ErrTaskNotCreated.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
