package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awaissaddiqui/Flask-Server/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// Validation errors surface their message with 400; anything else is a 500
// carrying the raw error text.
func MapUsecaseError(err error) ErrorResponse {
	var ucErr *usecase.Error
	if errors.As(err, &ucErr) && ucErr.Kind == usecase.KindValidation {
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    ucErr.Message,
		}
	}
	return ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    MsgUnexpectedError + err.Error(),
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP response.
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	if errResp.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	respondError(c, errResp.StatusCode, errResp.Message)
}

// HandleUnexpectedError sends a 500 for an error raised outside the usecase.
func HandleUnexpectedError(c *gin.Context, err error) {
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, MsgUnexpectedError+err.Error())
}

// HandleNoData sends the 400 used for an absent or empty request body.
func HandleNoData(c *gin.Context) {
	respondError(c, http.StatusBadRequest, MsgNoData)
}

// NotFound handles every undefined route and method
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, MsgNotFound)
}
