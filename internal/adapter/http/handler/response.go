package handler

import (
	"github.com/gin-gonic/gin"
)

// Fixed error messages returned to clients
const (
	MsgNoData          = "No data provided in the request"
	MsgNotFound        = "Not Found"
	MsgUnexpectedError = "An unexpected error occurred: "
)

// ErrorBody is the JSON body of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
