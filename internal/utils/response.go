package utils

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform API envelope.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Success bool   `json:"success"`
}

// Success returns a 200 response.
func Success(c *gin.Context, data any) {
	c.JSON(200, Response{
		Code:    200,
		Message: "success",
		Data:    data,
		Success: true,
	})
}

// Created returns a 201 response with a custom message.
func Created(c *gin.Context, message string, data any) {
	c.JSON(201, Response{
		Code:    201,
		Message: message,
		Data:    data,
		Success: true,
	})
}

// Error returns an error response.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    nil,
		Success: false,
	})
}

// ErrorWithData returns an error response carrying detail, e.g.
// field-level validation errors.
func ErrorWithData(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Data:    data,
		Success: false,
	})
}

// BadRequest returns a 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized returns a 401 error.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "not signed in"
	}
	Error(c, 401, message)
}

// BadGateway returns a 502 error with a generic message so upstream
// detail never reaches the browser.
func BadGateway(c *gin.Context, message string) {
	if message == "" {
		message = "upstream provider unavailable"
	}
	Error(c, 502, message)
}

// InternalServerError returns a 500 error.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	Error(c, 500, message)
}
