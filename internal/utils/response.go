package utils

import (
	"github.com/gin-gonic/gin"
)

// Error writes a JSON error body. Every handler terminates every code
// path through one of these helpers or a success write; a handler that
// returns without responding is a defect.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest writes a 400 error.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(c, 400, message)
}

// NotFound writes a 404 error.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found"
	}
	Error(c, 404, message)
}

// InternalServerError writes a 500 error.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Server error"
	}
	Error(c, 500, message)
}
