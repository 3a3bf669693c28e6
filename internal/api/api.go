package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/Cam96stanley/e-com-api/internal/validation" // Field-level validation messages

	"github.com/gin-gonic/gin" // Gin web framework
)

// respondMessage writes the standard {"message": ...} body
func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// respondBindingError converts a bind failure into a 400 response:
// a field → messages mapping when the error is field-level, otherwise
// a plain message body.
func respondBindingError(c *gin.Context, err error) {
	if fields, ok := validation.Messages(err); ok {
		c.JSON(http.StatusBadRequest, fields)
		return
	}
	respondMessage(c, http.StatusBadRequest, err.Error())
}

// parseID parses a numeric path parameter.
// Returns false for non-numeric values, which callers treat as not-found,
// matching a router that only accepts integer path segments.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}
