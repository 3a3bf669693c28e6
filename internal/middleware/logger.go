package middleware

import (
	"time" // For request duration

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs every handled request with method, path, status and duration
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start timer
		c.Next()            // Process request
		logrus.WithFields(logrus.Fields{
			"method":   c.Request.Method,           // HTTP method
			"path":     c.FullPath(),               // Route path
			"status":   c.Writer.Status(),          // Response status code
			"duration": time.Since(start).String(), // Handling duration
		}).Info("Request handled")
	}
}
