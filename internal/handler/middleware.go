package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Origin, X-Requested-With, Content-Type, Accept, Authorization"
	corsMaxAge       = 24 * 60 * 60
)

// CORS stamps permissive cross-origin headers on every response and answers
// preflight requests with 204.
func CORS(method string) gin.HandlerFunc {
	allowMethods := method + ", " + http.MethodOptions
	maxAge := strconv.Itoa(corsMaxAge)

	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		header.Set("Access-Control-Allow-Methods", allowMethods)
		header.Set("Access-Control-Max-Age", maxAge)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AllowMethod rejects every method other than method with 405.
func AllowMethod(method string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != method {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, GetMethodError(errMethodNotAllowed))
			return
		}
		c.Next()
	}
}
