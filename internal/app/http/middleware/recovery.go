package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"nectar-house-api/config"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a 500 envelope. The panic message is only
// exposed in development mode.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v\n%s", r, debug.Stack())

				msg := "Internal server error"
				if config.IsDevelopment() {
					msg = fmt.Sprintf("%v", r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   msg,
				})
			}
		}()
		c.Next()
	}
}
