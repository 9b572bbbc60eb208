package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeapi/internal/pkg/response"
)

const apiKeyParam = "api-key"

const msgForbidden = "Sorry, that's not allowed. Make sure you have the correct api_key."

// APIKeyAuth allows the request only when the api-key query parameter equals expected.
func APIKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := c.GetQuery(apiKeyParam)
		if !ok || expected == "" || key != expected {
			reason := "invalid_key"
			if !ok {
				reason = "missing_key"
			}
			log.Printf("api_key_auth status=%d method=%s path=%s request_id=%s reason=%s",
				http.StatusForbidden, c.Request.Method, c.Request.URL.Path, requestID(c), reason)
			response.AbortWithError(c, http.StatusForbidden, response.KindForbidden, msgForbidden)
			return
		}

		c.Next()
	}
}
