package response

import "github.com/gin-gonic/gin"

// Envelope keys used by the cafe API.
const (
	KeyResponse = "response"
	KeyError    = "error"
	// KeySearchError is the capitalised key /search has always used.
	KeySearchError = "Error"
)

// Error kinds used as the inner key of an error envelope.
const (
	KindNotFound   = "Not Found"
	KindForbidden  = "Forbidden"
	KindConflict   = "Conflict"
	KindBadRequest = "Bad Request"
	KindInternal   = "Internal Server Error"
)

// Nested writes {outer: {kind: message}}.
func Nested(c *gin.Context, statusCode int, outer, kind, message string) {
	c.JSON(statusCode, gin.H{
		outer: gin.H{kind: message},
	})
}

func Success(c *gin.Context, statusCode int, message string) {
	Nested(c, statusCode, KeyResponse, "success", message)
}

func Error(c *gin.Context, statusCode int, kind, message string) {
	Nested(c, statusCode, KeyError, kind, message)
}

// AbortWithError writes an error envelope and stops the handler chain.
func AbortWithError(c *gin.Context, statusCode int, kind, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		KeyError: gin.H{kind: message},
	})
}
