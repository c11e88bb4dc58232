// Package response writes the API's error body. Success bodies are endpoint
// specific and written by the handlers directly; failures all share the
// flat {"msg": ...} shape.
package response

import "github.com/gin-gonic/gin"

// Error writes the shared failure body. Details, when present, is a
// field→message map produced by the validation package.
func Error(c *gin.Context, status int, msg string, details any) {
	body := gin.H{"msg": msg}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortError writes the failure body and aborts the handler chain.
// For use inside middleware.
func AbortError(c *gin.Context, status int, msg string, details any) {
	body := gin.H{"msg": msg}
	if details != nil {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}
