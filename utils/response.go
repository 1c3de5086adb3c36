// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the API's uniform failure body and aborts the
// handler chain.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
