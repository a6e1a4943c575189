package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// fail writes the uniform error body used by every endpoint. All service
// failures map to 400 regardless of kind.
func fail(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func failBind(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
}
