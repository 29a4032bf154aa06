package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome answers a minimal liveness probe.
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "spendtrack backend"})
}
