package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the Simple Blog API!"

// GET / 認証不要の案内文。
func Welcome(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

// GET /healthz
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
