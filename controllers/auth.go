// controllers/auth.go
package controllers

import (
	"net/http"
	"strings"

	"bladecrown-backend/config"
	"bladecrown-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	cfg config.App
}

func NewAuthController(cfg config.App) *AuthController {
	return &AuthController{cfg: cfg}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login issues the admin-session token for the dashboard. A single admin
// account, configured through the environment.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if ac.cfg.AdminEmail == "" || ac.cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email != strings.ToLower(ac.cfg.AdminEmail) ||
		!utils.CheckPasswordHash(input.Password, ac.cfg.AdminPasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"email": email},
	})
}

// Me confirms a valid admin session.
func (ac *AuthController) Me(c *gin.Context) {
	email, exists := c.Get("adminEmail")
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin email not found in context"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{"email": email}})
}
