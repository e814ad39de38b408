package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/curiouspeterson/schedule-app-router/pkg/auth"
	"github.com/curiouspeterson/schedule-app-router/pkg/database"
)

// Signup registers a new employee profile
func (h *Handler) Signup(c *gin.Context) {
	var req struct {
		Email           string  `json:"email" binding:"required,email"`
		Password        string  `json:"password" binding:"required,min=8"`
		FullName        string  `json:"full_name" binding:"required"`
		Position        string  `json:"position"`
		MaxHoursPerWeek float64 `json:"max_hours_per_week"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password"})
		return
	}

	profile := database.Profile{
		Email:           req.Email,
		FullName:        req.FullName,
		PasswordHash:    hash,
		Role:            "employee",
		Position:        req.Position,
		MaxHoursPerWeek: req.MaxHoursPerWeek,
	}

	if err := h.DB.Create(&profile).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	h.Log.Info("profile created", zap.String("email", profile.Email))

	token, err := auth.CreateToken(&profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"profile":      profile,
	})
}

// Login authenticates a profile and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.Profile
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
