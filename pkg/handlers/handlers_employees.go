package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curiouspeterson/schedule-app-router/pkg/auth"
	"github.com/curiouspeterson/schedule-app-router/pkg/database"
)

// ListEmployees returns all employee profiles
func (h *Handler) ListEmployees(c *gin.Context) {
	var employees []database.Profile
	if err := h.DB.Where("role = ?", "employee").Order("full_name").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch employees"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// CreateEmployee lets a manager add an employee profile directly
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req struct {
		Email           string  `json:"email" binding:"required,email"`
		Password        string  `json:"password" binding:"required,min=8"`
		FullName        string  `json:"full_name" binding:"required"`
		Position        string  `json:"position" binding:"required"`
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

	employee := database.Profile{
		Email:           req.Email,
		FullName:        req.FullName,
		PasswordHash:    hash,
		Role:            "employee",
		Position:        req.Position,
		MaxHoursPerWeek: req.MaxHoursPerWeek,
	}

	if err := h.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

// UpdateEmployee updates an employee's position or weekly hour cap
func (h *Handler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		FullName        *string  `json:"full_name"`
		Position        *string  `json:"position"`
		MaxHoursPerWeek *float64 `json:"max_hours_per_week"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.MaxHoursPerWeek != nil {
		updates["max_hours_per_week"] = *req.MaxHoursPerWeek
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result := h.DB.Model(&database.Profile{}).Where("id = ? AND role = ?", id, "employee").Updates(updates)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated"})
}

// DeleteEmployee removes an employee profile and their availability
func (h *Handler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")

	result := h.DB.Where("id = ? AND role = ?", id, "employee").Delete(&database.Profile{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete employee"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}

	h.DB.Where("employee_id = ?", id).Delete(&database.AvailabilityPattern{})
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}
