package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curiouspeterson/schedule-app-router/pkg/database"
	"github.com/curiouspeterson/schedule-app-router/pkg/scheduler"
)

// ListShifts returns all shift definitions
func (h *Handler) ListShifts(c *gin.Context) {
	var shifts []database.Shift
	if err := h.DB.Order("start_time").Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch shifts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shifts": shifts})
}

// CreateShift adds a shift definition
func (h *Handler) CreateShift(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		Role      string `json:"role" binding:"required"`
		StartTime string `json:"start_time" binding:"required,timeofday"`
		EndTime   string `json:"end_time" binding:"required,timeofday"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, _ := scheduler.ParseTimeOfDay(req.StartTime)
	end, _ := scheduler.ParseTimeOfDay(req.EndTime)
	if end <= start {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time"})
		return
	}

	shift := database.Shift{
		Name:      req.Name,
		Role:      req.Role,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.DB.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create shift"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shift": shift})
}

// DeleteShift removes a shift definition and its coverage requirements
func (h *Handler) DeleteShift(c *gin.Context) {
	id := c.Param("id")

	result := h.DB.Delete(&database.Shift{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete shift"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}

	h.DB.Where("shift_id = ?", id).Delete(&database.CoverageRequirement{})
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}

// ListCoverage returns coverage requirements, optionally filtered by date
// range (?from=2006-01-02&to=2006-01-02)
func (h *Handler) ListCoverage(c *gin.Context) {
	q := h.DB.Order("date, shift_id")
	if from := c.Query("from"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		q = q.Where("date <= ?", to)
	}

	var coverage []database.CoverageRequirement
	if err := q.Find(&coverage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch coverage requirements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coverage_requirements": coverage})
}

// CreateCoverage adds a coverage requirement for a shift on a date
func (h *Handler) CreateCoverage(c *gin.Context) {
	var req struct {
		Date          string `json:"date" binding:"required,datetime=2006-01-02"`
		ShiftID       string `json:"shift_id" binding:"required"`
		Role          string `json:"role"`
		EmployeeCount int    `json:"employee_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var shift database.Shift
	if err := h.DB.First(&shift, "id = ?", req.ShiftID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown shift_id"})
		return
	}

	if req.EmployeeCount < 1 {
		req.EmployeeCount = 1
	}

	coverage := database.CoverageRequirement{
		Date:          req.Date,
		ShiftID:       req.ShiftID,
		Role:          req.Role,
		EmployeeCount: req.EmployeeCount,
	}
	if err := h.DB.Create(&coverage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create coverage requirement"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"coverage_requirement": coverage})
}

// DeleteCoverage removes a coverage requirement
func (h *Handler) DeleteCoverage(c *gin.Context) {
	result := h.DB.Delete(&database.CoverageRequirement{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete coverage requirement"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coverage requirement not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coverage requirement deleted"})
}
