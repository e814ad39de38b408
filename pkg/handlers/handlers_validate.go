package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curiouspeterson/schedule-app-router/pkg/models"
	"github.com/curiouspeterson/schedule-app-router/pkg/scheduler"
)

// ValidateInput checks a scheduling snapshot without running a full pass:
// duplicate ids, dangling shift references, malformed times and dates
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	// Check for duplicate IDs first so the caller gets the most actionable
	// message
	empIDs := make(map[string]bool)
	for _, e := range input.Employees {
		if empIDs[e.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate employee ID: " + e.ID})
			return
		}
		empIDs[e.ID] = true
	}

	shiftIDs := make(map[string]bool)
	for _, s := range input.Shifts {
		if shiftIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate shift ID: " + s.ID})
			return
		}
		shiftIDs[s.ID] = true
	}

	// The generator's own validation covers the rest
	if _, err := scheduler.NewGenerator(input); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count":    len(input.Employees),
			"shift_count":       len(input.Shifts),
			"requirement_count": len(input.CoverageRequirements),
		},
	})
}
