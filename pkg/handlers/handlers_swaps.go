package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/curiouspeterson/schedule-app-router/pkg/database"
)

// CreateSwapRequest lets an employee offer one of their assignments to a
// colleague
func (h *Handler) CreateSwapRequest(c *gin.Context) {
	var req struct {
		AssignmentID     string `json:"assignment_id" binding:"required"`
		TargetEmployeeID string `json:"target_employee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")

	var assignment database.ScheduleAssignment
	if err := h.DB.First(&assignment, "id = ?", req.AssignmentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Assignment not found"})
		return
	}
	if assignment.EmployeeID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only swap your own assignments"})
		return
	}

	var target database.Profile
	if err := h.DB.Where("id = ? AND role = ?", req.TargetEmployeeID, "employee").First(&target).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown target employee"})
		return
	}

	swap := database.ShiftSwapRequest{
		AssignmentID:         req.AssignmentID,
		RequestingEmployeeID: userID,
		TargetEmployeeID:     req.TargetEmployeeID,
		Status:               "pending",
	}
	if err := h.DB.Create(&swap).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create swap request"})
		return
	}

	h.DB.Create(&database.Notification{
		RecipientID: req.TargetEmployeeID,
		Type:        "swap_request",
		Message:     h.fullName(userID) + " asked you to take over one of their shifts",
	})

	c.JSON(http.StatusCreated, gin.H{"swap_request": swap})
}

// ListSwapRequests returns swap requests involving the caller
func (h *Handler) ListSwapRequests(c *gin.Context) {
	userID := c.GetString("userID")
	var swaps []database.ShiftSwapRequest
	if err := h.DB.Where("requesting_employee_id = ? OR target_employee_id = ?", userID, userID).
		Order("created_at desc").Find(&swaps).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch swap requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"swap_requests": swaps})
}

// RespondSwapRequest lets the target employee accept or decline a pending
// swap; accepting reassigns the underlying schedule assignment
func (h *Handler) RespondSwapRequest(c *gin.Context) {
	var req struct {
		Accept bool `json:"accept"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")

	var swap database.ShiftSwapRequest
	if err := h.DB.First(&swap, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Swap request not found"})
		return
	}
	if swap.TargetEmployeeID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the target employee can respond"})
		return
	}
	if swap.Status != "pending" {
		c.JSON(http.StatusConflict, gin.H{"error": "Swap request already resolved"})
		return
	}

	status := "declined"
	if req.Accept {
		status = "accepted"
		if err := h.DB.Model(&database.ScheduleAssignment{}).
			Where("id = ?", swap.AssignmentID).
			Update("employee_id", userID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reassign shift"})
			return
		}
	}

	if err := h.DB.Model(&swap).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update swap request"})
		return
	}

	h.DB.Create(&database.Notification{
		RecipientID: swap.RequestingEmployeeID,
		Type:        "swap_response",
		Message:     h.fullName(userID) + " " + status + " your shift swap request",
	})

	c.JSON(http.StatusOK, gin.H{"message": "Swap request " + status})
}
