package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/curiouspeterson/schedule-app-router/pkg/database"
	"github.com/curiouspeterson/schedule-app-router/pkg/scheduler"
)

var dayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// GetMyAvailability returns the caller's weekly availability patterns
func (h *Handler) GetMyAvailability(c *gin.Context) {
	var patterns []database.AvailabilityPattern
	if err := h.DB.Where("employee_id = ?", c.GetString("userID")).Order("day_of_week").Find(&patterns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch availability"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": patterns})
}

// PutAvailability creates or replaces the caller's window for one day of week
// and notifies managers of the change
func (h *Handler) PutAvailability(c *gin.Context) {
	var req struct {
		DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
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

	userID := c.GetString("userID")

	var existing database.AvailabilityPattern
	updated := h.DB.Where("employee_id = ? AND day_of_week = ?", userID, req.DayOfWeek).
		First(&existing).Error == nil

	if updated {
		existing.StartTime = req.StartTime
		existing.EndTime = req.EndTime
		if err := h.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update availability"})
			return
		}
	} else {
		existing = database.AvailabilityPattern{
			EmployeeID: userID,
			DayOfWeek:  req.DayOfWeek,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		}
		if err := h.DB.Create(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save availability"})
			return
		}
	}

	timeRange := formatTime12h(req.StartTime) + " - " + formatTime12h(req.EndTime)
	day := dayNames[req.DayOfWeek]
	var message string
	if updated {
		message = fmt.Sprintf("%s updated their availability on %ss to %s", h.fullName(userID), day, timeRange)
	} else {
		message = fmt.Sprintf("%s is now available on %ss from %s", h.fullName(userID), day, timeRange)
	}
	h.notifyManagers("availability_change", message)

	c.JSON(http.StatusOK, gin.H{"availability": existing})
}

// DeleteAvailability removes the caller's window for one day of week
func (h *Handler) DeleteAvailability(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be 0-6"})
		return
	}

	userID := c.GetString("userID")
	result := h.DB.Where("employee_id = ? AND day_of_week = ?", userID, day).Delete(&database.AvailabilityPattern{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete availability"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No availability for that day"})
		return
	}

	h.notifyManagers("availability_change",
		fmt.Sprintf("%s removed their availability on %ss", h.fullName(userID), dayNames[day]))

	c.JSON(http.StatusOK, gin.H{"message": "Availability removed"})
}

// notifyManagers fans one notification out to every manager profile
func (h *Handler) notifyManagers(kind, message string) {
	var managers []database.Profile
	if err := h.DB.Where("role = ?", "manager").Find(&managers).Error; err != nil {
		h.Log.Warn("could not load managers for notification", zap.Error(err))
		return
	}
	for _, m := range managers {
		n := database.Notification{
			RecipientID: m.ID,
			Type:        kind,
			Message:     message,
		}
		if err := h.DB.Create(&n).Error; err != nil {
			h.Log.Warn("could not create notification", zap.Error(err))
		}
	}
}

func (h *Handler) fullName(profileID string) string {
	var p database.Profile
	if err := h.DB.Select("full_name").Where("id = ?", profileID).First(&p).Error; err != nil {
		return "An employee"
	}
	return p.FullName
}

// formatTime12h renders "HH:MM[:SS]" as "h:MM AM/PM"
func formatTime12h(t string) string {
	minutes, err := scheduler.ParseTimeOfDay(t)
	if err != nil {
		return t
	}
	hour := minutes / 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minutes%60, period)
}
