package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/curiouspeterson/schedule-app-router/pkg/database"
	"github.com/curiouspeterson/schedule-app-router/pkg/models"
	"github.com/curiouspeterson/schedule-app-router/pkg/scheduler"
)

const dateLayout = "2006-01-02"

// GenerateSchedule creates a draft schedule for one week: it loads the input
// snapshot from storage, runs the scheduling engine, persists the returned
// assignments and responds with the fill statistics. Manager only.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req struct {
		WeekStart   string                       `json:"week_start" binding:"omitempty,datetime=2006-01-02"`
		Constraints models.SchedulingConstraints `json:"constraints"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weekStart := nextWeekMonday(time.Now())
	if req.WeekStart != "" {
		weekStart, _ = time.Parse(dateLayout, req.WeekStart)
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	schedule := database.Schedule{
		StartDate: weekStart.Format(dateLayout),
		EndDate:   weekEnd.Format(dateLayout),
		Status:    "draft",
		CreatedBy: c.GetString("userID"),
	}
	if err := h.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	input, err := h.loadSnapshot(schedule.ID, schedule.StartDate, schedule.EndDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	input.Constraints = req.Constraints

	gen, err := scheduler.NewGenerator(input)
	if err != nil {
		h.Log.Warn("rejected snapshot", zap.String("schedule_id", schedule.ID), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	result := gen.Generate()

	if len(result.Assignments) > 0 {
		rows := make([]database.ScheduleAssignment, 0, len(result.Assignments))
		for _, a := range result.Assignments {
			rows = append(rows, database.ScheduleAssignment{
				ScheduleID: a.ScheduleID,
				EmployeeID: a.EmployeeID,
				ShiftID:    a.ShiftID,
				Date:       a.Date,
			})
		}
		if err := h.DB.Create(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignments"})
			return
		}
	}

	h.Log.Info("schedule generated",
		zap.String("schedule_id", schedule.ID),
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("unassigned", len(result.UnassignedShifts)))

	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule generated successfully",
		"schedule": schedule,
		"stats": gin.H{
			"total_assignments": len(result.Assignments),
			"unassigned_shifts": len(result.UnassignedShifts),
			"employee_stats":    result.EmployeeStats,
		},
		"unassigned": result.UnassignedShifts,
	})
}

// loadSnapshot assembles the engine input for one week from storage
func (h *Handler) loadSnapshot(scheduleID, startDate, endDate string) (models.ScheduleInput, error) {
	input := models.ScheduleInput{ScheduleID: scheduleID, WeekStart: startDate}

	var profiles []database.Profile
	if err := h.DB.Where("role = ?", "employee").Find(&profiles).Error; err != nil {
		return input, fmt.Errorf("failed to fetch employees")
	}
	for _, p := range profiles {
		input.Employees = append(input.Employees, models.Employee{
			ID:              p.ID,
			Name:            p.FullName,
			Role:            p.Position,
			MaxHoursPerWeek: p.MaxHoursPerWeek,
		})
	}

	var shifts []database.Shift
	if err := h.DB.Find(&shifts).Error; err != nil {
		return input, fmt.Errorf("failed to fetch shifts")
	}
	for _, s := range shifts {
		input.Shifts = append(input.Shifts, models.Shift{
			ID:        s.ID,
			Name:      s.Name,
			Role:      s.Role,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	var availability []database.AvailabilityPattern
	if err := h.DB.Find(&availability).Error; err != nil {
		return input, fmt.Errorf("failed to fetch availability")
	}
	for _, a := range availability {
		input.Availability = append(input.Availability, models.AvailabilityPattern{
			EmployeeID: a.EmployeeID,
			DayOfWeek:  a.DayOfWeek,
			StartTime:  a.StartTime,
			EndTime:    a.EndTime,
		})
	}

	var coverage []database.CoverageRequirement
	if err := h.DB.Where("date >= ? AND date <= ?", startDate, endDate).Find(&coverage).Error; err != nil {
		return input, fmt.Errorf("failed to fetch coverage requirements")
	}
	for _, cr := range coverage {
		input.CoverageRequirements = append(input.CoverageRequirements, models.CoverageRequirement{
			ID:            cr.ID,
			Date:          cr.Date,
			ShiftID:       cr.ShiftID,
			Role:          cr.Role,
			EmployeeCount: cr.EmployeeCount,
		})
	}

	return input, nil
}

// nextWeekMonday returns the Monday of the week after now
func nextWeekMonday(now time.Time) time.Time {
	d := now.AddDate(0, 0, 7)
	offset := (int(d.Weekday()) + 6) % 7
	d = d.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// ListSchedules returns all schedules, newest first
func (h *Handler) ListSchedules(c *gin.Context) {
	var schedules []database.Schedule
	if err := h.DB.Order("start_date desc").Find(&schedules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GetSchedule returns one schedule with its assignments
func (h *Handler) GetSchedule(c *gin.Context) {
	id := c.Param("id")

	var schedule database.Schedule
	if err := h.DB.First(&schedule, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	var assignments []database.ScheduleAssignment
	if err := h.DB.Where("schedule_id = ?", id).Order("date").Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assignments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule, "assignments": assignments})
}

// PublishSchedule marks a draft schedule as published and notifies the
// assigned employees
func (h *Handler) PublishSchedule(c *gin.Context) {
	id := c.Param("id")

	result := h.DB.Model(&database.Schedule{}).Where("id = ? AND status = ?", id, "draft").Update("status", "published")
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not publish schedule"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No draft schedule with that id"})
		return
	}

	var assignments []database.ScheduleAssignment
	h.DB.Where("schedule_id = ?", id).Find(&assignments)
	notified := make(map[string]bool)
	for _, a := range assignments {
		if notified[a.EmployeeID] {
			continue
		}
		notified[a.EmployeeID] = true
		h.DB.Create(&database.Notification{
			RecipientID: a.EmployeeID,
			Type:        "schedule_published",
			Message:     "A new schedule with your shifts has been published",
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule published"})
}

// ExportScheduleCSV exports a schedule's assignments as CSV
func (h *Handler) ExportScheduleCSV(c *gin.Context) {
	id := c.Param("id")

	var schedule database.Schedule
	if err := h.DB.First(&schedule, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	var assignments []database.ScheduleAssignment
	if err := h.DB.Where("schedule_id = ?", id).Order("date").Find(&assignments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assignments"})
		return
	}

	shiftsByID := make(map[string]database.Shift)
	var shifts []database.Shift
	h.DB.Find(&shifts)
	for _, s := range shifts {
		shiftsByID[s.ID] = s
	}

	namesByID := make(map[string]string)
	var profiles []database.Profile
	h.DB.Find(&profiles)
	for _, p := range profiles {
		namesByID[p.ID] = p.FullName
	}

	var out strings.Builder
	writer := csv.NewWriter(&out)
	writer.Write([]string{"date", "shift_id", "shift_name", "employee_id", "employee_name", "start", "end", "duration_hours"})

	for _, a := range assignments {
		sh := shiftsByID[a.ShiftID]
		start, errS := scheduler.ParseTimeOfDay(sh.StartTime)
		end, errE := scheduler.ParseTimeOfDay(sh.EndTime)
		duration := ""
		if errS == nil && errE == nil {
			duration = fmt.Sprintf("%.2f", float64(end-start)/60.0)
		}
		writer.Write([]string{
			a.Date,
			a.ShiftID,
			sh.Name,
			a.EmployeeID,
			namesByID[a.EmployeeID],
			sh.StartTime,
			sh.EndTime,
			duration,
		})
	}
	writer.Flush()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=schedule_%s.csv", schedule.StartDate))
	c.Data(http.StatusOK, "text/csv", []byte(out.String()))
}

// SchedulePreview runs the engine on a caller-supplied snapshot without
// persisting anything. This is the integration surface for external systems
// that manage their own storage.
func (h *Handler) SchedulePreview(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, err := scheduler.NewGenerator(input)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	result := gen.Generate()

	h.RecordUsage(c, len(input.CoverageRequirements), len(input.Employees))

	c.JSON(http.StatusOK, result)
}
