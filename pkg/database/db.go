package database

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Profile represents the profiles table. Role gates authorization
// ("manager" or "employee"); Position is the job role the scheduler matches
// against shift requirements.
type Profile struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"unique;not null" json:"email"`
	FullName        string    `gorm:"not null" json:"full_name"`
	PasswordHash    string    `gorm:"not null" json:"-"`
	Role            string    `gorm:"not null;default:employee" json:"role"`
	Position        string    `json:"position"`
	MaxHoursPerWeek float64   `json:"max_hours_per_week"`
	CreatedAt       time.Time `json:"created_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Shift represents the shifts table. Times are time-of-day values stored as
// "HH:MM" strings.
type Shift struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Role      string    `gorm:"not null" json:"role"`
	StartTime string    `gorm:"not null" json:"start_time"`
	EndTime   string    `gorm:"not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// AvailabilityPattern represents the availability_patterns table: one weekly
// window per employee per day of week (0 = Sunday).
type AvailabilityPattern struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"uniqueIndex:idx_employee_day;not null" json:"employee_id"`
	DayOfWeek  int       `gorm:"uniqueIndex:idx_employee_day;not null" json:"day_of_week"`
	StartTime  string    `gorm:"not null" json:"start_time"`
	EndTime    string    `gorm:"not null" json:"end_time"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a *AvailabilityPattern) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// CoverageRequirement represents the coverage_requirements table
type CoverageRequirement struct {
	ID            string `gorm:"primaryKey" json:"id"`
	Date          string `gorm:"index;not null" json:"date"`
	ShiftID       string `gorm:"not null" json:"shift_id"`
	Role          string `json:"role"`
	EmployeeCount int    `gorm:"default:1" json:"employee_count"`
}

func (c *CoverageRequirement) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Schedule represents the schedules table: one generated week
type Schedule struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	StartDate string    `gorm:"not null" json:"start_date"`
	EndDate   string    `gorm:"not null" json:"end_date"`
	Status    string    `gorm:"not null;default:draft" json:"status"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ScheduleAssignment represents the schedule_assignments table
type ScheduleAssignment struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	ScheduleID string    `gorm:"uniqueIndex:idx_assignment;not null" json:"schedule_id"`
	EmployeeID string    `gorm:"uniqueIndex:idx_assignment;not null" json:"employee_id"`
	ShiftID    string    `gorm:"uniqueIndex:idx_assignment;not null" json:"shift_id"`
	Date       string    `gorm:"uniqueIndex:idx_assignment;not null" json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *ScheduleAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ShiftSwapRequest represents the shift_swap_requests table
type ShiftSwapRequest struct {
	ID                   string    `gorm:"primaryKey" json:"id"`
	AssignmentID         string    `gorm:"not null" json:"assignment_id"`
	RequestingEmployeeID string    `gorm:"not null" json:"requesting_employee_id"`
	TargetEmployeeID     string    `gorm:"not null" json:"target_employee_id"`
	Status               string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

func (s *ShiftSwapRequest) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Notification represents the notifications table
type Notification struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	RecipientID string    `gorm:"index;not null" json:"recipient_id"`
	Type        string    `gorm:"not null" json:"type"`
	Message     string    `gorm:"not null" json:"message"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// APIKey represents the api_keys table for the integration surface
type APIKey struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Key        string     `gorm:"unique;not null" json:"key"`
	Name       string     `gorm:"not null" json:"name"`
	KeyPreview string     `json:"key_preview"`
	RateLimit  int        `gorm:"default:10000" json:"rate_limit"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   *time.Time `json:"last_used"`
}

// APIUsage represents the api_usage table
type APIUsage struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	KeyID             uint   `gorm:"uniqueIndex:idx_key_date;not null" json:"key_id"`
	Date              string `gorm:"uniqueIndex:idx_key_date;not null" json:"date"`
	RequestCount      int    `gorm:"default:0" json:"request_count"`
	TotalRequirements int    `gorm:"default:0" json:"total_requirements"`
	TotalEmployees    int    `gorm:"default:0" json:"total_employees"`
}

// InitDB initializes the database connection and migrates the schema
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "schedule_app.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(
		&Profile{},
		&Shift{},
		&AvailabilityPattern{},
		&CoverageRequirement{},
		&Schedule{},
		&ScheduleAssignment{},
		&ShiftSwapRequest{},
		&Notification{},
		&APIKey{},
		&APIUsage{},
	)

	return db
}
