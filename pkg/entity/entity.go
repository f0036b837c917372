package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CareerID     string
	Level        string
	DailyMinutes int
}

// UsageRecord accumulates minutes spent in one app by one user on one day.
// IsProductive is nil until a classifier (heuristic or remote) decides.
type UsageRecord struct {
	ID                      int64      `json:"-"`
	UserID                  uuid.UUID  `json:"-"`
	Date                    string     `json:"date"`
	AppName                 string     `json:"app_name"`
	MinutesUsed             int        `json:"minutes_used"`
	IsProductive            *bool      `json:"is_productive"`
	ProductivityScore       int        `json:"productivity_score"`
	Category                *string    `json:"category"`
	ClassificationAttempts  int        `json:"-"`
	NextRetryAt             *time.Time `json:"-"`
	LastClassificationError *string    `json:"-"`
	LastUpdated             time.Time  `json:"last_updated"`
}

type DailyStats struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"uid"`
	Date             string    `json:"date"`
	FocusedMinutes   int       `json:"focused_minutes"`
	TasksCompleted   int       `json:"tasks_completed"`
	TotalTasks       int       `json:"total_tasks"`
	CompletedStepIDs []string  `json:"completed_step_ids"`
}

type ActivityLog struct {
	ID        int64     `json:"id"`
	StatsID   int64     `json:"-"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	Minutes   int       `json:"minutes"`
	Timestamp time.Time `json:"timestamp"`
}
