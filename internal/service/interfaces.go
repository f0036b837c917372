package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=72"`
	CareerID string `validate:"omitempty,career,max=50"`
}

type LogUsageRequest struct {
	AppName  string
	Minutes  int
	Category *string
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type UsageServiceI interface {
	// Accumulates minutes for (user, date, app), runs the inline heuristic
	// and hands the record to the async remote classifier. Returns the
	// post-heuristic snapshot. Classifier availability never fails this call
	LogUsage(ctx context.Context, user *entity.User, date string, req *LogUsageRequest) (*entity.UsageRecord, error)
	// Manual reclassification: remote call awaited, heuristic fallback,
	// result persisted on today's record when one exists
	Classify(ctx context.Context, user *entity.User, date, appName string, category *string) (*ClassifyResult, error)
	// Per-app breakdown of one day's usage
	DayUsage(ctx context.Context, uid uuid.UUID, date string) (*UsageBreakdown, error)
	// Per-app aggregation over the trailing week
	WeeklyUsage(ctx context.Context, uid uuid.UUID, fromDate string) (*WeeklySummary, error)
}

type StatsServiceI interface {
	// Lazily creates the day's stats row (total_tasks seeded from the
	// career checklist) and returns it with activity, usage and score
	GetToday(ctx context.Context, user *entity.User, date string) (*TodayOverview, error)
	// Flips one checklist step and recomputes the composite score
	ToggleStep(ctx context.Context, user *entity.User, date string, stepIndex int) (*TodayOverview, error)
	// Adds focused minutes from a timer session
	AddFocusMinutes(ctx context.Context, user *entity.User, date string, minutes float64) (*entity.DailyStats, error)
	// Read-only lookup of a past day
	History(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStats, []*entity.ActivityLog, error)
}

type ClassifyResult struct {
	AppName      string  `json:"app_name"`
	IsProductive *bool   `json:"is_productive"`
	Confidence   float64 `json:"confidence"`
	Category     *string `json:"category"`
}

type AppShare struct {
	AppName           string  `json:"app_name"`
	MinutesUsed       int     `json:"minutes_used"`
	IsProductive      *bool   `json:"is_productive"`
	ProductivityScore int     `json:"productivity_score"`
	Category          *string `json:"category"`
	PercentOfTotal    int     `json:"percent_of_total"`
}

type UsageBreakdown struct {
	Date                string     `json:"date"`
	TotalMinutes        int        `json:"total_minutes"`
	ProductiveMinutes   int        `json:"productive_minutes"`
	ProductivityPercent int        `json:"productivity_percent"`
	Apps                []AppShare `json:"apps"`
}

type WeeklyAppShare struct {
	AppName        string `json:"app_name"`
	TotalMinutes   int    `json:"total_minutes"`
	IsProductive   *bool  `json:"is_productive"`
	PercentOfTotal int    `json:"percent_of_week"`
}

type WeeklySummary struct {
	From                string           `json:"from"`
	TotalMinutes        int              `json:"total_minutes"`
	ProductiveMinutes   int              `json:"productive_minutes"`
	ProductivityPercent int              `json:"weekly_productivity_percent"`
	Apps                []WeeklyAppShare `json:"apps"`
}

type TodayOverview struct {
	Stats        *entity.DailyStats    `json:"stats"`
	ActivityLogs []*entity.ActivityLog `json:"activity_logs"`
	AppUsage     []*entity.UsageRecord `json:"app_usage"`
	Score        ScoreBreakdown        `json:"score"`
}
