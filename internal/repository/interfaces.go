package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user. Usage, stats and activity rows cascade with it
	Delete(ctx context.Context, uid uuid.UUID) error
}

type UsageRepositoryI interface {
	// Adds minutes to the (user, date, app) record, creating it if absent.
	// A non-nil, non-empty category overwrites the stored one; empty
	// strings count as absent. Atomic upsert, so
	// concurrent accumulation for the same identity never loses updates
	// and never creates duplicate rows
	Accumulate(ctx context.Context, uid uuid.UUID, date, appName string, minutes int, category *string) error
	// Fetches one record by identity
	Get(ctx context.Context, uid uuid.UUID, date, appName string) (*entity.UsageRecord, error)
	// Lists all records of a user for one day, longest usage first
	ListByDate(ctx context.Context, uid uuid.UUID, date string) ([]*entity.UsageRecord, error)
	// Lists all records of a user since a date (inclusive), for weekly summaries
	ListSince(ctx context.Context, uid uuid.UUID, fromDate string) ([]*entity.UsageRecord, error)
	// Selects up to limit undetermined records eligible for a retry:
	// attempts below maxAttempts and next_retry_at unset or due
	ListRetryable(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.UsageRecord, error)
	// Persists a determined verdict and resets retry bookkeeping.
	// Missing rows (cascade-deleted mid-flight) are not an error
	ApplyVerdict(ctx context.Context, uid uuid.UUID, date, appName string, isProductive bool, score int) error
	// Increments the attempt counter, schedules the next retry and
	// records the failure reason. Missing rows are not an error
	MarkAttempt(ctx context.Context, uid uuid.UUID, date, appName string, retryAt time.Time, reason string) error
}

type StatsRepositoryI interface {
	// Fetches the stats row for (user, date)
	GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStats, error)
	// Creates a fresh stats row seeded with totalTasks
	Create(ctx context.Context, uid uuid.UUID, date string, totalTasks int) error
	// Rewrites the checklist state of a stats row
	UpdateChecklist(ctx context.Context, statsID int64, tasksCompleted int, completedStepIDs []string) error
	// Atomically adds minutes to focused_minutes
	AddFocusedMinutes(ctx context.Context, statsID int64, minutes int) error
	// Appends an activity entry to a stats row
	InsertActivity(ctx context.Context, log *entity.ActivityLog) error
	// Lists activity entries of a stats row, newest first
	ListActivity(ctx context.Context, statsID int64) ([]*entity.ActivityLog, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
