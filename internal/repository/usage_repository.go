package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/pkg/cleanup"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

type UsageRepository struct {
	conn PgConnection
}

func NewUsageRepo(cfg DBConfig) *UsageRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usageRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usageRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsageRepository{
		conn: pool,
	}
}

func NewUsageRepoWithConn(conn PgConnection) *UsageRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usageRepo: " + err.Error())
	}
	return &UsageRepository{
		conn: conn,
	}
}

func (ur *UsageRepository) Accumulate(ctx context.Context, uid uuid.UUID, date, appName string, minutes int, category *string) error {
	// Single upsert so two concurrent logs for the same identity serialize
	// in the store instead of racing on check-then-write. An empty category
	// string counts as absent and never clobbers a stored one
	_, err := ur.conn.Exec(ctx,
		`INSERT INTO app_usage (user_id, date, app_name, minutes_used, category, classification_attempts, last_updated)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), 0, NOW())
		ON CONFLICT (user_id, date, app_name) DO UPDATE SET
		minutes_used = app_usage.minutes_used + EXCLUDED.minutes_used,
		category = COALESCE(EXCLUDED.category, app_usage.category),
		last_updated = NOW();`,
		uid, date, appName, minutes, category,
	)
	if err != nil {
		return errors.New("accumulating usage error: " + err.Error())
	}
	return nil
}

func (ur *UsageRepository) Get(ctx context.Context, uid uuid.UUID, date, appName string) (*entity.UsageRecord, error) {
	var rec entity.UsageRecord
	row := ur.conn.QueryRow(ctx,
		`SELECT id, user_id, date::text, app_name, minutes_used, is_productive, productivity_score, category,
		classification_attempts, next_retry_at, last_classification_error, last_updated
		FROM app_usage WHERE user_id = $1 AND date = $2 AND app_name = $3;`,
		uid, date, appName,
	)
	if err := scanUsage(row, &rec); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUsageNotFound
		}
		return nil, errors.New("getting usage record error: " + err.Error())
	}
	return &rec, nil
}

func (ur *UsageRepository) ListByDate(ctx context.Context, uid uuid.UUID, date string) ([]*entity.UsageRecord, error) {
	rows, err := ur.conn.Query(ctx,
		`SELECT id, user_id, date::text, app_name, minutes_used, is_productive, productivity_score, category,
		classification_attempts, next_retry_at, last_classification_error, last_updated
		FROM app_usage WHERE user_id = $1 AND date = $2 ORDER BY minutes_used DESC;`,
		uid, date,
	)
	if err != nil {
		return nil, errors.New("listing usage by date error: " + err.Error())
	}
	defer rows.Close()
	return collectUsage(rows)
}

func (ur *UsageRepository) ListSince(ctx context.Context, uid uuid.UUID, fromDate string) ([]*entity.UsageRecord, error) {
	rows, err := ur.conn.Query(ctx,
		`SELECT id, user_id, date::text, app_name, minutes_used, is_productive, productivity_score, category,
		classification_attempts, next_retry_at, last_classification_error, last_updated
		FROM app_usage WHERE user_id = $1 AND date >= $2 ORDER BY minutes_used DESC;`,
		uid, fromDate,
	)
	if err != nil {
		return nil, errors.New("listing usage since date error: " + err.Error())
	}
	defer rows.Close()
	return collectUsage(rows)
}

func (ur *UsageRepository) ListRetryable(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.UsageRecord, error) {
	rows, err := ur.conn.Query(ctx,
		`SELECT id, user_id, date::text, app_name, minutes_used, is_productive, productivity_score, category,
		classification_attempts, next_retry_at, last_classification_error, last_updated
		FROM app_usage
		WHERE is_productive IS NULL AND classification_attempts < $1 AND (next_retry_at IS NULL OR next_retry_at <= $2)
		ORDER BY next_retry_at ASC NULLS FIRST LIMIT $3;`,
		maxAttempts, now, limit,
	)
	if err != nil {
		return nil, errors.New("listing retryable usage error: " + err.Error())
	}
	defer rows.Close()
	return collectUsage(rows)
}

func (ur *UsageRepository) ApplyVerdict(ctx context.Context, uid uuid.UUID, date, appName string, isProductive bool, score int) error {
	_, err := ur.conn.Exec(ctx,
		`UPDATE app_usage SET is_productive = $4, productivity_score = $5, classification_attempts = 0,
		next_retry_at = NULL, last_classification_error = NULL, last_updated = NOW()
		WHERE user_id = $1 AND date = $2 AND app_name = $3;`,
		uid, date, appName, isProductive, score,
	)
	if err != nil {
		return errors.New("applying verdict error: " + err.Error())
	}
	// Zero rows means the record vanished (user deleted); classification
	// results for it are simply dropped
	return nil
}

func (ur *UsageRepository) MarkAttempt(ctx context.Context, uid uuid.UUID, date, appName string, retryAt time.Time, reason string) error {
	_, err := ur.conn.Exec(ctx,
		`UPDATE app_usage SET classification_attempts = classification_attempts + 1,
		next_retry_at = $4, last_classification_error = $5, last_updated = NOW()
		WHERE user_id = $1 AND date = $2 AND app_name = $3;`,
		uid, date, appName, retryAt, reason,
	)
	if err != nil {
		return errors.New("marking classification attempt error: " + err.Error())
	}
	return nil
}

func scanUsage(row pgx.Row, rec *entity.UsageRecord) error {
	return row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Date,
		&rec.AppName,
		&rec.MinutesUsed,
		&rec.IsProductive,
		&rec.ProductivityScore,
		&rec.Category,
		&rec.ClassificationAttempts,
		&rec.NextRetryAt,
		&rec.LastClassificationError,
		&rec.LastUpdated,
	)
}

func collectUsage(rows pgx.Rows) ([]*entity.UsageRecord, error) {
	records := make([]*entity.UsageRecord, 0)
	for rows.Next() {
		rec := entity.UsageRecord{}
		if err := scanUsage(rows, &rec); err != nil {
			return nil, errors.New("usage row parsing error: " + err.Error())
		}
		records = append(records, &rec)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected usage rows error: " + rows.Err().Error())
	}
	return records, nil
}
