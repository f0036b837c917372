package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/pkg/cleanup"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStats, error) {
	var stats entity.DailyStats
	var rawSteps string
	row := sr.conn.QueryRow(ctx,
		`SELECT id, user_id, date::text, focused_minutes, tasks_completed, total_tasks, completed_task_ids
		FROM stats WHERE user_id = $1 AND date = $2;`,
		uid, date,
	)
	err := row.Scan(&stats.ID, &stats.UserID, &stats.Date, &stats.FocusedMinutes, &stats.TasksCompleted, &stats.TotalTasks, &rawSteps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting stats error: " + err.Error())
	}
	stats.CompletedStepIDs = decodeStepIDs(rawSteps)
	return &stats, nil
}

func (sr *StatsRepository) Create(ctx context.Context, uid uuid.UUID, date string, totalTasks int) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO stats (user_id, date, focused_minutes, tasks_completed, total_tasks, completed_task_ids)
		VALUES ($1, $2, 0, 0, $3, '[]') ON CONFLICT (user_id, date) DO NOTHING;`,
		uid, date, totalTasks,
	)
	if err != nil {
		return errors.New("creating stats error: " + err.Error())
	}
	return nil
}

func (sr *StatsRepository) UpdateChecklist(ctx context.Context, statsID int64, tasksCompleted int, completedStepIDs []string) error {
	encoded, err := sonic.ConfigDefault.MarshalToString(completedStepIDs)
	if err != nil {
		return errors.New("encoding completed steps error: " + err.Error())
	}
	ct, err := sr.conn.Exec(ctx,
		`UPDATE stats SET tasks_completed = $1, completed_task_ids = $2 WHERE id = $3;`,
		tasksCompleted, encoded, statsID,
	)
	if err != nil {
		return errors.New("updating checklist error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}

func (sr *StatsRepository) AddFocusedMinutes(ctx context.Context, statsID int64, minutes int) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE stats SET focused_minutes = focused_minutes + $1 WHERE id = $2;`,
		minutes, statsID,
	)
	if err != nil {
		return errors.New("adding focused minutes error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}

func (sr *StatsRepository) InsertActivity(ctx context.Context, activity *entity.ActivityLog) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO activity_logs (stats_id, type, title, detail, minutes, ts) VALUES ($1, $2, $3, $4, $5, $6);`,
		activity.StatsID, activity.Type, activity.Title, activity.Detail, activity.Minutes, activity.Timestamp,
	)
	if err != nil {
		return errors.New("inserting activity error: " + err.Error())
	}
	return nil
}

func (sr *StatsRepository) ListActivity(ctx context.Context, statsID int64) ([]*entity.ActivityLog, error) {
	rows, err := sr.conn.Query(ctx,
		`SELECT id, stats_id, type, title, detail, minutes, ts FROM activity_logs WHERE stats_id = $1 ORDER BY ts DESC;`,
		statsID,
	)
	if err != nil {
		return nil, errors.New("listing activity error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]*entity.ActivityLog, 0)
	for rows.Next() {
		al := entity.ActivityLog{}
		if err := rows.Scan(&al.ID, &al.StatsID, &al.Type, &al.Title, &al.Detail, &al.Minutes, &al.Timestamp); err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		logs = append(logs, &al)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected activity rows error: " + rows.Err().Error())
	}
	return logs, nil
}

// decodeStepIDs tolerates malformed stored JSON by treating it as an
// empty set, matching how lazy-created rows start out.
func decodeStepIDs(raw string) []string {
	ids := make([]string, 0)
	if raw == "" {
		return ids
	}
	if err := sonic.ConfigDefault.UnmarshalFromString(raw, &ids); err != nil {
		return make([]string, 0)
	}
	return ids
}
