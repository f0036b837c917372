package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/internal/repository"
	"github.com/being-saiful/productivity-tracker1/internal/roadmap"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

type StatsService struct {
	statsRepo repository.StatsRepositoryI
	usageRepo repository.UsageRepositoryI
}

func NewStatsService(statsRepo repository.StatsRepositoryI, usageRepo repository.UsageRepositoryI) *StatsService {
	if statsRepo == nil || usageRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		statsRepo: statsRepo,
		usageRepo: usageRepo,
	}
}

func (serv *StatsService) GetToday(ctx context.Context, user *entity.User, date string) (*TodayOverview, error) {
	stats, err := serv.statsRepo.GetByDate(ctx, user.ID, date)
	if errors.Is(err, errorvalues.ErrStatsNotFound) {
		// First access today: seed total_tasks from the career checklist
		totalTasks := len(roadmap.Steps(user.CareerID))
		if err = serv.statsRepo.Create(ctx, user.ID, date, totalTasks); err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
		stats, err = serv.statsRepo.GetByDate(ctx, user.ID, date)
	}
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.buildOverview(ctx, stats)
}

func (serv *StatsService) ToggleStep(ctx context.Context, user *entity.User, date string, stepIndex int) (*TodayOverview, error) {
	steps := roadmap.Steps(user.CareerID)
	if stepIndex < 0 || stepIndex >= len(steps) {
		return nil, errorvalues.ErrInvalidStep
	}
	stats, err := serv.statsRepo.GetByDate(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}

	stepID := fmt.Sprintf("step-%d", stepIndex)
	completed, wasCompleted := removeStep(stats.CompletedStepIDs, stepID)
	if wasCompleted {
		stats.TasksCompleted = max(stats.TasksCompleted-1, 0)
	} else {
		completed = append(completed, stepID)
		stats.TasksCompleted = min(stats.TasksCompleted+1, len(steps))
	}
	stats.CompletedStepIDs = completed

	err = serv.statsRepo.UpdateChecklist(ctx, stats.ID, stats.TasksCompleted, completed)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if !wasCompleted {
		err = serv.statsRepo.InsertActivity(ctx, &entity.ActivityLog{
			StatsID:   stats.ID,
			Type:      "checklist",
			Title:     "Completed habit",
			Detail:    steps[stepIndex],
			Timestamp: time.Now(),
		})
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}
	return serv.buildOverview(ctx, stats)
}

func (serv *StatsService) AddFocusMinutes(ctx context.Context, user *entity.User, date string, minutes float64) (*entity.DailyStats, error) {
	inc := int(math.Round(minutes))
	if inc < 1 {
		return nil, errorvalues.ErrInvalidMinutes
	}
	stats, err := serv.statsRepo.GetByDate(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	err = serv.statsRepo.AddFocusedMinutes(ctx, stats.ID, inc)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	err = serv.statsRepo.InsertActivity(ctx, &entity.ActivityLog{
		StatsID:   stats.ID,
		Type:      "timer",
		Title:     "Focus session",
		Detail:    fmt.Sprintf("%d min logged", inc),
		Minutes:   inc,
		Timestamp: time.Now(),
	})
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats.FocusedMinutes += inc
	return stats, nil
}

func (serv *StatsService) History(ctx context.Context, uid uuid.UUID, date string) (*entity.DailyStats, []*entity.ActivityLog, error) {
	stats, err := serv.statsRepo.GetByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, nil, err
		}
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	logs, err := serv.statsRepo.ListActivity(ctx, stats.ID)
	if err != nil {
		return nil, nil, errors.New("repository error: " + err.Error())
	}
	return stats, logs, nil
}

func (serv *StatsService) buildOverview(ctx context.Context, stats *entity.DailyStats) (*TodayOverview, error) {
	logs, err := serv.statsRepo.ListActivity(ctx, stats.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	usage, err := serv.usageRepo.ListByDate(ctx, stats.UserID, stats.Date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &TodayOverview{
		Stats:        stats,
		ActivityLogs: logs,
		AppUsage:     usage,
		Score:        ComputeScore(stats, usage),
	}, nil
}

func removeStep(ids []string, stepID string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == stepID {
			found = true
			continue
		}
		out = append(out, id)
	}
	return out, found
}
