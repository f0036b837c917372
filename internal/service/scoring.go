package service

import (
	"math"

	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

// Composite score weights: checklist and focus blend 70/30, the result
// blends 80/20 with the app-usage productivity ratio. Focus benefit
// caps at one hour.
const (
	checklistWeight = 0.7
	focusWeight     = 0.3
	habitsWeight    = 0.8
	usageWeight     = 0.2
	focusCapMinutes = 60.0
)

type ScoreBreakdown struct {
	ChecklistScore float64 `json:"checklist_score"`
	FocusScore     float64 `json:"focus_score"`
	AppUsageRatio  float64 `json:"app_usage_ratio"`
	Composite      int     `json:"composite"`
}

// ComputeScore folds one day's checklist, focus and app-usage signals
// into a 0-100 score. Pure: callers must invoke it fresh on every read.
// Absent signals contribute zero, the result never leaves [0, 100] and
// is monotone in each signal.
func ComputeScore(stats *entity.DailyStats, records []*entity.UsageRecord) ScoreBreakdown {
	var b ScoreBreakdown
	if stats != nil && stats.TotalTasks > 0 {
		b.ChecklistScore = float64(stats.TasksCompleted) / float64(stats.TotalTasks)
	}
	if stats != nil {
		b.FocusScore = math.Min(float64(stats.FocusedMinutes)/focusCapMinutes, 1)
	}

	totalMinutes := 0
	productiveMinutes := 0
	for _, rec := range records {
		totalMinutes += rec.MinutesUsed
		// Undetermined and unproductive records count toward the
		// denominator only
		if rec.IsProductive != nil && *rec.IsProductive {
			productiveMinutes += rec.MinutesUsed
		}
	}
	if totalMinutes > 0 {
		b.AppUsageRatio = float64(productiveMinutes) / float64(totalMinutes)
	}

	intermediate := b.ChecklistScore*checklistWeight + b.FocusScore*focusWeight
	final := intermediate*habitsWeight + b.AppUsageRatio*usageWeight
	b.Composite = clampScore(int(math.Round(final * 100)))
	return b
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
