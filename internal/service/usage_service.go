package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/being-saiful/productivity-tracker1/internal/classifier"
	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/internal/repository"
	"github.com/being-saiful/productivity-tracker1/pkg/cleanup"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

const (
	asyncQueueSize    = 256
	asyncWorkerCount  = 4
	initialRetryDelay = time.Minute
	maxRetryDelay     = time.Hour
	resolveTimeout    = 15 * time.Second
	fallbackCareer    = "general"
)

type classifyJob struct {
	userID   uuid.UUID
	date     string
	appName  string
	category *string
	career   string
}

type UsageService struct {
	usageRepo repository.UsageRepositoryI
	usersRepo repository.UsersRepositoryI
	remote    classifier.ClientI
	logger    *slog.Logger
	jobs      chan classifyJob
	workers   sync.WaitGroup
	closeJobs sync.Once
}

func NewUsageService(usageRepo repository.UsageRepositoryI, usersRepo repository.UsersRepositoryI, remote classifier.ClientI, logger *slog.Logger) *UsageService {
	if usageRepo == nil || usersRepo == nil || remote == nil {
		log.Fatal("on usage service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	serv := &UsageService{
		usageRepo: usageRepo,
		usersRepo: usersRepo,
		remote:    remote,
		logger:    logger,
		jobs:      make(chan classifyJob, asyncQueueSize),
	}
	for i := 0; i < asyncWorkerCount; i++ {
		serv.workers.Add(1)
		go serv.classifyWorker()
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping classification workers",
		F: func() error {
			serv.Close()
			return nil
		},
	})
	return serv
}

// Close drains the async classification queue and stops its workers.
func (serv *UsageService) Close() {
	serv.closeJobs.Do(func() {
		close(serv.jobs)
	})
	serv.workers.Wait()
}

func (serv *UsageService) LogUsage(ctx context.Context, user *entity.User, date string, req *LogUsageRequest) (*entity.UsageRecord, error) {
	if req == nil || req.AppName == "" {
		return nil, errorvalues.ErrInvalidAppName
	}
	if req.Minutes <= 0 {
		return nil, errorvalues.ErrInvalidMinutes
	}

	err := serv.usageRepo.Accumulate(ctx, user.ID, date, req.AppName, req.Minutes, req.Category)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	// Quick inline heuristic so the caller sees a verdict immediately
	// for well-known apps
	if verdict, confidence := resolveByHints(req.AppName); verdict != nil {
		err = serv.usageRepo.ApplyVerdict(ctx, user.ID, date, req.AppName, *verdict, confidenceScore(confidence))
		if err != nil {
			return nil, errors.New("repository error: " + err.Error())
		}
	}

	// Remote classification runs behind the caller's back; a full queue
	// just leaves the record for the retry sweeper
	job := classifyJob{
		userID:   user.ID,
		date:     date,
		appName:  req.AppName,
		category: req.Category,
		career:   careerOrFallback(user.CareerID),
	}
	select {
	case serv.jobs <- job:
	default:
		serv.logger.Warn("classification queue full, deferring to sweeper",
			slog.String("app", req.AppName))
	}

	rec, err := serv.usageRepo.Get(ctx, user.ID, date, req.AppName)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return rec, nil
}

func (serv *UsageService) Classify(ctx context.Context, user *entity.User, date, appName string, category *string) (*ClassifyResult, error) {
	if appName == "" {
		return nil, errorvalues.ErrInvalidAppName
	}
	result := &ClassifyResult{
		AppName:  appName,
		Category: category,
	}

	verdict, err := serv.remote.Classify(ctx, &classifier.Request{
		AppName:  appName,
		Category: category,
		Career:   careerOrFallback(user.CareerID),
	})
	if err == nil {
		result.IsProductive = verdict.IsProductive
		result.Confidence = verdict.Confidence
	} else {
		serv.logger.Warn("remote classify failed, falling back to heuristic",
			slog.String("app", appName), slog.String("error", err.Error()))
		hinted, confidence := resolveByHints(appName)
		result.IsProductive = hinted
		result.Confidence = confidence
	}

	if result.IsProductive != nil {
		// Persist onto today's record when one exists; a missing record
		// is fine, the verdict is still returned to the caller
		err = serv.usageRepo.ApplyVerdict(ctx, user.ID, date, appName, *result.IsProductive, confidenceScore(result.Confidence))
		if err != nil {
			serv.logger.Warn("persisting manual classification failed",
				slog.String("app", appName), slog.String("error", err.Error()))
		}
	}
	return result, nil
}

func (serv *UsageService) DayUsage(ctx context.Context, uid uuid.UUID, date string) (*UsageBreakdown, error) {
	records, err := serv.usageRepo.ListByDate(ctx, uid, date)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	breakdown := &UsageBreakdown{
		Date: date,
		Apps: make([]AppShare, 0, len(records)),
	}
	for _, rec := range records {
		breakdown.TotalMinutes += rec.MinutesUsed
		if rec.IsProductive != nil && *rec.IsProductive {
			breakdown.ProductiveMinutes += rec.MinutesUsed
		}
	}
	breakdown.ProductivityPercent = percentOf(breakdown.ProductiveMinutes, breakdown.TotalMinutes)
	for _, rec := range records {
		breakdown.Apps = append(breakdown.Apps, AppShare{
			AppName:           rec.AppName,
			MinutesUsed:       rec.MinutesUsed,
			IsProductive:      rec.IsProductive,
			ProductivityScore: rec.ProductivityScore,
			Category:          rec.Category,
			PercentOfTotal:    percentOf(rec.MinutesUsed, breakdown.TotalMinutes),
		})
	}
	return breakdown, nil
}

func (serv *UsageService) WeeklyUsage(ctx context.Context, uid uuid.UUID, fromDate string) (*WeeklySummary, error) {
	records, err := serv.usageRepo.ListSince(ctx, uid, fromDate)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}

	type key struct {
		app     string
		verdict string
	}
	totals := make(map[key]*WeeklyAppShare)
	order := make([]key, 0)
	summary := &WeeklySummary{From: fromDate, Apps: make([]WeeklyAppShare, 0)}
	for _, rec := range records {
		summary.TotalMinutes += rec.MinutesUsed
		if rec.IsProductive != nil && *rec.IsProductive {
			summary.ProductiveMinutes += rec.MinutesUsed
		}
		k := key{app: rec.AppName, verdict: verdictKey(rec.IsProductive)}
		share, ok := totals[k]
		if !ok {
			share = &WeeklyAppShare{AppName: rec.AppName, IsProductive: rec.IsProductive}
			totals[k] = share
			order = append(order, k)
		}
		share.TotalMinutes += rec.MinutesUsed
	}
	summary.ProductivityPercent = percentOf(summary.ProductiveMinutes, summary.TotalMinutes)
	for _, k := range order {
		share := totals[k]
		share.PercentOfTotal = percentOf(share.TotalMinutes, summary.TotalMinutes)
		summary.Apps = append(summary.Apps, *share)
	}
	return summary, nil
}

// ResolveRecord runs the full remote-then-heuristic path for one
// undetermined record. Called by the retry sweeper; a record whose owner
// vanished is skipped without error.
func (serv *UsageService) ResolveRecord(ctx context.Context, rec *entity.UsageRecord) error {
	owner, err := serv.usersRepo.FindByID(ctx, rec.UserID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil
		}
		return errors.New("repository error: " + err.Error())
	}
	return serv.resolveIdentity(ctx, classifyJob{
		userID:   rec.UserID,
		date:     rec.Date,
		appName:  rec.AppName,
		category: rec.Category,
		career:   careerOrFallback(owner.CareerID),
	})
}

func (serv *UsageService) classifyWorker() {
	defer serv.workers.Done()
	for job := range serv.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		if err := serv.resolveIdentity(ctx, job); err != nil {
			serv.logger.Warn("async classification failed",
				slog.String("app", job.appName), slog.String("error", err.Error()))
		}
		cancel()
	}
}

// resolveIdentity is the shared tier-B routine: remote verdict wins,
// the heuristic backs it up, and anything still undetermined gets its
// attempt counter bumped and a retry scheduled.
func (serv *UsageService) resolveIdentity(ctx context.Context, job classifyJob) error {
	verdict, remoteErr := serv.remote.Classify(ctx, &classifier.Request{
		AppName:  job.appName,
		Category: job.category,
		Career:   job.career,
	})
	if remoteErr == nil {
		return serv.usageRepo.ApplyVerdict(ctx, job.userID, job.date, job.appName,
			*verdict.IsProductive, confidenceScore(verdict.Confidence))
	}

	if hinted, confidence := resolveByHints(job.appName); hinted != nil {
		return serv.usageRepo.ApplyVerdict(ctx, job.userID, job.date, job.appName,
			*hinted, confidenceScore(confidence))
	}

	rec, err := serv.usageRepo.Get(ctx, job.userID, job.date, job.appName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUsageNotFound) {
			// Record cascade-deleted while the call was in flight
			return nil
		}
		return errors.New("repository error: " + err.Error())
	}
	retryAt := time.Now().Add(retryBackoff(rec.ClassificationAttempts + 1))
	return serv.usageRepo.MarkAttempt(ctx, job.userID, job.date, job.appName, retryAt, remoteErr.Error())
}

// retryBackoff doubles per attempt starting at one minute, capped at an
// hour: 1m, 2m, 4m, ... 1h.
func retryBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	// 1m<<6 already exceeds the cap; larger shifts would overflow
	if attempt > 6 {
		return maxRetryDelay
	}
	delay := initialRetryDelay << (attempt - 1)
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}

func confidenceScore(confidence float64) int {
	return int(math.Round(confidence * 100))
}

func percentOf(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func verdictKey(v *bool) string {
	if v == nil {
		return "undetermined"
	}
	if *v {
		return "productive"
	}
	return "unproductive"
}

func careerOrFallback(careerID string) string {
	if careerID == "" {
		return fallbackCareer
	}
	return careerID
}
