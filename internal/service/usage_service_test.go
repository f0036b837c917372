package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/being-saiful/productivity-tracker1/internal/classifier"
	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/internal/service"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

// Variables for tests
var (
	testUID  = uuid.New()
	testUser = entity.User{
		ID:       testUID,
		Name:     "test_user",
		Email:    "test@example.com",
		CareerID: "programmer",
	}
	testDate = "2026-03-02"
)

type appliedVerdict struct {
	AppName      string
	IsProductive bool
	Score        int
}

type markedAttempt struct {
	AppName string
	RetryAt time.Time
	Reason  string
}

type usageRepoMock struct {
	mu       sync.Mutex
	records  map[string]*entity.UsageRecord
	verdicts []appliedVerdict
	attempts []markedAttempt
	dbError  bool
}

func newUsageRepoMock() *usageRepoMock {
	return &usageRepoMock{records: make(map[string]*entity.UsageRecord)}
}

func (m *usageRepoMock) Accumulate(ctx context.Context, uid uuid.UUID, date, appName string, minutes int, category *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dbError {
		return errors.New("db error")
	}
	rec, ok := m.records[appName]
	if !ok {
		rec = &entity.UsageRecord{UserID: uid, Date: date, AppName: appName}
		m.records[appName] = rec
	}
	rec.MinutesUsed += minutes
	if category != nil {
		rec.Category = category
	}
	return nil
}

func (m *usageRepoMock) Get(ctx context.Context, uid uuid.UUID, date, appName string) (*entity.UsageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dbError {
		return nil, errors.New("db error")
	}
	rec, ok := m.records[appName]
	if !ok {
		return nil, errorvalues.ErrUsageNotFound
	}
	snapshot := *rec
	return &snapshot, nil
}

func (m *usageRepoMock) ListByDate(ctx context.Context, uid uuid.UUID, date string) ([]*entity.UsageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dbError {
		return nil, errors.New("db error")
	}
	out := make([]*entity.UsageRecord, 0, len(m.records))
	for _, rec := range m.records {
		snapshot := *rec
		out = append(out, &snapshot)
	}
	return out, nil
}

func (m *usageRepoMock) ListSince(ctx context.Context, uid uuid.UUID, fromDate string) ([]*entity.UsageRecord, error) {
	return m.ListByDate(ctx, uid, fromDate)
}

func (m *usageRepoMock) ListRetryable(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.UsageRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.UsageRecord, 0)
	for _, rec := range m.records {
		if rec.IsProductive == nil && rec.ClassificationAttempts < maxAttempts {
			snapshot := *rec
			out = append(out, &snapshot)
		}
	}
	return out, nil
}

func (m *usageRepoMock) ApplyVerdict(ctx context.Context, uid uuid.UUID, date, appName string, isProductive bool, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dbError {
		return errors.New("db error")
	}
	m.verdicts = append(m.verdicts, appliedVerdict{AppName: appName, IsProductive: isProductive, Score: score})
	if rec, ok := m.records[appName]; ok {
		v := isProductive
		rec.IsProductive = &v
		rec.ProductivityScore = score
		rec.ClassificationAttempts = 0
		rec.NextRetryAt = nil
		rec.LastClassificationError = nil
	}
	return nil
}

func (m *usageRepoMock) MarkAttempt(ctx context.Context, uid uuid.UUID, date, appName string, retryAt time.Time, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, markedAttempt{AppName: appName, RetryAt: retryAt, Reason: reason})
	if rec, ok := m.records[appName]; ok {
		rec.ClassificationAttempts++
		at := retryAt
		rec.NextRetryAt = &at
		r := reason
		rec.LastClassificationError = &r
	}
	return nil
}

type usersRepoMock struct {
	missing bool
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error { return nil }
func (m *usersRepoMock) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.missing {
		return nil, errorvalues.ErrUserNotFound
	}
	u := testUser
	return &u, nil
}
func (m *usersRepoMock) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	if m.missing {
		return nil, errorvalues.ErrUserNotFound
	}
	u := testUser
	return &u, nil
}
func (m *usersRepoMock) Delete(ctx context.Context, uid uuid.UUID) error { return nil }

type classifierMock struct {
	mu      sync.Mutex
	verdict *classifier.Verdict
	err     error
	calls   int
}

func (m *classifierMock) Classify(ctx context.Context, req *classifier.Request) (*classifier.Verdict, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.verdict, nil
}

func (m *classifierMock) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newService(t *testing.T, repo *usageRepoMock, users *usersRepoMock, remote *classifierMock) *service.UsageService {
	t.Helper()
	serv := service.NewUsageService(repo, users, remote, nil)
	t.Cleanup(serv.Close)
	return serv
}

func TestLogUsageValidation(t *testing.T) {
	serv := newService(t, newUsageRepoMock(), &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})
	ctx := context.Background()

	_, err := serv.LogUsage(ctx, &testUser, testDate, &service.LogUsageRequest{AppName: "", Minutes: 10})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidAppName)

	_, err = serv.LogUsage(ctx, &testUser, testDate, &service.LogUsageRequest{AppName: "Chrome", Minutes: 0})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidMinutes)

	_, err = serv.LogUsage(ctx, &testUser, testDate, &service.LogUsageRequest{AppName: "Chrome", Minutes: -5})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidMinutes)
}

func TestLogUsageAccumulatesOnIdentity(t *testing.T) {
	repo := newUsageRepoMock()
	serv := newService(t, repo, &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})
	ctx := context.Background()

	_, err := serv.LogUsage(ctx, &testUser, testDate, &service.LogUsageRequest{AppName: "Chrome", Minutes: 10})
	require.NoError(t, err)
	rec, err := serv.LogUsage(ctx, &testUser, testDate, &service.LogUsageRequest{AppName: "Chrome", Minutes: 15})
	require.NoError(t, err)

	assert.Equal(t, 25, rec.MinutesUsed)
	repo.mu.Lock()
	assert.Len(t, repo.records, 1)
	repo.mu.Unlock()
}

func TestLogUsageHeuristicFastPath(t *testing.T) {
	repo := newUsageRepoMock()
	serv := newService(t, repo, &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})

	rec, err := serv.LogUsage(context.Background(), &testUser, testDate, &service.LogUsageRequest{AppName: "VS Code", Minutes: 30})
	require.NoError(t, err)

	require.NotNil(t, rec.IsProductive)
	assert.True(t, *rec.IsProductive)
	assert.Equal(t, 60, rec.ProductivityScore)
	repo.mu.Lock()
	require.NotEmpty(t, repo.verdicts)
	assert.Equal(t, appliedVerdict{AppName: "VS Code", IsProductive: true, Score: 60}, repo.verdicts[0])
	repo.mu.Unlock()
}

func TestLogUsageRemoteVerdictPersisted(t *testing.T) {
	repo := newUsageRepoMock()
	unproductive := false
	remote := &classifierMock{verdict: &classifier.Verdict{IsProductive: &unproductive, Confidence: 0.9}}
	serv := newService(t, repo, &usersRepoMock{}, remote)

	_, err := serv.LogUsage(context.Background(), &testUser, testDate, &service.LogUsageRequest{AppName: "Chrome", Minutes: 10})
	require.NoError(t, err)
	serv.Close()

	rec, err := repo.Get(context.Background(), testUID, testDate, "Chrome")
	require.NoError(t, err)
	require.NotNil(t, rec.IsProductive)
	assert.False(t, *rec.IsProductive)
	assert.Equal(t, 90, rec.ProductivityScore)
}

func TestLogUsageRemoteFailureNeverSurfaces(t *testing.T) {
	repo := newUsageRepoMock()
	serv := newService(t, repo, &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})

	rec, err := serv.LogUsage(context.Background(), &testUser, testDate, &service.LogUsageRequest{AppName: "Chrome", Minutes: 10})
	require.NoError(t, err)
	assert.Nil(t, rec.IsProductive)
	serv.Close()

	// The failed remote attempt is recorded on the record, not returned
	repo.mu.Lock()
	require.Len(t, repo.attempts, 1)
	assert.Equal(t, "Chrome", repo.attempts[0].AppName)
	repo.mu.Unlock()
	after, err := repo.Get(context.Background(), testUID, testDate, "Chrome")
	require.NoError(t, err)
	assert.Nil(t, after.IsProductive)
	assert.Equal(t, 1, after.ClassificationAttempts)
	require.NotNil(t, after.NextRetryAt)
	assert.WithinDuration(t, time.Now().Add(time.Minute), *after.NextRetryAt, 5*time.Second)
}

func TestClassifyRemoteAwaited(t *testing.T) {
	repo := newUsageRepoMock()
	productive := true
	remote := &classifierMock{verdict: &classifier.Verdict{IsProductive: &productive, Confidence: 0.8}}
	serv := newService(t, repo, &usersRepoMock{}, remote)
	require.NoError(t, repo.Accumulate(context.Background(), testUID, testDate, "Blender", 10, nil))

	result, err := serv.Classify(context.Background(), &testUser, testDate, "Blender", nil)
	require.NoError(t, err)
	require.NotNil(t, result.IsProductive)
	assert.True(t, *result.IsProductive)
	assert.Equal(t, 0.8, result.Confidence)

	rec, err := repo.Get(context.Background(), testUID, testDate, "Blender")
	require.NoError(t, err)
	require.NotNil(t, rec.IsProductive)
	assert.Equal(t, 80, rec.ProductivityScore)
}

func TestClassifyFallsBackToHeuristic(t *testing.T) {
	serv := newService(t, newUsageRepoMock(), &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})

	result, err := serv.Classify(context.Background(), &testUser, testDate, "reddit", nil)
	require.NoError(t, err)
	require.NotNil(t, result.IsProductive)
	assert.False(t, *result.IsProductive)
	assert.Equal(t, 0.6, result.Confidence)

	undecided, err := serv.Classify(context.Background(), &testUser, testDate, "Chrome", nil)
	require.NoError(t, err)
	assert.Nil(t, undecided.IsProductive)
	assert.Equal(t, 0.0, undecided.Confidence)
}

func TestResolveRecordSchedulesRetryWithBackoff(t *testing.T) {
	repo := newUsageRepoMock()
	serv := newService(t, repo, &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})
	ctx := context.Background()
	require.NoError(t, repo.Accumulate(ctx, testUID, testDate, "Chrome", 10, nil))
	repo.mu.Lock()
	repo.records["Chrome"].ClassificationAttempts = 2
	repo.mu.Unlock()

	rec, err := repo.Get(ctx, testUID, testDate, "Chrome")
	require.NoError(t, err)
	require.NoError(t, serv.ResolveRecord(ctx, rec))

	repo.mu.Lock()
	require.Len(t, repo.attempts, 1)
	// Third attempt backs off four minutes
	assert.WithinDuration(t, time.Now().Add(4*time.Minute), repo.attempts[0].RetryAt, 5*time.Second)
	assert.NotEmpty(t, repo.attempts[0].Reason)
	repo.mu.Unlock()
}

func TestResolveRecordSkipsDeletedOwner(t *testing.T) {
	repo := newUsageRepoMock()
	remote := &classifierMock{err: errorvalues.ErrClassifierUnavailable}
	serv := newService(t, repo, &usersRepoMock{missing: true}, remote)

	rec := &entity.UsageRecord{UserID: testUID, Date: testDate, AppName: "Chrome"}
	require.NoError(t, serv.ResolveRecord(context.Background(), rec))
	assert.Equal(t, 0, remote.callCount())
}

func TestDayUsageBreakdown(t *testing.T) {
	repo := newUsageRepoMock()
	serv := newService(t, repo, &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})
	ctx := context.Background()
	require.NoError(t, repo.Accumulate(ctx, testUID, testDate, "VS Code", 45, nil))
	require.NoError(t, repo.ApplyVerdict(ctx, testUID, testDate, "VS Code", true, 60))
	require.NoError(t, repo.Accumulate(ctx, testUID, testDate, "YouTube", 15, nil))
	require.NoError(t, repo.ApplyVerdict(ctx, testUID, testDate, "YouTube", false, 60))

	breakdown, err := serv.DayUsage(ctx, testUID, testDate)
	require.NoError(t, err)
	assert.Equal(t, 60, breakdown.TotalMinutes)
	assert.Equal(t, 45, breakdown.ProductiveMinutes)
	assert.Equal(t, 75, breakdown.ProductivityPercent)
	assert.Len(t, breakdown.Apps, 2)
}

func TestDayUsageEmptyDay(t *testing.T) {
	serv := newService(t, newUsageRepoMock(), &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})

	breakdown, err := serv.DayUsage(context.Background(), testUID, testDate)
	require.NoError(t, err)
	assert.Equal(t, 0, breakdown.TotalMinutes)
	assert.Equal(t, 0, breakdown.ProductivityPercent)
	assert.Empty(t, breakdown.Apps)
}

func TestWeeklyUsageAggregation(t *testing.T) {
	repo := newUsageRepoMock()
	serv := newService(t, repo, &usersRepoMock{}, &classifierMock{err: errorvalues.ErrClassifierUnavailable})
	ctx := context.Background()
	require.NoError(t, repo.Accumulate(ctx, testUID, testDate, "Figma", 90, nil))
	require.NoError(t, repo.ApplyVerdict(ctx, testUID, testDate, "Figma", true, 60))
	require.NoError(t, repo.Accumulate(ctx, testUID, testDate, "TikTok", 30, nil))
	require.NoError(t, repo.ApplyVerdict(ctx, testUID, testDate, "TikTok", false, 60))

	summary, err := serv.WeeklyUsage(ctx, testUID, "2026-02-23")
	require.NoError(t, err)
	assert.Equal(t, 120, summary.TotalMinutes)
	assert.Equal(t, 90, summary.ProductiveMinutes)
	assert.Equal(t, 75, summary.ProductivityPercent)
	assert.Len(t, summary.Apps, 2)
}
