package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/being-saiful/productivity-tracker1/internal/api"
	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/internal/service"
	"github.com/being-saiful/productivity-tracker1/internal/service/mocks"
	"github.com/being-saiful/productivity-tracker1/pkg/entity"
	jwtservice "github.com/being-saiful/productivity-tracker1/pkg/jwt_service"
)

var (
	uid      = uuid.New()
	authUser = entity.User{
		ID:       uid,
		Name:     "test_user",
		Email:    "test@example.com",
		CareerID: "programmer",
	}
)

type serverMocks struct {
	users *mocks.MockUserServiceI
	usage *mocks.MockUsageServiceI
	stats *mocks.MockStatsServiceI
}

// expectAuth arms the single GetByID lookup the auth middleware
// performs for one authorized request.
func (m *serverMocks) expectAuth() {
	m.users.EXPECT().GetByID(gomock.Any(), uid).Return(&authUser, nil)
}

func newTestServer(t *testing.T) (*api.Server, *serverMocks, string) {
	ctrl := gomock.NewController(t)
	mocked := &serverMocks{
		users: mocks.NewMockUserServiceI(ctrl),
		usage: mocks.NewMockUsageServiceI(ctrl),
		stats: mocks.NewMockStatsServiceI(ctrl),
	}
	jwtService := jwtservice.New("test_secret")
	serv := api.New(&api.ServicesList{
		UserService:  mocked.users,
		UsageService: mocked.usage,
		StatsService: mocked.stats,
		JwtService:   jwtService,
	})
	token, err := jwtService.GenerateToken(&authUser)
	require.NoError(t, err)
	return serv, mocked, token
}

func doRequest(t *testing.T, serv *api.Server, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := sonic.ConfigDefault.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	serv.Handler().ServeHTTP(rr, req)
	return rr
}

func emptyOverview() *service.TodayOverview {
	return &service.TodayOverview{
		Stats:        &entity.DailyStats{ID: 1, UserID: uid, TotalTasks: 8},
		ActivityLogs: []*entity.ActivityLog{},
		AppUsage:     []*entity.UsageRecord{},
	}
}

func TestRegister(t *testing.T) {
	body := api.RegisterRequest{
		Name:     "test_user",
		Email:    "test@example.com",
		Password: "test_password",
		CareerID: "programmer",
	}
	testCases := []struct {
		Desc         string
		MockPrepFunc func(m *serverMocks)
		Code         int
	}{
		{
			Desc: "registered",
			MockPrepFunc: func(m *serverMocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&authUser, nil)
			},
			Code: http.StatusCreated,
		},
		{
			Desc: "user exists",
			MockPrepFunc: func(m *serverMocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Code: http.StatusConflict,
		},
		{
			Desc: "service error",
			MockPrepFunc: func(m *serverMocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("mocked error"))
			},
			Code: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			serv, m, _ := newTestServer(t)
			tc.MockPrepFunc(m)
			rr := doRequest(t, serv, http.MethodPost, "/api/v1/auth/register", "", body)
			assert.Equal(t, tc.Code, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	body := api.LoginRequest{Email: "test@example.com", Password: "test_password"}
	t.Run("logged in", func(t *testing.T) {
		serv, m, _ := newTestServer(t)
		m.users.EXPECT().Login(gomock.Any(), body.Email, body.Password).Return(&authUser, nil)
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp map[string]any
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, uid.String(), resp["uid"])
		assert.NotEmpty(t, resp["token"])
	})
	t.Run("unknown email", func(t *testing.T) {
		serv, m, _ := newTestServer(t)
		m.users.EXPECT().Login(gomock.Any(), body.Email, body.Password).Return(nil, errorvalues.ErrUserNotFound)
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("wrong password", func(t *testing.T) {
		serv, m, _ := newTestServer(t)
		m.users.EXPECT().Login(gomock.Any(), body.Email, body.Password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/auth/login", "", body)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		serv, _, _ := newTestServer(t)
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/today", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("malformed header", func(t *testing.T) {
		serv, _, _ := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/today", nil)
		req.Header.Set("Authorization", "nonsense")
		rr := httptest.NewRecorder()
		serv.Handler().ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.users.EXPECT().GetByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/today", token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("valid token", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.stats.EXPECT().GetToday(gomock.Any(), &authUser, gomock.Any()).Return(emptyOverview(), nil)
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/today", token, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestLogUsageHandler(t *testing.T) {
	body := api.LogUsageRequest{AppName: "VS Code", MinutesUsed: 30}
	t.Run("logged", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.usage.EXPECT().LogUsage(gomock.Any(), &authUser, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, user *entity.User, date string, req *service.LogUsageRequest) (*entity.UsageRecord, error) {
				assert.Equal(t, "VS Code", req.AppName)
				assert.Equal(t, 30, req.Minutes)
				return &entity.UsageRecord{
					UserID:      user.ID,
					Date:        date,
					AppName:     req.AppName,
					MinutesUsed: req.Minutes,
				}, nil
			})
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/usage/log", token, body)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp map[string]any
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, true, resp["success"])
		assert.Equal(t, "Logged 30 minutes for VS Code", resp["message"])
	})
	t.Run("invalid input", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.usage.EXPECT().LogUsage(gomock.Any(), &authUser, gomock.Any(), gomock.Any()).
			Return(nil, errorvalues.ErrInvalidMinutes)
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/usage/log", token, body)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.usage.EXPECT().LogUsage(gomock.Any(), &authUser, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("mocked error"))
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/usage/log", token, body)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestClassifyAppHandler(t *testing.T) {
	body := api.ClassifyRequest{AppName: "Blender"}
	t.Run("classified", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		productive := true
		m.expectAuth()
		m.usage.EXPECT().Classify(gomock.Any(), &authUser, gomock.Any(), "Blender", gomock.Nil()).
			Return(&service.ClassifyResult{AppName: "Blender", IsProductive: &productive, Confidence: 0.6}, nil)
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/usage/classify", token, body)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp service.ClassifyResult
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, "Blender", resp.AppName)
		require.NotNil(t, resp.IsProductive)
		assert.True(t, *resp.IsProductive)
	})
	t.Run("missing app name", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.usage.EXPECT().Classify(gomock.Any(), &authUser, gomock.Any(), "Blender", gomock.Nil()).
			Return(nil, errorvalues.ErrInvalidAppName)
		rr := doRequest(t, serv, http.MethodPost, "/api/v1/usage/classify", token, body)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestUsageTodayHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.usage.EXPECT().DayUsage(gomock.Any(), uid, gomock.Any()).
			Return(&service.UsageBreakdown{Apps: []service.AppShare{}}, nil)
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/usage/today", token, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.usage.EXPECT().DayUsage(gomock.Any(), uid, gomock.Any()).
			Return(nil, errors.New("mocked error"))
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/usage/today", token, nil)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestUsageWeeklyHandler(t *testing.T) {
	serv, m, token := newTestServer(t)
	m.expectAuth()
	m.usage.EXPECT().WeeklyUsage(gomock.Any(), uid, gomock.Any()).
		Return(&service.WeeklySummary{Apps: []service.WeeklyAppShare{}}, nil)
	rr := doRequest(t, serv, http.MethodGet, "/api/v1/usage/weekly", token, nil)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestStatsPatchHandler(t *testing.T) {
	index := 2
	minutes := 25.0
	t.Run("complete task", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.stats.EXPECT().ToggleStep(gomock.Any(), &authUser, gomock.Any(), index).
			Return(emptyOverview(), nil)
		rr := doRequest(t, serv, http.MethodPatch, "/api/v1/stats/today", token, api.StatsPatchRequest{
			Action: "completeTask",
			Index:  &index,
		})
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("complete task without index", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		rr := doRequest(t, serv, http.MethodPatch, "/api/v1/stats/today", token, api.StatsPatchRequest{
			Action: "completeTask",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("step out of range", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.stats.EXPECT().ToggleStep(gomock.Any(), &authUser, gomock.Any(), index).
			Return(nil, errorvalues.ErrInvalidStep)
		rr := doRequest(t, serv, http.MethodPatch, "/api/v1/stats/today", token, api.StatsPatchRequest{
			Action: "completeTask",
			Index:  &index,
		})
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("add focus", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.stats.EXPECT().AddFocusMinutes(gomock.Any(), &authUser, gomock.Any(), minutes).
			Return(&entity.DailyStats{ID: 1, UserID: uid, FocusedMinutes: 25}, nil)
		rr := doRequest(t, serv, http.MethodPatch, "/api/v1/stats/today", token, api.StatsPatchRequest{
			Action:  "addFocus",
			Minutes: &minutes,
		})
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("add focus without minutes", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		rr := doRequest(t, serv, http.MethodPatch, "/api/v1/stats/today", token, api.StatsPatchRequest{
			Action: "addFocus",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unknown action", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		rr := doRequest(t, serv, http.MethodPatch, "/api/v1/stats/today", token, api.StatsPatchRequest{
			Action: "resetEverything",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestStatsHistoryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.stats.EXPECT().History(gomock.Any(), uid, "2026-03-02").
			Return(&entity.DailyStats{ID: 1, UserID: uid, Date: "2026-03-02"}, []*entity.ActivityLog{}, nil)
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/history?date=2026-03-02", token, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("missing date", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/history", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("malformed date", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/history?date=03-02-2026", token, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("no data for date", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.stats.EXPECT().History(gomock.Any(), uid, "2020-01-01").
			Return(nil, nil, errorvalues.ErrStatsNotFound)
		rr := doRequest(t, serv, http.MethodGet, "/api/v1/stats/history?date=2020-01-01", token, nil)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp map[string]any
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
		assert.Equal(t, "No data for this date", resp["message"])
	})
}

func TestDeleteAccountHandler(t *testing.T) {
	body := api.DeleteAccountRequest{Password: "test_password"}
	t.Run("deleted", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.users.EXPECT().DeleteAccount(gomock.Any(), uid, body.Password).Return(nil)
		rr := doRequest(t, serv, http.MethodDelete, "/api/v1/user", token, body)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("wrong password", func(t *testing.T) {
		serv, m, token := newTestServer(t)
		m.expectAuth()
		m.users.EXPECT().DeleteAccount(gomock.Any(), uid, body.Password).
			Return(errorvalues.ErrWrongCredentials)
		rr := doRequest(t, serv, http.MethodDelete, "/api/v1/user", token, body)
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
}

func TestRoadmapHandler(t *testing.T) {
	serv, m, token := newTestServer(t)
	m.expectAuth()
	rr := doRequest(t, serv, http.MethodGet, "/api/v1/roadmap", token, nil)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp struct {
		CareerID string   `json:"career_id"`
		Steps    []string `json:"steps"`
	}
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp))
	assert.Equal(t, "programmer", resp.CareerID)
	assert.Len(t, resp.Steps, 8)
}
