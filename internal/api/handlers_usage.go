package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/internal/service"
	"github.com/being-saiful/productivity-tracker1/pkg/httputil"
)

type LogUsageRequest struct {
	AppName     string  `json:"app_name"`
	MinutesUsed int     `json:"minutes_used"`
	Category    *string `json:"category"`
}

type ClassifyRequest struct {
	AppName  string  `json:"app_name"`
	Category *string `json:"category"`
}

// todayKey is the UTC day bucket all usage and stats rows key on.
func todayKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

func (s *Server) LogUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("log usage error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req LogUsageRequest
	err = httputil.DecodeBody(r, &req)
	if err != nil {
		logger.Error("log usage error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	rec, err := s.usageService.LogUsage(ctx, user, todayKey(), &service.LogUsageRequest{
		AppName:  req.AppName,
		Minutes:  req.MinutesUsed,
		Category: req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidAppName), errors.Is(err, errorvalues.ErrInvalidMinutes):
			logger.Error("log usage error: invalid input")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "app_name and positive minutes_used are required", nil)
		default:
			logger.Error("log usage error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging usage", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Logged %d minutes for %s", req.MinutesUsed, req.AppName),
		"app":     rec,
	})
	logger.Info("usage logged", slog.String("app", req.AppName))
}

func (s *Server) ClassifyApp(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("classify error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ClassifyRequest
	err = httputil.DecodeBody(r, &req)
	if err != nil {
		logger.Error("classify error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Manual reclassification awaits the remote call, so the timeout is
	// wider than for plain logging
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	result, err := s.usageService.Classify(ctx, user, todayKey(), req.AppName, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidAppName):
			logger.Error("classify error: missing app name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "app_name is required", nil)
		default:
			logger.Error("classify error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while classifying", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("app classified", slog.String("app", req.AppName))
}

func (s *Server) UsageToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("usage today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	breakdown, err := s.usageService.DayUsage(ctx, user.ID, todayKey())
	if err != nil {
		logger.Error("usage today error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting usage breakdown", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, breakdown)
	logger.Info("usage breakdown provided")
}

func (s *Server) UsageWeekly(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("usage weekly error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	fromDate := time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.usageService.WeeklyUsage(ctx, user.ID, fromDate)
	if err != nil {
		logger.Error("usage weekly error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting weekly summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("weekly summary provided")
}
