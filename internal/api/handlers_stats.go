package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/being-saiful/productivity-tracker1/internal/error_values"
	"github.com/being-saiful/productivity-tracker1/internal/roadmap"
	"github.com/being-saiful/productivity-tracker1/pkg/httputil"
)

type StatsPatchRequest struct {
	Action  string   `json:"action"`
	Index   *int     `json:"index"`
	Minutes *float64 `json:"minutes"`
}

func (s *Server) StatsToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("stats today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	overview, err := s.statsService.GetToday(ctx, user, todayKey())
	if err != nil {
		logger.Error("stats today error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting today stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, overview)
	logger.Info("today stats provided")
}

func (s *Server) StatsPatch(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("stats patch error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StatsPatchRequest
	err = httputil.DecodeBody(r, &req)
	if err != nil {
		logger.Error("stats patch error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	switch req.Action {
	case "completeTask":
		if req.Index == nil {
			logger.Error("stats patch error: missing step index")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "index is required for completeTask", nil)
			return
		}
		overview, err := s.statsService.ToggleStep(ctx, user, todayKey(), *req.Index)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidStep):
				logger.Error("stats patch error: step index out of range")
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "step index out of range", nil)
			case errors.Is(err, errorvalues.ErrStatsNotFound):
				logger.Error("stats patch error: no stats for today")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "stats not found for today", nil)
			default:
				logger.Error("stats patch error: service error", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling step", nil)
			}
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, overview)
		logger.Info("checklist step toggled")
	case "addFocus":
		if req.Minutes == nil {
			logger.Error("stats patch error: missing minutes")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "minutes is required for addFocus", nil)
			return
		}
		stats, err := s.statsService.AddFocusMinutes(ctx, user, todayKey(), *req.Minutes)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidMinutes):
				logger.Error("stats patch error: non-positive minutes")
				httputil.WriteErrorResponse(w, http.StatusBadRequest, "minutes must be positive", nil)
			case errors.Is(err, errorvalues.ErrStatsNotFound):
				logger.Error("stats patch error: no stats for today")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "stats not found for today", nil)
			default:
				logger.Error("stats patch error: service error", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding focus minutes", nil)
			}
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"stats": stats})
		logger.Info("focus minutes added")
	default:
		logger.Error("stats patch error: unknown action")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid action", nil)
	}
}

func (s *Server) StatsHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("stats history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		logger.Error("stats history error: missing date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date is required", nil)
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		logger.Error("stats history error: malformed date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, logs, err := s.statsService.History(ctx, user.ID, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "No data for this date"})
			return
		}
		logger.Error("stats history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting history", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"stats":         stats,
		"activity_logs": logs,
	})
	logger.Info("history provided")
}

func (s *Server) Roadmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("roadmap error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"career_id": user.CareerID,
		"steps":     roadmap.Steps(user.CareerID),
	})
	logger.Info("roadmap provided")
}
