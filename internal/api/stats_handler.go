package api

import (
	"log/slog"
	"net/http"

	"github.com/tasktrack-io/tasktrack/internal/api/shared"
	"github.com/tasktrack-io/tasktrack/internal/platform/logger"
	"github.com/tasktrack-io/tasktrack/internal/service/tasks"
)

// StatsHandler surfaces the reconciled task count.
type StatsHandler struct {
	taskService tasks.TaskService
	logger      *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(taskService tasks.TaskService, logger *slog.Logger) *StatsHandler {
	if taskService == nil {
		panic("taskService cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /stats requests. It returns whatever is currently
// cached after lazy initialization, not a fresh recount.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	count, err := h.taskService.TaskCount(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("serving task count", slog.Int64("count", count))
	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{TaskCount: count})
}
