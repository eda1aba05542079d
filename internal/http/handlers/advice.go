package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Bazz30/NRL/internal/advice"
	"github.com/Bazz30/NRL/internal/logging"
)

const adviceFailedMessage = "Failed to get advice from GPT."

// Advisor produces lineup advice for a team payload.
type Advisor interface {
	LineupAdvice(ctx context.Context, teamData json.RawMessage) (string, error)
}

// AdviceHandler serves lineup advice from a language model.
type AdviceHandler struct {
	advisor Advisor
	logger  *slog.Logger
}

// NewAdviceHandler constructs an AdviceHandler. advisor may be nil.
func NewAdviceHandler(advisor Advisor, logger *slog.Logger) *AdviceHandler {
	return &AdviceHandler{advisor: advisor, logger: logger}
}

type adviceRequest struct {
	TeamData json.RawMessage `json:"teamData"`
}

// LineupAdvice forwards {teamData} to the advisor and replies with {advice}.
func (h *AdviceHandler) LineupAdvice(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.advisor == nil {
		writeError(w, r, http.StatusServiceUnavailable, advice.ErrNotConfigured.Error(), logger)
		return
	}

	var req adviceRequest
	if err := decodeBody(r, &req); err != nil || len(req.TeamData) == 0 || string(req.TeamData) == "null" {
		writeError(w, r, http.StatusBadRequest, "teamData is required", logger)
		return
	}

	reply, err := h.advisor.LineupAdvice(r.Context(), req.TeamData)
	if err != nil {
		if errors.Is(err, advice.ErrNotConfigured) {
			writeError(w, r, http.StatusServiceUnavailable, err.Error(), logger)
			return
		}
		logging.Error(logger, "lineup advice failed", err)
		writeError(w, r, http.StatusInternalServerError, adviceFailedMessage, logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"advice": reply}, logger)
}
