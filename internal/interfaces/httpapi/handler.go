package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
	"github.com/askaralim/nba-stats-api-sub000/internal/usecase"
)

const scoreboardQueryLayout = "20060102"

type Handler struct {
	scoreboardService *usecase.ScoreboardService
	gameService       *usecase.GameService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	scoreboardService *usecase.ScoreboardService,
	gameService *usecase.GameService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scoreboardService: scoreboardService,
		gameService:       gameService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetScoreboard serves the day's games. A missing date defaults to today
// in UTC, matching what the upstream provider does.
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = time.Now().UTC().Format(scoreboardQueryLayout)
	}
	if err := h.validateRequest(ctx, scoreboardRequest{Date: date}); err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.scoreboardService.GetScoreboard(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get scoreboard failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID := strings.TrimSpace(r.PathValue("gameID"))
	if err := h.validateRequest(ctx, gameRequest{GameID: gameID}); err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.gameService.GetGame(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type scoreboardRequest struct {
	Date string `validate:"required,len=8,numeric"`
}

type gameRequest struct {
	GameID string `validate:"required,max=32"`
}
