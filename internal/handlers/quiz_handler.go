// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vietcards/internal/model"
	"vietcards/internal/service"
	"vietcards/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// PostCheck validates a quiz answer against the card.
func (h *QuizHandler) PostCheck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCheck"))

	var req model.CheckRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.CheckAnswer(r.Context(), &req)
	if err != nil {
		logger.Warn("Error checking answer in service", slog.Any("error", err), slog.Uint64("card_id", uint64(req.CardID)))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostGiveUp reveals the answer and records a failed attempt.
func (h *QuizHandler) PostGiveUp(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostGiveUp"))

	var req model.GiveUpRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GiveUp(r.Context(), req.CardID)
	if err != nil {
		logger.Warn("Error giving up in service", slog.Any("error", err), slog.Uint64("card_id", uint64(req.CardID)))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// PostHint returns a tiered hint without touching the card's counters.
func (h *QuizHandler) PostHint(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostHint"))

	var req model.HintRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.GetHint(r.Context(), req.CardID, req.HintLevel, req.Mode)
	if err != nil {
		logger.Warn("Error getting hint in service", slog.Any("error", err), slog.Uint64("card_id", uint64(req.CardID)))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
