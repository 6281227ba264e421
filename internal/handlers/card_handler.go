// internal/handlers/card_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"vietcards/internal/model"
	"vietcards/internal/service"
	"vietcards/internal/webutil"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// PostCard creates a new flashcard.
func (h *CardHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCard"))

	var req model.CreateCardRequest
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

	card, err := h.service.CreateCard(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card created successfully", slog.Uint64("card_id", uint64(card.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// GetCards lists cards, optionally filtered by category and paginated with
// skip/limit query parameters.
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))

	category := r.URL.Query().Get("category")
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 0)

	cards, err := h.service.ListCards(r.Context(), category, skip, limit)
	if err != nil {
		logger.Error("Error listing cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.Card{}
	}
	logger.Info("Cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// GetRandomCard picks a random card for a quiz round. The answer side is
// never included in the response.
func (h *CardHandler) GetRandomCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetRandomCard"))

	mode := model.QuizMode(r.URL.Query().Get("mode"))
	category := r.URL.Query().Get("category")

	card, err := h.service.GetRandomCard(r.Context(), mode, category)
	if err != nil {
		logger.Warn("Error picking random card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// GetCategories returns the distinct card categories.
func (h *CardHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategories"))

	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		logger.Error("Error listing categories in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if categories == nil {
		categories = []string{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, categories, logger)
}

// GetStats returns the aggregate quiz statistics.
func (h *CardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStats"))

	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		logger.Error("Error aggregating stats in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// PostResetMastery clears the mastered flag on all cards, or on one
// category when given.
func (h *CardHandler) PostResetMastery(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostResetMastery"))

	var req model.ResetMasteryRequest
	if r.ContentLength > 0 {
		if err := webutil.DecodeJSONBody(r, &req); err != nil {
			logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
			appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
	}

	count, err := h.service.ResetMastery(r.Context(), req.Category)
	if err != nil {
		logger.Error("Error resetting mastery in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Mastery reset successfully", slog.Int64("cards_reset", count))
	webutil.RespondWithJSON(w, http.StatusOK, model.ResetMasteryResponse{CardsReset: count}, logger)
}

// DeleteCards removes every card.
func (h *CardHandler) DeleteCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCards"))

	count, err := h.service.DeleteAllCards(r.Context())
	if err != nil {
		logger.Error("Error deleting cards in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Warn("All cards deleted", slog.Int64("cards_deleted", count))
	webutil.RespondWithJSON(w, http.StatusOK, model.DeleteCardsResponse{CardsDeleted: count}, logger)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
