// internal/handlers/topic_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"vietcards/internal/model"
	"vietcards/internal/service"
	"vietcards/internal/webutil"
)

type TopicHandler struct {
	service service.TopicService
	logger  *slog.Logger
}

func NewTopicHandler(s service.TopicService, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{
		service: s,
		logger:  logger,
	}
}

// GetTopics lists the vocabulary CSV files available for loading.
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopics"))

	topics, err := h.service.ListTopics(r.Context())
	if err != nil {
		logger.Error("Error listing topics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// PostLoad loads one vocabulary file into the card store.
func (h *TopicHandler) PostLoad(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLoad"))

	var req model.TopicLoadRequest
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

	result, err := h.service.LoadTopic(r.Context(), req.Filename, req.ClearExisting)
	if err != nil {
		logger.Warn("Error loading topic in service", slog.Any("error", err), slog.String("filename", req.Filename))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topic loaded successfully",
		slog.String("filename", result.Filename),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("rejected", result.Rejected),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// PostSync loads every vocabulary file in the vocab directory.
func (h *TopicHandler) PostSync(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSync"))

	result, err := h.service.SyncAllTopics(r.Context())
	if err != nil {
		logger.Error("Error syncing topics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topics synced successfully", slog.Int("files", len(result.Files)), slog.Int("failures", len(result.Errors)))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
