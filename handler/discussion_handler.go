// ABOUTME: HTTP trigger for a single discussion fetch and read access to the stored record
// ABOUTME: Infrastructure failures become AppContextError so the error handler hides details
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"discussion-fetcher/repository"
	"discussion-fetcher/service"
	apperrors "discussion-fetcher/utils/errors"
)

type DiscussionHandler struct {
	ingestion   service.DiscussionIngestionService
	discussions repository.DiscussionRepository
	logger      *slog.Logger
}

func NewDiscussionHandler(ingestion service.DiscussionIngestionService, discussions repository.DiscussionRepository, logger *slog.Logger) *DiscussionHandler {
	return &DiscussionHandler{
		ingestion:   ingestion,
		discussions: discussions,
		logger:      logger,
	}
}

// Fetch handles POST /api/v1/discussions/:content_id/fetch?cap=N.
// Fetch failures are reported in the body with 200; only storage failures are 5xx.
func (h *DiscussionHandler) Fetch(c echo.Context) error {
	ctx := c.Request().Context()

	contentID, err := contentIDParam(c, "Fetch")
	if err != nil {
		return err
	}

	commentCap := 0
	if raw := c.QueryParam("cap"); raw != "" {
		commentCap, err = strconv.Atoi(raw)
		if err != nil {
			return apperrors.NewValidationContextError("cap must be an integer", "handler", "DiscussionHandler", "Fetch",
				map[string]interface{}{"cap": raw})
		}
	}

	result, err := h.ingestion.FetchAndStoreDiscussion(ctx, contentID, commentCap)
	if err != nil {
		return apperrors.NewDatabaseContextError("failed to store discussion", "handler", "DiscussionHandler", "Fetch", err,
			map[string]interface{}{"content_id": contentID})
	}

	h.logger.InfoContext(ctx, "discussion fetch requested over http",
		"content_id", contentID,
		"status", result.Status,
		"success", result.Success)
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /api/v1/discussions/:content_id.
func (h *DiscussionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	contentID, err := contentIDParam(c, "Get")
	if err != nil {
		return err
	}

	record, err := h.discussions.FindByContentID(ctx, contentID)
	if err != nil {
		return apperrors.NewDatabaseContextError("failed to load discussion", "handler", "DiscussionHandler", "Get", err,
			map[string]interface{}{"content_id": contentID})
	}
	if record == nil {
		return apperrors.NewNotFoundContextError("discussion not found", "handler", "DiscussionHandler", "Get",
			map[string]interface{}{"content_id": contentID})
	}

	return c.JSON(http.StatusOK, discussionResponse{
		ContentID:    record.ContentID,
		Platform:     record.Platform,
		Status:       string(record.Status),
		Discussion:   record.Data,
		ErrorMessage: record.ErrorMessage,
		FetchedAt:    record.FetchedAt,
		UpdatedAt:    record.UpdatedAt,
	})
}

func contentIDParam(c echo.Context, operation string) (string, error) {
	raw := c.Param("content_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NewValidationContextError("content_id must be a UUID", "handler", "DiscussionHandler", operation,
			map[string]interface{}{"content_id": raw})
	}
	return id.String(), nil
}
