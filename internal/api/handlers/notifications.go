package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/chiroyli/salon-backend/internal/api/middleware"
	"github.com/chiroyli/salon-backend/internal/domain"
	"github.com/chiroyli/salon-backend/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.GetClaim(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notifications, err := h.notificationService.ListForUser(r.Context(), claim.Sub)
	if err != nil {
		slog.Error("listing notifications failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to get notifications")
		return
	}

	respondJSON(w, http.StatusOK, notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.GetClaim(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Notification not found")
		return
	}

	notification, err := h.notificationService.MarkRead(r.Context(), id, claim.Sub)
	if err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			respondError(w, http.StatusNotFound, "Notification not found")
			return
		}
		slog.Error("marking notification read failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}

	respondJSON(w, http.StatusOK, notification)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	claim, ok := middleware.GetClaim(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.notificationService.MarkAllRead(r.Context(), claim.Sub); err != nil {
		slog.Error("marking all notifications read failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to mark notifications as read")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
