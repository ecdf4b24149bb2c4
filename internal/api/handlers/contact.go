package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chiroyli/salon-backend/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	_, err := h.contactService.Submit(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Service: req.Service,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("contact submission failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to submit form")
		return
	}

	respondJSON(w, http.StatusCreated, submitResponse{Success: true, Message: "Thank you for your message!"})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.contactService.ListSubmissions(r.Context())
	if err != nil {
		slog.Error("listing contact submissions failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to get submissions")
		return
	}

	respondJSON(w, http.StatusOK, submissions)
}

func (h *ContactHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	if _, err := h.contactService.Subscribe(r.Context(), req.Email); err != nil {
		slog.Error("newsletter subscription failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	respondJSON(w, http.StatusCreated, submitResponse{Success: true, Message: "Thank you for subscribing!"})
}
