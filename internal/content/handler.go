package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"contentdesk/internal/content/model"
	"contentdesk/internal/content/service"
	"contentdesk/internal/content/store"
	"contentdesk/pkg/logger"
)

type ContentHandler struct {
	Service *service.ContentService
}

func NewContentHandler(service *service.ContentService) *ContentHandler {
	return &ContentHandler{Service: service}
}

func (h *ContentHandler) GetContents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ListContents())
}

func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var fields model.ContentFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	content, err := h.Service.CreateContent(fields)
	if err != nil {
		writeContentError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(content)
}

func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentID := r.URL.Query().Get("contentId")
	if contentID == "" {
		http.Error(w, "Missing contentId parameter", http.StatusBadRequest)
		return
	}

	var fields model.ContentFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	content, err := h.Service.UpdateContent(contentID, fields)
	if err != nil {
		writeContentError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(content)
}

func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentID := r.URL.Query().Get("contentId")
	if contentID == "" {
		http.Error(w, "Missing contentId parameter", http.StatusBadRequest)
		return
	}

	// Deleting an unknown id is a no-op, so this always succeeds.
	h.Service.DeleteContent(contentID)

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Content deleted successfully"))
}

// writeContentError maps store errors onto status codes: validation
// failures carry the field-error map back as 422, unknown ids are 404,
// anything else is a server fault.
func writeContentError(w http.ResponseWriter, err error) {
	var validationErr *store.ValidationError
	if errors.As(err, &validationErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(model.ValidationResponse{Errors: validationErr.Fields})
		return
	}

	var notFoundErr *store.NotFoundError
	if errors.As(err, &notFoundErr) {
		http.Error(w, notFoundErr.Error(), http.StatusNotFound)
		return
	}

	logger.Sugar.Errorf("Handler: Unexpected content error: %v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
