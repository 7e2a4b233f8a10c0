// Package settings, as part of the settings module.
// This file, `handlers.go`, handles HTTP requests for the settings record.
package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alpha0014/V-Nexus/apperror"
	"github.com/alpha0014/V-Nexus/auth"
)

// SettingsHandlers provides HTTP handlers for settings.
type SettingsHandlers struct {
	service *SettingsService
}

// NewSettingsHandlers creates new SettingsHandlers.
func NewSettingsHandlers(service *SettingsService) *SettingsHandlers {
	return &SettingsHandlers{service: service}
}

// RegisterRoutes registers the settings routes. The group is mounted behind
// the JWT middleware.
func (h *SettingsHandlers) RegisterRoutes(router chi.Router) {
	router.Get("/", h.getSettings)
	router.Put("/", h.saveSettings)
}

// getSettings godoc
// @Summary Get settings
// @Description Returns the settings record, with defaults applied for any field never saved.
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} settings.Settings "The settings record"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/settings [get]
func (h *SettingsHandlers) getSettings(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Load()
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}

// saveSettings godoc
// @Summary Save settings
// @Description Writes the settings record wholesale (last-write-wins, no merge with the stored record).
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settingsBody body settings.Settings true "The full settings record"
// @Success 200 {object} settings.Settings "The stored record"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Malformed payload"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /api/v1/settings [put]
func (h *SettingsHandlers) saveSettings(w http.ResponseWriter, r *http.Request) {
	// Decode over the defaults so a partial payload still produces a complete
	// record; the stored record is not consulted.
	record := DefaultSettings()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&record); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request payload", err))
		return
	}
	defer r.Body.Close()

	if err := h.service.Save(record); err != nil {
		auth.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(record)
}
