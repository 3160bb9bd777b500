package main

import (
	"math"
	"net/http"

	"github.com/zazianopizza/zaziano/internal/domain"
)

type UpdateSettingsRequest struct {
	DeliveryFee *float64 `json:"deliveryFee" validate:"required"`
}

// getOpeningHoursHandler godoc
//
//	@Summary		Get opening hours
//	@Description	Returns the weekly opening-hours schedule
//	@Tags			config
//	@Produce		json
//	@Success		200	{object}	domain.WeekSchedule
//	@Failure		500	{object}	map[string]string
//	@Router			/opening-hours [get]
func (app *application) getOpeningHoursHandler(w http.ResponseWriter, r *http.Request) {
	hours, err := app.openingHoursRepo.Get(r.Context())
	if err != nil {
		app.logger.Errorw("failed to read opening hours", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Failed to read opening hours")
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, hours.Schedule); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOpeningHoursHandler godoc
//
//	@Summary		Update opening hours
//	@Description	Replaces the weekly schedule; all seven weekdays are required
//	@Tags			config
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.WeekSchedule	true	"Weekly schedule"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/opening-hours [put]
func (app *application) updateOpeningHoursHandler(w http.ResponseWriter, r *http.Request) {
	var schedule domain.WeekSchedule
	if err := readJson(w, r, &schedule); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := domain.ValidateWeekSchedule(schedule); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hours, err := app.openingHoursRepo.Update(r.Context(), schedule)
	if err != nil {
		app.logger.Errorw("failed to save opening hours", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Failed to write opening hours")
		return
	}

	response := map[string]any{
		"message":  "Updated successfully",
		"schedule": hours.Schedule,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSettingsHandler godoc
//
//	@Summary		Get settings
//	@Description	Returns the delivery-fee setting
//	@Tags			config
//	@Produce		json
//	@Success		200	{object}	domain.Settings
//	@Failure		500	{object}	map[string]string
//	@Router			/settings [get]
func (app *application) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := app.settingsRepo.Get(r.Context())
	if err != nil {
		app.logger.Errorw("failed to read settings", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Einstellungen konnten nicht abgerufen werden")
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, settings); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateSettingsHandler godoc
//
//	@Summary		Update settings
//	@Description	Sets the delivery fee, stored rounded to two decimal places
//	@Tags			config
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateSettingsRequest	true	"Settings update"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/settings [post]
func (app *application) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := readJson(w, r, &req); err != nil {
		writeJsonError(w, http.StatusBadRequest, "Bitte geben Sie einen gültigen Preis ein")
		return
	}

	if req.DeliveryFee == nil || math.IsNaN(*req.DeliveryFee) || math.IsInf(*req.DeliveryFee, 0) ||
		*req.DeliveryFee < 0 || *req.DeliveryFee > 999.99 {
		writeJsonError(w, http.StatusBadRequest, "Bitte geben Sie einen gültigen Preis ein")
		return
	}

	settings, err := app.settingsRepo.Update(r.Context(), *req.DeliveryFee)
	if err != nil {
		app.logger.Errorw("failed to save settings", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Einstellungen konnten nicht gespeichert werden")
		return
	}

	response := map[string]any{
		"success":  true,
		"settings": settings,
		"message":  "Einstellungen erfolgreich gespeichert",
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getGoogleMapsKeyHandler godoc
//
//	@Summary		Get Google Maps API key
//	@Description	Returns the configured map key for the storefront
//	@Tags			config
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/google-maps-key [get]
func (app *application) getGoogleMapsKeyHandler(w http.ResponseWriter, r *http.Request) {
	if app.config.googleMapsKey == "" {
		writeJsonError(w, http.StatusInternalServerError, "API key not configured")
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"key": app.config.googleMapsKey}); err != nil {
		app.internalServerError(w, r, err)
	}
}
