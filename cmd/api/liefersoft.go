package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/zazianopizza/zaziano/internal/liefersoft"
)

// forwardToLiefersoftHandler godoc
//
//	@Summary		Forward order to Liefersoft
//	@Description	Logs in to the delivery partner and relays the raw order payload
//	@Tags			liefersoft
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/forward-to-liefersoft [post]
func (app *application) forwardToLiefersoftHandler(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !json.Valid(payload) {
		app.badRequestResponse(w, r, errors.New("request body must be valid JSON"))
		return
	}

	result, err := app.liefersoft.ForwardOrder(r.Context(), payload)
	if err != nil {
		var upstream *liefersoft.UpstreamError
		if errors.As(err, &upstream) {
			app.upstreamErrorResponse(w, r, upstream)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]any{
		"success": true,
		"message": "Request sent successfully",
		"data":    result.Data,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
