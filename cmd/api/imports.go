package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/zazianopizza/zaziano/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// createImportTaskHandler godoc
//
//	@Summary		Create catalog import task
//	@Description	Queues a catalog import from a Google Sheet
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateImportTaskRequest	true	"Import task request"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/products/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.importService.CreateImportTask(r.Context(), req.SpreadsheetID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Description	Returns the status and counts of a catalog import task
//	@Tags			catalog
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.ImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/products/import/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "task_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.importService.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			app.notFoundError(w, r, "task not found")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
