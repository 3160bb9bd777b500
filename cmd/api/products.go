package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/zazianopizza/zaziano/internal/domain"
)

var ErrInvalidID = errors.New("invalid ID format")

// getProductsHandler godoc
//
//	@Summary		Get catalog
//	@Description	Returns the full menu grouped by section, sections in display order
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	map[string][]map[string]interface{}
//	@Failure		500	{object}	map[string]string
//	@Router			/products [get]
func (app *application) getProductsHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := app.catalogService.ListCatalog(r.Context())
	if err != nil {
		app.logger.Errorw("failed to load catalog", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Das Laden der Daten ist fehlgeschlagen")
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, catalog); err != nil {
		app.internalServerError(w, r, err)
	}
}

// saveProductsHandler godoc
//
//	@Summary		Replace catalog
//	@Description	Replaces the full menu; the body is a section-name to product-list object
//	@Tags			catalog
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/products [post]
func (app *application) saveProductsHandler(w http.ResponseWriter, r *http.Request) {
	catalog, err := domain.DecodeCatalog(r.Body)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	result, err := app.catalogService.ReplaceCatalog(r.Context(), catalog)
	if err != nil {
		app.logger.Errorw("failed to save catalog", "error", err)
		writeJsonError(w, http.StatusInternalServerError, "Daten konnten nicht gespeichert werden")
		return
	}

	response := map[string]any{
		"message": "Erfolgreich gespeichert",
		"created": result.Created,
		"updated": result.Updated,
		"failed":  result.Failed,
	}
	if len(result.Errors) > 0 {
		response["errors"] = result.Errors
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteProductHandler godoc
//
//	@Summary		Delete product
//	@Description	Removes one product by section and id
//	@Tags			catalog
//	@Produce		json
//	@Param			section		path		string	true	"Section name"
//	@Param			product_id	path		int		true	"Product ID"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/products/{section}/{product_id} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	if section == "" {
		app.badRequestResponse(w, r, errors.New("section is required"))
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.catalogService.DeleteProduct(r.Context(), section, productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			app.notFoundError(w, r, "Produkt nicht gefunden")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"message": "Erfolgreich gelöscht"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
