package main

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const maxUploadSize = 10 << 20 // 10mb

// uploadImageHandler godoc
//
//	@Summary		Upload product image
//	@Description	Stores a product image and returns its public path
//	@Tags			catalog
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Image file"
//	@Param			id		formData	string	false	"Product ID used in the stored filename"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/upload-image [post]
func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJsonError(w, http.StatusBadRequest, "Bild nicht hochgeladen")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJsonError(w, http.StatusBadRequest, "Bild nicht hochgeladen")
		return
	}
	defer file.Close()

	// only a numeric product id goes into the filename; anything else
	// (including path fragments) falls back to a generated name
	name := r.FormValue("id")
	if _, err := strconv.ParseInt(name, 10, 64); err != nil {
		name = uuid.NewString()
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := "product-" + name + ext

	if err := os.MkdirAll(app.config.uploadDir, 0o755); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	dst, err := os.Create(filepath.Join(app.config.uploadDir, filename))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("image uploaded", "file", filename)

	if err := app.jsonRespone(w, http.StatusOK, map[string]string{"filePath": "/uploads/" + filename}); err != nil {
		app.internalServerError(w, r, err)
	}
}
