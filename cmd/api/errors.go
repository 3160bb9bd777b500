package main

import (
	"net/http"

	"github.com/zazianopizza/zaziano/internal/liefersoft"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path)

	writeJsonError(w, http.StatusNotFound, message)
}

func (app *application) unauthorizedResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path)

	writeJsonError(w, http.StatusUnauthorized, message)
}

// upstreamErrorResponse relays a partner API failure with its original status
// and body so the storefront can show what the partner said.
func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, upstream *liefersoft.UpstreamError) {
	app.logger.Errorw("upstream error", "method", r.Method, "path", r.URL.Path,
		"status", upstream.StatusCode, "body", upstream.Body)

	response := map[string]any{
		"error":   upstream.Message,
		"details": upstream.Body,
	}

	status := upstream.StatusCode
	if status < 400 {
		status = http.StatusBadGateway
	}

	_ = writeJson(w, status, response)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)
	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}
