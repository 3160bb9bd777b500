package main

import (
	"net/http"
	"path/filepath"
	"strings"
)

// spaHandler serves the storefront shell for every unmatched path. Paths under
// /data hold raw backing files and are never served.
func (app *application) spaHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/data") {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	http.ServeFile(w, r, filepath.Join(app.config.publicDir, "index.html"))
}
