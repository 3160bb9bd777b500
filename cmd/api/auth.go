package main

import (
	"errors"
	"net/http"

	"github.com/zazianopizza/zaziano/internal/auth"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// adminLoginHandler godoc
//
//	@Summary		Admin login
//	@Description	Checks the admin credentials and issues a bearer token
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdminLoginRequest	true	"Login request"
//	@Success		200		{object}	AdminLoginResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/admin/login [post]
func (app *application) adminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authenticator.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.unauthorizedResponse(w, r, "Falscher Benutzername oder falsches Passwort")
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, AdminLoginResponse{Success: true, Token: token}); err != nil {
		app.internalServerError(w, r, err)
	}
}
