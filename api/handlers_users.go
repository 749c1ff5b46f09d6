package main

import (
	"net/http"

	"workshop-hub/data/models"
)

func (app *application) registerUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := app.ReadJSON(w, r, &req, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	user, err := app.Users.Register(req)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusCreated, user, "user")
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := app.ReadJSON(w, r, &req, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	user, err := app.Users.Authenticate(req)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, user, "user")
}

func (app *application) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdateRequest
	if err := app.ReadJSON(w, r, &req, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	user, err := app.Users.UpdateProfile(req)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, user, "user")
}
