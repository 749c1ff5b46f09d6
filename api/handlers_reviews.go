package main

import (
	"net/http"

	"workshop-hub/data/models"
)

func (app *application) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	reviews, err := app.Workshops.ReviewsFor(id)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, reviews, "reviews")
}

func (app *application) addReview(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	var input models.ReviewInput
	if err := app.ReadJSON(w, r, &input, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	review, err := app.Workshops.AddReview(id, input)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusCreated, review, "review")
}
