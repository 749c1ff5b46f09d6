package main

import (
	"net/http"
	"strconv"

	"workshop-hub/data/apperr"
	"workshop-hub/data/models"
	"workshop-hub/data/workshops"
)

// workshopID resolves the id from the path-based route or, for the
// first-generation client, from the ?id query parameter. An unparseable id
// behaves like a miss, the way the original server treated NaN lookups.
func workshopID(r *http.Request) (int64, error) {
	idStr := r.PathValue("id")
	if idStr == "" {
		idStr = r.URL.Query().Get("id")
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, apperr.NotFound("Workshop not found")
	}
	return id, nil
}

func (app *application) listWorkshops(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := workshops.Filters{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Status:   query.Get("status"),
	}

	result, err := app.Workshops.List(filters)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, result, "workshops")
}

func (app *application) getWorkshop(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	workshop, err := app.Workshops.Get(id)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, workshop, "workshop")
}

func (app *application) createWorkshop(w http.ResponseWriter, r *http.Request) {
	var input models.WorkshopInput
	if err := app.ReadJSON(w, r, &input, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	workshop, err := app.Workshops.Create(input)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusCreated, workshop, "workshop")
}

func (app *application) updateWorkshop(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	var input models.WorkshopInput
	if err := app.ReadJSON(w, r, &input, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	workshop, err := app.Workshops.Update(id, input)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, workshop, "workshop")
}

func (app *application) deleteWorkshop(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	removed, err := app.Workshops.Delete(id)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, removed, "removed")
}

func (app *application) enroll(w http.ResponseWriter, r *http.Request) {
	var req models.EnrollRequest
	if err := app.ReadJSON(w, r, &req, false); err != nil {
		app.SendErrorJSON(w, http.StatusBadRequest, err)
		return
	}

	id, ok := models.IntFromAny(req.ID)
	if !ok {
		app.SendAppError(w, apperr.NotFound("Workshop not found"))
		return
	}

	workshop, err := app.Workshops.Enroll(int64(id), req.Email)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, workshop, "workshop")
}

func (app *application) listRegistrants(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	registrants, err := app.Workshops.Registrants(id)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, registrants, "registrants")
}

func (app *application) exportRegistrantsCSV(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	registrants, err := app.Workshops.Registrants(id)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(workshops.RegistrantsCSV(registrants)))
}

// listMaterials resolves the viewer from the email query parameter and
// applies the visibility rule: admins always, enrolled students once the
// workshop is completed.
func (app *application) listMaterials(w http.ResponseWriter, r *http.Request) {
	id, err := workshopID(r)
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	viewer, err := app.Users.FindByEmail(r.URL.Query().Get("email"))
	if err != nil {
		app.SendAppError(w, err)
		return
	}

	materials, err := app.Workshops.MaterialsFor(id, viewer)
	if err != nil {
		app.SendAppError(w, err)
		return
	}
	app.SendSuccessJSON(w, http.StatusOK, materials, "materials")
}
