package main

import "net/http"

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", app.registerUser)
	mux.HandleFunc("POST /api/login", app.login)
	mux.HandleFunc("PUT /api/profile", app.updateProfile)

	mux.HandleFunc("GET /api/workshops", app.listWorkshops)
	mux.HandleFunc("GET /api/workshops/{id}", app.getWorkshop)
	mux.HandleFunc("POST /api/workshops", app.createWorkshop)
	mux.HandleFunc("PUT /api/workshops/{id}", app.updateWorkshop)
	mux.HandleFunc("DELETE /api/workshops/{id}", app.deleteWorkshop)

	// the first-generation client links workshop detail as /api/workshop?id=N;
	// it resolves through the same lookup as the path-based route
	mux.HandleFunc("GET /api/workshop", app.getWorkshop)

	mux.HandleFunc("POST /api/enroll", app.enroll)

	mux.HandleFunc("GET /api/workshops/{id}/reviews", app.listReviews)
	mux.HandleFunc("POST /api/workshops/{id}/reviews", app.addReview)

	mux.HandleFunc("GET /api/workshops/{id}/registrants", app.listRegistrants)
	mux.HandleFunc("GET /api/workshops/{id}/registrants/csv", app.exportRegistrantsCSV)
	mux.HandleFunc("GET /api/workshops/{id}/materials", app.listMaterials)

	var handler http.Handler = mux
	handler = app.enableCORS(handler)
	handler = app.logRequests(handler)
	handler = app.recoverPanic(handler)
	return handler
}
