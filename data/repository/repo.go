package repository

import "workshop-hub/data/models"

// Repo is the storage contract shared by the in-memory store and the
// Postgres-backed store. The rules engine only ever talks to this interface,
// so a store swap never touches enrollment or lifecycle logic.
//
// MutateWorkshop runs fn on the stored record while the store holds its
// write lock (or row lock), which is what keeps check-then-append sequences
// atomic per workshop. fn must either mutate and return nil, or leave the
// record untouched and return the error.
type Repo interface {
	CreateWorkshop(w models.Workshop) (models.Workshop, error)
	GetWorkshopByID(id int64) (models.Workshop, error)
	ListWorkshops() ([]models.Workshop, error)
	MutateWorkshop(id int64, fn func(w *models.Workshop) error) (models.Workshop, error)
	DeleteWorkshop(id int64) (models.Workshop, error)

	CreateUser(u models.User) error
	GetUserByEmail(email string) (models.User, error)
	UpdateUser(u models.User) error

	AppendReview(r models.Review) (models.Review, error)
	ListReviewsByWorkshop(workshopID int64) ([]models.Review, error)
}
