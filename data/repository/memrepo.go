package repository

import (
	"sync"
	"time"

	"workshop-hub/data/apperr"
	"workshop-hub/data/models"
)

// MemRepo keeps every collection in process memory, insertion-ordered.
// State lives exactly as long as the process. One mutex serializes all
// operations, so a MutateWorkshop closure runs as a single atomic step even
// when the HTTP server handles requests on many goroutines.
type MemRepo struct {
	mu        sync.Mutex
	workshops []models.Workshop
	users     []models.User
	reviews   []models.Review
	nextID    int64
}

func NewMemRepo() *MemRepo {
	return &MemRepo{nextID: 1}
}

// CreateWorkshop assigns the next id and stores the record. Ids are
// monotonically increasing and never reused, even after deletes.
func (mr *MemRepo) CreateWorkshop(w models.Workshop) (models.Workshop, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	w.ID = mr.nextID
	mr.nextID++
	mr.workshops = append(mr.workshops, copyWorkshop(w))
	return w, nil
}

func (mr *MemRepo) GetWorkshopByID(id int64) (models.Workshop, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	i := mr.indexOfWorkshop(id)
	if i < 0 {
		return models.Workshop{}, apperr.NotFound("Workshop not found")
	}
	return copyWorkshop(mr.workshops[i]), nil
}

// ListWorkshops returns a fresh slice in insertion order. Callers can filter
// and reorder it freely without touching the store.
func (mr *MemRepo) ListWorkshops() ([]models.Workshop, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	out := make([]models.Workshop, len(mr.workshops))
	for i, w := range mr.workshops {
		out[i] = copyWorkshop(w)
	}
	return out, nil
}

func (mr *MemRepo) MutateWorkshop(id int64, fn func(w *models.Workshop) error) (models.Workshop, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	i := mr.indexOfWorkshop(id)
	if i < 0 {
		return models.Workshop{}, apperr.NotFound("Workshop not found")
	}

	if err := fn(&mr.workshops[i]); err != nil {
		return models.Workshop{}, err
	}
	return copyWorkshop(mr.workshops[i]), nil
}

// DeleteWorkshop removes the record and returns it. Registrants and
// materials go with it; the id is not reissued.
func (mr *MemRepo) DeleteWorkshop(id int64) (models.Workshop, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	i := mr.indexOfWorkshop(id)
	if i < 0 {
		return models.Workshop{}, apperr.NotFound("Workshop not found")
	}

	removed := mr.workshops[i]
	mr.workshops = append(mr.workshops[:i], mr.workshops[i+1:]...)
	return removed, nil
}

func (mr *MemRepo) CreateUser(u models.User) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for _, existing := range mr.users {
		if existing.Email == u.Email {
			return apperr.Conflict("Exists")
		}
	}
	mr.users = append(mr.users, u)
	return nil
}

func (mr *MemRepo) GetUserByEmail(email string) (models.User, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for _, u := range mr.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, apperr.NotFound("User not found")
}

func (mr *MemRepo) UpdateUser(u models.User) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	for i := range mr.users {
		if mr.users[i].Email == u.Email {
			mr.users[i] = u
			return nil
		}
	}
	return apperr.NotFound("User not found")
}

func (mr *MemRepo) AppendReview(r models.Review) (models.Review, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	mr.reviews = append(mr.reviews, r)
	return r, nil
}

func (mr *MemRepo) ListReviewsByWorkshop(workshopID int64) ([]models.Review, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	out := []models.Review{}
	for _, r := range mr.reviews {
		if r.WorkshopID == workshopID {
			out = append(out, r)
		}
	}
	return out, nil
}

// indexOfWorkshop must be called with the lock held.
func (mr *MemRepo) indexOfWorkshop(id int64) int {
	for i, w := range mr.workshops {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// copyWorkshop detaches the registrant and material slices so records handed
// out (or taken in) never alias store-internal memory.
func copyWorkshop(w models.Workshop) models.Workshop {
	if w.Registrants != nil {
		registrants := make([]models.Registrant, len(w.Registrants))
		copy(registrants, w.Registrants)
		w.Registrants = registrants
	}
	if w.Materials != nil {
		materials := make([]models.Material, len(w.Materials))
		copy(materials, w.Materials)
		w.Materials = materials
	}
	return w
}
