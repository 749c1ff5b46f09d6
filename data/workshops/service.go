package workshops

import (
	"time"

	"workshop-hub/data/apperr"
	"workshop-hub/data/models"
	"workshop-hub/data/repository"
)

// Service owns the workshop rules: normalization on the way in, the
// enrollment ladder, lifecycle gating, and filtering. It is store-agnostic;
// hand it a MemRepo or a SqlRepo and the rules stay the same.
type Service struct {
	Repo repository.Repo
}

func NewService(repo repository.Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Get(id int64) (models.Workshop, error) {
	return s.Repo.GetWorkshopByID(id)
}

// Create builds a canonical record from a partial payload. The legacy admin
// form posts seats, newer clients post capacity; either lands on the single
// capacity field. The roster always starts empty regardless of input.
func (s *Service) Create(input models.WorkshopInput) (models.Workshop, error) {
	w := models.Workshop{
		Title:       deref(input.Title),
		Description: firstNonEmpty(input.Description, input.Desc),
		Category:    deref(input.Category),
		Instructor:  deref(input.Instructor),
		Duration:    deref(input.Duration),
		Schedule:    firstNonEmpty(input.Schedule, input.Date),
		Thumbnail:   deref(input.Thumbnail),
		Status:      deref(input.Status),
	}
	if seats, ok := models.IntFromAny(input.Seats); ok && seats > 0 {
		w.Capacity = seats
	} else if capacity, ok := models.IntFromAny(input.Capacity); ok && capacity > 0 {
		w.Capacity = capacity
	}
	if input.Materials != nil {
		w.Materials = *input.Materials
	}

	return s.Repo.CreateWorkshop(models.NormalizeWorkshop(w))
}

// Update merges the provided fields over the current record and
// renormalizes. The roster is always carried over from the current record
// and enrolled recomputed from it; update is never a mutation path for
// registrants. Status moves in either direction, but only the two known
// literals change it — anything else keeps the current value (and
// normalization then collapses non-completed to upcoming).
func (s *Service) Update(id int64, input models.WorkshopInput) (models.Workshop, error) {
	return s.Repo.MutateWorkshop(id, func(w *models.Workshop) error {
		merged := *w
		if input.Title != nil {
			merged.Title = *input.Title
		}
		if input.Description != nil {
			merged.Description = *input.Description
		}
		if input.Desc != nil && merged.Description == "" {
			merged.Description = *input.Desc
		}
		if input.Category != nil {
			merged.Category = *input.Category
		}
		if input.Instructor != nil {
			merged.Instructor = *input.Instructor
		}
		if input.Duration != nil {
			merged.Duration = *input.Duration
		}
		if input.Thumbnail != nil {
			merged.Thumbnail = *input.Thumbnail
		}
		if schedule := firstNonEmpty(input.Schedule, input.Date); schedule != "" {
			merged.Schedule = schedule
			merged.Date = schedule
		}
		if v := firstProvided(input.Capacity, input.Seats); v != nil {
			// invalid or non-positive input keeps the current capacity;
			// shrinking below the current enrollment is allowed and never
			// reconciled
			if n, ok := models.IntFromAny(v); ok && n > 0 {
				merged.Capacity = n
				merged.Seats = n
			}
		}
		switch deref(input.Status) {
		case models.StatusCompleted:
			merged.Status = models.StatusCompleted
		case models.StatusUpcoming:
			merged.Status = models.StatusUpcoming
		}
		if input.Materials != nil {
			merged.Materials = models.CleanMaterials(*input.Materials)
		}

		merged.Registrants = w.Registrants
		merged.Enrolled = len(w.Registrants)

		*w = models.NormalizeWorkshop(merged)
		return nil
	})
}

// Delete removes the workshop and returns it; its registrants and materials
// are discarded with it.
func (s *Service) Delete(id int64) (models.Workshop, error) {
	return s.Repo.DeleteWorkshop(id)
}

// Enroll runs the enrollment ladder for one user and one workshop:
// workshop must exist, must not be completed, the user must exist, must not
// already be on the roster, and a seat must be free (capacity 0 means
// unlimited). On success a snapshot of the user joins the roster and
// enrolled is recomputed. The checks and the append run under the store's
// workshop lock, so two racing requests cannot both take the last seat.
func (s *Service) Enroll(workshopID int64, email string) (models.Workshop, error) {
	// preliminary reads pin the failure order before any mutation attempt
	current, err := s.Repo.GetWorkshopByID(workshopID)
	if err != nil {
		return models.Workshop{}, err
	}
	if current.Status == models.StatusCompleted {
		return models.Workshop{}, apperr.InvalidState("Workshop already completed")
	}
	student, err := s.Repo.GetUserByEmail(email)
	if err != nil {
		return models.Workshop{}, err
	}

	return s.Repo.MutateWorkshop(workshopID, func(w *models.Workshop) error {
		if w.Status == models.StatusCompleted {
			return apperr.InvalidState("Workshop already completed")
		}
		if w.HasRegistrant(student.Email) {
			return apperr.Conflict("Already enrolled")
		}
		if w.Capacity > 0 && len(w.Registrants) >= w.Capacity {
			return apperr.CapacityExceeded("Workshop full")
		}

		w.Registrants = append(w.Registrants, models.Registrant{
			Name:  student.Name,
			Email: student.Email,
			Phone: student.Phone,
			Tech:  w.Category,
		})
		w.Enrolled = len(w.Registrants)
		return nil
	})
}

// Registrants returns the roster for a workshop.
func (s *Service) Registrants(id int64) ([]models.Registrant, error) {
	w, err := s.Repo.GetWorkshopByID(id)
	if err != nil {
		return nil, err
	}
	return w.Registrants, nil
}

// MaterialsFor applies the visibility rule: admins always see materials,
// students only once the workshop is completed and only when they are on
// its roster.
func (s *Service) MaterialsFor(id int64, viewer models.SafeUser) ([]models.Material, error) {
	w, err := s.Repo.GetWorkshopByID(id)
	if err != nil {
		return nil, err
	}
	if viewer.Role == models.RoleAdmin {
		return w.Materials, nil
	}
	if w.Status != models.StatusCompleted {
		return nil, apperr.InvalidState("Materials are available once the workshop is completed")
	}
	if !w.HasRegistrant(viewer.Email) {
		return nil, apperr.WrongRole("Materials are only available to enrolled students")
	}
	return w.Materials, nil
}

// ReviewsFor lists a workshop's reviews in insertion order. An unknown id
// yields an empty list, matching the legacy behavior.
func (s *Service) ReviewsFor(id int64) ([]models.Review, error) {
	return s.Repo.ListReviewsByWorkshop(id)
}

// AddReview appends a review to an existing workshop, stamped at insertion.
func (s *Service) AddReview(id int64, input models.ReviewInput) (models.Review, error) {
	if _, err := s.Repo.GetWorkshopByID(id); err != nil {
		return models.Review{}, err
	}
	if err := models.ValidateRequest(input); err != nil {
		return models.Review{}, apperr.Validation("An author and a rating from 1 to 5 are required")
	}

	return s.Repo.AppendReview(models.Review{
		WorkshopID: id,
		Author:     input.Author,
		Rating:     input.Rating,
		Text:       input.Text,
		Date:       time.Now().UTC(),
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func firstProvided(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
