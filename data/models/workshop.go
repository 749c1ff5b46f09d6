package models

// Workshop statuses. Normalization coerces anything else to upcoming.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
)

// Workshop is the canonical record for one offered session. Schedule/Date and
// Capacity/Seats are each one logical field exposed under two names, kept in
// sync for the two client generations; the normalizer enforces the mirroring.
type Workshop struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Instructor  string       `json:"instructor"`
	Duration    string       `json:"duration"`
	Schedule    string       `json:"schedule"`
	Date        string       `json:"date"`
	Thumbnail   string       `json:"thumbnail"`
	Capacity    int          `json:"capacity"`
	Seats       int          `json:"seats"`
	Enrolled    int          `json:"enrolled"`
	Status      string       `json:"status"`
	Registrants []Registrant `json:"registrants"`
	Materials   []Material   `json:"materials"`
}

// HasRegistrant reports whether email already appears on the roster.
func (w Workshop) HasRegistrant(email string) bool {
	for _, r := range w.Registrants {
		if r.Email == email {
			return true
		}
	}
	return false
}

// Registrant is a snapshot of a user taken at enrollment time. Later profile
// edits do not propagate back into it.
type Registrant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Tech  string `json:"tech"`
}

// Material is a supplementary resource belonging to exactly one workshop.
type Material struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Note  string `json:"note"`
}
