package models

// WorkshopInput is the structured payload accepted by workshop create and
// update. Absence is meaningful on update (an absent field keeps the current
// value), hence the pointers. Capacity, Seats and Enrolled are decoded
// loosely because two generations of clients send them as JSON numbers or
// numeric strings; IntFromAny sorts it out and the normalizer defaults the
// rest. ID and Registrants are accepted so clients can echo whole records
// back, but are never trusted: IDs come from the store and the roster only
// ever changes through enrollment.
type WorkshopInput struct {
	ID          any         `json:"id"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Desc        *string     `json:"desc"`
	Category    *string     `json:"category"`
	Instructor  *string     `json:"instructor"`
	Duration    *string     `json:"duration"`
	Schedule    *string     `json:"schedule"`
	Date        *string     `json:"date"`
	Thumbnail   *string     `json:"thumbnail"`
	Capacity    any         `json:"capacity"`
	Seats       any         `json:"seats"`
	Enrolled    any         `json:"enrolled"`
	Status      *string     `json:"status"`
	Registrants any         `json:"registrants"`
	Materials   *[]Material `json:"materials"`
}

// RegisterRequest creates a directory account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required" json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginRequest checks credentials; Role, when set, must also match the
// account's role.
type LoginRequest struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
	Role     string `json:"role"`
}

// ProfileUpdateRequest mutates name and phone only; email identifies the
// account and everything else on the User is untouchable through this path.
type ProfileUpdateRequest struct {
	Email string `validate:"required" json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ReviewInput is the payload for appending a review to a workshop.
type ReviewInput struct {
	Author string `validate:"required" json:"author"`
	Rating int    `validate:"required,min=1,max=5" json:"rating"`
	Text   string `json:"text"`
}

// EnrollRequest enrolls the user identified by Email into workshop ID. The
// legacy client sends the id as a string, the newer one as a number.
type EnrollRequest struct {
	ID    any    `json:"id"`
	Email string `json:"email"`
}
