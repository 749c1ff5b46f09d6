package users

import (
	"workshop-hub/data/apperr"
	"workshop-hub/data/models"
	"workshop-hub/data/repository"
)

// Directory is the user collaborator: account creation, the email/password
// equality check that passes for authentication here, and profile updates.
// Everything it hands back is a SafeUser; the plaintext password never
// leaves this package or the store.
type Directory struct {
	Repo repository.Repo
}

func NewDirectory(repo repository.Repo) *Directory {
	return &Directory{Repo: repo}
}

// Register creates an account. Role becomes admin only when explicitly
// requested; every other value registers a student.
func (d *Directory) Register(req models.RegisterRequest) (models.SafeUser, error) {
	if err := models.ValidateRequest(req); err != nil {
		return models.SafeUser{}, apperr.Validation("A valid email and a password are required")
	}

	role := models.RoleStudent
	if req.Role == models.RoleAdmin {
		role = models.RoleAdmin
	}
	name := req.Name
	if name == "" {
		name = "New User"
	}

	u := models.User{
		Name:     name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     role,
	}
	if err := d.Repo.CreateUser(u); err != nil {
		return models.SafeUser{}, err
	}
	return u.Safe(), nil
}

// Authenticate checks credentials by exact match. When the request names a
// role, the account must hold that role too.
func (d *Directory) Authenticate(req models.LoginRequest) (models.SafeUser, error) {
	u, err := d.Repo.GetUserByEmail(req.Email)
	if err != nil || u.Password != req.Password {
		return models.SafeUser{}, apperr.AuthFailure("Invalid email or password")
	}
	if req.Role != "" && u.Role != req.Role {
		return models.SafeUser{}, apperr.WrongRole("Wrong account type selected")
	}
	return u.Safe(), nil
}

// UpdateProfile replaces name and phone on the account identified by email.
// Password and role are untouchable through this path.
func (d *Directory) UpdateProfile(req models.ProfileUpdateRequest) (models.SafeUser, error) {
	u, err := d.Repo.GetUserByEmail(req.Email)
	if err != nil {
		return models.SafeUser{}, err
	}

	u.Name = req.Name
	u.Phone = req.Phone
	if err := d.Repo.UpdateUser(u); err != nil {
		return models.SafeUser{}, err
	}
	return u.Safe(), nil
}

// FindByEmail resolves an account to its safe view.
func (d *Directory) FindByEmail(email string) (models.SafeUser, error) {
	u, err := d.Repo.GetUserByEmail(email)
	if err != nil {
		return models.SafeUser{}, err
	}
	return u.Safe(), nil
}
