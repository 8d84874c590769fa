package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/Eenot/shareit/internal/domain"
)

// User is the aggregate root for a registered user. The booking engine only
// needs it for identity comparison; the rest of the fields back the user CRUD.
type User struct {
	id        uuid.UUID
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a new user with validated fields.
func NewUser(name, email string) (*User, error) {
	if name == "" {
		return nil, domain.NewValidationError("user name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("user email is required")
	}

	now := time.Now().UTC()
	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id uuid.UUID, name, email string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Rename changes the user's display name. Empty names are ignored so partial
// updates can pass through untouched fields.
func (u *User) Rename(name string) {
	if name == "" {
		return
	}
	u.name = name
	u.updatedAt = time.Now().UTC()
}

// ChangeEmail changes the user's email address, ignoring empty input.
func (u *User) ChangeEmail(email string) {
	if email == "" {
		return
	}
	u.email = email
	u.updatedAt = time.Now().UTC()
}
