package accounts

import (
	"time"

	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/platform/validate"
)

const MinPasswordLen = 6

// Account son las credenciales de un usuario. El perfil vive en users.
type Account struct {
	UserID       int
	Email        string
	PasswordHash []byte
	IsAdmin      bool
	CreatedAt    time.Time
}

// Session es una sesión de cookie.
type Session struct {
	ID        string
	UserID    int
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	v := &validate.Validator{}
	v.Required("email", r.Email).Email("email", r.Email).
		Required("password", r.Password)
	return v.Err()
}

// RegisterRequest es el perfil completo más la contraseña.
type RegisterRequest struct {
	users.User
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	errs := &validate.Error{}
	if ve, ok := validate.As(r.User.Normalize().Validate()); ok {
		errs.Fields = append(errs.Fields, ve.Fields...)
	}

	v := &validate.Validator{}
	v.Required("password", r.Password).MinLen("password", r.Password, MinPasswordLen)
	if ve, ok := validate.As(v.Err()); ok {
		errs.Fields = append(errs.Fields, ve.Fields...)
	}

	if len(errs.Fields) == 0 {
		return nil
	}
	return errs
}

// Identity es la respuesta de login/registro.
type Identity struct {
	ID      int    `json:"id"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
