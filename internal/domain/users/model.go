package users

import (
	"strings"
	"time"
	"unicode"

	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/platform/jsontime"
	"pawbuddy-client/internal/platform/validate"
)

// User es el perfil de una persona registrada.
type User struct {
	ID         int           `json:"id"`
	Name       string        `json:"nome"`
	BirthDate  jsontime.Date `json:"dataNascimento"`
	TaxID      string        `json:"nif"`
	Phone      string        `json:"telemovel"`
	Address    string        `json:"morada"`
	PostalCode string        `json:"codPostal"`
	Email      string        `json:"email"`
	Country    string        `json:"pais"`

	Intents []intents.Intent `json:"intencoesdeAdocao,omitempty"`
}

func (u User) Ref() intents.UserRef {
	return intents.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Normalize recorta espacios y pasa el email a minúsculas.
func (u User) Normalize() User {
	u.Name = strings.TrimSpace(u.Name)
	u.TaxID = strings.TrimSpace(u.TaxID)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Address = strings.TrimSpace(u.Address)
	u.PostalCode = strings.TrimSpace(u.PostalCode)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Country = strings.TrimSpace(u.Country)
	return u
}

// Validate revisa el perfil (registro y edición).
func (u User) Validate() error {
	v := &validate.Validator{}
	v.Required("nome", u.Name).MaxLen("nome", u.Name, 100).
		Required("email", u.Email).Email("email", u.Email).
		Required("nif", u.TaxID).
		Custom("nif", !digitsOnly(u.TaxID), "Must contain only digits").
		Required("telemovel", u.Phone).
		Required("morada", u.Address).
		Required("codPostal", u.PostalCode).
		Required("pais", u.Country).
		Custom("dataNascimento", u.BirthDate.IsZero(), "This field is required").
		Custom("dataNascimento", u.BirthDate.After(time.Now()), "Cannot be in the future")
	return v.Err()
}

func digitsOnly(s string) bool {
	for _, r := range strings.TrimSpace(s) {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
