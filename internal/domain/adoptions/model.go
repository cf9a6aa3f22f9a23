package adoptions

import (
	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/platform/jsontime"
)

// Adoption es el registro final, creado cuando una intención llega a
// Concluido. No se edita.
type Adoption struct {
	ID       int           `json:"id"`
	Date     jsontime.Date `json:"dataA"`
	UserID   int           `json:"utilizadorFK"`
	AnimalID int           `json:"animalFK"`

	User   *users.User     `json:"utilizador,omitempty"`
	Animal *animals.Animal `json:"animal,omitempty"`
}

func (a Adoption) UserName() string {
	if a.User != nil {
		return a.User.Name
	}
	return ""
}

func (a Adoption) AnimalName() string {
	if a.Animal != nil {
		return a.Animal.Name
	}
	return ""
}
