package intents

import (
	"strings"

	"pawbuddy-client/internal/platform/jsontime"
	"pawbuddy-client/internal/platform/validate"
)

// Intent es una intención de adopción: un usuario pide adoptar un animal y
// un admin la hace avanzar de estado.
type Intent struct {
	ID         int                `json:"id"`
	State      State              `json:"estado"`
	Profession string             `json:"profissao"`
	Residence  string             `json:"residencia"`
	Reason     string             `json:"motivo"`
	HasPets    YesNo              `json:"temAnimais"`
	WhichPets  string             `json:"quaisAnimais"`
	CreatedAt  jsontime.Timestamp `json:"dataIA"`

	UserID   int `json:"utilizadorFK"`
	AnimalID int `json:"animalFK"`

	// Copias desnormalizadas para mostrar; el backend puede omitirlas.
	User   *UserRef   `json:"utilizador,omitempty"`
	Animal *AnimalRef `json:"animal,omitempty"`
}

// UserRef es lo mínimo de un usuario que se muestra junto a la intención.
type UserRef struct {
	ID    int    `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email,omitempty"`
}

type AnimalRef struct {
	ID      int    `json:"id"`
	Name    string `json:"nome"`
	Species string `json:"especie,omitempty"`
	Breed   string `json:"raca,omitempty"`
}

func (i Intent) UserName() string {
	if i.User != nil {
		return i.User.Name
	}
	return ""
}

func (i Intent) AnimalName() string {
	if i.Animal != nil {
		return i.Animal.Name
	}
	return ""
}

// Draft es lo que el usuario llena en el formulario de adopción.
// HasPets llega como texto libre ("sim", "yes", "nao"...).
type Draft struct {
	AnimalID   int
	Profession string
	Residence  string
	Reason     string
	HasPets    string
	WhichPets  string
}

// Validate corre antes de cualquier llamada de red.
func (d Draft) Validate() error {
	v := &validate.Validator{}
	v.Positive("animalFK", d.AnimalID).
		Required("profissao", d.Profession).
		MaxLen("profissao", d.Profession, 100).
		Required("residencia", d.Residence).
		MaxLen("residencia", d.Residence, 200).
		Required("motivo", d.Reason).
		MaxLen("motivo", d.Reason, 1000).
		Required("temAnimais", d.HasPets)

	if strings.TrimSpace(d.HasPets) != "" {
		hasPets, err := ParseYesNo(d.HasPets)
		v.Custom("temAnimais", err != nil, "Must be yes or no")
		if err == nil && bool(hasPets) {
			v.Required("quaisAnimais", d.WhichPets)
		}
	}
	return v.Err()
}

// Intent arma la entidad a enviar. Asume Validate() == nil.
func (d Draft) Intent(userID int) Intent {
	hasPets, _ := ParseYesNo(d.HasPets)
	which := strings.TrimSpace(d.WhichPets)
	if !hasPets {
		which = ""
	}
	return Intent{
		State:      StateReserved,
		Profession: strings.TrimSpace(d.Profession),
		Residence:  strings.TrimSpace(d.Residence),
		Reason:     strings.TrimSpace(d.Reason),
		HasPets:    hasPets,
		WhichPets:  which,
		UserID:     userID,
		AnimalID:   d.AnimalID,
	}
}

// Validate revisa una entidad completa (lado servidor y antes de un PUT).
func (i Intent) Validate() error {
	v := &validate.Validator{}
	v.Positive("animalFK", i.AnimalID).
		Positive("utilizadorFK", i.UserID).
		Required("profissao", i.Profession).
		Required("residencia", i.Residence).
		Required("motivo", i.Reason).
		Custom("estado", !i.State.Valid(), "Unknown state")
	if i.HasPets {
		v.Required("quaisAnimais", i.WhichPets)
	}
	return v.Err()
}
