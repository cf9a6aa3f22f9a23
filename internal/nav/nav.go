// Package nav define los destinos de navegación tipados. Cada destino lleva
// exactamente los parámetros que su pantalla necesita; se construyen con los
// helpers de abajo y nunca a mano.
package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid id")

type Screen int

const (
	ScreenHome Screen = iota
	ScreenAnimalList
	ScreenAnimalDetail
	ScreenLogin
	ScreenRegister
	ScreenAdoptionForm
	ScreenMyIntents
	ScreenProfile

	// Pantallas de administración.
	ScreenAdminDashboard
	ScreenAnimalForm
	ScreenAdminUsers
	ScreenAdminIntents
	ScreenIntentDetail
	ScreenAdminAdoptions
)

var screenNames = map[Screen]string{
	ScreenHome:           "home",
	ScreenAnimalList:     "animals",
	ScreenAnimalDetail:   "animal",
	ScreenLogin:          "login",
	ScreenRegister:       "register",
	ScreenAdoptionForm:   "adopt",
	ScreenMyIntents:      "my-intents",
	ScreenProfile:        "profile",
	ScreenAdminDashboard: "admin",
	ScreenAnimalForm:     "animal-form",
	ScreenAdminUsers:     "admin-users",
	ScreenAdminIntents:   "admin-intents",
	ScreenIntentDetail:   "intent",
	ScreenAdminAdoptions: "admin-adoptions",
}

func (s Screen) String() string {
	if n, ok := screenNames[s]; ok {
		return n
	}
	return "screen(" + strconv.Itoa(int(s)) + ")"
}

// IsAdmin indica si la pantalla pertenece al área de administración.
func (s Screen) IsAdmin() bool {
	switch s {
	case ScreenAdminDashboard, ScreenAnimalForm, ScreenAdminUsers,
		ScreenAdminIntents, ScreenIntentDetail, ScreenAdminAdoptions:
		return true
	default:
		return false
	}
}

// RequiresLogin: pantallas de usuario que no tienen sentido sin sesión.
func (s Screen) RequiresLogin() bool {
	switch s {
	case ScreenAdoptionForm, ScreenMyIntents, ScreenProfile:
		return true
	default:
		return s.IsAdmin()
	}
}

// Destination es un intent de navegación. Solo el id relevante para Screen
// tiene valor; el resto queda en cero.
type Destination struct {
	Screen   Screen
	AnimalID int
	IntentID int
}

func Home() Destination           { return Destination{Screen: ScreenHome} }
func AnimalList() Destination     { return Destination{Screen: ScreenAnimalList} }
func Login() Destination          { return Destination{Screen: ScreenLogin} }
func Register() Destination       { return Destination{Screen: ScreenRegister} }
func MyIntents() Destination      { return Destination{Screen: ScreenMyIntents} }
func Profile() Destination        { return Destination{Screen: ScreenProfile} }
func AdminDashboard() Destination { return Destination{Screen: ScreenAdminDashboard} }
func AdminUsers() Destination     { return Destination{Screen: ScreenAdminUsers} }
func AdminIntents() Destination   { return Destination{Screen: ScreenAdminIntents} }
func AdminAdoptions() Destination { return Destination{Screen: ScreenAdminAdoptions} }

func AnimalDetail(animalID int) Destination {
	return Destination{Screen: ScreenAnimalDetail, AnimalID: animalID}
}

// AdoptionForm es el "adoptar" de un animal concreto.
func AdoptionForm(animalID int) Destination {
	return Destination{Screen: ScreenAdoptionForm, AnimalID: animalID}
}

// AnimalForm con animalID 0 es alta; > 0 es edición.
func AnimalForm(animalID int) Destination {
	return Destination{Screen: ScreenAnimalForm, AnimalID: animalID}
}

func IntentDetail(intentID int) Destination {
	return Destination{Screen: ScreenIntentDetail, IntentID: intentID}
}

// RequiresID indica si la pantalla necesita un recurso concreto.
func (d Destination) RequiresID() bool {
	switch d.Screen {
	case ScreenAnimalDetail, ScreenAdoptionForm, ScreenIntentDetail:
		return true
	default:
		return false
	}
}

// Validate rechaza ids ausentes o no positivos en pantallas que los exigen.
func (d Destination) Validate() error {
	switch d.Screen {
	case ScreenAnimalDetail, ScreenAdoptionForm:
		if d.AnimalID <= 0 {
			return fmt.Errorf("%w: %s needs an animal id", ErrInvalidID, d.Screen)
		}
	case ScreenIntentDetail:
		if d.IntentID <= 0 {
			return fmt.Errorf("%w: %s needs an intent id", ErrInvalidID, d.Screen)
		}
	case ScreenAnimalForm:
		if d.AnimalID < 0 {
			return fmt.Errorf("%w: %s needs a non-negative animal id", ErrInvalidID, d.Screen)
		}
	}
	return nil
}

// String es la forma persistible: "adopt:7", "home".
func (d Destination) String() string {
	switch d.Screen {
	case ScreenAnimalDetail, ScreenAdoptionForm, ScreenAnimalForm:
		if d.AnimalID != 0 {
			return d.Screen.String() + ":" + strconv.Itoa(d.AnimalID)
		}
	case ScreenIntentDetail:
		if d.IntentID != 0 {
			return d.Screen.String() + ":" + strconv.Itoa(d.IntentID)
		}
	}
	return d.Screen.String()
}

// Parse es el inverso de String.
func Parse(s string) (Destination, error) {
	name, rawID, hasID := strings.Cut(strings.TrimSpace(s), ":")

	var screen Screen
	found := false
	for k, v := range screenNames {
		if v == name {
			screen, found = k, true
			break
		}
	}
	if !found {
		return Destination{}, fmt.Errorf("nav: unknown screen %q", name)
	}

	id := 0
	if hasID {
		n, err := strconv.Atoi(rawID)
		if err != nil {
			return Destination{}, fmt.Errorf("nav: bad id in %q: %w", s, err)
		}
		id = n
	}

	d := Destination{Screen: screen}
	switch screen {
	case ScreenAnimalDetail, ScreenAdoptionForm, ScreenAnimalForm:
		d.AnimalID = id
	case ScreenIntentDetail:
		d.IntentID = id
	}
	return d, nil
}
