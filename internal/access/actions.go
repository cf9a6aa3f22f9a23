package access

import "strings"

type Action uint8

const (
	ActionAdopt Action = iota
	ActionSubmitIntent
	ActionViewOwnIntents
	ActionCreateAnimal
	ActionEditAnimal
	ActionDeleteAnimal
	ActionDeleteUser
	ActionEditIntentState
	ActionDeleteIntent
	ActionDeleteAdoption
	ActionLogout

	actionCount
)

var actionNames = [actionCount]string{
	ActionAdopt:           "adopt",
	ActionSubmitIntent:    "submit-intent",
	ActionViewOwnIntents:  "view-own-intents",
	ActionCreateAnimal:    "create-animal",
	ActionEditAnimal:      "edit-animal",
	ActionDeleteAnimal:    "delete-animal",
	ActionDeleteUser:      "delete-user",
	ActionEditIntentState: "edit-intent-state",
	ActionDeleteIntent:    "delete-intent",
	ActionDeleteAdoption:  "delete-adoption",
	ActionLogout:          "logout",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// Mutating: la acción cambia datos en el backend. Adopt solo navega al
// formulario, ViewOwnIntents solo lee y Logout solo toca la sesión local.
func (a Action) Mutating() bool {
	switch a {
	case ActionAdopt, ActionViewOwnIntents, ActionLogout:
		return false
	default:
		return a < actionCount
	}
}

// IsDelete agrupa los borrados de cualquier recurso.
func (a Action) IsDelete() bool {
	switch a {
	case ActionDeleteAnimal, ActionDeleteUser, ActionDeleteIntent, ActionDeleteAdoption:
		return true
	default:
		return false
	}
}

// ActionSet es un bitmask; el valor cero es el conjunto vacío.
type ActionSet uint32

func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s ActionSet) With(a Action) ActionSet {
	if a >= actionCount {
		return s
	}
	return s | 1<<a
}

func (s ActionSet) Has(a Action) bool {
	return a < actionCount && s&(1<<a) != 0
}

func (s ActionSet) Empty() bool { return s == 0 }

// List devuelve las acciones en orden estable.
func (s ActionSet) List() []Action {
	var out []Action
	for a := Action(0); a < actionCount; a++ {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

func (s ActionSet) AnyMutating() bool {
	for _, a := range s.List() {
		if a.Mutating() {
			return true
		}
	}
	return false
}

func (s ActionSet) AnyDelete() bool {
	for _, a := range s.List() {
		if a.IsDelete() {
			return true
		}
	}
	return false
}

func (s ActionSet) String() string {
	list := s.List()
	names := make([]string, 0, len(list))
	for _, a := range list {
		names = append(names, a.String())
	}
	return strings.Join(names, ",")
}
