// Package access decide, para un estado de sesión y un destino pedido, a qué
// pantalla se llega de verdad y qué acciones se muestran.
//
// Es una función pura: no lee la sesión ni llama a la API. El que navega
// pasa la foto de session.State y aplica la Decision (por ejemplo, guardando
// ReturnTo en la sesión).
package access

import (
	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/session"
)

type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonInvalidID
	ReasonLoginRequired
	ReasonDenied
	ReasonAlreadyLoggedIn
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidID:
		return "invalid-id"
	case ReasonLoginRequired:
		return "login-required"
	case ReasonDenied:
		return "denied"
	case ReasonAlreadyLoggedIn:
		return "already-logged-in"
	default:
		return "none"
	}
}

type Decision struct {
	Requested   nav.Destination
	Destination nav.Destination
	Redirected  bool
	Reason      Reason

	// ReturnTo es el destino a recordar cuando la redirección es al login.
	ReturnTo    nav.Destination
	HasReturnTo bool

	Actions ActionSet
}

func (d Decision) Denied() bool { return d.Reason == ReasonDenied }

func (d Decision) Allowed() bool { return !d.Redirected }

// Resolve aplica la política en orden de precedencia.
func Resolve(st session.State, dest nav.Destination) Decision {
	if err := dest.Validate(); err != nil {
		safe := safeFallback(st, dest)
		inner := Resolve(st, safe)
		inner.Requested = dest
		if !inner.Redirected {
			inner.Reason = ReasonInvalidID
		}
		inner.Redirected = true
		return inner
	}

	if !st.LoggedIn && dest.Screen.RequiresLogin() {
		return redirect(st, dest, nav.Login(), ReasonLoginRequired, true)
	}
	if st.LoggedIn && !st.IsAdmin && dest.Screen.IsAdmin() {
		return redirect(st, dest, nav.Home(), ReasonDenied, false)
	}
	if st.LoggedIn && (dest.Screen == nav.ScreenLogin || dest.Screen == nav.ScreenRegister) {
		return redirect(st, dest, landing(st), ReasonAlreadyLoggedIn, false)
	}

	return Decision{
		Requested:   dest,
		Destination: dest,
		Actions:     actionsFor(st, dest),
	}
}

// AfterLogin elige dónde aterrizar después de un login exitoso: el destino
// recordado (resuelto otra vez con la sesión nueva) o la portada del rol.
func AfterLogin(st session.State, returnTo nav.Destination, ok bool) Decision {
	if ok && returnTo.Screen != nav.ScreenLogin && returnTo.Screen != nav.ScreenRegister {
		return Resolve(st, returnTo)
	}
	return Resolve(st, landing(st))
}

// landing es la portada del rol.
func landing(st session.State) nav.Destination {
	if st.IsAdminUser() {
		return nav.AdminDashboard()
	}
	return nav.Home()
}

func safeFallback(st session.State, dest nav.Destination) nav.Destination {
	switch dest.Screen {
	case nav.ScreenAnimalDetail, nav.ScreenAdoptionForm, nav.ScreenAnimalForm:
		return nav.AnimalList()
	case nav.ScreenIntentDetail:
		if st.IsAdminUser() {
			return nav.AdminIntents()
		}
		return nav.MyIntents()
	default:
		return nav.Home()
	}
}

func redirect(st session.State, requested, to nav.Destination, reason Reason, remember bool) Decision {
	d := Decision{
		Requested:   requested,
		Destination: to,
		Redirected:  true,
		Reason:      reason,
		Actions:     actionsFor(st, to),
	}
	if remember {
		d.ReturnTo = requested
		d.HasReturnTo = true
	}
	return d
}

func actionsFor(st session.State, dest nav.Destination) ActionSet {
	switch {
	case !st.LoggedIn:
		if dest.Screen == nav.ScreenAnimalDetail {
			return NewActionSet(ActionAdopt)
		}
		return 0
	case st.IsAdmin:
		return adminActions(dest).With(ActionLogout)
	default:
		return userActions(dest).With(ActionLogout)
	}
}

func userActions(dest nav.Destination) ActionSet {
	switch dest.Screen {
	case nav.ScreenAnimalDetail:
		return NewActionSet(ActionAdopt)
	case nav.ScreenAdoptionForm:
		return NewActionSet(ActionSubmitIntent)
	case nav.ScreenHome, nav.ScreenProfile, nav.ScreenMyIntents:
		return NewActionSet(ActionViewOwnIntents)
	default:
		return 0
	}
}

func adminActions(dest nav.Destination) ActionSet {
	switch dest.Screen {
	case nav.ScreenAnimalList, nav.ScreenAdminDashboard:
		return NewActionSet(ActionCreateAnimal, ActionEditAnimal, ActionDeleteAnimal)
	case nav.ScreenAnimalDetail:
		return NewActionSet(ActionEditAnimal, ActionDeleteAnimal)
	case nav.ScreenAnimalForm:
		if dest.AnimalID == 0 {
			return NewActionSet(ActionCreateAnimal)
		}
		return NewActionSet(ActionEditAnimal)
	case nav.ScreenAdminUsers:
		return NewActionSet(ActionDeleteUser)
	case nav.ScreenAdminIntents, nav.ScreenIntentDetail:
		return NewActionSet(ActionEditIntentState, ActionDeleteIntent)
	case nav.ScreenAdminAdoptions:
		return NewActionSet(ActionDeleteAdoption)
	default:
		return 0
	}
}
