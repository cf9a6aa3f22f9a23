package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/session"
)

var (
	anon  = session.Anonymous()
	user  = session.State{LoggedIn: true, UserID: 42}
	admin = session.State{LoggedIn: true, UserID: 1, IsAdmin: true}
)

func allDestinations() []nav.Destination {
	return []nav.Destination{
		nav.Home(), nav.AnimalList(), nav.AnimalDetail(7), nav.Login(), nav.Register(),
		nav.AdoptionForm(7), nav.MyIntents(), nav.Profile(), nav.AdminDashboard(),
		nav.AnimalForm(0), nav.AnimalForm(3), nav.AdminUsers(), nav.AdminIntents(),
		nav.IntentDetail(11), nav.AdminAdoptions(),
		// ids inválidos
		nav.AnimalDetail(0), nav.AdoptionForm(-1), nav.IntentDetail(0), nav.AnimalForm(-2),
	}
}

func TestResolve_AnonymousNeverSeesMutatingActions(t *testing.T) {
	for _, d := range allDestinations() {
		dec := Resolve(anon, d)
		assert.False(t, dec.Actions.AnyMutating(), d.String())
		assert.False(t, dec.Destination.Screen.IsAdmin(), d.String())
	}
}

func TestResolve_AnonymousAdminOrAdoptGoesToLogin(t *testing.T) {
	for _, d := range allDestinations() {
		if d.Validate() != nil {
			continue
		}
		if !d.Screen.IsAdmin() && d.Screen != nav.ScreenAdoptionForm {
			continue
		}
		dec := Resolve(anon, d)
		assert.Equal(t, nav.Login(), dec.Destination, d.String())
		assert.Equal(t, ReasonLoginRequired, dec.Reason)
		require.True(t, dec.HasReturnTo)
		assert.Equal(t, d, dec.ReturnTo)
	}
}

func TestResolve_AnonymousAdoptRemembersAnimal(t *testing.T) {
	dec := Resolve(anon, nav.AdoptionForm(7))
	assert.True(t, dec.Redirected)
	assert.Equal(t, nav.ScreenLogin, dec.Destination.Screen)
	assert.Equal(t, nav.AdoptionForm(7), dec.ReturnTo)

	detail := Resolve(anon, nav.AnimalDetail(7))
	assert.True(t, detail.Allowed())
	assert.True(t, detail.Actions.Has(ActionAdopt))
}

func TestResolve_ListScreensDeleteActions(t *testing.T) {
	lists := []nav.Destination{nav.AnimalList(), nav.AdminUsers(), nav.AdminIntents(), nav.AdminAdoptions()}

	for _, d := range lists {
		dec := Resolve(admin, d)
		assert.True(t, dec.Allowed(), d.String())
		assert.True(t, dec.Actions.AnyDelete(), d.String())
	}
	for _, d := range lists {
		dec := Resolve(user, d)
		assert.False(t, dec.Actions.AnyDelete(), d.String())
	}
}

func TestResolve_UserActions(t *testing.T) {
	tests := []struct {
		dest nav.Destination
		want ActionSet
	}{
		{nav.AnimalDetail(7), NewActionSet(ActionAdopt, ActionLogout)},
		{nav.AdoptionForm(7), NewActionSet(ActionSubmitIntent, ActionLogout)},
		{nav.Home(), NewActionSet(ActionViewOwnIntents, ActionLogout)},
		{nav.MyIntents(), NewActionSet(ActionViewOwnIntents, ActionLogout)},
		{nav.AnimalList(), NewActionSet(ActionLogout)},
	}
	for _, tt := range tests {
		t.Run(tt.dest.String(), func(t *testing.T) {
			dec := Resolve(user, tt.dest)
			assert.True(t, dec.Allowed())
			assert.Equal(t, tt.want, dec.Actions, dec.Actions.String())
		})
	}
}

func TestResolve_UserDeniedAdminScreens(t *testing.T) {
	for _, d := range allDestinations() {
		if !d.Screen.IsAdmin() || d.Validate() != nil {
			continue
		}
		dec := Resolve(user, d)
		assert.True(t, dec.Denied(), d.String())
		assert.Equal(t, nav.Home(), dec.Destination)
		assert.False(t, dec.HasReturnTo)
	}
}

func TestResolve_AdminActions(t *testing.T) {
	assert.Equal(t, NewActionSet(ActionCreateAnimal, ActionLogout), Resolve(admin, nav.AnimalForm(0)).Actions)
	assert.Equal(t, NewActionSet(ActionEditAnimal, ActionLogout), Resolve(admin, nav.AnimalForm(3)).Actions)
	assert.True(t, Resolve(admin, nav.IntentDetail(11)).Actions.Has(ActionEditIntentState))
	assert.False(t, Resolve(admin, nav.AnimalDetail(7)).Actions.Has(ActionAdopt))
}

func TestResolve_InvalidIDFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		st     session.State
		dest   nav.Destination
		want   nav.Destination
		reason Reason
	}{
		{"detail_zero", anon, nav.AnimalDetail(0), nav.AnimalList(), ReasonInvalidID},
		{"adopt_negative_user", user, nav.AdoptionForm(-1), nav.AnimalList(), ReasonInvalidID},
		{"intent_admin", admin, nav.IntentDetail(0), nav.AdminIntents(), ReasonInvalidID},
		{"intent_user", user, nav.IntentDetail(0), nav.MyIntents(), ReasonInvalidID},
		// fallback a MyIntents, que a su vez exige login
		{"intent_anon", anon, nav.IntentDetail(0), nav.Login(), ReasonLoginRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := Resolve(tt.st, tt.dest)
			assert.True(t, dec.Redirected)
			assert.Equal(t, tt.want, dec.Destination)
			assert.Equal(t, tt.reason, dec.Reason)
			assert.Equal(t, tt.dest, dec.Requested)
		})
	}
}

func TestResolve_LoggedInSkipsLogin(t *testing.T) {
	assert.Equal(t, nav.Home(), Resolve(user, nav.Login()).Destination)
	assert.Equal(t, nav.AdminDashboard(), Resolve(admin, nav.Register()).Destination)
	assert.Equal(t, ReasonAlreadyLoggedIn, Resolve(user, nav.Register()).Reason)
}

func TestAfterLogin(t *testing.T) {
	dec := AfterLogin(user, nav.AdoptionForm(7), true)
	assert.True(t, dec.Allowed())
	assert.Equal(t, nav.AdoptionForm(7), dec.Destination)
	assert.True(t, dec.Actions.Has(ActionSubmitIntent))

	assert.Equal(t, nav.Home(), AfterLogin(user, nav.Destination{}, false).Destination)
	assert.Equal(t, nav.AdminDashboard(), AfterLogin(admin, nav.Destination{}, false).Destination)
	assert.Equal(t, nav.AdminUsers(), AfterLogin(admin, nav.AdminUsers(), true).Destination)

	// Un usuario normal que venía de una pantalla admin termina en Home (denegado).
	denied := AfterLogin(user, nav.AdminUsers(), true)
	assert.True(t, denied.Denied())
	assert.Equal(t, nav.Home(), denied.Destination)

	assert.Equal(t, nav.Home(), AfterLogin(user, nav.Login(), true).Destination)
}

func TestActionSet(t *testing.T) {
	s := NewActionSet(ActionDeleteUser, ActionAdopt)
	assert.Equal(t, []Action{ActionAdopt, ActionDeleteUser}, s.List())
	assert.Equal(t, "adopt,delete-user", s.String())
	assert.True(t, s.AnyMutating())
	assert.False(t, NewActionSet(ActionAdopt, ActionLogout).AnyMutating())
	assert.True(t, ActionSet(0).Empty())
}
