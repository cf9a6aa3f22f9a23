package app

import (
	"context"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/nav"
)

func (a *App) loadProfile(ctx context.Context, v *View, sc *Screen) error {
	me, err := Load(ctx, v, a.api.Me)
	if err != nil {
		return err
	}
	sc.User = &me
	sc.Intents = me.Intents

	adopted, err := Load(ctx, v, func(ctx context.Context) ([]animals.Animal, error) {
		return a.api.ListUserAnimals(ctx, me.ID)
	})
	if err != nil {
		return err
	}
	sc.Animals = adopted
	return nil
}

func (a *App) loadUsers(ctx context.Context, v *View, sc *Screen) error {
	items, err := Load(ctx, v, a.api.ListUsers)
	if err != nil {
		return err
	}
	sc.Users = items
	return nil
}

// UpdateProfile reemplaza el perfil propio. Un email repetido (409) queda
// como error del campo email.
func (a *App) UpdateProfile(ctx context.Context, u users.User) Screen {
	from := nav.Profile()
	if dec := access.Resolve(a.session.State(), from); dec.Redirected {
		return a.Navigate(ctx, from)
	}
	u = u.Normalize()
	if err := u.Validate(); err != nil {
		sc := a.screenFor(from)
		sc.User = &u
		return a.handleErr(ctx, sc, err, "")
	}

	v := a.Open(from)
	defer v.Close()

	if _, err := Load(ctx, v, func(ctx context.Context) (users.User, error) {
		return a.api.UpdateMe(ctx, u)
	}); err != nil {
		sc := a.screenFor(from)
		sc.User = &u
		return a.handleErr(ctx, sc, err, "email")
	}

	sc := a.Navigate(ctx, from)
	sc.Notice = "Profile saved."
	return sc
}

// DeleteUser recarga la lista. Borrarse a sí mismo no está permitido.
func (a *App) DeleteUser(ctx context.Context, id int) Screen {
	from := nav.AdminUsers()
	if sc, ok := a.guard(ctx, from, access.ActionDeleteUser); !ok {
		return sc
	}
	if id == a.session.UserID() {
		sc := a.Navigate(ctx, from)
		sc.Message = &Message{Text: "You cannot delete your own account."}
		return sc
	}

	v := a.Open(from)
	defer v.Close()

	if err := Run(ctx, v, func(ctx context.Context) error { return a.api.DeleteUser(ctx, id) }); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}
	sc := a.Navigate(ctx, from)
	sc.Notice = "User deleted."
	return sc
}
