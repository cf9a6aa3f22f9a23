package app

import (
	"context"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/nav"
)

func (a *App) loadAdoptions(ctx context.Context, v *View, sc *Screen) error {
	items, err := Load(ctx, v, a.api.ListAdoptions)
	if err != nil {
		return err
	}
	sc.Adoptions = items
	return nil
}

func (a *App) DeleteAdoption(ctx context.Context, id int) Screen {
	from := nav.AdminAdoptions()
	if sc, ok := a.guard(ctx, from, access.ActionDeleteAdoption); !ok {
		return sc
	}

	v := a.Open(from)
	defer v.Close()

	if err := Run(ctx, v, func(ctx context.Context) error { return a.api.DeleteAdoption(ctx, id) }); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}
	sc := a.Navigate(ctx, from)
	sc.Notice = "Adoption deleted."
	return sc
}
