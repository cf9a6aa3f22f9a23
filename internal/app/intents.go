package app

import (
	"context"
	"fmt"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/api"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/platform/validate"
)

// loadIntents: el backend ya filtra (admin todas, usuario las suyas).
func (a *App) loadIntents(ctx context.Context, v *View, sc *Screen) error {
	items, err := Load(ctx, v, a.api.ListIntents)
	if err != nil {
		return err
	}
	sc.Intents = items
	return nil
}

func (a *App) loadIntent(ctx context.Context, v *View, sc *Screen) error {
	id := sc.Destination.IntentID
	item, err := Load(ctx, v, func(ctx context.Context) (intents.Intent, error) {
		return a.api.GetIntent(ctx, id)
	})
	if api.IsNotFound(err) {
		return &gone{to: nav.AdminIntents(), notice: "That adoption request no longer exists."}
	}
	if err != nil {
		return err
	}
	sc.Intent = &item
	return nil
}

// ChangeState lee la intención completa, cambia el estado y la reenvía
// (PUT). Dos admins editando a la vez: gana la última escritura.
func (a *App) ChangeState(ctx context.Context, id int, to intents.State) Screen {
	from := nav.IntentDetail(id)
	if sc, ok := a.guard(ctx, from, access.ActionEditIntentState); !ok {
		return sc
	}
	if !to.Valid() {
		return a.handleErr(ctx, a.screenFor(from), validate.FieldErr("estado", "Unknown state"), "")
	}

	v := a.Open(from)
	defer v.Close()

	current, err := Load(ctx, v, func(ctx context.Context) (intents.Intent, error) {
		return a.api.GetIntent(ctx, id)
	})
	if api.IsNotFound(err) {
		sc := a.Navigate(ctx, nav.AdminIntents())
		sc.Notice = "That adoption request no longer exists."
		return sc
	}
	if err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}
	if !current.State.CanTransition(to) {
		msg := fmt.Sprintf("Cannot move from %s to %s", current.State.Label(), to.Label())
		sc := a.screenFor(from)
		sc.Intent = &current
		return a.handleErr(ctx, sc, validate.FieldErr("estado", msg), "")
	}

	current.State = to
	// El PUT puede responder 204 sin cuerpo: la pantalla se recarga por id.
	if _, err := Load(ctx, v, func(ctx context.Context) (intents.Intent, error) {
		return a.api.UpdateIntent(ctx, current)
	}); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "estado")
	}

	sc := a.Navigate(ctx, from)
	if sc.Destination == from && sc.Intent != nil {
		sc.Notice = "State changed to " + to.Label() + "."
	}
	return sc
}

func (a *App) DeleteIntent(ctx context.Context, id int) Screen {
	from := nav.AdminIntents()
	if sc, ok := a.guard(ctx, from, access.ActionDeleteIntent); !ok {
		return sc
	}

	v := a.Open(from)
	defer v.Close()

	if err := Run(ctx, v, func(ctx context.Context) error { return a.api.DeleteIntent(ctx, id) }); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}
	sc := a.Navigate(ctx, from)
	sc.Notice = "Adoption request deleted."
	return sc
}
