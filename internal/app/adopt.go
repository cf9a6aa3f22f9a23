package app

import (
	"context"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/api"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/nav"
)

// Adopt es la acción del detalle: solo navega al formulario. Sin sesión el
// resolver manda al login y recuerda el formulario.
func (a *App) Adopt(ctx context.Context, animalID int) Screen {
	if sc, ok := a.guard(ctx, nav.AnimalDetail(animalID), access.ActionAdopt); !ok {
		return sc
	}
	return a.Navigate(ctx, nav.AdoptionForm(animalID))
}

// SubmitIntent valida el formulario localmente; si falla no sale ninguna
// request.
func (a *App) SubmitIntent(ctx context.Context, d intents.Draft) Screen {
	from := nav.AdoptionForm(d.AnimalID)
	if sc, ok := a.guard(ctx, from, access.ActionSubmitIntent); !ok {
		return sc
	}
	if err := d.Validate(); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}

	userID := a.session.UserID()

	v := a.Open(from)
	defer v.Close()

	created, err := Load(ctx, v, func(ctx context.Context) (intents.Intent, error) {
		return a.api.CreateIntent(ctx, d.Intent(userID))
	})
	if api.IsNotFound(err) {
		sc := a.Navigate(ctx, nav.AnimalList())
		sc.Notice = "That animal is no longer available (it was already deleted)."
		return sc
	}
	if err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}

	a.log.Info("adoption intent submitted", map[string]any{"intent_id": created.ID, "animal_id": created.AnimalID})
	sc := a.Navigate(ctx, nav.MyIntents())
	sc.Notice = "Your adoption request was sent."
	return sc
}
