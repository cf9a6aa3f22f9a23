package app

import (
	"context"

	"pawbuddy-client/internal/domain/intents"
)

// loadDashboard junta los conteos del panel. Son cuatro llamadas en serie
// dentro de una sola carga.
func (a *App) loadDashboard(ctx context.Context, v *View, sc *Screen) error {
	sum, err := Load(ctx, v, func(ctx context.Context) (Summary, error) {
		s := Summary{PendingByState: map[intents.State]int{}}

		list, err := a.api.ListAnimals(ctx)
		if err != nil {
			return s, err
		}
		s.Animals = len(list)

		us, err := a.api.ListUsers(ctx)
		if err != nil {
			return s, err
		}
		s.Users = len(us)

		its, err := a.api.ListIntents(ctx)
		if err != nil {
			return s, err
		}
		for _, i := range its {
			if i.State.Terminal() {
				s.ClosedIntents++
				continue
			}
			s.OpenIntents++
			s.PendingByState[i.State]++
		}

		ads, err := a.api.ListAdoptions(ctx)
		if err != nil {
			return s, err
		}
		s.Adoptions = len(ads)
		return s, nil
	})
	if err != nil {
		return err
	}
	sc.Summary = &sum
	return nil
}
