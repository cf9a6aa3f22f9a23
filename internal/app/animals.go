package app

import (
	"context"
	"fmt"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/api"
	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/nav"
)

// homeFeatured es cuántos animales muestra la portada.
const homeFeatured = 6

func (a *App) loadHome(ctx context.Context, v *View, sc *Screen) error {
	items, err := Load(ctx, v, a.api.ListAnimals)
	if err != nil {
		return err
	}
	if len(items) > homeFeatured {
		items = items[:homeFeatured]
	}
	sc.Animals = items
	return nil
}

func (a *App) loadAnimalList(ctx context.Context, v *View, sc *Screen) error {
	items, err := Load(ctx, v, a.api.ListAnimals)
	if err != nil {
		return err
	}
	sc.Animals = items
	return nil
}

// loadAnimal sirve al detalle, al formulario de adopción y a la edición. Un
// 404 no es un error: el animal ya se borró.
func (a *App) loadAnimal(ctx context.Context, v *View, sc *Screen) error {
	id := sc.Destination.AnimalID
	item, err := Load(ctx, v, func(ctx context.Context) (animals.Animal, error) {
		return a.api.GetAnimal(ctx, id)
	})
	if api.IsNotFound(err) {
		return &gone{to: nav.AnimalList(), notice: "That animal is no longer available (it was already deleted)."}
	}
	if err != nil {
		return err
	}
	sc.Animal = &item
	return nil
}

// SaveAnimal es el submit de AnimalForm: alta si id == 0, edición si no. La
// validación (imagen obligatoria en alta, JPEG) corre antes de la red.
func (a *App) SaveAnimal(ctx context.Context, id int, f animals.Form) Screen {
	from := nav.AnimalForm(id)
	act := access.ActionEditAnimal
	if id == 0 {
		act = access.ActionCreateAnimal
	}
	if sc, ok := a.guard(ctx, from, act); !ok {
		return sc
	}
	if err := f.Validate(id == 0); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}

	v := a.Open(from)
	defer v.Close()

	saved, err := Load(ctx, v, func(ctx context.Context) (animals.Animal, error) {
		if id == 0 {
			return a.api.CreateAnimal(ctx, f)
		}
		return a.api.UpdateAnimal(ctx, id, f)
	})
	if api.IsNotFound(err) {
		sc := a.Navigate(ctx, nav.AnimalList())
		sc.Notice = "That animal is no longer available (it was already deleted)."
		return sc
	}
	if err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}

	// Sin cuerpo en la respuesta (204) se usa lo que ya se tiene.
	if saved.ID == 0 {
		saved.ID = id
	}
	if saved.Name == "" {
		saved.Name = f.Name
	}
	if saved.ID == 0 {
		sc := a.Navigate(ctx, nav.AnimalList())
		sc.Notice = fmt.Sprintf("%s was added.", saved.Name)
		return sc
	}

	sc := a.Navigate(ctx, nav.AnimalDetail(saved.ID))
	if sc.Destination.Screen != nav.ScreenAnimalDetail {
		return sc
	}
	if id == 0 {
		sc.Notice = fmt.Sprintf("%s was added.", saved.Name)
	} else {
		sc.Notice = fmt.Sprintf("%s was updated.", saved.Name)
	}
	return sc
}

// DeleteAnimal borra y vuelve a la lista recargada. Si ya no existía cuenta
// como borrado.
func (a *App) DeleteAnimal(ctx context.Context, id int) Screen {
	from := nav.AnimalDetail(id)
	if sc, ok := a.guard(ctx, from, access.ActionDeleteAnimal); !ok {
		return sc
	}

	v := a.Open(from)
	defer v.Close()

	err := Run(ctx, v, func(ctx context.Context) error {
		return a.api.DeleteAnimal(ctx, id)
	})
	if err != nil {
		return a.handleErr(ctx, a.screenFor(nav.AnimalList()), err, "")
	}

	sc := a.Navigate(ctx, nav.AnimalList())
	sc.Notice = "Animal deleted."
	return sc
}
