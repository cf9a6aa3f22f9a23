// Package router arma el backend de desarrollo: repos en memoria, servicios
// por módulo y las rutas REST que consume el cliente.
package router

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	mem "pawbuddy-client/internal/adapters/storage/memory"
	_ "pawbuddy-client/internal/docs"
	"pawbuddy-client/internal/domain/accounts"
	"pawbuddy-client/internal/domain/adoptions"
	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/middleware"
	"pawbuddy-client/internal/platform/jsontime"
	"pawbuddy-client/internal/platform/logger"
	"pawbuddy-client/internal/ports/auth"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Registry para /metrics. nil => uno nuevo por router (tests).
	Registry *prometheus.Registry

	// Cuenta admin sembrada al arrancar. Vacío => sin admin.
	AdminEmail    string
	AdminPassword string
}

// system es el actor interno para lookups entre módulos.
var system = auth.Claims{IsAdmin: true}

func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	// Los módulos se referencian entre sí; los hooks cierran sobre estas
	// variables y se resuelven en tiempo de llamada.
	var (
		intentsSvc   *intents.Service
		animalsSvc   *animals.Service
		usersSvc     *users.Service
		adoptionsSvc *adoptions.Service
		accountsSvc  *accounts.Service
	)

	usersSvc = users.NewService(mem.NewUserRepo(), users.Deps{
		IntentsOf: func(ctx context.Context, userID int) ([]intents.Intent, error) {
			return intentsSvc.ListByUser(ctx, userID)
		},
		OnDeleted: func(ctx context.Context, userID int) error {
			if err := intentsSvc.DeleteByUser(ctx, userID); err != nil {
				return err
			}
			return accountsSvc.DeleteUser(ctx, userID)
		},
	})

	animalsSvc = animals.NewService(mem.NewAnimalRepo(), mem.NewImageStore(), animals.Deps{
		AdoptedBy: func(ctx context.Context, userID int) ([]int, error) {
			return adoptionsSvc.AnimalIDsByUser(ctx, userID)
		},
		IntentsOf: func(ctx context.Context, animalID int) ([]intents.Intent, error) {
			return intentsSvc.ListByAnimal(ctx, animalID)
		},
		OnDeleted: func(ctx context.Context, animalID int) error {
			return intentsSvc.DeleteByAnimal(ctx, animalID)
		},
	})

	adoptionsSvc = adoptions.NewService(mem.NewAdoptionRepo(), adoptions.Deps{
		Animals: animalsSvc.GetByID,
		Users: func(ctx context.Context, id int) (users.User, error) {
			return usersSvc.GetByID(ctx, system, id)
		},
	})

	intentsSvc = intents.NewService(mem.NewIntentRepo(), intents.Deps{
		Users:       usersSvc.Ref,
		Animals:     animalsSvc.Ref,
		OnCompleted: adoptionsSvc.FromIntent,
	})

	accountsSvc = accounts.NewService(mem.NewAccountRepo(), mem.NewSessionRepo(), usersSvc)

	if opts.AdminEmail != "" {
		admin, err := accountsSvc.EnsureAdmin(ctx, adminProfile(opts.AdminEmail), opts.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
		log.Info("admin account ready", map[string]any{"user_id": admin.ID, "email": admin.Email})
	}

	metrics := middleware.NewHTTPMetrics(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))
	r.Use(metrics.Instrument)

	r.Use(middleware.AuthContext(accountsSvc))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	accounts.RegisterRoutes(r, accountsSvc)
	users.RegisterRoutes(r, usersSvc)
	animals.RegisterRoutes(r, animalsSvc)
	intents.RegisterRoutes(r, intentsSvc)
	adoptions.RegisterRoutes(r, adoptionsSvc)

	return r, nil
}

// adminProfile completa los campos obligatorios del perfil sembrado.
func adminProfile(email string) users.User {
	return users.User{
		Name:       "Administrador",
		BirthDate:  jsontime.NewDate(1990, time.January, 1),
		TaxID:      "000000000",
		Phone:      "000000000",
		Address:    "PawBuddy",
		PostalCode: "0000-000",
		Email:      email,
		Country:    "Portugal",
	}
}
