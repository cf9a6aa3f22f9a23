// Package app tiene un controlador por pantalla. Cada uno carga datos por la
// API, le pide al resolver de acceso las acciones visibles y devuelve la
// pantalla a mostrar.
//
// Los controladores no devuelven errores: todo fallo termina en un Message
// dentro de la Screen (o en una redirección al login si la sesión dejó de
// valer).
package app

import (
	"context"
	"errors"
	"strings"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/api"
	"pawbuddy-client/internal/domain/accounts"
	"pawbuddy-client/internal/domain/adoptions"
	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/platform/logger"
	"pawbuddy-client/internal/platform/validate"
	"pawbuddy-client/internal/session"
)

// Backend son las llamadas que usan los controladores. *api.Client lo cumple.
type Backend interface {
	ListAnimals(ctx context.Context) ([]animals.Animal, error)
	GetAnimal(ctx context.Context, id int) (animals.Animal, error)
	ListUserAnimals(ctx context.Context, userID int) ([]animals.Animal, error)
	CreateAnimal(ctx context.Context, f animals.Form) (animals.Animal, error)
	UpdateAnimal(ctx context.Context, id int, f animals.Form) (animals.Animal, error)
	DeleteAnimal(ctx context.Context, id int) error

	ListUsers(ctx context.Context) ([]users.User, error)
	Me(ctx context.Context) (users.User, error)
	UpdateMe(ctx context.Context, u users.User) (users.User, error)
	DeleteUser(ctx context.Context, id int) error

	ListIntents(ctx context.Context) ([]intents.Intent, error)
	GetIntent(ctx context.Context, id int) (intents.Intent, error)
	CreateIntent(ctx context.Context, i intents.Intent) (intents.Intent, error)
	UpdateIntent(ctx context.Context, i intents.Intent) (intents.Intent, error)
	DeleteIntent(ctx context.Context, id int) error

	ListAdoptions(ctx context.Context) ([]adoptions.Adoption, error)
	DeleteAdoption(ctx context.Context, id int) error

	Login(ctx context.Context, email, password string) (accounts.Identity, error)
	Register(ctx context.Context, req accounts.RegisterRequest) (accounts.Identity, error)
	Logout(ctx context.Context) error
	ForgetSession()
}

var _ Backend = (*api.Client)(nil)

type App struct {
	api     Backend
	session *session.Store
	log     logger.Logger
}

func New(backend Backend, store *session.Store, log logger.Logger) *App {
	if log == nil {
		log = logger.Nop()
	}
	return &App{
		api:     backend,
		session: store,
		log:     log.With(map[string]any{"component": "app"}),
	}
}

// Session expone el estado actual (whoami).
func (a *App) Session() session.State { return a.session.State() }

// Message es un aviso descartable. Fields trae los errores por campo.
type Message struct {
	Text   string
	Fields map[string]string
}

func (m *Message) Field(name string) string {
	if m == nil {
		return ""
	}
	return m.Fields[name]
}

// Summary alimenta el panel de administración.
type Summary struct {
	Animals        int
	Users          int
	OpenIntents    int
	ClosedIntents  int
	Adoptions      int
	PendingByState map[intents.State]int
}

// Screen es lo que se muestra: el destino real, las acciones visibles y los
// datos que la pantalla necesita. Solo se llenan los campos de esa pantalla.
type Screen struct {
	Destination nav.Destination
	Decision    access.Decision
	Notice      string
	Message     *Message

	Animals   []animals.Animal
	Animal    *animals.Animal
	Intents   []intents.Intent
	Intent    *intents.Intent
	Users     []users.User
	User      *users.User
	Adoptions []adoptions.Adoption
	Summary   *Summary
}

// Can indica si la acción se muestra en esta pantalla.
func (s Screen) Can(act access.Action) bool {
	return s.Decision.Actions.Has(act)
}

func (s Screen) Failed() bool { return s.Message != nil }

// Navigate resuelve el acceso y carga la pantalla resultante.
func (a *App) Navigate(ctx context.Context, dest nav.Destination) Screen {
	dec := access.Resolve(a.session.State(), dest)
	if dec.HasReturnTo {
		a.session.SetReturnTo(dec.ReturnTo)
	}
	sc := Screen{
		Destination: dec.Destination,
		Decision:    dec,
		Notice:      notice(dec),
	}
	return a.load(ctx, sc)
}

func notice(dec access.Decision) string {
	switch dec.Reason {
	case access.ReasonLoginRequired:
		return "Please log in to continue."
	case access.ReasonDenied:
		return "That area is for administrators only."
	case access.ReasonInvalidID:
		return "That item could not be found."
	default:
		return ""
	}
}

// gone: el recurso de la pantalla ya no existe; se muestra otra pantalla
// con un aviso, sin error.
type gone struct {
	to     nav.Destination
	notice string
}

func (g *gone) Error() string { return g.notice }

func (a *App) load(ctx context.Context, sc Screen) Screen {
	v := a.Open(sc.Destination)
	defer v.Close()

	var err error
	switch sc.Destination.Screen {
	case nav.ScreenHome:
		err = a.loadHome(ctx, v, &sc)
	case nav.ScreenAnimalList:
		err = a.loadAnimalList(ctx, v, &sc)
	case nav.ScreenAnimalDetail, nav.ScreenAdoptionForm:
		err = a.loadAnimal(ctx, v, &sc)
	case nav.ScreenAnimalForm:
		if sc.Destination.AnimalID > 0 {
			err = a.loadAnimal(ctx, v, &sc)
		}
	case nav.ScreenMyIntents, nav.ScreenAdminIntents:
		err = a.loadIntents(ctx, v, &sc)
	case nav.ScreenIntentDetail:
		err = a.loadIntent(ctx, v, &sc)
	case nav.ScreenProfile:
		err = a.loadProfile(ctx, v, &sc)
	case nav.ScreenAdminUsers:
		err = a.loadUsers(ctx, v, &sc)
	case nav.ScreenAdminAdoptions:
		err = a.loadAdoptions(ctx, v, &sc)
	case nav.ScreenAdminDashboard:
		err = a.loadDashboard(ctx, v, &sc)
	case nav.ScreenLogin, nav.ScreenRegister:
		// formularios sin datos previos
	}
	if err == nil {
		return sc
	}

	var g *gone
	if errors.As(err, &g) {
		next := a.Navigate(ctx, g.to)
		next.Notice = g.notice
		return next
	}
	return a.handleErr(ctx, sc, err, "")
}

// handleErr es el embudo común de errores:
//   - validación: errores por campo, no hubo request.
//   - 401/403: se cierra la sesión y se va al login recordando la pantalla.
//   - 409: error en field (o mensaje general si field es "").
//   - resto: mensaje con el texto crudo.
func (a *App) handleErr(ctx context.Context, sc Screen, err error, field string) Screen {
	if errors.Is(err, ErrViewClosed) {
		return sc
	}

	if ve, ok := validate.As(err); ok {
		sc.Message = fieldMessage(ve)
		return sc
	}

	if api.IsSessionInvalid(err) {
		a.log.Info("session rejected by backend, logging out", map[string]any{
			"screen": sc.Destination.String(),
			"status": api.StatusCode(err),
		})
		// Sin esto el jar reenviaría la cookie vieja y la volvería a guardar.
		a.api.ForgetSession()
		a.session.Logout()
		a.session.SetReturnTo(sc.Destination)

		login := a.Navigate(ctx, nav.Login())
		login.Notice = "Your session is no longer valid. Please log in again."
		return login
	}

	text := errorText(err)
	if api.IsConflict(err) {
		sc.Message = &Message{Text: text}
		if field != "" {
			sc.Message.Fields = map[string]string{field: text}
		}
		return sc
	}

	a.log.Warn("request failed", map[string]any{
		"screen": sc.Destination.String(),
		"status": api.StatusCode(err),
		"error":  err.Error(),
	})
	sc.Message = &Message{Text: text}
	return sc
}

// guard comprueba que la acción esté visible en from antes de llamar a la
// API. Si no lo está devuelve la pantalla a mostrar en su lugar.
func (a *App) guard(ctx context.Context, from nav.Destination, act access.Action) (Screen, bool) {
	dec := access.Resolve(a.session.State(), from)
	if !dec.Redirected && dec.Actions.Has(act) {
		return Screen{}, true
	}
	sc := a.Navigate(ctx, from)
	if !dec.Redirected {
		sc.Message = &Message{Text: "You are not allowed to " + strings.ReplaceAll(act.String(), "-", " ") + "."}
	}
	return sc, false
}

// screenFor arma la pantalla de from sin cargar datos (para errores de
// formularios).
func (a *App) screenFor(from nav.Destination) Screen {
	dec := access.Resolve(a.session.State(), from)
	return Screen{Destination: dec.Destination, Decision: dec}
}

func fieldMessage(ve *validate.Error) *Message {
	m := &Message{Text: "Please fix the highlighted fields.", Fields: map[string]string{}}
	for _, f := range ve.Fields {
		if _, ok := m.Fields[f.Field]; !ok {
			m.Fields[f.Field] = f.Message
		}
	}
	return m
}

func errorText(err error) string {
	var e *api.Error
	if errors.As(err, &e) && strings.TrimSpace(e.Message) != "" {
		return e.Message
	}
	return err.Error()
}
