package app

import (
	"context"
	"net/http"

	"pawbuddy-client/internal/access"
	"pawbuddy-client/internal/api"
	"pawbuddy-client/internal/domain/accounts"
	"pawbuddy-client/internal/nav"
)

// Login guarda la sesión y aterriza en el destino recordado (o en la
// portada del rol).
func (a *App) Login(ctx context.Context, email, password string) Screen {
	from := nav.Login()
	req := accounts.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}

	v := a.Open(from)
	defer v.Close()

	id, err := Load(ctx, v, func(ctx context.Context) (accounts.Identity, error) {
		return a.api.Login(ctx, req.Email, req.Password)
	})
	if err != nil {
		return a.authFailed(ctx, from, err)
	}
	return a.landAfterLogin(ctx, id)
}

// Register crea la cuenta y deja la sesión abierta. Un 409 es el email.
func (a *App) Register(ctx context.Context, req accounts.RegisterRequest) Screen {
	from := nav.Register()
	req.User = req.User.Normalize()
	if err := req.Validate(); err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "")
	}

	v := a.Open(from)
	defer v.Close()

	id, err := Load(ctx, v, func(ctx context.Context) (accounts.Identity, error) {
		return a.api.Register(ctx, req)
	})
	if err != nil {
		return a.handleErr(ctx, a.screenFor(from), err, "email")
	}
	return a.landAfterLogin(ctx, id)
}

// Logout cierra la sesión local aunque el backend no conteste.
func (a *App) Logout(ctx context.Context) Screen {
	if a.session.IsLogged() {
		v := a.Open(nav.Home())
		if err := Run(ctx, v, a.api.Logout); err != nil {
			a.log.Warn("backend logout failed", map[string]any{"error": err.Error()})
		}
		v.Close()
	}
	a.session.Logout()

	sc := a.Navigate(ctx, nav.Home())
	sc.Notice = "You are logged out."
	return sc
}

func (a *App) landAfterLogin(ctx context.Context, id accounts.Identity) Screen {
	a.session.SaveLogin(id.ID, id.IsAdmin)
	returnTo, ok := a.session.TakeReturnTo()

	dec := access.AfterLogin(a.session.State(), returnTo, ok)
	sc := a.Navigate(ctx, dec.Destination)
	if sc.Notice == "" {
		sc.Notice = "Welcome, " + id.Name + "."
	}
	return sc
}

// authFailed: un 401 del login son credenciales malas, no una sesión
// vencida; se queda en el formulario.
func (a *App) authFailed(ctx context.Context, from nav.Destination, err error) Screen {
	sc := a.screenFor(from)
	if api.StatusCode(err) != http.StatusUnauthorized {
		return a.handleErr(ctx, sc, err, "")
	}
	sc.Message = &Message{
		Text:   "Invalid email or password.",
		Fields: map[string]string{"password": "Invalid email or password"},
	}
	return sc
}
