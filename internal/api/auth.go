package api

import (
	"context"
	"net/http"

	"pawbuddy-client/internal/domain/accounts"
)

const authPath = "/api/AuthController"

// Login valida credenciales; la cookie de sesión queda en el jar.
func (c *Client) Login(ctx context.Context, email, password string) (accounts.Identity, error) {
	var out accounts.Identity
	in := accounts.LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, "login", http.MethodPost, authPath+"/login", in, &out); err != nil {
		return accounts.Identity{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, req accounts.RegisterRequest) (accounts.Identity, error) {
	var out accounts.Identity
	if err := c.call(ctx, "register", http.MethodPost, authPath+"/register", req, &out); err != nil {
		return accounts.Identity{}, err
	}
	return out, nil
}

// Logout avisa al backend y descarta las cookies aunque la llamada falle.
func (c *Client) Logout(ctx context.Context) error {
	err := c.call(ctx, "logout", http.MethodPost, authPath+"/logout", nil, nil)
	c.forgetCookies()
	if IsSessionInvalid(err) {
		return nil
	}
	return err
}
