package api

import (
	"context"
	"net/http"
	"strconv"

	"pawbuddy-client/internal/domain/users"
)

const usersPath = "/api/Utilizador"

func (c *Client) ListUsers(ctx context.Context) ([]users.User, error) {
	var out []users.User
	if err := c.getJSON(ctx, "list users", usersPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id int) (users.User, error) {
	var out users.User
	if err := c.getJSON(ctx, "get user", usersPath+"/"+strconv.Itoa(id), &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

// Me devuelve el perfil de la sesión actual.
func (c *Client) Me(ctx context.Context) (users.User, error) {
	var out users.User
	if err := c.getJSON(ctx, "get profile", usersPath+"/me", &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

// UpdateUser es un reemplazo completo del perfil.
func (c *Client) UpdateUser(ctx context.Context, id int, u users.User) (users.User, error) {
	var out users.User
	u.ID = id
	u.Intents = nil
	if err := c.call(ctx, "update user", http.MethodPut, usersPath+"/"+strconv.Itoa(id), u, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (c *Client) UpdateMe(ctx context.Context, u users.User) (users.User, error) {
	var out users.User
	u.Intents = nil
	if err := c.call(ctx, "update profile", http.MethodPut, usersPath+"/me", u, &out); err != nil {
		return users.User{}, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	err := c.call(ctx, "delete user", http.MethodDelete, usersPath+"/"+strconv.Itoa(id), nil, nil)
	return ignoreNotFound(err)
}
