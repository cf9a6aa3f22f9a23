package api

import (
	"context"
	"net/http"
	"strconv"

	"pawbuddy-client/internal/domain/intents"
)

const intentsPath = "/api/intencaodeadocao"

// ListIntents: el backend filtra por rol (admin todas, usuario las propias).
func (c *Client) ListIntents(ctx context.Context) ([]intents.Intent, error) {
	var out []intents.Intent
	if err := c.getJSON(ctx, "list intents", intentsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetIntent(ctx context.Context, id int) (intents.Intent, error) {
	var out intents.Intent
	if err := c.getJSON(ctx, "get intent", intentsPath+"/"+strconv.Itoa(id), &out); err != nil {
		return intents.Intent{}, err
	}
	return out, nil
}

func (c *Client) CreateIntent(ctx context.Context, i intents.Intent) (intents.Intent, error) {
	var out intents.Intent
	i.ID = 0
	i.User, i.Animal = nil, nil
	if err := c.call(ctx, "create intent", http.MethodPost, intentsPath, i, &out); err != nil {
		return intents.Intent{}, err
	}
	return out, nil
}

// UpdateIntent reemplaza la entidad completa (PUT). Para cambiar solo el
// estado hay que leerla antes.
func (c *Client) UpdateIntent(ctx context.Context, i intents.Intent) (intents.Intent, error) {
	var out intents.Intent
	path := intentsPath + "/" + strconv.Itoa(i.ID)
	if err := c.call(ctx, "update intent", http.MethodPut, path, i, &out); err != nil {
		return intents.Intent{}, err
	}
	return out, nil
}

func (c *Client) DeleteIntent(ctx context.Context, id int) error {
	err := c.call(ctx, "delete intent", http.MethodDelete, intentsPath+"/"+strconv.Itoa(id), nil, nil)
	return ignoreNotFound(err)
}
