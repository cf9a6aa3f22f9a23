package api

import (
	"context"
	"net/http"
	"strconv"

	"pawbuddy-client/internal/domain/adoptions"
)

const adoptionsPath = "/api/adotam"

func (c *Client) ListAdoptions(ctx context.Context) ([]adoptions.Adoption, error) {
	var out []adoptions.Adoption
	if err := c.getJSON(ctx, "list adoptions", adoptionsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAdoption(ctx context.Context, id int) (adoptions.Adoption, error) {
	var out adoptions.Adoption
	if err := c.getJSON(ctx, "get adoption", adoptionsPath+"/"+strconv.Itoa(id), &out); err != nil {
		return adoptions.Adoption{}, err
	}
	return out, nil
}

func (c *Client) DeleteAdoption(ctx context.Context, id int) error {
	err := c.call(ctx, "delete adoption", http.MethodDelete, adoptionsPath+"/"+strconv.Itoa(id), nil, nil)
	return ignoreNotFound(err)
}
