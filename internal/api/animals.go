package api

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/platform/httpclient"
)

const animalsPath = "/api/animais"

func (c *Client) ListAnimals(ctx context.Context) ([]animals.Animal, error) {
	var out []animals.Animal
	if err := c.getJSON(ctx, "list animals", animalsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAnimal(ctx context.Context, id int) (animals.Animal, error) {
	var out animals.Animal
	if err := c.getJSON(ctx, "get animal", animalsPath+"/"+strconv.Itoa(id), &out); err != nil {
		return animals.Animal{}, err
	}
	return out, nil
}

// ListUserAnimals: animales adoptados por el usuario.
func (c *Client) ListUserAnimals(ctx context.Context, userID int) ([]animals.Animal, error) {
	var out []animals.Animal
	path := fmt.Sprintf("/utilizadores/%d/animais", userID)
	if err := c.getJSON(ctx, "list user animals", path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAnimal envía el formulario como multipart; la imagen va como
// image/jpeg en la parte "imagem".
func (c *Client) CreateAnimal(ctx context.Context, f animals.Form) (animals.Animal, error) {
	var out animals.Animal
	if err := c.multipart(ctx, "create animal", http.MethodPost, animalsPath, animalForm(f), &out); err != nil {
		return animals.Animal{}, err
	}
	return out, nil
}

// UpdateAnimal reemplaza el animal. Sin imagen el backend conserva la actual.
func (c *Client) UpdateAnimal(ctx context.Context, id int, f animals.Form) (animals.Animal, error) {
	var out animals.Animal
	path := animalsPath + "/" + strconv.Itoa(id)
	if err := c.multipart(ctx, "update animal", http.MethodPut, path, animalForm(f), &out); err != nil {
		return animals.Animal{}, err
	}
	return out, nil
}

func (c *Client) DeleteAnimal(ctx context.Context, id int) error {
	err := c.call(ctx, "delete animal", http.MethodDelete, animalsPath+"/"+strconv.Itoa(id), nil, nil)
	return ignoreNotFound(err)
}

func animalForm(f animals.Form) httpclient.Multipart {
	var m httpclient.Multipart
	for _, kv := range f.Fields() {
		m.Fields = append(m.Fields, httpclient.FormField{Name: kv[0], Value: kv[1]})
	}
	if !f.Image.Empty() {
		name := f.Image.Filename
		if name == "" {
			name = "imagem.jpg"
		}
		m.Files = append(m.Files, httpclient.FormFile{
			Field:       "imagem",
			Filename:    name,
			ContentType: "image/jpeg",
			Content:     bytes.NewReader(f.Image.Data),
		})
	}
	return m
}
