package animals

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pawbuddy-client/internal/middleware"
)

const maxUpload = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/animais", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{id}", getAnimalHandler(svc))

		ar.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Post("/", createAnimalHandler(svc))
			admin.Put("/{id}", updateAnimalHandler(svc))
			admin.Delete("/{id}", deleteAnimalHandler(svc))
		})
	})

	r.With(middleware.RequireUser).Get("/utilizadores/{id}/animais", listUserAnimalsHandler(svc))
	r.Get("/imagens/{name}", imageHandler(svc))
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Lista pública de animales disponibles.
// @Tags animals
// @Produce json
// @Success 200 {array} Animal
// @Router /api/animais [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Description Detalle público. Para un admin incluye `intencoesdeAdocao`.
// @Tags animals
// @Produce json
// @Param id path int true "ID del animal"
// @Success 200 {object} Animal
// @Failure 404 {string} string "animal not found"
// @Router /api/animais/{id} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var (
			a   Animal
			err error
		)
		if claims, ok := middleware.GetClaims(r.Context()); ok && claims.IsAdmin {
			a, err = svc.GetWithIntents(r.Context(), id)
		} else {
			a, err = svc.GetByID(r.Context(), id)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// createAnimalHandler godoc
// @Summary Crear animal
// @Description multipart/form-data: campos de texto + un archivo JPEG en `imagem` (obligatorio).
// @Tags animals
// @Accept multipart/form-data
// @Produce json
// @Param nome formData string true "Nombre"
// @Param raca formData string true "Raza"
// @Param idade formData string true "Edad (texto libre)"
// @Param genero formData string true "Género"
// @Param especie formData string true "Especie"
// @Param cor formData string true "Color"
// @Param imagem formData file true "Imagen JPEG"
// @Success 201 {object} Animal
// @Failure 400 {string} string "multipart inválido / campos requeridos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /api/animais [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseForm(w, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), f)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

// updateAnimalHandler godoc
// @Summary Reemplazar animal
// @Description Igual que el alta; si no viene `imagem` se conserva la actual.
// @Tags animals
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID del animal"
// @Param nome formData string true "Nombre"
// @Param imagem formData file false "Imagen JPEG"
// @Success 200 {object} Animal
// @Failure 400 {string} string "multipart inválido / campos requeridos"
// @Failure 404 {string} string "animal not found"
// @Router /api/animais/{id} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		f, err := parseForm(w, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), id, f)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// deleteAnimalHandler godoc
// @Summary Borrar animal
// @Description Borra el animal, su imagen y sus intenciones de adopción.
// @Tags animals
// @Param id path int true "ID del animal"
// @Success 204 {string} string ""
// @Failure 404 {string} string "animal not found"
// @Router /api/animais/{id} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// listUserAnimalsHandler godoc
// @Summary Animales adoptados por un usuario
// @Description El propio usuario o un admin.
// @Tags animals
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {array} Animal
// @Failure 403 {string} string "forbidden"
// @Router /utilizadores/{id}/animais [get]
func listUserAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}
		if !claims.IsAdmin && claims.UserID != id {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByUser(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func imageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := svc.Image(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			http.Error(w, "image not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", http.DetectContentType(data))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(data)
	}
}

// parseForm lee el multipart. La parte "imagem" tiene que declararse
// image/jpeg; el contenido se revisa después en Form.Validate.
func parseForm(w http.ResponseWriter, r *http.Request) (Form, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "multipart/form-data" {
		return Form{}, errors.New("expected multipart/form-data")
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		return Form{}, errors.New("invalid multipart body")
	}

	f := Form{
		Name:    r.FormValue("nome"),
		Breed:   r.FormValue("raca"),
		Age:     r.FormValue("idade"),
		Gender:  r.FormValue("genero"),
		Species: r.FormValue("especie"),
		Color:   r.FormValue("cor"),
	}

	file, header, err := r.FormFile("imagem")
	if errors.Is(err, http.ErrMissingFile) {
		return f, nil
	}
	if err != nil {
		return Form{}, errors.New("invalid imagem part")
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/jpeg") {
		return Form{}, errors.New("imagem must be image/jpeg")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return Form{}, errors.New("invalid imagem part")
	}
	f.Image = &Image{Filename: header.Filename, Data: data}
	return f, nil
}

func parseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
