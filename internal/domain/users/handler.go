package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawbuddy-client/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/Utilizador", func(ur chi.Router) {
		ur.Use(middleware.RequireUser)

		ur.Get("/me", getMeHandler(svc))
		ur.Put("/me", updateMeHandler(svc))

		ur.Get("/{id}", getUserHandler(svc))
		ur.Put("/{id}", updateUserHandler(svc))

		ur.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Get("/", listUsersHandler(svc))
			admin.Delete("/{id}", deleteUserHandler(svc))
		})
	})
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /api/Utilizador [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getMeHandler godoc
// @Summary Perfil del usuario autenticado
// @Description Incluye sus intenciones de adopción.
// @Tags users
// @Produce json
// @Success 200 {object} User
// @Failure 401 {string} string "unauthorized"
// @Router /api/Utilizador/me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.GetByID(r.Context(), claims, claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// updateMeHandler godoc
// @Summary Editar el perfil propio
// @Tags users
// @Accept json
// @Produce json
// @Param payload body User true "Perfil completo"
// @Success 200 {object} User
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 409 {string} string "email already registered"
// @Router /api/Utilizador/me [put]
func updateMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		update(w, r, svc, claims.UserID)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Description El propio usuario o un admin.
// @Tags users
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} User
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "user not found"
// @Router /api/Utilizador/{id} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}
		u, err := svc.GetByID(r.Context(), claims, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}

// updateUserHandler godoc
// @Summary Reemplazar usuario
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param payload body User true "Perfil completo"
// @Success 200 {object} User
// @Failure 403 {string} string "forbidden"
// @Failure 409 {string} string "email already registered"
// @Router /api/Utilizador/{id} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		update(w, r, svc, id)
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Description Borra también su cuenta y sus intenciones.
// @Tags users
// @Param id path int true "ID del usuario"
// @Success 204 {string} string ""
// @Failure 404 {string} string "user not found"
// @Router /api/Utilizador/{id} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
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

func update(w http.ResponseWriter, r *http.Request, svc *Service, id int) {
	claims, _ := middleware.GetClaims(r.Context())

	var req User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	u, err := svc.Update(r.Context(), claims, id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
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
		http.Error(w, "user not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
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
