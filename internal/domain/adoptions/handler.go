package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawbuddy-client/internal/middleware"
)

// RegisterRoutes: las adopciones solo se leen o se borran; se crean al
// concluir una intención.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/adotam", func(ar chi.Router) {
		ar.Use(middleware.RequireAdmin)

		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{id}", getAdoptionHandler(svc))
		ar.Delete("/{id}", deleteAdoptionHandler(svc))
	})
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones finalizadas
// @Tags adoptions
// @Produce json
// @Success 200 {array} Adoption
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /api/adotam [get]
func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// getAdoptionHandler godoc
// @Summary Obtener adopción
// @Tags adoptions
// @Produce json
// @Param id path int true "ID de la adopción"
// @Success 200 {object} Adoption
// @Failure 404 {string} string "adoption not found"
// @Router /api/adotam/{id} [get]
func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// deleteAdoptionHandler godoc
// @Summary Borrar adopción
// @Tags adoptions
// @Param id path int true "ID de la adopción"
// @Success 204 {string} string ""
// @Failure 404 {string} string "adoption not found"
// @Router /api/adotam/{id} [delete]
func deleteAdoptionHandler(svc *Service) http.HandlerFunc {
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
		http.Error(w, "adoption not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
