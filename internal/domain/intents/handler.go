package intents

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pawbuddy-client/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/intencaodeadocao", func(ir chi.Router) {
		ir.Use(middleware.RequireUser)

		ir.Get("/", listIntentsHandler(svc))
		ir.Post("/", createIntentHandler(svc))
		ir.Get("/{id}", getIntentHandler(svc))
		ir.Put("/{id}", updateIntentHandler(svc))

		ir.With(middleware.RequireAdmin).Delete("/{id}", deleteIntentHandler(svc))
	})
}

// listIntentsHandler godoc
// @Summary Listar intenciones de adopción
// @Description Un admin recibe todas las intenciones; un usuario, solo las propias. Autenticación: cookie `pawbuddy_session`.
// @Tags intents
// @Produce json
// @Success 200 {array} Intent
// @Failure 401 {string} string "unauthorized"
// @Router /api/intencaodeadocao [get]
func listIntentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.List(r.Context(), claims)
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = []Intent{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// createIntentHandler godoc
// @Summary Crear intención de adopción
// @Description Registra la intención del usuario autenticado sobre un animal. El estado inicial es siempre Reservado (0).
// @Tags intents
// @Accept json
// @Produce json
// @Param payload body Intent true "Datos del formulario; temAnimais = Sim/Nao"
// @Success 201 {object} Intent
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal o utilizador no existe"
// @Router /api/intencaodeadocao [post]
func createIntentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req Intent
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := svc.Create(r.Context(), claims, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// getIntentHandler godoc
// @Summary Obtener intención de adopción
// @Tags intents
// @Produce json
// @Param id path int true "ID de la intención"
// @Success 200 {object} Intent
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "intent not found"
// @Router /api/intencaodeadocao/{id} [get]
func getIntentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}
		i, err := svc.GetByID(r.Context(), claims, id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, i)
	}
}

// updateIntentHandler godoc
// @Summary Reemplazar intención de adopción
// @Description PUT con la entidad completa. Solo un admin puede cambiar `estado` y solo siguiendo Reservado → EmProcesso → EmValidacao → Concluido | Rejeitado. Pasar a Concluido crea la adopción.
// @Tags intents
// @Accept json
// @Produce json
// @Param id path int true "ID de la intención"
// @Param payload body Intent true "Entidad completa"
// @Success 200 {object} Intent
// @Failure 400 {string} string "invalid json / transición inválida"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "intent not found"
// @Router /api/intencaodeadocao/{id} [put]
func updateIntentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req Intent
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.ID != 0 && req.ID != id {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), claims, id, req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// deleteIntentHandler godoc
// @Summary Borrar intención de adopción
// @Tags intents
// @Param id path int true "ID de la intención"
// @Success 204 {string} string ""
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "intent not found"
// @Router /api/intencaodeadocao/{id} [delete]
func deleteIntentHandler(svc *Service) http.HandlerFunc {
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
		http.Error(w, "intent not found", http.StatusNotFound)
	case errors.Is(err, ErrRefNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidTransition):
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
