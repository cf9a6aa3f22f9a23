package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pawbuddy-client/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/AuthController", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))
		ar.Post("/register", registerHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
	})
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida credenciales y emite la cookie `pawbuddy_session`.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "email + password"
// @Success 200 {object} Identity
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 401 {string} string "invalid email or password"
// @Router /api/AuthController/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, sess, err := svc.Login(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		setSessionCookie(w, r, sess)
		writeJSON(w, http.StatusOK, id)
	}
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea el perfil y las credenciales, y deja la sesión abierta.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Perfil + password"
// @Success 201 {object} Identity
// @Failure 400 {string} string "invalid json / campos requeridos"
// @Failure 409 {string} string "email already registered"
// @Router /api/AuthController/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, sess, err := svc.Register(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		setSessionCookie(w, r, sess)
		writeJSON(w, http.StatusCreated, id)
	}
}

// logoutHandler godoc
// @Summary Cerrar sesión
// @Description Invalida la sesión de la cookie (si existe) y la borra del cliente. Idempotente.
// @Tags auth
// @Success 204 {string} string ""
// @Router /api/AuthController/logout [post]
func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(middleware.SessionCookie); err == nil {
			if err := svc.Logout(r.Context(), c.Value); err != nil {
				writeError(w, err)
				return
			}
		}
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		w.WriteHeader(http.StatusNoContent)
	}
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sess Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
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
