package api

import (
	"errors"
	"fmt"
	"net/http"

	"pawbuddy-client/internal/platform/httpclient"
)

// Error es cualquier fallo de una llamada al backend. StatusCode 0 indica
// que no hubo respuesta (red, timeout) o que el body no se pudo decodificar.
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsSessionInvalid: 401/403, la sesión ya no sirve para esta operación.
func IsSessionInvalid(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// StatusCode devuelve el status de un *Error (0 si no lo es).
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func hasStatus(err error, code int) bool {
	return StatusCode(err) == code
}

// wrap traduce los errores de httpclient al tipo del paquete.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var he *httpclient.HTTPError
	if errors.As(err, &he) {
		msg := he.Body
		if msg == "" {
			msg = http.StatusText(he.StatusCode)
		}
		return &Error{Op: op, StatusCode: he.StatusCode, Message: msg, Err: err}
	}
	return &Error{Op: op, Message: err.Error(), Err: err}
}

// ignoreNotFound: borrar algo que ya no existe cuenta como éxito.
func ignoreNotFound(err error) error {
	if IsNotFound(err) {
		return nil
	}
	return err
}
