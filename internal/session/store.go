// Package session guarda quién está logueado en este dispositivo.
//
// El estado vive en memoria detrás de un mutex y se escribe a un backend de
// prefs (archivo, redis, postgres o memoria) después de cada cambio. Las
// lecturas nunca tocan el backend: lo que se guardó en este proceso se ve de
// inmediato aunque la escritura al backend haya fallado.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/platform/logger"
	"pawbuddy-client/internal/ports/prefs"
)

const (
	DefaultNamespace = "pawbuddy"

	keyIsLogged = "isLogged"
	keyUserID   = "userId"
	keyIsAdmin  = "isAdmin"
	keyReturnTo = "returnTo"
	keyCookies  = "cookies"

	// NoUser es el UserID cuando no hay sesión.
	NoUser = -1

	backendTimeout = 3 * time.Second
)

// State es la foto inmutable que consume el resolver de acceso.
type State struct {
	LoggedIn bool
	UserID   int
	IsAdmin  bool
}

func Anonymous() State {
	return State{UserID: NoUser}
}

// IsUser: logueado y no admin.
func (s State) IsUser() bool { return s.LoggedIn && !s.IsAdmin }

func (s State) IsAdminUser() bool { return s.LoggedIn && s.IsAdmin }

type Store struct {
	mu      sync.Mutex
	backend prefs.Store
	ns      string
	log     logger.Logger
	values  map[string]string
}

// Open carga lo persistido. Si el backend falla se arranca anónimo y se
// deja un warn: una sesión perdida solo obliga a loguearse otra vez.
func Open(ctx context.Context, backend prefs.Store, namespace string, log logger.Logger) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		backend: backend,
		ns:      namespace,
		log:     log.With(map[string]any{"component": "session", "namespace": namespace}),
		values:  map[string]string{},
	}

	loaded, err := backend.Load(ctx, namespace)
	if err != nil {
		s.log.Warn("session load failed, starting anonymous", map[string]any{"error": err.Error()})
		return s
	}
	for k, v := range loaded {
		s.values[k] = v
	}
	return s
}

// SaveLogin persiste los tres campos y marca la sesión como activa.
// Un returnTo pendiente se conserva para el aterrizaje posterior al login.
func (s *Store) SaveLogin(userID int, isAdmin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[keyIsLogged] = "true"
	s.values[keyUserID] = strconv.Itoa(userID)
	s.values[keyIsAdmin] = strconv.FormatBool(isAdmin)
	s.persistLocked()
}

// Logout borra todo lo persistido. Idempotente.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = map[string]string{}

	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()
	if err := s.backend.Clear(ctx, s.ns); err != nil {
		s.log.Warn("session clear failed", map[string]any{"error": err.Error()})
	}
}

func (s *Store) IsLogged() bool {
	return s.State().LoggedIn
}

// UserID devuelve NoUser (-1) si no hay sesión.
func (s *Store) UserID() int {
	return s.State().UserID
}

func (s *Store) IsAdmin() bool {
	return s.State().IsAdmin
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// stateLocked interpreta los valores crudos. isLogged sin un userId válido
// se trata como sesión rota: anónimo.
func (s *Store) stateLocked() State {
	if s.values[keyIsLogged] != "true" {
		return Anonymous()
	}
	id, err := strconv.Atoi(s.values[keyUserID])
	if err != nil || id <= 0 {
		return Anonymous()
	}
	isAdmin, _ := strconv.ParseBool(s.values[keyIsAdmin])
	return State{LoggedIn: true, UserID: id, IsAdmin: isAdmin}
}

// SetReturnTo recuerda a dónde volver después del login.
func (s *Store) SetReturnTo(d nav.Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[keyReturnTo] = d.String()
	s.persistLocked()
}

// TakeReturnTo lo consume: una segunda llamada devuelve false.
func (s *Store) TakeReturnTo() (nav.Destination, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.values[keyReturnTo]
	if !ok {
		return nav.Destination{}, false
	}
	delete(s.values, keyReturnTo)
	s.persistLocked()

	d, err := nav.Parse(raw)
	if err != nil {
		s.log.Debug("dropping unparsable returnTo", map[string]any{"returnTo": raw})
		return nav.Destination{}, false
	}
	return d, true
}

type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SaveCookies reemplaza las cookies guardadas. nil/vacío las borra.
func (s *Store) SaveCookies(cookies []*http.Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(cookies) == 0 {
		if _, ok := s.values[keyCookies]; !ok {
			return
		}
		delete(s.values, keyCookies)
		s.persistLocked()
		return
	}

	out := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		if c == nil || c.Name == "" {
			continue
		}
		out = append(out, storedCookie{Name: c.Name, Value: c.Value})
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return
	}
	if s.values[keyCookies] == string(raw) {
		return
	}
	s.values[keyCookies] = string(raw)
	s.persistLocked()
}

func (s *Store) Cookies() []*http.Cookie {
	s.mu.Lock()
	raw := s.values[keyCookies]
	s.mu.Unlock()

	if raw == "" {
		return nil
	}
	var stored []storedCookie
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Debug("dropping unparsable cookies", nil)
		return nil
	}
	out := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

func (s *Store) persistLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), backendTimeout)
	defer cancel()

	snapshot := make(map[string]string, len(s.values))
	for k, v := range s.values {
		snapshot[k] = v
	}
	if err := s.backend.Save(ctx, s.ns, snapshot); err != nil {
		s.log.Warn("session persist failed", map[string]any{"error": err.Error()})
	}
}
