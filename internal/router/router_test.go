package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"pawbuddy-client/internal/router"
)

const (
	adminEmail    = "admin@pawbuddy.test"
	adminPassword = "admin123"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	h, err := router.NewRouter(context.Background(), router.Options{
		AdminEmail:    adminEmail,
		AdminPassword: adminPassword,
	})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_AdoptionFlow(t *testing.T) {
	ts := newServer(t)

	admin := newClient(t)
	user := newClient(t)

	// 1) Admin entra y da de alta un animal
	login(t, admin, ts.URL, adminEmail, adminPassword)
	animalID := createAnimal(t, admin, ts.URL, "Bobi")

	// 2) Usuario nuevo se registra (queda con sesión)
	userID := register(t, user, ts.URL, "ana@example.com")

	// 3) Usuario envía la intención; el estado inicial siempre es 0
	var created map[string]any
	{
		st, body := doReq(t, user, "POST", ts.URL+"/api/intencaodeadocao", map[string]any{
			"animalFK":   animalID,
			"profissao":  "Enfermeira",
			"residencia": "Apartamento",
			"motivo":     "Companhia",
			"temAnimais": "Nao",
			"estado":     3,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create intent, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &created)
		if created["estado"] != float64(0) {
			t.Fatalf("expected estado 0, got %v", created["estado"])
		}
		if created["temAnimais"] != "Nao" {
			t.Fatalf("expected temAnimais Nao, got %v", created["temAnimais"])
		}
	}
	intentURL := ts.URL + "/api/intencaodeadocao/" + strconv.Itoa(int(created["id"].(float64)))

	// 4) El usuario no puede cambiar el estado
	{
		payload := clone(created)
		payload["estado"] = 1
		st, _ := doReq(t, user, "PUT", intentURL, payload)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 state change by user, got %d", st)
		}
	}

	// 5) Admin avanza 0 -> 1 -> 2 -> 3
	for _, next := range []int{1, 2, 3} {
		st, body := doReq(t, admin, "GET", intentURL, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get intent, got %d body=%s", st, string(body))
		}
		var current map[string]any
		_ = json.Unmarshal(body, &current)
		current["estado"] = next

		st, body = doReq(t, admin, "PUT", intentURL, current)
		if st != http.StatusOK {
			t.Fatalf("expected 200 move intent to %d, got %d body=%s", next, st, string(body))
		}
	}

	// 6) Saltar estados no está permitido
	{
		payload := clone(created)
		payload["estado"] = 0
		st, _ := doReq(t, admin, "PUT", intentURL, payload)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 invalid transition, got %d", st)
		}
	}

	// 7) La adopción quedó registrada y el animal aparece como adoptado
	{
		st, body := doReq(t, admin, "GET", ts.URL+"/api/adotam", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list adoptions, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0]["animalFK"] != float64(animalID) {
			t.Fatalf("unexpected adoptions: %s", string(body))
		}
	}
	{
		st, body := doReq(t, user, "GET", ts.URL+"/utilizadores/"+strconv.Itoa(userID)+"/animais", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 adopted animals, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"nome":"Bobi"`) {
			t.Fatalf("expected Bobi in adopted animals, body=%s", string(body))
		}
	}

	// 8) Las adopciones son solo para admin
	{
		st, _ := doReq(t, user, "GET", ts.URL+"/api/adotam", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 adoptions by user, got %d", st)
		}
	}
}

func TestHTTP_AnimalAdminOnlyAndImage(t *testing.T) {
	ts := newServer(t)

	admin := newClient(t)
	user := newClient(t)
	anon := newClient(t)

	login(t, admin, ts.URL, adminEmail, adminPassword)
	register(t, user, ts.URL, "rui@example.com")

	// Usuario normal no crea animales
	{
		body, ct := animalForm(t, "Tareco", true)
		st := doRaw(t, user, "POST", ts.URL+"/api/animais", ct, body)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 create animal by user, got %d", st)
		}
	}
	// Sin imagen el alta falla
	{
		body, ct := animalForm(t, "Tareco", false)
		st := doRaw(t, admin, "POST", ts.URL+"/api/animais", ct, body)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 create animal without image, got %d", st)
		}
	}

	id := createAnimal(t, admin, ts.URL, "Tareco")

	// Lectura pública
	var a map[string]any
	{
		st, body := doReq(t, anon, "GET", ts.URL+"/api/animais/"+strconv.Itoa(id), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 public get animal, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &a)
	}
	{
		st, body := doReq(t, anon, "GET", ts.URL+"/imagens/"+a["imagem"].(string), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 image, got %d", st)
		}
		if !bytes.HasPrefix(body, []byte{0xFF, 0xD8}) {
			t.Fatalf("expected jpeg bytes")
		}
	}

	// Borrado y segundo borrado
	{
		st, _ := doReq(t, admin, "DELETE", ts.URL+"/api/animais/"+strconv.Itoa(id), nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete animal, got %d", st)
		}
		st, _ = doReq(t, admin, "DELETE", ts.URL+"/api/animais/"+strconv.Itoa(id), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 second delete, got %d", st)
		}
	}
}

func TestHTTP_AuthFlow(t *testing.T) {
	ts := newServer(t)
	c := newClient(t)

	// Anónimo: 401 en rutas de usuario
	{
		st, _ := doReq(t, c, "GET", ts.URL+"/api/intencaodeadocao", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 anonymous intents, got %d", st)
		}
	}

	register(t, c, ts.URL, "maria@example.com")

	// Email repetido => 409
	{
		other := newClient(t)
		st, _ := doReq(t, other, "POST", ts.URL+"/api/AuthController/register", registerPayload("MARIA@example.com"))
		if st != http.StatusConflict {
			t.Fatalf("expected 409 duplicate email, got %d", st)
		}
	}

	{
		st, body := doReq(t, c, "GET", ts.URL+"/api/Utilizador/me", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 me, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"email":"maria@example.com"`) {
			t.Fatalf("unexpected me body=%s", string(body))
		}
	}

	// Password incorrecta
	{
		other := newClient(t)
		st, _ := doReq(t, other, "POST", ts.URL+"/api/AuthController/login", map[string]any{
			"email": "maria@example.com", "password": "wrong-pass",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 wrong password, got %d", st)
		}
	}

	// Logout es idempotente y corta la sesión
	for i := 0; i < 2; i++ {
		st, _ := doReq(t, c, "POST", ts.URL+"/api/AuthController/logout", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
	}
	{
		st, _ := doReq(t, c, "GET", ts.URL+"/api/Utilizador/me", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func TestHTTP_HealthMetricsSwagger(t *testing.T) {
	ts := newServer(t)
	c := newClient(t)

	st, body := doReq(t, c, "GET", ts.URL+"/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, string(body))
	}

	st, body = doReq(t, c, "GET", ts.URL+"/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), `devapi_http_requests_total{method="GET",route="/health",status="200"} 1`) {
		t.Fatalf("expected health request counted, body=%s", string(body))
	}

	st, body = doReq(t, c, "GET", ts.URL+"/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/api/intencaodeadocao") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func TestNewRouter_RejectsInvalidAdminSeed(t *testing.T) {
	_, err := router.NewRouter(context.Background(), router.Options{
		AdminEmail:    "not-an-email",
		AdminPassword: "x",
	})
	if err == nil {
		t.Fatalf("expected error for invalid admin seed")
	}
}

func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func login(t *testing.T, c *http.Client, baseURL, email, password string) {
	t.Helper()

	st, body := doReq(t, c, "POST", baseURL+"/api/AuthController/login", map[string]any{
		"email": email, "password": password,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}
}

func registerPayload(email string) map[string]any {
	return map[string]any{
		"nome":           "Ana Silva",
		"dataNascimento": "1990-04-25",
		"nif":            "123456789",
		"telemovel":      "912345678",
		"morada":         "Rua das Flores 1",
		"codPostal":      "1000-001",
		"email":          email,
		"pais":           "Portugal",
		"password":       "segredo1",
	}
}

func register(t *testing.T, c *http.Client, baseURL, email string) int {
	t.Helper()

	st, body := doReq(t, c, "POST", baseURL+"/api/AuthController/register", registerPayload(email))
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID      int  `json:"id"`
		IsAdmin bool `json:"isAdmin"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID <= 0 || resp.IsAdmin {
		t.Fatalf("register: unexpected identity body=%s", string(body))
	}
	return resp.ID
}

func createAnimal(t *testing.T, c *http.Client, baseURL, name string) int {
	t.Helper()

	body, ct := animalForm(t, name, true)
	req, err := http.NewRequest("POST", baseURL+"/api/animais", body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", ct)

	res, err := c.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	raw, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", res.StatusCode, string(raw))
	}

	var resp struct {
		ID int `json:"id"`
	}
	_ = json.Unmarshal(raw, &resp)
	if resp.ID <= 0 {
		t.Fatalf("create animal: missing id body=%s", string(raw))
	}
	return resp.ID
}

func animalForm(t *testing.T, name string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for _, kv := range [][2]string{
		{"nome", name}, {"raca", "SRD"}, {"idade", "2 anos"},
		{"genero", "Macho"}, {"especie", "Cão"}, {"cor", "Castanho"},
	} {
		if err := mw.WriteField(kv[0], kv[1]); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if withImage {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="imagem"; filename="foto.jpg"`)
		h.Set("Content-Type", "image/jpeg")
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if err := jpeg.Encode(part, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil); err != nil {
			t.Fatalf("encode jpeg: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func doRaw(t *testing.T, c *http.Client, method, url, contentType string, body io.Reader) int {
	t.Helper()

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	res, err := c.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return res.StatusCode
}

func doReq(t *testing.T, c *http.Client, method, url string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
