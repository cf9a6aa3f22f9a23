package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 10 * time.Second

	RequestIDHeader = "X-Request-ID"
)

// Client envuelve *http.Client con helpers comunes para el cliente de la API.
type Client struct {
	HTTP    *http.Client
	BaseURL string // opcional; si se define, DoJSON puede recibir paths relativos

	// Opcionales.
	Limiter *rate.Limiter
	Metrics *Metrics
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if err := c.setBaseURL(baseURL); err != nil {
		return nil, err
	}
	return c, nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	c := &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
	if err := c.setBaseURL(baseURL); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) setBaseURL(baseURL string) error {
	if strings.TrimSpace(baseURL) == "" {
		return nil
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return nil
}

// WithRateLimit limita requests salientes (perSecond <= 0 => sin límite).
func (c *Client) WithRateLimit(perSecond float64, burst int) *Client {
	if perSecond <= 0 {
		c.Limiter = nil
		return c
	}
	if burst <= 0 {
		burst = 1
	}
	c.Limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	return c
}

// WithMetrics instrumenta cada request.
func (c *Client) WithMetrics(m *Metrics) *Client {
	c.Metrics = m
	return c
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON hace un request JSON.
// - method: GET/POST/etc
// - pathOrURL: puede ser URL absoluta o path relativo si BaseURL está seteado
// - headers: headers extra (opcional)
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Retorna error si status no es 2xx.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, pathOrURL, headers, body, contentType, out)
}

// FormField es una parte text/plain del multipart.
type FormField struct {
	Name  string
	Value string
}

// FormFile es una parte binaria del multipart.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string // default application/octet-stream
	Content     io.Reader
}

// Multipart describe un body multipart/form-data. El orden de Fields se respeta.
type Multipart struct {
	Fields []FormField
	Files  []FormFile
}

// DoMultipart envía un multipart/form-data y decodifica la respuesta JSON en out.
func (c *Client) DoMultipart(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	form Multipart,
	out any,
) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range form.Fields {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, escapeQuotes(f.Name)))
		h.Set("Content-Type", "text/plain; charset=utf-8")
		pw, err := mw.CreatePart(h)
		if err != nil {
			return fmt.Errorf("httpclient: multipart field %s: %w", f.Name, err)
		}
		if _, err := io.WriteString(pw, f.Value); err != nil {
			return fmt.Errorf("httpclient: multipart field %s: %w", f.Name, err)
		}
	}

	for _, f := range form.Files {
		if f.Content == nil {
			continue
		}
		ct := strings.TrimSpace(f.ContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(f.Field), escapeQuotes(f.Filename)))
		h.Set("Content-Type", ct)
		pw, err := mw.CreatePart(h)
		if err != nil {
			return fmt.Errorf("httpclient: multipart file %s: %w", f.Field, err)
		}
		if _, err := io.Copy(pw, f.Content); err != nil {
			return fmt.Errorf("httpclient: multipart file %s: %w", f.Field, err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("httpclient: multipart close: %w", err)
	}

	return c.do(ctx, method, pathOrURL, headers, &buf, mw.FormDataContentType(), out)
}

func (c *Client) do(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	body io.Reader,
	contentType string,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("httpclient: rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	// Defaults
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Extra headers
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.Metrics.observe(method, req.URL.Path, 0, time.Since(start))
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()
	c.Metrics.observe(method, req.URL.Path, resp.StatusCode, time.Since(start))

	// Leer body (limitado) para errores / decode
	raw, _ := readAtMost(resp.Body, 1<<20) // 1MB max

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}

	return nil
}

// EnableCookies instala un cookie jar en memoria: guarda lo que llega en
// Set-Cookie y lo adjunta a cada request siguiente.
func (c *Client) EnableCookies() {
	c.HTTP.Jar = NewJar()
}

// ResetCookies descarta todas las cookies conocidas.
func (c *Client) ResetCookies() {
	if c.HTTP.Jar != nil {
		c.HTTP.Jar = NewJar()
	}
}

// Cookies devuelve las cookies vigentes para BaseURL.
func (c *Client) Cookies() []*http.Cookie {
	u, ok := c.baseURL()
	if !ok || c.HTTP.Jar == nil {
		return nil
	}
	return c.HTTP.Jar.Cookies(u)
}

// SetCookies precarga cookies para BaseURL (p.ej. restauradas de disco).
func (c *Client) SetCookies(cookies []*http.Cookie) {
	u, ok := c.baseURL()
	if !ok || c.HTTP.Jar == nil || len(cookies) == 0 {
		return
	}
	c.HTTP.Jar.SetCookies(u, cookies)
}

func (c *Client) baseURL() (*url.URL, bool) {
	if strings.TrimSpace(c.BaseURL) == "" {
		return nil, false
	}
	u, err := url.Parse(c.BaseURL + "/")
	if err != nil {
		return nil, false
	}
	return u, true
}

// NewJar crea un cookie jar con la lista de sufijos públicos.
func NewJar() http.CookieJar {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return jar
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	// Si ya es URL absoluta, úsala tal cual.
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	// Si no es absoluta, requiere BaseURL.
	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
