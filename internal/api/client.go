// Package api es el cliente tipado del backend REST de PawBuddy.
//
// Cada método hace una sola llamada HTTP, sin reintentos. La cookie de sesión
// que devuelve el backend se guarda en el Session Store para que sobreviva
// entre ejecuciones del CLI.
package api

import (
	"context"
	"net/http"
	"time"

	"pawbuddy-client/internal/platform/httpclient"
	"pawbuddy-client/internal/platform/logger"
	"pawbuddy-client/internal/session"
)

type Options struct {
	BaseURL string
	Timeout time.Duration

	// Requests por segundo. 0 => sin límite.
	RateLimit float64
	RateBurst int

	Metrics   *httpclient.Metrics
	Session   *session.Store // nil => cookies solo en memoria
	Logger    logger.Logger
	Transport http.RoundTripper // tests
}

type Client struct {
	http    *httpclient.Client
	session *session.Store
	log     logger.Logger
}

func New(opts Options) (*Client, error) {
	hc, err := httpclient.NewWithTransport(opts.BaseURL, opts.Timeout, opts.Transport)
	if err != nil {
		return nil, err
	}
	hc.WithRateLimit(opts.RateLimit, opts.RateBurst).WithMetrics(opts.Metrics)
	hc.EnableCookies()

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		http:    hc,
		session: opts.Session,
		log:     log.With(map[string]any{"component": "api"}),
	}
	if c.session != nil {
		hc.SetCookies(c.session.Cookies())
	}
	return c, nil
}

// BaseURL del backend, sin barra final.
func (c *Client) BaseURL() string { return c.http.BaseURL }

// ImageURL arma la URL absoluta de una imagen servida por el backend.
func (c *Client) ImageURL(path string) string {
	if path == "" || path[0] != '/' {
		return path
	}
	return c.http.BaseURL + path
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	return c.call(ctx, op, http.MethodGet, path, nil, out)
}

func (c *Client) call(ctx context.Context, op, method, path string, in, out any) error {
	err := c.http.DoJSON(ctx, method, path, nil, in, out)
	return c.finish(op, method, path, err)
}

func (c *Client) multipart(ctx context.Context, op, method, path string, form httpclient.Multipart, out any) error {
	err := c.http.DoMultipart(ctx, method, path, nil, form, out)
	return c.finish(op, method, path, err)
}

// finish persiste cookies nuevas y traduce el error.
func (c *Client) finish(op, method, path string, err error) error {
	c.persistCookies()
	if err == nil {
		return nil
	}
	wrapped := wrap(op, err)
	c.log.Debug("api call failed", map[string]any{
		"op":     op,
		"method": method,
		"path":   path,
		"status": StatusCode(wrapped),
		"error":  err.Error(),
	})
	return wrapped
}

func (c *Client) persistCookies() {
	if c.session == nil {
		return
	}
	c.session.SaveCookies(c.http.Cookies())
}

// ForgetSession descarta la cookie del jar y del store sin llamar al
// backend. Se usa cuando el servidor ya rechazó la sesión.
func (c *Client) ForgetSession() {
	c.forgetCookies()
}

// forgetCookies se usa en logout: la sesión del servidor ya no vale.
func (c *Client) forgetCookies() {
	c.http.ResetCookies()
	if c.session != nil {
		c.session.SaveCookies(nil)
	}
}
