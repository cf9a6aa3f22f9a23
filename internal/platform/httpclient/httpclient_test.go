package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON_DecodesAndSendsHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/animais/7", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"nome":"Bobi"}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"nome"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "api/animais/7", nil, nil, &out))
	assert.Equal(t, 7, out.ID)
	assert.Equal(t, "Bobi", out.Name)
}

func TestDoJSON_Non2xxReturnsHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusConflict)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodPost, "/api/AuthController/register", nil, map[string]string{"email": "a@b.c"}, nil)
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusConflict, he.StatusCode)
	assert.Equal(t, "email already registered", he.Body)
}

func TestDoJSON_RelativePathWithoutBaseURL(t *testing.T) {
	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, "/api/animais", nil, nil, nil)
	require.Error(t, err)
}

func TestDoMultipart_TextPartsAndImage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mr, err := r.MultipartReader()
		if !assert.NoError(t, err) {
			return
		}

		seen := map[string]string{}
		types := map[string]string{}
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if !assert.NoError(t, err) {
				return
			}
			b, _ := io.ReadAll(p)
			seen[p.FormName()] = string(b)
			types[p.FormName()] = p.Header.Get("Content-Type")
		}

		assert.Equal(t, "Bobi", seen["nome"])
		assert.True(t, strings.HasPrefix(types["nome"], "text/plain"))
		assert.Equal(t, "JPEGDATA", seen["imagem"])
		assert.Equal(t, "image/jpeg", types["imagem"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	var out struct {
		ID int `json:"id"`
	}
	err = c.DoMultipart(context.Background(), http.MethodPost, "/api/animais", nil, Multipart{
		Fields: []FormField{{Name: "nome", Value: "Bobi"}},
		Files: []FormFile{{
			Field:       "imagem",
			Filename:    "bobi.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("JPEGDATA"),
		}},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, out.ID)
}

func TestCookies_CapturedAndReplayed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "pawbuddy_session", Value: "abc", Path: "/"})
			w.WriteHeader(http.StatusOK)
		case "/me":
			ck, err := r.Cookie("pawbuddy_session")
			if err != nil || ck.Value != "abc" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	c.EnableCookies()

	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "/login", nil, nil, nil))
	require.NoError(t, c.DoJSON(context.Background(), http.MethodGet, "/me", nil, nil, nil))
	require.Len(t, c.Cookies(), 1)

	// Un cliente nuevo con las cookies restauradas también pasa.
	saved := c.Cookies()
	c2, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	c2.EnableCookies()
	c2.SetCookies(saved)
	require.NoError(t, c2.DoJSON(context.Background(), http.MethodGet, "/me", nil, nil, nil))

	c2.ResetCookies()
	err = c2.DoJSON(context.Background(), http.MethodGet, "/me", nil, nil, nil)
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusUnauthorized, he.StatusCode)
}

func TestMetrics_ObservesRequests(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	c.WithMetrics(m).WithRateLimit(100, 1)

	require.NoError(t, c.DoJSON(context.Background(), http.MethodDelete, "/api/animais/3", nil, nil, nil))
	require.NoError(t, c.DoJSON(context.Background(), http.MethodDelete, "/api/animais/4", nil, nil, nil))

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodDelete, "/api/animais/{id}", "204"))
	assert.Equal(t, float64(2), got)
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/api/Utilizador/me", routeLabel("/api/Utilizador/me"))
	assert.Equal(t, "/utilizadores/{id}/animais", routeLabel("/utilizadores/12/animais"))
}
