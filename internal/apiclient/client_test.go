package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ghostconfig/internal/model"
)

func TestClient_OptionsAndColors(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/options", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Section{{
			Name:    "font",
			Options: []model.Option{{Key: "font-size", Type: model.OptionTypeText, DefaultValue: "13"}},
		}})
	})
	mux.HandleFunc("GET /api/colors", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Color{{Name: "Blue", Value: "89b4fa"}})
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := New(ts.URL + "/")
	sections, err := c.Options(context.Background())
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(sections) != 1 || sections[0].Options[0].Key != "font-size" {
		t.Fatalf("sections: %+v", sections)
	}
	colors, err := c.Colors(context.Background())
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	if len(colors) != 1 || colors[0].Value != "89b4fa" {
		t.Fatalf("colors: %+v", colors)
	}
}

func TestClient_SaveConfigSendsBody(t *testing.T) {
	t.Parallel()

	var got model.ConfigUpdate
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/config" {
			http.Error(w, "unexpected", http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer ts.Close()

	if err := New(ts.URL).SaveConfig(context.Background(), "font-size", "14"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got.Key != "font-size" || got.Value != "14" {
		t.Fatalf("body: got %+v", got)
	}
}

func TestClient_NonSuccessIsStatusError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "disk full", http.StatusInternalServerError)
	}))
	defer ts.Close()

	err := New(ts.URL).SaveConfig(context.Background(), "font-size", "14")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %T (%v)", err, err)
	}
	if se.Code != http.StatusInternalServerError || se.Method != http.MethodPut || se.Path != "/api/config" {
		t.Fatalf("status error: %+v", se)
	}
	if se.Body != "disk full" {
		t.Fatalf("body: got %q", se.Body)
	}
}

func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":`))
	}))
	defer ts.Close()

	if _, err := New(ts.URL).Options(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestClient_I18nForwardsAcceptLanguage(t *testing.T) {
	t.Parallel()

	var header string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Accept-Language")
		_ = json.NewEncoder(w).Encode(model.I18nBundle{Languages: []string{"en", "ja"}, DefaultLang: "ja"})
	}))
	defer ts.Close()

	c := New(ts.URL)
	c.AcceptLanguage = "ja-JP"
	b, err := c.I18n(context.Background())
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}
	if header != "ja-JP" || b.DefaultLang != "ja" {
		t.Fatalf("header=%q defaultLang=%q", header, b.DefaultLang)
	}
}

func TestClient_ExitFailureIsExitError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	err := New(url).Exit(context.Background())
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExitError, got %T (%v)", err, err)
	}
}

func TestClient_HonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := New(ts.URL).Fonts(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
