package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ghostconfig/internal/model"
)

type fakeSchema struct {
	opts     []model.Option
	fonts    []string
	fontsErr error
}

func (f fakeSchema) Options(context.Context) ([]model.Option, error) { return f.opts, nil }
func (f fakeSchema) Fonts(context.Context) ([]string, error)         { return f.fonts, f.fontsErr }

type memConfig struct {
	mu      sync.Mutex
	values  map[string]string
	failSet error
}

func (m *memConfig) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *memConfig) Values() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]string{}
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m *memConfig) Set(key, value string) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func testOptions() []model.Option {
	return []model.Option{
		{Key: "font-family", DefaultValue: "", Description: "The font families to use."},
		{Key: "font-size", DefaultValue: "13", Description: "Font size in points."},
		{Key: "background", DefaultValue: "282c34", Description: "Background color for the window."},
		{Key: "theme", DefaultValue: "", Description: "A theme to use. Affects font rendering colors."},
	}
}

func newTestServer(t *testing.T, sch fakeSchema, cfg *memConfig) (*Server, *httptest.Server) {
	t.Helper()
	if sch.opts == nil {
		sch.opts = testOptions()
	}
	if cfg == nil {
		cfg = &memConfig{values: map[string]string{}}
	}
	s, err := New(context.Background(), Config{Schema: sch, Config: cfg, Lang: "en"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func do(t *testing.T, method, url, body string, hdr map[string]string) *http.Response {
	t.Helper()
	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	} else {
		rd = strings.NewReader("")
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestNew_RejectsEmptySchema(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), Config{
		Schema: fakeSchema{opts: []model.Option{}},
		Config: &memConfig{values: map[string]string{}},
	})
	if err == nil {
		t.Fatalf("expected error for empty schema")
	}
}

func TestServer_OptionsGroupedWithCurrentValues(t *testing.T) {
	t.Parallel()

	cfg := &memConfig{values: map[string]string{"font-size": "14"}}
	_, ts := newTestServer(t, fakeSchema{}, cfg)

	resp := do(t, http.MethodGet, ts.URL+"/api/options", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusOK)
	}
	if resp.Header.Get(requestIDHeader) == "" {
		t.Fatalf("expected %s header", requestIDHeader)
	}
	var sections []model.Section
	if err := json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var names []string
	for _, s := range sections {
		names = append(names, s.Name)
	}
	if got, want := strings.Join(names, ","), "appearance,font"; got != want {
		t.Fatalf("sections: got %q want %q", got, want)
	}
	var fontSize model.Option
	for _, o := range sections[1].Options {
		if o.Key == "font-size" {
			fontSize = o
		}
	}
	if fontSize.CurrentValue != "14" || fontSize.Section != "font" || fontSize.Type != model.OptionTypeText {
		t.Fatalf("font-size: %+v", fontSize)
	}
	if sections[1].Options[0].Type != model.OptionTypeFont {
		t.Fatalf("font-family type: got %q", sections[1].Options[0].Type)
	}
	if sections[0].Options[0].Type != model.OptionTypeColor {
		t.Fatalf("background type: got %q", sections[0].Options[0].Type)
	}
}

func TestServer_MethodMismatchIs405(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, fakeSchema{}, nil)
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/options"},
		{http.MethodDelete, "/api/config"},
		{http.MethodGet, "/api/exit"},
		{http.MethodPut, "/api/fonts"},
	}
	for _, tc := range cases {
		resp := do(t, tc.method, ts.URL+tc.path, "", nil)
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: got %d want %d", tc.method, tc.path, resp.StatusCode, http.StatusMethodNotAllowed)
		}
	}
}

func TestServer_PutConfig(t *testing.T) {
	t.Parallel()

	cfg := &memConfig{values: map[string]string{}}
	_, ts := newTestServer(t, fakeSchema{}, cfg)

	resp := do(t, http.MethodPut, ts.URL+"/api/config", `{"key":"font-size","value":"14"}`, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusOK)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body: %v", body)
	}
	if got := cfg.Get("font-size"); got != "14" {
		t.Fatalf("stored: got %q want %q", got, "14")
	}

	resp = do(t, http.MethodGet, ts.URL+"/api/config", "", nil)
	var values map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&values); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if values["font-size"] != "14" {
		t.Fatalf("config: %v", values)
	}
}

func TestServer_PutConfigErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cfg  *memConfig
		body string
		want int
	}{
		{name: "bad json", cfg: &memConfig{values: map[string]string{}}, body: `{`, want: http.StatusBadRequest},
		{name: "missing key", cfg: &memConfig{values: map[string]string{}}, body: `{"value":"x"}`, want: http.StatusBadRequest},
		{name: "write failure", cfg: &memConfig{values: map[string]string{}, failSet: errors.New("disk full")}, body: `{"key":"font-size","value":"14"}`, want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, ts := newTestServer(t, fakeSchema{}, tc.cfg)
			resp := do(t, http.MethodPut, ts.URL+"/api/config", tc.body, nil)
			if resp.StatusCode != tc.want {
				t.Fatalf("status: got %d want %d", resp.StatusCode, tc.want)
			}
		})
	}
}

func TestServer_Fonts(t *testing.T) {
	t.Parallel()

	_, ok := newTestServer(t, fakeSchema{fonts: []string{"Fira Code", "JetBrains Mono"}}, nil)
	resp := do(t, http.MethodGet, ok.URL+"/api/fonts", "", nil)
	var fonts []string
	if err := json.NewDecoder(resp.Body).Decode(&fonts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fonts) != 2 || fonts[0] != "Fira Code" {
		t.Fatalf("fonts: %v", fonts)
	}

	_, failing := newTestServer(t, fakeSchema{fontsErr: errors.New("ghostty missing")}, nil)
	resp = do(t, http.MethodGet, failing.URL+"/api/fonts", "", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status: got %d want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestServer_ColorsAndHealth(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, fakeSchema{}, nil)
	resp := do(t, http.MethodGet, ts.URL+"/api/colors", "", nil)
	var colors []model.Color
	if err := json.NewDecoder(resp.Body).Decode(&colors); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(colors) != 13 {
		t.Fatalf("colors: got %d want 13", len(colors))
	}

	resp = do(t, http.MethodGet, ts.URL+"/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health: got %d", resp.StatusCode)
	}
}

func TestServer_IndexRendersAPIDocs(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, fakeSchema{}, nil)
	resp := do(t, http.MethodGet, ts.URL+"/", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("index: got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type: %q", ct)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	body := string(b)
	if !strings.Contains(body, "<h1>ghostconfig API</h1>") || !strings.Contains(body, "<table>") {
		t.Fatalf("expected rendered markdown, got:\n%s", body)
	}
	if !strings.Contains(body, "4 options loaded.") {
		t.Fatalf("expected option count, got:\n%s", body)
	}

	resp = do(t, http.MethodGet, ts.URL+"/nope", "", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown path: got %d", resp.StatusCode)
	}
}

func TestServer_I18nDefaultLang(t *testing.T) {
	t.Parallel()

	_, ts := newTestServer(t, fakeSchema{}, nil)
	cases := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"ja-JP,ja;q=0.9,en;q=0.8", "ja"},
		{"fr-FR", "en"},
	}
	for _, tc := range cases {
		hdr := map[string]string{}
		if tc.header != "" {
			hdr["Accept-Language"] = tc.header
		}
		resp := do(t, http.MethodGet, ts.URL+"/api/i18n", "", hdr)
		var b model.I18nBundle
		if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if b.DefaultLang != tc.want {
			t.Fatalf("Accept-Language %q: got %q want %q", tc.header, b.DefaultLang, tc.want)
		}
		if !b.HasLanguage("ja") || b.Messages["ja"]["app.title"] == "" {
			t.Fatalf("bundle missing ja messages")
		}
	}
}

func TestServer_CompressesWhenAccepted(t *testing.T) {
	t.Parallel()

	var opts []model.Option
	for i := 0; i < 40; i++ {
		opts = append(opts, model.Option{
			Key:         fmt.Sprintf("keybind-%02d", i),
			Description: "Bind a key sequence to an action. Repeated to build up a table.",
		})
	}
	_, ts := newTestServer(t, fakeSchema{opts: opts}, nil)

	resp := do(t, http.MethodGet, ts.URL+"/api/options", "", map[string]string{"Accept-Encoding": "gzip"})
	if got := resp.Header.Get("Content-Encoding"); got != "gzip" {
		t.Fatalf("Content-Encoding: got %q want %q", got, "gzip")
	}
}

func TestServer_ExitStopsServe(t *testing.T) {
	t.Parallel()

	s, err := New(context.Background(), Config{
		Schema:          fakeSchema{opts: testOptions()},
		Config:          &memConfig{values: map[string]string{}},
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- s.Serve(context.Background(), ln) }()

	resp := do(t, http.MethodPost, "http://"+ln.Addr().String()+"/api/exit", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("exit status: got %d", resp.StatusCode)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after exit request")
	}
	select {
	case <-s.ExitRequested():
	default:
		t.Fatalf("ExitRequested not closed")
	}
}

func TestServer_ContextCancelStopsServe(t *testing.T) {
	t.Parallel()

	s, err := New(context.Background(), Config{
		Schema: fakeSchema{opts: testOptions()},
		Config: &memConfig{values: map[string]string{}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
}
