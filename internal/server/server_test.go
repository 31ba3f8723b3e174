package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/matzehuels/vennsets/pkg/config"
	"github.com/matzehuels/vennsets/pkg/history"
	"github.com/matzehuels/vennsets/pkg/pipeline"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) (*Server, *history.MemoryStore) {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	store := history.NewMemoryStore(10)
	runner.History = store
	cfg := config.Default().Server
	cfg.MaxBodyBytes = 4096
	return New(runner, cfg, logger), store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type operationBody struct {
	Result      []any  `json:"result"`
	Cardinality int    `json:"cardinality"`
	Image       string `json:"image"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

func TestOperation(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name  string
		path  string
		body  string
		want  []any
		count int
	}{
		{"intersection", "/api/v1/operation", `{"A":[1,2,3],"B":[2,3,4],"operation":"intersection"}`, []any{2.0, 3.0}, 2},
		{"legacy route and field", "/operacao", `{"A":[1,2],"B":[3],"operacao":"uniao"}`, []any{1.0, 2.0, 3.0}, 3},
		{"short field", "/api/v1/operation", `{"A":["x"],"B":["x"],"op":"difference"}`, []any{}, 0},
		{"sorted", "/api/v1/operation", `{"A":[3,1],"B":[2],"operation":"union","sort":true}`, []any{1.0, 2.0, 3.0}, 3},
		{"cartesian", "/api/v1/operation", `{"A":[1],"B":["x","y"],"operation":"cartesian_product"}`, []any{"(1, x)", "(1, y)"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s.Handler(), http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body operationBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Result)
			assert.Equal(t, tt.count, body.Cardinality)
			assert.True(t, strings.HasPrefix(body.Image, "data:image/png;base64,"))
			assert.Positive(t, body.Width)
			assert.Positive(t, body.Height)
		})
	}
}

func TestOperationErrors(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"invalid operation", `{"A":[1],"B":[2],"operation":"foo"}`, http.StatusBadRequest, "INVALID_OPERATION"},
		{"missing operation", `{"A":[1],"B":[2]}`, http.StatusBadRequest, "INVALID_OPERATION"},
		{"malformed json", `{"A":[1],`, http.StatusBadRequest, "INVALID_INPUT"},
		{"nested element", `{"A":[[1]],"B":[],"operation":"union"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"body too large", `{"A":["` + strings.Repeat("x", 5000) + `"],"B":[],"operation":"union"}`, http.StatusRequestEntityTooLarge, "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s.Handler(), http.MethodPost, "/api/v1/operation", tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, string(body.Code))
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestOperationsList(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/operations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ops []operationInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ops))
	require.Len(t, ops, 6)
	assert.Equal(t, "union", ops[0].Name)
	assert.Equal(t, "cartesian_product", ops[5].Name)
	for _, op := range ops {
		assert.NotEmpty(t, op.Title, op.Name)
	}
}

func TestHistory(t *testing.T) {
	s, store := newTestServer(t)

	for _, op := range []string{"union", "intersection", "difference"} {
		rec := do(t, s.Handler(), http.MethodPost, "/api/v1/operation",
			`{"A":[1,2],"B":[2,3],"operation":"`+op+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	require.Equal(t, 3, store.Len())

	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/history?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Records, 2)
	assert.Equal(t, "difference", body.Records[0].Operation)
	assert.Equal(t, "intersection", body.Records[1].Operation)

	rec = do(t, s.Handler(), http.MethodGet, "/api/v1/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryEmpty(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"records":[]}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}

func TestCORS(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/operation", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s.Handler(), http.MethodGet, "/api/v1/operation", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServeShutdown(t *testing.T) {
	s, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 5 * time.Second}
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = client.Get("http://" + ln.Addr().String() + "/healthz")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	client.CloseIdleConnections()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
