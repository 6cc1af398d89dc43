package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protein_analyzer_go/analyzer"
	"protein_analyzer_go/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.DefaultServerConfig()
	cfg.MaxChars = 20
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(NewServer(cfg, logger).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, rawURL string) (int, string) {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIndexForm(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Enter Protein Sequence:")
	assert.Contains(t, body, `maxlength="20"`)
	assert.NotContains(t, body, "Analysis Complete")
}

func TestIndexAnalyzes(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/?sequence=acd")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Analysis Complete")
	assert.Contains(t, body, "289.32")
	assert.Contains(t, body, "33.33")
	assert.Contains(t, body, "<svg")
}

func TestIndexPost(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.PostForm(ts.URL+"/", url.Values{"sequence": {"WWWW"}})
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "744.88")
}

func TestIndexInvalid(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/?sequence=acdz")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Invalid characters found in the sequence.")
	assert.NotContains(t, body, "<svg")
}

func TestIndexTooLong(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/?sequence="+strings.Repeat("A", 21))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Sequence exceeds 20 characters.")
}

func TestIndexNotFound(t *testing.T) {
	ts := newTestServer(t)

	status, _ := get(t, ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPIGet(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/api/analyze?sequence=ACD")
	require.Equal(t, http.StatusOK, status)

	var res analyzer.Result
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, 3, res.Length)
	assert.Equal(t, map[rune]int{'A': 1, 'C': 1, 'D': 1}, res.Composition)
	assert.Equal(t, 289.32, res.MolecularWeight)
	assert.Equal(t, 33.33, res.HydrophobicRatio)
}

func TestAPIPostJSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"sequence":"wwww"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res analyzer.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, 100.0, res.HydrophobicRatio)
}

func TestAPIErrors(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/api/analyze?sequence=MKV1")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid characters found in the sequence."}`, body)

	resp, err := http.Post(ts.URL+"/api/analyze", "application/json", strings.NewReader(`{"sequence":`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/analyze", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestAPIEmpty(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/api/analyze")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"length":0,"composition":{},"molecularWeight":0,"hydrophobicRatio":0}`, body)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	status, body := get(t, ts.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok\n", body)
}

func TestListenAndServeShutdown(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.Addr = "127.0.0.1:0"
	srv := NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestListenAndServeBadAddr(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.Addr = "127.0.0.1:-1"
	srv := NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*shutdownTimeout)
	defer cancel()
	assert.Error(t, srv.ListenAndServe(ctx))
}
