package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoaryaa/p2p/internal/httpapi"
	"github.com/xoaryaa/p2p/internal/logging"
)

const validDoc = `
nodes:
  - id: input_text
    component: InputText
    outputs: {text: str}
  - id: print
    component: ConsolePrinter
    inputs: {value: str}
edges:
  - source: input_text
    source_output: text
    target: print
    target_input: value
`

const cyclicDoc = `
nodes:
  - id: a
    component: X
    inputs: {i: str}
    outputs: {o: str}
  - id: b
    component: X
    inputs: {i: str}
    outputs: {o: str}
edges:
  - {source: a, source_output: o, target: b, target_input: i}
  - {source: b, source_output: o, target: a, target_input: i}
`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := httpapi.NewHandler(logging.NewNop(), prometheus.NewRegistry())
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestValidateEndpoint(t *testing.T) {
	srv := newServer(t)

	t.Run("valid document passes", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/validate", "text/yaml", strings.NewReader(validDoc))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body httpapi.ValidateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Passed)
		require.Len(t, body.Report, 4)
		for _, entry := range body.Report {
			assert.Equal(t, "OK", entry.Status)
		}
	})

	t.Run("cyclic document fails", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/validate", "text/yaml", strings.NewReader(cyclicDoc))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body httpapi.ValidateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Passed)
	})

	t.Run("malformed document is a 400", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/validate", "text/yaml", strings.NewReader("edges: []"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestExplainEndpoint(t *testing.T) {
	srv := newServer(t)

	t.Run("renders the plan", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/explain", "text/yaml", strings.NewReader(validDoc))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		buf := new(strings.Builder)
		_, err = io.Copy(buf, resp.Body)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "01. input_text [InputText]")
	})

	t.Run("cycle is unprocessable", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/explain", "text/yaml", strings.NewReader(cyclicDoc))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestTemplateEndpoint(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/templates/ner")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	buf := new(strings.Builder)
	_, err = io.Copy(buf, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "SpaCyModel")

	resp, err = http.Get(srv.URL + "/templates/unknown")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
