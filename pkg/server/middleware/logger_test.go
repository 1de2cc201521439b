package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := Logger(&logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside")
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/years", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	dec := json.NewDecoder(&buf)
	var inner, done map[string]interface{}
	require.NoError(t, dec.Decode(&inner))
	require.NoError(t, dec.Decode(&done))

	assert.Equal(t, "inside", inner["message"])
	assert.Equal(t, "/api/v1/years", inner["path"])
	assert.Equal(t, "GET", inner["method"])

	assert.Equal(t, "request completed", done["message"])
	assert.Equal(t, float64(http.StatusTeapot), done["status"])
	assert.Contains(t, done, "latency")
}
