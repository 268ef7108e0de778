package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", "gemini-2.5-flash", 2*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestGenerateOK(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"porque te gusta la marca"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), "explica")
	require.NoError(t, err)
	assert.Equal(t, "porque te gusta la marca", text)
}

func TestGenerateDisabledWithoutKey(t *testing.T) {
	c := New("", "", 0)
	_, err := c.Generate(context.Background(), "explica")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, c.Enabled())
}

func TestGenerateQuotaExceeded(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "explica")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateMalformedResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{esto no es json`))
	})

	_, err := c.Generate(context.Background(), "explica")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateEmptyCandidates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), "explica")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateRespectsContextTimeout(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"candidates":[]}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Generate(ctx, "explica")
	assert.Error(t, err)
}
