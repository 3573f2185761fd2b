package generate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"probelab/internal/trajectory"
)

func chatServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		APIKey:    "test-key",
		BaseURL:   srv.URL,
		Model:     "test-model",
		Timeout:   5 * time.Second,
		MaxTokens: 100,
	})
	return srv, client
}

func TestClientGenerate(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  The capital is Paris.  "}},
			},
		})
	})

	messages := []trajectory.Message{
		{Role: trajectory.RoleSystem, Content: "Be helpful."},
		{Role: trajectory.RoleUser, Content: "Capital of France?"},
	}
	got, err := client.Generate(context.Background(), messages)
	require.NoError(t, err)
	assert.Equal(t, "The capital is Paris.", got, "response is trimmed")

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, 100, gotReq.MaxTokens)
	assert.Equal(t, messages, gotReq.Messages)
}

func TestClientGenerateAPIError(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"type": "rate_limit", "message": "slow down"},
		})
	})

	_, err := client.Generate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit")
	assert.Contains(t, err.Error(), "slow down")
}

func TestClientGenerateBadStatus(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("{}"))
	})

	_, err := client.Generate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClientGenerateNoChoices(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Generate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClientGenerateContextCancel(t *testing.T) {
	_, client := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server can detect the client disconnect;
		// otherwise the request context is never cancelled and srv.Close
		// deadlocks in cleanup.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.Generate(ctx, nil)
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("k")
	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	assert.Equal(t, "k", cfg.APIKey)
	assert.NotZero(t, cfg.Timeout)
}

func TestScripted(t *testing.T) {
	s := NewScripted("first", "second")

	got, err := s.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	got, err = s.Generate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "second", got)
	assert.Equal(t, 2, s.Calls())

	_, err = s.Generate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted after 2")
}
