package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/canyfix/repairdesk/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedTimeout time.Duration
	}{
		{
			name:            "Valid configuration",
			config:          Config{BaseURL: "https://api.canyfix.in", Timeout: 30 * time.Second},
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "Default timeout",
			config:          Config{BaseURL: "http://localhost:8000"},
			expectedTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			require.NotNil(t, client)
			assert.Equal(t, tt.config.BaseURL, client.baseURL)
			require.NotNil(t, client.httpClient)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repair/leads/42", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "token-1", r.Header.Get(constants.HeaderRepairToken))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 30 * time.Second})

	resp, err := client.Get(context.Background(), "/repair/leads/42", WithHeader(constants.HeaderRepairToken, "token-1"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, `{"success": true}`, string(body))
}

func TestClient_WithHeader_SkipsEmptyValue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header[http.CanonicalHeaderKey(constants.HeaderRepairToken)]
		assert.False(t, present)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	resp, err := client.Get(context.Background(), "/repair/leads/42", WithHeader(constants.HeaderRepairToken, ""))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestClient_Post(t *testing.T) {
	payload := map[string]interface{}{
		"phone_number": "9876543210",
		"type":         "login",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/repair/send-otp", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, payload, received)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/", Timeout: 30 * time.Second})

	resp, err := client.Post(context.Background(), "/repair/send-otp", payload)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_PutAndDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repairmen/3", r.URL.Path)
		assert.Equal(t, "admin-key", r.Header.Get(constants.HeaderAPIKey))
		switch r.Method {
		case http.MethodPut:
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "admin-key"})
	ctx := context.Background()

	putResp, err := client.Put(ctx, "/repairmen/3", map[string]string{"name": "Ravi"})
	require.NoError(t, err)
	putResp.Body.Close()
	assert.Equal(t, http.StatusOK, putResp.StatusCode)

	delResp, err := client.Delete(ctx, "/repairmen/3")
	require.NoError(t, err)
	delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
}

func TestClient_Do_PropagatesRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(constants.HeaderRequestID))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	ctx := context.WithValue(context.Background(), constants.CtxRequestID, "req-42") //nolint:staticcheck

	resp, err := client.Do(ctx, http.MethodGet, "/", nil)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestClient_Do_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 30 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := client.Do(ctx, http.MethodGet, "/slow", nil)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})

	resp, err := client.Get(context.Background(), "/slow")

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestClient_Do_InvalidBody(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://api.canyfix.in"})

	resp, err := client.Do(context.Background(), http.MethodPost, "/repair/send-otp", make(chan int))

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "marshal body")
}

func TestClient_Do_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "error": "internal server error", "code": 500}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	// HTTP error statuses are returned as responses, not errors
	resp, err := client.Do(context.Background(), http.MethodGet, "/error", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
