package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestSignUp_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/signup", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ann", body["name"])
		assert.Equal(t, "ann@x.com", body["email"])
		assert.Equal(t, "secret1", body["password"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"User registered successfully","user":{"id":"1","name":"Ann","email":"ann@x.com"}}`))
	})

	user, err := c.SignUp(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, &User{ID: "1", Name: "Ann", Email: "ann@x.com"}, user)
}

func TestLogin_ErrorBodyBecomesAPIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid email or password"}`))
	})

	_, err := c.Login(context.Background(), "ann@x.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestDashboard_ReturnsRawPayload(t *testing.T) {
	const payload = `{"userStats":{"totalUsers":3},"topProducts":[]}`

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	})

	got, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(got))
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Server is running....."))
	})
	require.NoError(t, c.Ping(context.Background()))
}

func TestPing_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, time.Second)
	require.Error(t, c.Ping(context.Background()))
}

func TestAPIError_NonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	err := c.Ping(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}
