package clientservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCreateClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/clients", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":315,"name":"Ivan Petrov","email":"ivan@example.com"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	id, err := client.CreateClient(context.Background(), &CreateClientRequest{
		Name:  "Ivan Petrov",
		Email: "ivan@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(315), id)
}

func TestCreateClient_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"error":"duplicate email"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	_, err := client.CreateClient(context.Background(), &CreateClientRequest{Name: "Ivan Petrov"})

	assert.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "duplicate email")
}

func TestCreateClient_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	_, err := client.CreateClient(context.Background(), &CreateClientRequest{Name: "Ivan Petrov"})

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
