package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusRequestEntityTooLarge, ErrPayloadTooLarge},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusServiceUnavailable, ErrBadGateway},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			resp, err := resty.New().R().Get(srv.URL)
			require.NoError(t, err)
			assert.ErrorIs(t, mapHTTPError(resp), tt.want)
		})
	}
}

func TestMapHTTPError_SuccessAndUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/teapot" {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL + "/ok")
	require.NoError(t, err)
	assert.NoError(t, mapHTTPError(resp))

	resp, err = resty.New().R().Get(srv.URL + "/teapot")
	require.NoError(t, err)
	err = mapHTTPError(resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestMapHTTPError_Body(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message field", body: `{"message":"conversation not found"}`, want: "not found: conversation not found"},
		{name: "error field", body: `{"error":"conversation not found"}`, want: "not found: conversation not found"},
		{name: "plain text", body: "conversation not found\n", want: "not found: conversation not found"},
		{name: "empty json", body: `{}`, want: "not found: {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := resty.New().R().Get(srv.URL)
			require.NoError(t, err)
			assert.EqualError(t, mapHTTPError(resp), tt.want)
		})
	}
}
