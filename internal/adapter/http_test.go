// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/models"
)

const testToken = "session-token"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		SessionToken:   testToken,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// requireSession asserts that both the bearer header and the cookie carry the
// session token.
func requireSession(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
	cookie, err := r.Cookie(SessionCookieName)
	if assert.NoError(t, err) {
		assert.Equal(t, testToken, cookie.Value)
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any, status int) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func newServer(t *testing.T, route func(r chi.Router)) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	route(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	require.Error(t, err)

	for _, address := range []string{"http://", "https://", "https:///"} {
		_, err = NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: address}, logger.Nop())
		require.Error(t, err, address)
	}
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")
	a.SetToken("  abc ")
	assert.Equal(t, "abc", a.Token())
}

func TestAuthedRequest_NoSession(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")
	a.SetToken("")

	_, err := a.Me(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

// ── Identity ─────────────────────────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	want := models.CurrentUser{
		ID:        "u1",
		Username:  "alice",
		PublicKey: "cHVi",
		Vault:     &models.KeyVault{Salt: "s", Nonce: "n", Ciphertext: "c"},
	}

	srv := newServer(t, func(r chi.Router) {
		r.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			requireSession(t, r)
			writeJSON(t, w, want, http.StatusOK)
		})
	})

	got, err := newTestAdapter(t, srv.URL).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.HasVault())
}

func TestMe_Unauthorized(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "session expired", http.StatusUnauthorized)
		})
	})

	_, err := newTestAdapter(t, srv.URL).Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPublishKeys_Success(t *testing.T) {
	body := models.PublishKeysRequest{
		PublicKey: "cHVi",
		Vault:     models.KeyVault{Salt: "s", Nonce: "n", Ciphertext: "c"},
	}

	srv := newServer(t, func(r chi.Router) {
		r.Put("/users/me/keys", func(w http.ResponseWriter, r *http.Request) {
			requireSession(t, r)
			var got models.PublishKeysRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, body, got)
			w.WriteHeader(http.StatusNoContent)
		})
	})

	require.NoError(t, newTestAdapter(t, srv.URL).PublishKeys(context.Background(), body))
}

func TestPublishKeys_Conflict(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Put("/users/me/keys", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "keys already set", http.StatusConflict)
		})
	})

	err := newTestAdapter(t, srv.URL).PublishKeys(context.Background(), models.PublishKeysRequest{})
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Conversations ────────────────────────────────────────────────────────────

func TestListConversations_Success(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/conversations", func(w http.ResponseWriter, r *http.Request) {
			requireSession(t, r)
			assert.Equal(t, "c-2", r.URL.Query().Get("cursor"))
			assert.Equal(t, "20", r.URL.Query().Get("limit"))
			writeJSON(t, w, models.ConversationPage{
				Data:       []models.Conversation{{ID: "conv-1"}},
				Pagination: models.Pagination{NextCursor: "c-3", HasMore: true},
			}, http.StatusOK)
		})
	})

	page, err := newTestAdapter(t, srv.URL).ListConversations(context.Background(), "c-2", 20)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "conv-1", page.Data[0].ID)
	assert.True(t, page.Pagination.HasMore)
}

func TestGetConversation_NotFound(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/conversations/{id}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "missing", chi.URLParam(r, "id"))
			http.Error(w, "no such conversation", http.StatusNotFound)
		})
	})

	_, err := newTestAdapter(t, srv.URL).GetConversation(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Messages ─────────────────────────────────────────────────────────────────

func TestListMessages_FirstPageHasNoCursor(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "conv-1", chi.URLParam(r, "id"))
			assert.False(t, r.URL.Query().Has("cursor"))
			writeJSON(t, w, models.MessagePage{
				Data: []models.Message{{ID: "m2"}, {ID: "m1"}},
			}, http.StatusOK)
		})
	})

	page, err := newTestAdapter(t, srv.URL).ListMessages(context.Background(), "conv-1", "", 0)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "m2", page.Data[0].ID)
}

func TestSendMessage_Success(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
			requireSession(t, r)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "tmp-1", body["clientId"])
			assert.Equal(t, "text", body["kind"])
			assert.NotContains(t, body, "conversationId")
			writeJSON(t, w, models.Message{ID: "m9", ConversationID: chi.URLParam(r, "id")}, http.StatusCreated)
		})
	})

	got, err := newTestAdapter(t, srv.URL).SendMessage(context.Background(), models.SendMessageRequest{
		ConversationID: "conv-1",
		ClientID:       "tmp-1",
		Kind:           models.KindText,
		Nonce:          "bm9uY2U=",
		Content:        "Y3Q=",
	})
	require.NoError(t, err)
	assert.Equal(t, "m9", got.ID)
	assert.Equal(t, "conv-1", got.ConversationID)
}

func TestSendMessage_BadGateway(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/conversations/{id}/messages", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
	})

	_, err := newTestAdapter(t, srv.URL).SendMessage(context.Background(), models.SendMessageRequest{ConversationID: "c"})
	assert.ErrorIs(t, err, ErrBadGateway)
}

func TestMarkRead(t *testing.T) {
	called := false
	srv := newServer(t, func(r chi.Router) {
		r.Post("/conversations/{id}/read", func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusNoContent)
		})
	})

	require.NoError(t, newTestAdapter(t, srv.URL).MarkRead(context.Background(), "conv-1"))
	assert.True(t, called)
}

// ── Media ────────────────────────────────────────────────────────────────────

func TestUploadMedia_Success(t *testing.T) {
	blob := []byte{0xde, 0xad, 0xbe, 0xef}

	srv := newServer(t, func(r chi.Router) {
		r.Post("/media", func(w http.ResponseWriter, r *http.Request) {
			requireSession(t, r)
			file, _, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			got, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, blob, got)
			writeJSON(t, w, models.MediaUpload{URL: "/media/abc"}, http.StatusCreated)
		})
	})

	upload, err := newTestAdapter(t, srv.URL).UploadMedia(context.Background(), blob)
	require.NoError(t, err)
	assert.Equal(t, "/media/abc", upload.URL)
}

func TestUploadMedia_EmptyURL(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/media", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, models.MediaUpload{}, http.StatusCreated)
		})
	})

	_, err := newTestAdapter(t, srv.URL).UploadMedia(context.Background(), []byte{1})
	require.Error(t, err)
}

func TestFetchMedia_RelativeURL(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/media/{id}", func(w http.ResponseWriter, r *http.Request) {
			requireSession(t, r)
			_, _ = w.Write([]byte("ciphertext"))
		})
	})

	got, err := newTestAdapter(t, srv.URL).FetchMedia(context.Background(), "/media/abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("ciphertext"), got)
}

func TestFetchMedia_ForeignHostGetsNoCredentials(t *testing.T) {
	cdn := newServer(t, func(r chi.Router) {
		r.Get("/blob", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			_, err := r.Cookie(SessionCookieName)
			assert.ErrorIs(t, err, http.ErrNoCookie)
			_, _ = w.Write([]byte("x"))
		})
	})

	a := newTestAdapter(t, "http://api.invalid")
	got, err := a.FetchMedia(context.Background(), cdn.URL+"/blob")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), got)
}

func TestFetchMedia_NotFound(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {})

	_, err := newTestAdapter(t, srv.URL).FetchMedia(context.Background(), "/media/none")
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestSessionHeaders(t *testing.T) {
	h := SessionHeaders("tok")
	assert.Equal(t, "Bearer tok", h.Get("Authorization"))
	assert.Equal(t, "session=tok", h.Get("Cookie"))

	assert.Empty(t, SessionHeaders(""))
}
