package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-secure-chat/internal/config"
	"github.com/MKhiriev/go-secure-chat/internal/logger"
	"github.com/MKhiriev/go-secure-chat/internal/utils"
	"github.com/MKhiriev/go-secure-chat/models"
)

// SessionCookieName is the cookie the collaborator reads the session from.
const SessionCookieName = "session"

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] from adapterCfg. The session token from the configuration,
// if any, is installed immediately.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	raw := strings.TrimSpace(adapterCfg.HTTPAddress)
	if raw == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	base, err := url.Parse(utils.NormalizeBaseURL(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid adapter http address: address must include host and scheme")
	}

	a := &httpServerAdapter{
		client:  utils.NewHTTPClient(base.String(), adapterCfg.RequestTimeout),
		baseURL: base,
		logger:  logger,
	}
	a.SetToken(adapterCfg.SessionToken)

	return a, nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Me implements [IdentityAPI]. GET /users/me.
func (h *httpServerAdapter) Me(ctx context.Context) (models.CurrentUser, error) {
	var user models.CurrentUser

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.CurrentUser{}, err
	}

	resp, err := req.SetResult(&user).Get("/users/me")
	if err != nil {
		return models.CurrentUser{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CurrentUser{}, err
	}

	return user, nil
}

// PublishKeys implements [IdentityAPI]. PUT /users/me/keys.
func (h *httpServerAdapter) PublishKeys(ctx context.Context, body models.PublishKeysRequest) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put("/users/me/keys")
	if err != nil {
		return fmt.Errorf("publish keys request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListConversations implements [ChatAPI]. GET /conversations.
func (h *httpServerAdapter) ListConversations(ctx context.Context, cursor string, limit int) (models.ConversationPage, error) {
	var page models.ConversationPage

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.ConversationPage{}, err
	}

	resp, err := withCursor(req, cursor, limit).
		SetResult(&page).
		Get("/conversations")
	if err != nil {
		return models.ConversationPage{}, fmt.Errorf("list conversations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ConversationPage{}, err
	}

	return page, nil
}

// GetConversation implements [ChatAPI]. GET /conversations/{id}.
func (h *httpServerAdapter) GetConversation(ctx context.Context, conversationID string) (models.Conversation, error) {
	var conversation models.Conversation

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Conversation{}, err
	}

	resp, err := req.
		SetPathParam("id", conversationID).
		SetResult(&conversation).
		Get("/conversations/{id}")
	if err != nil {
		return models.Conversation{}, fmt.Errorf("get conversation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Conversation{}, err
	}

	return conversation, nil
}

// ListMessages implements [ChatAPI]. GET /conversations/{id}/messages.
func (h *httpServerAdapter) ListMessages(ctx context.Context, conversationID, cursor string, limit int) (models.MessagePage, error) {
	var page models.MessagePage

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.MessagePage{}, err
	}

	resp, err := withCursor(req, cursor, limit).
		SetPathParam("id", conversationID).
		SetResult(&page).
		Get("/conversations/{id}/messages")
	if err != nil {
		return models.MessagePage{}, fmt.Errorf("list messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessagePage{}, err
	}

	return page, nil
}

// SendMessage implements [ChatAPI]. POST /conversations/{id}/messages.
func (h *httpServerAdapter) SendMessage(ctx context.Context, body models.SendMessageRequest) (models.Message, error) {
	var message models.Message

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Message{}, err
	}

	resp, err := req.
		SetPathParam("id", body.ConversationID).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&message).
		Post("/conversations/{id}/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// MarkRead implements [ChatAPI]. POST /conversations/{id}/read.
func (h *httpServerAdapter) MarkRead(ctx context.Context, conversationID string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", conversationID).
		Post("/conversations/{id}/read")
	if err != nil {
		return fmt.Errorf("mark read request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadMedia implements [ChatAPI]. POST /media as multipart form data. The
// part carries no file name: names travel inside the message metadata.
func (h *httpServerAdapter) UploadMedia(ctx context.Context, ciphertext []byte) (models.MediaUpload, error) {
	var upload models.MediaUpload

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.MediaUpload{}, err
	}

	resp, err := req.
		SetMultipartField("file", "blob", "application/octet-stream", bytes.NewReader(ciphertext)).
		SetResult(&upload).
		Post("/media")
	if err != nil {
		return models.MediaUpload{}, fmt.Errorf("upload media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MediaUpload{}, err
	}
	if upload.URL == "" {
		return models.MediaUpload{}, fmt.Errorf("upload media: empty url in response")
	}

	return upload, nil
}

// FetchMedia implements [ChatAPI]. Credentials are only attached when url
// points at the API host.
func (h *httpServerAdapter) FetchMedia(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media url: %w", err)
	}

	var req *resty.Request
	if target.IsAbs() && target.Host != h.baseURL.Host {
		req = h.client.R().SetContext(ctx)
	} else {
		req, err = h.authedRequest(ctx)
		if err != nil {
			return nil, err
		}
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch media request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoSession
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetCookie(sessionCookie(token)), nil
}

func withCursor(req *resty.Request, cursor string, limit int) *resty.Request {
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}
	return req
}
