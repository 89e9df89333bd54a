package realtime

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
)

//go:generate mockgen -source=dialer.go -destination=../mock/realtime_dialer_mock.go -package=mock

// Conn is the read side of an established duplex channel.
type Conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	Close() error
}

// Dialer opens duplex channel connections.
type Dialer interface {
	Dial(ctx context.Context, url string, header http.Header) (Conn, error)
}

type websocketDialer struct {
	dialer *websocket.Dialer
}

// NewWebSocketDialer returns a [Dialer] backed by gorilla/websocket.
func NewWebSocketDialer() Dialer {
	return &websocketDialer{dialer: websocket.DefaultDialer}
}

func (d *websocketDialer) Dial(ctx context.Context, url string, header http.Header) (Conn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, url, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}
