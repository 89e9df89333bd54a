package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/users/me")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to address. An address without a
// scheme is treated as plain http. A non-positive timeout leaves resty's
// default in place.
func NewHTTPClient(address string, timeout time.Duration) *HTTPClient {
	client := resty.New()
	if address != "" {
		client.SetBaseURL(NormalizeBaseURL(address))
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// NormalizeBaseURL prefixes address with http:// when it carries no scheme
// and drops trailing slashes after the host. A bare scheme such as
// "http://" is returned unchanged so URL validation still rejects it.
func NormalizeBaseURL(address string) string {
	scheme, rest, ok := strings.Cut(address, "://")
	if !ok {
		return "http://" + strings.TrimRight(address, "/")
	}
	return scheme + "://" + strings.TrimRight(rest, "/")
}
