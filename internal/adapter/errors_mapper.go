package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiError is the JSON error body of the chat API.
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrBadGateway,
	http.StatusInternalServerError:   ErrInternalServerError,
}

// mapHTTPError turns a non-2xx response into a sentinel wrapped as
// "<sentinel>: <message>", where message is the API error text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

// errorMessage returns the message of a JSON error body, or the trimmed raw
// body when it is not one.
func errorMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))

	var e apiError
	if json.Unmarshal(body, &e) != nil {
		return raw
	}
	switch {
	case e.Message != "":
		return e.Message
	case e.Error != "":
		return e.Error
	}
	return raw
}
