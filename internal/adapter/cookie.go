package adapter

import "net/http"

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: SessionCookieName, Value: token}
}

// SessionHeaders returns the headers that authenticate a duplex channel dial
// with token.
func SessionHeaders(token string) http.Header {
	h := http.Header{}
	if token == "" {
		return h
	}
	h.Set("Authorization", "Bearer "+token)
	h.Set("Cookie", sessionCookie(token).String())
	return h
}
