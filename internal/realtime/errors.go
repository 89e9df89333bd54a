package realtime

import "errors"

// ErrNoURL is returned by Connect when no duplex channel URL is configured.
var ErrNoURL = errors.New("realtime: no socket url configured")
