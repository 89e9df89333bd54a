package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a api address [scheme://]host:port
//	-ws duplex channel WebSocket URL
//	-token session token issued at login
//	-d device key cache database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-connect-delay delay before the first duplex channel dial
//	-reconnect-attempts reconnect budget
//	-reconnect-interval spacing between reconnect attempts
//	-kdf-iterations PBKDF2 iteration count for the PIN vault
//	-media-max-size largest attachment in bytes
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("secure-chat", flag.ContinueOnError)

	var (
		httpAddress       string
		socketURL         string
		sessionToken      string
		databaseDSN       string
		jsonConfigPath    string
		requestTimeout    time.Duration
		connectDelay      time.Duration
		reconnectAttempts int
		reconnectInterval time.Duration
		kdfIterations     int
		mediaMaxSize      int64
	)

	fs.StringVar(&httpAddress, "a", "", "API address [scheme://]host:port")
	fs.StringVar(&socketURL, "ws", "", "Duplex channel WebSocket URL")
	fs.StringVar(&sessionToken, "token", "", "Session token")
	fs.StringVar(&databaseDSN, "d", "", "Device key cache database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&connectDelay, "connect-delay", 0, "Delay before the first duplex channel dial")
	fs.IntVar(&reconnectAttempts, "reconnect-attempts", 0, "Reconnect budget")
	fs.DurationVar(&reconnectInterval, "reconnect-interval", 0, "Spacing between reconnect attempts")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iteration count")
	fs.Int64Var(&mediaMaxSize, "media-max-size", 0, "Largest attachment in bytes")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			SocketURL:      socketURL,
			RequestTimeout: requestTimeout,
			SessionToken:   sessionToken,
		},
		Storage: Storage{DB: DB{DSN: databaseDSN}},
		Realtime: Realtime{
			ConnectDelay:      connectDelay,
			ReconnectAttempts: reconnectAttempts,
			ReconnectInterval: reconnectInterval,
		},
		Vault:        Vault{KDFIterations: kdfIterations},
		Media:        Media{MaxSize: mediaMaxSize},
		JSONFilePath: jsonConfigPath,
	}, nil
}
