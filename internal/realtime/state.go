package realtime

// State is the lifecycle state of a [Connection].
type State int32

const (
	// StateOffline means no connection and no pending attempt.
	StateOffline State = iota
	// StateConnecting means a dial or reconnect is in progress.
	StateConnecting
	// StateOnline means frames are being received.
	StateOnline
)

func (s State) String() string {
	switch s {
	case StateOffline:
		return "offline"
	case StateConnecting:
		return "connecting"
	case StateOnline:
		return "online"
	default:
		return "unknown"
	}
}
