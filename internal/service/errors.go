package service

import "errors"

var (
	// ErrLocked is returned while this device holds no unwrapped private key.
	ErrLocked = errors.New("device is locked")
	// ErrWrongPIN is returned when the vault does not open with the PIN.
	ErrWrongPIN = errors.New("wrong pin")
	// ErrTooManyAttempts is returned when PIN attempts are throttled.
	ErrTooManyAttempts = errors.New("too many unlock attempts")
	// ErrInvalidPIN is returned by SetupIdentity for a PIN that is too short.
	ErrInvalidPIN = errors.New("pin must have at least 4 characters")
	// ErrIdentityExists is returned by SetupIdentity when the user already
	// has an identity. Keys are never rotated.
	ErrIdentityExists = errors.New("identity already exists")
	// ErrNotChecked is returned when the gate is used before Check.
	ErrNotChecked = errors.New("unlock state was not checked")
)

var (
	// ErrNoPartner is returned for a conversation without another participant.
	ErrNoPartner = errors.New("conversation has no partner")
	// ErrInvalidPublicKey is returned when a partner has no usable public key.
	ErrInvalidPublicKey = errors.New("partner public key is missing or invalid")
	// ErrDecryptFailed is returned when a payload fails authentication.
	ErrDecryptFailed = errors.New("decryption failed")
	// ErrEmptyMessage is returned when sending blank text.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrMediaTooLarge is returned when an attachment exceeds the size limit.
	ErrMediaTooLarge = errors.New("media exceeds size limit")
	// ErrMediaDiscarded is returned by a media load that was released or
	// superseded before it finished.
	ErrMediaDiscarded = errors.New("media load discarded")
	// ErrNotMedia is returned when a media item is built from a text message.
	ErrNotMedia = errors.New("message carries no media")
)

var (
	// ErrSessionExpired is returned when the API rejects the session token.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotParticipant is returned when the user is not a member of the
	// conversation.
	ErrNotParticipant = errors.New("not a participant of the conversation")
	// ErrConversationNotFound is returned for an unknown conversation.
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrRejected is returned when the API rejects a request as invalid.
	ErrRejected = errors.New("request rejected")
	// ErrServerUnavailable is returned for gateway and internal server errors.
	ErrServerUnavailable = errors.New("server unavailable")
)
