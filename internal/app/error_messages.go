// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the response bodies the collaborator chat API writes
// next to an error status.
//
// The client matches these strings to turn transport errors into business
// errors. Keeping them in one place keeps the wording in step with the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidPublicKey is returned when a published public key is not a
	// base64 encoded 32 byte value.
	MsgInvalidPublicKey = "invalid public key"

	// MsgMediaTooLarge is returned when an uploaded blob exceeds the server
	// limit.
	MsgMediaTooLarge = "media too large"

	// MsgSessionExpired is returned when the session token is missing,
	// expired or revoked.
	MsgSessionExpired = "session expired"

	// MsgNotParticipant is returned when the user is not a member of the
	// requested conversation.
	MsgNotParticipant = "not a participant"

	// MsgConversationNotFound is returned for an unknown conversation id.
	MsgConversationNotFound = "conversation not found"

	// MsgIdentityAlreadyExists is returned when keys are published for a
	// user that already has them.
	MsgIdentityAlreadyExists = "identity already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
