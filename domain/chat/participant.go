// Package chat contains the core concepts of the chat delivery system.
// No runtime, network, or storage logic should be added here.
package chat

import "strings"

// ParticipantID is the opaque, stable identity of a user.
type ParticipantID string

func (p ParticipantID) String() string { return string(p) }

func (p ParticipantID) IsZero() bool { return strings.TrimSpace(string(p)) == "" }

// SessionContext is the explicit identity bound to a connected client.
// It replaces any ambient "current user" lookup: every core operation that
// acts on behalf of someone receives it.
type SessionContext struct {
	Participant ParticipantID
	Roles       []string
}

func (s SessionContext) Authenticated() bool { return !s.Participant.IsZero() }
