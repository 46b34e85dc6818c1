package app

import "buckshot/internal/domain"

// EventKind identifies emitted session events for dispatch to the front end.
type EventKind string

const (
	EventChambersUpdated EventKind = "chambers_updated"
	EventShellsSpent     EventKind = "shells_spent"
	EventShellsAdded     EventKind = "shells_added"
	EventRoundStarted    EventKind = "round_started"
	EventRoundEnded      EventKind = "round_ended"
	EventSessionReset    EventKind = "session_reset"
	EventPlayerAdded     EventKind = "player_added"
	EventPlayerRemoved   EventKind = "player_removed"
	EventPlayerUpdated   EventKind = "player_updated"
)

// Event is a session event with its payload.
type Event struct {
	Kind    EventKind `json:"kind"`
	Payload any       `json:"payload,omitempty"`
}

type ChambersUpdatedPayload struct {
	Chambers []domain.Chamber `json:"chambers"`
}

type ShellsSpentPayload struct {
	Kind  domain.ShellKind `json:"kind"`
	Count int              `json:"count"`
	// Spent holds the chambers removed from the front, in firing order.
	Spent []domain.Chamber `json:"spent"`
}

type ShellsAddedPayload struct {
	Kind  domain.ShellKind `json:"kind"`
	Count int              `json:"count"`
}

type RoundStartedPayload struct {
	LiveShells  int `json:"live_shells"`
	BlankShells int `json:"blank_shells"`
}

type PlayerPayload struct {
	Player domain.Player `json:"player"`
}

type PlayerRemovedPayload struct {
	PlayerID int `json:"player_id"`
}
