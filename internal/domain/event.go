package domain

import "time"

// Event is one entry of the live activity feed.
type Event struct {
	Type       string      `json:"type"`
	ResourceID string      `json:"resourceId"`
	ActorID    string      `json:"actorId"`
	Data       interface{} `json:"data,omitempty"`
	At         time.Time   `json:"at"`
}
