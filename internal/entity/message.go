package entity

import "time"

// RawMessage is a message as delivered by the mail-retrieval collaborator.
// The pipeline treats it as immutable and never persists it.
type RawMessage struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"` // HTML preferred, plain text otherwise
	ReceivedAt time.Time `json:"received_at"`
}
