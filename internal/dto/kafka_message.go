package dto

import "time"

type KafkaMessage struct {
	EventType string            `json:"event_type"`
	Data      FetchAttemptEvent `json:"data"`
}

type FetchAttemptEvent struct {
	Candidate  string    `json:"candidate"`
	Status     int       `json:"status"`
	Succeeded  bool      `json:"succeeded"`
	Error      string    `json:"error,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}
