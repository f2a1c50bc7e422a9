package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/AyurChem-Intelligence/pkg/errors"
)

const (
	// TopicAnalysisCompleted carries one event per finished analysis.
	TopicAnalysisCompleted = "ayurchem.analysis.completed"

	EventTypeAnalysisCompleted = "analysis.completed"

	schemaVersion = "v1"
)

// EventEnvelope wraps every payload published by the service.
type EventEnvelope struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	Source        string            `json:"source"`
	Timestamp     time.Time         `json:"timestamp"`
	SchemaVersion string            `json:"schema_version"`
	TraceID       string            `json:"trace_id,omitempty"`
	Payload       json.RawMessage   `json:"payload"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// AnalysisCompletedPayload summarises one analysis.
type AnalysisCompletedPayload struct {
	AnalysisID      string    `json:"analysis_id"`
	Herbs           []string  `json:"herbs"`
	CompoundCount   int       `json:"compound_count"`
	DegradedCount   int       `json:"degraded_count"`
	HypothesisCount int       `json:"hypothesis_count"`
	CompletedAt     time.Time `json:"completed_at"`
}

func NewEventEnvelope(eventType, source string, payload interface{}) (*EventEnvelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSerialization, "failed to marshal event payload")
	}
	return &EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		SchemaVersion: schemaVersion,
		Payload:       data,
	}, nil
}

// DecodePayload is a no-op for an empty or null payload.
func (e *EventEnvelope) DecodePayload(target interface{}) error {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Payload, target); err != nil {
		return errors.Wrap(err, errors.CodeSerialization, "failed to decode event payload")
	}
	return nil
}

// Encode returns the wire form of the envelope.
func (e *EventEnvelope) Encode() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeSerialization, "failed to marshal event envelope")
	}
	return data, nil
}

// DecodeEnvelope parses a message value written by Encode.
func DecodeEnvelope(value []byte) (*EventEnvelope, error) {
	if len(value) == 0 {
		return nil, errors.InvalidParam("empty message value")
	}
	var env EventEnvelope
	if err := json.Unmarshal(value, &env); err != nil {
		return nil, errors.Wrap(err, errors.CodeSerialization, "failed to unmarshal event envelope")
	}
	return &env, nil
}

//Personal.AI order the ending
