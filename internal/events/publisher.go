package events

import (
	"context"
	"time"

	"github.com/chrisdamba/foodadmin/internal/models"
)

type Action string

const (
	ActionCreated           Action = "created"
	ActionUpdated           Action = "updated"
	ActionDeleted           Action = "deleted"
	ActionSeeded            Action = "seeded"
	ActionSchemaChanged     Action = "schema_changed"
	ActionCountersRefreshed Action = "counters_refreshed"
)

// Event records one successful mutation.
type Event struct {
	Entity string    `json:"entity,omitempty"`
	Action Action    `json:"action"`
	ID     int64     `json:"id,omitempty"`
	Field  string    `json:"field,omitempty"`
	Table  string    `json:"table,omitempty"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// Key is used as the message key so events for one entity stay ordered.
func (e Event) Key() string {
	if e.Entity != "" {
		return e.Entity
	}
	return e.Table
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

// New returns a Kafka publisher when kafka_enabled is set and a no-op
// publisher otherwise.
func New(config *models.Config) (Publisher, error) {
	if !config.KafkaEnabled {
		return NoopPublisher{}, nil
	}
	return NewSaramaPublisher(config)
}
