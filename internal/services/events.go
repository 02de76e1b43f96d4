package services

import (
	"encoding/json"
	"time"

	"catalog/internal/models"
)

// Catalog event types.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher sends catalog events to a message broker.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// ProductEvent is the message body published after a product mutation.
type ProductEvent struct {
	Event      string         `json:"event"`
	Product    models.Product `json:"product"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func encodeProductEvent(event string, product models.Product, at time.Time) ([]byte, error) {
	return json.Marshal(ProductEvent{
		Event:      event,
		Product:    product,
		OccurredAt: at.UTC(),
	})
}
