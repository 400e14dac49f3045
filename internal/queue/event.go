// Package queue defines message payloads exchanged over the message broker.
package queue

// CartActivityEvent is published whenever a cart mutates. It carries enough
// for downstream consumers to log or feed analytics without querying the
// primary database.
type CartActivityEvent struct {
	UserID     uint64 `json:"user_id"`
	ProductSKU string `json:"product_sku,omitempty"`
	Action     string `json:"action"` // "add" or "remove"
	Quantity   uint32 `json:"quantity,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
