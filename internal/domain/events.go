package domain

import "time"

// Event types published to the notifications fanout.
const (
	EventOrderCreated  = "order.created"
	EventStatusChanged = "order.status_changed"
)

// StatusEvent is the message body for order lifecycle notifications.
type StatusEvent struct {
	Event       string      `json:"event"`
	TenantID    string      `json:"tenant_id"`
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	OldStatus   OrderStatus `json:"old_status,omitempty"`
	NewStatus   OrderStatus `json:"new_status"`
	OrderType   string      `json:"order_type"`
	Total       float64     `json:"total,omitempty"`
	ChangedBy   string      `json:"changed_by"`
	Timestamp   time.Time   `json:"timestamp"`
}
