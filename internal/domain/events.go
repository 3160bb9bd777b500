package domain

import "time"

type OrderEvent struct {
	EventType string      `json:"event_type"`
	OrderID   int64       `json:"order_id"`
	OldStatus OrderStatus `json:"old_status,omitempty"`
	NewStatus OrderStatus `json:"new_status,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderRefunded      = "order.refunded"
	EventOrderDeleted       = "order.deleted"
)

type CatalogImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}
