package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportStatusQueued     ImportTaskStatus = "queued"
	ImportStatusProcessing ImportTaskStatus = "processing"
	ImportStatusCompleted  ImportTaskStatus = "completed"
	ImportStatusFailed     ImportTaskStatus = "failed"
)

// ImportTask tracks one queued catalog import from a Google Sheet.
type ImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	Created       int                `bson:"created" json:"created"`
	Updated       int                `bson:"updated" json:"updated"`
	Failed        int                `bson:"failed" json:"failed"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderStatusAudit is one persisted order lifecycle event.
type OrderStatusAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   int64              `bson:"order_id" json:"order_id"`
	EventType string             `bson:"event_type" json:"event_type"`
	OldStatus OrderStatus        `bson:"old_status,omitempty" json:"old_status,omitempty"`
	NewStatus OrderStatus        `bson:"new_status,omitempty" json:"new_status,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
