package domain

import (
	"fmt"
	"time"
)

// Product is one menu item row. The customer-facing payload (name, price,
// sizes, extras) lives in Data and is passed through untouched; the service
// only relies on the numeric id inside it.
type Product struct {
	Section      string         `bson:"section" json:"section"`
	ID           int64          `bson:"id" json:"id"`
	SectionOrder int            `bson:"section_order" json:"sectionOrder"`
	Order        int            `bson:"order" json:"order"`
	Data         map[string]any `bson:"data" json:"data"`
	CreatedAt    time.Time      `bson:"created_at" json:"createdAt"`
}

// ProductID extracts the numeric id a product payload must carry.
func ProductID(data map[string]any) (int64, error) {
	raw, ok := data["id"]
	if !ok {
		return 0, fmt.Errorf("product has no id")
	}

	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("product id is not numeric: %v", raw)
	}
}

// ProductOrder reads the in-section position from the payload, defaulting to 0.
func ProductOrder(data map[string]any) int {
	raw, ok := data["order"]
	if !ok {
		return 0
	}
	if v, ok := raw.(float64); ok {
		return int(v)
	}
	return 0
}
