package payment

import (
	"testing"

	"github.com/zazianopizza/zaziano/internal/domain"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{10, 1000},
		{5.00, 500},
		{2.99, 299},
		{0.1, 10},
		{3.33, 333},
		{0, 0},
	}

	for _, tt := range tests {
		if got := MinorUnits(tt.amount); got != tt.want {
			t.Errorf("MinorUnits(%v) = %d, want %d", tt.amount, got, tt.want)
		}
	}
}

func TestBuildLinesDelivery(t *testing.T) {
	items := []domain.OrderItem{
		{
			ID:        1,
			Name:      "Pizza Margherita",
			SizeLabel: "30cm",
			Quantity:  1,
			BasePrice: 8.50,
			Extras: []domain.OrderExtra{
				{ID: 101, Name: "Extra Käse", Price: 1.50, Quantity: 1},
				{ID: 102, Name: "Oliven", Price: 1.00, Quantity: 0},
			},
		},
		{
			ID:        2,
			Name:      "Cola",
			Quantity:  2,
			BasePrice: 2.50,
		},
	}

	lines := BuildLines(items, "delivery", 5.00)

	// 2 items + 1 paid extra + delivery line
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	delivery := lines[len(lines)-1]
	if delivery.Name != "Lieferung" {
		t.Errorf("last line name = %q, want Lieferung", delivery.Name)
	}
	if delivery.UnitAmount != MinorUnits(5.00) {
		t.Errorf("delivery amount = %d, want %d", delivery.UnitAmount, MinorUnits(5.00))
	}
	if delivery.Quantity != 1 {
		t.Errorf("delivery quantity = %d, want 1", delivery.Quantity)
	}

	extra := lines[1]
	if extra.Name != "Extra Käse" {
		t.Errorf("extra line name = %q, want Extra Käse", extra.Name)
	}
	if extra.Description != "Pizza Margherita (30cm)" {
		t.Errorf("extra description = %q", extra.Description)
	}
}

func TestBuildLinesPickupHasNoDeliveryLine(t *testing.T) {
	items := []domain.OrderItem{
		{ID: 1, Name: "Pizza", Quantity: 1, BasePrice: 10},
	}

	lines := BuildLines(items, "pickup", 5.00)

	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].UnitAmount != 1000 {
		t.Errorf("item amount = %d, want 1000", lines[0].UnitAmount)
	}
}
