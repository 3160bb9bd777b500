package parser

import (
	"testing"
)

func sheetRows() [][]interface{} {
	return [][]interface{}{
		{"ID", "Name", "Preis", "Beschreibung"},
		{"Pizza"},
		{"1", "Margherita", "8,50", "Tomate, Käse"},
		{"2", "Salami", "9.50"},
		{"Getränke", ""},
		{"10", "Cola", "2,50"},
	}
}

func TestBuildCatalog(t *testing.T) {
	catalog, err := buildCatalog(sheetRows())
	if err != nil {
		t.Fatalf("buildCatalog() error = %v", err)
	}

	if len(catalog) != 2 {
		t.Fatalf("got %d sections, want 2", len(catalog))
	}
	if catalog[0].Name != "Pizza" || catalog[1].Name != "Getränke" {
		t.Errorf("sections = %q, %q", catalog[0].Name, catalog[1].Name)
	}
	if len(catalog[0].Products) != 2 || len(catalog[1].Products) != 1 {
		t.Fatalf("product counts = %d, %d", len(catalog[0].Products), len(catalog[1].Products))
	}

	margherita := catalog[0].Products[0]
	if margherita["id"] != float64(1) {
		t.Errorf("id = %v, want 1", margherita["id"])
	}
	if margherita["price"] != 8.50 {
		t.Errorf("comma-decimal price = %v, want 8.5", margherita["price"])
	}
	if margherita["description"] != "Tomate, Käse" {
		t.Errorf("description = %v", margherita["description"])
	}
	if margherita["order"] != float64(0) {
		t.Errorf("order = %v, want 0", margherita["order"])
	}

	salami := catalog[0].Products[1]
	if salami["order"] != float64(1) {
		t.Errorf("salami order = %v, want 1", salami["order"])
	}
	if _, ok := salami["description"]; ok {
		t.Error("salami should carry no description")
	}
}

func TestBuildCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{"product before any section", [][]interface{}{
			{"ID", "Name", "Preis"},
			{"1", "Margherita", "8,50"},
		}},
		{"invalid product id", [][]interface{}{
			{"ID", "Name", "Preis"},
			{"Pizza"},
			{"abc", "Margherita", "8,50"},
		}},
		{"invalid price", [][]interface{}{
			{"ID", "Name", "Preis"},
			{"Pizza"},
			{"1", "Margherita", "acht"},
		}},
		{"no sections", [][]interface{}{
			{"ID", "Name", "Preis"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildCatalog(tt.rows); err == nil {
				t.Error("buildCatalog() expected error")
			}
		})
	}
}
