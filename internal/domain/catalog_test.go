package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDecodeCatalogPreservesSectionOrder(t *testing.T) {
	body := `{
		"Pizza": [{"id": 1, "name": "Margherita"}, {"id": 2, "name": "Salami"}],
		"Drinks": [{"id": 10, "name": "Cola"}],
		"Salate": []
	}`

	catalog, err := DecodeCatalog(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}

	want := []string{"Pizza", "Drinks", "Salate"}
	if len(catalog) != len(want) {
		t.Fatalf("got %d sections, want %d", len(catalog), len(want))
	}
	for i, name := range want {
		if catalog[i].Name != name {
			t.Errorf("section[%d] = %q, want %q", i, catalog[i].Name, name)
		}
	}

	if len(catalog[0].Products) != 2 {
		t.Errorf("Pizza has %d products, want 2", len(catalog[0].Products))
	}
}

func TestCatalogMarshalRoundTrip(t *testing.T) {
	body := `{"Zuletzt": [{"id": 3}], "Anfang": [{"id": 1}], "Mitte": [{"id": 2}]}`

	catalog, err := DecodeCatalog(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}

	out, err := json.Marshal(catalog)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	decoded, err := DecodeCatalog(strings.NewReader(string(out)))
	if err != nil {
		t.Fatalf("DecodeCatalog() after marshal error = %v", err)
	}

	want := []string{"Zuletzt", "Anfang", "Mitte"}
	for i, name := range want {
		if decoded[i].Name != name {
			t.Errorf("round-trip section[%d] = %q, want %q", i, decoded[i].Name, name)
		}
	}
}

func TestDecodeCatalogRejectsNonListSection(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object section value", `{"Pizza": {"id": 1}}`},
		{"string section value", `{"Pizza": "nope"}`},
		{"top-level array", `[{"id": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCatalog(strings.NewReader(tt.body)); err == nil {
				t.Errorf("DecodeCatalog(%q) expected error", tt.body)
			}
		})
	}
}

func TestProductID(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		want    int64
		wantErr bool
	}{
		{"float id", map[string]any{"id": float64(42)}, 42, false},
		{"int id", map[string]any{"id": 7}, 7, false},
		{"missing id", map[string]any{"name": "Pizza"}, 0, true},
		{"string id", map[string]any{"id": "42"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProductID(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ProductID() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ProductID() = %d, want %d", got, tt.want)
			}
		})
	}
}
