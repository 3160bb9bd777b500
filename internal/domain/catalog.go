package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// CatalogSection is one named menu section with its product payloads in
// display order.
type CatalogSection struct {
	Name     string
	Products []map[string]any
}

// Catalog is the full menu, sections in display order. It marshals to a JSON
// object whose keys keep that order, which is the shape the storefront
// consumes.
type Catalog []CatalogSection

func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, section := range c {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(section.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal section name: %w", err)
		}
		buf.Write(name)
		buf.WriteByte(':')

		products := section.Products
		if products == nil {
			products = []map[string]any{}
		}
		body, err := json.Marshal(products)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal section %q: %w", section.Name, err)
		}
		buf.Write(body)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeCatalog reads a JSON object mapping section names to product lists,
// preserving the order the keys appear in. A section whose value is not a
// list fails the whole decode.
func DecodeCatalog(r io.Reader) (Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog body must be a JSON object")
	}

	var catalog Catalog
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read section name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token in catalog body: %v", tok)
		}

		var products []map[string]any
		if err := dec.Decode(&products); err != nil {
			return nil, fmt.Errorf("section %q must be a list of products: %w", name, err)
		}

		catalog = append(catalog, CatalogSection{Name: name, Products: products})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}

	return catalog, nil
}
