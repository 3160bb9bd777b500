package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zazianopizza/zaziano/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleSheetsParser reads a menu spreadsheet into catalog sections. The sheet
// layout is: a row with only column A filled starts a new section; product
// rows carry id (A), name (B), price (C) and an optional description (D).
type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

func (p *GoogleSheetsParser) ParseCatalog(ctx context.Context, spreadsheetID string) (domain.Catalog, error) {
	readRange := "A:D"
	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	return buildCatalog(resp.Values)
}

func buildCatalog(rows [][]interface{}) (domain.Catalog, error) {
	var catalog domain.Catalog
	sectionIdx := make(map[string]int)
	currentSection := ""

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || cell(row, 0) == "" {
			continue
		}

		// section rows have only the first column filled
		if len(row) == 1 || cell(row, 1) == "" {
			currentSection = cell(row, 0)
			if _, exists := sectionIdx[currentSection]; !exists {
				sectionIdx[currentSection] = len(catalog)
				catalog = append(catalog, domain.CatalogSection{Name: currentSection})
			}
			continue
		}

		if currentSection == "" {
			return nil, fmt.Errorf("row %d: product before any section", i+1)
		}

		id, err := strconv.ParseInt(strings.TrimSpace(cell(row, 0)), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid product id %q", i+1, cell(row, 0))
		}

		product := map[string]any{
			"id":   float64(id),
			"name": cell(row, 1),
		}

		if priceStr := cell(row, 2); priceStr != "" {
			price, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(priceStr), ",", "."), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid price %q", i+1, priceStr)
			}
			product["price"] = price
		}

		if desc := cell(row, 3); desc != "" {
			product["description"] = desc
		}

		idx := sectionIdx[currentSection]
		product["order"] = float64(len(catalog[idx].Products))
		catalog[idx].Products = append(catalog[idx].Products, product)
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("no sections found in spreadsheet")
	}

	return catalog, nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[i]))
}
