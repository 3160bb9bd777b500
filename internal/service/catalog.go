package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/zazianopizza/zaziano/internal/domain"
	"github.com/zazianopizza/zaziano/internal/repo"
	"go.uber.org/zap"
)

type CatalogService struct {
	products repo.ProductRepository
	logger   *zap.SugaredLogger
}

func NewCatalogService(products repo.ProductRepository, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

// ReplaceResult reports the outcome of a full catalog save. Individual
// product failures are collected, never abort the batch.
type ReplaceResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// ListCatalog reconstructs the section→products view from the flat product
// rows. Sections come back in stored section order (unordered sections last),
// products in (order, id) order. Rows with a broken payload are skipped and
// logged.
func (s *CatalogService) ListCatalog(ctx context.Context) (domain.Catalog, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	type sectionAcc struct {
		order    int
		products []domain.Product
	}

	sections := make(map[string]*sectionAcc)
	var names []string

	for _, p := range products {
		if p.Data == nil {
			s.logger.Warnw("skipping product with malformed payload", "section", p.Section, "id", p.ID)
			continue
		}

		acc, ok := sections[p.Section]
		if !ok {
			acc = &sectionAcc{order: p.SectionOrder}
			sections[p.Section] = acc
			names = append(names, p.Section)
		}
		if p.SectionOrder < acc.order {
			acc.order = p.SectionOrder
		}
		acc.products = append(acc.products, p)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return sections[names[i]].order < sections[names[j]].order
	})

	catalog := make(domain.Catalog, 0, len(names))
	for _, name := range names {
		acc := sections[name]
		sort.SliceStable(acc.products, func(i, j int) bool {
			if acc.products[i].Order != acc.products[j].Order {
				return acc.products[i].Order < acc.products[j].Order
			}
			return acc.products[i].ID < acc.products[j].ID
		})

		payloads := make([]map[string]any, 0, len(acc.products))
		for _, p := range acc.products {
			payloads = append(payloads, p.Data)
		}

		catalog = append(catalog, domain.CatalogSection{Name: name, Products: payloads})
	}

	return catalog, nil
}

// ReplaceCatalog upserts the whole menu. Section order follows the position
// of each section in the input; every product must carry a numeric id.
func (s *CatalogService) ReplaceCatalog(ctx context.Context, catalog domain.Catalog) (*ReplaceResult, error) {
	result := &ReplaceResult{}

	for sectionIdx, section := range catalog {
		for _, payload := range section.Products {
			id, err := domain.ProductID(payload)
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("section %q: %v", section.Name, err))
				continue
			}

			product := &domain.Product{
				Section:      section.Name,
				ID:           id,
				SectionOrder: sectionIdx,
				Order:        domain.ProductOrder(payload),
				Data:         payload,
			}

			created, err := s.products.Upsert(ctx, product)
			if err != nil {
				s.logger.Errorw("failed to upsert product", "section", section.Name, "id", id, "error", err)
				result.Failed++
				result.Errors = append(result.Errors, fmt.Sprintf("section %q, product %d: %v", section.Name, id, err))
				continue
			}

			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
	}

	s.logger.Infow("catalog replaced", "created", result.Created, "updated", result.Updated, "failed", result.Failed)

	return result, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, section string, id int64) error {
	if err := s.products.Delete(ctx, section, id); err != nil {
		return err
	}

	s.logger.Infow("product deleted", "section", section, "id", id)

	return nil
}
