package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/zazianopizza/zaziano/internal/domain"
	"go.uber.org/zap"
)

type fakeProductRepo struct {
	products  map[string]*domain.Product
	failingID int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*domain.Product{}}
}

func productKey(section string, id int64) string {
	return fmt.Sprintf("%s/%d", section, id)
}

func (r *fakeProductRepo) Upsert(ctx context.Context, product *domain.Product) (bool, error) {
	if product.ID == r.failingID && r.failingID != 0 {
		return false, fmt.Errorf("write failed")
	}

	key := productKey(product.Section, product.ID)
	_, exists := r.products[key]
	r.products[key] = product
	return !exists, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, section string, id int64) error {
	key := productKey(section, id)
	if _, ok := r.products[key]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, key)
	return nil
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		{Name: "Pizza", Products: []map[string]any{
			{"id": float64(2), "name": "Salami", "order": float64(1)},
			{"id": float64(1), "name": "Margherita", "order": float64(0)},
		}},
		{Name: "Drinks", Products: []map[string]any{
			{"id": float64(10), "name": "Cola"},
		}},
	}
}

func TestReplaceCatalogAssignsSectionOrder(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop().Sugar())

	result, err := svc.ReplaceCatalog(context.Background(), testCatalog())
	if err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	if result.Created != 3 || result.Updated != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want 3 created", result)
	}

	pizza := repo.products[productKey("Pizza", 1)]
	if pizza.SectionOrder != 0 {
		t.Errorf("Pizza sectionOrder = %d, want 0", pizza.SectionOrder)
	}
	drinks := repo.products[productKey("Drinks", 10)]
	if drinks.SectionOrder != 1 {
		t.Errorf("Drinks sectionOrder = %d, want 1", drinks.SectionOrder)
	}
}

func TestReplaceThenListPreservesOrder(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop().Sugar())

	if _, err := svc.ReplaceCatalog(context.Background(), testCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	catalog, err := svc.ListCatalog(context.Background())
	if err != nil {
		t.Fatalf("ListCatalog() error = %v", err)
	}

	if len(catalog) != 2 {
		t.Fatalf("got %d sections, want 2", len(catalog))
	}
	if catalog[0].Name != "Pizza" || catalog[1].Name != "Drinks" {
		t.Errorf("section order = %q, %q", catalog[0].Name, catalog[1].Name)
	}

	// within a section: (order, id) ascending
	first := catalog[0].Products[0]
	if first["name"] != "Margherita" {
		t.Errorf("first Pizza product = %v, want Margherita", first["name"])
	}
}

func TestReplaceCatalogCollectsFailures(t *testing.T) {
	repo := newFakeProductRepo()
	repo.failingID = 2
	svc := NewCatalogService(repo, zap.NewNop().Sugar())

	catalog := domain.Catalog{
		{Name: "Pizza", Products: []map[string]any{
			{"id": float64(1), "name": "Margherita"},
			{"id": float64(2), "name": "Salami"},
			{"name": "kein id"},
		}},
	}

	result, err := svc.ReplaceCatalog(context.Background(), catalog)
	if err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	if result.Created != 1 {
		t.Errorf("created = %d, want 1", result.Created)
	}
	if result.Failed != 2 {
		t.Errorf("failed = %d, want 2", result.Failed)
	}
	if len(result.Errors) != 2 {
		t.Errorf("errors = %v, want 2 entries", result.Errors)
	}
}

func TestUpdateExistingProductCountsAsUpdated(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop().Sugar())

	if _, err := svc.ReplaceCatalog(context.Background(), testCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	result, err := svc.ReplaceCatalog(context.Background(), testCatalog())
	if err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	if result.Created != 0 || result.Updated != 3 {
		t.Errorf("result = %+v, want 3 updated", result)
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, zap.NewNop().Sugar())

	if _, err := svc.ReplaceCatalog(context.Background(), testCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	if err := svc.DeleteProduct(context.Background(), "Pizza", 1); err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}

	if err := svc.DeleteProduct(context.Background(), "Pizza", 99); err != domain.ErrProductNotFound {
		t.Errorf("DeleteProduct() error = %v, want ErrProductNotFound", err)
	}
}
