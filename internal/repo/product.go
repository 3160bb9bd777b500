package repo

import (
	"context"

	"github.com/zazianopizza/zaziano/internal/domain"
)

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product) (created bool, err error)
	List(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, section string, id int64) error
}
