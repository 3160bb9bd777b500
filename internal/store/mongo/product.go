package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/zazianopizza/zaziano/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
	}
}

// Upsert writes one product keyed by (section, id). The created flag reports
// whether a new document was inserted rather than an existing one updated.
func (r *ProductRepository) Upsert(ctx context.Context, product *domain.Product) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"section": product.Section, "id": product.ID}
	update := bson.M{
		"$set": bson.M{
			"section_order": product.SectionOrder,
			"order":         product.Order,
			"data":          product.Data,
		},
		"$setOnInsert": bson.M{
			"created_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert product: %w", err)
	}

	return result.UpsertedCount > 0, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "section_order", Value: 1},
		{Key: "order", Value: 1},
		{Key: "id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Delete(ctx context.Context, section string, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"section": section, "id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}
