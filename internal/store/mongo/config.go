package mongo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/zazianopizza/zaziano/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Opening hours and settings are singletons stored under well-known keys and
// default-initialized once at startup, so reads never have to lazily create
// anything.
const (
	openingHoursKey = "opening_hours"
	settingsKey     = "delivery"
)

type OpeningHoursRepository struct {
	collection *mongo.Collection
}

func NewOpeningHoursRepository(db *mongo.Database) *OpeningHoursRepository {
	return &OpeningHoursRepository{
		collection: db.Collection("opening_hours"),
	}
}

func (r *OpeningHoursRepository) EnsureDefault(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{
		"$setOnInsert": bson.M{
			"schedule":   domain.DefaultWeekSchedule(),
			"updated_at": time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": openingHoursKey}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to ensure default opening hours: %w", err)
	}

	return nil
}

func (r *OpeningHoursRepository) Get(ctx context.Context) (*domain.OpeningHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var hours domain.OpeningHours
	err := r.collection.FindOne(ctx, bson.M{"_id": openingHoursKey}).Decode(&hours)
	if err != nil {
		return nil, fmt.Errorf("failed to get opening hours: %w", err)
	}

	return &hours, nil
}

func (r *OpeningHoursRepository) Update(ctx context.Context, schedule domain.WeekSchedule) (*domain.OpeningHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"schedule":   schedule,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)

	var hours domain.OpeningHours
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": openingHoursKey}, update, opts).Decode(&hours)
	if err != nil {
		return nil, fmt.Errorf("failed to update opening hours: %w", err)
	}

	return &hours, nil
}

type SettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("settings"),
	}
}

func (r *SettingsRepository) EnsureDefault(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	update := bson.M{
		"$setOnInsert": bson.M{
			"delivery_fee": 5.00,
			"updated_at":   time.Now(),
		},
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": settingsKey}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to ensure default settings: %w", err)
	}

	return nil
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings domain.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsKey}).Decode(&settings)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

func (r *SettingsRepository) Update(ctx context.Context, deliveryFee float64) (*domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// stored rounded to cents
	fee := math.Round(deliveryFee*100) / 100

	update := bson.M{
		"$set": bson.M{
			"delivery_fee": fee,
			"updated_at":   time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After).SetUpsert(true)

	var settings domain.Settings
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": settingsKey}, update, opts).Decode(&settings)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return &settings, nil
}
