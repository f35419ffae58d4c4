package consultantRepo

import (
	"context"
	"fmt"
	"time"

	"avira/database"
	"avira/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConsultantRepo implements ConsultantRepository using MongoDB.
// Consultant records and availability rules are maintained by provider-side
// tooling; this repository is read-only.
type MongoConsultantRepo struct {
	coll      *mongo.Collection
	rulesColl *mongo.Collection
}

// NewMongoConsultantRepo creates a new instance of ConsultantRepository using MongoDB.
func NewMongoConsultantRepo() ConsultantRepository {
	db := database.DB()
	repo := &MongoConsultantRepo{
		coll:      db.Collection("consultants"),
		rulesColl: db.Collection("consultant_availability"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConsultantRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create consultant indexes: %w", err)
	}

	if _, err := r.rulesColl.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "consultant_id", Value: 1}, {Key: "day_of_week", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}

func (r *MongoConsultantRepo) GetByID(id string) (*models.Consultant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var consultant models.Consultant
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultant)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultant %s: %w", id, err)
	}
	return &consultant, nil
}

func (r *MongoConsultantRepo) GetAllAvailable() ([]models.Consultant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"is_available": true},
		options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list consultants: %w", err)
	}
	defer cursor.Close(ctx)

	var consultants []models.Consultant
	if err := cursor.All(ctx, &consultants); err != nil {
		return nil, fmt.Errorf("failed to decode consultants: %w", err)
	}
	return consultants, nil
}

func (r *MongoConsultantRepo) GetAvailabilityRules(consultantID string) ([]models.AvailabilityRule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.rulesColl.Find(ctx, bson.M{"consultant_id": consultantID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability rules for %s: %w", consultantID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode availability rules: %w", err)
	}
	return rules, nil
}
