package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnswerRepo handles MongoDB operations for survey answers. Like questions,
// answers are handed to the analysis engine as raw maps because upstream
// clients encoded choice_ids three different ways over time.
type AnswerRepo interface {
	Insert(ctx context.Context, answer map[string]any) error
	GetByCampaignID(ctx context.Context, campaignID string) ([]map[string]any, error)
	CountByCampaignID(ctx context.Context, campaignID string) (int64, error)
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) Insert(ctx context.Context, answer map[string]any) error {
	_, err := r.collection.InsertOne(ctx, answer)
	return err
}

func (r *answerRepo) GetByCampaignID(ctx context.Context, campaignID string) ([]map[string]any, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"campaign_id": campaignID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toMaps(docs), nil
}

func (r *answerRepo) CountByCampaignID(ctx context.Context, campaignID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"campaign_id": campaignID})
}
