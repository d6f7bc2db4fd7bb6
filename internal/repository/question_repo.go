package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuestionRepo handles MongoDB operations for survey form questions.
// Question documents are returned as raw maps: historical clients wrote
// several shapes (stringified choice lists, numeric strings for order_no)
// and the analysis engine owns normalization at its boundary.
type QuestionRepo interface {
	GetByFormID(ctx context.Context, formID string) ([]map[string]any, error)
	InsertMany(ctx context.Context, formID string, questions []map[string]any) error
	DeleteByFormID(ctx context.Context, formID string) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) GetByFormID(ctx context.Context, formID string) ([]map[string]any, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order_no", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"form_id": formID}, opts)
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

func (r *questionRepo) InsertMany(ctx context.Context, formID string, questions []map[string]any) error {
	if len(questions) == 0 {
		return nil
	}
	docs := make([]any, 0, len(questions))
	for _, q := range questions {
		q["form_id"] = formID
		docs = append(docs, q)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *questionRepo) DeleteByFormID(ctx context.Context, formID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"form_id": formID})
	return err
}

func toMaps(docs []bson.M) []map[string]any {
	out := make([]map[string]any, len(docs))
	for i, doc := range docs {
		out[i] = map[string]any(doc)
	}
	return out
}
