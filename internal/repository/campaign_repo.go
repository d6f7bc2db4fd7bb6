package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campaignlens/internal/model"
)

// CampaignRepo handles MongoDB operations for campaigns
type CampaignRepo interface {
	Create(ctx context.Context, campaign *model.Campaign) (string, error)
	GetByID(ctx context.Context, id string) (*model.Campaign, error)
	GetByHostID(ctx context.Context, hostID string) ([]*model.Campaign, error)
	Update(ctx context.Context, campaign *model.Campaign) error
	SetForm(ctx context.Context, id, formID string) error
}

type campaignRepo struct {
	collection *mongo.Collection
}

// NewCampaignRepo creates a new campaign repository
func NewCampaignRepo(db *mongo.Database) CampaignRepo {
	return &campaignRepo{
		collection: db.Collection("campaigns"),
	}
}

func (r *campaignRepo) Create(ctx context.Context, campaign *model.Campaign) (string, error) {
	campaign.CreatedAt = time.Now()
	campaign.UpdatedAt = time.Now()
	if campaign.Status == "" {
		campaign.Status = model.CampaignDraft
	}

	result, err := r.collection.InsertOne(ctx, campaign)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return campaign.ID, nil
	}
	campaign.ID = oid.Hex()
	return campaign.ID, nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (*model.Campaign, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var campaign model.Campaign
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&campaign)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	campaign.ID = id
	return &campaign, nil
}

func (r *campaignRepo) GetByHostID(ctx context.Context, hostID string) ([]*model.Campaign, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"hostId": hostID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var campaigns []*model.Campaign
	if err := cursor.All(ctx, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *campaignRepo) Update(ctx context.Context, campaign *model.Campaign) error {
	oid, err := primitive.ObjectIDFromHex(campaign.ID)
	if err != nil {
		return err
	}

	campaign.UpdatedAt = time.Now()
	_, err = r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, campaign)
	return err
}

func (r *campaignRepo) SetForm(ctx context.Context, id, formID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"formId": formID, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
