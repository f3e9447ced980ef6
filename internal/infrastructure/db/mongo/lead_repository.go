package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/seobuddy/seobuddy-api/internal/core/domain"
)

const leadsCollection = "leads"

type MongoLeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *MongoLeadRepository {
	return &MongoLeadRepository{coll: db.Collection(leadsCollection)}
}

type mongoLead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Website   string             `bson:"website,omitempty"`
	Message   string             `bson:"message"`
	Source    string             `bson:"source,omitempty"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *MongoLeadRepository) Insert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	doc := mongoLead{
		Name:      lead.Name,
		Email:     lead.Email,
		Website:   lead.Website,
		Message:   lead.Message,
		Source:    lead.Source,
		CreatedAt: lead.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	created := *lead
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoLeadRepository) List(ctx context.Context, page, limit int) ([]*domain.Lead, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	var leads []*domain.Lead
	for cur.Next(ctx) {
		var ml mongoLead
		if err := cur.Decode(&ml); err != nil {
			return nil, 0, fmt.Errorf("decode lead: %w", err)
		}
		leads = append(leads, &domain.Lead{
			ID:        ml.ID.Hex(),
			Name:      ml.Name,
			Email:     ml.Email,
			Website:   ml.Website,
			Message:   ml.Message,
			Source:    ml.Source,
			CreatedAt: unixToTime(ml.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}

	return leads, total, nil
}

func (r *MongoLeadRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}
