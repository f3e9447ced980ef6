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

const uploadsCollection = "uploads"

type MongoUploadRepository struct {
	coll *mongo.Collection
}

func NewUploadRepository(db *mongo.Database) *MongoUploadRepository {
	return &MongoUploadRepository{coll: db.Collection(uploadsCollection)}
}

type mongoUpload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     string             `bson:"owner_id"`
	FileName    string             `bson:"file_name"`
	StoredName  string             `bson:"stored_name"`
	Extension   string             `bson:"extension"`
	ContentType string             `bson:"content_type,omitempty"`
	SizeBytes   int64              `bson:"size_bytes"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *MongoUploadRepository) Insert(ctx context.Context, up *domain.Upload) (*domain.Upload, error) {
	doc := mongoUpload{
		OwnerID:     up.OwnerID,
		FileName:    up.FileName,
		StoredName:  up.StoredName,
		Extension:   up.Extension,
		ContentType: up.ContentType,
		SizeBytes:   up.SizeBytes,
		CreatedAt:   up.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert upload: %w", err)
	}

	created := *up
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MongoUploadRepository) List(ctx context.Context, page, limit int) ([]*domain.Upload, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count uploads: %w", err)
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
		return nil, 0, fmt.Errorf("list uploads: %w", err)
	}
	defer cur.Close(ctx)

	var uploads []*domain.Upload
	for cur.Next(ctx) {
		var mu mongoUpload
		if err := cur.Decode(&mu); err != nil {
			return nil, 0, fmt.Errorf("decode upload: %w", err)
		}
		uploads = append(uploads, &domain.Upload{
			ID:          mu.ID.Hex(),
			OwnerID:     mu.OwnerID,
			FileName:    mu.FileName,
			StoredName:  mu.StoredName,
			Extension:   mu.Extension,
			ContentType: mu.ContentType,
			SizeBytes:   mu.SizeBytes,
			CreatedAt:   unixToTime(mu.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("list uploads: %w", err)
	}

	return uploads, total, nil
}

func (r *MongoUploadRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count uploads: %w", err)
	}
	return n, nil
}
