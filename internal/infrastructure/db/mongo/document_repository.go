package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

const documentsCollection = "documents"

// DocumentRepository implements ports.DocumentRepository using MongoDB.
type DocumentRepository struct {
	coll *mongo.Collection
}

func NewDocumentRepository(db *mongo.Database) *DocumentRepository {
	return &DocumentRepository{coll: db.Collection(documentsCollection)}
}

type mongoDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	FileName   string             `bson:"file_name"`
	FilePath   string             `bson:"file_path"`
	ProjectID  string             `bson:"project_id"`
	UploadedBy string             `bson:"uploaded_by"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (md mongoDocument) toDomain() *domain.Document {
	return &domain.Document{
		ID:         md.ID.Hex(),
		FileName:   md.FileName,
		FilePath:   md.FilePath,
		ProjectID:  md.ProjectID,
		UploadedBy: md.UploadedBy,
		CreatedAt:  md.CreatedAt,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDocument{
		FileName:   d.FileName,
		FilePath:   d.FilePath,
		ProjectID:  d.ProjectID,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}

	created := *d
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *DocumentRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"project_id": projectID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer cur.Close(ctx)

	var docs []*domain.Document
	for cur.Next(ctx) {
		var md mongoDocument
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = append(docs, md.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// EnsureIndexes creates necessary indexes on the documents collection.
func (r *DocumentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}},
	})
	return err
}
