package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixelforge/nexus-api/internal/core/domain"
)

const projectsCollection = "projects"

// ProjectRepository implements ports.ProjectRepository using MongoDB.
// Team-set mutations use $addToSet/$pull so membership keeps set semantics
// under concurrent writers.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type mongoProject struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Deadline        time.Time          `bson:"deadline"`
	Status          string             `bson:"status"`
	AssignedUserIDs []string           `bson:"assigned_user_ids"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (mp mongoProject) toDomain() *domain.Project {
	ids := mp.AssignedUserIDs
	if ids == nil {
		ids = []string{}
	}
	return &domain.Project{
		ID:              mp.ID.Hex(),
		Name:            mp.Name,
		Description:     mp.Description,
		Deadline:        mp.Deadline,
		Status:          domain.ProjectStatus(mp.Status),
		AssignedUserIDs: ids,
		CreatedAt:       mp.CreatedAt,
		UpdatedAt:       mp.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProject{
		Name:            p.Name,
		Description:     p.Description,
		Deadline:        p.Deadline.UTC(),
		Status:          string(p.Status),
		AssignedUserIDs: p.AssignedUserIDs,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

// ListByStatus returns projects in the given status sorted by deadline ascending.
func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	return r.list(ctx, bson.M{"status": string(status)}, options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}}))
}

// ListByAssignee returns projects whose team set contains userID, any status.
func (r *ProjectRepository) ListByAssignee(ctx context.Context, userID string) ([]*domain.Project, error) {
	return r.list(ctx, bson.M{"assigned_user_ids": userID}, options.Find())
}

func (r *ProjectRepository) list(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cur.Close(ctx)

	var projects []*domain.Project
	for cur.Next(ctx) {
		var mp mongoProject
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// SetStatus updates the status and returns the updated project.
func (r *ProjectRepository) SetStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error) {
	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}
	return r.findOneAndUpdate(ctx, id, update)
}

// AddAssignment adds userID to the team set and returns the updated project.
func (r *ProjectRepository) AddAssignment(ctx context.Context, projectID, userID string) (*domain.Project, error) {
	update := bson.M{
		"$addToSet": bson.M{"assigned_user_ids": userID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	}
	return r.findOneAndUpdate(ctx, projectID, update)
}

// RemoveAssignment pulls userID from the team set. Pulling an absent id is a no-op.
func (r *ProjectRepository) RemoveAssignment(ctx context.Context, projectID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"assigned_user_ids": userID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("remove assignment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) findOneAndUpdate(ctx context.Context, id string, update bson.M) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mp mongoProject
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}
	return mp.toDomain(), nil
}

// EnsureIndexes creates necessary indexes on the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "deadline", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_user_ids", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
