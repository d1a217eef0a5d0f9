package eyepledge

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/features/sequence"
	"github.com/xyz-asif/charityhub/internal/pkg/logger"
)

type Store interface {
	Insert(ctx context.Context, p *EyePledge) error
	FindByID(ctx context.Context, id string) (*EyePledge, error)
	FindByNumber(ctx context.Context, number string) (*EyePledge, error)
	List(ctx context.Context, f Filter, skip, limit int) ([]EyePledge, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, notes *string, at time.Time) error
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	sequence.Numbered
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection(CollectionName)

	_, err := collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "pledgeNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		logger.Warn("eye pledge indexes not created, pledge numbers are not unique",
			logger.String("collection", CollectionName),
			logger.Err(err))
	}

	return &Repository{collection: collection}
}

func (r *Repository) HighestNumber(ctx context.Context, kind sequence.Kind, year int) (int64, error) {
	return sequence.HighestIn(ctx, r.collection, "pledgeNumber", kind, year)
}

func (r *Repository) Insert(ctx context.Context, p *EyePledge) error {
	p.ID = primitive.NilObjectID
	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*EyePledge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *Repository) FindByNumber(ctx context.Context, number string) (*EyePledge, error) {
	return r.findOne(ctx, bson.M{"pledgeNumber": number})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*EyePledge, error) {
	var p EyePledge
	if err := r.collection.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context, f Filter, skip, limit int) ([]EyePledge, int64, error) {
	filter := bson.M{}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"pledgeNumber": pattern},
			bson.M{"personalInfo.fullName": pattern},
			bson.M{"contactInfo.phone": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []EyePledge
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []EyePledge{}
	}
	return items, total, nil
}

// UpdateStatus never touches pledgeNumber
func (r *Repository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, notes *string, at time.Time) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, intake.StatusUpdate(status, notes, at))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *Repository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "status", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
