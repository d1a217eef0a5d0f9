package blooddonation

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

// Store persists blood donation records
type Store interface {
	Insert(ctx context.Context, d *BloodDonation) error
	FindByID(ctx context.Context, id string) (*BloodDonation, error)
	FindByNumber(ctx context.Context, number string) (*BloodDonation, error)
	List(ctx context.Context, f Filter, skip, limit int) ([]BloodDonation, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string, notes *string, at time.Time) error
	Tally(ctx context.Context) ([]Tally, error)
	sequence.Numbered
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection(CollectionName)

	_, err := collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "requestNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		logger.Warn("blood donation indexes not created, request numbers are not unique",
			logger.String("collection", CollectionName),
			logger.Err(err))
	}

	return &Repository{collection: collection}
}

// Insert writes a new record. A taken requestNumber surfaces as a duplicate key error.
func (r *Repository) Insert(ctx context.Context, d *BloodDonation) error {
	d.ID = primitive.NilObjectID
	result, err := r.collection.InsertOne(ctx, d)
	if err != nil {
		return err
	}
	d.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// HighestNumber returns the largest stored request number of kind and year
func (r *Repository) HighestNumber(ctx context.Context, kind sequence.Kind, year int) (int64, error) {
	return sequence.HighestIn(ctx, r.collection, "requestNumber", kind, year)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*BloodDonation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *Repository) FindByNumber(ctx context.Context, number string) (*BloodDonation, error) {
	return r.findOne(ctx, bson.M{"requestNumber": number})
}

func (r *Repository) findOne(ctx context.Context, filter bson.M) (*BloodDonation, error) {
	var d BloodDonation
	if err := r.collection.FindOne(ctx, filter).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// List returns one page of records, newest first, plus the total matching f.
func (r *Repository) List(ctx context.Context, f Filter, skip, limit int) ([]BloodDonation, int64, error) {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"requestNumber": pattern},
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

	var items []BloodDonation
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []BloodDonation{}
	}
	return items, total, nil
}

// UpdateStatus touches only status, adminNotes and updatedAt. The request number is never rewritten.
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

// Tally groups records by type and status
func (r *Repository) Tally(ctx context.Context) ([]Tally, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "type", Value: "$type"}, {Key: "status", Value: "$status"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "type", Value: "$_id.type"},
			{Key: "status", Value: "$_id.status"},
			{Key: "count", Value: 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tallies []Tally
	if err := cursor.All(ctx, &tallies); err != nil {
		return nil, err
	}
	return tallies, nil
}
