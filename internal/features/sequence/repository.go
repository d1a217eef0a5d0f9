package sequence

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CounterStore hands out the next value of a per-(kind, year) counter.
type CounterStore interface {
	Next(ctx context.Context, kind Kind, year int) (int64, error)
	// Raise moves the counter up to floor. A counter already past floor is left alone.
	Raise(ctx context.Context, kind Kind, year int, floor int64) error
}

// Numbered is a collection whose records carry numbers of this package.
type Numbered interface {
	HighestNumber(ctx context.Context, kind Kind, year int) (int64, error)
}

type counterDoc struct {
	ID   string `bson:"_id"`
	Kind string `bson:"kind"`
	Year int    `bson:"year"`
	Seq  int64  `bson:"seq"`
}

// Repository keeps one counter document per kind and year in the "counters" collection.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("counters")}
}

// Next atomically increments and returns the counter, creating it at 1 on first use.
func (r *Repository) Next(ctx context.Context, kind Kind, year int) (int64, error) {
	filter := bson.M{"_id": CounterKey(kind, year)}
	update := bson.M{
		"$inc":         bson.M{"seq": int64(1)},
		"$setOnInsert": bson.M{"kind": string(kind), "year": year},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w", CounterKey(kind, year), err)
	}
	return doc.Seq, nil
}

// Raise applies $max so concurrent raises and increments never move the counter back.
func (r *Repository) Raise(ctx context.Context, kind Kind, year int, floor int64) error {
	filter := bson.M{"_id": CounterKey(kind, year)}
	update := bson.M{
		"$max":         bson.M{"seq": floor},
		"$setOnInsert": bson.M{"kind": string(kind), "year": year},
	}
	if _, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("raise counter %s: %w", CounterKey(kind, year), err)
	}
	return nil
}

// HighestIn returns the largest number of kind and year stored in field of collection, 0 if there is none.
// Numbers are zero padded, so the string order is the numeric order.
func HighestIn(ctx context.Context, collection *mongo.Collection, field string, kind Kind, year int) (int64, error) {
	filter := bson.M{field: primitive.Regex{Pattern: "^" + regexp.QuoteMeta(Prefix(kind, year)) + `\d{6}$`}}
	opts := options.FindOne().
		SetSort(bson.D{{Key: field, Value: -1}}).
		SetProjection(bson.M{field: 1})

	var doc bson.M
	err := collection.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	number, _ := doc[field].(string)
	_, _, n, err := Parse(number)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Current returns the last value handed out, 0 if the counter does not exist yet.
func (r *Repository) Current(ctx context.Context, kind Kind, year int) (int64, error) {
	var doc counterDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": CounterKey(kind, year)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.Seq, nil
}
