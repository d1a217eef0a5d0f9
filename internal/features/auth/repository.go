package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrEmailTaken is returned by Create when the email already exists in that collection
var ErrEmailTaken = errors.New("email already exists")

// AccountStore is one account collection. Lookups return (nil, nil) when nothing matches.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Count(ctx context.Context) (int64, error)
}

// Repository handles database interactions for a single account collection
type Repository struct {
	collection *mongo.Collection
}

// NewRepository binds a repository to the named collection and ensures the unique email index
func NewRepository(db *mongo.Database, collectionName string) *Repository {
	collection := db.Collection(collectionName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _ = collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{collection: collection}
}

// NormalizeEmail trims and lowercases an email before it is stored or looked up
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail finds an account by email address
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	err := r.collection.FindOne(ctx, bson.M{"email": NormalizeEmail(email)}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindByID finds an account by its hex ObjectID. Malformed ids match nothing.
func (r *Repository) FindByID(ctx context.Context, id string) (*Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var account Account
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts a new account
func (r *Repository) Create(ctx context.Context, account *Account) error {
	account.Email = NormalizeEmail(account.Email)
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

// Count returns the number of accounts in the collection
func (r *Repository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
