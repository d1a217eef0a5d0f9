package heroimages

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store interface {
	Create(ctx context.Context, img *HeroImage) error
	FindByID(ctx context.Context, id string) (*HeroImage, error)
	List(ctx context.Context, activeOnly bool) ([]HeroImage, error)
	Save(ctx context.Context, img *HeroImage) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection(CollectionName)

	collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "order", Value: 1}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, img *HeroImage) error {
	result, err := r.collection.InsertOne(ctx, img)
	if err != nil {
		return err
	}
	img.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*HeroImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var img HeroImage
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&img); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &img, nil
}

// List returns images by display order
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]HeroImage, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var images []HeroImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	if images == nil {
		images = []HeroImage{}
	}
	return images, nil
}

// Save replaces the stored document
func (r *Repository) Save(ctx context.Context, img *HeroImage) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": img.ID}, img)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
