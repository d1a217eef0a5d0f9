package heroimages

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionName = "heroimages"

// HeroImage is a banner slide on the public home page
type HeroImage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Subtitle  string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	ImageURL  string             `bson:"imageUrl" json:"imageUrl"`
	PublicID  string             `bson:"publicId,omitempty" json:"-"`
	Order     int                `bson:"order" json:"order"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Input carries the editable fields, from JSON or multipart form values.
// Nil pointers leave the stored value untouched on update.
type Input struct {
	Title    *string `json:"title" form:"title"`
	Subtitle *string `json:"subtitle" form:"subtitle"`
	ImageURL *string `json:"imageUrl" form:"imageUrl"`
	Order    *int    `json:"order" form:"order"`
	IsActive *bool   `json:"isActive" form:"isActive"`
}
