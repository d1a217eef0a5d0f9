package intake

import "time"

// PersonalInfo is shared by every intake form. Age is always derived from DateOfBirth.
type PersonalInfo struct {
	FullName    string    `bson:"fullName" json:"fullName"`
	DateOfBirth time.Time `bson:"dateOfBirth" json:"dateOfBirth"`
	Age         int       `bson:"age" json:"age"`
	Gender      string    `bson:"gender" json:"gender"`
	BloodGroup  string    `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
}

type ContactInfo struct {
	Phone          string `bson:"phone" json:"phone"`
	Email          string `bson:"email,omitempty" json:"email,omitempty"`
	AlternatePhone string `bson:"alternatePhone,omitempty" json:"alternatePhone,omitempty"`
}

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Pincode string `bson:"pincode" json:"pincode"`
	Country string `bson:"country" json:"country"`
}

// Gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

var Genders = []string{GenderMale, GenderFemale, GenderOther}

var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// PersonalInfoRequest is the wire form of PersonalInfo. Any client supplied age is ignored.
type PersonalInfoRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	BloodGroup  string `json:"bloodGroup"`
}

type ContactInfoRequest struct {
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email"`
	AlternatePhone string `json:"alternatePhone"`
}

type AddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`
	Country string `json:"country"`
}

// TrackView is the public projection returned by tracking endpoints
type TrackView struct {
	Number    string    `json:"number"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatusUpdateRequest is the admin payload for moving a record through its lifecycle
type StatusUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes *string `json:"adminNotes"`
}

// ListQuery holds filters shared by the admin list endpoints
type ListQuery struct {
	Status string `form:"status"`
	Type   string `form:"type"`
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
