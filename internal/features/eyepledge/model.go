package eyepledge

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/charityhub/internal/features/intake"
)

const CollectionName = "eyepledges"

// TrackKind is the kind reported by the public tracking view
const TrackKind = "eye-pledge"

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

var Transitions = intake.Transitions{
	StatusPending: {StatusActive, StatusCancelled},
	StatusActive:  {StatusFulfilled, StatusCancelled},
}

// NextOfKin is the person contacted when the pledge has to be honoured
type NextOfKin struct {
	Name         string `bson:"name" json:"name"`
	Relationship string `bson:"relationship" json:"relationship"`
	Phone        string `bson:"phone" json:"phone"`
}

type EyePledge struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PersonalInfo intake.PersonalInfo `bson:"personalInfo" json:"personalInfo"`
	ContactInfo  intake.ContactInfo  `bson:"contactInfo" json:"contactInfo"`
	Address      intake.Address      `bson:"address" json:"address"`
	NextOfKin    NextOfKin           `bson:"nextOfKin" json:"nextOfKin"`
	MedicalNotes string              `bson:"medicalNotes,omitempty" json:"medicalNotes,omitempty"`
	PledgeNumber string              `bson:"pledgeNumber" json:"pledgeNumber"`
	Status       string              `bson:"status" json:"status"`
	HasConsented bool                `bson:"hasConsented" json:"hasConsented"`
	AdminNotes   string              `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (p *EyePledge) Track() intake.TrackView {
	return intake.TrackView{
		Number:    p.PledgeNumber,
		Kind:      TrackKind,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type NextOfKinRequest struct {
	Name         string `json:"name" binding:"required"`
	Relationship string `json:"relationship" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
}

// PledgeRequest is the public eye donation pledge form
type PledgeRequest struct {
	PersonalInfo intake.PersonalInfoRequest `json:"personalInfo"`
	ContactInfo  intake.ContactInfoRequest  `json:"contactInfo"`
	Address      intake.AddressRequest      `json:"address"`
	NextOfKin    NextOfKinRequest           `json:"nextOfKin"`
	MedicalNotes string                     `json:"medicalNotes"`
	HasConsented *bool                      `json:"hasConsented"`
}

type PledgeResponse struct {
	ID           string `json:"id"`
	PledgeNumber string `json:"pledgeNumber" example:"EDP-2024-000001"`
	Status       string `json:"status" example:"pending"`
}

type Filter struct {
	Status string
	Search string
}

// StatusCount is one bucket of the dashboard aggregate
type StatusCount struct {
	Status string `bson:"status" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}
