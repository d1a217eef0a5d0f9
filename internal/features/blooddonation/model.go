package blooddonation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/features/sequence"
)

const CollectionName = "blooddonations"

// Type discriminates donor offers from patient requests. It also picks the number prefix.
type Type string

const (
	TypeDonor   Type = "donor"
	TypePatient Type = "patient"
)

func (t Type) Valid() bool {
	return t == TypeDonor || t == TypePatient
}

// SequenceKind returns the numbering kind for t
func (t Type) SequenceKind() sequence.Kind {
	if t == TypePatient {
		return sequence.KindBloodRequest
	}
	return sequence.KindBloodDonor
}

// Status values
const (
	StatusPending   = "pending"
	StatusVerified  = "verified"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

var Transitions = intake.Transitions{
	StatusPending:  {StatusVerified, StatusCancelled, StatusExpired},
	StatusVerified: {StatusFulfilled, StatusCancelled, StatusExpired},
}

// Urgency values for patient requests
const (
	UrgencyNormal   = "normal"
	UrgencyUrgent   = "urgent"
	UrgencyCritical = "critical"
)

var Urgencies = []string{UrgencyNormal, UrgencyUrgent, UrgencyCritical}

// HealthInfo is filled by donors. Detail fields are kept as submitted, whatever the flag says.
type HealthInfo struct {
	Weight            float64    `bson:"weight" json:"weight"`
	LastDonationDate  *time.Time `bson:"lastDonationDate,omitempty" json:"lastDonationDate,omitempty"`
	HasTattoo         bool       `bson:"hasTattoo" json:"hasTattoo"`
	TattooDetails     string     `bson:"tattooDetails,omitempty" json:"tattooDetails,omitempty"`
	HasChronicIllness bool       `bson:"hasChronicIllness" json:"hasChronicIllness"`
	IllnessDetails    string     `bson:"illnessDetails,omitempty" json:"illnessDetails,omitempty"`
	IsOnMedication    bool       `bson:"isOnMedication" json:"isOnMedication"`
	MedicationDetails string     `bson:"medicationDetails,omitempty" json:"medicationDetails,omitempty"`
}

// PatientInfo is filled by patients requesting blood
type PatientInfo struct {
	HospitalName    string     `bson:"hospitalName" json:"hospitalName"`
	HospitalAddress string     `bson:"hospitalAddress,omitempty" json:"hospitalAddress,omitempty"`
	DoctorName      string     `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	Diagnosis       string     `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	UnitsRequired   int        `bson:"unitsRequired" json:"unitsRequired"`
	RequiredBy      *time.Time `bson:"requiredBy,omitempty" json:"requiredBy,omitempty"`
	Urgency         string     `bson:"urgency" json:"urgency"`
}

// BloodDonation is a donor or patient intake record. RequestNumber is assigned once on insert.
type BloodDonation struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type          Type                `bson:"type" json:"type"`
	PersonalInfo  intake.PersonalInfo `bson:"personalInfo" json:"personalInfo"`
	ContactInfo   intake.ContactInfo  `bson:"contactInfo" json:"contactInfo"`
	Address       intake.Address      `bson:"address" json:"address"`
	HealthInfo    *HealthInfo         `bson:"healthInfo,omitempty" json:"healthInfo,omitempty"`
	PatientInfo   *PatientInfo        `bson:"patientInfo,omitempty" json:"patientInfo,omitempty"`
	RequestNumber string              `bson:"requestNumber" json:"requestNumber"`
	Status        string              `bson:"status" json:"status"`
	HasConsented  bool                `bson:"hasConsented" json:"hasConsented"`
	AdminNotes    string              `bson:"adminNotes,omitempty" json:"adminNotes,omitempty"`
	CreatedAt     time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Track returns the public projection. No personal data leaves through it.
func (d *BloodDonation) Track() intake.TrackView {
	return intake.TrackView{
		Number:    d.RequestNumber,
		Kind:      string(d.Type),
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type HealthInfoRequest struct {
	Weight            float64 `json:"weight"`
	LastDonationDate  string  `json:"lastDonationDate"`
	HasTattoo         bool    `json:"hasTattoo"`
	TattooDetails     string  `json:"tattooDetails"`
	HasChronicIllness bool    `json:"hasChronicIllness"`
	IllnessDetails    string  `json:"illnessDetails"`
	IsOnMedication    bool    `json:"isOnMedication"`
	MedicationDetails string  `json:"medicationDetails"`
}

type PatientInfoRequest struct {
	HospitalName    string `json:"hospitalName"`
	HospitalAddress string `json:"hospitalAddress"`
	DoctorName      string `json:"doctorName"`
	Diagnosis       string `json:"diagnosis"`
	UnitsRequired   int    `json:"unitsRequired"`
	RequiredBy      string `json:"requiredBy"`
	Urgency         string `json:"urgency"`
}

// SubmitRequest is the public blood donation form. HasConsented is a pointer so
// an absent flag can be told apart from false.
type SubmitRequest struct {
	Type         string                     `json:"type" binding:"required" example:"donor"`
	PersonalInfo intake.PersonalInfoRequest `json:"personalInfo"`
	ContactInfo  intake.ContactInfoRequest  `json:"contactInfo"`
	Address      intake.AddressRequest      `json:"address"`
	HealthInfo   *HealthInfoRequest         `json:"healthInfo"`
	PatientInfo  *PatientInfoRequest        `json:"patientInfo"`
	HasConsented *bool                      `json:"hasConsented"`
}

// SubmitResponse is returned to the submitter
type SubmitResponse struct {
	ID            string `json:"id"`
	RequestNumber string `json:"requestNumber" example:"BDD-2024-000001"`
	Type          Type   `json:"type" example:"donor"`
	Status        string `json:"status" example:"pending"`
}

// Filter narrows admin listings
type Filter struct {
	Type   string
	Status string
	Search string
}

// Tally is one (type, status) bucket of the dashboard aggregate
type Tally struct {
	Type   Type   `bson:"type" json:"type"`
	Status string `bson:"status" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}
