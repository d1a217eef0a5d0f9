package eyepledge

import (
	"errors"
	"fmt"
	"time"

	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/pkg/sanitize"
	"github.com/xyz-asif/charityhub/internal/pkg/validator"
)

const maxMedicalNotesLength = 2000

// Build validates a pledge and returns it as pending, without a number
func Build(req PledgeRequest, now time.Time) (*EyePledge, error) {
	personal, err := intake.BuildPersonalInfo(req.PersonalInfo, now)
	if err != nil {
		return nil, err
	}
	contact, err := intake.BuildContactInfo(req.ContactInfo)
	if err != nil {
		return nil, err
	}
	address, err := intake.BuildAddress(req.Address)
	if err != nil {
		return nil, err
	}
	kin, err := buildNextOfKin(req.NextOfKin)
	if err != nil {
		return nil, err
	}

	notes := sanitize.Text(req.MedicalNotes)
	if len(notes) > maxMedicalNotesLength {
		return nil, fmt.Errorf("medicalNotes cannot exceed %d characters", maxMedicalNotesLength)
	}

	if err := intake.RequireConsent(req.HasConsented); err != nil {
		return nil, err
	}

	return &EyePledge{
		PersonalInfo: personal,
		ContactInfo:  contact,
		Address:      address,
		NextOfKin:    kin,
		MedicalNotes: notes,
		Status:       StatusPending,
		HasConsented: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func buildNextOfKin(req NextOfKinRequest) (NextOfKin, error) {
	kin := NextOfKin{Name: req.Name, Relationship: req.Relationship}
	sanitize.Texts(&kin.Name, &kin.Relationship)

	if !validator.IsValidName(kin.Name) {
		return NextOfKin{}, errors.New("nextOfKin.name is required and may only contain letters")
	}
	if kin.Relationship == "" {
		return NextOfKin{}, errors.New("nextOfKin.relationship is required")
	}
	if !validator.IsValidPhone(req.Phone) {
		return NextOfKin{}, errors.New("nextOfKin.phone must be a valid phone number")
	}
	kin.Phone = validator.NormalizePhone(req.Phone)
	return kin, nil
}
