package blooddonation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/pkg/sanitize"
)

// Build validates a submission and turns it into a pending record (without a number).
// Age is derived at now; a client supplied age is never read.
func Build(req SubmitRequest, now time.Time) (*BloodDonation, error) {
	kind := Type(strings.ToLower(strings.TrimSpace(req.Type)))
	if !kind.Valid() {
		return nil, errors.New("type must be donor or patient")
	}

	personal, err := intake.BuildPersonalInfo(req.PersonalInfo, now)
	if err != nil {
		return nil, err
	}
	if personal.BloodGroup == "" {
		return nil, errors.New("personalInfo.bloodGroup is required")
	}

	contact, err := intake.BuildContactInfo(req.ContactInfo)
	if err != nil {
		return nil, err
	}

	address, err := intake.BuildAddress(req.Address)
	if err != nil {
		return nil, err
	}

	if err := intake.RequireConsent(req.HasConsented); err != nil {
		return nil, err
	}

	d := &BloodDonation{
		Type:         kind,
		PersonalInfo: personal,
		ContactInfo:  contact,
		Address:      address,
		Status:       StatusPending,
		HasConsented: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch kind {
	case TypeDonor:
		d.HealthInfo, err = buildHealthInfo(req.HealthInfo, now)
	case TypePatient:
		d.PatientInfo, err = buildPatientInfo(req.PatientInfo)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func buildHealthInfo(req *HealthInfoRequest, now time.Time) (*HealthInfo, error) {
	if req == nil {
		return nil, errors.New("healthInfo is required for donors")
	}
	if req.Weight <= 0 {
		return nil, errors.New("healthInfo.weight must be greater than zero")
	}

	info := &HealthInfo{
		Weight:            req.Weight,
		HasTattoo:         req.HasTattoo,
		TattooDetails:     req.TattooDetails,
		HasChronicIllness: req.HasChronicIllness,
		IllnessDetails:    req.IllnessDetails,
		IsOnMedication:    req.IsOnMedication,
		MedicationDetails: req.MedicationDetails,
	}
	sanitize.Texts(&info.TattooDetails, &info.IllnessDetails, &info.MedicationDetails)

	if strings.TrimSpace(req.LastDonationDate) != "" {
		last, err := intake.ParseDate(req.LastDonationDate)
		if err != nil {
			return nil, fmt.Errorf("healthInfo.lastDonationDate: %w", err)
		}
		if last.After(now) {
			return nil, errors.New("healthInfo.lastDonationDate cannot be in the future")
		}
		info.LastDonationDate = &last
	}
	return info, nil
}

func buildPatientInfo(req *PatientInfoRequest) (*PatientInfo, error) {
	if req == nil {
		return nil, errors.New("patientInfo is required for patients")
	}

	info := &PatientInfo{
		HospitalName:    req.HospitalName,
		HospitalAddress: req.HospitalAddress,
		DoctorName:      req.DoctorName,
		Diagnosis:       req.Diagnosis,
		UnitsRequired:   req.UnitsRequired,
		Urgency:         strings.ToLower(strings.TrimSpace(req.Urgency)),
	}
	sanitize.Texts(&info.HospitalName, &info.HospitalAddress, &info.DoctorName, &info.Diagnosis)

	if info.HospitalName == "" {
		return nil, errors.New("patientInfo.hospitalName is required")
	}
	if info.UnitsRequired < 1 {
		return nil, errors.New("patientInfo.unitsRequired must be at least 1")
	}
	if info.Urgency == "" {
		info.Urgency = UrgencyNormal
	}
	if !intake.OneOf(Urgencies, info.Urgency) {
		return nil, fmt.Errorf("patientInfo.urgency must be one of %s", strings.Join(Urgencies, ", "))
	}

	if strings.TrimSpace(req.RequiredBy) != "" {
		by, err := intake.ParseDate(req.RequiredBy)
		if err != nil {
			return nil, fmt.Errorf("patientInfo.requiredBy: %w", err)
		}
		info.RequiredBy = &by
	}
	return info, nil
}
