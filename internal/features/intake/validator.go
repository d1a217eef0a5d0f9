package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xyz-asif/charityhub/internal/pkg/sanitize"
	"github.com/xyz-asif/charityhub/internal/pkg/validator"
)

// BuildPersonalInfo validates the request, strips markup and derives age at now.
func BuildPersonalInfo(req PersonalInfoRequest, now time.Time) (PersonalInfo, error) {
	name := sanitize.Text(req.FullName)
	if !validator.IsValidName(name) {
		return PersonalInfo{}, errors.New("personalInfo.fullName is required and may only contain letters")
	}

	dob, err := ParseDate(req.DateOfBirth)
	if err != nil {
		return PersonalInfo{}, fmt.Errorf("personalInfo.dateOfBirth: %w", err)
	}
	if dob.After(now) {
		return PersonalInfo{}, errors.New("personalInfo.dateOfBirth cannot be in the future")
	}

	gender := strings.ToLower(strings.TrimSpace(req.Gender))
	if !OneOf(Genders, gender) {
		return PersonalInfo{}, fmt.Errorf("personalInfo.gender must be one of %s", strings.Join(Genders, ", "))
	}

	bloodGroup := strings.ToUpper(strings.TrimSpace(req.BloodGroup))
	if bloodGroup != "" && !OneOf(BloodGroups, bloodGroup) {
		return PersonalInfo{}, fmt.Errorf("personalInfo.bloodGroup must be one of %s", strings.Join(BloodGroups, ", "))
	}

	return PersonalInfo{
		FullName:    name,
		DateOfBirth: dob,
		Age:         AgeOn(dob, now),
		Gender:      gender,
		BloodGroup:  bloodGroup,
	}, nil
}

func BuildContactInfo(req ContactInfoRequest) (ContactInfo, error) {
	if !validator.IsValidPhone(req.Phone) {
		return ContactInfo{}, errors.New("contactInfo.phone must be a valid phone number")
	}
	if req.AlternatePhone != "" && !validator.IsValidPhone(req.AlternatePhone) {
		return ContactInfo{}, errors.New("contactInfo.alternatePhone must be a valid phone number")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !validator.IsValidEmail(email) {
		return ContactInfo{}, errors.New("contactInfo.email must be a valid email address")
	}

	return ContactInfo{
		Phone:          validator.NormalizePhone(req.Phone),
		Email:          email,
		AlternatePhone: validator.NormalizePhone(req.AlternatePhone),
	}, nil
}

func BuildAddress(req AddressRequest) (Address, error) {
	addr := Address{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
		Country: req.Country,
	}
	sanitize.Texts(&addr.Street, &addr.City, &addr.State, &addr.Pincode, &addr.Country)

	switch {
	case addr.Street == "":
		return Address{}, errors.New("address.street is required")
	case addr.City == "":
		return Address{}, errors.New("address.city is required")
	case addr.State == "":
		return Address{}, errors.New("address.state is required")
	case !validator.IsValidPostalCode(addr.Pincode):
		return Address{}, errors.New("address.pincode must be a valid postal code")
	}
	if addr.Country == "" {
		addr.Country = "India"
	}
	return addr, nil
}

// RequireConsent rejects submissions whose consent flag is absent or false.
func RequireConsent(consented *bool) error {
	if consented == nil || !*consented {
		return errors.New("hasConsented must be true")
	}
	return nil
}
