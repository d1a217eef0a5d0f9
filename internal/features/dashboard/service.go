package dashboard

import (
	"context"

	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/features/blooddonation"
	"github.com/xyz-asif/charityhub/internal/features/eyepledge"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

type AccountCounter interface {
	Counts(ctx context.Context) (admins, users int64, err error)
}

type DonationTallier interface {
	Tally(ctx context.Context) ([]blooddonation.Tally, error)
}

type PledgeCounter interface {
	CountByStatus(ctx context.Context) ([]eyepledge.StatusCount, error)
}

type AccountTotals struct {
	Admins int64 `json:"admins"`
	Users  int64 `json:"users"`
}

type DonationTotals struct {
	Total     int64                 `json:"total"`
	ByType    map[string]int64      `json:"byType"`
	ByStatus  map[string]int64      `json:"byStatus"`
	Breakdown []blooddonation.Tally `json:"breakdown"`
}

type PledgeTotals struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// AdminDashboard is the payload of GET /admin/dashboard
type AdminDashboard struct {
	Accounts       AccountTotals  `json:"accounts"`
	BloodDonations DonationTotals `json:"bloodDonations"`
	EyePledges     PledgeTotals   `json:"eyePledges"`
}

// PublicTotals are the aggregate figures any signed in user may see
type PublicTotals struct {
	Donors            int64 `json:"donors"`
	PatientRequests   int64 `json:"patientRequests"`
	FulfilledRequests int64 `json:"fulfilledRequests"`
	EyePledges        int64 `json:"eyePledges"`
}

// UserDashboard is the payload of GET /user/dashboard
type UserDashboard struct {
	User   auth.AccountView `json:"user"`
	Totals PublicTotals     `json:"totals"`
}

type Service struct {
	accounts  AccountCounter
	donations DonationTallier
	pledges   PledgeCounter
}

func NewService(accounts AccountCounter, donations DonationTallier, pledges PledgeCounter) *Service {
	return &Service{accounts: accounts, donations: donations, pledges: pledges}
}

func (s *Service) Admin(ctx context.Context) (*AdminDashboard, error) {
	admins, users, err := s.accounts.Counts(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to count accounts", err)
	}
	donations, err := s.donationTotals(ctx)
	if err != nil {
		return nil, err
	}
	pledges, err := s.pledgeTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		Accounts:       AccountTotals{Admins: admins, Users: users},
		BloodDonations: donations,
		EyePledges:     pledges,
	}, nil
}

func (s *Service) User(ctx context.Context, account *auth.Account) (*UserDashboard, error) {
	donations, err := s.donationTotals(ctx)
	if err != nil {
		return nil, err
	}
	pledges, err := s.pledgeTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &UserDashboard{
		User: account.View(),
		Totals: PublicTotals{
			Donors:            donations.ByType[string(blooddonation.TypeDonor)],
			PatientRequests:   donations.ByType[string(blooddonation.TypePatient)],
			FulfilledRequests: donations.ByStatus[blooddonation.StatusFulfilled],
			EyePledges:        pledges.Total,
		},
	}, nil
}

func (s *Service) donationTotals(ctx context.Context) (DonationTotals, error) {
	tallies, err := s.donations.Tally(ctx)
	if err != nil {
		return DonationTotals{}, apperrors.Internal("Failed to aggregate blood donations", err)
	}

	totals := DonationTotals{
		ByType:    map[string]int64{},
		ByStatus:  map[string]int64{},
		Breakdown: tallies,
	}
	if totals.Breakdown == nil {
		totals.Breakdown = []blooddonation.Tally{}
	}
	for _, t := range tallies {
		totals.Total += t.Count
		totals.ByType[string(t.Type)] += t.Count
		totals.ByStatus[t.Status] += t.Count
	}
	return totals, nil
}

func (s *Service) pledgeTotals(ctx context.Context) (PledgeTotals, error) {
	counts, err := s.pledges.CountByStatus(ctx)
	if err != nil {
		return PledgeTotals{}, apperrors.Internal("Failed to aggregate eye pledges", err)
	}

	totals := PledgeTotals{ByStatus: map[string]int64{}}
	for _, c := range counts {
		totals.Total += c.Count
		totals.ByStatus[c.Status] += c.Count
	}
	return totals, nil
}
