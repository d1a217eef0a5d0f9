package blooddonation

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/features/sequence"
	"github.com/xyz-asif/charityhub/internal/pkg/logger"
	"github.com/xyz-asif/charityhub/internal/pkg/pagination"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

type Service struct {
	store   Store
	numbers *sequence.Generator
	now     func() time.Time
}

func NewService(store Store, numbers *sequence.Generator) *Service {
	return &Service{store: store, numbers: numbers, now: time.Now}
}

// WithClock replaces the time source (tests)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit validates and stores a new record as pending and returns its request number.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	now := s.now()
	d, err := Build(req, now)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	number, err := s.numbers.Assign(ctx, d.Type.SequenceKind(), now, s.store, func(number string) error {
		d.RequestNumber = number
		return s.store.Insert(ctx, d)
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to submit blood donation form", err)
	}

	logger.Info("blood donation submitted",
		logger.String("requestNumber", number),
		logger.String("type", string(d.Type)))

	return &SubmitResponse{
		ID:            d.ID.Hex(),
		RequestNumber: number,
		Type:          d.Type,
		Status:        d.Status,
	}, nil
}

// Track looks a record up by its public number
func (s *Service) Track(ctx context.Context, number string) (*intake.TrackView, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	kind, _, _, err := sequence.Parse(number)
	if err != nil {
		return nil, apperrors.Validation("Invalid request number format")
	}
	if kind != sequence.KindBloodDonor && kind != sequence.KindBloodRequest {
		return nil, apperrors.NotFound("Request not found")
	}

	d, err := s.store.FindByNumber(ctx, number)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up request", err)
	}
	if d == nil {
		return nil, apperrors.NotFound("Request not found")
	}

	view := d.Track()
	return &view, nil
}

func (s *Service) Get(ctx context.Context, id string) (*BloodDonation, error) {
	d, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch blood donation", err)
	}
	if d == nil {
		return nil, apperrors.NotFound("Blood donation not found")
	}
	return d, nil
}

// List returns one page of records matching q
func (s *Service) List(ctx context.Context, q intake.ListQuery) ([]BloodDonation, *pagination.Pagination, error) {
	f := Filter{
		Type:   strings.ToLower(strings.TrimSpace(q.Type)),
		Status: strings.ToLower(strings.TrimSpace(q.Status)),
		Search: strings.TrimSpace(q.Search),
	}
	if f.Type != "" && !Type(f.Type).Valid() {
		return nil, nil, apperrors.Validation("type must be donor or patient")
	}
	if f.Status != "" && !Transitions.Known(f.Status) {
		return nil, nil, apperrors.Validation("unknown status filter")
	}

	page, limit := pagination.Normalize(q.Page, q.Limit)
	items, total, err := s.store.List(ctx, f, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to list blood donations", err)
	}
	return items, pagination.New(page, limit, total), nil
}

// UpdateStatus moves a record along its lifecycle. Only status, notes and updatedAt change.
func (s *Service) UpdateStatus(ctx context.Context, id string, req intake.StatusUpdateRequest) (*BloodDonation, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if err := Transitions.Check(d.Status, status); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	notes, err := intake.CleanNotes(req.AdminNotes)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := s.now()
	if err := s.store.UpdateStatus(ctx, d.ID, status, notes, now); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Blood donation not found")
		}
		return nil, apperrors.Internal("Failed to update status", err)
	}

	logger.Info("blood donation status changed",
		logger.String("requestNumber", d.RequestNumber),
		logger.String("from", d.Status),
		logger.String("to", status))

	d.Status = status
	if notes != nil {
		d.AdminNotes = *notes
	}
	d.UpdatedAt = now
	return d, nil
}

// Tally returns record counts per type and status
func (s *Service) Tally(ctx context.Context) ([]Tally, error) {
	return s.store.Tally(ctx)
}
