package eyepledge

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

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Pledge stores a new pledge and returns its EDP number
func (s *Service) Pledge(ctx context.Context, req PledgeRequest) (*PledgeResponse, error) {
	now := s.now()
	p, err := Build(req, now)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	number, err := s.numbers.Assign(ctx, sequence.KindEyePledge, now, s.store, func(number string) error {
		p.PledgeNumber = number
		return s.store.Insert(ctx, p)
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to submit eye donation pledge", err)
	}

	logger.Info("eye donation pledge submitted", logger.String("pledgeNumber", number))

	return &PledgeResponse{ID: p.ID.Hex(), PledgeNumber: number, Status: p.Status}, nil
}

func (s *Service) Track(ctx context.Context, number string) (*intake.TrackView, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	kind, _, _, err := sequence.Parse(number)
	if err != nil {
		return nil, apperrors.Validation("Invalid pledge number format")
	}
	if kind != sequence.KindEyePledge {
		return nil, apperrors.NotFound("Pledge not found")
	}

	p, err := s.store.FindByNumber(ctx, number)
	if err != nil {
		return nil, apperrors.Internal("Failed to look up pledge", err)
	}
	if p == nil {
		return nil, apperrors.NotFound("Pledge not found")
	}

	view := p.Track()
	return &view, nil
}

func (s *Service) Get(ctx context.Context, id string) (*EyePledge, error) {
	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to fetch pledge", err)
	}
	if p == nil {
		return nil, apperrors.NotFound("Pledge not found")
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, q intake.ListQuery) ([]EyePledge, *pagination.Pagination, error) {
	f := Filter{
		Status: strings.ToLower(strings.TrimSpace(q.Status)),
		Search: strings.TrimSpace(q.Search),
	}
	if f.Status != "" && !Transitions.Known(f.Status) {
		return nil, nil, apperrors.Validation("unknown status filter")
	}

	page, limit := pagination.Normalize(q.Page, q.Limit)
	items, total, err := s.store.List(ctx, f, pagination.Offset(page, limit), limit)
	if err != nil {
		return nil, nil, apperrors.Internal("Failed to list pledges", err)
	}
	return items, pagination.New(page, limit, total), nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req intake.StatusUpdateRequest) (*EyePledge, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if err := Transitions.Check(p.Status, status); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	notes, err := intake.CleanNotes(req.AdminNotes)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := s.now()
	if err := s.store.UpdateStatus(ctx, p.ID, status, notes, now); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("Pledge not found")
		}
		return nil, apperrors.Internal("Failed to update status", err)
	}

	logger.Info("eye pledge status changed",
		logger.String("pledgeNumber", p.PledgeNumber),
		logger.String("from", p.Status),
		logger.String("to", status))

	p.Status = status
	if notes != nil {
		p.AdminNotes = *notes
	}
	p.UpdatedAt = now
	return p, nil
}

func (s *Service) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	return s.store.CountByStatus(ctx)
}
