package blooddonation_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/charityhub/internal/features/blooddonation"
	"github.com/xyz-asif/charityhub/internal/features/sequence"
)

type memStore struct {
	mu      sync.Mutex
	records []*blooddonation.BloodDonation
	inserts int
}

func (s *memStore) Insert(_ context.Context, d *blooddonation.BloodDonation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	for _, r := range s.records {
		if r.RequestNumber == d.RequestNumber {
			return sequence.ErrDuplicateNumber
		}
	}
	d.ID = primitive.NewObjectID()
	cp := *d
	s.records = append(s.records, &cp)
	return nil
}

func (s *memStore) find(match func(*blooddonation.BloodDonation) bool) *blooddonation.BloodDonation {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if match(r) {
			cp := *r
			return &cp
		}
	}
	return nil
}

func (s *memStore) FindByID(_ context.Context, id string) (*blooddonation.BloodDonation, error) {
	return s.find(func(r *blooddonation.BloodDonation) bool { return r.ID.Hex() == id }), nil
}

func (s *memStore) FindByNumber(_ context.Context, number string) (*blooddonation.BloodDonation, error) {
	return s.find(func(r *blooddonation.BloodDonation) bool { return r.RequestNumber == number }), nil
}

func (s *memStore) List(_ context.Context, f blooddonation.Filter, skip, limit int) ([]blooddonation.BloodDonation, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []blooddonation.BloodDonation
	for _, r := range s.records {
		if f.Type != "" && string(r.Type) != f.Type {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(r.PersonalInfo.FullName+" "+r.RequestNumber), strings.ToLower(f.Search)) {
			continue
		}
		matched = append(matched, *r)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	if skip > len(matched) {
		skip = len(matched)
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return append([]blooddonation.BloodDonation{}, matched[skip:end]...), total, nil
}

func (s *memStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, notes *string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			r.Status = status
			if notes != nil {
				r.AdminNotes = *notes
			}
			r.UpdatedAt = at
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *memStore) HighestNumber(_ context.Context, kind sequence.Kind, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var highest int64
	for _, r := range s.records {
		k, y, n, err := sequence.Parse(r.RequestNumber)
		if err == nil && k == kind && y == year && n > highest {
			highest = n
		}
	}
	return highest, nil
}

func (s *memStore) Tally(_ context.Context) ([]blooddonation.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[[2]string]int64{}
	for _, r := range s.records {
		counts[[2]string{string(r.Type), r.Status}]++
	}
	var out []blooddonation.Tally
	for k, n := range counts {
		out = append(out, blooddonation.Tally{Type: blooddonation.Type(k[0]), Status: k[1], Count: n})
	}
	return out, nil
}
