package eyepledge_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/features/eyepledge"
	"github.com/xyz-asif/charityhub/internal/features/intake"
	"github.com/xyz-asif/charityhub/internal/features/sequence"
	"github.com/xyz-asif/charityhub/internal/testutil"
	apperrors "github.com/xyz-asif/charityhub/pkg/errors"
)

type memStore struct {
	mu      sync.Mutex
	pledges []*eyepledge.EyePledge
}

func (s *memStore) Insert(_ context.Context, p *eyepledge.EyePledge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.pledges {
		if existing.PledgeNumber == p.PledgeNumber {
			return sequence.ErrDuplicateNumber
		}
	}
	p.ID = primitive.NewObjectID()
	cp := *p
	s.pledges = append(s.pledges, &cp)
	return nil
}

func (s *memStore) find(match func(*eyepledge.EyePledge) bool) *eyepledge.EyePledge {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pledges {
		if match(p) {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (s *memStore) FindByID(_ context.Context, id string) (*eyepledge.EyePledge, error) {
	return s.find(func(p *eyepledge.EyePledge) bool { return p.ID.Hex() == id }), nil
}

func (s *memStore) FindByNumber(_ context.Context, number string) (*eyepledge.EyePledge, error) {
	return s.find(func(p *eyepledge.EyePledge) bool { return p.PledgeNumber == number }), nil
}

func (s *memStore) List(_ context.Context, f eyepledge.Filter, skip, limit int) ([]eyepledge.EyePledge, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []eyepledge.EyePledge
	for _, p := range s.pledges {
		if f.Status == "" || p.Status == f.Status {
			out = append(out, *p)
		}
	}
	total := int64(len(out))
	if skip > len(out) {
		skip = len(out)
	}
	if skip+limit < len(out) {
		out = out[:skip+limit]
	}
	return out[skip:], total, nil
}

func (s *memStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string, notes *string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pledges {
		if p.ID == id {
			p.Status, p.UpdatedAt = status, at
			if notes != nil {
				p.AdminNotes = *notes
			}
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *memStore) HighestNumber(_ context.Context, kind sequence.Kind, year int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var highest int64
	for _, p := range s.pledges {
		k, y, n, err := sequence.Parse(p.PledgeNumber)
		if err == nil && k == kind && y == year && n > highest {
			highest = n
		}
	}
	return highest, nil
}

func (s *memStore) CountByStatus(_ context.Context) ([]eyepledge.StatusCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int64{}
	for _, p := range s.pledges {
		counts[p.Status]++
	}
	var out []eyepledge.StatusCount
	for status, n := range counts {
		out = append(out, eyepledge.StatusCount{Status: status, Count: n})
	}
	return out, nil
}

var fixedNow = time.Date(2025, time.January, 2, 12, 0, 0, 0, time.UTC)

func newService() (*eyepledge.Service, *memStore) {
	store := &memStore{}
	svc := eyepledge.NewService(store, testutil.NewCounters().Generator()).
		WithClock(func() time.Time { return fixedNow })
	return svc, store
}

func pledgeRequest() eyepledge.PledgeRequest {
	yes := true
	return eyepledge.PledgeRequest{
		PersonalInfo: intake.PersonalInfoRequest{FullName: "Meera Nair", DateOfBirth: "1985-01-03", Gender: "female"},
		ContactInfo:  intake.ContactInfoRequest{Phone: "+91 98470 12345"},
		Address:      intake.AddressRequest{Street: "4 Beach Rd", City: "Kochi", State: "KL", Pincode: "682001"},
		NextOfKin:    eyepledge.NextOfKinRequest{Name: "Arun Nair", Relationship: "Brother", Phone: "9847011111"},
		HasConsented: &yes,
	}
}

func TestPledge(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	res, err := svc.Pledge(ctx, pledgeRequest())
	require.NoError(t, err)
	require.Equal(t, "EDP-2025-000001", res.PledgeNumber)
	require.Equal(t, eyepledge.StatusPending, res.Status)

	res, err = svc.Pledge(ctx, pledgeRequest())
	require.NoError(t, err)
	require.Equal(t, "EDP-2025-000002", res.PledgeNumber)

	saved, _ := store.FindByNumber(ctx, "EDP-2025-000001")
	require.Equal(t, 39, saved.PersonalInfo.Age)
	require.Equal(t, "9847011111", saved.NextOfKin.Phone)
}

func TestPledge_Validation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	req := pledgeRequest()
	req.HasConsented = nil
	_, err := svc.Pledge(ctx, req)
	require.True(t, apperrors.Is(err, apperrors.KindValidation))

	req = pledgeRequest()
	req.NextOfKin.Phone = "call me"
	_, err = svc.Pledge(ctx, req)
	require.True(t, apperrors.Is(err, apperrors.KindValidation))

	req = pledgeRequest()
	req.Address.Pincode = ""
	_, err = svc.Pledge(ctx, req)
	require.True(t, apperrors.Is(err, apperrors.KindValidation))
}

func TestPledgeLifecycle(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	res, err := svc.Pledge(ctx, pledgeRequest())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, res.ID, intake.StatusUpdateRequest{Status: "fulfilled"})
	require.True(t, apperrors.Is(err, apperrors.KindValidation))

	p, err := svc.UpdateStatus(ctx, res.ID, intake.StatusUpdateRequest{Status: "active"})
	require.NoError(t, err)
	require.Equal(t, eyepledge.StatusActive, p.Status)
	require.Equal(t, res.PledgeNumber, p.PledgeNumber)

	_, err = svc.UpdateStatus(ctx, res.ID, intake.StatusUpdateRequest{Status: "expired"})
	require.True(t, apperrors.Is(err, apperrors.KindValidation))

	_, err = svc.UpdateStatus(ctx, res.ID, intake.StatusUpdateRequest{Status: "fulfilled"})
	require.NoError(t, err)

	counts, err := svc.CountByStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, []eyepledge.StatusCount{{Status: "fulfilled", Count: 1}}, counts)
}

func TestTrack(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	res, err := svc.Pledge(ctx, pledgeRequest())
	require.NoError(t, err)

	view, err := svc.Track(ctx, res.PledgeNumber)
	require.NoError(t, err)
	require.Equal(t, eyepledge.TrackKind, view.Kind)

	_, err = svc.Track(ctx, "BDD-2025-000001")
	require.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestRoutes(t *testing.T) {
	svc, _ := newService()
	a := testutil.NewAuth()
	adminToken, _ := a.TokenFor(t, auth.RoleAdmin, "admin@x.com")
	userToken, _ := a.TokenFor(t, auth.RoleUser, "user@x.com")

	r := testutil.NewRouter()
	api := r.Group("/api")
	admin := api.Group("/admin", auth.Authenticate(a.Service), auth.AuthorizeAdmin(a.Service))
	eyepledge.RegisterRoutes(api, admin, svc, func(c *gin.Context) { c.Next() })

	w := testutil.Do(t, r, http.MethodPost, "/api/eye-donation/pledge", pledgeRequest(), "")
	require.Equal(t, http.StatusCreated, w.Code)
	number := testutil.Data(t, w)["pledgeNumber"].(string)

	w = testutil.Do(t, r, http.MethodGet, "/api/public/eye-donation/track/"+number, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "pending", testutil.Data(t, w)["status"])

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/eye-pledges", nil, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/eye-pledges?status=pending", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, testutil.Data(t, w)["total"])
}
