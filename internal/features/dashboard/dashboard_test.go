package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/charityhub/internal/features/auth"
	"github.com/xyz-asif/charityhub/internal/features/blooddonation"
	"github.com/xyz-asif/charityhub/internal/features/dashboard"
	"github.com/xyz-asif/charityhub/internal/features/eyepledge"
	"github.com/xyz-asif/charityhub/internal/testutil"
)

type stubDonations struct {
	tallies []blooddonation.Tally
	err     error
}

func (s stubDonations) Tally(context.Context) ([]blooddonation.Tally, error) { return s.tallies, s.err }

type stubPledges []eyepledge.StatusCount

func (s stubPledges) CountByStatus(context.Context) ([]eyepledge.StatusCount, error) { return s, nil }

func fixtures() (stubDonations, stubPledges) {
	donations := stubDonations{tallies: []blooddonation.Tally{
		{Type: blooddonation.TypeDonor, Status: "pending", Count: 4},
		{Type: blooddonation.TypeDonor, Status: "fulfilled", Count: 1},
		{Type: blooddonation.TypePatient, Status: "fulfilled", Count: 2},
	}}
	pledges := stubPledges{{Status: "pending", Count: 3}, {Status: "active", Count: 2}}
	return donations, pledges
}

func TestAdmin(t *testing.T) {
	a := testutil.NewAuth()
	a.TokenFor(t, auth.RoleAdmin, "a@x.com")
	a.TokenFor(t, auth.RoleUser, "u@x.com")
	donations, pledges := fixtures()
	svc := dashboard.NewService(a.Service, donations, pledges)

	d, err := svc.Admin(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, d.Accounts.Admins)
	require.EqualValues(t, 1, d.Accounts.Users)
	require.EqualValues(t, 7, d.BloodDonations.Total)
	require.EqualValues(t, 5, d.BloodDonations.ByType["donor"])
	require.EqualValues(t, 3, d.BloodDonations.ByStatus["fulfilled"])
	require.EqualValues(t, 5, d.EyePledges.Total)
	require.EqualValues(t, 2, d.EyePledges.ByStatus["active"])
}

func TestAdmin_AggregateFailure(t *testing.T) {
	a := testutil.NewAuth()
	_, pledges := fixtures()
	svc := dashboard.NewService(a.Service, stubDonations{err: errors.New("boom")}, pledges)

	_, err := svc.Admin(context.Background())
	require.Error(t, err)
}

func TestRoutes_RoleGates(t *testing.T) {
	a := testutil.NewAuth()
	adminToken, _ := a.TokenFor(t, auth.RoleAdmin, "a@x.com")
	userToken, user := a.TokenFor(t, auth.RoleUser, "u@x.com")
	donations, pledges := fixtures()
	svc := dashboard.NewService(a.Service, donations, pledges)

	r := testutil.NewRouter()
	api := r.Group("/api")
	authenticate := auth.Authenticate(a.Service)
	admin := api.Group("/admin", authenticate, auth.AuthorizeAdmin(a.Service))
	userGroup := api.Group("/user", authenticate, auth.AuthorizeUser(a.Service))
	dashboard.RegisterRoutes(admin, userGroup, svc)

	w := testutil.Do(t, r, http.MethodGet, "/api/user/dashboard", nil, adminToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/dashboard", nil, userToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/user/dashboard", nil, userToken)
	require.Equal(t, http.StatusOK, w.Code)
	data := testutil.Data(t, w)
	require.Equal(t, user.ID.Hex(), data["user"].(map[string]any)["id"])
	totals := data["totals"].(map[string]any)
	require.EqualValues(t, 5, totals["donors"])
	require.EqualValues(t, 3, totals["fulfilledRequests"])
	require.EqualValues(t, 5, totals["eyePledges"])

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/dashboard", nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/admin/dashboard", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
