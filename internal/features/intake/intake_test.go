package intake

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeOn(t *testing.T) {
	dob := date(1990, time.June, 15)

	require.Equal(t, 33, AgeOn(dob, date(2024, time.June, 14)))
	require.Equal(t, 34, AgeOn(dob, date(2024, time.June, 15)))
	require.Equal(t, 34, AgeOn(dob, date(2024, time.December, 1)))
	require.Equal(t, 33, AgeOn(dob, date(2024, time.January, 31)))
	require.Equal(t, 0, AgeOn(dob, date(1980, time.January, 1)))
}

func TestAgeOn_LeapDay(t *testing.T) {
	dob := date(2000, time.February, 29)
	require.Equal(t, 22, AgeOn(dob, date(2023, time.February, 28)))
	require.Equal(t, 23, AgeOn(dob, date(2023, time.March, 1)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1995-07-04")
	require.NoError(t, err)
	require.Equal(t, date(1995, time.July, 4), d)

	_, err = ParseDate("2000-01-02T15:04:05Z")
	require.NoError(t, err)

	_, err = ParseDate("04/07/1995")
	require.Error(t, err)
}

func TestBuildPersonalInfo_IgnoresClientAge(t *testing.T) {
	now := date(2024, time.May, 1)
	info, err := BuildPersonalInfo(PersonalInfoRequest{
		FullName:    " <b>Ravi Kumar</b> ",
		DateOfBirth: "2000-05-02",
		Gender:      "Male",
		BloodGroup:  "o+",
	}, now)
	require.NoError(t, err)
	require.Equal(t, "Ravi Kumar", info.FullName)
	require.Equal(t, 23, info.Age)
	require.Equal(t, "male", info.Gender)
	require.Equal(t, "O+", info.BloodGroup)
}

func TestBuildPersonalInfo_Rejects(t *testing.T) {
	now := date(2024, time.May, 1)
	base := PersonalInfoRequest{FullName: "Ravi Kumar", DateOfBirth: "2000-05-02", Gender: "male"}

	bad := base
	bad.DateOfBirth = "2030-01-01"
	_, err := BuildPersonalInfo(bad, now)
	require.Error(t, err)

	bad = base
	bad.Gender = "unknown"
	_, err = BuildPersonalInfo(bad, now)
	require.Error(t, err)

	bad = base
	bad.BloodGroup = "C+"
	_, err = BuildPersonalInfo(bad, now)
	require.Error(t, err)

	bad = base
	bad.FullName = "1"
	_, err = BuildPersonalInfo(bad, now)
	require.Error(t, err)
}

func TestBuildContactInfo(t *testing.T) {
	c, err := BuildContactInfo(ContactInfoRequest{Phone: "+91 98765 43210", Email: " Ravi@Example.com "})
	require.NoError(t, err)
	require.Equal(t, "+919876543210", c.Phone)
	require.Equal(t, "ravi@example.com", c.Email)

	_, err = BuildContactInfo(ContactInfoRequest{Phone: "abc"})
	require.Error(t, err)
	_, err = BuildContactInfo(ContactInfoRequest{Phone: "9876543210", Email: "nope"})
	require.Error(t, err)
}

func TestBuildAddress(t *testing.T) {
	a, err := BuildAddress(AddressRequest{Street: "12 MG Road", City: "Pune", State: "MH", Pincode: "411001"})
	require.NoError(t, err)
	require.Equal(t, "India", a.Country)

	_, err = BuildAddress(AddressRequest{Street: "12 MG Road", City: "", State: "MH", Pincode: "411001"})
	require.Error(t, err)
}

func TestRequireConsent(t *testing.T) {
	yes, no := true, false
	require.NoError(t, RequireConsent(&yes))
	require.Error(t, RequireConsent(&no))
	require.Error(t, RequireConsent(nil))
}

func TestTransitions(t *testing.T) {
	tr := Transitions{
		"pending":  {"verified", "cancelled"},
		"verified": {"fulfilled"},
	}
	require.True(t, tr.CanTransition("pending", "verified"))
	require.False(t, tr.CanTransition("verified", "pending"))
	require.False(t, tr.CanTransition("fulfilled", "cancelled"))
	require.True(t, tr.Known("fulfilled"))
	require.False(t, tr.Known("archived"))
}

func TestTransitions_Check(t *testing.T) {
	tr := Transitions{"pending": {"active"}, "active": {"fulfilled"}}
	require.NoError(t, tr.Check("pending", "active"))
	require.NoError(t, tr.Check("active", "active"))
	require.Error(t, tr.Check("pending", "fulfilled"))
	require.Error(t, tr.Check("pending", "archived"))
}

func TestCleanNotes(t *testing.T) {
	out, err := CleanNotes(nil)
	require.NoError(t, err)
	require.Nil(t, out)

	in := "<b>called</b> twice"
	out, err = CleanNotes(&in)
	require.NoError(t, err)
	require.Equal(t, "called twice", *out)

	long := strings.Repeat("a", MaxNotesLength+1)
	_, err = CleanNotes(&long)
	require.Error(t, err)
}

func TestStatusUpdate(t *testing.T) {
	at := date(2024, time.May, 1)

	update := StatusUpdate("verified", nil, at)
	require.Equal(t, bson.M{"status": "verified", "updatedAt": at}, update["$set"])
	require.NotContains(t, update, "$unset")

	notes := "ok"
	update = StatusUpdate("verified", &notes, at)
	require.Equal(t, "ok", update["$set"].(bson.M)["adminNotes"])

	empty := ""
	update = StatusUpdate("verified", &empty, at)
	require.Equal(t, bson.M{"adminNotes": ""}, update["$unset"])
	require.NotContains(t, update["$set"], "adminNotes")
}
