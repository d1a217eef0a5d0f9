package sequence

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Kind selects the prefix and the counter a record is numbered from.
type Kind string

const (
	KindBloodDonor   Kind = "BDD"
	KindBloodRequest Kind = "BDR"
	KindEyePledge    Kind = "EDP"
)

// Pattern matches every number this package produces.
var Pattern = regexp.MustCompile(`^(BDD|BDR|EDP)-(\d{4})-(\d{6})$`)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindBloodDonor, KindBloodRequest, KindEyePledge:
		return true
	}
	return false
}

// CounterKey is the _id of the counter document for a kind and year, e.g. "BDD-2024".
func CounterKey(kind Kind, year int) string {
	return fmt.Sprintf("%s-%d", kind, year)
}

// Format renders PREFIX-YEAR-NNNNNN.
func Format(kind Kind, year int, n int64) string {
	return fmt.Sprintf("%s-%04d-%06d", kind, year, n)
}

// Prefix is the part shared by every number of kind in year, e.g. "BDD-2024-".
func Prefix(kind Kind, year int) string {
	return fmt.Sprintf("%s-%04d-", kind, year)
}

// Parse splits a number back into its parts.
func Parse(number string) (Kind, int, int64, error) {
	m := Pattern.FindStringSubmatch(number)
	if m == nil {
		return "", 0, 0, fmt.Errorf("invalid sequence number %q", number)
	}
	year, _ := strconv.Atoi(m[2])
	n, _ := strconv.ParseInt(m[3], 10, 64)
	return Kind(m[1]), year, n, nil
}

// YearOf returns the calendar year used for numbering at t.
func YearOf(t time.Time) int {
	return t.Year()
}
