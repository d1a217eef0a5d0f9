package intake

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/xyz-asif/charityhub/internal/pkg/sanitize"
)

// MaxNotesLength bounds the admin notes kept on a record.
const MaxNotesLength = 1000

// Transitions maps a status to the statuses an administrator may move it to.
type Transitions map[string][]string

// CanTransition reports whether from -> to is allowed. Staying in place is not a transition.
func (t Transitions) CanTransition(from, to string) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Known reports whether status appears anywhere in the table.
func (t Transitions) Known(status string) bool {
	if _, ok := t[status]; ok {
		return true
	}
	for _, next := range t {
		for _, s := range next {
			if s == status {
				return true
			}
		}
	}
	return false
}

// OneOf reports whether v is in list
func OneOf(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// CleanNotes strips markup from admin notes and bounds their length.
// nil means the notes are left as they are; an empty string clears them.
func CleanNotes(notes *string) (*string, error) {
	if notes == nil {
		return nil, nil
	}
	cleaned := sanitize.Text(*notes)
	if len(cleaned) > MaxNotesLength {
		return nil, fmt.Errorf("adminNotes cannot exceed %d characters", MaxNotesLength)
	}
	return &cleaned, nil
}

// StatusUpdate builds the update document for a status change. Only status,
// updatedAt and adminNotes are touched; empty notes remove the field.
func StatusUpdate(status string, notes *string, at time.Time) bson.M {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": at}}
	switch {
	case notes == nil:
	case *notes == "":
		update["$unset"] = bson.M{"adminNotes": ""}
	default:
		update["$set"].(bson.M)["adminNotes"] = *notes
	}
	return update
}

// Check validates an administrator's status change. Repeating the current
// status is accepted so notes can be edited on their own.
func (t Transitions) Check(from, to string) error {
	if !t.Known(to) {
		return fmt.Errorf("unknown status %q", to)
	}
	if from == to || t.CanTransition(from, to) {
		return nil
	}
	return fmt.Errorf("cannot change status from %s to %s", from, to)
}
