package sequence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xyz-asif/charityhub/internal/pkg/logger"
)

const defaultMaxAttempts = 5

// ErrExhausted is returned when every attempt collided with an existing number.
var ErrExhausted = errors.New("could not assign a unique sequence number")

// Generator assigns numbers from an atomic counter. The insert callback is retried
// with a fresh number when it fails on the unique index. On the first collision the
// counter is raised past the highest number already stored, which covers records
// written before the counter existed.
type Generator struct {
	counters    CounterStore
	maxAttempts int
}

func NewGenerator(counters CounterStore) *Generator {
	return &Generator{counters: counters, maxAttempts: defaultMaxAttempts}
}

// Assign reserves the next number for kind in the year of now and passes it to insert.
// existing is the collection the number goes into and may be nil.
// It returns the number that insert accepted.
func (g *Generator) Assign(ctx context.Context, kind Kind, now time.Time, existing Numbered, insert func(number string) error) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown sequence kind %q", kind)
	}
	year := YearOf(now)
	caughtUp := existing == nil

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		n, err := g.counters.Next(ctx, kind, year)
		if err != nil {
			return "", err
		}
		number := Format(kind, year, n)

		err = insert(number)
		if err == nil {
			return number, nil
		}
		if !IsDuplicate(err) {
			return "", err
		}
		logger.Warn("sequence number collision, retrying",
			logger.String("number", number),
			logger.Int("attempt", attempt))

		if !caughtUp {
			caughtUp = true
			if err := g.catchUp(ctx, kind, year, existing); err != nil {
				return "", err
			}
		}
	}

	return "", ErrExhausted
}

func (g *Generator) catchUp(ctx context.Context, kind Kind, year int, existing Numbered) error {
	highest, err := existing.HighestNumber(ctx, kind, year)
	if err != nil {
		return fmt.Errorf("find highest %s number: %w", Prefix(kind, year), err)
	}
	if err := g.counters.Raise(ctx, kind, year, highest); err != nil {
		return err
	}
	logger.Info("sequence counter raised to stored numbers",
		logger.String("counter", CounterKey(kind, year)),
		logger.Int64("highest", highest))
	return nil
}

// ErrDuplicateNumber can be returned by insert callbacks that detect a collision themselves.
var ErrDuplicateNumber = errors.New("duplicate sequence number")

// IsDuplicate reports whether err is a unique index violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateNumber) || mongo.IsDuplicateKeyError(err)
}
