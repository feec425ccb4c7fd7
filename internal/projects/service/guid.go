package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/internal/events"
	"github.com/openci/openci-backend/internal/storage/postgres"
)

// maxGUIDAttempts bounds how often an insert is retried after the generated
// guid collided with an existing row.
const maxGUIDAttempts = 3

var errGUIDExhausted = errors.New("failed to generate a unique guid")

// insertWithFreshGUID calls insert with a new guid until it succeeds, fails
// with something other than a unique violation, or runs out of attempts.
func insertWithFreshGUID(newGUID func() uuid.UUID, insert func(guid uuid.UUID) error) error {
	for i := 0; i < maxGUIDAttempts; i++ {
		err := insert(newGUID())
		if err == nil {
			return nil
		}
		if postgres.IsUniqueViolation(err) {
			continue
		}
		return err
	}
	return errGUIDExhausted
}

func publish(ctx context.Context, pub events.Publisher, logger zerolog.Logger, evt events.Event) {
	if err := pub.Publish(ctx, evt); err != nil {
		logger.Warn().Err(err).
			Str("entity", evt.Entity).
			Str("event", evt.Type).
			Stringer("guid", evt.GUID).
			Msg("change event not delivered")
	}
}
