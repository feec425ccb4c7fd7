package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/openci/openci-backend/internal/events"
	"github.com/openci/openci-backend/internal/projects/repository"
)

var (
	projectCols = []string{"id", "guid", "name", "description", "creation_time", "modification_time"}
	planCols    = []string{
		"id", "guid", "project_id", "project_guid", "name", "description", "enabled", "creation_time", "modification_time",
	}
)

func setupStore(t *testing.T) (*repository.Store, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return repository.NewStore(db), mock, db
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Entity+"."+e.Type)
	}
	return out
}

// captureArg matches any argument and remembers what it saw.
type captureArg struct {
	seen *[]string
}

func (c captureArg) Match(v driver.Value) bool {
	if s, ok := v.(string); ok {
		*c.seen = append(*c.seen, s)
	}
	return true
}

// guidSequence returns the given guids in order, then random ones.
func guidSequence(guids ...uuid.UUID) func() uuid.UUID {
	var mu sync.Mutex
	return func() uuid.UUID {
		mu.Lock()
		defer mu.Unlock()
		if len(guids) == 0 {
			return uuid.New()
		}
		g := guids[0]
		guids = guids[1:]
		return g
	}
}

var errStoreDown = errors.New("connection refused")
