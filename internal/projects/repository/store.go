package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of *sql.DB and *sql.Tx the repositories need.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store hands out project and plan repositories bound either to the pool or
// to a single transaction.
type Store struct {
	db       *sql.DB
	projects *ProjectRepository
	plans    *PlanRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		projects: NewProjectRepository(db),
		plans:    NewPlanRepository(db),
	}
}

func (s *Store) Projects() *ProjectRepository { return s.projects }

func (s *Store) Plans() *PlanRepository { return s.plans }

// InTx runs fn on one connection inside a transaction. The transaction is
// rolled back if fn returns an error or panics and committed otherwise.
func (s *Store) InTx(ctx context.Context, fn func(projects *ProjectRepository, plans *PlanRepository) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(NewProjectRepository(tx), NewPlanRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
