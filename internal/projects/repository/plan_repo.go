package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/openci/openci-backend/internal/projects/domain"
)

const planColumns = `id, guid, project_id, project_guid, name, description, enabled, creation_time, modification_time`

// PlanRepository provides persistence operations for plans
type PlanRepository struct {
	db Querier
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db Querier) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create inserts a plan under guid for the already-resolved projectID.
func (r *PlanRepository) Create(ctx context.Context, guid uuid.UUID, projectID int64, in domain.CreatePlanModel) (*domain.Plan, error) {
	const q = `
INSERT INTO plans (guid, project_id, project_guid, name, description, enabled, creation_time, modification_time)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
RETURNING ` + planColumns + `;
`
	return scanPlan(r.db.QueryRowContext(ctx, q, guid, projectID, in.ProjectGUID, in.Name, in.Description, in.Enabled))
}

// GetByGUID returns nil, nil when no plan has the guid.
func (r *PlanRepository) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Plan, error) {
	const q = `SELECT ` + planColumns + ` FROM plans WHERE guid = $1;`

	p, err := scanPlan(r.db.QueryRowContext(ctx, q, guid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// List returns every plan ordered by insertion.
func (r *PlanRepository) List(ctx context.Context) ([]domain.Plan, error) {
	const q = `SELECT ` + planColumns + ` FROM plans ORDER BY id;`
	return r.query(ctx, q)
}

// ListByProject filters on the denormalized project guid, so plans of a
// deleted project are still returned.
func (r *PlanRepository) ListByProject(ctx context.Context, projectGUID uuid.UUID) ([]domain.Plan, error) {
	const q = `SELECT ` + planColumns + ` FROM plans WHERE project_guid = $1 ORDER BY id;`
	return r.query(ctx, q, projectGUID)
}

// ListOrphaned returns plans whose project has been deleted.
func (r *PlanRepository) ListOrphaned(ctx context.Context) ([]domain.Plan, error) {
	const q = `SELECT ` + planColumns + ` FROM plans WHERE project_id IS NULL ORDER BY id;`
	return r.query(ctx, q)
}

// Update overwrites the mutable fields and touches modification_time. The
// parent reference is left alone. It returns nil, nil when no plan has the guid.
func (r *PlanRepository) Update(ctx context.Context, guid uuid.UUID, in domain.UpdatePlanModel) (*domain.Plan, error) {
	const q = `
UPDATE plans
SET name = $2, description = $3, enabled = $4, modification_time = now()
WHERE guid = $1
RETURNING ` + planColumns + `;
`
	p, err := scanPlan(r.db.QueryRowContext(ctx, q, guid, in.Name, in.Description, in.Enabled))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// Delete removes the plan and returns the number of rows deleted (0 or 1).
func (r *PlanRepository) Delete(ctx context.Context, guid uuid.UUID) (int64, error) {
	const q = `DELETE FROM plans WHERE guid = $1;`

	result, err := r.db.ExecContext(ctx, q, guid)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PlanRepository) query(ctx context.Context, q string, args ...any) ([]domain.Plan, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Plan, 0, 16)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPlan(row rowScanner) (*domain.Plan, error) {
	var (
		p         domain.Plan
		projectID sql.NullInt64
	)
	err := row.Scan(
		&p.ID,
		&p.GUID,
		&projectID,
		&p.ProjectGUID,
		&p.Name,
		&p.Description,
		&p.Enabled,
		&p.CreationTime,
		&p.ModificationTime,
	)
	if err != nil {
		return nil, err
	}

	// NULL once the parent project has been deleted
	if projectID.Valid {
		p.ProjectID = projectID.Int64
	}
	return &p, nil
}
