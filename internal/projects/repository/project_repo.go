package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/openci/openci-backend/internal/projects/domain"
)

const projectColumns = `id, guid, name, description, creation_time, modification_time`

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db Querier
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db Querier) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts a project under guid and returns the stored row.
// creation_time and modification_time share the statement timestamp.
func (r *ProjectRepository) Create(ctx context.Context, guid uuid.UUID, in domain.CreateProjectModel) (*domain.Project, error) {
	const q = `
INSERT INTO projects (guid, name, description, creation_time, modification_time)
VALUES ($1, $2, $3, now(), now())
RETURNING ` + projectColumns + `;
`
	return scanProject(r.db.QueryRowContext(ctx, q, guid, in.Name, in.Description))
}

// GetByGUID returns nil, nil when no project has the guid.
func (r *ProjectRepository) GetByGUID(ctx context.Context, guid uuid.UUID) (*domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE guid = $1;`

	p, err := scanProject(r.db.QueryRowContext(ctx, q, guid))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// List returns every project ordered by insertion.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects ORDER BY id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
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

// Update overwrites name and description and touches modification_time.
// It returns nil, nil when no project has the guid.
func (r *ProjectRepository) Update(ctx context.Context, guid uuid.UUID, in domain.UpdateProjectModel) (*domain.Project, error) {
	const q = `
UPDATE projects
SET name = $2, description = $3, modification_time = now()
WHERE guid = $1
RETURNING ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, guid, in.Name, in.Description))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// Delete removes the project and returns the number of rows deleted (0 or 1).
func (r *ProjectRepository) Delete(ctx context.Context, guid uuid.UUID) (int64, error) {
	const q = `DELETE FROM projects WHERE guid = $1;`

	result, err := r.db.ExecContext(ctx, q, guid)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// IDByGUID resolves a project guid to its surrogate key, returning 0 when
// there is no such project. The row is locked FOR SHARE so that, inside a
// transaction, the project cannot be deleted before the caller commits.
func (r *ProjectRepository) IDByGUID(ctx context.Context, guid uuid.UUID) (int64, error) {
	const q = `SELECT id FROM projects WHERE guid = $1 FOR SHARE;`

	var id int64
	err := r.db.QueryRowContext(ctx, q, guid).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.GUID, &p.Name, &p.Description, &p.CreationTime, &p.ModificationTime); err != nil {
		return nil, err
	}
	return &p, nil
}
