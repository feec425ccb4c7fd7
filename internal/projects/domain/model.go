package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project is the root resource. ID is the store's surrogate key and never
// leaves the data layer; GUID is the only identifier clients see.
type Project struct {
	ID               int64     `json:"-"`
	GUID             uuid.UUID `json:"guid"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	CreationTime     time.Time `json:"creation_time"`
	ModificationTime time.Time `json:"modification_time"`
}

// Plan belongs to a Project. ProjectGUID is stored alongside ProjectID so
// plans can be listed by parent without a join; it keeps its value after the
// parent is deleted.
type Plan struct {
	ID               int64     `json:"-"`
	GUID             uuid.UUID `json:"guid"`
	ProjectID        int64     `json:"-"`
	ProjectGUID      uuid.UUID `json:"project_guid"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Enabled          bool      `json:"enabled"`
	CreationTime     time.Time `json:"creation_time"`
	ModificationTime time.Time `json:"modification_time"`
}

// Orphaned reports whether the plan's project has been deleted.
func (p Plan) Orphaned() bool {
	return p.ProjectID == 0
}

type CreateProjectModel struct {
	Name        string
	Description string
}

type UpdateProjectModel struct {
	Name        string
	Description string
}

type CreatePlanModel struct {
	ProjectGUID uuid.UUID
	Name        string
	Description string
	Enabled     bool
}

type UpdatePlanModel struct {
	Name        string
	Description string
	Enabled     bool
}
