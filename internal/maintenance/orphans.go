package maintenance

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openci/openci-backend/internal/projects/domain"
)

// OrphanLister is satisfied by *repository.PlanRepository.
type OrphanLister interface {
	ListOrphaned(ctx context.Context) ([]domain.Plan, error)
}

type OrphanReport struct {
	Count int
	Plans []uuid.UUID
	// Projects holds the distinct deleted project guids, in first-seen order.
	Projects []uuid.UUID
}

// OrphanReporter finds plans whose project was deleted. Plans are never
// removed by it; the report is logged for operators.
type OrphanReporter struct {
	plans  OrphanLister
	logger zerolog.Logger
}

func NewOrphanReporter(plans OrphanLister, logger zerolog.Logger) *OrphanReporter {
	return &OrphanReporter{
		plans:  plans,
		logger: logger.With().Str("job", "orphan_report").Logger(),
	}
}

func (r *OrphanReporter) Run(ctx context.Context) (*OrphanReport, error) {
	orphans, err := r.plans.ListOrphaned(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orphaned plans: %w", err)
	}

	report := &OrphanReport{Count: len(orphans), Plans: make([]uuid.UUID, 0, len(orphans))}
	seen := make(map[uuid.UUID]struct{})
	for _, p := range orphans {
		report.Plans = append(report.Plans, p.GUID)
		if _, ok := seen[p.ProjectGUID]; !ok {
			seen[p.ProjectGUID] = struct{}{}
			report.Projects = append(report.Projects, p.ProjectGUID)
		}
	}

	if report.Count == 0 {
		r.logger.Info().Msg("no orphaned plans")
		return report, nil
	}

	guids := make([]string, len(report.Plans))
	for i, g := range report.Plans {
		guids[i] = g.String()
	}
	r.logger.Warn().
		Int("count", report.Count).
		Int("deleted_projects", len(report.Projects)).
		Strs("plans", guids).
		Msg("orphaned plans found")
	return report, nil
}
