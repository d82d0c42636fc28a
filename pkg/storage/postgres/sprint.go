package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

const sprintsTable = "sprints"

type PgSprint struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Name   string `db:"name"`
	Slug   string `db:"slug"`
	Goal   string `db:"goal"`
	Status string `db:"status"`

	StartsOn sql.NullTime `db:"starts_on"`
	EndsOn   sql.NullTime `db:"ends_on"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSprint) ToDomain() *domain.Sprint {
	return &domain.Sprint{
		ID:        domain.SprintID(p.ID),
		ProjectID: domain.ProjectID(p.ProjectID),
		Name:      p.Name,
		Slug:      p.Slug,
		Goal:      p.Goal,
		Status:    domain.SprintStatus(p.Status),
		StartsOn:  p.StartsOn.Time,
		EndsOn:    p.EndsOn.Time,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgSprint) FromDomain(sprint domain.Sprint) {
	*p = PgSprint{
		ID:        uuid.UUID(sprint.ID),
		ProjectID: uuid.UUID(sprint.ProjectID),
		Name:      sprint.Name,
		Slug:      sprint.Slug,
		Goal:      sprint.Goal,
		Status:    string(sprint.Status),
		StartsOn: sql.NullTime{
			Time:  sprint.StartsOn,
			Valid: !sprint.StartsOn.IsZero(),
		},
		EndsOn: sql.NullTime{
			Time:  sprint.EndsOn,
			Valid: !sprint.EndsOn.IsZero(),
		},
	}
}

func (p *PgSQL) CreateSprint(ctx context.Context, sprint domain.Sprint) (*domain.Sprint, error) {
	var pgSprint PgSprint
	pgSprint.FromDomain(sprint)

	var row PgSprint
	if _, err := p.Builder.Insert(sprintsTable).
		Rows(pgSprint).
		Returning(&PgSprint{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store sprint into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SprintByID(ctx context.Context,
	orgID domain.OrgID,
	id domain.SprintID) (*domain.Sprint, error) {
	var row PgSprint
	found, err := p.Builder.From(sprintsTable).
		Join(goqu.T(projectsTable), goqu.On(
			goqu.I(projectsTable+".id").Eq(goqu.I(sprintsTable+".project_id")),
		)).
		Where(
			goqu.I(sprintsTable+".id").Eq(uuid.UUID(id)),
			goqu.I(projectsTable+".org_id").Eq(uuid.UUID(orgID)),
		).
		Select(goqu.I(sprintsTable+".*")).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sprint by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) SprintBySlug(ctx context.Context,
	projectID domain.ProjectID,
	slug string) (*domain.Sprint, error) {
	var row PgSprint
	found, err := p.Builder.From(sprintsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("slug").Eq(slug),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sprint by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Sprints(ctx context.Context, projectID domain.ProjectID) ([]domain.Sprint, error) {
	var rows []PgSprint
	if err := p.Builder.From(sprintsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(projectID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch sprints from pg: %w", err)
	}

	out := make([]domain.Sprint, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdateSprint(ctx context.Context,
	orgID domain.OrgID,
	id domain.SprintID,
	updates storage.SprintUpdates) (*domain.Sprint, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Slug != nil {
		rec["slug"] = *updates.Slug
	}
	if updates.Goal != nil {
		rec["goal"] = *updates.Goal
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.StartsOn != nil {
		rec["starts_on"] = *updates.StartsOn
	}
	if updates.EndsOn != nil {
		rec["ends_on"] = *updates.EndsOn
	}

	var row PgSprint
	found, err := p.Builder.Update(sprintsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("project_id").In(
			p.Builder.From(projectsTable).
				Select("id").
				Where(goqu.I("org_id").Eq(uuid.UUID(orgID))),
		),
	).Returning(&PgSprint{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update sprint in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// SprintTaskCounts aggregates live tasks of a sprint grouped by status.
func (p *PgSQL) SprintTaskCounts(ctx context.Context, id domain.SprintID) (*domain.SprintStats, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := p.Builder.From(tasksTable).
		Where(
			goqu.I("sprint_id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Select(goqu.I("status"), goqu.COUNT(goqu.Star()).As("count")).
		GroupBy(goqu.I("status")).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count sprint tasks in pg: %w", err)
	}

	stats := &domain.SprintStats{
		SprintID: id,
		ByStatus: make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
		stats.Total += row.Count
	}

	return stats, nil
}

func (p *PgSQL) DeleteSprint(ctx context.Context,
	orgID domain.OrgID,
	id domain.SprintID) (bool, error) {
	res, err := p.Builder.Delete(sprintsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("project_id").In(
				p.Builder.From(projectsTable).
					Select("id").
					Where(goqu.I("org_id").Eq(uuid.UUID(orgID))),
			),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete sprint from pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
