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

const (
	projectsTable    = "projects"
	engagementsTable = "project_engagements"
)

type PgProject struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID uuid.UUID `db:"org_id"`

	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() *domain.Project {
	return &domain.Project{
		ID:          domain.ProjectID(p.ID),
		OrgID:       domain.OrgID(p.OrgID),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgProject) FromDomain(project domain.Project) {
	*p = PgProject{
		ID:          uuid.UUID(project.ID),
		OrgID:       uuid.UUID(project.OrgID),
		Name:        project.Name,
		Slug:        project.Slug,
		Description: project.Description,
	}
}

func pgProjectsToDomain(rows []PgProject) []domain.Project {
	out := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

type PgEngagement struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`
	MemberID  uuid.UUID `db:"member_id"`

	Role         string `db:"role"`
	HoursPerWeek int    `db:"hours_per_week"`

	StartsOn time.Time    `db:"starts_on"`
	EndsOn   sql.NullTime `db:"ends_on"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgEngagement) ToDomain() *domain.Engagement {
	return &domain.Engagement{
		ID:           domain.EngagementID(p.ID),
		ProjectID:    domain.ProjectID(p.ProjectID),
		MemberID:     domain.MemberID(p.MemberID),
		Role:         p.Role,
		HoursPerWeek: p.HoursPerWeek,
		StartsOn:     p.StartsOn,
		EndsOn:       p.EndsOn.Time,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgEngagement) FromDomain(engagement domain.Engagement) {
	*p = PgEngagement{
		ID:           uuid.UUID(engagement.ID),
		ProjectID:    uuid.UUID(engagement.ProjectID),
		MemberID:     uuid.UUID(engagement.MemberID),
		Role:         engagement.Role,
		HoursPerWeek: engagement.HoursPerWeek,
		StartsOn:     engagement.StartsOn,
		EndsOn: sql.NullTime{
			Time:  engagement.EndsOn,
			Valid: !engagement.EndsOn.IsZero(),
		},
	}
}

func (p *PgSQL) CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	var pgProject PgProject
	pgProject.FromDomain(project)

	var row PgProject
	if _, err := p.Builder.Insert(projectsTable).
		Rows(pgProject).
		Returning(&PgProject{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store project into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ProjectByID(ctx context.Context,
	orgID domain.OrgID,
	id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ProjectBySlug(ctx context.Context,
	orgID domain.OrgID,
	slug string) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.From(projectsTable).
		Where(
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("slug").Eq(slug),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch project by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Projects(ctx context.Context, orgID domain.OrgID) ([]domain.Project, error) {
	var rows []PgProject
	if err := p.Builder.From(projectsTable).
		Where(
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch projects from pg: %w", err)
	}

	return pgProjectsToDomain(rows), nil
}

func (p *PgSQL) AssignedProjects(ctx context.Context,
	orgID domain.OrgID,
	memberID domain.MemberID) ([]domain.Project, error) {
	var rows []PgProject
	if err := p.Builder.From(projectsTable).
		Join(goqu.T(engagementsTable), goqu.On(
			goqu.I(engagementsTable+".project_id").Eq(goqu.I(projectsTable+".id")),
		)).
		Where(
			goqu.I(projectsTable+".org_id").Eq(uuid.UUID(orgID)),
			goqu.I(engagementsTable+".member_id").Eq(uuid.UUID(memberID)),
			goqu.I(engagementsTable+".ends_on").IsNull(),
			goqu.I(projectsTable+".deleted_at").IsNull(),
		).
		Select(goqu.I(projectsTable+".*")).
		Distinct().
		Order(goqu.I(projectsTable + ".created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch assigned projects from pg: %w", err)
	}

	return pgProjectsToDomain(rows), nil
}

func (p *PgSQL) UpdateProject(ctx context.Context,
	orgID domain.OrgID,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Slug != nil {
		rec["slug"] = *updates.Slug
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}

	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProject{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update project in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteProject performs a soft delete by setting the deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) DeleteProject(ctx context.Context,
	orgID domain.OrgID,
	id domain.ProjectID) (*domain.Project, error) {
	var row PgProject
	found, err := p.Builder.Update(projectsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgProject{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete project in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AddEngagement(ctx context.Context,
	engagement domain.Engagement) (*domain.Engagement, error) {
	var pgEngagement PgEngagement
	pgEngagement.FromDomain(engagement)

	var row PgEngagement
	if _, err := p.Builder.Insert(engagementsTable).
		Rows(pgEngagement).
		Returning(&PgEngagement{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store engagement into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Engagements(ctx context.Context,
	projectID domain.ProjectID) ([]domain.Engagement, error) {
	var rows []PgEngagement
	if err := p.Builder.From(engagementsTable).
		Where(goqu.I("project_id").Eq(uuid.UUID(projectID))).
		Order(goqu.I("starts_on").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch engagements from pg: %w", err)
	}

	out := make([]domain.Engagement, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) EndEngagement(ctx context.Context,
	projectID domain.ProjectID,
	id domain.EngagementID,
	endsOn time.Time) (bool, error) {
	res, err := p.Builder.Update(engagementsTable).
		Set(goqu.Record{
			"ends_on": endsOn,
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("project_id").Eq(uuid.UUID(projectID)),
		goqu.I("ends_on").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not end engagement in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
