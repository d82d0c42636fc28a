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

const orgsTable = "organizations"

type PgOrg struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgOrg) ToDomain() *domain.Organization {
	return &domain.Organization{
		ID:          domain.OrgID(p.ID),
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgOrg) FromDomain(org domain.Organization) {
	*p = PgOrg{
		ID:          uuid.UUID(org.ID),
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
	}
}

func (p *PgSQL) CreateOrg(ctx context.Context, org domain.Organization) (*domain.Organization, error) {
	var pgOrg PgOrg
	pgOrg.FromDomain(org)

	var row PgOrg
	if _, err := p.Builder.Insert(orgsTable).
		Rows(pgOrg).
		Returning(&PgOrg{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store organization into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) OrgByID(ctx context.Context, id domain.OrgID) (*domain.Organization, error) {
	var row PgOrg
	found, err := p.Builder.From(orgsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) OrgBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	var row PgOrg
	found, err := p.Builder.From(orgsTable).
		Where(
			goqu.I("slug").Eq(slug),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateOrg(ctx context.Context,
	id domain.OrgID,
	updates storage.OrgUpdates) (*domain.Organization, error) {
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

	var row PgOrg
	found, err := p.Builder.Update(orgsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgOrg{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update organization in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) OrgsForUser(ctx context.Context, userID domain.UserID) ([]domain.Organization, error) {
	var rows []PgOrg
	if err := p.Builder.From(orgsTable).
		Join(goqu.T(membersTable), goqu.On(
			goqu.I(membersTable+".org_id").Eq(goqu.I(orgsTable+".id")),
		)).
		Where(
			goqu.I(membersTable+".user_id").Eq(uuid.UUID(userID)),
			goqu.I(orgsTable+".deleted_at").IsNull(),
		).
		Select(goqu.I(orgsTable+".*")).
		Order(goqu.I(orgsTable + ".created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch organizations for user: %w", err)
	}

	out := make([]domain.Organization, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}
