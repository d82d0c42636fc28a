package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

const permissionSetsTable = "permission_sets"

type PgPermissionSet struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID uuid.UUID `db:"org_id"`

	Name   string          `db:"name"`
	Config json.RawMessage `db:"config"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPermissionSet) ToDomain() (*domain.PermissionSet, error) {
	var config domain.PermissionConfig
	if err := json.Unmarshal(p.Config, &config); err != nil {
		return nil, fmt.Errorf("could not unmarshal permission config: %w", err)
	}

	return &domain.PermissionSet{
		ID:        domain.PermissionSetID(p.ID),
		OrgID:     domain.OrgID(p.OrgID),
		Name:      p.Name,
		Config:    config,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}, nil
}

func (p *PgPermissionSet) FromDomain(set domain.PermissionSet) error {
	config, err := json.Marshal(set.Config)
	if err != nil {
		return fmt.Errorf("could not marshal permission config: %w", err)
	}

	*p = PgPermissionSet{
		ID:     uuid.UUID(set.ID),
		OrgID:  uuid.UUID(set.OrgID),
		Name:   set.Name,
		Config: config,
	}

	return nil
}

func pgPermissionSetsToDomain(rows []PgPermissionSet) ([]domain.PermissionSet, error) {
	out := make([]domain.PermissionSet, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) CreatePermissionSet(ctx context.Context,
	set domain.PermissionSet) (*domain.PermissionSet, error) {
	var pgSet PgPermissionSet
	if err := pgSet.FromDomain(set); err != nil {
		return nil, err
	}

	var row PgPermissionSet
	if _, err := p.Builder.Insert(permissionSetsTable).
		Rows(pgSet).
		Returning(&PgPermissionSet{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store permission set into pg: %w", err)
	}

	return row.ToDomain()
}

func (p *PgSQL) PermissionSetByID(ctx context.Context,
	orgID domain.OrgID,
	id domain.PermissionSetID) (*domain.PermissionSet, error) {
	var row PgPermissionSet
	found, err := p.Builder.From(permissionSetsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch permission set by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PermissionSets(ctx context.Context, orgID domain.OrgID) ([]domain.PermissionSet, error) {
	var rows []PgPermissionSet
	if err := p.Builder.From(permissionSetsTable).
		Where(goqu.I("org_id").Eq(uuid.UUID(orgID))).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch permission sets from pg: %w", err)
	}

	return pgPermissionSetsToDomain(rows)
}

func (p *PgSQL) UpdatePermissionSet(ctx context.Context,
	orgID domain.OrgID,
	id domain.PermissionSetID,
	updates storage.PermissionSetUpdates) (*domain.PermissionSet, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Config != nil {
		config, err := json.Marshal(updates.Config)
		if err != nil {
			return nil, fmt.Errorf("could not marshal permission config: %w", err)
		}

		rec["config"] = config
	}

	var row PgPermissionSet
	found, err := p.Builder.Update(permissionSetsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
	).Returning(&PgPermissionSet{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update permission set in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeletePermissionSet(ctx context.Context,
	orgID domain.OrgID,
	id domain.PermissionSetID) (bool, error) {
	res, err := p.Builder.Delete(permissionSetsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete permission set from pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
