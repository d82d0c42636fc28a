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
	boardsTable  = "boards"
	columnsTable = "board_columns"
)

type PgBoard struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID     uuid.UUID `db:"org_id"`
	ProjectID uuid.UUID `db:"project_id"`

	Name string `db:"name"`
	Slug string `db:"slug"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgBoard) ToDomain() *domain.Board {
	return &domain.Board{
		ID:        domain.BoardID(p.ID),
		OrgID:     domain.OrgID(p.OrgID),
		ProjectID: domain.ProjectID(p.ProjectID),
		Name:      p.Name,
		Slug:      p.Slug,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgBoard) FromDomain(board domain.Board) {
	*p = PgBoard{
		ID:        uuid.UUID(board.ID),
		OrgID:     uuid.UUID(board.OrgID),
		ProjectID: uuid.UUID(board.ProjectID),
		Name:      board.Name,
		Slug:      board.Slug,
	}
}

type PgColumn struct {
	ID      uuid.UUID `db:"id" goqu:"skipinsert"`
	BoardID uuid.UUID `db:"board_id"`

	Name     string `db:"name"`
	Position int    `db:"position"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgColumn) ToDomain() *domain.Column {
	return &domain.Column{
		ID:        domain.ColumnID(p.ID),
		BoardID:   domain.BoardID(p.BoardID),
		Name:      p.Name,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgSQL) CreateBoard(ctx context.Context, board domain.Board) (*domain.Board, error) {
	var pgBoard PgBoard
	pgBoard.FromDomain(board)

	var row PgBoard
	if _, err := p.Builder.Insert(boardsTable).
		Rows(pgBoard).
		Returning(&PgBoard{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store board into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BoardByID(ctx context.Context, orgID domain.OrgID, id domain.BoardID) (*domain.Board, error) {
	var row PgBoard
	found, err := p.Builder.From(boardsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch board by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) BoardBySlug(ctx context.Context,
	projectID domain.ProjectID,
	slug string) (*domain.Board, error) {
	var row PgBoard
	found, err := p.Builder.From(boardsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("slug").Eq(slug),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch board by slug: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Boards(ctx context.Context, projectID domain.ProjectID) ([]domain.Board, error) {
	var rows []PgBoard
	if err := p.Builder.From(boardsTable).
		Where(
			goqu.I("project_id").Eq(uuid.UUID(projectID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch boards from pg: %w", err)
	}

	out := make([]domain.Board, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdateBoard(ctx context.Context,
	orgID domain.OrgID,
	id domain.BoardID,
	updates storage.BoardUpdates) (*domain.Board, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Slug != nil {
		rec["slug"] = *updates.Slug
	}

	var row PgBoard
	found, err := p.Builder.Update(boardsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgBoard{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not update board in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteBoard performs a soft delete by setting the deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) DeleteBoard(ctx context.Context,
	orgID domain.OrgID,
	id domain.BoardID) (*domain.Board, error) {
	var row PgBoard
	found, err := p.Builder.Update(boardsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgBoard{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete board in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) CreateColumn(ctx context.Context, column domain.Column) (*domain.Column, error) {
	pgColumn := PgColumn{
		BoardID:  uuid.UUID(column.BoardID),
		Name:     column.Name,
		Position: column.Position,
	}

	var row PgColumn
	if _, err := p.Builder.Insert(columnsTable).
		Rows(pgColumn).
		Returning(&PgColumn{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store column into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Columns(ctx context.Context, boardID domain.BoardID) ([]domain.Column, error) {
	var rows []PgColumn
	if err := p.Builder.From(columnsTable).
		Where(goqu.I("board_id").Eq(uuid.UUID(boardID))).
		Order(goqu.I("position").Asc(), goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch columns from pg: %w", err)
	}

	out := make([]domain.Column, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ColumnByID(ctx context.Context, id domain.ColumnID) (*domain.Column, error) {
	var row PgColumn
	found, err := p.Builder.From(columnsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch column by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateColumn(ctx context.Context,
	id domain.ColumnID,
	updates storage.ColumnUpdates) (*domain.Column, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Position != nil {
		rec["position"] = *updates.Position
	}

	var row PgColumn
	found, err := p.Builder.Update(columnsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgColumn{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update column in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteColumn(ctx context.Context, id domain.ColumnID) (bool, error) {
	res, err := p.Builder.Delete(columnsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete column from pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
