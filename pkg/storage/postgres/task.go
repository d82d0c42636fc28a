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

const tasksTable = "tasks"

type PgTask struct {
	ID        uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID     uuid.UUID `db:"org_id"`
	ProjectID uuid.UUID `db:"project_id"`

	BoardID  uuid.NullUUID `db:"board_id"`
	ColumnID uuid.NullUUID `db:"column_id"`
	SprintID uuid.NullUUID `db:"sprint_id"`

	Title       string `db:"title"`
	Description string `db:"description"`
	Status      string `db:"status"`
	Priority    string `db:"priority"`

	AssigneeMemberID uuid.NullUUID `db:"assignee_member_id"`

	Position int          `db:"position"`
	DueOn    sql.NullTime `db:"due_on"`

	CreatedBy uuid.UUID    `db:"created_by"`
	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func nullableBoardID(id uuid.NullUUID) *domain.BoardID {
	if !id.Valid {
		return nil
	}
	v := domain.BoardID(id.UUID)

	return &v
}

func nullableColumnID(id uuid.NullUUID) *domain.ColumnID {
	if !id.Valid {
		return nil
	}
	v := domain.ColumnID(id.UUID)

	return &v
}

func nullableSprintID(id uuid.NullUUID) *domain.SprintID {
	if !id.Valid {
		return nil
	}
	v := domain.SprintID(id.UUID)

	return &v
}

func nullableMemberID(id uuid.NullUUID) *domain.MemberID {
	if !id.Valid {
		return nil
	}
	v := domain.MemberID(id.UUID)

	return &v
}

func (p *PgTask) ToDomain() *domain.Task {
	return &domain.Task{
		ID:               domain.TaskID(p.ID),
		OrgID:            domain.OrgID(p.OrgID),
		ProjectID:        domain.ProjectID(p.ProjectID),
		BoardID:          nullableBoardID(p.BoardID),
		ColumnID:         nullableColumnID(p.ColumnID),
		SprintID:         nullableSprintID(p.SprintID),
		Title:            p.Title,
		Description:      p.Description,
		Status:           domain.TaskStatus(p.Status),
		Priority:         domain.TaskPriority(p.Priority),
		AssigneeMemberID: nullableMemberID(p.AssigneeMemberID),
		Position:         p.Position,
		DueOn:            p.DueOn.Time,
		CreatedBy:        domain.UserID(p.CreatedBy),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}
}

func (p *PgTask) FromDomain(task domain.Task) {
	var boardID, columnID, sprintID, assigneeID uuid.NullUUID
	if task.BoardID != nil {
		boardID = uuid.NullUUID{UUID: uuid.UUID(*task.BoardID), Valid: true}
	}
	if task.ColumnID != nil {
		columnID = uuid.NullUUID{UUID: uuid.UUID(*task.ColumnID), Valid: true}
	}
	if task.SprintID != nil {
		sprintID = uuid.NullUUID{UUID: uuid.UUID(*task.SprintID), Valid: true}
	}
	if task.AssigneeMemberID != nil {
		assigneeID = uuid.NullUUID{UUID: uuid.UUID(*task.AssigneeMemberID), Valid: true}
	}

	*p = PgTask{
		ID:               uuid.UUID(task.ID),
		OrgID:            uuid.UUID(task.OrgID),
		ProjectID:        uuid.UUID(task.ProjectID),
		BoardID:          boardID,
		ColumnID:         columnID,
		SprintID:         sprintID,
		Title:            task.Title,
		Description:      task.Description,
		Status:           string(task.Status),
		Priority:         string(task.Priority),
		AssigneeMemberID: assigneeID,
		Position:         task.Position,
		DueOn: sql.NullTime{
			Time:  task.DueOn,
			Valid: !task.DueOn.IsZero(),
		},
		CreatedBy: uuid.UUID(task.CreatedBy),
	}
}

func pgTasksToDomain(rows []PgTask) []domain.Task {
	out := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

func (p *PgSQL) CreateTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	var pgTask PgTask
	pgTask.FromDomain(task)

	var row PgTask
	if _, err := p.Builder.Insert(tasksTable).
		Rows(pgTask).
		Returning(&PgTask{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store task into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TaskByID(ctx context.Context, orgID domain.OrgID, id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.From(tasksTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch task by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Tasks returns one page of tasks matching the filter, ordered by
// created_at DESC, id DESC.
func (p *PgSQL) Tasks(ctx context.Context, filter storage.TaskFilter) (*storage.TaskPage, error) {
	w := []goqu.Expression{
		goqu.I("org_id").Eq(uuid.UUID(filter.OrgID)),
		goqu.I("deleted_at").IsNull(),
	}
	if filter.ProjectID != nil {
		w = append(w, goqu.I("project_id").Eq(uuid.UUID(*filter.ProjectID)))
	}
	switch {
	case filter.BoardID != nil:
		w = append(w, goqu.I("board_id").Eq(uuid.UUID(*filter.BoardID)))
	case filter.Backlog:
		w = append(w, goqu.I("board_id").IsNull(), goqu.I("sprint_id").IsNull())
	}
	if filter.SprintID != nil {
		w = append(w, goqu.I("sprint_id").Eq(uuid.UUID(*filter.SprintID)))
	}
	if filter.AssigneeMemberID != nil {
		w = append(w, goqu.I("assignee_member_id").Eq(uuid.UUID(*filter.AssigneeMemberID)))
	}
	if filter.Status != nil {
		w = append(w, goqu.I("status").Eq(string(*filter.Status)))
	}
	if filter.Cursor != nil {
		w = append(w, goqu.I("created_at").Lt(*filter.Cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := filter.Limit + 1
	ds := p.Builder.From(tasksTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgTask
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tasks from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > filter.Limit {
		trimmed := rows[:filter.Limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return &storage.TaskPage{
		Tasks:      pgTasksToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) UpdateTask(ctx context.Context,
	orgID domain.OrgID,
	id domain.TaskID,
	updates storage.TaskUpdates) (*domain.Task, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.Priority != nil {
		rec["priority"] = string(*updates.Priority)
	}
	if updates.Position != nil {
		rec["position"] = *updates.Position
	}
	if updates.DueOn != nil {
		rec["due_on"] = *updates.DueOn
	}
	setNullable(rec, "board_id", updates.BoardID)
	setNullable(rec, "column_id", updates.ColumnID)
	setNullable(rec, "sprint_id", updates.SprintID)
	setNullable(rec, "assignee_member_id", updates.AssigneeMemberID)

	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTask{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// setNullable writes a double-pointer placement update into rec: an outer nil
// leaves the column untouched, an inner nil clears it.
func setNullable[T ~[16]byte](rec goqu.Record, column string, value **T) {
	if value == nil {
		return
	}
	if *value == nil {
		rec[column] = goqu.L("NULL")

		return
	}

	rec[column] = uuid.UUID(**value)
}

// DeleteTask performs a soft delete by setting the deleted_at timestamp,
// returning the deleted record.
func (p *PgSQL) DeleteTask(ctx context.Context,
	orgID domain.OrgID,
	id domain.TaskID) (*domain.Task, error) {
	var row PgTask
	found, err := p.Builder.Update(tasksTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTask{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete task in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
