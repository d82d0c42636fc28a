package storage

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// BoardUpdates describes optional fields applied to a board.
type BoardUpdates struct {
	Name *string
	Slug *string
}

// ColumnUpdates describes optional fields applied to a board column.
type ColumnUpdates struct {
	Name     *string
	Position *int
}

// BoardStorage defines persistence operations for boards and their columns.
// Board lookups exclude soft-deleted rows.
type BoardStorage interface {
	// CreateBoard inserts a board. Returns ErrDuplicate when the slug is taken
	// within the project.
	CreateBoard(ctx context.Context, board domain.Board) (*domain.Board, error)
	// BoardByID fetches a board scoped to an organization.
	BoardByID(ctx context.Context, orgID domain.OrgID, id domain.BoardID) (*domain.Board, error)
	// BoardBySlug fetches a board by its project-unique slug.
	BoardBySlug(ctx context.Context, projectID domain.ProjectID, slug string) (*domain.Board, error)
	// Boards lists the live boards of a project.
	Boards(ctx context.Context, projectID domain.ProjectID) ([]domain.Board, error)
	// UpdateBoard applies updates and returns the updated row, or nil when the
	// board does not exist.
	UpdateBoard(ctx context.Context, orgID domain.OrgID, id domain.BoardID, updates BoardUpdates) (*domain.Board, error)
	// DeleteBoard soft-deletes a board and returns the deleted row.
	DeleteBoard(ctx context.Context, orgID domain.OrgID, id domain.BoardID) (*domain.Board, error)

	// CreateColumn inserts a column on a board.
	CreateColumn(ctx context.Context, column domain.Column) (*domain.Column, error)
	// Columns lists a board's columns ordered by position.
	Columns(ctx context.Context, boardID domain.BoardID) ([]domain.Column, error)
	// ColumnByID fetches a column. Returns nil when not found.
	ColumnByID(ctx context.Context, id domain.ColumnID) (*domain.Column, error)
	// UpdateColumn applies updates and returns the updated row.
	UpdateColumn(ctx context.Context, id domain.ColumnID, updates ColumnUpdates) (*domain.Column, error)
	// DeleteColumn deletes a column. Tasks referencing it fall back to the
	// backlog via ON DELETE SET NULL. Reports whether a row was deleted.
	DeleteColumn(ctx context.Context, id domain.ColumnID) (bool, error)
}
