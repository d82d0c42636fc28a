package planning

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/internal/slug"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// visibleBoard loads a board and checks the caller may view its project.
func (p *planning) visibleBoard(ctx context.Context,
	actor *domain.Member,
	set *domain.PermissionSet,
	orgID domain.OrgID,
	id domain.BoardID) (*domain.Board, error) {
	board, err := p.storage.BoardByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get board: %w", err)
	}
	if board == nil {
		return nil, serrors.With(serrors.ErrNotFound, "board not found")
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	return board, nil
}

func (p *planning) CreateBoard(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID,
	name string) (*domain.Board, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbCreate, permission.ResourceBoard,
		projectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}

	project, err := p.storage.ProjectByID(ctx, orgID, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	var board *domain.Board
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		candidate := slug.Make(name)
		for attempt := 0; ; attempt++ {
			res, err := tx.CreateBoard(ctx, domain.Board{
				OrgID:     orgID,
				ProjectID: projectID,
				Name:      name,
				Slug:      candidate,
			})
			if errors.Is(err, storage.ErrDuplicate) {
				if attempt == slugAttempts {
					return serrors.Wrap(serrors.ErrConflict, err, "could not find a free slug")
				}
				candidate = slug.WithSuffix(slug.Make(name))

				continue
			}
			if err != nil {
				return fmt.Errorf("could not create board: %w", err)
			}
			board = res

			break
		}

		return appendAudit(ctx, tx, orgID, userID, "board.create", "board",
			board.ID.String(), map[string]any{"projectId": projectID.String()})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "board", "created", board.ID.String())

	return board, nil
}

func (p *planning) BoardByRef(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID,
	ref domain.Ref) (*domain.Board, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	var board *domain.Board
	if ref.IsID() {
		board, err = p.storage.BoardByID(ctx, orgID, domain.BoardID(uuid.MustParse(ref.ID)))
	} else {
		board, err = p.storage.BoardBySlug(ctx, projectID, ref.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get board: %w", err)
	}
	if board == nil || board.ProjectID != projectID {
		return nil, serrors.With(serrors.ErrNotFound, "board not found")
	}

	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	return board, nil
}

func (p *planning) Boards(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID) ([]domain.Board, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.visibleProject(ctx, actor, set, orgID, projectID); err != nil {
		return nil, err
	}

	boards, err := p.storage.Boards(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not list boards: %w", err)
	}

	return boards, nil
}

func (p *planning) UpdateBoard(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.BoardID,
	updates storage.BoardUpdates) (*domain.Board, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	board, err := p.visibleBoard(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if updates.Slug != nil {
		normalized := slug.Make(*updates.Slug)
		updates.Slug = &normalized
	}

	res, err := p.storage.UpdateBoard(ctx, orgID, id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "slug already taken")
		}

		return nil, fmt.Errorf("could not update board: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "board not found")
	}

	p.notify(ctx, orgID, "board", "updated", id.String())

	return res, nil
}

func (p *planning) DeleteBoard(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.BoardID) error {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return err
	}

	board, err := p.visibleBoard(ctx, actor, set, orgID, id)
	if err != nil {
		return err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbDelete, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return err
	}

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteBoard(ctx, orgID, id)
		if err != nil {
			return fmt.Errorf("could not delete board: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "board not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "board.delete", "board",
			id.String(), map[string]any{"projectId": board.ProjectID.String()})
	}); err != nil {
		return err
	}

	p.notify(ctx, orgID, "board", "deleted", id.String())

	return nil
}

func (p *planning) CreateColumn(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	boardID domain.BoardID,
	name string,
	position int) (*domain.Column, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	board, err := p.visibleBoard(ctx, actor, set, orgID, boardID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}

	column, err := p.storage.CreateColumn(ctx, domain.Column{
		BoardID:  boardID,
		Name:     name,
		Position: position,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create column: %w", err)
	}

	p.notify(ctx, orgID, "board", "updated", boardID.String())

	return column, nil
}

func (p *planning) Columns(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	boardID domain.BoardID) ([]domain.Column, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.visibleBoard(ctx, actor, set, orgID, boardID); err != nil {
		return nil, err
	}

	columns, err := p.storage.Columns(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("could not list columns: %w", err)
	}

	return columns, nil
}

// boardColumn loads a column and verifies it belongs to the given board.
func (p *planning) boardColumn(ctx context.Context,
	boardID domain.BoardID,
	id domain.ColumnID) (*domain.Column, error) {
	column, err := p.storage.ColumnByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get column: %w", err)
	}
	if column == nil || column.BoardID != boardID {
		return nil, serrors.With(serrors.ErrNotFound, "column not found")
	}

	return column, nil
}

func (p *planning) UpdateColumn(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	boardID domain.BoardID,
	id domain.ColumnID,
	updates storage.ColumnUpdates) (*domain.Column, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	board, err := p.visibleBoard(ctx, actor, set, orgID, boardID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}
	if _, err := p.boardColumn(ctx, boardID, id); err != nil {
		return nil, err
	}

	column, err := p.storage.UpdateColumn(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update column: %w", err)
	}
	if column == nil {
		return nil, serrors.With(serrors.ErrNotFound, "column not found")
	}

	p.notify(ctx, orgID, "board", "updated", boardID.String())

	return column, nil
}

func (p *planning) DeleteColumn(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	boardID domain.BoardID,
	id domain.ColumnID) error {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return err
	}

	board, err := p.visibleBoard(ctx, actor, set, orgID, boardID)
	if err != nil {
		return err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceBoard,
		board.ProjectID, domain.UserID{}); err != nil {
		return err
	}
	if _, err := p.boardColumn(ctx, boardID, id); err != nil {
		return err
	}

	deleted, err := p.storage.DeleteColumn(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete column: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "column not found")
	}

	p.notify(ctx, orgID, "board", "updated", boardID.String())

	return nil
}
