package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// visibleTask loads a task and checks the caller may view it. Task creators
// can always see their own tasks.
func (p *planning) visibleTask(ctx context.Context,
	actor *domain.Member,
	set *domain.PermissionSet,
	orgID domain.OrgID,
	id domain.TaskID) (*domain.Task, error) {
	task, err := p.storage.TaskByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get task: %w", err)
	}
	if task == nil {
		return nil, serrors.With(serrors.ErrNotFound, "task not found")
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceTask,
		task.ProjectID, task.CreatedBy); err != nil {
		return nil, err
	}

	return task, nil
}

func (p *planning) CreateTask(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	params TaskParams) (*domain.Task, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbCreate, permission.ResourceTask,
		params.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if params.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	priority := params.Priority
	switch priority {
	case "":
		priority = domain.TaskPriorityMedium
	case domain.TaskPriorityLow, domain.TaskPriorityMedium, domain.TaskPriorityHigh:
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown priority %q", priority)
	}

	project, err := p.storage.ProjectByID(ctx, orgID, params.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	var task *domain.Task
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		task, err = tx.CreateTask(ctx, domain.Task{
			OrgID:       orgID,
			ProjectID:   params.ProjectID,
			Title:       params.Title,
			Description: params.Description,
			Status:      domain.TaskStatusTodo,
			Priority:    priority,
			DueOn:       params.DueOn,
			CreatedBy:   userID,
		})
		if err != nil {
			return fmt.Errorf("could not create task: %w", err)
		}

		return appendAudit(ctx, tx, orgID, userID, "task.create", "task",
			task.ID.String(), map[string]any{"projectId": params.ProjectID.String()})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "task", "created", task.ID.String())

	return task, nil
}

func (p *planning) TaskByID(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.TaskID) (*domain.Task, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	return p.visibleTask(ctx, actor, set, orgID, id)
}

func (p *planning) Tasks(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	filter TaskListFilter) ([]domain.Task, string, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, "", err
	}
	if filter.ProjectID == nil {
		return nil, "", serrors.With(serrors.ErrBadRequest, "projectId is required")
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceTask,
		*filter.ProjectID, domain.UserID{}); err != nil {
		return nil, "", err
	}

	stored := storage.TaskFilter{
		OrgID:            orgID,
		ProjectID:        filter.ProjectID,
		BoardID:          filter.BoardID,
		SprintID:         filter.SprintID,
		Backlog:          filter.Backlog,
		AssigneeMemberID: filter.AssigneeMemberID,
		Status:           filter.Status,
		Limit:            filter.Limit,
	}
	if filter.Cursor != "" {
		cursor, err := time.Parse(time.RFC3339Nano, filter.Cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		stored.Cursor = &cursor
	}

	page, err := p.storage.Tasks(ctx, stored)
	if err != nil {
		return nil, "", fmt.Errorf("could not list tasks: %w", err)
	}

	next := ""
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Tasks, next, nil
}

func (p *planning) UpdateTask(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.TaskID,
	changes TaskChanges) (*domain.Task, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	task, err := p.visibleTask(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceTask,
		task.ProjectID, task.CreatedBy); err != nil {
		return nil, err
	}

	if changes.Status != nil {
		switch *changes.Status {
		case domain.TaskStatusTodo, domain.TaskStatusInProgress, domain.TaskStatusDone:
		default:
			return nil, serrors.With(serrors.ErrBadRequest, "unknown status %q", *changes.Status)
		}
	}
	if changes.Priority != nil {
		switch *changes.Priority {
		case domain.TaskPriorityLow, domain.TaskPriorityMedium, domain.TaskPriorityHigh:
		default:
			return nil, serrors.With(serrors.ErrBadRequest, "unknown priority %q", *changes.Priority)
		}
	}

	res, err := p.storage.UpdateTask(ctx, orgID, id, storage.TaskUpdates{
		Title:       changes.Title,
		Description: changes.Description,
		Status:      changes.Status,
		Priority:    changes.Priority,
		DueOn:       changes.DueOn,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "task not found")
	}

	p.notify(ctx, orgID, "task", "updated", id.String())

	return res, nil
}

//nolint:gocognit
func (p *planning) MoveTask(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.TaskID,
	placement TaskPlacement) (*domain.Task, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	task, err := p.visibleTask(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceTask,
		task.ProjectID, task.CreatedBy); err != nil {
		return nil, err
	}

	var updates storage.TaskUpdates
	switch {
	case placement.Backlog:
		if placement.ColumnID != nil || placement.SprintID != nil {
			return nil, serrors.With(serrors.ErrBadRequest, "backlog placement excludes column and sprint")
		}
		var (
			noBoard  *domain.BoardID
			noColumn *domain.ColumnID
			noSprint *domain.SprintID
		)
		updates.BoardID = &noBoard
		updates.ColumnID = &noColumn
		updates.SprintID = &noSprint
	case placement.ColumnID != nil:
		column, err := p.storage.ColumnByID(ctx, *placement.ColumnID)
		if err != nil {
			return nil, fmt.Errorf("could not get column: %w", err)
		}
		if column == nil {
			return nil, serrors.With(serrors.ErrNotFound, "column not found")
		}
		board, err := p.storage.BoardByID(ctx, orgID, column.BoardID)
		if err != nil {
			return nil, fmt.Errorf("could not get board: %w", err)
		}
		if board == nil || board.ProjectID != task.ProjectID {
			return nil, serrors.With(serrors.ErrBadRequest, "column belongs to another project")
		}
		boardID := &board.ID
		columnID := &column.ID
		updates.BoardID = &boardID
		updates.ColumnID = &columnID
		updates.Position = placement.Position
	case placement.SprintID != nil:
		sprint, err := p.storage.SprintByID(ctx, orgID, *placement.SprintID)
		if err != nil {
			return nil, fmt.Errorf("could not get sprint: %w", err)
		}
		if sprint == nil {
			return nil, serrors.With(serrors.ErrNotFound, "sprint not found")
		}
		if sprint.ProjectID != task.ProjectID {
			return nil, serrors.With(serrors.ErrBadRequest, "sprint belongs to another project")
		}
		if sprint.Status == domain.SprintStatusCompleted {
			return nil, serrors.With(serrors.ErrConflict, "sprint is already completed")
		}
		sprintID := &sprint.ID
		updates.SprintID = &sprintID
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "placement is required")
	}

	res, err := p.storage.UpdateTask(ctx, orgID, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not move task: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "task not found")
	}

	p.notify(ctx, orgID, "task", "updated", id.String())

	return res, nil
}

func (p *planning) AssignTask(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.TaskID,
	assignee *domain.MemberID) (*domain.Task, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	task, err := p.visibleTask(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceTask,
		task.ProjectID, task.CreatedBy); err != nil {
		return nil, err
	}

	if assignee != nil {
		member, err := p.storage.MemberByID(ctx, *assignee)
		if err != nil {
			return nil, fmt.Errorf("could not get member: %w", err)
		}
		if member == nil || member.OrgID != orgID {
			return nil, serrors.With(serrors.ErrNotFound, "member not found")
		}
	}

	res, err := p.storage.UpdateTask(ctx, orgID, id, storage.TaskUpdates{
		AssigneeMemberID: &assignee,
	})
	if err != nil {
		return nil, fmt.Errorf("could not assign task: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "task not found")
	}

	p.notify(ctx, orgID, "task", "updated", id.String())

	return res, nil
}

func (p *planning) DeleteTask(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.TaskID) error {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return err
	}

	task, err := p.visibleTask(ctx, actor, set, orgID, id)
	if err != nil {
		return err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbDelete, permission.ResourceTask,
		task.ProjectID, task.CreatedBy); err != nil {
		return err
	}

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteTask(ctx, orgID, id)
		if err != nil {
			return fmt.Errorf("could not delete task: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "task not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "task.delete", "task",
			id.String(), map[string]any{"projectId": task.ProjectID.String()})
	}); err != nil {
		return err
	}

	p.notify(ctx, orgID, "task", "deleted", id.String())

	return nil
}
