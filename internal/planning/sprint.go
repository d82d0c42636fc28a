package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/internal/slug"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// visibleSprint loads a sprint and checks the caller may view its project.
func (p *planning) visibleSprint(ctx context.Context,
	actor *domain.Member,
	set *domain.PermissionSet,
	orgID domain.OrgID,
	id domain.SprintID) (*domain.Sprint, error) {
	sprint, err := p.storage.SprintByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get sprint: %w", err)
	}
	if sprint == nil {
		return nil, serrors.With(serrors.ErrNotFound, "sprint not found")
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceSprint,
		sprint.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (p *planning) CreateSprint(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID,
	params SprintParams) (*domain.Sprint, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbCreate, permission.ResourceSprint,
		projectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if params.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	if !params.EndsOn.IsZero() && !params.StartsOn.IsZero() && params.EndsOn.Before(params.StartsOn) {
		return nil, serrors.With(serrors.ErrBadRequest, "endsOn must not precede startsOn")
	}

	project, err := p.storage.ProjectByID(ctx, orgID, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	var sprint *domain.Sprint
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		candidate := slug.Make(params.Name)
		for attempt := 0; ; attempt++ {
			res, err := tx.CreateSprint(ctx, domain.Sprint{
				ProjectID: projectID,
				Name:      params.Name,
				Slug:      candidate,
				Goal:      params.Goal,
				Status:    domain.SprintStatusPlanned,
				StartsOn:  params.StartsOn,
				EndsOn:    params.EndsOn,
			})
			if errors.Is(err, storage.ErrDuplicate) {
				if attempt == slugAttempts {
					return serrors.Wrap(serrors.ErrConflict, err, "could not find a free slug")
				}
				candidate = slug.WithSuffix(slug.Make(params.Name))

				continue
			}
			if err != nil {
				return fmt.Errorf("could not create sprint: %w", err)
			}
			sprint = res

			break
		}

		return appendAudit(ctx, tx, orgID, userID, "sprint.create", "sprint",
			sprint.ID.String(), map[string]any{"projectId": projectID.String()})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "sprint", "created", sprint.ID.String())

	return sprint, nil
}

func (p *planning) SprintByRef(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID,
	ref domain.Ref) (*domain.Sprint, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	var sprint *domain.Sprint
	if ref.IsID() {
		sprint, err = p.storage.SprintByID(ctx, orgID, domain.SprintID(uuid.MustParse(ref.ID)))
	} else {
		sprint, err = p.storage.SprintBySlug(ctx, projectID, ref.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get sprint: %w", err)
	}
	if sprint == nil || sprint.ProjectID != projectID {
		return nil, serrors.With(serrors.ErrNotFound, "sprint not found")
	}

	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceSprint,
		sprint.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (p *planning) Sprints(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID) ([]domain.Sprint, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.visibleProject(ctx, actor, set, orgID, projectID); err != nil {
		return nil, err
	}

	sprints, err := p.storage.Sprints(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not list sprints: %w", err)
	}

	return sprints, nil
}

func (p *planning) UpdateSprint(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.SprintID,
	updates storage.SprintUpdates) (*domain.Sprint, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	sprint, err := p.visibleSprint(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceSprint,
		sprint.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	// Lifecycle transitions go through StartSprint and FinishSprint.
	updates.Status = nil
	if updates.Slug != nil {
		normalized := slug.Make(*updates.Slug)
		updates.Slug = &normalized
	}

	res, err := p.storage.UpdateSprint(ctx, orgID, id, updates)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "slug already taken")
		}

		return nil, fmt.Errorf("could not update sprint: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "sprint not found")
	}

	p.notify(ctx, orgID, "sprint", "updated", id.String())

	return res, nil
}

func (p *planning) StartSprint(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.SprintID) (*domain.Sprint, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	sprint, err := p.visibleSprint(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceSprint,
		sprint.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if sprint.Status != domain.SprintStatusPlanned {
		return nil, serrors.With(serrors.ErrConflict, "only a planned sprint can be started")
	}

	status := domain.SprintStatusActive
	updates := storage.SprintUpdates{Status: &status}
	if sprint.StartsOn.IsZero() {
		now := time.Now()
		updates.StartsOn = &now
	}

	var res *domain.Sprint
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err = tx.UpdateSprint(ctx, orgID, id, updates)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "another sprint is already active")
			}

			return fmt.Errorf("could not update sprint: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "sprint not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "sprint.start", "sprint",
			id.String(), map[string]any{"projectId": sprint.ProjectID.String()})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "sprint", "updated", id.String())

	return res, nil
}

func (p *planning) FinishSprint(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.SprintID) (*domain.Sprint, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	sprint, err := p.visibleSprint(ctx, actor, set, orgID, id)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceSprint,
		sprint.ProjectID, domain.UserID{}); err != nil {
		return nil, err
	}

	if sprint.Status != domain.SprintStatusActive {
		return nil, serrors.With(serrors.ErrConflict, "only an active sprint can be finished")
	}

	status := domain.SprintStatusCompleted
	updates := storage.SprintUpdates{Status: &status}
	if sprint.EndsOn.IsZero() || sprint.EndsOn.After(time.Now()) {
		now := time.Now()
		updates.EndsOn = &now
	}

	var res *domain.Sprint
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err = tx.UpdateSprint(ctx, orgID, id, updates)
		if err != nil {
			return fmt.Errorf("could not update sprint: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "sprint not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "sprint.finish", "sprint",
			id.String(), map[string]any{"projectId": sprint.ProjectID.String()})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "sprint", "updated", id.String())

	return res, nil
}

func (p *planning) SprintStats(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.SprintID) (*domain.SprintStats, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.visibleSprint(ctx, actor, set, orgID, id); err != nil {
		return nil, err
	}

	stats, err := p.storage.SprintTaskCounts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not count sprint tasks: %w", err)
	}

	return stats, nil
}

func (p *planning) DeleteSprint(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.SprintID) error {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return err
	}

	sprint, err := p.visibleSprint(ctx, actor, set, orgID, id)
	if err != nil {
		return err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbDelete, permission.ResourceSprint,
		sprint.ProjectID, domain.UserID{}); err != nil {
		return err
	}

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteSprint(ctx, orgID, id)
		if err != nil {
			return fmt.Errorf("could not delete sprint: %w", err)
		}
		if !deleted {
			return serrors.With(serrors.ErrNotFound, "sprint not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "sprint.delete", "sprint",
			id.String(), map[string]any{"projectId": sprint.ProjectID.String()})
	}); err != nil {
		return err
	}

	p.notify(ctx, orgID, "sprint", "deleted", id.String())

	return nil
}
