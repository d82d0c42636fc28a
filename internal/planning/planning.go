package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lufutu/scrumsan-sub003/internal/permission"
	"github.com/lufutu/scrumsan-sub003/internal/realtime"
	"github.com/lufutu/scrumsan-sub003/internal/slug"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/logger"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// slugAttempts bounds how many random suffixes are tried after the base slug
// collides before giving up with a conflict.
const slugAttempts = 3

// planning is the concrete implementation of the Planning interface.
type planning struct {
	storage   storage.Storage
	publisher realtime.Publisher
}

// New creates a Planning service backed by the provided storage and
// publisher.
func New(storage storage.Storage, publisher realtime.Publisher) Planning {
	return &planning{
		storage:   storage,
		publisher: publisher,
	}
}

// notify publishes a change event. Publishing is best effort: a realtime
// outage must not fail the mutation that already committed.
func (p *planning) notify(ctx context.Context, orgID domain.OrgID, entity string, action string, id string) {
	if err := p.publisher.Publish(ctx, orgID, realtime.Event{Entity: entity, Action: action, ID: id}); err != nil {
		logger.Get(ctx).Warn("could not publish change event",
			zap.String("entity", entity), zap.Error(err))
	}
}

func appendAudit(ctx context.Context,
	s storage.AllStorage,
	orgID domain.OrgID,
	actor domain.UserID,
	action string,
	resourceType string,
	resourceID string,
	metadata map[string]any) error {
	if _, err := s.AppendAudit(ctx, domain.AuditEntry{
		OrgID:        orgID,
		ActorUserID:  actor,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Metadata:     metadata,
	}); err != nil {
		return fmt.Errorf("could not append audit entry: %w", err)
	}

	return nil
}

// actor loads the caller's membership and attached permission set.
func (p *planning) actor(ctx context.Context,
	orgID domain.OrgID,
	userID domain.UserID) (*domain.Member, *domain.PermissionSet, error) {
	member, err := p.storage.MemberByUser(ctx, orgID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get member: %w", err)
	}
	if member == nil {
		// Non-members must not learn that the organization exists.
		return nil, nil, serrors.With(serrors.ErrNotFound, "organization not found")
	}

	if member.PermissionSetID == nil {
		return member, nil, nil
	}

	set, err := p.storage.PermissionSetByID(ctx, orgID, *member.PermissionSetID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get permission set: %w", err)
	}

	return member, set, nil
}

// isAssigned reports whether the member holds an open engagement on the
// project.
func (p *planning) isAssigned(ctx context.Context,
	orgID domain.OrgID,
	memberID domain.MemberID,
	projectID domain.ProjectID) (bool, error) {
	assigned, err := p.storage.AssignedProjects(ctx, orgID, memberID)
	if err != nil {
		return false, fmt.Errorf("could not list assigned projects: %w", err)
	}
	for _, project := range assigned {
		if project.ID == projectID {
			return true, nil
		}
	}

	return false, nil
}

// canOnProject decides whether the actor may apply a verb to a resource that
// lives under the given project. Assignment is only looked up when the all
// scope did not already grant access.
func (p *planning) canOnProject(ctx context.Context,
	actor *domain.Member,
	set *domain.PermissionSet,
	verb permission.Verb,
	resourceType permission.ResourceType,
	projectID domain.ProjectID,
	ownerID domain.UserID) (bool, error) {
	resource := permission.Resource{Type: resourceType, OwnerID: ownerID}
	if permission.CanPerformAction(*actor, set, verb, resource) {
		return true, nil
	}

	assigned, err := p.isAssigned(ctx, actor.OrgID, actor.ID, projectID)
	if err != nil {
		return false, err
	}
	if !assigned {
		return false, nil
	}
	resource.Assigned = true

	return permission.CanPerformAction(*actor, set, verb, resource), nil
}

// requireOnProject is canOnProject folded into the usual error shape.
func (p *planning) requireOnProject(ctx context.Context,
	actor *domain.Member,
	set *domain.PermissionSet,
	verb permission.Verb,
	resourceType permission.ResourceType,
	projectID domain.ProjectID,
	ownerID domain.UserID) error {
	ok, err := p.canOnProject(ctx, actor, set, verb, resourceType, projectID, ownerID)
	if err != nil {
		return err
	}
	if !ok {
		if verb == permission.VerbView {
			// Hide resources the caller may not see.
			return serrors.With(serrors.ErrNotFound, "%s not found", resourceType)
		}

		return serrors.With(serrors.ErrForbidden, "missing %s permission on this project", verb)
	}

	return nil
}

// visibleProject loads a project and checks the caller may view it.
func (p *planning) visibleProject(ctx context.Context,
	actor *domain.Member,
	set *domain.PermissionSet,
	orgID domain.OrgID,
	projectID domain.ProjectID) (*domain.Project, error) {
	project, err := p.storage.ProjectByID(ctx, orgID, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceProject,
		project.ID, domain.UserID{}); err != nil {
		return nil, err
	}

	return project, nil
}

func (p *planning) CreateProject(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	params ProjectParams) (*domain.Project, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	// Creating is managing something that cannot be assigned yet, so only the
	// all scope applies.
	if !permission.CanPerformAction(*actor, set, permission.VerbCreate,
		permission.Resource{Type: permission.ResourceProject}) {
		return nil, serrors.With(serrors.ErrForbidden, "missing project management permission")
	}

	if params.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}

	var project *domain.Project
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		candidate := slug.Make(params.Name)
		for attempt := 0; ; attempt++ {
			res, err := tx.CreateProject(ctx, domain.Project{
				OrgID:       orgID,
				Name:        params.Name,
				Slug:        candidate,
				Description: params.Description,
			})
			if errors.Is(err, storage.ErrDuplicate) {
				if attempt == slugAttempts {
					return serrors.Wrap(serrors.ErrConflict, err, "could not find a free slug")
				}
				candidate = slug.WithSuffix(slug.Make(params.Name))

				continue
			}
			if err != nil {
				return fmt.Errorf("could not create project: %w", err)
			}
			project = res

			break
		}

		return appendAudit(ctx, tx, orgID, userID, "project.create", "project",
			project.ID.String(), map[string]any{"slug": project.Slug})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "project", "created", project.ID.String())

	return project, nil
}

func (p *planning) ProjectByRef(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	ref domain.Ref) (*domain.Project, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	var project *domain.Project
	if ref.IsID() {
		project, err = p.storage.ProjectByID(ctx, orgID, domain.ProjectID(uuid.MustParse(ref.ID)))
	} else {
		project, err = p.storage.ProjectBySlug(ctx, orgID, ref.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get project: %w", err)
	}
	if project == nil {
		return nil, serrors.With(serrors.ErrNotFound, "project not found")
	}

	if err := p.requireOnProject(ctx, actor, set, permission.VerbView, permission.ResourceProject,
		project.ID, domain.UserID{}); err != nil {
		return nil, err
	}

	return project, nil
}

func (p *planning) Projects(ctx context.Context, userID domain.UserID, orgID domain.OrgID) ([]domain.Project, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	// The all scope sees every project, the assigned scope only engagement
	// targets, anything else sees an empty organization.
	if permission.CanPerformAction(*actor, set, permission.VerbView,
		permission.Resource{Type: permission.ResourceProject}) {
		projects, err := p.storage.Projects(ctx, orgID)
		if err != nil {
			return nil, fmt.Errorf("could not list projects: %w", err)
		}

		return projects, nil
	}

	if permission.HasPermissionWithContext(*actor, set, permission.ActionProjectsViewAssigned) {
		projects, err := p.storage.AssignedProjects(ctx, orgID, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("could not list assigned projects: %w", err)
		}

		return projects, nil
	}

	return []domain.Project{}, nil
}

func (p *planning) UpdateProject(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.ProjectID,
	updates storage.ProjectUpdates) (*domain.Project, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceProject,
		id, domain.UserID{}); err != nil {
		return nil, err
	}

	if updates.Slug != nil {
		normalized := slug.Make(*updates.Slug)
		updates.Slug = &normalized
	}

	var project *domain.Project
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.UpdateProject(ctx, orgID, id, updates)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "slug already taken")
			}

			return fmt.Errorf("could not update project: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}
		project = res

		return appendAudit(ctx, tx, orgID, userID, "project.update", "project", id.String(), nil)
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "project", "updated", id.String())

	return project, nil
}

func (p *planning) DeleteProject(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	id domain.ProjectID) error {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbDelete, permission.ResourceProject,
		id, domain.UserID{}); err != nil {
		return err
	}

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteProject(ctx, orgID, id)
		if err != nil {
			return fmt.Errorf("could not delete project: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "project not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "project.delete", "project",
			id.String(), map[string]any{"slug": deleted.Slug})
	}); err != nil {
		return err
	}

	p.notify(ctx, orgID, "project", "deleted", id.String())

	return nil
}

func (p *planning) AddEngagement(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID,
	params EngagementParams) (*domain.Engagement, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceProject,
		projectID, domain.UserID{}); err != nil {
		return nil, err
	}

	target, err := p.storage.MemberByID(ctx, params.MemberID)
	if err != nil {
		return nil, fmt.Errorf("could not get member: %w", err)
	}
	if target == nil || target.OrgID != orgID {
		return nil, serrors.With(serrors.ErrNotFound, "member not found")
	}

	if params.HoursPerWeek < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "hours per week must not be negative")
	}
	startsOn := params.StartsOn
	if startsOn.IsZero() {
		startsOn = time.Now()
	}

	var engagement *domain.Engagement
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.AddEngagement(ctx, domain.Engagement{
			ProjectID:    projectID,
			MemberID:     params.MemberID,
			Role:         params.Role,
			HoursPerWeek: params.HoursPerWeek,
			StartsOn:     startsOn,
		})
		if err != nil {
			return fmt.Errorf("could not add engagement: %w", err)
		}
		engagement = res

		return appendAudit(ctx, tx, orgID, userID, "engagement.add", "project",
			projectID.String(), map[string]any{"memberId": params.MemberID.String()})
	}); err != nil {
		return nil, err
	}

	p.notify(ctx, orgID, "project", "updated", projectID.String())

	return engagement, nil
}

func (p *planning) Engagements(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID) ([]domain.Engagement, error) {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if _, err := p.visibleProject(ctx, actor, set, orgID, projectID); err != nil {
		return nil, err
	}

	engagements, err := p.storage.Engagements(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not list engagements: %w", err)
	}

	return engagements, nil
}

func (p *planning) EndEngagement(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	projectID domain.ProjectID,
	id domain.EngagementID) error {
	actor, set, err := p.actor(ctx, orgID, userID)
	if err != nil {
		return err
	}
	if err := p.requireOnProject(ctx, actor, set, permission.VerbUpdate, permission.ResourceProject,
		projectID, domain.UserID{}); err != nil {
		return err
	}

	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		ended, err := tx.EndEngagement(ctx, projectID, id, time.Now())
		if err != nil {
			return fmt.Errorf("could not end engagement: %w", err)
		}
		if !ended {
			return serrors.With(serrors.ErrNotFound, "open engagement not found")
		}

		return appendAudit(ctx, tx, orgID, userID, "engagement.end", "project",
			projectID.String(), nil)
	}); err != nil {
		return err
	}

	p.notify(ctx, orgID, "project", "updated", projectID.String())

	return nil
}
