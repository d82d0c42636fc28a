package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lufutu/scrumsan-sub003/internal/config"
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

// Options configure invitation issuance.
type Options struct {
	// InviteTTL is how long an invitation stays acceptable.
	InviteTTL time.Duration
	// MaxAttempts bounds email delivery retries in the background worker.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		InviteTTL:   cfg.Invites.TTL,
		MaxAttempts: cfg.Invites.MaxAttempts,
	}
}

// workspace is the concrete implementation of the Workspace interface. It
// coordinates persistence, permission checks, audit appends and realtime
// notifications.
type workspace struct {
	options   Options
	storage   storage.Storage
	publisher realtime.Publisher
}

// New creates a Workspace backed by the provided storage and publisher.
func New(storage storage.Storage, publisher realtime.Publisher, options Options) Workspace {
	return &workspace{
		options:   options,
		storage:   storage,
		publisher: publisher,
	}
}

// notify publishes a change event. Publishing is best effort: a realtime
// outage must not fail the mutation that already committed.
func (w *workspace) notify(ctx context.Context, orgID domain.OrgID, entity string, action string, id string) {
	if err := w.publisher.Publish(ctx, orgID, realtime.Event{Entity: entity, Action: action, ID: id}); err != nil {
		logger.Get(ctx).Warn("could not publish change event",
			zap.String("entity", entity), zap.Error(err))
	}
}

// audit appends an entry on the given storage handle, which may be a
// transaction so the entry commits together with the mutation it records.
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

// Actor loads the caller's membership and attached permission set.
func (w *workspace) Actor(ctx context.Context,
	orgID domain.OrgID,
	userID domain.UserID) (*domain.Member, *domain.PermissionSet, error) {
	member, err := w.storage.MemberByUser(ctx, orgID, userID)
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

	set, err := w.storage.PermissionSetByID(ctx, orgID, *member.PermissionSetID)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get permission set: %w", err)
	}

	return member, set, nil
}

func (w *workspace) CreateOrg(ctx context.Context,
	userID domain.UserID,
	params OrgParams) (*domain.Organization, error) {
	if params.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}

	var org *domain.Organization
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		candidate := slug.Make(params.Name)
		for attempt := 0; ; attempt++ {
			res, err := tx.CreateOrg(ctx, domain.Organization{
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
				return fmt.Errorf("could not create organization: %w", err)
			}
			org = res

			break
		}

		if _, err := tx.AddMember(ctx, domain.Member{
			OrgID:  org.ID,
			UserID: userID,
			Role:   domain.RoleOwner,
		}); err != nil {
			return fmt.Errorf("could not add owner membership: %w", err)
		}

		return appendAudit(ctx, tx, org.ID, userID, "org.create", "organization",
			org.ID.String(), map[string]any{"slug": org.Slug})
	}); err != nil {
		return nil, fmt.Errorf("could not create organization: %w", err)
	}

	return org, nil
}

func (w *workspace) OrgByRef(ctx context.Context, userID domain.UserID, ref domain.Ref) (*domain.Organization, error) {
	var (
		org *domain.Organization
		err error
	)
	if ref.IsID() {
		org, err = w.storage.OrgByID(ctx, domain.OrgID(uuid.MustParse(ref.ID)))
	} else {
		org, err = w.storage.OrgBySlug(ctx, ref.Slug)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get organization: %w", err)
	}
	if org == nil {
		return nil, serrors.With(serrors.ErrNotFound, "organization not found")
	}

	if _, _, err := w.Actor(ctx, org.ID, userID); err != nil {
		return nil, err
	}

	return org, nil
}

func (w *workspace) UpdateOrg(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	updates storage.OrgUpdates) (*domain.Organization, error) {
	actor, _, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleOwner && actor.Role != domain.RoleAdmin {
		return nil, serrors.With(serrors.ErrForbidden, "only owners and admins may update the organization")
	}

	if updates.Slug != nil {
		normalized := slug.Make(*updates.Slug)
		updates.Slug = &normalized
	}

	var org *domain.Organization
	if err := w.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.UpdateOrg(ctx, orgID, updates)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "slug already taken")
			}

			return fmt.Errorf("could not update organization: %w", err)
		}
		if res == nil {
			return serrors.With(serrors.ErrNotFound, "organization not found")
		}
		org = res

		return appendAudit(ctx, tx, orgID, userID, "org.update", "organization",
			orgID.String(), nil)
	}); err != nil {
		return nil, err
	}

	w.notify(ctx, orgID, "organization", "updated", orgID.String())

	return org, nil
}

func (w *workspace) UserOrgs(ctx context.Context, userID domain.UserID) ([]domain.Organization, error) {
	orgs, err := w.storage.OrgsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list organizations: %w", err)
	}

	return orgs, nil
}

func (w *workspace) AuditTrail(ctx context.Context,
	userID domain.UserID,
	orgID domain.OrgID,
	cursor string,
	limit uint) ([]domain.AuditEntry, string, error) {
	actor, _, err := w.Actor(ctx, orgID, userID)
	if err != nil {
		return nil, "", err
	}
	if actor.Role != domain.RoleOwner && actor.Role != domain.RoleAdmin {
		return nil, "", serrors.With(serrors.ErrForbidden, "only owners and admins may read the audit trail")
	}

	var cursorTime *time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = &t
	}

	page, err := w.storage.AuditEntries(ctx, orgID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list audit entries: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Entries, next, nil
}

// requireTeamManage checks that the actor can manage team members.
func requireTeamManage(actor *domain.Member, set *domain.PermissionSet) error {
	if permission.CanPerformAction(*actor, set, permission.VerbUpdate, permission.Resource{Type: permission.ResourceMember}) {
		return nil
	}

	return serrors.With(serrors.ErrForbidden, "missing team management permission")
}

// requireTeamView checks that the actor can view team members.
func requireTeamView(actor *domain.Member, set *domain.PermissionSet) error {
	if permission.CanPerformAction(*actor, set, permission.VerbView, permission.Resource{Type: permission.ResourceMember}) {
		return nil
	}

	return serrors.With(serrors.ErrForbidden, "missing team view permission")
}
