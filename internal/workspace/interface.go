// Package workspace implements organization-level operations: organizations
// themselves, members and their profiles, permission sets, invitations and
// the audit trail. Project and task operations live in internal/planning.
package workspace

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// OrgParams carries the caller-supplied fields for creating an organization.
type OrgParams struct {
	Name        string
	Description string
}

// MemberUpdates carries the mutable fields of a membership. PermissionSetID
// uses a double pointer so callers can distinguish leaving the set untouched
// (nil) from detaching it (pointer to nil).
type MemberUpdates struct {
	Role            *domain.Role
	PermissionSetID **domain.PermissionSetID
	DisplayName     *string
}

// InviteParams carries the caller-supplied fields for creating an invitation.
type InviteParams struct {
	Email           string
	Role            domain.Role
	PermissionSetID *domain.PermissionSetID
}

// AcceptParams identifies the accepting user. Email must match the address
// the invitation was sent to.
type AcceptParams struct {
	Token       string
	Email       string
	DisplayName string
}

//go:generate mockgen -package mockworkspace -source=interface.go -destination=mock/mockworkspace.go *
type Workspace interface {
	// CreateOrg creates an organization and makes the creator its owner.
	CreateOrg(ctx context.Context, userID domain.UserID, params OrgParams) (*domain.Organization, error)
	// OrgByRef resolves an organization by slug or UUID reference. Callers who
	// are not members get a not-found error, never a hint that the org exists.
	OrgByRef(ctx context.Context, userID domain.UserID, ref domain.Ref) (*domain.Organization, error)
	// UpdateOrg updates an organization's name, slug or description.
	UpdateOrg(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		updates storage.OrgUpdates) (*domain.Organization, error)
	// UserOrgs lists the organizations the user belongs to.
	UserOrgs(ctx context.Context, userID domain.UserID) ([]domain.Organization, error)

	// Actor returns the caller's membership in the organization together with
	// the attached permission set, if any.
	Actor(ctx context.Context, orgID domain.OrgID, userID domain.UserID) (*domain.Member, *domain.PermissionSet, error)
	// Members lists the organization's members.
	Members(ctx context.Context, userID domain.UserID, orgID domain.OrgID) ([]domain.Member, error)
	// UpdateMember changes a member's role, display name or permission set.
	UpdateMember(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		memberID domain.MemberID,
		updates MemberUpdates) (*domain.Member, error)
	// RemoveMember removes a member from the organization. Members may remove
	// themselves; removing others requires team management permission.
	RemoveMember(ctx context.Context, userID domain.UserID, orgID domain.OrgID, memberID domain.MemberID) error

	// CreatePermissionSet validates flag dependencies and stores a new set.
	CreatePermissionSet(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		name string,
		config domain.PermissionConfig) (*domain.PermissionSet, error)
	// PermissionSets lists the organization's permission sets.
	PermissionSets(ctx context.Context, userID domain.UserID, orgID domain.OrgID) ([]domain.PermissionSet, error)
	// UpdatePermissionSet validates flag dependencies and applies updates.
	UpdatePermissionSet(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.PermissionSetID,
		updates storage.PermissionSetUpdates) (*domain.PermissionSet, error)
	// DeletePermissionSet removes a set. Members referencing it fall back to
	// their role defaults.
	DeletePermissionSet(ctx context.Context, userID domain.UserID, orgID domain.OrgID, id domain.PermissionSetID) error

	// Invite creates an invitation and enqueues the invitation email.
	Invite(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		params InviteParams) (*domain.Invitation, error)
	// Invitations lists the organization's invitations, newest first.
	Invitations(ctx context.Context, userID domain.UserID, orgID domain.OrgID) ([]domain.Invitation, error)
	// AcceptInvitation turns a pending, unexpired invitation into a membership.
	AcceptInvitation(ctx context.Context, userID domain.UserID, params AcceptParams) (*domain.Member, error)
	// RevokeInvitation withdraws a pending invitation.
	RevokeInvitation(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		id domain.InvitationID) error

	// UpsertProfile creates or replaces a member's profile. Members edit their
	// own profile; editing others requires team management permission.
	UpsertProfile(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		memberID domain.MemberID,
		profile domain.Profile) (*domain.Profile, error)
	// MemberProfile fetches a member's profile.
	MemberProfile(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		memberID domain.MemberID) (*domain.Profile, error)

	// AddTimeOff records a time-off entry for a member.
	AddTimeOff(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		memberID domain.MemberID,
		entry domain.TimeOffEntry) (*domain.TimeOffEntry, error)
	// TimeOff lists a member's time-off entries.
	TimeOff(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		memberID domain.MemberID) ([]domain.TimeOffEntry, error)
	// DeleteTimeOff deletes one of the member's time-off entries.
	DeleteTimeOff(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		memberID domain.MemberID,
		id domain.TimeOffID) error

	// AuditTrail lists the organization's audit entries, newest first, using
	// an RFC3339 cursor. Only owners and admins may read it.
	AuditTrail(ctx context.Context,
		userID domain.UserID,
		orgID domain.OrgID,
		cursor string,
		limit uint) ([]domain.AuditEntry, string, error)
}
