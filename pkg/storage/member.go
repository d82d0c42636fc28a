package storage

import (
	"context"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// MemberUpdates describes optional fields applied to a member. Only non-nil
// fields are written. ClearPermissionSet detaches the custom permission set;
// it wins over PermissionSetID when both are set.
type MemberUpdates struct {
	Role               *domain.Role
	PermissionSetID    *domain.PermissionSetID
	ClearPermissionSet bool
	DisplayName        *string
}

// MemberStorage defines persistence operations for organization members,
// their profiles and time-off entries.
type MemberStorage interface {
	// AddMember inserts a membership row. Returns ErrDuplicate when the user is
	// already a member of the organization.
	AddMember(ctx context.Context, member domain.Member) (*domain.Member, error)
	// MemberByID fetches a member by ID. Returns nil when not found.
	MemberByID(ctx context.Context, id domain.MemberID) (*domain.Member, error)
	// MemberByUser fetches the membership of a user within an organization.
	// Returns nil when the user is not a member.
	MemberByUser(ctx context.Context, orgID domain.OrgID, userID domain.UserID) (*domain.Member, error)
	// Members lists all members of an organization ordered by creation time.
	Members(ctx context.Context, orgID domain.OrgID) ([]domain.Member, error)
	// UpdateMember applies updates and returns the updated row, or nil when the
	// member does not exist.
	UpdateMember(ctx context.Context, id domain.MemberID, updates MemberUpdates) (*domain.Member, error)
	// RemoveMember deletes a membership row. Reports whether a row was deleted.
	RemoveMember(ctx context.Context, id domain.MemberID) (bool, error)
	// CountMembersByRole returns the number of members holding the given role.
	CountMembersByRole(ctx context.Context, orgID domain.OrgID, role domain.Role) (int64, error)

	// UpsertProfile inserts or replaces a member's profile.
	UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	// ProfileByMember fetches a member's profile. Returns nil when none exists.
	ProfileByMember(ctx context.Context, memberID domain.MemberID) (*domain.Profile, error)

	// AddTimeOff inserts a time-off entry for a member.
	AddTimeOff(ctx context.Context, entry domain.TimeOffEntry) (*domain.TimeOffEntry, error)
	// TimeOffByMember lists a member's time-off entries ordered by start date.
	TimeOffByMember(ctx context.Context, memberID domain.MemberID) ([]domain.TimeOffEntry, error)
	// DeleteTimeOff deletes a time-off entry owned by the given member.
	// Reports whether a row was deleted.
	DeleteTimeOff(ctx context.Context, memberID domain.MemberID, id domain.TimeOffID) (bool, error)
}
