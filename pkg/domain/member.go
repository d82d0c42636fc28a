package domain

import "time"

// Role is a member's base role within an organization. Roles gate what a
// member may do before any custom permission set is consulted.
type Role string

const (
	// RoleOwner has unrestricted access to everything in the organization.
	RoleOwner Role = "owner"
	// RoleAdmin manages members and settings but is still subject to
	// permission-set evaluation where one is attached.
	RoleAdmin Role = "admin"
	// RoleMember is a regular member; without a custom permission set only the
	// minimal default applies.
	RoleMember Role = "member"
	// RoleGuest may only view projects they are assigned to.
	RoleGuest Role = "guest"
)

// ValidRole reports whether the given role is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleGuest:
		return true
	default:
		return false
	}
}

// Member is a user's affiliation record within one organization.
type Member struct {
	ID     MemberID `json:"id"`
	OrgID  OrgID    `json:"orgId"`
	UserID UserID   `json:"userId"`

	// Role is the member's base role.
	Role Role `json:"role"`
	// PermissionSetID points at the custom permission set attached to the
	// member, if any. Nil means the role's default permissions apply.
	PermissionSetID *PermissionSetID `json:"permissionSetId,omitempty"`

	DisplayName string `json:"displayName"`
	Email       string `json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile holds the optional free-form profile attached to a member.
type Profile struct {
	MemberID  MemberID  `json:"memberId"`
	Title     string    `json:"title"`
	Bio       string    `json:"bio"`
	AvatarURL string    `json:"avatarUrl"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TimeOffEntry records a member's planned absence.
type TimeOffEntry struct {
	ID       TimeOffID `json:"id"`
	MemberID MemberID  `json:"memberId"`

	StartsOn time.Time `json:"startsOn"`
	EndsOn   time.Time `json:"endsOn"`
	Reason   string    `json:"reason"`

	CreatedAt time.Time `json:"createdAt"`
}
