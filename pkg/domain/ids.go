package domain

import "github.com/google/uuid"

// UserID uniquely identifies an authenticated user. Users are managed by the
// identity provider; the application only ever sees their IDs.
type UserID uuid.UUID

// OrgID uniquely identifies a tenant organization.
type OrgID uuid.UUID

// MemberID uniquely identifies a user's membership record within one
// organization.
type MemberID uuid.UUID

// PermissionSetID uniquely identifies a reusable permission set.
type PermissionSetID uuid.UUID

// ProjectID uniquely identifies a project.
type ProjectID uuid.UUID

// EngagementID uniquely identifies a member's engagement on a project.
type EngagementID uuid.UUID

// BoardID uniquely identifies a kanban board.
type BoardID uuid.UUID

// ColumnID uniquely identifies a column on a board.
type ColumnID uuid.UUID

// SprintID uniquely identifies a sprint.
type SprintID uuid.UUID

// TaskID uniquely identifies a task.
type TaskID uuid.UUID

// InvitationID uniquely identifies an invitation.
type InvitationID uuid.UUID

// TimeOffID uniquely identifies a time-off entry.
type TimeOffID uuid.UUID

// AuditID uniquely identifies an audit log entry.
type AuditID uuid.UUID

// The typed IDs render as canonical UUID strings in JSON and URLs. Methods
// are spelled out per type because Go does not inherit them through named
// types.

func (id UserID) String() string                { return uuid.UUID(id).String() }
func (id UserID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id OrgID) String() string                { return uuid.UUID(id).String() }
func (id OrgID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *OrgID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id MemberID) String() string                { return uuid.UUID(id).String() }
func (id MemberID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *MemberID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id PermissionSetID) String() string                { return uuid.UUID(id).String() }
func (id PermissionSetID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *PermissionSetID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id ProjectID) String() string                { return uuid.UUID(id).String() }
func (id ProjectID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *ProjectID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id EngagementID) String() string                { return uuid.UUID(id).String() }
func (id EngagementID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *EngagementID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id BoardID) String() string                { return uuid.UUID(id).String() }
func (id BoardID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *BoardID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id ColumnID) String() string                { return uuid.UUID(id).String() }
func (id ColumnID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *ColumnID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id SprintID) String() string                { return uuid.UUID(id).String() }
func (id SprintID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *SprintID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id TaskID) String() string                { return uuid.UUID(id).String() }
func (id TaskID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *TaskID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id InvitationID) String() string                { return uuid.UUID(id).String() }
func (id InvitationID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *InvitationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id TimeOffID) String() string                { return uuid.UUID(id).String() }
func (id TimeOffID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *TimeOffID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id AuditID) String() string                { return uuid.UUID(id).String() }
func (id AuditID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *AuditID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
