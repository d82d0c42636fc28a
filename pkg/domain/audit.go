package domain

import "time"

// AuditEntry records a mutating action performed within an organization.
// Entries are append-only.
type AuditEntry struct {
	ID    AuditID `json:"id"`
	OrgID OrgID   `json:"orgId"`

	ActorUserID  UserID `json:"actorUserId"`
	Action       string `json:"action"`
	ResourceType string `json:"resourceType"`
	// ResourceID is empty for actions that do not target a single resource.
	ResourceID string `json:"resourceId,omitempty"`
	// Metadata holds action-specific details as a JSON object.
	Metadata map[string]any `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
