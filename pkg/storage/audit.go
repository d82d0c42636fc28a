package storage

import (
	"context"
	"time"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

// AuditPage is one page of an audit trail listing.
type AuditPage struct {
	Entries []domain.AuditEntry
	// NextCursor is nil on the last page.
	NextCursor *time.Time
}

// AuditStorage defines persistence operations for the audit trail.
type AuditStorage interface {
	// AppendAudit records an audit entry.
	AppendAudit(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error)
	// AuditEntries lists an organization's audit trail, newest first. A nil
	// cursor starts at the most recent entry.
	AuditEntries(ctx context.Context, orgID domain.OrgID, cursor *time.Time, limit uint) (*AuditPage, error)
}
