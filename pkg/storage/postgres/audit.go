package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

const auditTable = "audit_logs"

type PgAudit struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID uuid.UUID `db:"org_id"`

	ActorUserID  uuid.UUID       `db:"actor_user_id"`
	Action       string          `db:"action"`
	ResourceType string          `db:"resource_type"`
	ResourceID   string          `db:"resource_id"`
	Metadata     json.RawMessage `db:"metadata"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAudit) ToDomain() (*domain.AuditEntry, error) {
	var metadata map[string]any
	if len(p.Metadata) > 0 {
		if err := json.Unmarshal(p.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("could not unmarshal audit metadata: %w", err)
		}
	}

	return &domain.AuditEntry{
		ID:           domain.AuditID(p.ID),
		OrgID:        domain.OrgID(p.OrgID),
		ActorUserID:  domain.UserID(p.ActorUserID),
		Action:       p.Action,
		ResourceType: p.ResourceType,
		ResourceID:   p.ResourceID,
		Metadata:     metadata,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (p *PgAudit) FromDomain(entry domain.AuditEntry) error {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("could not marshal audit metadata: %w", err)
	}

	*p = PgAudit{
		ID:           uuid.UUID(entry.ID),
		OrgID:        uuid.UUID(entry.OrgID),
		ActorUserID:  uuid.UUID(entry.ActorUserID),
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Metadata:     raw,
	}

	return nil
}

func (p *PgSQL) AppendAudit(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	var pgEntry PgAudit
	if err := pgEntry.FromDomain(entry); err != nil {
		return nil, err
	}

	var row PgAudit
	if _, err := p.Builder.Insert(auditTable).
		Rows(pgEntry).
		Returning(&PgAudit{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store audit entry into pg: %w", err)
	}

	return row.ToDomain()
}

// AuditEntries returns one page of the audit trail ordered by
// created_at DESC, id DESC.
func (p *PgSQL) AuditEntries(ctx context.Context,
	orgID domain.OrgID,
	cursor *time.Time,
	limit uint) (*storage.AuditPage, error) {
	w := []goqu.Expression{
		goqu.I("org_id").Eq(uuid.UUID(orgID)),
	}
	if cursor != nil {
		w = append(w, goqu.I("created_at").Lt(*cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgAudit
	if err := p.Builder.From(auditTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch audit entries from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	entries := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		entries = append(entries, *d)
	}

	return &storage.AuditPage{
		Entries:    entries,
		NextCursor: nextCursor,
	}, nil
}
