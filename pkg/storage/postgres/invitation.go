package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

const invitationsTable = "invitations"

type PgInvitation struct {
	ID    uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID uuid.UUID `db:"org_id"`

	Email           string        `db:"email"`
	Role            string        `db:"role"`
	PermissionSetID uuid.NullUUID `db:"permission_set_id"`

	Token  string `db:"token"`
	Status string `db:"status"`

	InvitedBy uuid.UUID `db:"invited_by"`
	ExpiresAt time.Time `db:"expires_at"`

	CreatedAt  time.Time    `db:"created_at" goqu:"skipinsert"`
	AcceptedAt sql.NullTime `db:"accepted_at" goqu:"skipinsert"`
}

func (p *PgInvitation) ToDomain() *domain.Invitation {
	var setID *domain.PermissionSetID
	if p.PermissionSetID.Valid {
		id := domain.PermissionSetID(p.PermissionSetID.UUID)
		setID = &id
	}

	return &domain.Invitation{
		ID:              domain.InvitationID(p.ID),
		OrgID:           domain.OrgID(p.OrgID),
		Email:           p.Email,
		Role:            domain.Role(p.Role),
		PermissionSetID: setID,
		Token:           p.Token,
		Status:          domain.InvitationStatus(p.Status),
		InvitedBy:       domain.UserID(p.InvitedBy),
		ExpiresAt:       p.ExpiresAt,
		CreatedAt:       p.CreatedAt,
		AcceptedAt:      p.AcceptedAt.Time,
	}
}

func (p *PgInvitation) FromDomain(invitation domain.Invitation) {
	var setID uuid.NullUUID
	if invitation.PermissionSetID != nil {
		setID = uuid.NullUUID{UUID: uuid.UUID(*invitation.PermissionSetID), Valid: true}
	}

	*p = PgInvitation{
		ID:              uuid.UUID(invitation.ID),
		OrgID:           uuid.UUID(invitation.OrgID),
		Email:           invitation.Email,
		Role:            string(invitation.Role),
		PermissionSetID: setID,
		Token:           invitation.Token,
		Status:          string(invitation.Status),
		InvitedBy:       uuid.UUID(invitation.InvitedBy),
		ExpiresAt:       invitation.ExpiresAt,
	}
}

func (p *PgSQL) CreateInvitation(ctx context.Context,
	invitation domain.Invitation) (*domain.Invitation, error) {
	var pgInvitation PgInvitation
	pgInvitation.FromDomain(invitation)

	var row PgInvitation
	if _, err := p.Builder.Insert(invitationsTable).
		Rows(pgInvitation).
		Returning(&PgInvitation{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store invitation into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) InvitationByID(ctx context.Context,
	orgID domain.OrgID,
	id domain.InvitationID) (*domain.Invitation, error) {
	var row PgInvitation
	found, err := p.Builder.From(invitationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch invitation by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) InvitationByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	var row PgInvitation
	found, err := p.Builder.From(invitationsTable).
		Where(goqu.I("token").Eq(token)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch invitation by token: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Invitations(ctx context.Context, orgID domain.OrgID) ([]domain.Invitation, error) {
	var rows []PgInvitation
	if err := p.Builder.From(invitationsTable).
		Where(goqu.I("org_id").Eq(uuid.UUID(orgID))).
		Order(goqu.I("created_at").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch invitations from pg: %w", err)
	}

	out := make([]domain.Invitation, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdateInvitationStatus(ctx context.Context,
	id domain.InvitationID,
	status domain.InvitationStatus) (*domain.Invitation, error) {
	rec := goqu.Record{
		"status": string(status),
	}
	if status == domain.InvitationStatusAccepted {
		rec["accepted_at"] = goqu.L("CURRENT_TIMESTAMP")
	}

	var row PgInvitation
	found, err := p.Builder.Update(invitationsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgInvitation{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update invitation status in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
