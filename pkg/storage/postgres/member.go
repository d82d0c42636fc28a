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

const (
	membersTable  = "organization_members"
	profilesTable = "member_profiles"
	timeOffTable  = "time_off_entries"
)

type PgMember struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	OrgID  uuid.UUID `db:"org_id"`
	UserID uuid.UUID `db:"user_id"`

	Role            string        `db:"role"`
	PermissionSetID uuid.NullUUID `db:"permission_set_id"`

	DisplayName string `db:"display_name"`
	Email       string `db:"email"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgMember) ToDomain() *domain.Member {
	var setID *domain.PermissionSetID
	if p.PermissionSetID.Valid {
		id := domain.PermissionSetID(p.PermissionSetID.UUID)
		setID = &id
	}

	return &domain.Member{
		ID:              domain.MemberID(p.ID),
		OrgID:           domain.OrgID(p.OrgID),
		UserID:          domain.UserID(p.UserID),
		Role:            domain.Role(p.Role),
		PermissionSetID: setID,
		DisplayName:     p.DisplayName,
		Email:           p.Email,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

func (p *PgMember) FromDomain(member domain.Member) {
	var setID uuid.NullUUID
	if member.PermissionSetID != nil {
		setID = uuid.NullUUID{UUID: uuid.UUID(*member.PermissionSetID), Valid: true}
	}

	*p = PgMember{
		ID:              uuid.UUID(member.ID),
		OrgID:           uuid.UUID(member.OrgID),
		UserID:          uuid.UUID(member.UserID),
		Role:            string(member.Role),
		PermissionSetID: setID,
		DisplayName:     member.DisplayName,
		Email:           member.Email,
	}
}

type PgProfile struct {
	MemberID  uuid.UUID `db:"member_id"`
	Title     string    `db:"title"`
	Bio       string    `db:"bio"`
	AvatarURL string    `db:"avatar_url"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProfile) ToDomain() *domain.Profile {
	return &domain.Profile{
		MemberID:  domain.MemberID(p.MemberID),
		Title:     p.Title,
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		UpdatedAt: p.UpdatedAt,
	}
}

type PgTimeOff struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	MemberID uuid.UUID `db:"member_id"`

	StartsOn time.Time `db:"starts_on"`
	EndsOn   time.Time `db:"ends_on"`
	Reason   string    `db:"reason"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgTimeOff) ToDomain() *domain.TimeOffEntry {
	return &domain.TimeOffEntry{
		ID:        domain.TimeOffID(p.ID),
		MemberID:  domain.MemberID(p.MemberID),
		StartsOn:  p.StartsOn,
		EndsOn:    p.EndsOn,
		Reason:    p.Reason,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgSQL) AddMember(ctx context.Context, member domain.Member) (*domain.Member, error) {
	var pgMember PgMember
	pgMember.FromDomain(member)

	var row PgMember
	if _, err := p.Builder.Insert(membersTable).
		Rows(pgMember).
		Returning(&PgMember{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store member into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) MemberByID(ctx context.Context, id domain.MemberID) (*domain.Member, error) {
	var row PgMember
	found, err := p.Builder.From(membersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch member by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) MemberByUser(ctx context.Context,
	orgID domain.OrgID,
	userID domain.UserID) (*domain.Member, error) {
	var row PgMember
	found, err := p.Builder.From(membersTable).
		Where(
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch member by user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Members(ctx context.Context, orgID domain.OrgID) ([]domain.Member, error) {
	var rows []PgMember
	if err := p.Builder.From(membersTable).
		Where(goqu.I("org_id").Eq(uuid.UUID(orgID))).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch members from pg: %w", err)
	}

	out := make([]domain.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdateMember(ctx context.Context,
	id domain.MemberID,
	updates storage.MemberUpdates) (*domain.Member, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Role != nil {
		rec["role"] = string(*updates.Role)
	}
	if updates.DisplayName != nil {
		rec["display_name"] = *updates.DisplayName
	}
	switch {
	case updates.ClearPermissionSet:
		rec["permission_set_id"] = goqu.L("NULL")
	case updates.PermissionSetID != nil:
		rec["permission_set_id"] = uuid.UUID(*updates.PermissionSetID)
	}

	var row PgMember
	found, err := p.Builder.Update(membersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
	).Returning(&PgMember{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update member in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RemoveMember(ctx context.Context, id domain.MemberID) (bool, error) {
	res, err := p.Builder.Delete(membersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not remove member from pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) CountMembersByRole(ctx context.Context,
	orgID domain.OrgID,
	role domain.Role) (int64, error) {
	count, err := p.Builder.From(membersTable).
		Where(
			goqu.I("org_id").Eq(uuid.UUID(orgID)),
			goqu.I("role").Eq(string(role)),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count members by role: %w", err)
	}

	return count, nil
}

func (p *PgSQL) UpsertProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	pgProfile := PgProfile{
		MemberID:  uuid.UUID(profile.MemberID),
		Title:     profile.Title,
		Bio:       profile.Bio,
		AvatarURL: profile.AvatarURL,
	}

	var row PgProfile
	if _, err := p.Builder.Insert(profilesTable).
		Rows(pgProfile).
		OnConflict(goqu.DoUpdate("member_id", goqu.Record{
			"title":      pgProfile.Title,
			"bio":        pgProfile.Bio,
			"avatar_url": pgProfile.AvatarURL,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not upsert profile into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ProfileByMember(ctx context.Context, memberID domain.MemberID) (*domain.Profile, error) {
	var row PgProfile
	found, err := p.Builder.From(profilesTable).
		Where(goqu.I("member_id").Eq(uuid.UUID(memberID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch profile by member: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) AddTimeOff(ctx context.Context, entry domain.TimeOffEntry) (*domain.TimeOffEntry, error) {
	pgEntry := PgTimeOff{
		MemberID: uuid.UUID(entry.MemberID),
		StartsOn: entry.StartsOn,
		EndsOn:   entry.EndsOn,
		Reason:   entry.Reason,
	}

	var row PgTimeOff
	if _, err := p.Builder.Insert(timeOffTable).
		Rows(pgEntry).
		Returning(&PgTimeOff{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store time off entry into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TimeOffByMember(ctx context.Context,
	memberID domain.MemberID) ([]domain.TimeOffEntry, error) {
	var rows []PgTimeOff
	if err := p.Builder.From(timeOffTable).
		Where(goqu.I("member_id").Eq(uuid.UUID(memberID))).
		Order(goqu.I("starts_on").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch time off entries from pg: %w", err)
	}

	out := make([]domain.TimeOffEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) DeleteTimeOff(ctx context.Context,
	memberID domain.MemberID,
	id domain.TimeOffID) (bool, error) {
	res, err := p.Builder.Delete(timeOffTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("member_id").Eq(uuid.UUID(memberID)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete time off entry from pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected > 0, nil
}
