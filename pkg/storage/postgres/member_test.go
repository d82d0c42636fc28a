package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_AddMember(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)
	userID := domain.UserID(uuid.New())

	member, err := pgSQL.AddMember(ctx, domain.Member{
		OrgID:  org.ID,
		UserID: userID,
		Role:   domain.RoleMember,
		Email:  "m@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, member)
	require.Equal(t, domain.RoleMember, member.Role)
	require.Nil(t, member.PermissionSetID)

	// same user twice in one org
	_, err = pgSQL.AddMember(ctx, domain.Member{OrgID: org.ID, UserID: userID, Role: domain.RoleGuest})
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_UpdateMember_PermissionSet(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)
	member := createTestMember(t, pgSQL, org.ID, domain.RoleMember)

	set, err := pgSQL.CreatePermissionSet(ctx, domain.PermissionSet{
		OrgID: org.ID,
		Name:  "Developers",
		Config: domain.PermissionConfig{
			Projects: domain.ScopedFlags{ViewAll: true},
		},
	})
	require.NoError(t, err)

	// attach
	updated, err := pgSQL.UpdateMember(ctx, member.ID, storage.MemberUpdates{
		PermissionSetID: &set.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.PermissionSetID)
	require.Equal(t, set.ID, *updated.PermissionSetID)

	// detach
	updated, err = pgSQL.UpdateMember(ctx, member.ID, storage.MemberUpdates{
		ClearPermissionSet: true,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Nil(t, updated.PermissionSetID)

	// deleting the set detaches remaining references via the schema
	updated, err = pgSQL.UpdateMember(ctx, member.ID, storage.MemberUpdates{PermissionSetID: &set.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.PermissionSetID)

	deleted, err := pgSQL.DeletePermissionSet(ctx, org.ID, set.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err := pgSQL.MemberByID(ctx, member.ID)
	require.NoError(t, err)
	require.Nil(t, got.PermissionSetID)
}

func TestPgSQL_RemoveMember_And_CountByRole(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)
	owner := createTestMember(t, pgSQL, org.ID, domain.RoleOwner)
	createTestMember(t, pgSQL, org.ID, domain.RoleOwner)
	createTestMember(t, pgSQL, org.ID, domain.RoleMember)

	count, err := pgSQL.CountMembersByRole(ctx, org.ID, domain.RoleOwner)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	removed, err := pgSQL.RemoveMember(ctx, owner.ID)
	require.NoError(t, err)
	require.True(t, removed)

	count, err = pgSQL.CountMembersByRole(ctx, org.ID, domain.RoleOwner)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// removing again reports no rows
	removed, err = pgSQL.RemoveMember(ctx, owner.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestPgSQL_Profiles(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)
	member := createTestMember(t, pgSQL, org.ID, domain.RoleMember)

	// no profile yet
	none, err := pgSQL.ProfileByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Nil(t, none)

	// insert
	profile, err := pgSQL.UpsertProfile(ctx, domain.Profile{
		MemberID: member.ID,
		Title:    "Engineer",
	})
	require.NoError(t, err)
	require.Equal(t, "Engineer", profile.Title)

	// update in place
	profile, err = pgSQL.UpsertProfile(ctx, domain.Profile{
		MemberID: member.ID,
		Title:    "Senior Engineer",
		Bio:      "ships things",
	})
	require.NoError(t, err)
	require.Equal(t, "Senior Engineer", profile.Title)
	require.Equal(t, "ships things", profile.Bio)
}

func TestPgSQL_TimeOff(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)
	member := createTestMember(t, pgSQL, org.ID, domain.RoleMember)
	other := createTestMember(t, pgSQL, org.ID, domain.RoleMember)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	entry, err := pgSQL.AddTimeOff(ctx, domain.TimeOffEntry{
		MemberID: member.ID,
		StartsOn: start,
		EndsOn:   start.AddDate(0, 0, 5),
		Reason:   "vacation",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)

	entries, err := pgSQL.TimeOffByMember(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// another member cannot delete it
	deleted, err := pgSQL.DeleteTimeOff(ctx, other.ID, entry.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = pgSQL.DeleteTimeOff(ctx, member.ID, entry.ID)
	require.NoError(t, err)
	require.True(t, deleted)
}
