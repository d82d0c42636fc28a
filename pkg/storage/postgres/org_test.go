package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_CreateOrg(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org, err := pgSQL.CreateOrg(ctx, domain.Organization{
		Name:        "Acme",
		Slug:        "acme",
		Description: "widgets",
	})
	require.NoError(t, err)
	require.NotNil(t, org)
	require.Equal(t, "acme", org.Slug)
	require.False(t, org.CreatedAt.IsZero())

	// duplicate slug
	_, err = pgSQL.CreateOrg(ctx, domain.Organization{Name: "Other", Slug: "acme"})
	require.ErrorIs(t, err, storage.ErrDuplicate)
}

func TestPgSQL_OrgLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)

	byID, err := pgSQL.OrgByID(ctx, org.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, org.Slug, byID.Slug)

	bySlug, err := pgSQL.OrgBySlug(ctx, org.Slug)
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	require.Equal(t, org.ID, bySlug.ID)

	missing, err := pgSQL.OrgBySlug(ctx, "no-such-slug")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateOrg(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	org := createTestOrg(t, pgSQL)

	name := "Renamed"
	updated, err := pgSQL.UpdateOrg(ctx, org.ID, storage.OrgUpdates{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, org.Slug, updated.Slug)
	require.False(t, updated.UpdatedAt.IsZero())

	// updating a missing org returns nil
	missing, err := pgSQL.UpdateOrg(ctx, domain.OrgID(uuid.New()), storage.OrgUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_OrgsForUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	orgA := createTestOrg(t, pgSQL)
	orgB := createTestOrg(t, pgSQL)
	userID := domain.UserID(uuid.New())

	_, err := pgSQL.AddMember(ctx, domain.Member{OrgID: orgA.ID, UserID: userID, Role: domain.RoleOwner})
	require.NoError(t, err)
	_, err = pgSQL.AddMember(ctx, domain.Member{OrgID: orgB.ID, UserID: userID, Role: domain.RoleMember})
	require.NoError(t, err)

	orgs, err := pgSQL.OrgsForUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orgs, 2)

	// a user with no memberships sees nothing
	none, err := pgSQL.OrgsForUser(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Empty(t, none)
}
