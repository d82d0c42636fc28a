package planning_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

var testBoardID = domain.BoardID(uuid.MustParse("44444444-4444-4444-4444-444444444444"))

func testBoard() *domain.Board {
	return &domain.Board{
		ID:        testBoardID,
		OrgID:     testOrgID,
		ProjectID: testProjectID,
		Name:      "Main",
		Slug:      "main",
	}
}

func TestPlanning_CreateBoard(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().ProjectByID(gomock.Any(), testOrgID, testProjectID).Return(testProject(), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateBoard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, board domain.Board) (*domain.Board, error) {
				if board.Slug != "main" {
					t.Fatalf("expected slug main, got %q", board.Slug)
				}
				if board.ProjectID != testProjectID {
					t.Fatalf("unexpected project %v", board.ProjectID)
				}
				board.ID = testBoardID

				return &board, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	board, err := p.CreateBoard(context.Background(), testUserID, testOrgID, testProjectID, "Main")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != testBoardID {
		t.Fatalf("unexpected board %v", board.ID)
	}
}

func TestPlanning_CreateBoard_UnknownProject(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().ProjectByID(gomock.Any(), testOrgID, testProjectID).Return(nil, nil)

	_, err := p.CreateBoard(context.Background(), testUserID, testOrgID, testProjectID, "Main")
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_CreateBoard_MemberForbidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	member := testMember(domain.RoleMember)
	expectActor(st, member)
	st.EXPECT().AssignedProjects(gomock.Any(), testOrgID, member.ID).
		Return([]domain.Project{*testProject()}, nil)

	_, err := p.CreateBoard(context.Background(), testUserID, testOrgID, testProjectID, "Main")
	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestPlanning_BoardByRef_Slug(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().BoardBySlug(gomock.Any(), testProjectID, "main").Return(testBoard(), nil)

	board, err := p.BoardByRef(context.Background(), testUserID, testOrgID, testProjectID,
		domain.Ref{Slug: "main"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.ID != testBoardID {
		t.Fatalf("unexpected board %v", board.ID)
	}
}

func TestPlanning_BoardByRef_OtherProjectHidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	foreign := testBoard()
	foreign.ProjectID = domain.ProjectID(uuid.New())

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(foreign, nil)

	_, err := p.BoardByRef(context.Background(), testUserID, testOrgID, testProjectID,
		domain.Ref{ID: testBoardID.String()})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_UpdateBoard_SlugTaken(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
	st.EXPECT().UpdateBoard(gomock.Any(), testOrgID, testBoardID, gomock.Any()).
		Return(nil, storage.ErrDuplicate)

	raw := "Taken"
	_, err := p.UpdateBoard(context.Background(), testUserID, testOrgID, testBoardID,
		storage.BoardUpdates{Slug: &raw})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPlanning_DeleteBoard(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleOwner))
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteBoard(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if err := p.DeleteBoard(context.Background(), testUserID, testOrgID, testBoardID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_CreateColumn(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
	st.EXPECT().CreateColumn(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, column domain.Column) (*domain.Column, error) {
			if column.BoardID != testBoardID || column.Position != 2 {
				t.Fatalf("unexpected column %+v", column)
			}
			column.ID = domain.ColumnID(uuid.New())

			return &column, nil
		},
	)

	column, err := p.CreateColumn(context.Background(), testUserID, testOrgID, testBoardID, "Done", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if column.Name != "Done" {
		t.Fatalf("unexpected column name %q", column.Name)
	}
}

func TestPlanning_UpdateColumn_OtherBoardHidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	column := &domain.Column{
		ID:      domain.ColumnID(uuid.New()),
		BoardID: domain.BoardID(uuid.New()),
		Name:    "Doing",
	}

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
	st.EXPECT().ColumnByID(gomock.Any(), column.ID).Return(column, nil)

	name := "Review"
	_, err := p.UpdateColumn(context.Background(), testUserID, testOrgID, testBoardID, column.ID,
		storage.ColumnUpdates{Name: &name})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_DeleteColumn(t *testing.T) {
	_, st, p := newTestPlanning(t)

	column := &domain.Column{
		ID:      domain.ColumnID(uuid.New()),
		BoardID: testBoardID,
		Name:    "Done",
	}

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
	st.EXPECT().ColumnByID(gomock.Any(), column.ID).Return(column, nil)
	st.EXPECT().DeleteColumn(gomock.Any(), column.ID).Return(true, nil)

	if err := p.DeleteColumn(context.Background(), testUserID, testOrgID, testBoardID,
		column.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
