package planning_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
	mockstorage "github.com/lufutu/scrumsan-sub003/pkg/storage/mock"
)

var testSprintID = domain.SprintID(uuid.MustParse("55555555-5555-5555-5555-555555555555"))

func testSprint(status domain.SprintStatus) *domain.Sprint {
	return &domain.Sprint{
		ID:        testSprintID,
		ProjectID: testProjectID,
		Name:      "Sprint 1",
		Slug:      "sprint-1",
		Status:    status,
	}
}

func TestPlanning_CreateSprint(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().ProjectByID(gomock.Any(), testOrgID, testProjectID).Return(testProject(), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateSprint(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sprint domain.Sprint) (*domain.Sprint, error) {
				if sprint.Status != domain.SprintStatusPlanned {
					t.Fatalf("expected planned sprint, got %s", sprint.Status)
				}
				if sprint.Slug != "sprint-1" {
					t.Fatalf("unexpected slug %q", sprint.Slug)
				}
				sprint.ID = testSprintID

				return &sprint, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	sprint, err := p.CreateSprint(context.Background(), testUserID, testOrgID, testProjectID,
		planning.SprintParams{Name: "Sprint 1", Goal: "ship the beta"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sprint.ID != testSprintID {
		t.Fatalf("unexpected sprint %v", sprint.ID)
	}
}

func TestPlanning_CreateSprint_DatesReversed(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))

	starts := time.Now()
	_, err := p.CreateSprint(context.Background(), testUserID, testOrgID, testProjectID,
		planning.SprintParams{Name: "Sprint 1", StartsOn: starts, EndsOn: starts.Add(-time.Hour)})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPlanning_StartSprint(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusPlanned), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateSprint(gomock.Any(), testOrgID, testSprintID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.OrgID, _ domain.SprintID,
				updates storage.SprintUpdates) (*domain.Sprint, error) {
				if updates.Status == nil || *updates.Status != domain.SprintStatusActive {
					t.Fatalf("expected active status, got %v", updates.Status)
				}
				if updates.StartsOn == nil {
					t.Fatal("expected startsOn to default to now")
				}

				return testSprint(domain.SprintStatusActive), nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	sprint, err := p.StartSprint(context.Background(), testUserID, testOrgID, testSprintID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sprint.Status != domain.SprintStatusActive {
		t.Fatalf("unexpected status %s", sprint.Status)
	}
}

func TestPlanning_StartSprint_AlreadyActive(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusActive), nil)

	_, err := p.StartSprint(context.Background(), testUserID, testOrgID, testSprintID)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPlanning_StartSprint_AnotherSprintActive(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusPlanned), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateSprint(gomock.Any(), testOrgID, testSprintID, gomock.Any()).
			Return(nil, storage.ErrDuplicate)
	})

	_, err := p.StartSprint(context.Background(), testUserID, testOrgID, testSprintID)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPlanning_FinishSprint(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusActive), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateSprint(gomock.Any(), testOrgID, testSprintID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.OrgID, _ domain.SprintID,
				updates storage.SprintUpdates) (*domain.Sprint, error) {
				if updates.Status == nil || *updates.Status != domain.SprintStatusCompleted {
					t.Fatalf("expected completed status, got %v", updates.Status)
				}

				return testSprint(domain.SprintStatusCompleted), nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if _, err := p.FinishSprint(context.Background(), testUserID, testOrgID, testSprintID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_FinishSprint_NotActive(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusPlanned), nil)

	_, err := p.FinishSprint(context.Background(), testUserID, testOrgID, testSprintID)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPlanning_SprintStats(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusActive), nil)
	st.EXPECT().SprintTaskCounts(gomock.Any(), testSprintID).Return(&domain.SprintStats{
		SprintID: testSprintID,
		Total:    3,
		ByStatus: map[string]int{"TODO": 1, "DONE": 2},
	}, nil)

	stats, err := p.SprintStats(context.Background(), testUserID, testOrgID, testSprintID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || stats.ByStatus["DONE"] != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestPlanning_DeleteSprint_NotFound(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleOwner))
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusPlanned), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteSprint(gomock.Any(), testOrgID, testSprintID).Return(false, nil)
	})

	err := p.DeleteSprint(context.Background(), testUserID, testOrgID, testSprintID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
