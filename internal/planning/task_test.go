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

var testTaskID = domain.TaskID(uuid.MustParse("66666666-6666-6666-6666-666666666666"))

func testTask() *domain.Task {
	return &domain.Task{
		ID:        testTaskID,
		OrgID:     testOrgID,
		ProjectID: testProjectID,
		Title:     "Fix login",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.TaskPriorityMedium,
		CreatedBy: domain.UserID(uuid.New()),
	}
}

func TestPlanning_CreateTask(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().ProjectByID(gomock.Any(), testOrgID, testProjectID).Return(testProject(), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CreateTask(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, task domain.Task) (*domain.Task, error) {
				if task.Status != domain.TaskStatusTodo {
					t.Fatalf("expected TODO status, got %s", task.Status)
				}
				if task.Priority != domain.TaskPriorityMedium {
					t.Fatalf("expected medium priority, got %s", task.Priority)
				}
				if task.CreatedBy != testUserID {
					t.Fatalf("unexpected creator %v", task.CreatedBy)
				}
				task.ID = testTaskID

				return &task, nil
			},
		)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	task, err := p.CreateTask(context.Background(), testUserID, testOrgID,
		planning.TaskParams{ProjectID: testProjectID, Title: "Fix login"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != testTaskID {
		t.Fatalf("unexpected task %v", task.ID)
	}
}

func TestPlanning_CreateTask_Validation(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		_, st, p := newTestPlanning(t)
		expectActor(st, testMember(domain.RoleAdmin))

		_, err := p.CreateTask(context.Background(), testUserID, testOrgID,
			planning.TaskParams{ProjectID: testProjectID})
		if !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		_, st, p := newTestPlanning(t)
		expectActor(st, testMember(domain.RoleAdmin))

		_, err := p.CreateTask(context.Background(), testUserID, testOrgID,
			planning.TaskParams{ProjectID: testProjectID, Title: "t", Priority: "URGENT"})
		if !errors.Is(err, serrors.ErrBadRequest) {
			t.Fatalf("expected bad request, got %v", err)
		}
	})
}

func TestPlanning_TaskByID_CreatorSeesOwnTask(t *testing.T) {
	_, st, p := newTestPlanning(t)

	// A guest cannot view project tasks, but the creator exception applies.
	member := testMember(domain.RoleGuest)
	task := testTask()
	task.CreatedBy = testUserID

	expectActor(st, member)
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(task, nil)

	res, err := p.TaskByID(context.Background(), testUserID, testOrgID, testTaskID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != testTaskID {
		t.Fatalf("unexpected task %v", res.ID)
	}
}

func TestPlanning_TaskByID_HiddenFromGuest(t *testing.T) {
	_, st, p := newTestPlanning(t)

	member := testMember(domain.RoleGuest)
	expectActor(st, member)
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().AssignedProjects(gomock.Any(), testOrgID, member.ID).Return([]domain.Project{}, nil)

	_, err := p.TaskByID(context.Background(), testUserID, testOrgID, testTaskID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_Tasks_CursorRoundTrip(t *testing.T) {
	_, st, p := newTestPlanning(t)

	next := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().Tasks(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter storage.TaskFilter) (*storage.TaskPage, error) {
			if filter.OrgID != testOrgID || filter.ProjectID == nil {
				t.Fatalf("unexpected filter %+v", filter)
			}

			return &storage.TaskPage{Tasks: []domain.Task{*testTask()}, NextCursor: &next}, nil
		},
	)

	projectID := testProjectID
	tasks, cursor, err := p.Tasks(context.Background(), testUserID, testOrgID,
		planning.TaskListFilter{ProjectID: &projectID, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	parsed, err := time.Parse(time.RFC3339Nano, cursor)
	if err != nil {
		t.Fatalf("cursor is not RFC3339: %v", err)
	}
	if !parsed.Equal(next) {
		t.Fatalf("cursor round trip lost time: %v", parsed)
	}
}

func TestPlanning_Tasks_InvalidCursor(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))

	projectID := testProjectID
	_, _, err := p.Tasks(context.Background(), testUserID, testOrgID,
		planning.TaskListFilter{ProjectID: &projectID, Cursor: "yesterday"})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPlanning_UpdateTask_UnknownStatus(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)

	status := domain.TaskStatus("ARCHIVED")
	_, err := p.UpdateTask(context.Background(), testUserID, testOrgID, testTaskID,
		planning.TaskChanges{Status: &status})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPlanning_MoveTask_ToColumn(t *testing.T) {
	_, st, p := newTestPlanning(t)

	column := &domain.Column{ID: domain.ColumnID(uuid.New()), BoardID: testBoardID}
	position := 1

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().ColumnByID(gomock.Any(), column.ID).Return(column, nil)
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(testBoard(), nil)
	st.EXPECT().UpdateTask(gomock.Any(), testOrgID, testTaskID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.OrgID, _ domain.TaskID,
			updates storage.TaskUpdates) (*domain.Task, error) {
			if updates.BoardID == nil || *updates.BoardID == nil || **updates.BoardID != testBoardID {
				t.Fatalf("expected board placement, got %v", updates.BoardID)
			}
			if updates.ColumnID == nil || *updates.ColumnID == nil || **updates.ColumnID != column.ID {
				t.Fatalf("expected column placement, got %v", updates.ColumnID)
			}
			if updates.Position == nil || *updates.Position != position {
				t.Fatalf("expected position 1, got %v", updates.Position)
			}

			return testTask(), nil
		},
	)

	if _, err := p.MoveTask(context.Background(), testUserID, testOrgID, testTaskID,
		planning.TaskPlacement{ColumnID: &column.ID, Position: &position}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_MoveTask_ColumnOnForeignProject(t *testing.T) {
	_, st, p := newTestPlanning(t)

	column := &domain.Column{ID: domain.ColumnID(uuid.New()), BoardID: testBoardID}
	foreign := testBoard()
	foreign.ProjectID = domain.ProjectID(uuid.New())

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().ColumnByID(gomock.Any(), column.ID).Return(column, nil)
	st.EXPECT().BoardByID(gomock.Any(), testOrgID, testBoardID).Return(foreign, nil)

	_, err := p.MoveTask(context.Background(), testUserID, testOrgID, testTaskID,
		planning.TaskPlacement{ColumnID: &column.ID})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPlanning_MoveTask_ToBacklog(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().UpdateTask(gomock.Any(), testOrgID, testTaskID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.OrgID, _ domain.TaskID,
			updates storage.TaskUpdates) (*domain.Task, error) {
			if updates.BoardID == nil || *updates.BoardID != nil {
				t.Fatalf("expected board cleared, got %v", updates.BoardID)
			}
			if updates.SprintID == nil || *updates.SprintID != nil {
				t.Fatalf("expected sprint cleared, got %v", updates.SprintID)
			}

			return testTask(), nil
		},
	)

	if _, err := p.MoveTask(context.Background(), testUserID, testOrgID, testTaskID,
		planning.TaskPlacement{Backlog: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_MoveTask_IntoCompletedSprint(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().SprintByID(gomock.Any(), testOrgID, testSprintID).
		Return(testSprint(domain.SprintStatusCompleted), nil)

	sprintID := testSprintID
	_, err := p.MoveTask(context.Background(), testUserID, testOrgID, testTaskID,
		planning.TaskPlacement{SprintID: &sprintID})
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestPlanning_MoveTask_EmptyPlacement(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)

	_, err := p.MoveTask(context.Background(), testUserID, testOrgID, testTaskID,
		planning.TaskPlacement{})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPlanning_AssignTask(t *testing.T) {
	_, st, p := newTestPlanning(t)

	assignee := &domain.Member{ID: domain.MemberID(uuid.New()), OrgID: testOrgID}

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().MemberByID(gomock.Any(), assignee.ID).Return(assignee, nil)
	st.EXPECT().UpdateTask(gomock.Any(), testOrgID, testTaskID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.OrgID, _ domain.TaskID,
			updates storage.TaskUpdates) (*domain.Task, error) {
			if updates.AssigneeMemberID == nil || *updates.AssigneeMemberID == nil ||
				**updates.AssigneeMemberID != assignee.ID {
				t.Fatalf("expected assignee set, got %v", updates.AssigneeMemberID)
			}

			return testTask(), nil
		},
	)

	if _, err := p.AssignTask(context.Background(), testUserID, testOrgID, testTaskID,
		&assignee.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_AssignTask_Unassign(t *testing.T) {
	_, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().UpdateTask(gomock.Any(), testOrgID, testTaskID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.OrgID, _ domain.TaskID,
			updates storage.TaskUpdates) (*domain.Task, error) {
			if updates.AssigneeMemberID == nil || *updates.AssigneeMemberID != nil {
				t.Fatalf("expected assignee cleared, got %v", updates.AssigneeMemberID)
			}

			return testTask(), nil
		},
	)

	if _, err := p.AssignTask(context.Background(), testUserID, testOrgID, testTaskID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPlanning_AssignTask_CrossTenantMemberHidden(t *testing.T) {
	_, st, p := newTestPlanning(t)

	stranger := &domain.Member{ID: domain.MemberID(uuid.New()), OrgID: domain.OrgID(uuid.New())}

	expectActor(st, testMember(domain.RoleAdmin))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	st.EXPECT().MemberByID(gomock.Any(), stranger.ID).Return(stranger, nil)

	_, err := p.AssignTask(context.Background(), testUserID, testOrgID, testTaskID, &stranger.ID)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPlanning_DeleteTask(t *testing.T) {
	ctrl, st, p := newTestPlanning(t)

	expectActor(st, testMember(domain.RoleOwner))
	st.EXPECT().TaskByID(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteTask(gomock.Any(), testOrgID, testTaskID).Return(testTask(), nil)
		tx.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(&domain.AuditEntry{}, nil)
	})

	if err := p.DeleteTask(context.Background(), testUserID, testOrgID, testTaskID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
