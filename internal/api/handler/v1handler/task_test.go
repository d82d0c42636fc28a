package v1handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

var (
	testProjectID = domain.ProjectID(uuid.MustParse("33333333-3333-3333-3333-333333333333"))
	testTaskID    = domain.TaskID(uuid.MustParse("66666666-6666-6666-6666-666666666666"))
)

func testTask() *domain.Task {
	return &domain.Task{
		ID:        testTaskID,
		OrgID:     testOrgID,
		ProjectID: testProjectID,
		Title:     "Fix login flow",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.TaskPriorityMedium,
		CreatedBy: testUserID,
	}
}

func TestCreateTask(t *testing.T) {
	api := newTestAPI(t, 0)

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)
	api.planning.EXPECT().
		CreateTask(gomock.Any(), testUserID, testOrgID, planning.TaskParams{
			ProjectID: testProjectID,
			Title:     "Fix login flow",
		}).
		Return(testTask(), nil)

	w := api.do(t, http.MethodPost, "/v1/orgs/acme/tasks", map[string]any{
		"projectId": testProjectID.String(),
		"title":     "Fix login flow",
	})

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestListTasks_FilterFromQuery(t *testing.T) {
	api := newTestAPI(t, 0)

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)
	api.planning.EXPECT().
		Tasks(gomock.Any(), testUserID, testOrgID, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.UserID, _ domain.OrgID,
			filter planning.TaskListFilter) ([]domain.Task, string, error) {
			require.NotNil(t, filter.ProjectID)
			require.Equal(t, testProjectID, *filter.ProjectID)
			require.True(t, filter.Backlog)
			require.NotNil(t, filter.Status)
			require.Equal(t, domain.TaskStatusTodo, *filter.Status)
			require.Equal(t, uint(5), filter.Limit)
			require.Equal(t, "2026-01-02T03:04:05Z", filter.Cursor)

			return []domain.Task{*testTask()}, "next-cursor", nil
		})

	w := api.do(t, http.MethodGet,
		"/v1/orgs/acme/tasks?projectId="+testProjectID.String()+
			"&backlog=true&status=TODO&limit=5&cursor=2026-01-02T03:04:05Z",
		nil)

	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Tasks      []domain.Task `json:"tasks"`
		NextCursor string        `json:"nextCursor"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Tasks, 1)
	require.Equal(t, "next-cursor", page.NextCursor)
}

func TestListTasks_InvalidLimit(t *testing.T) {
	api := newTestAPI(t, 0)

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)

	w := api.do(t, http.MethodGet, "/v1/orgs/acme/tasks?limit=0", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTasks_InvalidProjectID(t *testing.T) {
	api := newTestAPI(t, 0)

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)

	w := api.do(t, http.MethodGet, "/v1/orgs/acme/tasks?projectId=nope", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoveTask_Backlog(t *testing.T) {
	api := newTestAPI(t, 0)

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)
	api.planning.EXPECT().
		MoveTask(gomock.Any(), testUserID, testOrgID, testTaskID, planning.TaskPlacement{Backlog: true}).
		Return(testTask(), nil)

	w := api.do(t, http.MethodPost, "/v1/orgs/acme/tasks/"+testTaskID.String()+"/move",
		map[string]any{"backlog": true})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAssignTask_Unassign(t *testing.T) {
	api := newTestAPI(t, 0)

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)
	api.planning.EXPECT().
		AssignTask(gomock.Any(), testUserID, testOrgID, testTaskID, gomock.Nil()).
		Return(testTask(), nil)

	w := api.do(t, http.MethodPost, "/v1/orgs/acme/tasks/"+testTaskID.String()+"/assign",
		json.RawMessage(`{"memberId": null}`))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetProject_UUIDRedirectsToSlug(t *testing.T) {
	api := newTestAPI(t, 0)

	project := &domain.Project{
		ID:    testProjectID,
		OrgID: testOrgID,
		Name:  "Apollo",
		Slug:  "apollo",
	}

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)
	api.planning.EXPECT().
		ProjectByRef(gomock.Any(), testUserID, testOrgID, domain.Ref{ID: testProjectID.String()}).
		Return(project, nil)

	w := api.do(t, http.MethodGet, "/v1/orgs/acme/projects/"+testProjectID.String(), nil)

	require.Equal(t, http.StatusMovedPermanently, w.Code)
	require.Equal(t, "/v1/orgs/acme/projects/apollo", w.Header().Get("Location"))
}

func TestStartSprint(t *testing.T) {
	api := newTestAPI(t, 0)

	sprintID := domain.SprintID(uuid.MustParse("55555555-5555-5555-5555-555555555555"))
	sprint := &domain.Sprint{
		ID:        sprintID,
		ProjectID: testProjectID,
		Name:      "Sprint 1",
		Slug:      "sprint-1",
		Status:    domain.SprintStatusActive,
	}

	api.workspace.EXPECT().
		OrgByRef(gomock.Any(), testUserID, domain.Ref{Slug: "acme"}).
		Return(testOrg(), nil)
	api.planning.EXPECT().
		StartSprint(gomock.Any(), testUserID, testOrgID, sprintID).
		Return(sprint, nil)

	w := api.do(t, http.MethodPost, "/v1/orgs/acme/sprints/"+sprintID.String()+"/start", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Sprint
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, domain.SprintStatusActive, got.Status)
}
