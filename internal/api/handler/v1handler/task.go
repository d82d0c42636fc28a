package v1handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

type createTaskRequest struct {
	ProjectID   domain.ProjectID    `json:"projectId" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Priority    domain.TaskPriority `json:"priority"`
	DueOn       time.Time           `json:"dueOn"`
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	task, err := h.deps.Planning.CreateTask(c.Request.Context(), userID(c), org(c).ID, planning.TaskParams{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueOn:       req.DueOn,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, task)
}

type taskPageResponse struct {
	Tasks      []domain.Task `json:"tasks"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

func (h *Handler) listTasks(c *gin.Context) {
	filter, ok := taskFilterFromQuery(c)
	if !ok {
		return
	}

	tasks, next, err := h.deps.Planning.Tasks(c.Request.Context(), userID(c), org(c).ID, filter)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, taskPageResponse{Tasks: tasks, NextCursor: next})
}

func taskFilterFromQuery(c *gin.Context) (planning.TaskListFilter, bool) {
	var filter planning.TaskListFilter

	projectID, ok := queryID[domain.ProjectID](c, "projectId")
	if !ok {
		return filter, false
	}

	boardID, ok := queryID[domain.BoardID](c, "boardId")
	if !ok {
		return filter, false
	}

	sprintID, ok := queryID[domain.SprintID](c, "sprintId")
	if !ok {
		return filter, false
	}

	assigneeID, ok := queryID[domain.MemberID](c, "assigneeMemberId")
	if !ok {
		return filter, false
	}

	limit, ok := pageLimit(c)
	if !ok {
		return filter, false
	}

	filter = planning.TaskListFilter{
		ProjectID:        projectID,
		BoardID:          boardID,
		SprintID:         sprintID,
		Backlog:          c.Query("backlog") == "true",
		AssigneeMemberID: assigneeID,
		Cursor:           c.Query("cursor"),
		Limit:            limit,
	}

	if raw := c.Query("status"); raw != "" {
		status := domain.TaskStatus(raw)
		filter.Status = &status
	}

	return filter, true
}

func (h *Handler) getTask(c *gin.Context) {
	taskID, ok := pathID[domain.TaskID](c, "taskID")
	if !ok {
		return
	}

	task, err := h.deps.Planning.TaskByID(c.Request.Context(), userID(c), org(c).ID, taskID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, task)
}

type updateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *domain.TaskStatus   `json:"status"`
	Priority    *domain.TaskPriority `json:"priority"`
	DueOn       *time.Time           `json:"dueOn"`
}

func (h *Handler) updateTask(c *gin.Context) {
	taskID, ok := pathID[domain.TaskID](c, "taskID")
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	task, err := h.deps.Planning.UpdateTask(c.Request.Context(), userID(c), org(c).ID, taskID, planning.TaskChanges{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueOn:       req.DueOn,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, task)
}

type moveTaskRequest struct {
	ColumnID *domain.ColumnID `json:"columnId"`
	Position *int             `json:"position"`
	SprintID *domain.SprintID `json:"sprintId"`
	Backlog  bool             `json:"backlog"`
}

func (h *Handler) moveTask(c *gin.Context) {
	taskID, ok := pathID[domain.TaskID](c, "taskID")
	if !ok {
		return
	}

	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	task, err := h.deps.Planning.MoveTask(c.Request.Context(), userID(c), org(c).ID, taskID, planning.TaskPlacement{
		ColumnID: req.ColumnID,
		Position: req.Position,
		SprintID: req.SprintID,
		Backlog:  req.Backlog,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, task)
}

// assignTaskRequest carries the new assignee; a null memberId unassigns.
type assignTaskRequest struct {
	MemberID *domain.MemberID `json:"memberId"`
}

func (h *Handler) assignTask(c *gin.Context) {
	taskID, ok := pathID[domain.TaskID](c, "taskID")
	if !ok {
		return
	}

	var req assignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	task, err := h.deps.Planning.AssignTask(c.Request.Context(), userID(c), org(c).ID, taskID, req.MemberID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) deleteTask(c *gin.Context) {
	taskID, ok := pathID[domain.TaskID](c, "taskID")
	if !ok {
		return
	}

	if err := h.deps.Planning.DeleteTask(c.Request.Context(), userID(c), org(c).ID, taskID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
