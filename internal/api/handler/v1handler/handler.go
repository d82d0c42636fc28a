// Package v1handler implements the v1 REST API on top of the workspace and
// planning services. Routing is gin; errors are mapped from semantic kinds to
// HTTP statuses in one place.
package v1handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/logger"
	"github.com/lufutu/scrumsan-sub003/pkg/serrors"
)

// Deps carries the services the handlers dispatch to.
type Deps struct {
	Workspace workspace.Workspace
	Planning  planning.Planning
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts all v1 routes on the router. The auth middleware must have
// stored the caller's user ID before any handler here runs.
func (h *Handler) Register(r gin.IRouter, auth gin.HandlerFunc) {
	v1 := r.Group("/v1", auth)

	v1.POST("/orgs", h.createOrg)
	v1.GET("/orgs", h.listOrgs)

	v1.POST("/invitations/accept", h.acceptInvitation)

	org := v1.Group("/orgs/:orgRef", h.orgContext)
	org.GET("", h.getOrg)
	org.PATCH("", h.updateOrg)

	org.GET("/members", h.listMembers)
	org.PATCH("/members/:memberID", h.updateMember)
	org.DELETE("/members/:memberID", h.removeMember)
	org.GET("/members/:memberID/profile", h.getProfile)
	org.PUT("/members/:memberID/profile", h.putProfile)
	org.GET("/members/:memberID/timeoff", h.listTimeOff)
	org.POST("/members/:memberID/timeoff", h.addTimeOff)
	org.DELETE("/members/:memberID/timeoff/:timeOffID", h.deleteTimeOff)

	org.POST("/permission-sets", h.createPermissionSet)
	org.GET("/permission-sets", h.listPermissionSets)
	org.PATCH("/permission-sets/:setID", h.updatePermissionSet)
	org.DELETE("/permission-sets/:setID", h.deletePermissionSet)

	org.POST("/invitations", h.createInvitation)
	org.GET("/invitations", h.listInvitations)
	org.DELETE("/invitations/:invitationID", h.revokeInvitation)

	org.GET("/audit", h.listAudit)

	org.POST("/projects", h.createProject)
	org.GET("/projects", h.listProjects)
	org.GET("/projects/:projectRef", h.getProject)
	org.PATCH("/projects/:projectRef", h.updateProject)
	org.DELETE("/projects/:projectRef", h.deleteProject)

	org.POST("/projects/:projectRef/engagements", h.addEngagement)
	org.GET("/projects/:projectRef/engagements", h.listEngagements)
	org.DELETE("/projects/:projectRef/engagements/:engagementID", h.endEngagement)

	org.POST("/projects/:projectRef/boards", h.createBoard)
	org.GET("/projects/:projectRef/boards", h.listBoards)
	org.GET("/projects/:projectRef/boards/:boardRef", h.getBoard)

	org.PATCH("/boards/:boardID", h.updateBoard)
	org.DELETE("/boards/:boardID", h.deleteBoard)
	org.POST("/boards/:boardID/columns", h.createColumn)
	org.GET("/boards/:boardID/columns", h.listColumns)
	org.PATCH("/boards/:boardID/columns/:columnID", h.updateColumn)
	org.DELETE("/boards/:boardID/columns/:columnID", h.deleteColumn)

	org.POST("/projects/:projectRef/sprints", h.createSprint)
	org.GET("/projects/:projectRef/sprints", h.listSprints)
	org.GET("/projects/:projectRef/sprints/:sprintRef", h.getSprint)

	org.PATCH("/sprints/:sprintID", h.updateSprint)
	org.DELETE("/sprints/:sprintID", h.deleteSprint)
	org.POST("/sprints/:sprintID/start", h.startSprint)
	org.POST("/sprints/:sprintID/finish", h.finishSprint)
	org.GET("/sprints/:sprintID/stats", h.sprintStats)

	org.POST("/tasks", h.createTask)
	org.GET("/tasks", h.listTasks)
	org.GET("/tasks/:taskID", h.getTask)
	org.PATCH("/tasks/:taskID", h.updateTask)
	org.DELETE("/tasks/:taskID", h.deleteTask)
	org.POST("/tasks/:taskID/move", h.moveTask)
	org.POST("/tasks/:taskID/assign", h.assignTask)
}

// errorResponse is the uniform error body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	default:
		// Internal details stay in the log.
		logger.Error(c.Request.Context(), "request failed", zap.Error(err))
		msg = "internal error"
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: msg})
}
