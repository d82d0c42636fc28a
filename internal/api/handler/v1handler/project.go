package v1handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

// projectFromRef resolves the :projectRef path segment. On failure it writes
// the error response and reports false.
func (h *Handler) projectFromRef(c *gin.Context) (*domain.Project, bool) {
	ref := domain.ParseRef(c.Param("projectRef"))

	project, err := h.deps.Planning.ProjectByRef(c.Request.Context(), userID(c), org(c).ID, ref)
	if err != nil {
		writeError(c, err)

		return nil, false
	}

	return project, true
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	project, err := h.deps.Planning.CreateProject(c.Request.Context(), userID(c), org(c).ID, planning.ProjectParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.deps.Planning.Projects(c.Request.Context(), userID(c), org(c).ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getProject(c *gin.Context) {
	raw := c.Param("projectRef")

	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	if domain.ParseRef(raw).IsID() {
		redirectToSlug(c, raw, project.Slug)

		return
	}

	c.JSON(http.StatusOK, project)
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func (h *Handler) updateProject(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	updated, err := h.deps.Planning.UpdateProject(c.Request.Context(), userID(c), org(c).ID, project.ID,
		storage.ProjectUpdates{
			Name:        req.Name,
			Slug:        req.Slug,
			Description: req.Description,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) deleteProject(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	if err := h.deps.Planning.DeleteProject(c.Request.Context(), userID(c), org(c).ID, project.ID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

type addEngagementRequest struct {
	MemberID     domain.MemberID `json:"memberId" binding:"required"`
	Role         string          `json:"role"`
	HoursPerWeek int             `json:"hoursPerWeek"`
	StartsOn     time.Time       `json:"startsOn"`
}

func (h *Handler) addEngagement(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	var req addEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	engagement, err := h.deps.Planning.AddEngagement(c.Request.Context(), userID(c), org(c).ID, project.ID,
		planning.EngagementParams{
			MemberID:     req.MemberID,
			Role:         req.Role,
			HoursPerWeek: req.HoursPerWeek,
			StartsOn:     req.StartsOn,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, engagement)
}

func (h *Handler) listEngagements(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	engagements, err := h.deps.Planning.Engagements(c.Request.Context(), userID(c), org(c).ID, project.ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, engagements)
}

func (h *Handler) endEngagement(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	engagementID, ok := pathID[domain.EngagementID](c, "engagementID")
	if !ok {
		return
	}

	if err := h.deps.Planning.EndEngagement(c.Request.Context(), userID(c), org(c).ID, project.ID, engagementID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
