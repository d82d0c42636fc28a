package v1handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/internal/planning"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

type createSprintRequest struct {
	Name     string    `json:"name" binding:"required"`
	Goal     string    `json:"goal"`
	StartsOn time.Time `json:"startsOn"`
	EndsOn   time.Time `json:"endsOn"`
}

func (h *Handler) createSprint(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	var req createSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	sprint, err := h.deps.Planning.CreateSprint(c.Request.Context(), userID(c), org(c).ID, project.ID,
		planning.SprintParams{
			Name:     req.Name,
			Goal:     req.Goal,
			StartsOn: req.StartsOn,
			EndsOn:   req.EndsOn,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, sprint)
}

func (h *Handler) listSprints(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	sprints, err := h.deps.Planning.Sprints(c.Request.Context(), userID(c), org(c).ID, project.ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, sprints)
}

func (h *Handler) getSprint(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	raw := c.Param("sprintRef")
	ref := domain.ParseRef(raw)

	sprint, err := h.deps.Planning.SprintByRef(c.Request.Context(), userID(c), org(c).ID, project.ID, ref)
	if err != nil {
		writeError(c, err)

		return
	}

	if ref.IsID() {
		redirectToSlug(c, raw, sprint.Slug)

		return
	}

	c.JSON(http.StatusOK, sprint)
}

type updateSprintRequest struct {
	Name     *string    `json:"name"`
	Slug     *string    `json:"slug"`
	Goal     *string    `json:"goal"`
	StartsOn *time.Time `json:"startsOn"`
	EndsOn   *time.Time `json:"endsOn"`
}

func (h *Handler) updateSprint(c *gin.Context) {
	sprintID, ok := pathID[domain.SprintID](c, "sprintID")
	if !ok {
		return
	}

	var req updateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	sprint, err := h.deps.Planning.UpdateSprint(c.Request.Context(), userID(c), org(c).ID, sprintID,
		storage.SprintUpdates{
			Name:     req.Name,
			Slug:     req.Slug,
			Goal:     req.Goal,
			StartsOn: req.StartsOn,
			EndsOn:   req.EndsOn,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, sprint)
}

func (h *Handler) startSprint(c *gin.Context) {
	sprintID, ok := pathID[domain.SprintID](c, "sprintID")
	if !ok {
		return
	}

	sprint, err := h.deps.Planning.StartSprint(c.Request.Context(), userID(c), org(c).ID, sprintID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, sprint)
}

func (h *Handler) finishSprint(c *gin.Context) {
	sprintID, ok := pathID[domain.SprintID](c, "sprintID")
	if !ok {
		return
	}

	sprint, err := h.deps.Planning.FinishSprint(c.Request.Context(), userID(c), org(c).ID, sprintID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, sprint)
}

func (h *Handler) sprintStats(c *gin.Context) {
	sprintID, ok := pathID[domain.SprintID](c, "sprintID")
	if !ok {
		return
	}

	stats, err := h.deps.Planning.SprintStats(c.Request.Context(), userID(c), org(c).ID, sprintID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) deleteSprint(c *gin.Context) {
	sprintID, ok := pathID[domain.SprintID](c, "sprintID")
	if !ok {
		return
	}

	if err := h.deps.Planning.DeleteSprint(c.Request.Context(), userID(c), org(c).ID, sprintID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
