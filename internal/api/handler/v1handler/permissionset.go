package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

type createPermissionSetRequest struct {
	Name   string                  `json:"name" binding:"required"`
	Config domain.PermissionConfig `json:"config"`
}

func (h *Handler) createPermissionSet(c *gin.Context) {
	var req createPermissionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	set, err := h.deps.Workspace.CreatePermissionSet(c.Request.Context(), userID(c), org(c).ID, req.Name, req.Config)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, set)
}

func (h *Handler) listPermissionSets(c *gin.Context) {
	sets, err := h.deps.Workspace.PermissionSets(c.Request.Context(), userID(c), org(c).ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, sets)
}

type updatePermissionSetRequest struct {
	Name   *string                  `json:"name"`
	Config *domain.PermissionConfig `json:"config"`
}

func (h *Handler) updatePermissionSet(c *gin.Context) {
	setID, ok := pathID[domain.PermissionSetID](c, "setID")
	if !ok {
		return
	}

	var req updatePermissionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	set, err := h.deps.Workspace.UpdatePermissionSet(c.Request.Context(), userID(c), org(c).ID, setID,
		storage.PermissionSetUpdates{
			Name:   req.Name,
			Config: req.Config,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, set)
}

func (h *Handler) deletePermissionSet(c *gin.Context) {
	setID, ok := pathID[domain.PermissionSetID](c, "setID")
	if !ok {
		return
	}

	if err := h.deps.Workspace.DeletePermissionSet(c.Request.Context(), userID(c), org(c).ID, setID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
