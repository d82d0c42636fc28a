package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

type auditResponse struct {
	Entries    []domain.AuditEntry `json:"entries"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

func (h *Handler) listAudit(c *gin.Context) {
	limit, ok := pageLimit(c)
	if !ok {
		return
	}

	entries, next, err := h.deps.Workspace.AuditTrail(c.Request.Context(), userID(c), org(c).ID, c.Query("cursor"), limit)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, auditResponse{Entries: entries, NextCursor: next})
}
