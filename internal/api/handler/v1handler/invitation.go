package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

type createInvitationRequest struct {
	Email           string                  `json:"email" binding:"required"`
	Role            domain.Role             `json:"role" binding:"required"`
	PermissionSetID *domain.PermissionSetID `json:"permissionSetId"`
}

func (h *Handler) createInvitation(c *gin.Context) {
	var req createInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	invitation, err := h.deps.Workspace.Invite(c.Request.Context(), userID(c), org(c).ID, workspace.InviteParams{
		Email:           req.Email,
		Role:            req.Role,
		PermissionSetID: req.PermissionSetID,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, invitation)
}

func (h *Handler) listInvitations(c *gin.Context) {
	invitations, err := h.deps.Workspace.Invitations(c.Request.Context(), userID(c), org(c).ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, invitations)
}

type acceptInvitationRequest struct {
	Token       string `json:"token" binding:"required"`
	Email       string `json:"email" binding:"required"`
	DisplayName string `json:"displayName"`
}

// acceptInvitation lives outside the organization scope: the accepting user
// is not a member yet and only holds the token from the email.
func (h *Handler) acceptInvitation(c *gin.Context) {
	var req acceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	member, err := h.deps.Workspace.AcceptInvitation(c.Request.Context(), userID(c), workspace.AcceptParams{
		Token:       req.Token,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *Handler) revokeInvitation(c *gin.Context) {
	invitationID, ok := pathID[domain.InvitationID](c, "invitationID")
	if !ok {
		return
	}

	if err := h.deps.Workspace.RevokeInvitation(c.Request.Context(), userID(c), org(c).ID, invitationID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
