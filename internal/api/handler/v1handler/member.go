package v1handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
)

func (h *Handler) listMembers(c *gin.Context) {
	members, err := h.deps.Workspace.Members(c.Request.Context(), userID(c), org(c).ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, members)
}

// updateMemberRequest distinguishes three permission-set intents: field
// absent leaves the set untouched, explicit null detaches it, a UUID attaches
// that set. RawMessage keeps absent and null apart, which a plain pointer
// field cannot.
type updateMemberRequest struct {
	Role            *domain.Role    `json:"role"`
	PermissionSetID json.RawMessage `json:"permissionSetId"`
	DisplayName     *string         `json:"displayName"`
}

func (h *Handler) updateMember(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	var req updateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	updates := workspace.MemberUpdates{
		Role:        req.Role,
		DisplayName: req.DisplayName,
	}

	if len(req.PermissionSetID) > 0 {
		var setID *domain.PermissionSetID
		if string(req.PermissionSetID) != "null" {
			var id domain.PermissionSetID
			if err := json.Unmarshal(req.PermissionSetID, &id); err != nil {
				badRequest(c, "invalid permissionSetId")

				return
			}
			setID = &id
		}
		updates.PermissionSetID = &setID
	}

	updated, err := h.deps.Workspace.UpdateMember(c.Request.Context(), userID(c), org(c).ID, memberID, updates)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) removeMember(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	if err := h.deps.Workspace.RemoveMember(c.Request.Context(), userID(c), org(c).ID, memberID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getProfile(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	profile, err := h.deps.Workspace.MemberProfile(c.Request.Context(), userID(c), org(c).ID, memberID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, profile)
}

type putProfileRequest struct {
	Title     string `json:"title"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}

func (h *Handler) putProfile(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	var req putProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	profile, err := h.deps.Workspace.UpsertProfile(c.Request.Context(), userID(c), org(c).ID, memberID,
		domain.Profile{
			Title:     req.Title,
			Bio:       req.Bio,
			AvatarURL: req.AvatarURL,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) listTimeOff(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	entries, err := h.deps.Workspace.TimeOff(c.Request.Context(), userID(c), org(c).ID, memberID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, entries)
}

type addTimeOffRequest struct {
	StartsOn time.Time `json:"startsOn" binding:"required"`
	EndsOn   time.Time `json:"endsOn" binding:"required"`
	Reason   string    `json:"reason"`
}

func (h *Handler) addTimeOff(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	var req addTimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	entry, err := h.deps.Workspace.AddTimeOff(c.Request.Context(), userID(c), org(c).ID, memberID,
		domain.TimeOffEntry{
			StartsOn: req.StartsOn,
			EndsOn:   req.EndsOn,
			Reason:   req.Reason,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) deleteTimeOff(c *gin.Context) {
	memberID, ok := pathID[domain.MemberID](c, "memberID")
	if !ok {
		return
	}

	timeOffID, ok := pathID[domain.TimeOffID](c, "timeOffID")
	if !ok {
		return
	}

	if err := h.deps.Workspace.DeleteTimeOff(c.Request.Context(), userID(c), org(c).ID, memberID, timeOffID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
