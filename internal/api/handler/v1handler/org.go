package v1handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/internal/workspace"
	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

const orgKey = "v1handler.org"

// orgContext resolves the :orgRef path segment to an organization and stores
// it for downstream handlers. GET requests addressed by UUID are redirected
// to the canonical slug URL.
func (h *Handler) orgContext(c *gin.Context) {
	raw := c.Param("orgRef")
	ref := domain.ParseRef(raw)

	org, err := h.deps.Workspace.OrgByRef(c.Request.Context(), userID(c), ref)
	if err != nil {
		writeError(c, err)

		return
	}

	if ref.IsID() && c.Request.Method == http.MethodGet {
		redirectToSlug(c, raw, org.Slug)

		return
	}

	c.Set(orgKey, org)
	c.Next()
}

// redirectToSlug rewrites the UUID path segment to the resource's slug and
// issues a permanent redirect to the canonical URL.
func redirectToSlug(c *gin.Context, raw, slug string) {
	path := strings.Replace(c.Request.URL.Path, raw, slug, 1)
	if q := c.Request.URL.RawQuery; q != "" {
		path += "?" + q
	}

	c.Redirect(http.StatusMovedPermanently, path)
	c.Abort()
}

func org(c *gin.Context) *domain.Organization {
	return c.MustGet(orgKey).(*domain.Organization)
}

type createOrgRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *Handler) createOrg(c *gin.Context) {
	var req createOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	created, err := h.deps.Workspace.CreateOrg(c.Request.Context(), userID(c), workspace.OrgParams{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listOrgs(c *gin.Context) {
	orgs, err := h.deps.Workspace.UserOrgs(c.Request.Context(), userID(c))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (h *Handler) getOrg(c *gin.Context) {
	c.JSON(http.StatusOK, org(c))
}

type updateOrgRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

func (h *Handler) updateOrg(c *gin.Context) {
	var req updateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	updated, err := h.deps.Workspace.UpdateOrg(c.Request.Context(), userID(c), org(c).ID, storage.OrgUpdates{
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
