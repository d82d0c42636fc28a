package v1handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lufutu/scrumsan-sub003/pkg/domain"
	"github.com/lufutu/scrumsan-sub003/pkg/storage"
)

type createBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) createBoard(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	board, err := h.deps.Planning.CreateBoard(c.Request.Context(), userID(c), org(c).ID, project.ID, req.Name)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, board)
}

func (h *Handler) listBoards(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	boards, err := h.deps.Planning.Boards(c.Request.Context(), userID(c), org(c).ID, project.ID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, boards)
}

func (h *Handler) getBoard(c *gin.Context) {
	project, ok := h.projectFromRef(c)
	if !ok {
		return
	}

	raw := c.Param("boardRef")
	ref := domain.ParseRef(raw)

	board, err := h.deps.Planning.BoardByRef(c.Request.Context(), userID(c), org(c).ID, project.ID, ref)
	if err != nil {
		writeError(c, err)

		return
	}

	if ref.IsID() {
		redirectToSlug(c, raw, board.Slug)

		return
	}

	c.JSON(http.StatusOK, board)
}

type updateBoardRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

func (h *Handler) updateBoard(c *gin.Context) {
	boardID, ok := pathID[domain.BoardID](c, "boardID")
	if !ok {
		return
	}

	var req updateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	board, err := h.deps.Planning.UpdateBoard(c.Request.Context(), userID(c), org(c).ID, boardID, storage.BoardUpdates{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, board)
}

func (h *Handler) deleteBoard(c *gin.Context) {
	boardID, ok := pathID[domain.BoardID](c, "boardID")
	if !ok {
		return
	}

	if err := h.deps.Planning.DeleteBoard(c.Request.Context(), userID(c), org(c).ID, boardID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

type createColumnRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

func (h *Handler) createColumn(c *gin.Context) {
	boardID, ok := pathID[domain.BoardID](c, "boardID")
	if !ok {
		return
	}

	var req createColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	column, err := h.deps.Planning.CreateColumn(c.Request.Context(), userID(c), org(c).ID, boardID, req.Name, req.Position)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, column)
}

func (h *Handler) listColumns(c *gin.Context) {
	boardID, ok := pathID[domain.BoardID](c, "boardID")
	if !ok {
		return
	}

	columns, err := h.deps.Planning.Columns(c.Request.Context(), userID(c), org(c).ID, boardID)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, columns)
}

type updateColumnRequest struct {
	Name     *string `json:"name"`
	Position *int    `json:"position"`
}

func (h *Handler) updateColumn(c *gin.Context) {
	boardID, ok := pathID[domain.BoardID](c, "boardID")
	if !ok {
		return
	}

	columnID, ok := pathID[domain.ColumnID](c, "columnID")
	if !ok {
		return
	}

	var req updateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")

		return
	}

	column, err := h.deps.Planning.UpdateColumn(c.Request.Context(), userID(c), org(c).ID, boardID, columnID,
		storage.ColumnUpdates{
			Name:     req.Name,
			Position: req.Position,
		})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, column)
}

func (h *Handler) deleteColumn(c *gin.Context) {
	boardID, ok := pathID[domain.BoardID](c, "boardID")
	if !ok {
		return
	}

	columnID, ok := pathID[domain.ColumnID](c, "columnID")
	if !ok {
		return
	}

	if err := h.deps.Planning.DeleteColumn(c.Request.Context(), userID(c), org(c).ID, boardID, columnID); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}
