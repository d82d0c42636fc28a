package v1handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID parses a UUID path parameter into the typed ID. On failure it writes
// a 400 response and reports false.
func pathID[T ~[16]byte](c *gin.Context, param string) (T, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		badRequest(c, "invalid "+param)

		return T{}, false
	}

	return T(id), true
}

// queryID parses an optional UUID query parameter. A missing parameter yields
// a nil pointer; a malformed one writes a 400 response and reports false.
func queryID[T ~[16]byte](c *gin.Context, param string) (*T, bool) {
	raw := c.Query(param)
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "invalid "+param)

		return nil, false
	}

	typed := T(id)

	return &typed, true
}

const defaultPageLimit = 50

// pageLimit parses the limit query parameter, defaulting and capping it.
func pageLimit(c *gin.Context) (uint, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultPageLimit, true
	}

	limit, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || limit == 0 {
		badRequest(c, "invalid limit")

		return 0, false
	}

	if limit > 200 {
		limit = 200
	}

	return uint(limit), true
}
