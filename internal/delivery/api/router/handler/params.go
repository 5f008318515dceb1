package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the :id route parameter. Ids must fit a signed 64-bit column,
// so anything above MaxInt64 is rejected like a malformed id.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}
