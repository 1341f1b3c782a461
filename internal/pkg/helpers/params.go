package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/majorpath/internal/pkg/apperrors"
)

// ParsePositiveID parses a decimal identifier greater than zero
func ParsePositiveID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid id", raw)
	}
	return id, nil
}

// ParseIDParam reads a path parameter as a positive id. Failures are
// ErrBadRequest so the error middleware answers 400.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := ParsePositiveID(c.Param(name))
	if err != nil {
		return 0, apperrors.NewCustomError(apperrors.ErrBadRequest, fmt.Sprintf("invalid %s", name)).
			WithDetails(map[string]interface{}{name: c.Param(name)})
	}
	return id, nil
}
