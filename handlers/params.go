package handlers

import (
	"strings"

	"catering/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

// idParam parses the positive integer ":id" path parameter.
func idParam(c *gin.Context, op string) (int64, error) {
	id, err := cast.ToInt64E(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, utils.ValidationError(op, "id must be a positive integer")
	}
	return id, nil
}

// intQuery parses an integer query parameter, returning def when it is absent.
func intQuery(c *gin.Context, op, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, utils.ValidationError(op, name+" must be an integer")
	}
	return v, nil
}

// bindJSON decodes the request body, reporting malformed payloads as validation errors.
func bindJSON(c *gin.Context, op string, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return utils.ValidationError(op, "invalid request body: "+err.Error())
	}
	return nil
}
