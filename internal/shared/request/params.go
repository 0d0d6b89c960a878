// Package request holds small helpers for reading typed path and query
// parameters from gin requests.
package request

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamInt reads an integer path parameter.
func ParamInt(c *gin.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", name)
	}
	return value, nil
}

// QueryInt reads an optional integer query parameter. Absent or blank
// parameters yield nil.
func QueryInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be an integer", name)
	}
	return &value, nil
}

// QueryString reads an optional string query parameter. Absent parameters
// yield nil; blank values are kept and left to the caller.
func QueryString(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &raw
}
