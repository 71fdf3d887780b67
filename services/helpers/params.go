package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Paging carries the pagination/sorting part of a listing request.
type Paging struct {
	Page      int
	Size      int
	SortBy    string
	Direction string
}

// Parameters gin and the services interpret themselves; everything else in
// the query string is a dynamic filter.
var reservedParams = map[string]bool{
	"pageNumber":    true,
	"pageSize":      true,
	"sortBy":        true,
	"sortDirection": true,
	"role":          true,
}

// ListParams splits a listing request into paging and the free-form filter
// parameters. Filter values keep only the first occurrence of a key.
func ListParams(c *gin.Context) (Paging, map[string]string) {
	paging := Paging{
		Page:      intQuery(c, "pageNumber", 0),
		Size:      intQuery(c, "pageSize", 20),
		SortBy:    c.DefaultQuery("sortBy", "id"),
		Direction: c.DefaultQuery("sortDirection", "desc"),
	}

	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}
	return paging, params
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
