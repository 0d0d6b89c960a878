package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage = 0
	DefaultSize = 10
)

// Params carries the page/size pair from the query string. Pages are
// 0-indexed.
type Params struct {
	Page int
	Size int
}

// FromQuery reads page/size from the request, falling back to the defaults
// on missing or malformed values.
func FromQuery(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = DefaultPage
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		size = DefaultSize
	}
	return Params{Page: page, Size: size}
}

func (p Params) Offset() int {
	return p.Page * p.Size
}

func (p Params) Limit() int {
	return p.Size
}

// Page is one page of results plus the metadata clients need to paginate.
// A page past the end of the data has empty content and the true total.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage assembles a Page from already-fetched content and the total row
// count of the filtered set.
func NewPage[T any](content []T, params Params, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if params.Size > 0 {
		totalPages = int((total + int64(params.Size) - 1) / int64(params.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// Map converts a page's content, keeping the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	content := make([]U, len(p.Content))
	for i, item := range p.Content {
		content[i] = fn(item)
	}
	return Page[U]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
