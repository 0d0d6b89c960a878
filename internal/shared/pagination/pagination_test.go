package pagination

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantPage int
		wantSize int
	}{
		{"defaults", "/stores/paged", 0, 10},
		{"explicit", "/stores/paged?page=2&size=5", 2, 5},
		{"malformed page", "/stores/paged?page=abc&size=5", 0, 5},
		{"negative page", "/stores/paged?page=-1", 0, 10},
		{"zero size", "/stores/paged?size=0", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := FromQuery(testContext(t, tt.url))
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantSize, params.Size)
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, Size: 20}
	assert.Equal(t, 60, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestNewPageTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{3, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{21, 10, 3},
	}

	for _, tt := range tests {
		page := NewPage([]int{}, Params{Page: 0, Size: tt.size}, tt.total)
		assert.Equal(t, tt.want, page.TotalPages, "total=%d size=%d", tt.total, tt.size)
	}
}

func TestNewPagePastEnd(t *testing.T) {
	// Requesting a page beyond the data keeps the true totals with empty
	// content.
	page := NewPage[int](nil, Params{Page: 5, Size: 10}, 3)

	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, 5, page.Page)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
}

func TestMapKeepsMetadata(t *testing.T) {
	src := NewPage([]int{1, 2, 3}, Params{Page: 1, Size: 3}, 7)

	mapped := Map(src, strconv.Itoa)

	assert.Equal(t, []string{"1", "2", "3"}, mapped.Content)
	assert.Equal(t, src.Page, mapped.Page)
	assert.Equal(t, src.Size, mapped.Size)
	assert.Equal(t, src.TotalElements, mapped.TotalElements)
	assert.Equal(t, src.TotalPages, mapped.TotalPages)
}
