package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"", 1, DefaultPageSize},
		{"page=3&page_size=10", 3, 10},
		{"page=0&page_size=-1", 1, DefaultPageSize},
		{"page=abc&page_size=xyz", 1, DefaultPageSize},
		{"page_size=1000", 1, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := ParsePagination(httptest.NewRequest(http.MethodGet, "/attributes?"+tt.query, nil))
			assert.Equal(t, tt.wantPage, p.Page())
			assert.Equal(t, tt.wantPageSize, p.PageSize())
		})
	}
}

func TestPaginationParams_OffsetLimit(t *testing.T) {
	p := ParsePagination(httptest.NewRequest(http.MethodGet, "/?page=3&page_size=25", nil))

	assert.Equal(t, 50, p.Offset())
	assert.Equal(t, 25, p.Limit())
	assert.Len(t, p.Options("id"), 3)
}

func TestPaginationMeta(t *testing.T) {
	p := ParsePagination(httptest.NewRequest(http.MethodGet, "/?page_size=10", nil))

	meta := PaginationMeta(p, 21)
	assert.Equal(t, 3, meta["total_pages"])
	assert.Equal(t, int64(21), meta["total_count"])

	assert.Equal(t, 0, PaginationMeta(p, 0)["total_pages"])
}

func TestPaginationLinks(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attributes?page=2&page_size=10&sort=slug", nil)
	links := PaginationLinks(req, ParsePagination(req), 35)

	assert.Equal(t, "/api/v1/attributes?page=2&page_size=10&sort=slug", links.Self)
	assert.Equal(t, "/api/v1/attributes?page=1&page_size=10&sort=slug", links.First)
	assert.Equal(t, "/api/v1/attributes?page=4&page_size=10&sort=slug", links.Last)
	assert.Equal(t, "/api/v1/attributes?page=1&page_size=10&sort=slug", links.Prev)
	assert.Equal(t, "/api/v1/attributes?page=3&page_size=10&sort=slug", links.Next)
}

func TestPaginationLinks_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attributes", nil)
	links := PaginationLinks(req, ParsePagination(req), 0)

	assert.Empty(t, links.Last)
	assert.Empty(t, links.Prev)
	assert.Empty(t, links.Next)
}
