package v1

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/helixml/catalog/domain/repository"
	"github.com/helixml/catalog/infrastructure/api/jsonapi"
)

// Page size limits for list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationParams is a 1-indexed page request.
type PaginationParams struct {
	page     int
	pageSize int
}

// NewPaginationParams returns the first page at the default size.
func NewPaginationParams() PaginationParams {
	return PaginationParams{page: 1, pageSize: DefaultPageSize}
}

// ParsePagination reads page and page_size from the query string. Invalid
// values fall back to the defaults and page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) PaginationParams {
	params := NewPaginationParams()
	q := r.URL.Query()

	if page := positiveInt(q.Get("page")); page > 0 {
		params.page = page
	}
	if size := positiveInt(q.Get("page_size")); size > 0 {
		params.pageSize = min(size, MaxPageSize)
	}
	return params
}

func positiveInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// Page returns the page number.
func (p PaginationParams) Page() int { return p.page }

// PageSize returns the page size.
func (p PaginationParams) PageSize() int { return p.pageSize }

// Offset returns the number of rows before the page.
func (p PaginationParams) Offset() int { return (p.page - 1) * p.pageSize }

// Limit returns the number of rows in the page.
func (p PaginationParams) Limit() int { return p.pageSize }

// Options returns repository options for one page ordered by orderBy.
func (p PaginationParams) Options(orderBy string) []repository.Option {
	return append(repository.WithPagination(p.Limit(), p.Offset()), repository.WithOrderAsc(orderBy))
}

func (p PaginationParams) totalPages(totalCount int64) int {
	return int((totalCount + int64(p.pageSize) - 1) / int64(p.pageSize))
}

// PaginationMeta builds the meta object of a paginated document.
func PaginationMeta(params PaginationParams, totalCount int64) jsonapi.Meta {
	return jsonapi.Meta{
		"page":        params.Page(),
		"page_size":   params.PageSize(),
		"total_count": totalCount,
		"total_pages": params.totalPages(totalCount),
	}
}

// PaginationLinks builds the self, first, last, prev and next links. Other
// query parameters of the request are preserved.
func PaginationLinks(r *http.Request, params PaginationParams, totalCount int64) *jsonapi.Links {
	totalPages := params.totalPages(totalCount)

	pageURL := func(page int) string {
		q := r.URL.Query()
		q.Set("page", strconv.Itoa(page))
		q.Set("page_size", strconv.Itoa(params.PageSize()))
		u := url.URL{Path: r.URL.Path, RawQuery: q.Encode()}
		return u.String()
	}

	links := &jsonapi.Links{
		Self:  pageURL(params.Page()),
		First: pageURL(1),
	}
	if totalPages > 0 {
		links.Last = pageURL(totalPages)
	}
	if params.Page() > 1 {
		links.Prev = pageURL(params.Page() - 1)
	}
	if params.Page() < totalPages {
		links.Next = pageURL(params.Page() + 1)
	}
	return links
}
