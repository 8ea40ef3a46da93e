package notion

import (
	"context"
	"iter"
	"net/http"

	"github.com/foomo/notion-mcp/notion/filter"
	"github.com/foomo/notion-mcp/notion/vo"
)

var searchEndpoint = endpoint{http.MethodPost, "/search"}

type searchSort struct {
	Direction filter.Direction `json:"direction"`
	Timestamp filter.Timestamp `json:"timestamp"`
}

type searchFilter struct {
	Property string        `json:"property"`
	Value    vo.ObjectType `json:"value"`
}

type searchBody struct {
	Query       string        `json:"query,omitempty"`
	Sort        *searchSort   `json:"sort,omitempty"`
	Filter      *searchFilter `json:"filter,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// search holds the fields shared by the search builders.
type search struct {
	client      *Client
	query       string
	direction   filter.Direction
	object      vo.ObjectType
	startCursor string
	pageSize    int
}

func (s search) body() searchBody {
	body := searchBody{
		Query:       s.query,
		StartCursor: s.startCursor,
		PageSize:    clampPageSize(s.pageSize),
	}
	if s.direction != "" {
		body.Sort = &searchSort{Direction: s.direction, Timestamp: filter.TimestampLastEditedTime}
	}
	if s.object != "" {
		body.Filter = &searchFilter{Property: "object", Value: s.object}
	}
	return body
}

func sendSearch[T any](ctx context.Context, s search, cursor string, pageSize int) (*vo.List[T], error) {
	s.startCursor, s.pageSize = cursor, pageSize
	return send[vo.List[T]](ctx, s.client, call{
		endpoint: searchEndpoint,
		path:     "/search",
		body:     s.body(),
	})
}

// SearchRequest searches pages and data sources shared with the
// integration by title.
type SearchRequest struct {
	search
}

func (c *Client) Search() *SearchRequest {
	return &SearchRequest{search{client: c}}
}

func (r *SearchRequest) Query(query string) *SearchRequest {
	r.query = query
	return r
}

// SortByLastEdited orders results by last_edited_time.
func (r *SearchRequest) SortByLastEdited(direction filter.Direction) *SearchRequest {
	r.direction = direction
	return r
}

// Only restricts results to pages or data sources.
func (r *SearchRequest) Only(object vo.ObjectType) *SearchRequest {
	r.object = object
	return r
}

func (r *SearchRequest) StartCursor(cursor string) *SearchRequest {
	r.startCursor = cursor
	return r
}

func (r *SearchRequest) PageSize(n int) *SearchRequest {
	r.pageSize = n
	return r
}

func (r *SearchRequest) Send(ctx context.Context) (*vo.List[vo.SearchResult], error) {
	return sendSearch[vo.SearchResult](ctx, r.search, r.startCursor, r.pageSize)
}

func (r *SearchRequest) page(ctx context.Context, cursor string) (*vo.List[vo.SearchResult], error) {
	return sendSearch[vo.SearchResult](ctx, r.search, cursor, MaxPageSize)
}

func (r *SearchRequest) FetchAll(ctx context.Context) ([]vo.SearchResult, error) {
	return FetchAll(ctx, r.page)
}

func (r *SearchRequest) All(ctx context.Context) iter.Seq2[vo.SearchResult, error] {
	return All(ctx, r.page)
}

// SearchPageRequest is a search narrowed to pages.
type SearchPageRequest struct {
	search
}

func (c *Client) SearchPage() *SearchPageRequest {
	return &SearchPageRequest{search{client: c, object: vo.ObjectTypePage}}
}

func (r *SearchPageRequest) Query(query string) *SearchPageRequest {
	r.query = query
	return r
}

func (r *SearchPageRequest) SortByLastEdited(direction filter.Direction) *SearchPageRequest {
	r.direction = direction
	return r
}

func (r *SearchPageRequest) StartCursor(cursor string) *SearchPageRequest {
	r.startCursor = cursor
	return r
}

func (r *SearchPageRequest) PageSize(n int) *SearchPageRequest {
	r.pageSize = n
	return r
}

func (r *SearchPageRequest) Send(ctx context.Context) (*vo.List[vo.Page], error) {
	return sendSearch[vo.Page](ctx, r.search, r.startCursor, r.pageSize)
}

func (r *SearchPageRequest) page(ctx context.Context, cursor string) (*vo.List[vo.Page], error) {
	return sendSearch[vo.Page](ctx, r.search, cursor, MaxPageSize)
}

func (r *SearchPageRequest) FetchAll(ctx context.Context) ([]vo.Page, error) {
	return FetchAll(ctx, r.page)
}

func (r *SearchPageRequest) All(ctx context.Context) iter.Seq2[vo.Page, error] {
	return All(ctx, r.page)
}

// SearchDatabaseRequest is a search narrowed to data sources, the tables
// behind databases.
type SearchDatabaseRequest struct {
	search
}

func (c *Client) SearchDatabase() *SearchDatabaseRequest {
	return &SearchDatabaseRequest{search{client: c, object: vo.ObjectTypeDataSource}}
}

func (r *SearchDatabaseRequest) Query(query string) *SearchDatabaseRequest {
	r.query = query
	return r
}

func (r *SearchDatabaseRequest) SortByLastEdited(direction filter.Direction) *SearchDatabaseRequest {
	r.direction = direction
	return r
}

func (r *SearchDatabaseRequest) StartCursor(cursor string) *SearchDatabaseRequest {
	r.startCursor = cursor
	return r
}

func (r *SearchDatabaseRequest) PageSize(n int) *SearchDatabaseRequest {
	r.pageSize = n
	return r
}

func (r *SearchDatabaseRequest) Send(ctx context.Context) (*vo.List[vo.DataSource], error) {
	return sendSearch[vo.DataSource](ctx, r.search, r.startCursor, r.pageSize)
}

func (r *SearchDatabaseRequest) page(ctx context.Context, cursor string) (*vo.List[vo.DataSource], error) {
	return sendSearch[vo.DataSource](ctx, r.search, cursor, MaxPageSize)
}

func (r *SearchDatabaseRequest) FetchAll(ctx context.Context) ([]vo.DataSource, error) {
	return FetchAll(ctx, r.page)
}

func (r *SearchDatabaseRequest) All(ctx context.Context) iter.Seq2[vo.DataSource, error] {
	return All(ctx, r.page)
}
