package notion

import (
	"context"
	"iter"
	"net/http"

	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	listUsersEndpoint = endpoint{http.MethodGet, "/users"}
	getUserEndpoint   = endpoint{http.MethodGet, "/users/{id}"}
	getSelfEndpoint   = endpoint{http.MethodGet, "/users/me"}
)

type ListUsersRequest struct {
	client      *Client
	startCursor string
	pageSize    int
}

func (c *Client) ListUsers() *ListUsersRequest {
	return &ListUsersRequest{client: c}
}

func (r *ListUsersRequest) StartCursor(cursor string) *ListUsersRequest {
	r.startCursor = cursor
	return r
}

func (r *ListUsersRequest) PageSize(n int) *ListUsersRequest {
	r.pageSize = n
	return r
}

func (r *ListUsersRequest) Send(ctx context.Context) (*vo.List[vo.User], error) {
	return send[vo.List[vo.User]](ctx, r.client, call{
		endpoint: listUsersEndpoint,
		path:     "/users",
		query:    pageQuery(nil, r.startCursor, r.pageSize),
	})
}

func (r *ListUsersRequest) page(ctx context.Context, cursor string) (*vo.List[vo.User], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	return next.Send(ctx)
}

func (r *ListUsersRequest) FetchAll(ctx context.Context) ([]vo.User, error) {
	return FetchAll(ctx, r.page)
}

func (r *ListUsersRequest) All(ctx context.Context) iter.Seq2[vo.User, error] {
	return All(ctx, r.page)
}

type GetUserRequest struct {
	client *Client
	userID string
}

func (c *Client) GetUser(userID string) *GetUserRequest {
	return &GetUserRequest{client: c, userID: userID}
}

func (r *GetUserRequest) Send(ctx context.Context) (*vo.User, error) {
	if r.userID == "" {
		return nil, missingField(getUserEndpoint.String(), "user_id")
	}
	return send[vo.User](ctx, r.client, call{
		endpoint: getUserEndpoint,
		path:     "/users/" + pathID(r.userID),
	})
}

// GetSelfRequest retrieves the bot user of the token.
type GetSelfRequest struct {
	client *Client
}

func (c *Client) GetSelf() *GetSelfRequest {
	return &GetSelfRequest{client: c}
}

func (r *GetSelfRequest) Send(ctx context.Context) (*vo.User, error) {
	return send[vo.User](ctx, r.client, call{
		endpoint: getSelfEndpoint,
		path:     "/users/me",
	})
}
