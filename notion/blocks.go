package notion

import (
	"context"
	"fmt"
	"iter"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	getBlockEndpoint            = endpoint{http.MethodGet, "/blocks/{id}"}
	getBlockChildrenEndpoint    = endpoint{http.MethodGet, "/blocks/{id}/children"}
	appendBlockChildrenEndpoint = endpoint{http.MethodPatch, "/blocks/{id}/children"}
	updateBlockEndpoint         = endpoint{http.MethodPatch, "/blocks/{id}"}
	deleteBlockEndpoint         = endpoint{http.MethodDelete, "/blocks/{id}"}
)

type GetBlockRequest struct {
	client  *Client
	blockID string
}

func (c *Client) GetBlock(blockID string) *GetBlockRequest {
	return &GetBlockRequest{client: c, blockID: blockID}
}

func (r *GetBlockRequest) Send(ctx context.Context) (*vo.BlockResponse, error) {
	if r.blockID == "" {
		return nil, missingField(getBlockEndpoint.String(), "block_id")
	}
	return send[vo.BlockResponse](ctx, r.client, call{
		endpoint: getBlockEndpoint,
		path:     "/blocks/" + pathID(r.blockID),
	})
}

// GetBlockChildrenRequest lists the direct children of a block or page.
type GetBlockChildrenRequest struct {
	client      *Client
	blockID     string
	startCursor string
	pageSize    int
}

func (c *Client) GetBlockChildren(blockID string) *GetBlockChildrenRequest {
	return &GetBlockChildrenRequest{client: c, blockID: blockID}
}

func (r *GetBlockChildrenRequest) StartCursor(cursor string) *GetBlockChildrenRequest {
	r.startCursor = cursor
	return r
}

func (r *GetBlockChildrenRequest) PageSize(n int) *GetBlockChildrenRequest {
	r.pageSize = n
	return r
}

func (r *GetBlockChildrenRequest) Send(ctx context.Context) (*vo.List[vo.BlockResponse], error) {
	if r.blockID == "" {
		return nil, missingField(getBlockChildrenEndpoint.String(), "block_id")
	}
	return send[vo.List[vo.BlockResponse]](ctx, r.client, call{
		endpoint: getBlockChildrenEndpoint,
		path:     "/blocks/" + pathID(r.blockID) + "/children",
		query:    pageQuery(nil, r.startCursor, r.pageSize),
	})
}

func (r *GetBlockChildrenRequest) page(ctx context.Context, cursor string) (*vo.List[vo.BlockResponse], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	return next.Send(ctx)
}

func (r *GetBlockChildrenRequest) FetchAll(ctx context.Context) ([]vo.BlockResponse, error) {
	return FetchAll(ctx, r.page)
}

func (r *GetBlockChildrenRequest) All(ctx context.Context) iter.Seq2[vo.BlockResponse, error] {
	return All(ctx, r.page)
}

// AppendBlockChildrenRequest appends blocks at the end of a parent, or
// after an existing child when After is set.
type AppendBlockChildrenRequest struct {
	client   *Client
	blockID  string
	children []vo.Block
	after    string
}

type appendBlockChildrenBody struct {
	Children []vo.Block `json:"children"`
	After    string     `json:"after,omitempty"`
}

func (c *Client) AppendBlockChildren(blockID string) *AppendBlockChildrenRequest {
	return &AppendBlockChildrenRequest{client: c, blockID: blockID}
}

func (r *AppendBlockChildrenRequest) Children(blocks ...vo.Block) *AppendBlockChildrenRequest {
	r.children = append(r.children, blocks...)
	return r
}

func (r *AppendBlockChildrenRequest) After(blockID string) *AppendBlockChildrenRequest {
	r.after = blockID
	return r
}

func (r *AppendBlockChildrenRequest) Send(ctx context.Context) (*vo.List[vo.BlockResponse], error) {
	op := appendBlockChildrenEndpoint.String()
	switch {
	case r.blockID == "":
		return nil, missingField(op, "block_id")
	case len(r.children) == 0:
		return nil, missingField(op, "children")
	}
	return send[vo.List[vo.BlockResponse]](ctx, r.client, call{
		endpoint: appendBlockChildrenEndpoint,
		path:     "/blocks/" + pathID(r.blockID) + "/children",
		body:     appendBlockChildrenBody{Children: r.children, After: r.after},
	})
}

// UpdateBlockRequest replaces the payload of a block. The block type must
// match the existing one.
type UpdateBlockRequest struct {
	client  *Client
	blockID string
	block   *vo.Block
	inTrash *bool
}

func (c *Client) UpdateBlock(blockID string) *UpdateBlockRequest {
	return &UpdateBlockRequest{client: c, blockID: blockID}
}

func (r *UpdateBlockRequest) Block(block vo.Block) *UpdateBlockRequest {
	r.block = &block
	return r
}

func (r *UpdateBlockRequest) InTrash(inTrash bool) *UpdateBlockRequest {
	r.inTrash = &inTrash
	return r
}

func (r *UpdateBlockRequest) body() (any, error) {
	if r.block == nil {
		return map[string]bool{"in_trash": *r.inTrash}, nil
	}
	if r.inTrash == nil {
		return r.block, nil
	}
	data, err := json.Marshal(r.block)
	if err != nil {
		return nil, err
	}
	// splice in_trash next to the block payload
	field := `,"in_trash":false}`
	if *r.inTrash {
		field = `,"in_trash":true}`
	}
	return json.RawMessage(append(data[:len(data)-1], field...)), nil
}

func (r *UpdateBlockRequest) Send(ctx context.Context) (*vo.BlockResponse, error) {
	op := updateBlockEndpoint.String()
	switch {
	case r.blockID == "":
		return nil, missingField(op, "block_id")
	case r.block == nil && r.inTrash == nil:
		return nil, missingField(op, "block")
	}
	body, err := r.body()
	if err != nil {
		return nil, &Error{Kind: KindDeserialization, Op: op, Err: fmt.Errorf("failed to encode block: %w", err)}
	}
	return send[vo.BlockResponse](ctx, r.client, call{
		endpoint: updateBlockEndpoint,
		path:     "/blocks/" + pathID(r.blockID),
		body:     body,
	})
}

// DeleteBlockRequest moves a block to the trash.
type DeleteBlockRequest struct {
	client  *Client
	blockID string
}

func (c *Client) DeleteBlock(blockID string) *DeleteBlockRequest {
	return &DeleteBlockRequest{client: c, blockID: blockID}
}

func (r *DeleteBlockRequest) Send(ctx context.Context) (*vo.BlockResponse, error) {
	if r.blockID == "" {
		return nil, missingField(deleteBlockEndpoint.String(), "block_id")
	}
	return send[vo.BlockResponse](ctx, r.client, call{
		endpoint: deleteBlockEndpoint,
		path:     "/blocks/" + pathID(r.blockID),
	})
}
