package notion

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	createCommentEndpoint    = endpoint{http.MethodPost, "/comments"}
	retrieveCommentsEndpoint = endpoint{http.MethodGet, "/comments"}
)

// CreateCommentRequest starts a discussion on a page or replies to an
// existing discussion. Exactly one of the two must be set.
type CreateCommentRequest struct {
	client       *Client
	pageID       string
	discussionID string
	richText     []vo.RichText
	attachments  []string
}

type commentAttachment struct {
	FileUploadID string `json:"file_upload_id"`
}

type createCommentBody struct {
	Parent       *vo.Parent          `json:"parent,omitempty"`
	DiscussionID string              `json:"discussion_id,omitempty"`
	RichText     []vo.RichText       `json:"rich_text"`
	Attachments  []commentAttachment `json:"attachments,omitempty"`
}

func (c *Client) CreateComment() *CreateCommentRequest {
	return &CreateCommentRequest{client: c}
}

func (r *CreateCommentRequest) Page(pageID string) *CreateCommentRequest {
	r.pageID = pageID
	return r
}

func (r *CreateCommentRequest) Discussion(discussionID string) *CreateCommentRequest {
	r.discussionID = discussionID
	return r
}

func (r *CreateCommentRequest) RichText(segments ...vo.RichText) *CreateCommentRequest {
	r.richText = append(r.richText, segments...)
	return r
}

// Attach adds uploaded files by file upload id.
func (r *CreateCommentRequest) Attach(fileUploadIDs ...string) *CreateCommentRequest {
	r.attachments = append(r.attachments, fileUploadIDs...)
	return r
}

func (r *CreateCommentRequest) Send(ctx context.Context) (*vo.Comment, error) {
	op := createCommentEndpoint.String()
	body := createCommentBody{RichText: r.richText}
	switch {
	case r.pageID != "" && r.discussionID != "":
		return nil, validationError(op, ErrAmbiguousParent, "both page_id and discussion_id are set")
	case r.pageID != "":
		parent := vo.PageParent(r.pageID)
		body.Parent = &parent
	case r.discussionID != "":
		body.DiscussionID = r.discussionID
	default:
		return nil, validationError(op, ErrMissingParent, "either page_id or discussion_id is required")
	}
	if len(r.richText) == 0 {
		return nil, missingField(op, "rich_text")
	}
	for _, id := range r.attachments {
		body.Attachments = append(body.Attachments, commentAttachment{FileUploadID: id})
	}
	return send[vo.Comment](ctx, r.client, call{
		endpoint: createCommentEndpoint,
		path:     "/comments",
		body:     body,
	})
}

// RetrieveCommentsRequest lists the unresolved comments of a page or block.
type RetrieveCommentsRequest struct {
	client      *Client
	blockID     string
	startCursor string
	pageSize    int
}

func (c *Client) RetrieveComments(blockID string) *RetrieveCommentsRequest {
	return &RetrieveCommentsRequest{client: c, blockID: blockID}
}

func (r *RetrieveCommentsRequest) StartCursor(cursor string) *RetrieveCommentsRequest {
	r.startCursor = cursor
	return r
}

func (r *RetrieveCommentsRequest) PageSize(n int) *RetrieveCommentsRequest {
	r.pageSize = n
	return r
}

func (r *RetrieveCommentsRequest) Send(ctx context.Context) (*vo.List[vo.Comment], error) {
	if r.blockID == "" {
		return nil, missingField(retrieveCommentsEndpoint.String(), "block_id")
	}
	return send[vo.List[vo.Comment]](ctx, r.client, call{
		endpoint: retrieveCommentsEndpoint,
		path:     "/comments",
		query:    pageQuery(url.Values{"block_id": {r.blockID}}, r.startCursor, r.pageSize),
	})
}

func (r *RetrieveCommentsRequest) page(ctx context.Context, cursor string) (*vo.List[vo.Comment], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	return next.Send(ctx)
}

func (r *RetrieveCommentsRequest) FetchAll(ctx context.Context) ([]vo.Comment, error) {
	return FetchAll(ctx, r.page)
}

func (r *RetrieveCommentsRequest) All(ctx context.Context) iter.Seq2[vo.Comment, error] {
	return All(ctx, r.page)
}
