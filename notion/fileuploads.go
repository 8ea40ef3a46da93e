package notion

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"

	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	createFileUploadEndpoint   = endpoint{http.MethodPost, "/file_uploads"}
	sendFileUploadEndpoint     = endpoint{http.MethodPost, "/file_uploads/{id}/send"}
	completeFileUploadEndpoint = endpoint{http.MethodPost, "/file_uploads/{id}/complete"}
	retrieveFileUploadEndpoint = endpoint{http.MethodGet, "/file_uploads/{id}"}
	listFileUploadsEndpoint    = endpoint{http.MethodGet, "/file_uploads"}
)

// CreateFileUploadRequest starts an upload. single_part is the default
// mode; multi_part needs a filename and the number of parts, external_url
// a filename and the url to import from.
type CreateFileUploadRequest struct {
	client        *Client
	mode          vo.FileUploadMode
	filename      string
	contentType   string
	numberOfParts int
	externalURL   string
}

type createFileUploadBody struct {
	Mode          vo.FileUploadMode `json:"mode"`
	Filename      string            `json:"filename,omitempty"`
	ContentType   string            `json:"content_type,omitempty"`
	NumberOfParts int               `json:"number_of_parts,omitempty"`
	ExternalURL   string            `json:"external_url,omitempty"`
}

func (c *Client) CreateFileUpload() *CreateFileUploadRequest {
	return &CreateFileUploadRequest{client: c, mode: vo.FileUploadModeSinglePart}
}

func (r *CreateFileUploadRequest) Mode(mode vo.FileUploadMode) *CreateFileUploadRequest {
	r.mode = mode
	return r
}

func (r *CreateFileUploadRequest) Filename(filename string) *CreateFileUploadRequest {
	r.filename = filename
	return r
}

func (r *CreateFileUploadRequest) ContentType(contentType string) *CreateFileUploadRequest {
	r.contentType = contentType
	return r
}

func (r *CreateFileUploadRequest) NumberOfParts(n int) *CreateFileUploadRequest {
	r.numberOfParts = n
	return r
}

func (r *CreateFileUploadRequest) ExternalURL(u string) *CreateFileUploadRequest {
	r.externalURL = u
	return r
}

func (r *CreateFileUploadRequest) validate() error {
	op := createFileUploadEndpoint.String()
	switch r.mode {
	case vo.FileUploadModeSinglePart:
	case vo.FileUploadModeMultiPart:
		if r.filename == "" {
			return missingField(op, "filename")
		}
		if r.numberOfParts <= 0 {
			return missingField(op, "number_of_parts")
		}
	case vo.FileUploadModeExternalURL:
		if r.filename == "" {
			return missingField(op, "filename")
		}
		if r.externalURL == "" {
			return missingField(op, "external_url")
		}
	default:
		return validationError(op, ErrMissingField, fmt.Sprintf("unknown mode %q", r.mode))
	}
	return nil
}

func (r *CreateFileUploadRequest) Send(ctx context.Context) (*vo.FileUpload, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	return send[vo.FileUpload](ctx, r.client, call{
		endpoint: createFileUploadEndpoint,
		path:     "/file_uploads",
		body: createFileUploadBody{
			Mode:          r.mode,
			Filename:      r.filename,
			ContentType:   r.contentType,
			NumberOfParts: r.numberOfParts,
			ExternalURL:   r.externalURL,
		},
	})
}

// SendFileUploadRequest transmits file contents, or one part of them in
// multi_part mode, as multipart/form-data.
type SendFileUploadRequest struct {
	client       *Client
	fileUploadID string
	data         []byte
	filename     string
	contentType  string
	partNumber   int
}

func (c *Client) SendFileUpload(fileUploadID string) *SendFileUploadRequest {
	return &SendFileUploadRequest{client: c, fileUploadID: fileUploadID}
}

func (r *SendFileUploadRequest) File(filename string, data []byte) *SendFileUploadRequest {
	r.filename, r.data = filename, data
	return r
}

func (r *SendFileUploadRequest) ContentType(contentType string) *SendFileUploadRequest {
	r.contentType = contentType
	return r
}

// Part numbers the chunk of a multi_part upload, starting at 1.
func (r *SendFileUploadRequest) Part(partNumber int) *SendFileUploadRequest {
	r.partNumber = partNumber
	return r
}

func (r *SendFileUploadRequest) form() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	filename := r.filename
	if filename == "" {
		filename = "untitled"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	contentType := r.contentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(r.data); err != nil {
		return nil, "", err
	}
	if r.partNumber > 0 {
		if err := w.WriteField("part_number", strconv.Itoa(r.partNumber)); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func (r *SendFileUploadRequest) Send(ctx context.Context) (*vo.FileUpload, error) {
	op := sendFileUploadEndpoint.String()
	switch {
	case r.fileUploadID == "":
		return nil, missingField(op, "file_upload_id")
	case r.data == nil:
		return nil, missingField(op, "file")
	}
	data, contentType, err := r.form()
	if err != nil {
		return nil, &Error{Kind: KindDeserialization, Op: op, Err: fmt.Errorf("failed to encode form: %w", err)}
	}
	return send[vo.FileUpload](ctx, r.client, call{
		endpoint:    sendFileUploadEndpoint,
		path:        "/file_uploads/" + pathID(r.fileUploadID) + "/send",
		raw:         data,
		contentType: contentType,
	})
}

// CompleteFileUploadRequest finalizes a multi_part upload after all parts
// were sent.
type CompleteFileUploadRequest struct {
	client       *Client
	fileUploadID string
}

func (c *Client) CompleteFileUpload(fileUploadID string) *CompleteFileUploadRequest {
	return &CompleteFileUploadRequest{client: c, fileUploadID: fileUploadID}
}

func (r *CompleteFileUploadRequest) Send(ctx context.Context) (*vo.FileUpload, error) {
	if r.fileUploadID == "" {
		return nil, missingField(completeFileUploadEndpoint.String(), "file_upload_id")
	}
	return send[vo.FileUpload](ctx, r.client, call{
		endpoint: completeFileUploadEndpoint,
		path:     "/file_uploads/" + pathID(r.fileUploadID) + "/complete",
	})
}

type RetrieveFileUploadRequest struct {
	client       *Client
	fileUploadID string
}

func (c *Client) RetrieveFileUpload(fileUploadID string) *RetrieveFileUploadRequest {
	return &RetrieveFileUploadRequest{client: c, fileUploadID: fileUploadID}
}

func (r *RetrieveFileUploadRequest) Send(ctx context.Context) (*vo.FileUpload, error) {
	if r.fileUploadID == "" {
		return nil, missingField(retrieveFileUploadEndpoint.String(), "file_upload_id")
	}
	return send[vo.FileUpload](ctx, r.client, call{
		endpoint: retrieveFileUploadEndpoint,
		path:     "/file_uploads/" + pathID(r.fileUploadID),
	})
}

type ListFileUploadsRequest struct {
	client      *Client
	status      vo.FileUploadStatus
	startCursor string
	pageSize    int
}

func (c *Client) ListFileUploads() *ListFileUploadsRequest {
	return &ListFileUploadsRequest{client: c}
}

func (r *ListFileUploadsRequest) Status(status vo.FileUploadStatus) *ListFileUploadsRequest {
	r.status = status
	return r
}

func (r *ListFileUploadsRequest) StartCursor(cursor string) *ListFileUploadsRequest {
	r.startCursor = cursor
	return r
}

func (r *ListFileUploadsRequest) PageSize(n int) *ListFileUploadsRequest {
	r.pageSize = n
	return r
}

func (r *ListFileUploadsRequest) Send(ctx context.Context) (*vo.List[vo.FileUpload], error) {
	q := url.Values{}
	if r.status != "" {
		q.Set("status", string(r.status))
	}
	return send[vo.List[vo.FileUpload]](ctx, r.client, call{
		endpoint: listFileUploadsEndpoint,
		path:     "/file_uploads",
		query:    pageQuery(q, r.startCursor, r.pageSize),
	})
}

func (r *ListFileUploadsRequest) page(ctx context.Context, cursor string) (*vo.List[vo.FileUpload], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	return next.Send(ctx)
}

func (r *ListFileUploadsRequest) FetchAll(ctx context.Context) ([]vo.FileUpload, error) {
	return FetchAll(ctx, r.page)
}

func (r *ListFileUploadsRequest) All(ctx context.Context) iter.Seq2[vo.FileUpload, error] {
	return All(ctx, r.page)
}
