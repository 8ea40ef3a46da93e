// Package notiontest provides an in-memory Notion workspace for tests.
package notiontest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/foomo/notion-mcp/notion"
)

// Workspace answers api requests from canned responses keyed by method and
// path. Unknown routes answer 404 object_not_found.
type Workspace struct {
	mu       sync.Mutex
	routes   map[string]string
	requests []notion.Request
}

func NewWorkspace() *Workspace {
	return &Workspace{routes: map[string]string{}}
}

// Handle registers the response body for method and path.
func (w *Workspace) Handle(method, path, body string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.routes[method+" "+path] = body
	return w
}

// Page registers GET /pages/{id}.
func (w *Workspace) Page(id, body string) *Workspace {
	return w.Handle(http.MethodGet, "/pages/"+id, body)
}

// Children registers GET /blocks/{id}/children as a single page list.
func (w *Workspace) Children(id string, blocks ...string) *Workspace {
	return w.Handle(http.MethodGet, "/blocks/"+id+"/children", List(blocks...))
}

// Requests returns a copy of the requests seen so far.
func (w *Workspace) Requests() []notion.Request {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]notion.Request(nil), w.requests...)
}

func (w *Workspace) Do(_ context.Context, req *notion.Request) (*notion.Response, error) {
	w.mu.Lock()
	w.requests = append(w.requests, *req)
	body, ok := w.routes[req.Method+" "+req.Path]
	w.mu.Unlock()

	if !ok {
		return respond(http.StatusNotFound, fmt.Sprintf(
			`{"object":"error","status":404,"code":"object_not_found","message":"Could not find %s"}`, req.Path,
		)), nil
	}
	return respond(http.StatusOK, body), nil
}

// Client returns a client backed by the workspace.
func (w *Workspace) Client(opts ...notion.Option) *notion.Client {
	return notion.New("secret_test", append(opts, notion.WithTransport(w))...)
}

func respond(status int, body string) *notion.Response {
	return &notion.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// List wraps raw objects in a list response without further pages.
func List(results ...string) string {
	return `{"object":"list","results":[` + strings.Join(results, ",") + `],"next_cursor":null,"has_more":false}`
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// PageParent renders a page_id parent, or a workspace parent for "".
func PageParent(id string) string {
	if id == "" {
		return `{"type":"workspace","workspace":true}`
	}
	return `{"type":"page_id","page_id":` + quote(id) + `}`
}

// Page renders a page object with a title property.
func Page(id, parent, title string) string {
	return `{"object":"page","id":` + quote(id) +
		`,"last_edited_time":"2025-01-02T03:04:00.000Z","parent":` + parent +
		`,"archived":false,"in_trash":false,"properties":{"Name":{"id":"title","type":"title","title":[` +
		`{"type":"text","text":{"content":` + quote(title) + `},"plain_text":` + quote(title) + `}]}}` +
		`,"url":"https://www.notion.so/` + strings.ReplaceAll(id, "-", "") + `"}`
}

func block(id string, hasChildren bool, typ, payload string) string {
	return fmt.Sprintf(`{"object":"block","id":%s,"has_children":%t,"archived":false,"in_trash":false,"type":%q,%q:%s}`,
		quote(id), hasChildren, typ, typ, payload)
}

// Paragraph renders a paragraph block holding plain text.
func Paragraph(id, text string) string {
	return block(id, false, "paragraph",
		`{"rich_text":[{"type":"text","text":{"content":`+quote(text)+`},"plain_text":`+quote(text)+`}],"color":"default"}`)
}

// ChildPage renders a child_page block.
func ChildPage(id, title string) string {
	return block(id, true, "child_page", `{"title":`+quote(title)+`}`)
}

// User renders a person user.
func User(id, name string) string {
	return `{"object":"user","id":` + quote(id) + `,"type":"person","name":` + quote(name) +
		`,"person":{"email":"` + strings.ToLower(name) + `@example.com"}}`
}
