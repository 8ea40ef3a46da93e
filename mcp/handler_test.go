package mcp

import (
	"context"
	"net/http"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap/zaptest"

	"github.com/foomo/notion-mcp/notion/notiontest"
	"github.com/foomo/notion-mcp/service"
	"github.com/foomo/notion-mcp/service/vo"
)

const (
	pageID       = "22222222-2222-2222-2222-222222222222"
	dataSourceID = "88888888-8888-8888-8888-888888888888"
)

func testWorkspace() *notiontest.Workspace {
	return notiontest.NewWorkspace().
		Page(pageID, notiontest.Page(pageID, notiontest.PageParent(""), "Roadmap")).
		Children(pageID, notiontest.Paragraph("b1", "Q3 goals")).
		Handle(http.MethodPost, "/search", notiontest.List(
			notiontest.Page(pageID, notiontest.PageParent(""), "Roadmap"),
			`{"object":"data_source","id":"`+dataSourceID+`","title":[{"type":"text","text":{"content":"Tasks"},"plain_text":"Tasks"}],"properties":{},"url":"https://www.notion.so/tasks"}`,
		)).
		Handle(http.MethodPost, "/data_sources/"+dataSourceID+"/query", notiontest.List(
			notiontest.Page(pageID, notiontest.PageParent(""), "Roadmap"),
		)).
		Handle(http.MethodGet, "/users", notiontest.List(
			notiontest.User("u1", "Ada"),
			notiontest.User("u2", "Grace"),
		))
}

func call(name string, args any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Request: mcp.Request{
			Method: "tools/call",
		},
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("handler returned nil result")
	}
	if len(result.Content) == 0 {
		t.Fatal("handler returned no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestNewServer(t *testing.T) {
	ws := testWorkspace()
	server := NewServer(zaptest.NewLogger(t), ws.Client(), nil)
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
}

func TestGetPageMarkdownHandler(t *testing.T) {
	handler := getPageMarkdownHandler(zaptest.NewLogger(t), testWorkspace().Client())

	args := GetPageMarkdownRequest{Page: "https://www.notion.so/Roadmap-22222222222222222222222222222222"}
	result, err := handler(context.Background(), call("get_page_markdown", args), args)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	var response GetPageMarkdownResponse
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Page.Title != "Roadmap" {
		t.Errorf("title = %q", response.Page.Title)
	}
	if !strings.Contains(string(response.Markdown), "Q3 goals") {
		t.Errorf("markdown = %q", response.Markdown)
	}
}

func TestGetPageMarkdownHandlerValidation(t *testing.T) {
	handler := getPageMarkdownHandler(zaptest.NewLogger(t), testWorkspace().Client())

	for _, page := range []string{"", "not-a-page"} {
		args := GetPageMarkdownRequest{Page: page}
		result, err := handler(context.Background(), call("get_page_markdown", args), args)
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if !result.IsError {
			t.Errorf("expected error result for %q", page)
		}
	}
}

func TestGetDocumentHandler(t *testing.T) {
	l := zaptest.NewLogger(t)
	client := testWorkspace().Client()
	handler := getDocumentHandler(l, service.NewService(l, client, 0))

	args := GetDocumentRequest{Page: pageID}
	result, err := handler(context.Background(), call("get_document", args), args)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, result)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", text)
	}
	if !strings.Contains(text, `"title":"Roadmap"`) || !strings.Contains(text, "Q3 goals") {
		t.Errorf("unexpected document: %s", text)
	}
}

func TestGetDocumentResponseJSON(t *testing.T) {
	response := GetDocumentResponse{Document: &vo.Document{
		DocumentSummary: vo.DocumentSummary{ID: "p", URL: "https://www.notion.so/p", Title: "Roadmap"},
		Markdown:        "Q3 <goals> & more",
		Breadcrumb:      []vo.DocumentSummary{{ID: "r", Title: "Home"}},
		Children:        []vo.DocumentSummary{{ID: "c", Title: "Setup"}},
		PrevSiblings:    []vo.DocumentSummary{{ID: "a", Title: "Intro"}},
		NextSiblings:    []vo.DocumentSummary{{ID: "z", Title: "FAQ"}},
	}}
	data, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded GetDocumentResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.Document == nil || decoded.Document.DocumentSummary.Title != "Roadmap" {
		t.Fatalf("unexpected document: %s", data)
	}
	if decoded.Document.Markdown != response.Document.Markdown {
		t.Errorf("markdown changed: %q", decoded.Document.Markdown)
	}
	if len(decoded.Document.Breadcrumb) != 1 || decoded.Document.Breadcrumb[0].ID != "r" {
		t.Errorf("unexpected breadcrumb: %s", data)
	}
}

func TestGetDocumentHandlerRemoteError(t *testing.T) {
	l := zaptest.NewLogger(t)
	handler := getDocumentHandler(l, service.NewService(l, notiontest.NewWorkspace().Client(), 0))

	args := GetDocumentRequest{Page: pageID}
	result, err := handler(context.Background(), call("get_document", args), args)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
	if text := resultText(t, result); !strings.Contains(text, "object_not_found") && !strings.Contains(text, "Could not find") {
		t.Errorf("unexpected error text: %s", text)
	}
}

func TestSearchHandler(t *testing.T) {
	ws := testWorkspace()
	handler := searchHandler(zaptest.NewLogger(t), ws.Client())

	args := SearchRequest{Query: "road", Kind: "page"}
	result, err := handler(context.Background(), call("search", args), args)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var response SearchResponse
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(response.Results))
	}
	if response.Results[0].Title != "Roadmap" || response.Results[1].Title != "Tasks" {
		t.Errorf("unexpected results: %+v", response.Results)
	}
	if response.Results[1].Object != "data_source" || response.Results[1].URL != "https://www.notion.so/tasks" {
		t.Errorf("unexpected data source result: %+v", response.Results[1])
	}

	requests := ws.Requests()
	body := string(requests[len(requests)-1].Body)
	if !strings.Contains(body, `"query":"road"`) || !strings.Contains(body, `"value":"page"`) {
		t.Errorf("unexpected search body: %s", body)
	}
}

func TestSearchHandlerUnknownKind(t *testing.T) {
	handler := searchHandler(zaptest.NewLogger(t), testWorkspace().Client())

	args := SearchRequest{Query: "road", Kind: "database"}
	result, err := handler(context.Background(), call("search", args), args)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result")
	}
}

func TestQueryDataSourceHandler(t *testing.T) {
	ws := testWorkspace()
	handler := queryDataSourceHandler(zaptest.NewLogger(t), ws.Client())

	args := QueryDataSourceRequest{
		DataSource: dataSourceID,
		Filter:     json.RawMessage(`{"property":"Done","checkbox":{"equals":true}}`),
		Sorts:      json.RawMessage(`[{"property":"Name","direction":"ascending"}]`),
	}
	result, err := handler(context.Background(), call("query_data_source", args), args)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	text := resultText(t, result)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", text)
	}

	var response QueryDataSourceResponse
	if err := json.Unmarshal([]byte(text), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Results) != 1 || response.Results[0].Title() != "Roadmap" || response.HasMore {
		t.Errorf("unexpected response: %s", text)
	}

	requests := ws.Requests()
	body := string(requests[len(requests)-1].Body)
	if !strings.Contains(body, `"checkbox":{"equals":true}`) || !strings.Contains(body, `"direction":"ascending"`) {
		t.Errorf("unexpected query body: %s", body)
	}
}

func TestQueryDataSourceHandlerValidation(t *testing.T) {
	ws := testWorkspace()
	handler := queryDataSourceHandler(zaptest.NewLogger(t), ws.Client())

	for name, args := range map[string]QueryDataSourceRequest{
		"missing data source": {},
		"invalid id":          {DataSource: "tasks"},
		"invalid filter":      {DataSource: dataSourceID, Filter: json.RawMessage(`{"property":"Done","checkbox":{"equals":"yes"}}`)},
		"invalid sorts":       {DataSource: dataSourceID, Sorts: json.RawMessage(`{"property":"Name"}`)},
	} {
		result, err := handler(context.Background(), call("query_data_source", args), args)
		if err != nil {
			t.Fatalf("%s: handler returned error: %v", name, err)
		}
		if !result.IsError {
			t.Errorf("%s: expected error result", name)
		}
	}
	if n := len(ws.Requests()); n != 0 {
		t.Errorf("expected no requests, got %d", n)
	}
}

func TestListUsersHandler(t *testing.T) {
	handler := listUsersHandler(zaptest.NewLogger(t), testWorkspace().Client())

	result, err := handler(context.Background(), call("list_users", nil), ListUsersRequest{})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var response ListUsersResponse
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Users) != 2 || response.Users[1].Name != "Grace" {
		t.Errorf("unexpected users: %+v", response.Users)
	}
}
