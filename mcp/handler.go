package mcp

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/foomo/notion-mcp/markdown"
	"github.com/foomo/notion-mcp/notion"
	"github.com/foomo/notion-mcp/notion/filter"
	notionvo "github.com/foomo/notion-mcp/notion/vo"
	"github.com/foomo/notion-mcp/service"
	"github.com/foomo/notion-mcp/service/vo"
)

const Version = "0.1.0"

type GetPageMarkdownRequest struct {
	Page string `json:"page"` // Page id or Notion URL
}

type GetPageMarkdownResponse struct {
	Page     vo.DocumentSummary `json:"page"`
	Markdown vo.Markdown        `json:"markdown"`
}

type GetDocumentRequest struct {
	Page string `json:"page"` // Page id or Notion URL
}

type GetDocumentResponse struct {
	Document *vo.Document `json:"document"` // The document with full structure
}

type SearchRequest struct {
	Query string `json:"query"`
	Kind  string `json:"kind,omitempty"` // page or data_source
}

type SearchResult struct {
	Object string `json:"object"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url,omitempty"`
}

type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

type QueryDataSourceRequest struct {
	DataSource  string          `json:"data_source"` // Data source id or Notion URL
	Filter      json.RawMessage `json:"filter,omitempty"`
	Sorts       json.RawMessage `json:"sorts,omitempty"`
	StartCursor string          `json:"start_cursor,omitempty"`
	PageSize    int             `json:"page_size,omitempty"`
}

type QueryDataSourceResponse struct {
	Results    []notionvo.Page `json:"results"`
	NextCursor string          `json:"next_cursor,omitempty"`
	HasMore    bool            `json:"has_more"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []notionvo.User `json:"users"`
}

// NewServer creates a new MCP server exposing the Notion tools
func NewServer(l *zap.Logger, client *notion.Client, serviceInstance service.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"Notion MCP",
		Version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(mcp.NewTool("get_page_markdown",
		mcp.WithDescription("Get the content of a Notion page as markdown"),
		mcp.WithString("page",
			mcp.Required(),
			mcp.Description("The page id or Notion URL"),
		),
	), mcp.NewTypedToolHandler(getPageMarkdownHandler(l, client)))

	if serviceInstance != nil {
		s.AddTool(mcp.NewTool("get_document",
			mcp.WithDescription("Get a page with full structure including breadcrumbs, siblings, and children"),
			mcp.WithString("page",
				mcp.Required(),
				mcp.Description("The page id or Notion URL"),
			),
		), mcp.NewTypedToolHandler(getDocumentHandler(l, serviceInstance)))
	}

	s.AddTool(mcp.NewTool("search",
		mcp.WithDescription("Search pages and data sources shared with the integration by title"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to match against titles"),
		),
		mcp.WithString("kind",
			mcp.Description("Restrict results to one object kind"),
			mcp.Enum(string(notionvo.ObjectTypePage), string(notionvo.ObjectTypeDataSource)),
		),
	), mcp.NewTypedToolHandler(searchHandler(l, client)))

	s.AddTool(mcp.NewTool("query_data_source",
		mcp.WithDescription("Query the pages of a data source with an optional Notion filter and sorts"),
		mcp.WithString("data_source",
			mcp.Required(),
			mcp.Description("The data source id or Notion URL"),
		),
		mcp.WithObject("filter",
			mcp.Description(`A Notion filter object, e.g. {"property":"Done","checkbox":{"equals":true}}`),
		),
		mcp.WithArray("sorts",
			mcp.Description(`Sort objects, e.g. [{"property":"Name","direction":"ascending"}]`),
		),
		mcp.WithString("start_cursor",
			mcp.Description("Cursor returned by a previous query"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Results per page, at most 100"),
		),
	), mcp.NewTypedToolHandler(queryDataSourceHandler(l, client)))

	s.AddTool(mcp.NewTool("list_users",
		mcp.WithDescription("List all users of the workspace"),
	), mcp.NewTypedToolHandler(listUsersHandler(l, client)))

	return s
}

func toolResult(ctx context.Context, l *zap.Logger, tool string, response any, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		fields := []zap.Field{zap.String("tool", tool), zap.Error(err)}
		if r, ok := HTTPRequestFromContext(ctx); ok {
			fields = append(fields, zap.String("remote", r.RemoteAddr))
		}
		l.Warn("tool failed", fields...)
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err)), nil
	}
	responseBytes, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseBytes)), nil
}

func getPageMarkdownHandler(l *zap.Logger, client *notion.Client) func(ctx context.Context, request mcp.CallToolRequest, args GetPageMarkdownRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetPageMarkdownRequest) (*mcp.CallToolResult, error) {
		if args.Page == "" {
			return mcp.NewToolResultError("page is required"), nil
		}
		id, err := notion.ParseID(args.Page)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		page, err := client.GetPage(id).Send(ctx)
		if err != nil {
			return toolResult(ctx, l, "get_page_markdown", nil, err)
		}
		md, err := markdown.Render(ctx, markdown.ClientFetcher(client), id)
		return toolResult(ctx, l, "get_page_markdown", GetPageMarkdownResponse{
			Page: vo.DocumentSummary{
				ID:             page.ID,
				URL:            page.URL,
				Title:          page.Title(),
				LastEditedTime: page.LastEditedTime,
			},
			Markdown: md,
		}, err)
	}
}

func getDocumentHandler(l *zap.Logger, serviceInstance service.Service) func(ctx context.Context, request mcp.CallToolRequest, args GetDocumentRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args GetDocumentRequest) (*mcp.CallToolResult, error) {
		if args.Page == "" {
			return mcp.NewToolResultError("page is required"), nil
		}
		document, err := serviceInstance.GetDocument(ctx, args.Page)
		return toolResult(ctx, l, "get_document", GetDocumentResponse{Document: document}, err)
	}
}

func searchHandler(l *zap.Logger, client *notion.Client) func(ctx context.Context, request mcp.CallToolRequest, args SearchRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args SearchRequest) (*mcp.CallToolResult, error) {
		req := client.Search().Query(args.Query).PageSize(notion.MaxPageSize)
		switch kind := notionvo.ObjectType(args.Kind); kind {
		case "":
		case notionvo.ObjectTypePage, notionvo.ObjectTypeDataSource:
			req.Only(kind)
		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown kind %q", args.Kind)), nil
		}
		list, err := req.Send(ctx)
		if err != nil {
			return toolResult(ctx, l, "search", nil, err)
		}
		response := SearchResponse{Results: make([]SearchResult, 0, len(list.Results))}
		for _, r := range list.Results {
			result := SearchResult{Object: string(r.Object), Title: r.Title()}
			switch {
			case r.Page != nil:
				result.ID, result.URL = r.Page.ID, r.Page.URL
			case r.DataSource != nil:
				result.ID, result.URL = r.DataSource.ID, r.DataSource.URL
			}
			response.Results = append(response.Results, result)
		}
		return toolResult(ctx, l, "search", response, nil)
	}
}

func queryDataSourceHandler(l *zap.Logger, client *notion.Client) func(ctx context.Context, request mcp.CallToolRequest, args QueryDataSourceRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args QueryDataSourceRequest) (*mcp.CallToolResult, error) {
		if args.DataSource == "" {
			return mcp.NewToolResultError("data_source is required"), nil
		}
		id, err := notion.ParseID(args.DataSource)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req := client.QueryDataSource(id).StartCursor(args.StartCursor).PageSize(args.PageSize)
		if len(args.Filter) > 0 && string(args.Filter) != "null" {
			var f filter.Filter
			if err := json.Unmarshal(args.Filter, &f); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid filter: %v", err)), nil
			}
			req.Filter(f)
		}
		if len(args.Sorts) > 0 && string(args.Sorts) != "null" {
			var sorts []filter.Sort
			if err := json.Unmarshal(args.Sorts, &sorts); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("invalid sorts: %v", err)), nil
			}
			req.Sort(sorts...)
		}
		list, err := req.Send(ctx)
		if err != nil {
			return toolResult(ctx, l, "query_data_source", nil, err)
		}
		return toolResult(ctx, l, "query_data_source", QueryDataSourceResponse{
			Results:    list.Results,
			NextCursor: list.Cursor(),
			HasMore:    list.HasMore,
		}, nil)
	}
}

func listUsersHandler(l *zap.Logger, client *notion.Client) func(ctx context.Context, request mcp.CallToolRequest, args ListUsersRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args ListUsersRequest) (*mcp.CallToolResult, error) {
		users, err := client.ListUsers().FetchAll(ctx)
		return toolResult(ctx, l, "list_users", ListUsersResponse{Users: users}, err)
	}
}
