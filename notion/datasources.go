package notion

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/foomo/notion-mcp/notion/filter"
	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	createDataSourceEndpoint   = endpoint{http.MethodPost, "/data_sources"}
	retrieveDataSourceEndpoint = endpoint{http.MethodGet, "/data_sources/{id}"}
	updateDataSourceEndpoint   = endpoint{http.MethodPatch, "/data_sources/{id}"}
	queryDataSourceEndpoint    = endpoint{http.MethodPost, "/data_sources/{id}/query"}
	listTemplatesEndpoint      = endpoint{http.MethodGet, "/data_sources/{id}/templates"}
)

// CreateDataSourceRequest adds a data source to an existing database.
type CreateDataSourceRequest struct {
	client     *Client
	databaseID string
	title      []vo.RichText
	properties map[string]vo.PropertySchema
	icon       *vo.Icon
}

type createDataSourceBody struct {
	Parent     vo.Parent                    `json:"parent"`
	Title      []vo.RichText                `json:"title,omitempty"`
	Properties map[string]vo.PropertySchema `json:"properties"`
	Icon       *vo.Icon                     `json:"icon,omitempty"`
}

func (c *Client) CreateDataSource() *CreateDataSourceRequest {
	return &CreateDataSourceRequest{client: c}
}

func (r *CreateDataSourceRequest) DatabaseParent(databaseID string) *CreateDataSourceRequest {
	r.databaseID = databaseID
	return r
}

func (r *CreateDataSourceRequest) Title(segments ...vo.RichText) *CreateDataSourceRequest {
	r.title = segments
	return r
}

func (r *CreateDataSourceRequest) Property(name string, schema vo.PropertySchema) *CreateDataSourceRequest {
	if r.properties == nil {
		r.properties = map[string]vo.PropertySchema{}
	}
	r.properties[name] = schema
	return r
}

func (r *CreateDataSourceRequest) Icon(icon *vo.Icon) *CreateDataSourceRequest {
	r.icon = icon
	return r
}

func (r *CreateDataSourceRequest) Send(ctx context.Context) (*vo.DataSource, error) {
	op := createDataSourceEndpoint.String()
	switch {
	case r.databaseID == "":
		return nil, validationError(op, ErrMissingParent, "")
	case len(r.properties) == 0:
		return nil, missingField(op, "properties")
	}
	for name, schema := range r.properties {
		if err := validateSchema(op, name, &schema); err != nil {
			return nil, err
		}
	}
	return send[vo.DataSource](ctx, r.client, call{
		endpoint: createDataSourceEndpoint,
		path:     "/data_sources",
		body: createDataSourceBody{
			Parent:     vo.DatabaseParent(r.databaseID),
			Title:      r.title,
			Properties: r.properties,
			Icon:       r.icon,
		},
	})
}

type RetrieveDataSourceRequest struct {
	client       *Client
	dataSourceID string
}

func (c *Client) RetrieveDataSource(dataSourceID string) *RetrieveDataSourceRequest {
	return &RetrieveDataSourceRequest{client: c, dataSourceID: dataSourceID}
}

func (r *RetrieveDataSourceRequest) Send(ctx context.Context) (*vo.DataSource, error) {
	if r.dataSourceID == "" {
		return nil, missingField(retrieveDataSourceEndpoint.String(), "data_source_id")
	}
	return send[vo.DataSource](ctx, r.client, call{
		endpoint: retrieveDataSourceEndpoint,
		path:     "/data_sources/" + pathID(r.dataSourceID),
	})
}

// UpdateDataSourceRequest changes title, icon or schema of a data source.
// Property entries follow the rules of UpdateDatabaseRequest.
type UpdateDataSourceRequest struct {
	client       *Client
	dataSourceID string
	title        []vo.RichText
	properties   map[string]*vo.PropertySchema
	icon         *vo.Icon
	inTrash      *bool
}

type updateDataSourceBody struct {
	Title      []vo.RichText                 `json:"title,omitempty"`
	Properties map[string]*vo.PropertySchema `json:"properties,omitempty"`
	Icon       *vo.Icon                      `json:"icon,omitempty"`
	InTrash    *bool                         `json:"in_trash,omitempty"`
}

func (c *Client) UpdateDataSource(dataSourceID string) *UpdateDataSourceRequest {
	return &UpdateDataSourceRequest{client: c, dataSourceID: dataSourceID}
}

func (r *UpdateDataSourceRequest) Title(segments ...vo.RichText) *UpdateDataSourceRequest {
	r.title = segments
	return r
}

func (r *UpdateDataSourceRequest) Property(name string, schema vo.PropertySchema) *UpdateDataSourceRequest {
	r.setProperty(name, &schema)
	return r
}

func (r *UpdateDataSourceRequest) RenameProperty(name, newName string) *UpdateDataSourceRequest {
	schema := vo.Rename(newName)
	r.setProperty(name, &schema)
	return r
}

func (r *UpdateDataSourceRequest) DeleteProperty(name string) *UpdateDataSourceRequest {
	r.setProperty(name, nil)
	return r
}

func (r *UpdateDataSourceRequest) setProperty(name string, schema *vo.PropertySchema) {
	if r.properties == nil {
		r.properties = map[string]*vo.PropertySchema{}
	}
	r.properties[name] = schema
}

func (r *UpdateDataSourceRequest) Icon(icon *vo.Icon) *UpdateDataSourceRequest {
	r.icon = icon
	return r
}

func (r *UpdateDataSourceRequest) InTrash(inTrash bool) *UpdateDataSourceRequest {
	r.inTrash = &inTrash
	return r
}

func (r *UpdateDataSourceRequest) Send(ctx context.Context) (*vo.DataSource, error) {
	op := updateDataSourceEndpoint.String()
	if r.dataSourceID == "" {
		return nil, missingField(op, "data_source_id")
	}
	for name, schema := range r.properties {
		if err := validateSchema(op, name, schema); err != nil {
			return nil, err
		}
	}
	return send[vo.DataSource](ctx, r.client, call{
		endpoint: updateDataSourceEndpoint,
		path:     "/data_sources/" + pathID(r.dataSourceID),
		body: updateDataSourceBody{
			Title:      r.title,
			Properties: r.properties,
			Icon:       r.icon,
			InTrash:    r.inTrash,
		},
	})
}

// QueryDataSourceRequest lists the pages of a data source matching an
// optional filter.
type QueryDataSourceRequest struct {
	client           *Client
	dataSourceID     string
	filter           *filter.Filter
	sorts            []filter.Sort
	filterProperties []string
	startCursor      string
	pageSize         int
}

type queryDataSourceBody struct {
	Filter      *filter.Filter `json:"filter,omitempty"`
	Sorts       []filter.Sort  `json:"sorts,omitempty"`
	StartCursor string         `json:"start_cursor,omitempty"`
	PageSize    int            `json:"page_size,omitempty"`
}

func (c *Client) QueryDataSource(dataSourceID string) *QueryDataSourceRequest {
	return &QueryDataSourceRequest{client: c, dataSourceID: dataSourceID}
}

func (r *QueryDataSourceRequest) Filter(f filter.Filter) *QueryDataSourceRequest {
	r.filter = &f
	return r
}

func (r *QueryDataSourceRequest) Sort(sorts ...filter.Sort) *QueryDataSourceRequest {
	r.sorts = append(r.sorts, sorts...)
	return r
}

// FilterProperties limits the returned page properties to the given ids.
func (r *QueryDataSourceRequest) FilterProperties(ids ...string) *QueryDataSourceRequest {
	r.filterProperties = append(r.filterProperties, ids...)
	return r
}

func (r *QueryDataSourceRequest) StartCursor(cursor string) *QueryDataSourceRequest {
	r.startCursor = cursor
	return r
}

func (r *QueryDataSourceRequest) PageSize(n int) *QueryDataSourceRequest {
	r.pageSize = n
	return r
}

func (r *QueryDataSourceRequest) Send(ctx context.Context) (*vo.List[vo.Page], error) {
	if r.dataSourceID == "" {
		return nil, missingField(queryDataSourceEndpoint.String(), "data_source_id")
	}
	var q url.Values
	if len(r.filterProperties) > 0 {
		q = url.Values{"filter_properties": r.filterProperties}
	}
	return send[vo.List[vo.Page]](ctx, r.client, call{
		endpoint: queryDataSourceEndpoint,
		path:     "/data_sources/" + pathID(r.dataSourceID) + "/query",
		query:    q,
		body: queryDataSourceBody{
			Filter:      r.filter,
			Sorts:       r.sorts,
			StartCursor: r.startCursor,
			PageSize:    clampPageSize(r.pageSize),
		},
	})
}

func (r *QueryDataSourceRequest) page(ctx context.Context, cursor string) (*vo.List[vo.Page], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	return next.Send(ctx)
}

func (r *QueryDataSourceRequest) FetchAll(ctx context.Context) ([]vo.Page, error) {
	return FetchAll(ctx, r.page)
}

func (r *QueryDataSourceRequest) All(ctx context.Context) iter.Seq2[vo.Page, error] {
	return All(ctx, r.page)
}

// ListTemplatesRequest lists the page templates of a data source.
type ListTemplatesRequest struct {
	client       *Client
	dataSourceID string
	name         string
	startCursor  string
	pageSize     int
}

func (c *Client) ListDataSourceTemplates(dataSourceID string) *ListTemplatesRequest {
	return &ListTemplatesRequest{client: c, dataSourceID: dataSourceID}
}

// Name filters templates by name.
func (r *ListTemplatesRequest) Name(name string) *ListTemplatesRequest {
	r.name = name
	return r
}

func (r *ListTemplatesRequest) StartCursor(cursor string) *ListTemplatesRequest {
	r.startCursor = cursor
	return r
}

func (r *ListTemplatesRequest) PageSize(n int) *ListTemplatesRequest {
	r.pageSize = n
	return r
}

func (r *ListTemplatesRequest) Send(ctx context.Context) (*vo.TemplateList, error) {
	if r.dataSourceID == "" {
		return nil, missingField(listTemplatesEndpoint.String(), "data_source_id")
	}
	q := url.Values{}
	if r.name != "" {
		q.Set("name", r.name)
	}
	return send[vo.TemplateList](ctx, r.client, call{
		endpoint: listTemplatesEndpoint,
		path:     "/data_sources/" + pathID(r.dataSourceID) + "/templates",
		query:    pageQuery(q, r.startCursor, r.pageSize),
	})
}

func (r *ListTemplatesRequest) page(ctx context.Context, cursor string) (*vo.List[vo.DataSourceTemplate], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	templates, err := next.Send(ctx)
	if err != nil {
		return nil, err
	}
	return &vo.List[vo.DataSourceTemplate]{
		Object:     "list",
		Results:    templates.Templates,
		HasMore:    templates.HasMore,
		NextCursor: templates.NextCursor,
	}, nil
}

func (r *ListTemplatesRequest) FetchAll(ctx context.Context) ([]vo.DataSourceTemplate, error) {
	return FetchAll(ctx, r.page)
}
