package notion

import (
	"context"
	"net/http"

	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	createDatabaseEndpoint   = endpoint{http.MethodPost, "/databases"}
	updateDatabaseEndpoint   = endpoint{http.MethodPatch, "/databases/{id}"}
	retrieveDatabaseEndpoint = endpoint{http.MethodGet, "/databases/{id}"}
)

// CreateDatabaseRequest creates a database under a page. Its properties
// become the schema of the initial data source.
type CreateDatabaseRequest struct {
	client       *Client
	parentPageID string
	title        []vo.RichText
	description  []vo.RichText
	properties   map[string]vo.PropertySchema
	icon         *vo.Icon
	cover        *vo.File
	isInline     bool
}

type initialDataSource struct {
	Properties map[string]vo.PropertySchema `json:"properties"`
}

type createDatabaseBody struct {
	Parent            vo.Parent         `json:"parent"`
	Title             []vo.RichText     `json:"title,omitempty"`
	Description       []vo.RichText     `json:"description,omitempty"`
	InitialDataSource initialDataSource `json:"initial_data_source"`
	Icon              *vo.Icon          `json:"icon,omitempty"`
	Cover             *vo.File          `json:"cover,omitempty"`
	IsInline          bool              `json:"is_inline,omitempty"`
}

func (c *Client) CreateDatabase() *CreateDatabaseRequest {
	return &CreateDatabaseRequest{client: c}
}

func (r *CreateDatabaseRequest) PageParent(pageID string) *CreateDatabaseRequest {
	r.parentPageID = pageID
	return r
}

func (r *CreateDatabaseRequest) Title(segments ...vo.RichText) *CreateDatabaseRequest {
	r.title = segments
	return r
}

func (r *CreateDatabaseRequest) Description(segments ...vo.RichText) *CreateDatabaseRequest {
	r.description = segments
	return r
}

func (r *CreateDatabaseRequest) Property(name string, schema vo.PropertySchema) *CreateDatabaseRequest {
	if r.properties == nil {
		r.properties = map[string]vo.PropertySchema{}
	}
	r.properties[name] = schema
	return r
}

func (r *CreateDatabaseRequest) Icon(icon *vo.Icon) *CreateDatabaseRequest {
	r.icon = icon
	return r
}

func (r *CreateDatabaseRequest) Cover(cover vo.File) *CreateDatabaseRequest {
	r.cover = &cover
	return r
}

func (r *CreateDatabaseRequest) Inline(inline bool) *CreateDatabaseRequest {
	r.isInline = inline
	return r
}

func (r *CreateDatabaseRequest) Send(ctx context.Context) (*vo.Database, error) {
	op := createDatabaseEndpoint.String()
	if r.parentPageID == "" {
		return nil, validationError(op, ErrMissingParent, "")
	}
	for name, schema := range r.properties {
		if err := validateSchema(op, name, &schema); err != nil {
			return nil, err
		}
	}
	properties := r.properties
	if properties == nil {
		properties = map[string]vo.PropertySchema{"Name": vo.NewSchema(vo.PropertyTypeTitle)}
	}
	return send[vo.Database](ctx, r.client, call{
		endpoint: createDatabaseEndpoint,
		path:     "/databases",
		body: createDatabaseBody{
			Parent:            vo.PageParent(r.parentPageID),
			Title:             r.title,
			Description:       r.description,
			InitialDataSource: initialDataSource{Properties: properties},
			Icon:              r.icon,
			Cover:             r.cover,
			IsInline:          r.isInline,
		},
	})
}

// UpdateDatabaseRequest is a partial update. A property mapped to nil is
// sent as null, which deletes the column; unmapped properties are left
// untouched.
type UpdateDatabaseRequest struct {
	client      *Client
	databaseID  string
	title       []vo.RichText
	description []vo.RichText
	properties  map[string]*vo.PropertySchema
	icon        *vo.Icon
	cover       *vo.File
	inTrash     *bool
	isInline    *bool
	isLocked    *bool
}

type updateDatabaseBody struct {
	Title       []vo.RichText                 `json:"title,omitempty"`
	Description []vo.RichText                 `json:"description,omitempty"`
	Properties  map[string]*vo.PropertySchema `json:"properties,omitempty"`
	Icon        *vo.Icon                      `json:"icon,omitempty"`
	Cover       *vo.File                      `json:"cover,omitempty"`
	InTrash     *bool                         `json:"in_trash,omitempty"`
	IsInline    *bool                         `json:"is_inline,omitempty"`
	IsLocked    *bool                         `json:"is_locked,omitempty"`
}

func (c *Client) UpdateDatabase(databaseID string) *UpdateDatabaseRequest {
	return &UpdateDatabaseRequest{client: c, databaseID: databaseID}
}

func (r *UpdateDatabaseRequest) Title(segments ...vo.RichText) *UpdateDatabaseRequest {
	r.title = segments
	return r
}

func (r *UpdateDatabaseRequest) Description(segments ...vo.RichText) *UpdateDatabaseRequest {
	r.description = segments
	return r
}

// Property adds or replaces a column.
func (r *UpdateDatabaseRequest) Property(name string, schema vo.PropertySchema) *UpdateDatabaseRequest {
	r.setProperty(name, &schema)
	return r
}

func (r *UpdateDatabaseRequest) RenameProperty(name, newName string) *UpdateDatabaseRequest {
	schema := vo.Rename(newName)
	r.setProperty(name, &schema)
	return r
}

func (r *UpdateDatabaseRequest) DeleteProperty(name string) *UpdateDatabaseRequest {
	r.setProperty(name, nil)
	return r
}

// Properties merges a raw update map; nil entries delete.
func (r *UpdateDatabaseRequest) Properties(properties map[string]*vo.PropertySchema) *UpdateDatabaseRequest {
	for name, schema := range properties {
		r.setProperty(name, schema)
	}
	return r
}

func (r *UpdateDatabaseRequest) setProperty(name string, schema *vo.PropertySchema) {
	if r.properties == nil {
		r.properties = map[string]*vo.PropertySchema{}
	}
	r.properties[name] = schema
}

func (r *UpdateDatabaseRequest) Icon(icon *vo.Icon) *UpdateDatabaseRequest {
	r.icon = icon
	return r
}

func (r *UpdateDatabaseRequest) Cover(cover vo.File) *UpdateDatabaseRequest {
	r.cover = &cover
	return r
}

func (r *UpdateDatabaseRequest) InTrash(inTrash bool) *UpdateDatabaseRequest {
	r.inTrash = &inTrash
	return r
}

func (r *UpdateDatabaseRequest) Inline(inline bool) *UpdateDatabaseRequest {
	r.isInline = &inline
	return r
}

func (r *UpdateDatabaseRequest) Locked(locked bool) *UpdateDatabaseRequest {
	r.isLocked = &locked
	return r
}

func (r *UpdateDatabaseRequest) Send(ctx context.Context) (*vo.Database, error) {
	op := updateDatabaseEndpoint.String()
	if r.databaseID == "" {
		return nil, missingField(op, "database_id")
	}
	for name, schema := range r.properties {
		if err := validateSchema(op, name, schema); err != nil {
			return nil, err
		}
	}
	return send[vo.Database](ctx, r.client, call{
		endpoint: updateDatabaseEndpoint,
		path:     "/databases/" + pathID(r.databaseID),
		body: updateDatabaseBody{
			Title:       r.title,
			Description: r.description,
			Properties:  r.properties,
			Icon:        r.icon,
			Cover:       r.cover,
			InTrash:     r.inTrash,
			IsInline:    r.isInline,
			IsLocked:    r.isLocked,
		},
	})
}

type RetrieveDatabaseRequest struct {
	client     *Client
	databaseID string
}

func (c *Client) RetrieveDatabase(databaseID string) *RetrieveDatabaseRequest {
	return &RetrieveDatabaseRequest{client: c, databaseID: databaseID}
}

func (r *RetrieveDatabaseRequest) Send(ctx context.Context) (*vo.Database, error) {
	if r.databaseID == "" {
		return nil, missingField(retrieveDatabaseEndpoint.String(), "database_id")
	}
	return send[vo.Database](ctx, r.client, call{
		endpoint: retrieveDatabaseEndpoint,
		path:     "/databases/" + pathID(r.databaseID),
	})
}
