package notion

import (
	"context"
	"iter"
	"net/http"
	"net/url"

	"github.com/foomo/notion-mcp/notion/vo"
)

var (
	getPageEndpoint         = endpoint{http.MethodGet, "/pages/{id}"}
	getPagePropertyEndpoint = endpoint{http.MethodGet, "/pages/{id}/properties/{property}"}
	createPageEndpoint      = endpoint{http.MethodPost, "/pages"}
	updatePageEndpoint      = endpoint{http.MethodPatch, "/pages/{id}"}
	movePageEndpoint        = endpoint{http.MethodPost, "/pages/{id}/move"}
)

type GetPageRequest struct {
	client           *Client
	pageID           string
	filterProperties []string
}

func (c *Client) GetPage(pageID string) *GetPageRequest {
	return &GetPageRequest{client: c, pageID: pageID}
}

// FilterProperties limits the returned properties to the given ids.
func (r *GetPageRequest) FilterProperties(ids ...string) *GetPageRequest {
	r.filterProperties = append(r.filterProperties, ids...)
	return r
}

func (r *GetPageRequest) Send(ctx context.Context) (*vo.Page, error) {
	if r.pageID == "" {
		return nil, missingField(getPageEndpoint.String(), "page_id")
	}
	var q url.Values
	if len(r.filterProperties) > 0 {
		q = url.Values{"filter_properties": r.filterProperties}
	}
	return send[vo.Page](ctx, r.client, call{
		endpoint: getPageEndpoint,
		path:     "/pages/" + pathID(r.pageID),
		query:    q,
	})
}

// GetPagePropertyItemRequest retrieves one property of a page. Title, rich
// text, relation, people and rollup properties are paginated.
type GetPagePropertyItemRequest struct {
	client      *Client
	pageID      string
	propertyID  string
	startCursor string
	pageSize    int
}

func (c *Client) GetPagePropertyItem(pageID, propertyID string) *GetPagePropertyItemRequest {
	return &GetPagePropertyItemRequest{client: c, pageID: pageID, propertyID: propertyID}
}

func (r *GetPagePropertyItemRequest) StartCursor(cursor string) *GetPagePropertyItemRequest {
	r.startCursor = cursor
	return r
}

func (r *GetPagePropertyItemRequest) PageSize(n int) *GetPagePropertyItemRequest {
	r.pageSize = n
	return r
}

func (r *GetPagePropertyItemRequest) Send(ctx context.Context) (*vo.PropertyItem, error) {
	op := getPagePropertyEndpoint.String()
	switch {
	case r.pageID == "":
		return nil, missingField(op, "page_id")
	case r.propertyID == "":
		return nil, missingField(op, "property_id")
	}
	return send[vo.PropertyItem](ctx, r.client, call{
		endpoint: getPagePropertyEndpoint,
		path:     "/pages/" + pathID(r.pageID) + "/properties/" + pathID(r.propertyID),
		query:    pageQuery(nil, r.startCursor, r.pageSize),
	})
}

// page treats a single valued item as a one element list.
func (r *GetPagePropertyItemRequest) page(ctx context.Context, cursor string) (*vo.List[vo.PropertyValue], error) {
	next := *r
	next.startCursor = cursor
	next.pageSize = MaxPageSize
	item, err := next.Send(ctx)
	if err != nil {
		return nil, err
	}
	if item.List != nil {
		return item.List, nil
	}
	list := &vo.List[vo.PropertyValue]{Object: "list", Results: []vo.PropertyValue{}}
	if item.Value != nil {
		list.Results = append(list.Results, *item.Value)
	}
	return list, nil
}

func (r *GetPagePropertyItemRequest) FetchAll(ctx context.Context) ([]vo.PropertyValue, error) {
	return FetchAll(ctx, r.page)
}

func (r *GetPagePropertyItemRequest) All(ctx context.Context) iter.Seq2[vo.PropertyValue, error] {
	return All(ctx, r.page)
}

type TemplateType string

const (
	TemplateNone    TemplateType = "none"
	TemplateDefault TemplateType = "default"
	TemplateByID    TemplateType = "template_id"
)

// PageTemplate selects the data source template applied to a new page.
type PageTemplate struct {
	Type       TemplateType `json:"type"`
	TemplateID string       `json:"template_id,omitempty"`
}

func UseTemplate(templateID string) PageTemplate {
	return PageTemplate{Type: TemplateByID, TemplateID: templateID}
}

type PositionType string

const (
	PositionAfterBlock PositionType = "after_block"
	PositionPageStart  PositionType = "page_start"
	PositionPageEnd    PositionType = "page_end"
)

// PagePosition places a new page among the blocks of its parent page.
type PagePosition struct {
	Type       PositionType  `json:"type"`
	AfterBlock *vo.ObjectRef `json:"after_block,omitempty"`
}

func AfterBlock(blockID string) PagePosition {
	return PagePosition{Type: PositionAfterBlock, AfterBlock: &vo.ObjectRef{ID: blockID}}
}

type CreatePageRequest struct {
	client             *Client
	parentPageID       string
	parentDataSourceID string
	properties         map[string]vo.PropertyValue
	children           []vo.Block
	icon               *vo.Icon
	cover              *vo.File
	template           *PageTemplate
	position           *PagePosition
}

type createPageBody struct {
	Parent     vo.Parent                   `json:"parent"`
	Properties map[string]vo.PropertyValue `json:"properties"`
	Children   []vo.Block                  `json:"children,omitempty"`
	Icon       *vo.Icon                    `json:"icon,omitempty"`
	Cover      *vo.File                    `json:"cover,omitempty"`
	Template   *PageTemplate               `json:"template,omitempty"`
	Position   *PagePosition               `json:"position,omitempty"`
}

func (c *Client) CreatePage() *CreatePageRequest {
	return &CreatePageRequest{client: c}
}

// PageParent creates the page as a child of a page.
func (r *CreatePageRequest) PageParent(pageID string) *CreatePageRequest {
	r.parentPageID = pageID
	return r
}

// DataSourceParent creates the page as a row of a data source.
func (r *CreatePageRequest) DataSourceParent(dataSourceID string) *CreatePageRequest {
	r.parentDataSourceID = dataSourceID
	return r
}

func (r *CreatePageRequest) Property(name string, value vo.PropertyValue) *CreatePageRequest {
	if r.properties == nil {
		r.properties = map[string]vo.PropertyValue{}
	}
	r.properties[name] = value
	return r
}

func (r *CreatePageRequest) Properties(properties map[string]vo.PropertyValue) *CreatePageRequest {
	for name, value := range properties {
		r.Property(name, value)
	}
	return r
}

func (r *CreatePageRequest) Children(blocks ...vo.Block) *CreatePageRequest {
	r.children = append(r.children, blocks...)
	return r
}

func (r *CreatePageRequest) Icon(icon *vo.Icon) *CreatePageRequest {
	r.icon = icon
	return r
}

func (r *CreatePageRequest) Cover(cover vo.File) *CreatePageRequest {
	r.cover = &cover
	return r
}

func (r *CreatePageRequest) Template(template PageTemplate) *CreatePageRequest {
	r.template = &template
	return r
}

func (r *CreatePageRequest) Position(position PagePosition) *CreatePageRequest {
	r.position = &position
	return r
}

func (r *CreatePageRequest) Send(ctx context.Context) (*vo.Page, error) {
	op := createPageEndpoint.String()
	body := createPageBody{
		Properties: r.properties,
		Children:   r.children,
		Icon:       r.icon,
		Cover:      r.cover,
		Template:   r.template,
		Position:   r.position,
	}
	switch {
	case r.parentPageID != "" && r.parentDataSourceID != "":
		return nil, validationError(op, ErrAmbiguousParent, "both page and data source parent are set")
	case r.parentPageID != "":
		body.Parent = vo.PageParent(r.parentPageID)
	case r.parentDataSourceID != "":
		body.Parent = vo.DataSourceParent(r.parentDataSourceID)
	default:
		return nil, validationError(op, ErrMissingParent, "")
	}
	if body.Properties == nil {
		body.Properties = map[string]vo.PropertyValue{}
	}
	return send[vo.Page](ctx, r.client, call{
		endpoint: createPageEndpoint,
		path:     "/pages",
		body:     body,
	})
}

// UpdatePageRequest is a partial update; only touched fields are sent.
type UpdatePageRequest struct {
	client       *Client
	pageID       string
	properties   map[string]vo.PropertyValue
	icon         *vo.Icon
	cover        *vo.File
	removeIcon   bool
	removeCover  bool
	inTrash      *bool
	isLocked     *bool
	template     *PageTemplate
	eraseContent bool
}

func (c *Client) UpdatePage(pageID string) *UpdatePageRequest {
	return &UpdatePageRequest{client: c, pageID: pageID}
}

func (r *UpdatePageRequest) Property(name string, value vo.PropertyValue) *UpdatePageRequest {
	if r.properties == nil {
		r.properties = map[string]vo.PropertyValue{}
	}
	r.properties[name] = value
	return r
}

func (r *UpdatePageRequest) Icon(icon *vo.Icon) *UpdatePageRequest {
	r.icon, r.removeIcon = icon, false
	return r
}

func (r *UpdatePageRequest) RemoveIcon() *UpdatePageRequest {
	r.icon, r.removeIcon = nil, true
	return r
}

func (r *UpdatePageRequest) Cover(cover vo.File) *UpdatePageRequest {
	r.cover, r.removeCover = &cover, false
	return r
}

func (r *UpdatePageRequest) RemoveCover() *UpdatePageRequest {
	r.cover, r.removeCover = nil, true
	return r
}

func (r *UpdatePageRequest) InTrash(inTrash bool) *UpdatePageRequest {
	r.inTrash = &inTrash
	return r
}

func (r *UpdatePageRequest) Locked(locked bool) *UpdatePageRequest {
	r.isLocked = &locked
	return r
}

// Template applies a template to the page; combine with EraseContent to
// replace the existing blocks.
func (r *UpdatePageRequest) Template(template PageTemplate) *UpdatePageRequest {
	r.template = &template
	return r
}

func (r *UpdatePageRequest) EraseContent() *UpdatePageRequest {
	r.eraseContent = true
	return r
}

func (r *UpdatePageRequest) body() map[string]any {
	body := map[string]any{}
	if len(r.properties) > 0 {
		body["properties"] = r.properties
	}
	switch {
	case r.icon != nil:
		body["icon"] = r.icon
	case r.removeIcon:
		body["icon"] = nil
	}
	switch {
	case r.cover != nil:
		body["cover"] = r.cover
	case r.removeCover:
		body["cover"] = nil
	}
	if r.inTrash != nil {
		body["in_trash"] = *r.inTrash
	}
	if r.isLocked != nil {
		body["is_locked"] = *r.isLocked
	}
	if r.template != nil {
		body["template"] = r.template
	}
	if r.eraseContent {
		body["erase_content"] = true
	}
	return body
}

func (r *UpdatePageRequest) Send(ctx context.Context) (*vo.Page, error) {
	if r.pageID == "" {
		return nil, missingField(updatePageEndpoint.String(), "page_id")
	}
	return send[vo.Page](ctx, r.client, call{
		endpoint: updatePageEndpoint,
		path:     "/pages/" + pathID(r.pageID),
		body:     r.body(),
	})
}

// MovePageRequest moves a page under another page or into a data source.
type MovePageRequest struct {
	client                  *Client
	pageID                  string
	destinationPageID       string
	destinationDataSourceID string
}

func (c *Client) MovePage(pageID string) *MovePageRequest {
	return &MovePageRequest{client: c, pageID: pageID}
}

func (r *MovePageRequest) ToPage(pageID string) *MovePageRequest {
	r.destinationPageID = pageID
	return r
}

func (r *MovePageRequest) ToDataSource(dataSourceID string) *MovePageRequest {
	r.destinationDataSourceID = dataSourceID
	return r
}

func (r *MovePageRequest) Send(ctx context.Context) (*vo.Page, error) {
	op := movePageEndpoint.String()
	if r.pageID == "" {
		return nil, missingField(op, "page_id")
	}
	var parent vo.Parent
	switch {
	case r.destinationPageID != "" && r.destinationDataSourceID != "":
		return nil, validationError(op, ErrAmbiguousDestination, "both page and data source destination are set")
	case r.destinationPageID != "":
		parent = vo.PageParent(r.destinationPageID)
	case r.destinationDataSourceID != "":
		parent = vo.DataSourceParent(r.destinationDataSourceID)
	default:
		return nil, validationError(op, ErrMissingDestination, "")
	}
	return send[vo.Page](ctx, r.client, call{
		endpoint: movePageEndpoint,
		path:     "/pages/" + pathID(r.pageID) + "/move",
		body:     map[string]vo.Parent{"parent": parent},
	})
}
