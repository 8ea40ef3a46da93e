package vo

// Database is a container of one or more data sources.
type Database struct {
	Object         string          `json:"object"`
	ID             string          `json:"id"`
	Title          []RichText      `json:"title"`
	Description    []RichText      `json:"description,omitempty"`
	CreatedTime    string          `json:"created_time,omitempty"`
	LastEditedTime string          `json:"last_edited_time,omitempty"`
	CreatedBy      *User           `json:"created_by,omitempty"`
	LastEditedBy   *User           `json:"last_edited_by,omitempty"`
	Cover          *File           `json:"cover,omitempty"`
	Icon           *Icon           `json:"icon,omitempty"`
	Parent         *Parent         `json:"parent,omitempty"`
	URL            string          `json:"url,omitempty"`
	PublicURL      string          `json:"public_url,omitempty"`
	Archived       bool            `json:"archived,omitempty"`
	InTrash        bool            `json:"in_trash"`
	IsInline       bool            `json:"is_inline"`
	IsLocked       bool            `json:"is_locked"`
	DataSources    []DataSourceRef `json:"data_sources"`
}

type DataSourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DataSource is the schema and rows of a table.
type DataSource struct {
	Object         string                    `json:"object"`
	ID             string                    `json:"id"`
	Title          []RichText                `json:"title"`
	Description    []RichText                `json:"description,omitempty"`
	CreatedTime    string                    `json:"created_time,omitempty"`
	LastEditedTime string                    `json:"last_edited_time,omitempty"`
	CreatedBy      *User                     `json:"created_by,omitempty"`
	LastEditedBy   *User                     `json:"last_edited_by,omitempty"`
	Cover          *File                     `json:"cover,omitempty"`
	Icon           *Icon                     `json:"icon,omitempty"`
	Parent         *Parent                   `json:"parent,omitempty"`
	DatabaseParent *Parent                   `json:"database_parent,omitempty"`
	Properties     map[string]PropertySchema `json:"properties"`
	URL            string                    `json:"url,omitempty"`
	PublicURL      string                    `json:"public_url,omitempty"`
	Archived       bool                      `json:"archived,omitempty"`
	InTrash        bool                      `json:"in_trash"`
	IsInline       bool                      `json:"is_inline,omitempty"`
}

// Name returns the plain title.
func (d DataSource) Name() string {
	return PlainText(d.Title)
}

type DataSourceTemplate struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// TemplateList is the paginated template listing of a data source.
type TemplateList struct {
	Templates  []DataSourceTemplate `json:"templates"`
	HasMore    bool                 `json:"has_more"`
	NextCursor *string              `json:"next_cursor"`
}
