package vo

type ParentType string

const (
	ParentTypeDatabase   ParentType = "database_id"
	ParentTypeDataSource ParentType = "data_source_id"
	ParentTypePage       ParentType = "page_id"
	ParentTypeBlock      ParentType = "block_id"
	ParentTypeWorkspace  ParentType = "workspace"
)

var parentTypes = newEnumSet(ParentTypeDatabase, ParentTypeDataSource, ParentTypePage, ParentTypeBlock, ParentTypeWorkspace)

func (t *ParentType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, parentTypes, "parent type")
	return err
}

// Parent references the container of a page, block, database or comment.
// Data source parents also carry the owning database id.
type Parent struct {
	Type         ParentType `json:"type"`
	DatabaseID   string     `json:"database_id,omitempty"`
	DataSourceID string     `json:"data_source_id,omitempty"`
	PageID       string     `json:"page_id,omitempty"`
	BlockID      string     `json:"block_id,omitempty"`
	Workspace    bool       `json:"workspace,omitempty"`
}

func PageParent(id string) Parent {
	return Parent{Type: ParentTypePage, PageID: id}
}

func DataSourceParent(id string) Parent {
	return Parent{Type: ParentTypeDataSource, DataSourceID: id}
}

func DatabaseParent(id string) Parent {
	return Parent{Type: ParentTypeDatabase, DatabaseID: id}
}

func BlockParent(id string) Parent {
	return Parent{Type: ParentTypeBlock, BlockID: id}
}

func WorkspaceParent() Parent {
	return Parent{Type: ParentTypeWorkspace, Workspace: true}
}

// ID returns the id the parent type points at, empty for the workspace.
func (p Parent) ID() string {
	switch p.Type {
	case ParentTypeDatabase:
		return p.DatabaseID
	case ParentTypeDataSource:
		return p.DataSourceID
	case ParentTypePage:
		return p.PageID
	case ParentTypeBlock:
		return p.BlockID
	}
	return ""
}
