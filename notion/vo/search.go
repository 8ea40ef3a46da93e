package vo

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type ObjectType string

const (
	ObjectTypePage       ObjectType = "page"
	ObjectTypeDataSource ObjectType = "data_source"
)

var objectTypes = newEnumSet(ObjectTypePage, ObjectTypeDataSource)

func (t *ObjectType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, objectTypes, "object type")
	return err
}

// SearchResult is a page or a data source, discriminated by object.
type SearchResult struct {
	Object     ObjectType
	Page       *Page
	DataSource *DataSource
}

func (r SearchResult) Title() string {
	switch {
	case r.Page != nil:
		return r.Page.Title()
	case r.DataSource != nil:
		return r.DataSource.Name()
	}
	return ""
}

func (r SearchResult) ID() string {
	switch {
	case r.Page != nil:
		return r.Page.ID
	case r.DataSource != nil:
		return r.DataSource.ID
	}
	return ""
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	switch r.Object {
	case ObjectTypePage:
		return json.Marshal(r.Page)
	case ObjectTypeDataSource:
		return json.Marshal(r.DataSource)
	}
	return nil, fmt.Errorf("unknown search result object %q", r.Object)
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var head struct {
		Object ObjectType `json:"object"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	out := SearchResult{Object: head.Object}
	switch head.Object {
	case ObjectTypePage:
		out.Page = &Page{}
		if err := json.Unmarshal(data, out.Page); err != nil {
			return err
		}
	case ObjectTypeDataSource:
		out.DataSource = &DataSource{}
		if err := json.Unmarshal(data, out.DataSource); err != nil {
			return err
		}
	}
	*r = out
	return nil
}
