package vo

import json "github.com/goccy/go-json"

// PropertyItem is the response of the page property endpoint: a single
// value, or for list-like kinds a paginated list of values.
type PropertyItem struct {
	Object string
	Value  *PropertyValue
	List   *List[PropertyValue]
	Info   *PropertyItemInfo
}

type PropertyItemInfo struct {
	ID      string       `json:"id"`
	Type    PropertyType `json:"type"`
	NextURL string       `json:"next_url,omitempty"`
}

func (p PropertyItem) MarshalJSON() ([]byte, error) {
	if p.List != nil {
		return json.Marshal(p.List)
	}
	if p.Value == nil {
		return []byte("null"), nil
	}
	v, err := json.Marshal(p.Value)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(v)+26)
	out = append(out, `{"object":"property_item",`...)
	return append(out, v[1:]...), nil
}

func (p *PropertyItem) UnmarshalJSON(data []byte) error {
	var head struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	out := PropertyItem{Object: head.Object}
	if head.Object == "list" {
		out.List = &List[PropertyValue]{}
		if err := json.Unmarshal(data, out.List); err != nil {
			return err
		}
		var info struct {
			PropertyItem *PropertyItemInfo `json:"property_item"`
		}
		if err := json.Unmarshal(data, &info); err != nil {
			return err
		}
		out.Info = info.PropertyItem
	} else {
		out.Value = &PropertyValue{}
		if err := json.Unmarshal(data, out.Value); err != nil {
			return err
		}
	}
	*p = out
	return nil
}
