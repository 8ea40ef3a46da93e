// Package filter builds data source query filters and sorts.
//
// A Filter is a leaf naming a property and one condition, a timestamp leaf
// naming created_time or last_edited_time, or a compound of and/or children.
// Constructors never fail; malformed filters are rejected by the api.
package filter

import (
	"bytes"

	json "github.com/goccy/go-json"
)

type Timestamp string

const (
	TimestampCreatedTime    Timestamp = "created_time"
	TimestampLastEditedTime Timestamp = "last_edited_time"
)

// Filter is encoded by hand: the condition keys sit next to property or
// timestamp in the same object. And takes precedence over Or.
type Filter struct {
	And       []Filter
	Or        []Filter
	Property  string
	Timestamp Timestamp
	Condition Condition
}

type leafHead struct {
	Property  string    `json:"property,omitempty"`
	Timestamp Timestamp `json:"timestamp,omitempty"`
}

// IsCompound reports whether f combines children.
func (f Filter) IsCompound() bool {
	return f.And != nil || f.Or != nil
}

func (f Filter) MarshalJSON() ([]byte, error) {
	switch {
	case f.And != nil:
		return json.Marshal(map[string][]Filter{"and": f.And})
	case f.Or != nil:
		return json.Marshal(map[string][]Filter{"or": f.Or})
	}
	head, err := json.Marshal(leafHead{Property: f.Property, Timestamp: f.Timestamp})
	if err != nil {
		return nil, err
	}
	cond, err := json.Marshal(f.Condition)
	if err != nil {
		return nil, err
	}
	return mergeObjects(head, cond), nil
}

func (f *Filter) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	var out Filter
	if raw, ok := keys["and"]; ok {
		out.And = []Filter{}
		if err := json.Unmarshal(raw, &out.And); err != nil {
			return err
		}
	}
	if raw, ok := keys["or"]; ok {
		out.Or = []Filter{}
		if err := json.Unmarshal(raw, &out.Or); err != nil {
			return err
		}
	}
	if !out.IsCompound() {
		var head leafHead
		if err := json.Unmarshal(data, &head); err != nil {
			return err
		}
		out.Property, out.Timestamp = head.Property, head.Timestamp
		if err := json.Unmarshal(data, &out.Condition); err != nil {
			return err
		}
	}
	*f = out
	return nil
}

// mergeObjects joins the members of two encoded objects.
func mergeObjects(a, b []byte) []byte {
	a, b = bytes.TrimSpace(a), bytes.TrimSpace(b)
	switch {
	case len(b) <= 2:
		return a
	case len(a) <= 2:
		return b
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a[:len(a)-1]...)
	out = append(out, ',')
	return append(out, b[1:]...)
}

func And(children ...Filter) Filter {
	if children == nil {
		children = []Filter{}
	}
	return Filter{And: children}
}

func Or(children ...Filter) Filter {
	if children == nil {
		children = []Filter{}
	}
	return Filter{Or: children}
}

func leaf(property string, c Condition) Filter {
	return Filter{Property: property, Condition: c}
}
