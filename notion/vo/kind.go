package vo

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// slot binds one variant of a sibling-keyed union to the field of O that
// holds its payload.
type slot[O any] struct {
	encode func(o *O) any
	decode func(o *O, data []byte) error
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// emptySlot is a variant without payload. It encodes as {}.
func emptySlot[O any]() slot[O] {
	return slot[O]{
		encode: func(*O) any { return struct{}{} },
		decode: func(*O, []byte) error { return nil },
	}
}

// ptrSlot is a nullable payload. A nil pointer encodes as null.
func ptrSlot[O, P any](field func(o *O) **P) slot[O] {
	return slot[O]{
		encode: func(o *O) any { return *field(o) },
		decode: func(o *O, data []byte) error {
			if isNull(data) {
				*field(o) = nil
				return nil
			}
			v := new(P)
			if err := json.Unmarshal(data, v); err != nil {
				return err
			}
			*field(o) = v
			return nil
		},
	}
}

// objSlot is an optional configuration object. A nil pointer encodes as {}.
func objSlot[O, P any](field func(o *O) **P) slot[O] {
	s := ptrSlot(field)
	s.encode = func(o *O) any {
		if v := *field(o); v != nil {
			return v
		}
		return struct{}{}
	}
	return s
}

// listSlot is an array payload. A nil slice encodes as []. A lone object is
// accepted as a one-element array, the shape of paginated property items.
func listSlot[O, E any](field func(o *O) *[]E) slot[O] {
	return slot[O]{
		encode: func(o *O) any {
			if v := *field(o); v != nil {
				return v
			}
			return []E{}
		},
		decode: func(o *O, data []byte) error {
			if isNull(data) {
				*field(o) = nil
				return nil
			}
			if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
				var e E
				if err := json.Unmarshal(trimmed, &e); err != nil {
					return err
				}
				*field(o) = []E{e}
				return nil
			}
			return json.Unmarshal(data, field(o))
		},
	}
}

// valueSlot is a plain scalar payload.
func valueSlot[O, V any](field func(o *O) *V) slot[O] {
	return slot[O]{
		encode: func(o *O) any { return *field(o) },
		decode: func(o *O, data []byte) error {
			if isNull(data) {
				var zero V
				*field(o) = zero
				return nil
			}
			return json.Unmarshal(data, field(o))
		},
	}
}

// splitTagged decodes the discriminator at key and returns the payload found
// under the key it names.
func splitTagged(data []byte, key string) (string, map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", nil, err
	}
	var tag string
	if v, ok := raw[key]; ok && !isNull(v) {
		if err := json.Unmarshal(v, &tag); err != nil {
			return "", nil, err
		}
	}
	return tag, raw, nil
}
