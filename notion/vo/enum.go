package vo

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type enumSet[T ~string] map[T]struct{}

func newEnumSet[T ~string](values ...T) enumSet[T] {
	s := make(enumSet[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s enumSet[T]) contains(v T) bool {
	_, ok := s[v]
	return ok
}

// decodeEnum rejects values outside the closed set
func decodeEnum[T ~string](data []byte, set enumSet[T], name string) (T, error) {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", name, err)
	}
	v := T(raw)
	if !set.contains(v) {
		return "", fmt.Errorf("unknown %s %q", name, raw)
	}
	return v, nil
}
