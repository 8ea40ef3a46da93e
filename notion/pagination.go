package notion

import (
	"context"
	"iter"

	"github.com/foomo/notion-mcp/notion/vo"
)

// PageFunc fetches the list page that starts at cursor. An empty cursor
// requests the first page.
type PageFunc[T any] func(ctx context.Context, cursor string) (*vo.List[T], error)

// FetchAll follows next_cursor until has_more is false and returns the
// concatenated results in page order. On the first failing page it returns
// the error and no results.
func FetchAll[T any](ctx context.Context, page PageFunc[T]) ([]T, error) {
	out := []T{}
	cursor := ""
	for {
		list, err := page(ctx, cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, list.Results...)
		if !list.Continues() {
			return out, nil
		}
		cursor = list.Cursor()
	}
}

// All streams the results of every page. A failing page yields the error
// once and ends the sequence.
func All[T any](ctx context.Context, page PageFunc[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		cursor := ""
		for {
			list, err := page(ctx, cursor)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range list.Results {
				if !yield(item, nil) {
					return
				}
			}
			if !list.Continues() {
				return
			}
			cursor = list.Cursor()
		}
	}
}
