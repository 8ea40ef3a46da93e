// Package markdown renders Notion block trees as Markdown.
package markdown

import (
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/foomo/notion-mcp/notion"
	notionvo "github.com/foomo/notion-mcp/notion/vo"
	"github.com/foomo/notion-mcp/service/vo"
)

const DefaultMaxDepth = 8

// Fetcher loads the direct children of a block or page.
type Fetcher interface {
	BlockChildren(ctx context.Context, blockID string) ([]notionvo.BlockResponse, error)
}

type FetcherFunc func(ctx context.Context, blockID string) ([]notionvo.BlockResponse, error)

func (f FetcherFunc) BlockChildren(ctx context.Context, blockID string) ([]notionvo.BlockResponse, error) {
	return f(ctx, blockID)
}

// ClientFetcher fetches children through the api, following every page.
func ClientFetcher(c *notion.Client) Fetcher {
	return FetcherFunc(func(ctx context.Context, blockID string) ([]notionvo.BlockResponse, error) {
		return c.GetBlockChildren(blockID).FetchAll(ctx)
	})
}

type options struct {
	maxDepth int
}

type Option func(*options)

// WithMaxDepth limits how many levels of nested children are rendered.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// item is a block with its resolved children.
type item struct {
	id       string
	block    notionvo.Block
	children []item
}

// Render fetches the content below blockID and converts it to markdown.
// Children are only requested for blocks reporting has_children.
func Render(ctx context.Context, fetcher Fetcher, blockID string, opts ...Option) (vo.Markdown, error) {
	o := newOptions(opts)
	items, err := load(ctx, fetcher, blockID, 0, o.maxDepth)
	if err != nil {
		return "", err
	}
	return convert(items)
}

// RenderBlocks converts blocks held in memory, using the children carried in
// their payloads.
func RenderBlocks(blocks []notionvo.Block, opts ...Option) (vo.Markdown, error) {
	o := newOptions(opts)
	return convert(fromBlocks(blocks, 0, o.maxDepth))
}

func load(ctx context.Context, fetcher Fetcher, blockID string, depth, maxDepth int) ([]item, error) {
	children, err := fetcher.BlockChildren(ctx, blockID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch children of %s: %w", blockID, err)
	}
	items := make([]item, 0, len(children))
	for _, child := range children {
		it := item{id: child.ID, block: child.Block}
		if child.HasChildren && depth+1 < maxDepth && descends(child.Block.Type) {
			if it.children, err = load(ctx, fetcher, child.ID, depth+1, maxDepth); err != nil {
				return nil, err
			}
		}
		items = append(items, it)
	}
	return items, nil
}

func fromBlocks(blocks []notionvo.Block, depth, maxDepth int) []item {
	items := make([]item, 0, len(blocks))
	for _, b := range blocks {
		it := item{block: b}
		if depth+1 < maxDepth {
			it.children = fromBlocks(b.Children(), depth+1, maxDepth)
		}
		items = append(items, it)
	}
	return items
}

// descends reports whether children of a block belong to the current page.
func descends(t notionvo.BlockType) bool {
	return t != notionvo.BlockTypeChildPage && t != notionvo.BlockTypeChildDatabase
}

func convert(items []item) (vo.Markdown, error) {
	root := element("div")
	renderItems(root, items)
	markdownBytes, err := htmltomarkdown.ConvertNode(root)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}
	return vo.Markdown(markdownBytes), nil
}
