package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/foomo/notion-mcp/markdown"
	"github.com/foomo/notion-mcp/notion"
	notionvo "github.com/foomo/notion-mcp/notion/vo"
	"github.com/foomo/notion-mcp/service/vo"
)

// maxBreadcrumbDepth bounds the walk up the parent chain.
const maxBreadcrumbDepth = 32

type Service interface {
	GetDocument(ctx context.Context, pageID string) (*vo.Document, error)
}

type service struct {
	l        *zap.Logger
	client   *notion.Client
	fetcher  markdown.Fetcher
	maxDepth int
}

func NewService(l *zap.Logger, client *notion.Client, maxDepth int) Service {
	return &service{
		l:        l,
		client:   client,
		fetcher:  markdown.ClientFetcher(client),
		maxDepth: maxDepth,
	}
}

func (s *service) GetDocument(ctx context.Context, pageID string) (*vo.Document, error) {
	id, err := notion.ParseID(pageID)
	if err != nil {
		return nil, err
	}
	s.l.Debug("get document", zap.String("page", id))

	page, err := s.client.GetPage(id).Send(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	blocks, err := s.fetcher.BlockChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get page content: %w", err)
	}

	// the top level is already loaded
	fetcher := markdown.FetcherFunc(func(ctx context.Context, blockID string) ([]notionvo.BlockResponse, error) {
		if blockID == id {
			return blocks, nil
		}
		return s.fetcher.BlockChildren(ctx, blockID)
	})
	md, err := markdown.Render(ctx, fetcher, id, markdown.WithMaxDepth(s.maxDepth))
	if err != nil {
		return nil, err
	}

	breadcrumb, err := s.breadcrumb(ctx, page.Parent)
	if err != nil {
		return nil, err
	}

	doc := &vo.Document{
		DocumentSummary: pageSummary(page),
		Markdown:        md,
		Breadcrumb:      breadcrumb,
		Children:        childPages(blocks),
	}

	if page.Parent.Type == notionvo.ParentTypePage {
		siblings, err := s.fetcher.BlockChildren(ctx, page.Parent.PageID)
		if err != nil {
			return nil, fmt.Errorf("failed to get siblings: %w", err)
		}
		isPrevious := true
		for _, sibling := range childPages(siblings) {
			if sibling.ID == page.ID {
				isPrevious = false
				continue
			}
			if isPrevious {
				doc.PrevSiblings = append(doc.PrevSiblings, sibling)
			} else {
				doc.NextSiblings = append(doc.NextSiblings, sibling)
			}
		}
	}
	return doc, nil
}

// breadcrumb walks up the page parents, resolving blocks to their page, and
// returns the chain root first.
func (s *service) breadcrumb(ctx context.Context, parent notionvo.Parent) ([]vo.DocumentSummary, error) {
	var reversed []vo.DocumentSummary
	for range maxBreadcrumbDepth {
		switch parent.Type {
		case notionvo.ParentTypeBlock:
			block, err := s.client.GetBlock(parent.BlockID).Send(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to get parent block: %w", err)
			}
			if block.Parent == nil {
				return reverse(reversed), nil
			}
			parent = *block.Parent
		case notionvo.ParentTypePage:
			page, err := s.client.GetPage(parent.PageID).Send(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to get parent page: %w", err)
			}
			reversed = append(reversed, pageSummary(page))
			parent = page.Parent
		default:
			return reverse(reversed), nil
		}
	}
	s.l.Warn("breadcrumb truncated", zap.Int("depth", maxBreadcrumbDepth))
	return reverse(reversed), nil
}

func reverse(items []vo.DocumentSummary) []vo.DocumentSummary {
	out := make([]vo.DocumentSummary, len(items))
	for i, item := range items {
		out[len(items)-i-1] = item
	}
	return out
}

func pageSummary(page *notionvo.Page) vo.DocumentSummary {
	summary := vo.DocumentSummary{
		ID:             page.ID,
		URL:            page.URL,
		Title:          page.Title(),
		LastEditedTime: page.LastEditedTime,
	}
	if summary.URL == "" {
		summary.URL = notion.PageURL(page.ID)
	}
	if page.Icon != nil {
		summary.Icon = page.Icon.String()
	}
	return summary
}

func childPages(blocks []notionvo.BlockResponse) []vo.DocumentSummary {
	var out []vo.DocumentSummary
	for _, b := range blocks {
		if b.Block.ChildPage == nil {
			continue
		}
		out = append(out, vo.DocumentSummary{
			ID:             b.ID,
			URL:            notion.PageURL(b.ID),
			Title:          b.Block.ChildPage.Title,
			LastEditedTime: b.LastEditedTime,
		})
	}
	return out
}
