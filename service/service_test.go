package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/foomo/notion-mcp/notion"
	"github.com/foomo/notion-mcp/notion/notiontest"
	"github.com/foomo/notion-mcp/service"
)

const (
	rootID   = "11111111-1111-1111-1111-111111111111"
	pageID   = "22222222-2222-2222-2222-222222222222"
	prevID   = "33333333-3333-3333-3333-333333333333"
	nextID   = "44444444-4444-4444-4444-444444444444"
	childID  = "55555555-5555-5555-5555-555555555555"
	bodyID   = "66666666-6666-6666-6666-666666666666"
	orphanID = "77777777-7777-7777-7777-777777777777"
)

func workspace() *notiontest.Workspace {
	return notiontest.NewWorkspace().
		Page(rootID, notiontest.Page(rootID, notiontest.PageParent(""), "Home")).
		Page(pageID, notiontest.Page(pageID, notiontest.PageParent(rootID), "Guides")).
		Children(rootID,
			notiontest.ChildPage(prevID, "Intro"),
			notiontest.ChildPage(pageID, "Guides"),
			notiontest.ChildPage(nextID, "FAQ"),
		).
		Children(pageID,
			notiontest.Paragraph(bodyID, "Read these first."),
			notiontest.ChildPage(childID, "Setup"),
		)
}

func TestGetDocument(t *testing.T) {
	t.Parallel()

	ws := workspace()
	s := service.NewService(zaptest.NewLogger(t), ws.Client(), 0)

	doc, err := s.GetDocument(context.Background(), "https://www.notion.so/acme/Guides-22222222222222222222222222222222")
	require.NoError(t, err)

	assert.Equal(t, pageID, doc.DocumentSummary.ID)
	assert.Equal(t, "Guides", doc.DocumentSummary.Title)
	assert.Equal(t, "https://www.notion.so/22222222222222222222222222222222", doc.DocumentSummary.URL)
	assert.Contains(t, string(doc.Markdown), "Read these first.")
	assert.Contains(t, string(doc.Markdown), "[Setup]")

	require.Len(t, doc.Breadcrumb, 1)
	assert.Equal(t, "Home", doc.Breadcrumb[0].Title)

	require.Len(t, doc.Children, 1)
	assert.Equal(t, "Setup", doc.Children[0].Title)
	assert.Equal(t, notion.PageURL(childID), doc.Children[0].URL)

	require.Len(t, doc.PrevSiblings, 1)
	assert.Equal(t, "Intro", doc.PrevSiblings[0].Title)
	require.Len(t, doc.NextSiblings, 1)
	assert.Equal(t, "FAQ", doc.NextSiblings[0].Title)

	var contentFetches int
	for _, req := range ws.Requests() {
		if req.Path == "/blocks/"+pageID+"/children" {
			contentFetches++
		}
	}
	assert.Equal(t, 1, contentFetches, "page content is fetched once")
}

func TestGetDocumentRoot(t *testing.T) {
	t.Parallel()

	s := service.NewService(zaptest.NewLogger(t), workspace().Client(), 0)

	doc, err := s.GetDocument(context.Background(), rootID)
	require.NoError(t, err)
	assert.Empty(t, doc.Breadcrumb)
	assert.Empty(t, doc.PrevSiblings)
	assert.Empty(t, doc.NextSiblings)
	assert.Len(t, doc.Children, 3)
}

func TestGetDocumentErrors(t *testing.T) {
	t.Parallel()

	s := service.NewService(zaptest.NewLogger(t), workspace().Client(), 0)

	_, err := s.GetDocument(context.Background(), "not an id")
	require.ErrorIs(t, err, notion.ErrValidation)

	_, err = s.GetDocument(context.Background(), orphanID)
	require.ErrorIs(t, err, notion.ErrRemoteAPI)

	var apiErr *notion.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "object_not_found", apiErr.Code)
}
