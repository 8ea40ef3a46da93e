package markdown

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/foomo/notion-mcp/notion"
	notionvo "github.com/foomo/notion-mcp/notion/vo"
)

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attrs}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func appendText(parent *html.Node, s string) *html.Node {
	parent.AppendChild(textNode(s))
	return parent
}

func link(href, label string) *html.Node {
	if label == "" {
		label = href
	}
	return appendText(element("a", attr("href", href)), label)
}

// appendRichText renders inline segments with their annotations.
func appendRichText(parent *html.Node, segments []notionvo.RichText) {
	for _, seg := range segments {
		parent.AppendChild(inline(seg))
	}
}

func inline(seg notionvo.RichText) *html.Node {
	content := seg.PlainText
	if content == "" && seg.Text != nil {
		content = seg.Text.Content
	}
	var n *html.Node
	switch {
	case seg.Equation != nil:
		n = appendText(element("code"), "$"+seg.Equation.Expression+"$")
	case seg.Annotations != nil && seg.Annotations.Code:
		n = appendText(element("code"), content)
	default:
		n = textNode(content)
	}
	if a := seg.Annotations; a != nil {
		if a.Strikethrough {
			n = wrap("del", n)
		}
		if a.Italic {
			n = wrap("em", n)
		}
		if a.Bold {
			n = wrap("strong", n)
		}
	}
	href := seg.Href
	if href == "" && seg.Mention != nil {
		switch {
		case seg.Mention.Page != nil:
			href = notion.PageURL(seg.Mention.Page.ID)
		case seg.Mention.Database != nil:
			href = notion.PageURL(seg.Mention.Database.ID)
		}
	}
	if href != "" {
		n = wrap("a", n, attr("href", href))
	}
	return n
}

func wrap(tag string, child *html.Node, attrs ...html.Attribute) *html.Node {
	n := element(tag, attrs...)
	n.AppendChild(child)
	return n
}

func listTag(t notionvo.BlockType) string {
	switch t {
	case notionvo.BlockTypeNumberedListItem:
		return "ol"
	case notionvo.BlockTypeBulletedListItem, notionvo.BlockTypeToDo:
		return "ul"
	}
	return ""
}

// renderItems appends items to parent, grouping consecutive list items of the
// same kind into one list.
func renderItems(parent *html.Node, items []item) {
	var (
		list     *html.Node
		listKind notionvo.BlockType
	)
	for _, it := range items {
		tag := listTag(it.block.Type)
		if tag == "" {
			list = nil
			renderBlock(parent, it)
			continue
		}
		if list == nil || listKind != it.block.Type {
			list = element(tag)
			listKind = it.block.Type
			parent.AppendChild(list)
		}
		li := element("li")
		if todo := it.block.ToDo; todo != nil {
			if todo.Checked {
				appendText(li, "☑ ")
			} else {
				appendText(li, "☐ ")
			}
		}
		appendRichText(li, it.block.RichText())
		renderItems(li, it.children)
		list.AppendChild(li)
	}
}

func renderBlock(parent *html.Node, it item) {
	b := it.block
	switch b.Type {
	case notionvo.BlockTypeParagraph, notionvo.BlockTypeTemplate:
		p := element("p")
		appendRichText(p, b.RichText())
		parent.AppendChild(p)
		renderItems(parent, it.children)

	case notionvo.BlockTypeHeading1, notionvo.BlockTypeHeading2, notionvo.BlockTypeHeading3:
		h := element("h" + strings.TrimPrefix(string(b.Type), "heading_"))
		appendRichText(h, b.RichText())
		parent.AppendChild(h)
		renderItems(parent, it.children)

	case notionvo.BlockTypeQuote, notionvo.BlockTypeCallout:
		q := element("blockquote")
		p := element("p")
		if b.Callout != nil && b.Callout.Icon != nil && b.Callout.Icon.Emoji != "" {
			appendText(p, b.Callout.Icon.Emoji+" ")
		}
		appendRichText(p, b.RichText())
		q.AppendChild(p)
		renderItems(q, it.children)
		parent.AppendChild(q)

	case notionvo.BlockTypeToggle:
		d := element("details")
		s := element("summary")
		appendRichText(s, b.RichText())
		d.AppendChild(s)
		renderItems(d, it.children)
		parent.AppendChild(d)

	case notionvo.BlockTypeCode:
		code := element("code", attr("class", "language-"+string(b.Code.Language)))
		appendText(code, notionvo.PlainText(b.Code.RichText))
		parent.AppendChild(wrap("pre", code))

	case notionvo.BlockTypeEquation:
		parent.AppendChild(appendText(element("p"), "$$"+b.Equation.Expression+"$$"))

	case notionvo.BlockTypeDivider:
		parent.AppendChild(element("hr"))

	case notionvo.BlockTypeImage:
		alt := notionvo.PlainText(b.Image.Caption)
		parent.AppendChild(wrap("p", element("img", attr("src", b.Image.URL()), attr("alt", alt))))

	case notionvo.BlockTypeVideo, notionvo.BlockTypeAudio, notionvo.BlockTypePDF, notionvo.BlockTypeFile:
		f := fileOf(b)
		label := f.Name
		if caption := notionvo.PlainText(f.Caption); caption != "" {
			label = caption
		}
		parent.AppendChild(wrap("p", link(f.URL(), label)))

	case notionvo.BlockTypeBookmark, notionvo.BlockTypeEmbed:
		e := b.Bookmark
		if e == nil {
			e = b.Embed
		}
		parent.AppendChild(wrap("p", link(e.URL, notionvo.PlainText(e.Caption))))

	case notionvo.BlockTypeLinkPreview:
		parent.AppendChild(wrap("p", link(b.LinkPreview.URL, "")))

	case notionvo.BlockTypeChildPage, notionvo.BlockTypeChildDatabase:
		title := ""
		if b.ChildPage != nil {
			title = b.ChildPage.Title
		} else if b.ChildDatabase != nil {
			title = b.ChildDatabase.Title
		}
		parent.AppendChild(wrap("p", link(notion.PageURL(it.id), title)))

	case notionvo.BlockTypeLinkToPage:
		parent.AppendChild(wrap("p", link(notion.PageURL(b.LinkToPage.ID()), "")))

	case notionvo.BlockTypeTable:
		parent.AppendChild(table(b.Table, it.children))

	case notionvo.BlockTypeColumnList, notionvo.BlockTypeColumn, notionvo.BlockTypeSyncedBlock:
		renderItems(parent, it.children)
	}
}

func fileOf(b notionvo.Block) notionvo.File {
	for _, f := range []*notionvo.File{b.Video, b.Audio, b.PDF, b.File} {
		if f != nil {
			return *f
		}
	}
	return notionvo.File{}
}

func table(t *notionvo.Table, rows []item) *html.Node {
	n := element("table")
	body := element("tbody")
	for i, row := range rows {
		if row.block.TableRow == nil {
			continue
		}
		tr := element("tr")
		for j, cell := range row.block.TableRow.Cells {
			tag := "td"
			if (i == 0 && t.HasColumnHeader) || (j == 0 && t.HasRowHeader) {
				tag = "th"
			}
			c := element(tag)
			appendRichText(c, cell)
			tr.AppendChild(c)
		}
		if i == 0 && t.HasColumnHeader {
			n.AppendChild(wrap("thead", tr))
			continue
		}
		body.AppendChild(tr)
	}
	n.AppendChild(body)
	return n
}
