package vo

import "strings"

type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

var richTextTypes = newEnumSet(RichTextTypeText, RichTextTypeMention, RichTextTypeEquation)

func (t *RichTextType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, richTextTypes, "rich text type")
	return err
}

// RichText is one segment of an inline text array. Exactly one of Text,
// Mention or Equation is set, matching Type.
type RichText struct {
	Type        RichTextType `json:"type"`
	Text        *Text        `json:"text,omitempty"`
	Mention     *Mention     `json:"mention,omitempty"`
	Equation    *Equation    `json:"equation,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        string       `json:"href,omitempty"`
}

type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

type Link struct {
	URL string `json:"url"`
}

type Equation struct {
	Expression string `json:"expression"`
}

type Annotations struct {
	Bold          bool  `json:"bold"`
	Italic        bool  `json:"italic"`
	Strikethrough bool  `json:"strikethrough"`
	Underline     bool  `json:"underline"`
	Code          bool  `json:"code"`
	Color         Color `json:"color,omitempty"`
}

func NewText(content string) RichText {
	return RichText{Type: RichTextTypeText, Text: &Text{Content: content}, PlainText: content}
}

func NewLink(content, url string) RichText {
	return RichText{Type: RichTextTypeText, Text: &Text{Content: content, Link: &Link{URL: url}}, PlainText: content, Href: url}
}

func NewEquation(expression string) RichText {
	return RichText{Type: RichTextTypeEquation, Equation: &Equation{Expression: expression}, PlainText: expression}
}

func NewMention(m Mention) RichText {
	return RichText{Type: RichTextTypeMention, Mention: &m}
}

func (r RichText) annotate(f func(a *Annotations)) RichText {
	a := Annotations{Color: ColorDefault}
	if r.Annotations != nil {
		a = *r.Annotations
	}
	f(&a)
	r.Annotations = &a
	return r
}

func (r RichText) Bold() RichText {
	return r.annotate(func(a *Annotations) { a.Bold = true })
}

func (r RichText) Italic() RichText {
	return r.annotate(func(a *Annotations) { a.Italic = true })
}

func (r RichText) Strikethrough() RichText {
	return r.annotate(func(a *Annotations) { a.Strikethrough = true })
}

func (r RichText) Underline() RichText {
	return r.annotate(func(a *Annotations) { a.Underline = true })
}

func (r RichText) Code() RichText {
	return r.annotate(func(a *Annotations) { a.Code = true })
}

func (r RichText) WithColor(c Color) RichText {
	return r.annotate(func(a *Annotations) { a.Color = c })
}

// PlainText concatenates the plain text of all segments.
func PlainText(segments []RichText) string {
	var b strings.Builder
	for _, s := range segments {
		switch {
		case s.PlainText != "":
			b.WriteString(s.PlainText)
		case s.Text != nil:
			b.WriteString(s.Text.Content)
		case s.Equation != nil:
			b.WriteString(s.Equation.Expression)
		}
	}
	return b.String()
}
