package vo

type Markdown string

type DocumentSummary struct {
	ID             string `json:"id"`
	URL            string `json:"url"`
	Title          string `json:"title"`
	Icon           string `json:"icon,omitempty"`
	LastEditedTime string `json:"lastEditedTime,omitempty"`
}

type Document struct {
	DocumentSummary DocumentSummary `json:"summary"`
	Markdown        Markdown        `json:"markdown,omitempty"` // Full content in markdown

	Breadcrumb   []DocumentSummary `json:"breadcrumb,omitempty"` // Root first
	Children     []DocumentSummary `json:"children,omitempty"`   // Child pages
	PrevSiblings []DocumentSummary `json:"prev,omitempty"`
	NextSiblings []DocumentSummary `json:"next,omitempty"`
}
