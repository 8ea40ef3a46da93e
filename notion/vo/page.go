package vo

type Page struct {
	Object         string                   `json:"object"`
	ID             string                   `json:"id"`
	CreatedTime    string                   `json:"created_time,omitempty"`
	LastEditedTime string                   `json:"last_edited_time,omitempty"`
	CreatedBy      *User                    `json:"created_by,omitempty"`
	LastEditedBy   *User                    `json:"last_edited_by,omitempty"`
	Cover          *File                    `json:"cover,omitempty"`
	Icon           *Icon                    `json:"icon,omitempty"`
	Parent         Parent                   `json:"parent"`
	Archived       bool                     `json:"archived"`
	InTrash        bool                     `json:"in_trash"`
	IsLocked       bool                     `json:"is_locked,omitempty"`
	Properties     map[string]PropertyValue `json:"properties"`
	URL            string                   `json:"url,omitempty"`
	PublicURL      string                   `json:"public_url,omitempty"`
}

// Title returns the plain text of the title property.
func (p Page) Title() string {
	for _, v := range p.Properties {
		if v.Type == PropertyTypeTitle {
			return PlainText(v.Title)
		}
	}
	return ""
}
