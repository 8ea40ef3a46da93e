package vo

type MentionType string

const (
	MentionTypeUser            MentionType = "user"
	MentionTypeDate            MentionType = "date"
	MentionTypeLinkPreview     MentionType = "link_preview"
	MentionTypeLinkMention     MentionType = "link_mention"
	MentionTypeTemplateMention MentionType = "template_mention"
	MentionTypePage            MentionType = "page"
	MentionTypeDatabase        MentionType = "database"
	MentionTypeCustomEmoji     MentionType = "custom_emoji"
)

var mentionTypes = newEnumSet(
	MentionTypeUser, MentionTypeDate, MentionTypeLinkPreview, MentionTypeLinkMention,
	MentionTypeTemplateMention, MentionTypePage, MentionTypeDatabase, MentionTypeCustomEmoji,
)

func (t *MentionType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, mentionTypes, "mention type")
	return err
}

type Mention struct {
	Type            MentionType      `json:"type"`
	User            *User            `json:"user,omitempty"`
	Date            *DateValue       `json:"date,omitempty"`
	LinkPreview     *LinkPreview     `json:"link_preview,omitempty"`
	LinkMention     *LinkMention     `json:"link_mention,omitempty"`
	TemplateMention *TemplateMention `json:"template_mention,omitempty"`
	Page            *ObjectRef       `json:"page,omitempty"`
	Database        *ObjectRef       `json:"database,omitempty"`
	CustomEmoji     *CustomEmoji     `json:"custom_emoji,omitempty"`
}

// ObjectRef is a bare {id} reference.
type ObjectRef struct {
	ID string `json:"id"`
}

type LinkPreview struct {
	URL string `json:"url"`
}

type LinkMention struct {
	Href         string  `json:"href"`
	Title        string  `json:"title,omitempty"`
	Description  string  `json:"description,omitempty"`
	LinkAuthor   string  `json:"link_author,omitempty"`
	LinkProvider string  `json:"link_provider,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	IconURL      string  `json:"icon_url,omitempty"`
	IframeURL    string  `json:"iframe_url,omitempty"`
	Height       float64 `json:"height,omitempty"`
	Padding      float64 `json:"padding,omitempty"`
	PaddingTop   float64 `json:"padding_top,omitempty"`
}

type TemplateMentionType string

const (
	TemplateMentionTypeDate TemplateMentionType = "template_mention_date"
	TemplateMentionTypeUser TemplateMentionType = "template_mention_user"
)

var templateMentionTypes = newEnumSet(TemplateMentionTypeDate, TemplateMentionTypeUser)

func (t *TemplateMentionType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, templateMentionTypes, "template mention type")
	return err
}

// TemplateMention is a placeholder resolved when a template is applied:
// template_mention_date is today or now, template_mention_user is me.
type TemplateMention struct {
	Type                TemplateMentionType `json:"type"`
	TemplateMentionDate string              `json:"template_mention_date,omitempty"`
	TemplateMentionUser string              `json:"template_mention_user,omitempty"`
}

func PageMention(id string) Mention {
	return Mention{Type: MentionTypePage, Page: &ObjectRef{ID: id}}
}

func DatabaseMention(id string) Mention {
	return Mention{Type: MentionTypeDatabase, Database: &ObjectRef{ID: id}}
}

func UserMention(id string) Mention {
	u := UserRef(id)
	return Mention{Type: MentionTypeUser, User: &u}
}

func DateMention(d DateValue) Mention {
	return Mention{Type: MentionTypeDate, Date: &d}
}
