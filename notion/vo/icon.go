package vo

type IconType string

const (
	IconTypeEmoji       IconType = "emoji"
	IconTypeExternal    IconType = "external"
	IconTypeFile        IconType = "file"
	IconTypeFileUpload  IconType = "file_upload"
	IconTypeCustomEmoji IconType = "custom_emoji"
)

var iconTypes = newEnumSet(IconTypeEmoji, IconTypeExternal, IconTypeFile, IconTypeFileUpload, IconTypeCustomEmoji)

func (t *IconType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, iconTypes, "icon type")
	return err
}

type CustomEmoji struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type Icon struct {
	Type        IconType      `json:"type"`
	Emoji       string        `json:"emoji,omitempty"`
	External    *ExternalFile `json:"external,omitempty"`
	File        *HostedFile   `json:"file,omitempty"`
	FileUpload  *UploadedFile `json:"file_upload,omitempty"`
	CustomEmoji *CustomEmoji  `json:"custom_emoji,omitempty"`
}

func EmojiIcon(emoji string) *Icon {
	return &Icon{Type: IconTypeEmoji, Emoji: emoji}
}

func ExternalIcon(url string) *Icon {
	return &Icon{Type: IconTypeExternal, External: &ExternalFile{URL: url}}
}

// String renders the icon as an emoji or a url.
func (i Icon) String() string {
	switch i.Type {
	case IconTypeEmoji:
		return i.Emoji
	case IconTypeExternal:
		if i.External != nil {
			return i.External.URL
		}
	case IconTypeFile:
		if i.File != nil {
			return i.File.URL
		}
	case IconTypeCustomEmoji:
		if i.CustomEmoji != nil {
			return ":" + i.CustomEmoji.Name + ":"
		}
	}
	return ""
}
