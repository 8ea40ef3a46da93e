package vo

type Comment struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	Parent         Parent              `json:"parent"`
	DiscussionID   string              `json:"discussion_id"`
	CreatedTime    string              `json:"created_time,omitempty"`
	LastEditedTime string              `json:"last_edited_time,omitempty"`
	CreatedBy      *User               `json:"created_by,omitempty"`
	RichText       []RichText          `json:"rich_text"`
	Attachments    []CommentAttachment `json:"attachments,omitempty"`
	DisplayName    *CommentDisplayName `json:"display_name,omitempty"`
}

type CommentAttachment struct {
	Category string      `json:"category,omitempty"`
	File     *HostedFile `json:"file,omitempty"`
}

type CommentDisplayName struct {
	Type         string `json:"type"`
	ResolvedName string `json:"resolved_name,omitempty"`
}
