package vo

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type BlockType string

const (
	BlockTypeAudio            BlockType = "audio"
	BlockTypeBookmark         BlockType = "bookmark"
	BlockTypeBreadcrumb       BlockType = "breadcrumb"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeChildDatabase    BlockType = "child_database"
	BlockTypeChildPage        BlockType = "child_page"
	BlockTypeCode             BlockType = "code"
	BlockTypeColumn           BlockType = "column"
	BlockTypeColumnList       BlockType = "column_list"
	BlockTypeDivider          BlockType = "divider"
	BlockTypeEmbed            BlockType = "embed"
	BlockTypeEquation         BlockType = "equation"
	BlockTypeFile             BlockType = "file"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeImage            BlockType = "image"
	BlockTypeLinkPreview      BlockType = "link_preview"
	BlockTypeLinkToPage       BlockType = "link_to_page"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypePDF              BlockType = "pdf"
	BlockTypeQuote            BlockType = "quote"
	BlockTypeSyncedBlock      BlockType = "synced_block"
	BlockTypeTable            BlockType = "table"
	BlockTypeTableOfContents  BlockType = "table_of_contents"
	BlockTypeTableRow         BlockType = "table_row"
	BlockTypeTemplate         BlockType = "template"
	BlockTypeToDo             BlockType = "to_do"
	BlockTypeToggle           BlockType = "toggle"
	BlockTypeTranscription    BlockType = "transcription"
	BlockTypeVideo            BlockType = "video"
	BlockTypeUnsupported      BlockType = "unsupported"
)

// Block is the variant part of a block: a type and the payload stored under
// the key of the same name. Types this package does not know decode to
// BlockTypeUnsupported with the original tag and payload kept in
// UnsupportedType and Raw.
type Block struct {
	Type BlockType

	Paragraph        *TextBlock
	BulletedListItem *TextBlock
	NumberedListItem *TextBlock
	Quote            *TextBlock
	Toggle           *TextBlock
	Template         *TextBlock
	Heading1         *Heading
	Heading2         *Heading
	Heading3         *Heading
	Callout          *Callout
	ToDo             *ToDo
	Code             *Code
	ChildPage        *ChildPage
	ChildDatabase    *ChildPage
	Embed            *Embed
	Bookmark         *Embed
	LinkPreview      *LinkPreview
	LinkToPage       *Parent
	Image            *File
	Video            *File
	Audio            *File
	PDF              *File
	File             *File
	Equation         *Equation
	Divider          *struct{}
	Breadcrumb       *struct{}
	ColumnList       *ColumnList
	Column           *Column
	TableOfContents  *TableOfContents
	Table            *Table
	TableRow         *TableRow
	SyncedBlock      *SyncedBlock
	Transcription    *Transcription

	UnsupportedType string
	Raw             json.RawMessage
}

// TextBlock is the payload of paragraph, list items, quote, toggle and
// template blocks.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

type Heading struct {
	RichText     []RichText `json:"rich_text"`
	Color        Color      `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable"`
	Children     []Block    `json:"children,omitempty"`
}

type Callout struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

type ToDo struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

type Code struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language Language   `json:"language"`
}

// ChildPage is the payload of child_page and child_database blocks.
type ChildPage struct {
	Title string `json:"title"`
}

// Embed is the payload of embed and bookmark blocks.
type Embed struct {
	URL     string     `json:"url"`
	Caption []RichText `json:"caption,omitempty"`
}

type ColumnList struct {
	Children []Block `json:"children,omitempty"`
}

type Column struct {
	WidthRatio *float64 `json:"width_ratio,omitempty"`
	Children   []Block  `json:"children,omitempty"`
}

type TableOfContents struct {
	Color Color `json:"color,omitempty"`
}

type Table struct {
	TableWidth      int     `json:"table_width"`
	HasColumnHeader bool    `json:"has_column_header"`
	HasRowHeader    bool    `json:"has_row_header"`
	Children        []Block `json:"children,omitempty"`
}

type TableRow struct {
	Cells [][]RichText `json:"cells"`
}

// SyncedBlock is an original when SyncedFrom is nil, a reference otherwise.
type SyncedBlock struct {
	SyncedFrom *SyncedFrom `json:"synced_from"`
	Children   []Block     `json:"children,omitempty"`
}

type SyncedFrom struct {
	Type    string `json:"type"`
	BlockID string `json:"block_id"`
}

type Transcription struct {
	Title         []RichText              `json:"title,omitempty"`
	Status        string                  `json:"status,omitempty"`
	Children      *TranscriptionChildren  `json:"children,omitempty"`
	CalendarEvent *TranscriptionTimeRange `json:"calendar_event,omitempty"`
	Recording     *TranscriptionTimeRange `json:"recording,omitempty"`
}

type TranscriptionChildren struct {
	SummaryBlockID    string `json:"summary_block_id,omitempty"`
	NotesBlockID      string `json:"notes_block_id,omitempty"`
	TranscriptBlockID string `json:"transcript_block_id,omitempty"`
}

type TranscriptionTimeRange struct {
	StartTime string   `json:"start_time,omitempty"`
	EndTime   string   `json:"end_time,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
}

func textSlot(field func(b *Block) **TextBlock) slot[Block] { return objSlot(field) }

var blockKinds = map[BlockType]slot[Block]{
	BlockTypeParagraph:        textSlot(func(b *Block) **TextBlock { return &b.Paragraph }),
	BlockTypeBulletedListItem: textSlot(func(b *Block) **TextBlock { return &b.BulletedListItem }),
	BlockTypeNumberedListItem: textSlot(func(b *Block) **TextBlock { return &b.NumberedListItem }),
	BlockTypeQuote:            textSlot(func(b *Block) **TextBlock { return &b.Quote }),
	BlockTypeToggle:           textSlot(func(b *Block) **TextBlock { return &b.Toggle }),
	BlockTypeTemplate:         textSlot(func(b *Block) **TextBlock { return &b.Template }),
	BlockTypeHeading1:         objSlot(func(b *Block) **Heading { return &b.Heading1 }),
	BlockTypeHeading2:         objSlot(func(b *Block) **Heading { return &b.Heading2 }),
	BlockTypeHeading3:         objSlot(func(b *Block) **Heading { return &b.Heading3 }),
	BlockTypeCallout:          objSlot(func(b *Block) **Callout { return &b.Callout }),
	BlockTypeToDo:             objSlot(func(b *Block) **ToDo { return &b.ToDo }),
	BlockTypeCode:             objSlot(func(b *Block) **Code { return &b.Code }),
	BlockTypeChildPage:        objSlot(func(b *Block) **ChildPage { return &b.ChildPage }),
	BlockTypeChildDatabase:    objSlot(func(b *Block) **ChildPage { return &b.ChildDatabase }),
	BlockTypeEmbed:            objSlot(func(b *Block) **Embed { return &b.Embed }),
	BlockTypeBookmark:         objSlot(func(b *Block) **Embed { return &b.Bookmark }),
	BlockTypeLinkPreview:      objSlot(func(b *Block) **LinkPreview { return &b.LinkPreview }),
	BlockTypeLinkToPage:       objSlot(func(b *Block) **Parent { return &b.LinkToPage }),
	BlockTypeImage:            objSlot(func(b *Block) **File { return &b.Image }),
	BlockTypeVideo:            objSlot(func(b *Block) **File { return &b.Video }),
	BlockTypeAudio:            objSlot(func(b *Block) **File { return &b.Audio }),
	BlockTypePDF:              objSlot(func(b *Block) **File { return &b.PDF }),
	BlockTypeFile:             objSlot(func(b *Block) **File { return &b.File }),
	BlockTypeEquation:         objSlot(func(b *Block) **Equation { return &b.Equation }),
	BlockTypeDivider:          objSlot(func(b *Block) **struct{} { return &b.Divider }),
	BlockTypeBreadcrumb:       objSlot(func(b *Block) **struct{} { return &b.Breadcrumb }),
	BlockTypeColumnList:       objSlot(func(b *Block) **ColumnList { return &b.ColumnList }),
	BlockTypeColumn:           objSlot(func(b *Block) **Column { return &b.Column }),
	BlockTypeTableOfContents:  objSlot(func(b *Block) **TableOfContents { return &b.TableOfContents }),
	BlockTypeTable:            objSlot(func(b *Block) **Table { return &b.Table }),
	BlockTypeTableRow:         objSlot(func(b *Block) **TableRow { return &b.TableRow }),
	BlockTypeSyncedBlock:      objSlot(func(b *Block) **SyncedBlock { return &b.SyncedBlock }),
	BlockTypeTranscription:    objSlot(func(b *Block) **Transcription { return &b.Transcription }),
}

func (b Block) MarshalJSON() ([]byte, error) {
	if b.Type == BlockTypeUnsupported {
		tag := b.UnsupportedType
		if tag == "" {
			tag = string(BlockTypeUnsupported)
		}
		var payload any = struct{}{}
		if len(b.Raw) > 0 {
			payload = b.Raw
		}
		return json.Marshal(map[string]any{"type": tag, tag: payload})
	}
	kind, ok := blockKinds[b.Type]
	if !ok {
		return nil, fmt.Errorf("unknown block type %q", b.Type)
	}
	return json.Marshal(map[string]any{"type": b.Type, string(b.Type): kind.encode(&b)})
}

func (b *Block) UnmarshalJSON(data []byte) error {
	tag, raw, err := splitTagged(data, "type")
	if err != nil {
		return err
	}
	kind, ok := blockKinds[BlockType(tag)]
	if !ok {
		*b = Block{Type: BlockTypeUnsupported, UnsupportedType: tag, Raw: raw[tag]}
		return nil
	}
	out := Block{Type: BlockType(tag)}
	if err := kind.decode(&out, raw[tag]); err != nil {
		return fmt.Errorf("failed to decode %s block: %w", tag, err)
	}
	*b = out
	return nil
}

// Children returns the nested children carried in a request payload.
func (b Block) Children() []Block {
	switch {
	case b.Paragraph != nil:
		return b.Paragraph.Children
	case b.BulletedListItem != nil:
		return b.BulletedListItem.Children
	case b.NumberedListItem != nil:
		return b.NumberedListItem.Children
	case b.Quote != nil:
		return b.Quote.Children
	case b.Toggle != nil:
		return b.Toggle.Children
	case b.Template != nil:
		return b.Template.Children
	case b.Heading1 != nil:
		return b.Heading1.Children
	case b.Heading2 != nil:
		return b.Heading2.Children
	case b.Heading3 != nil:
		return b.Heading3.Children
	case b.Callout != nil:
		return b.Callout.Children
	case b.ToDo != nil:
		return b.ToDo.Children
	case b.ColumnList != nil:
		return b.ColumnList.Children
	case b.Column != nil:
		return b.Column.Children
	case b.Table != nil:
		return b.Table.Children
	case b.SyncedBlock != nil:
		return b.SyncedBlock.Children
	}
	return nil
}

// RichText returns the inline text of text-like blocks.
func (b Block) RichText() []RichText {
	switch {
	case b.Paragraph != nil:
		return b.Paragraph.RichText
	case b.BulletedListItem != nil:
		return b.BulletedListItem.RichText
	case b.NumberedListItem != nil:
		return b.NumberedListItem.RichText
	case b.Quote != nil:
		return b.Quote.RichText
	case b.Toggle != nil:
		return b.Toggle.RichText
	case b.Template != nil:
		return b.Template.RichText
	case b.Heading1 != nil:
		return b.Heading1.RichText
	case b.Heading2 != nil:
		return b.Heading2.RichText
	case b.Heading3 != nil:
		return b.Heading3.RichText
	case b.Callout != nil:
		return b.Callout.RichText
	case b.ToDo != nil:
		return b.ToDo.RichText
	case b.Code != nil:
		return b.Code.RichText
	}
	return nil
}

func Paragraph(segments ...RichText) Block {
	return Block{Type: BlockTypeParagraph, Paragraph: &TextBlock{RichText: nonNil(segments)}}
}

func BulletedListItem(segments ...RichText) Block {
	return Block{Type: BlockTypeBulletedListItem, BulletedListItem: &TextBlock{RichText: nonNil(segments)}}
}

func NumberedListItem(segments ...RichText) Block {
	return Block{Type: BlockTypeNumberedListItem, NumberedListItem: &TextBlock{RichText: nonNil(segments)}}
}

func Quote(segments ...RichText) Block {
	return Block{Type: BlockTypeQuote, Quote: &TextBlock{RichText: nonNil(segments)}}
}

func Toggle(segments ...RichText) Block {
	return Block{Type: BlockTypeToggle, Toggle: &TextBlock{RichText: nonNil(segments)}}
}

// HeadingBlock builds a heading of level 1 to 3.
func HeadingBlock(level int, segments ...RichText) Block {
	h := &Heading{RichText: nonNil(segments)}
	switch level {
	case 1:
		return Block{Type: BlockTypeHeading1, Heading1: h}
	case 2:
		return Block{Type: BlockTypeHeading2, Heading2: h}
	default:
		return Block{Type: BlockTypeHeading3, Heading3: h}
	}
}

func ToDoBlock(checked bool, segments ...RichText) Block {
	return Block{Type: BlockTypeToDo, ToDo: &ToDo{RichText: nonNil(segments), Checked: checked}}
}

func CodeBlock(language Language, code string) Block {
	return Block{Type: BlockTypeCode, Code: &Code{RichText: []RichText{NewText(code)}, Language: language}}
}

func CalloutBlock(icon *Icon, segments ...RichText) Block {
	return Block{Type: BlockTypeCallout, Callout: &Callout{RichText: nonNil(segments), Icon: icon}}
}

func DividerBlock() Block {
	return Block{Type: BlockTypeDivider, Divider: &struct{}{}}
}

func BookmarkBlock(url string) Block {
	return Block{Type: BlockTypeBookmark, Bookmark: &Embed{URL: url}}
}

func EmbedBlock(url string) Block {
	return Block{Type: BlockTypeEmbed, Embed: &Embed{URL: url}}
}

func ImageBlock(f File) Block {
	return Block{Type: BlockTypeImage, Image: &f}
}

func EquationBlock(expression string) Block {
	return Block{Type: BlockTypeEquation, Equation: &Equation{Expression: expression}}
}

func nonNil(segments []RichText) []RichText {
	if segments == nil {
		return []RichText{}
	}
	return segments
}

// BlockResponse is a block as returned by the api: the object envelope with
// the variant flattened into it. Children are never embedded; HasChildren
// tells whether a separate children listing exists.
type BlockResponse struct {
	Object         string
	ID             string
	Parent         *Parent
	CreatedTime    string
	LastEditedTime string
	CreatedBy      *User
	LastEditedBy   *User
	HasChildren    bool
	Archived       bool
	InTrash        bool
	Block          Block
}

type blockEnvelope struct {
	Object         string  `json:"object"`
	ID             string  `json:"id"`
	Parent         *Parent `json:"parent,omitempty"`
	CreatedTime    string  `json:"created_time,omitempty"`
	LastEditedTime string  `json:"last_edited_time,omitempty"`
	CreatedBy      *User   `json:"created_by,omitempty"`
	LastEditedBy   *User   `json:"last_edited_by,omitempty"`
	HasChildren    bool    `json:"has_children"`
	Archived       bool    `json:"archived"`
	InTrash        bool    `json:"in_trash"`
}

func (r BlockResponse) MarshalJSON() ([]byte, error) {
	env, err := json.Marshal(blockEnvelope{
		Object: r.Object, ID: r.ID, Parent: r.Parent,
		CreatedTime: r.CreatedTime, LastEditedTime: r.LastEditedTime,
		CreatedBy: r.CreatedBy, LastEditedBy: r.LastEditedBy,
		HasChildren: r.HasChildren, Archived: r.Archived, InTrash: r.InTrash,
	})
	if err != nil {
		return nil, err
	}
	variant, err := json.Marshal(r.Block)
	if err != nil {
		return nil, err
	}
	// both are non-empty objects: splice their members
	out := make([]byte, 0, len(env)+len(variant))
	out = append(out, env[:len(env)-1]...)
	out = append(out, ',')
	out = append(out, variant[1:]...)
	return out, nil
}

func (r *BlockResponse) UnmarshalJSON(data []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	var b Block
	if err := b.UnmarshalJSON(data); err != nil {
		return err
	}
	*r = BlockResponse{
		Object: env.Object, ID: env.ID, Parent: env.Parent,
		CreatedTime: env.CreatedTime, LastEditedTime: env.LastEditedTime,
		CreatedBy: env.CreatedBy, LastEditedBy: env.LastEditedBy,
		HasChildren: env.HasChildren, Archived: env.Archived, InTrash: env.InTrash,
		Block: b,
	}
	return nil
}
