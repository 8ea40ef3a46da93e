package filter

// Empty is a marker operator such as past_week. It encodes as {}.
type Empty struct{}

// Condition holds the operator record of exactly one property kind.
type Condition struct {
	Checkbox       *CheckboxCondition     `json:"checkbox,omitempty"`
	Date           *DateCondition         `json:"date,omitempty"`
	Files          *FilesCondition        `json:"files,omitempty"`
	Formula        *FormulaCondition      `json:"formula,omitempty"`
	MultiSelect    *ListCondition         `json:"multi_select,omitempty"`
	Number         *NumberCondition       `json:"number,omitempty"`
	People         *ListCondition         `json:"people,omitempty"`
	Relation       *ListCondition         `json:"relation,omitempty"`
	RichText       *TextCondition         `json:"rich_text,omitempty"`
	Title          *TextCondition         `json:"title,omitempty"`
	URL            *TextCondition         `json:"url,omitempty"`
	Email          *TextCondition         `json:"email,omitempty"`
	PhoneNumber    *TextCondition         `json:"phone_number,omitempty"`
	Select         *SelectCondition       `json:"select,omitempty"`
	Status         *SelectCondition       `json:"status,omitempty"`
	UniqueID       *UniqueIDCondition     `json:"unique_id,omitempty"`
	Rollup         *RollupCondition       `json:"rollup,omitempty"`
	Verification   *VerificationCondition `json:"verification,omitempty"`
	CreatedBy      *ListCondition         `json:"created_by,omitempty"`
	LastEditedBy   *ListCondition         `json:"last_edited_by,omitempty"`
	CreatedTime    *DateCondition         `json:"created_time,omitempty"`
	LastEditedTime *DateCondition         `json:"last_edited_time,omitempty"`
}

type CheckboxCondition struct {
	Equals       *bool `json:"equals,omitempty"`
	DoesNotEqual *bool `json:"does_not_equal,omitempty"`
}

// DateCondition values are ISO 8601 dates or datetimes.
type DateCondition struct {
	After      string `json:"after,omitempty"`
	Before     string `json:"before,omitempty"`
	Equals     string `json:"equals,omitempty"`
	IsEmpty    bool   `json:"is_empty,omitempty"`
	IsNotEmpty bool   `json:"is_not_empty,omitempty"`
	NextMonth  *Empty `json:"next_month,omitempty"`
	NextWeek   *Empty `json:"next_week,omitempty"`
	NextYear   *Empty `json:"next_year,omitempty"`
	OnOrAfter  string `json:"on_or_after,omitempty"`
	OnOrBefore string `json:"on_or_before,omitempty"`
	PastMonth  *Empty `json:"past_month,omitempty"`
	PastWeek   *Empty `json:"past_week,omitempty"`
	PastYear   *Empty `json:"past_year,omitempty"`
	ThisWeek   *Empty `json:"this_week,omitempty"`
}

type FilesCondition struct {
	IsEmpty    bool `json:"is_empty,omitempty"`
	IsNotEmpty bool `json:"is_not_empty,omitempty"`
}

type FormulaCondition struct {
	Checkbox *CheckboxCondition `json:"checkbox,omitempty"`
	Date     *DateCondition     `json:"date,omitempty"`
	Number   *NumberCondition   `json:"number,omitempty"`
	String   *TextCondition     `json:"string,omitempty"`
}

// ListCondition serves multi_select, people, relation, created_by and
// last_edited_by. Contains takes an option name or an id.
type ListCondition struct {
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

type NumberCondition struct {
	Equals               *float64 `json:"equals,omitempty"`
	DoesNotEqual         *float64 `json:"does_not_equal,omitempty"`
	GreaterThan          *float64 `json:"greater_than,omitempty"`
	GreaterThanOrEqualTo *float64 `json:"greater_than_or_equal_to,omitempty"`
	LessThan             *float64 `json:"less_than,omitempty"`
	LessThanOrEqualTo    *float64 `json:"less_than_or_equal_to,omitempty"`
	IsEmpty              bool     `json:"is_empty,omitempty"`
	IsNotEmpty           bool     `json:"is_not_empty,omitempty"`
}

// TextCondition serves title, rich_text, url, email and phone_number.
type TextCondition struct {
	Contains       *string `json:"contains,omitempty"`
	DoesNotContain *string `json:"does_not_contain,omitempty"`
	Equals         *string `json:"equals,omitempty"`
	DoesNotEqual   *string `json:"does_not_equal,omitempty"`
	StartsWith     *string `json:"starts_with,omitempty"`
	EndsWith       *string `json:"ends_with,omitempty"`
	IsEmpty        bool    `json:"is_empty,omitempty"`
	IsNotEmpty     bool    `json:"is_not_empty,omitempty"`
}

// SelectCondition serves select and status. Pointer operands keep an
// empty option name on the wire.
type SelectCondition struct {
	Equals       *string `json:"equals,omitempty"`
	DoesNotEqual *string `json:"does_not_equal,omitempty"`
	IsEmpty      bool    `json:"is_empty,omitempty"`
	IsNotEmpty   bool    `json:"is_not_empty,omitempty"`
}

type UniqueIDCondition struct {
	Equals               *int64 `json:"equals,omitempty"`
	DoesNotEqual         *int64 `json:"does_not_equal,omitempty"`
	GreaterThan          *int64 `json:"greater_than,omitempty"`
	GreaterThanOrEqualTo *int64 `json:"greater_than_or_equal_to,omitempty"`
	LessThan             *int64 `json:"less_than,omitempty"`
	LessThanOrEqualTo    *int64 `json:"less_than_or_equal_to,omitempty"`
}

// RollupCondition applies Any, Every or None to each element of an array
// rollup, or Number and Date to a computed one.
type RollupCondition struct {
	Any    *Condition       `json:"any,omitempty"`
	Every  *Condition       `json:"every,omitempty"`
	None   *Condition       `json:"none,omitempty"`
	Number *NumberCondition `json:"number,omitempty"`
	Date   *DateCondition   `json:"date,omitempty"`
}

type VerificationStatus string

const (
	VerificationVerified VerificationStatus = "verified"
	VerificationExpired  VerificationStatus = "expired"
	VerificationNone     VerificationStatus = "none"
)

type VerificationCondition struct {
	Status VerificationStatus `json:"status"`
}
