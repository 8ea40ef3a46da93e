package vo

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// PropertyValue is the value of one property on a page. Type selects the
// populated field; nullable kinds encode a nil field as null.
type PropertyValue struct {
	ID   string
	Type PropertyType

	Title          []RichText
	RichText       []RichText
	Number         *float64
	Select         *SelectOption
	MultiSelect    []SelectOption
	Status         *SelectOption
	Date           *DateValue
	People         []User
	Files          []File
	Relation       []ObjectRef
	HasMore        *bool
	Rollup         *RollupValue
	Formula        *FormulaValue
	Checkbox       bool
	URL            *string
	Email          *string
	PhoneNumber    *string
	CreatedBy      *User
	CreatedTime    string
	LastEditedBy   *User
	LastEditedTime string
	UniqueID       *UniqueIDValue
	Verification   *VerificationValue
	Place          *PlaceValue
}

type FormulaType string

const (
	FormulaTypeBoolean FormulaType = "boolean"
	FormulaTypeDate    FormulaType = "date"
	FormulaTypeNumber  FormulaType = "number"
	FormulaTypeString  FormulaType = "string"
)

var formulaTypes = newEnumSet(FormulaTypeBoolean, FormulaTypeDate, FormulaTypeNumber, FormulaTypeString)

func (t *FormulaType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, formulaTypes, "formula type")
	return err
}

// FormulaValue is a computed result. Only the key named by Type is emitted.
type FormulaValue struct {
	Type    FormulaType
	Boolean *bool
	Date    *DateValue
	Number  *float64
	String  *string
}

func (f FormulaValue) MarshalJSON() ([]byte, error) {
	var payload any
	switch f.Type {
	case FormulaTypeBoolean:
		payload = f.Boolean
	case FormulaTypeDate:
		payload = f.Date
	case FormulaTypeNumber:
		payload = f.Number
	case FormulaTypeString:
		payload = f.String
	default:
		return nil, fmt.Errorf("unknown formula type %q", f.Type)
	}
	return json.Marshal(map[string]any{"type": f.Type, string(f.Type): payload})
}

func (f *FormulaValue) UnmarshalJSON(data []byte) error {
	var w struct {
		Type    FormulaType `json:"type"`
		Boolean *bool       `json:"boolean"`
		Date    *DateValue  `json:"date"`
		Number  *float64    `json:"number"`
		String  *string     `json:"string"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := FormulaValue{Type: w.Type}
	switch w.Type {
	case FormulaTypeBoolean:
		out.Boolean = w.Boolean
	case FormulaTypeDate:
		out.Date = w.Date
	case FormulaTypeNumber:
		out.Number = w.Number
	case FormulaTypeString:
		out.String = w.String
	}
	*f = out
	return nil
}

type RollupType string

const (
	RollupTypeNumber      RollupType = "number"
	RollupTypeDate        RollupType = "date"
	RollupTypeArray       RollupType = "array"
	RollupTypeIncomplete  RollupType = "incomplete"
	RollupTypeUnsupported RollupType = "unsupported"
)

var rollupTypes = newEnumSet(RollupTypeNumber, RollupTypeDate, RollupTypeArray, RollupTypeIncomplete, RollupTypeUnsupported)

func (t *RollupType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, rollupTypes, "rollup type")
	return err
}

// RollupValue holds an aggregate. Array elements are property values without
// an id.
type RollupValue struct {
	Type     RollupType
	Function RollupFunction
	Number   *float64
	Date     *DateValue
	Array    []PropertyValue
}

func (r RollupValue) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": r.Type}
	if r.Function != "" {
		out["function"] = r.Function
	}
	switch r.Type {
	case RollupTypeNumber:
		out["number"] = r.Number
	case RollupTypeDate:
		out["date"] = r.Date
	case RollupTypeArray:
		if r.Array == nil {
			out["array"] = []PropertyValue{}
		} else {
			out["array"] = r.Array
		}
	case RollupTypeIncomplete, RollupTypeUnsupported:
		out[string(r.Type)] = struct{}{}
	default:
		return nil, fmt.Errorf("unknown rollup type %q", r.Type)
	}
	return json.Marshal(out)
}

func (r *RollupValue) UnmarshalJSON(data []byte) error {
	var w struct {
		Type     RollupType      `json:"type"`
		Function RollupFunction  `json:"function"`
		Number   *float64        `json:"number"`
		Date     *DateValue      `json:"date"`
		Array    []PropertyValue `json:"array"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = RollupValue{Type: w.Type, Function: w.Function, Number: w.Number, Date: w.Date, Array: w.Array}
	return nil
}

type UniqueIDValue struct {
	Prefix string `json:"prefix,omitempty"`
	Number int64  `json:"number"`
}

func (u UniqueIDValue) String() string {
	if u.Prefix == "" {
		return strconv.FormatInt(u.Number, 10)
	}
	return u.Prefix + "-" + strconv.FormatInt(u.Number, 10)
}

type VerificationState string

const (
	VerificationStateVerified   VerificationState = "verified"
	VerificationStateUnverified VerificationState = "unverified"
	VerificationStateExpired    VerificationState = "expired"
)

var verificationStates = newEnumSet(VerificationStateVerified, VerificationStateUnverified, VerificationStateExpired)

func (s *VerificationState) UnmarshalJSON(data []byte) (err error) {
	*s, err = decodeEnum(data, verificationStates, "verification state")
	return err
}

// VerificationValue carries VerifiedBy and Date only when State is verified.
type VerificationValue struct {
	State      VerificationState `json:"state"`
	VerifiedBy *User             `json:"verified_by,omitempty"`
	Date       *DateValue        `json:"date,omitempty"`
}

type PlaceValue struct {
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Name          string  `json:"name,omitempty"`
	Address       string  `json:"address,omitempty"`
	AWSPlaceID    string  `json:"aws_place_id,omitempty"`
	GooglePlaceID string  `json:"google_place_id,omitempty"`
}

func TitleValue(segments ...RichText) PropertyValue {
	if segments == nil {
		segments = []RichText{}
	}
	return PropertyValue{Type: PropertyTypeTitle, Title: segments}
}

func RichTextValue(segments ...RichText) PropertyValue {
	if segments == nil {
		segments = []RichText{}
	}
	return PropertyValue{Type: PropertyTypeRichText, RichText: segments}
}

func NumberValue(n float64) PropertyValue {
	return PropertyValue{Type: PropertyTypeNumber, Number: &n}
}

func SelectValue(name string) PropertyValue {
	return PropertyValue{Type: PropertyTypeSelect, Select: &SelectOption{Name: name}}
}

func MultiSelectValue(names ...string) PropertyValue {
	options := make([]SelectOption, len(names))
	for i, n := range names {
		options[i] = SelectOption{Name: n}
	}
	return PropertyValue{Type: PropertyTypeMultiSelect, MultiSelect: options}
}

func StatusValue(name string) PropertyValue {
	return PropertyValue{Type: PropertyTypeStatus, Status: &SelectOption{Name: name}}
}

func DatePropertyValue(start DateOrDateTime, end *DateOrDateTime) PropertyValue {
	return PropertyValue{Type: PropertyTypeDate, Date: &DateValue{Start: start, End: end}}
}

func CheckboxValue(checked bool) PropertyValue {
	return PropertyValue{Type: PropertyTypeCheckbox, Checkbox: checked}
}

func URLValue(url string) PropertyValue {
	return PropertyValue{Type: PropertyTypeURL, URL: &url}
}

func EmailValue(email string) PropertyValue {
	return PropertyValue{Type: PropertyTypeEmail, Email: &email}
}

func PhoneNumberValue(phone string) PropertyValue {
	return PropertyValue{Type: PropertyTypePhoneNumber, PhoneNumber: &phone}
}

func RelationValue(pageIDs ...string) PropertyValue {
	refs := make([]ObjectRef, len(pageIDs))
	for i, id := range pageIDs {
		refs[i] = ObjectRef{ID: id}
	}
	return PropertyValue{Type: PropertyTypeRelation, Relation: refs}
}

func PeopleValue(userIDs ...string) PropertyValue {
	users := make([]User, len(userIDs))
	for i, id := range userIDs {
		users[i] = UserRef(id)
	}
	return PropertyValue{Type: PropertyTypePeople, People: users}
}

func FilesValue(files ...File) PropertyValue {
	if files == nil {
		files = []File{}
	}
	return PropertyValue{Type: PropertyTypeFiles, Files: files}
}

func (v PropertyValue) MarshalJSON() ([]byte, error) {
	kind, ok := propertyKinds[v.Type]
	if !ok {
		return nil, fmt.Errorf("unknown property type %q", v.Type)
	}
	out := map[string]any{
		"type":         v.Type,
		string(v.Type): kind.value.encode(&v),
	}
	if v.ID != "" {
		out["id"] = v.ID
	}
	if v.Type == PropertyTypeRelation && v.HasMore != nil {
		out["has_more"] = *v.HasMore
	}
	return json.Marshal(out)
}

func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var head struct {
		ID      string       `json:"id"`
		Type    PropertyType `json:"type"`
		HasMore *bool        `json:"has_more"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Type == "" {
		return fmt.Errorf("property value without type")
	}
	_, raw, err := splitTagged(data, "type")
	if err != nil {
		return err
	}
	out := PropertyValue{ID: head.ID, Type: head.Type}
	if head.Type == PropertyTypeRelation {
		out.HasMore = head.HasMore
	}
	if err := propertyKinds[head.Type].value.decode(&out, raw[string(head.Type)]); err != nil {
		return fmt.Errorf("failed to decode %s value: %w", head.Type, err)
	}
	*v = out
	return nil
}

// PlainText renders the value for display.
func (v PropertyValue) PlainText() string {
	switch v.Type {
	case PropertyTypeTitle:
		return PlainText(v.Title)
	case PropertyTypeRichText:
		return PlainText(v.RichText)
	case PropertyTypeNumber:
		if v.Number != nil {
			return strconv.FormatFloat(*v.Number, 'f', -1, 64)
		}
	case PropertyTypeSelect:
		if v.Select != nil {
			return v.Select.Name
		}
	case PropertyTypeStatus:
		if v.Status != nil {
			return v.Status.Name
		}
	case PropertyTypeMultiSelect:
		names := make([]string, len(v.MultiSelect))
		for i, o := range v.MultiSelect {
			names[i] = o.Name
		}
		return strings.Join(names, ", ")
	case PropertyTypeDate:
		if v.Date != nil {
			if v.Date.End != nil {
				return v.Date.Start.String() + " → " + v.Date.End.String()
			}
			return v.Date.Start.String()
		}
	case PropertyTypeCheckbox:
		return strconv.FormatBool(v.Checkbox)
	case PropertyTypeURL:
		return deref(v.URL)
	case PropertyTypeEmail:
		return deref(v.Email)
	case PropertyTypePhoneNumber:
		return deref(v.PhoneNumber)
	case PropertyTypeCreatedTime:
		return v.CreatedTime
	case PropertyTypeLastEditedTime:
		return v.LastEditedTime
	case PropertyTypeUniqueID:
		if v.UniqueID != nil {
			return v.UniqueID.String()
		}
	case PropertyTypePeople:
		names := make([]string, len(v.People))
		for i, u := range v.People {
			names[i] = u.Name
		}
		return strings.Join(names, ", ")
	case PropertyTypeFormula:
		if f := v.Formula; f != nil {
			switch {
			case f.String != nil:
				return *f.String
			case f.Number != nil:
				return strconv.FormatFloat(*f.Number, 'f', -1, 64)
			case f.Boolean != nil:
				return strconv.FormatBool(*f.Boolean)
			case f.Date != nil:
				return f.Date.Start.String()
			}
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
