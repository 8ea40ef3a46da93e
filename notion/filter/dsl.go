package filter

import "github.com/foomo/notion-mcp/notion/vo"

func ptr[T any](v T) *T { return &v }

func CheckboxEquals(property string, v bool) Filter {
	return leaf(property, Condition{Checkbox: &CheckboxCondition{Equals: &v}})
}

func CheckboxDoesNotEqual(property string, v bool) Filter {
	return leaf(property, Condition{Checkbox: &CheckboxCondition{DoesNotEqual: &v}})
}

func CheckboxIsChecked(property string) Filter { return CheckboxEquals(property, true) }

func CheckboxIsNotChecked(property string) Filter { return CheckboxEquals(property, false) }

func DateAfter(property, date string) Filter {
	return leaf(property, Condition{Date: &DateCondition{After: date}})
}

func DateBefore(property, date string) Filter {
	return leaf(property, Condition{Date: &DateCondition{Before: date}})
}

func DateEquals(property, date string) Filter {
	return leaf(property, Condition{Date: &DateCondition{Equals: date}})
}

func DateOnOrAfter(property, date string) Filter {
	return leaf(property, Condition{Date: &DateCondition{OnOrAfter: date}})
}

func DateOnOrBefore(property, date string) Filter {
	return leaf(property, Condition{Date: &DateCondition{OnOrBefore: date}})
}

func DateIsEmpty(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{IsEmpty: true}})
}

func DateIsNotEmpty(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{IsNotEmpty: true}})
}

func DateNextMonth(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{NextMonth: &Empty{}}})
}

func DateNextWeek(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{NextWeek: &Empty{}}})
}

func DateNextYear(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{NextYear: &Empty{}}})
}

func DatePastMonth(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{PastMonth: &Empty{}}})
}

func DatePastWeek(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{PastWeek: &Empty{}}})
}

func DatePastYear(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{PastYear: &Empty{}}})
}

func DateThisWeek(property string) Filter {
	return leaf(property, Condition{Date: &DateCondition{ThisWeek: &Empty{}}})
}

func FilesIsEmpty(property string) Filter {
	return leaf(property, Condition{Files: &FilesCondition{IsEmpty: true}})
}

func FilesIsNotEmpty(property string) Filter {
	return leaf(property, Condition{Files: &FilesCondition{IsNotEmpty: true}})
}

func FormulaCheckbox(property string, c CheckboxCondition) Filter {
	return leaf(property, Condition{Formula: &FormulaCondition{Checkbox: &c}})
}

func FormulaDate(property string, c DateCondition) Filter {
	return leaf(property, Condition{Formula: &FormulaCondition{Date: &c}})
}

func FormulaNumber(property string, c NumberCondition) Filter {
	return leaf(property, Condition{Formula: &FormulaCondition{Number: &c}})
}

func FormulaString(property string, c TextCondition) Filter {
	return leaf(property, Condition{Formula: &FormulaCondition{String: &c}})
}

func MultiSelectContains(property, option string) Filter {
	return leaf(property, Condition{MultiSelect: &ListCondition{Contains: &option}})
}

func MultiSelectDoesNotContain(property, option string) Filter {
	return leaf(property, Condition{MultiSelect: &ListCondition{DoesNotContain: &option}})
}

func MultiSelectIsEmpty(property string) Filter {
	return leaf(property, Condition{MultiSelect: &ListCondition{IsEmpty: true}})
}

func MultiSelectIsNotEmpty(property string) Filter {
	return leaf(property, Condition{MultiSelect: &ListCondition{IsNotEmpty: true}})
}

func NumberEquals(property string, n float64) Filter {
	return leaf(property, Condition{Number: &NumberCondition{Equals: &n}})
}

func NumberDoesNotEqual(property string, n float64) Filter {
	return leaf(property, Condition{Number: &NumberCondition{DoesNotEqual: &n}})
}

func NumberGreaterThan(property string, n float64) Filter {
	return leaf(property, Condition{Number: &NumberCondition{GreaterThan: &n}})
}

func NumberGreaterThanOrEqualTo(property string, n float64) Filter {
	return leaf(property, Condition{Number: &NumberCondition{GreaterThanOrEqualTo: &n}})
}

func NumberLessThan(property string, n float64) Filter {
	return leaf(property, Condition{Number: &NumberCondition{LessThan: &n}})
}

func NumberLessThanOrEqualTo(property string, n float64) Filter {
	return leaf(property, Condition{Number: &NumberCondition{LessThanOrEqualTo: &n}})
}

func NumberIsEmpty(property string) Filter {
	return leaf(property, Condition{Number: &NumberCondition{IsEmpty: true}})
}

func NumberIsNotEmpty(property string) Filter {
	return leaf(property, Condition{Number: &NumberCondition{IsNotEmpty: true}})
}

func PeopleContains(property, userID string) Filter {
	return leaf(property, Condition{People: &ListCondition{Contains: &userID}})
}

func PeopleDoesNotContain(property, userID string) Filter {
	return leaf(property, Condition{People: &ListCondition{DoesNotContain: &userID}})
}

func PeopleIsEmpty(property string) Filter {
	return leaf(property, Condition{People: &ListCondition{IsEmpty: true}})
}

func PeopleIsNotEmpty(property string) Filter {
	return leaf(property, Condition{People: &ListCondition{IsNotEmpty: true}})
}

func RelationContains(property, pageID string) Filter {
	return leaf(property, Condition{Relation: &ListCondition{Contains: &pageID}})
}

func RelationDoesNotContain(property, pageID string) Filter {
	return leaf(property, Condition{Relation: &ListCondition{DoesNotContain: &pageID}})
}

func RelationIsEmpty(property string) Filter {
	return leaf(property, Condition{Relation: &ListCondition{IsEmpty: true}})
}

func RelationIsNotEmpty(property string) Filter {
	return leaf(property, Condition{Relation: &ListCondition{IsNotEmpty: true}})
}

// text builds a leaf on one of the text kinds.
func text(kind vo.PropertyType, property string, c TextCondition) Filter {
	cond := Condition{}
	switch kind {
	case vo.PropertyTypeTitle:
		cond.Title = &c
	case vo.PropertyTypeURL:
		cond.URL = &c
	case vo.PropertyTypeEmail:
		cond.Email = &c
	case vo.PropertyTypePhoneNumber:
		cond.PhoneNumber = &c
	default:
		cond.RichText = &c
	}
	return leaf(property, cond)
}

func RichTextContains(property, s string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{Contains: &s})
}

func RichTextDoesNotContain(property, s string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{DoesNotContain: &s})
}

func RichTextEquals(property, s string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{Equals: &s})
}

func RichTextDoesNotEqual(property, s string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{DoesNotEqual: &s})
}

func RichTextStartsWith(property, s string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{StartsWith: &s})
}

func RichTextEndsWith(property, s string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{EndsWith: &s})
}

func RichTextIsEmpty(property string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{IsEmpty: true})
}

func RichTextIsNotEmpty(property string) Filter {
	return text(vo.PropertyTypeRichText, property, TextCondition{IsNotEmpty: true})
}

func TitleContains(property, s string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{Contains: &s})
}

func TitleDoesNotContain(property, s string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{DoesNotContain: &s})
}

func TitleEquals(property, s string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{Equals: &s})
}

func TitleDoesNotEqual(property, s string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{DoesNotEqual: &s})
}

func TitleStartsWith(property, s string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{StartsWith: &s})
}

func TitleEndsWith(property, s string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{EndsWith: &s})
}

func TitleIsEmpty(property string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{IsEmpty: true})
}

func TitleIsNotEmpty(property string) Filter {
	return text(vo.PropertyTypeTitle, property, TextCondition{IsNotEmpty: true})
}

func URLContains(property, s string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{Contains: &s})
}

func URLDoesNotContain(property, s string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{DoesNotContain: &s})
}

func URLEquals(property, s string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{Equals: &s})
}

func URLDoesNotEqual(property, s string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{DoesNotEqual: &s})
}

func URLStartsWith(property, s string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{StartsWith: &s})
}

func URLEndsWith(property, s string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{EndsWith: &s})
}

func URLIsEmpty(property string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{IsEmpty: true})
}

func URLIsNotEmpty(property string) Filter {
	return text(vo.PropertyTypeURL, property, TextCondition{IsNotEmpty: true})
}

func EmailContains(property, s string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{Contains: &s})
}

func EmailDoesNotContain(property, s string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{DoesNotContain: &s})
}

func EmailEquals(property, s string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{Equals: &s})
}

func EmailDoesNotEqual(property, s string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{DoesNotEqual: &s})
}

func EmailStartsWith(property, s string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{StartsWith: &s})
}

func EmailEndsWith(property, s string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{EndsWith: &s})
}

func EmailIsEmpty(property string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{IsEmpty: true})
}

func EmailIsNotEmpty(property string) Filter {
	return text(vo.PropertyTypeEmail, property, TextCondition{IsNotEmpty: true})
}

func PhoneNumberContains(property, s string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{Contains: &s})
}

func PhoneNumberDoesNotContain(property, s string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{DoesNotContain: &s})
}

func PhoneNumberEquals(property, s string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{Equals: &s})
}

func PhoneNumberDoesNotEqual(property, s string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{DoesNotEqual: &s})
}

func PhoneNumberStartsWith(property, s string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{StartsWith: &s})
}

func PhoneNumberEndsWith(property, s string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{EndsWith: &s})
}

func PhoneNumberIsEmpty(property string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{IsEmpty: true})
}

func PhoneNumberIsNotEmpty(property string) Filter {
	return text(vo.PropertyTypePhoneNumber, property, TextCondition{IsNotEmpty: true})
}

func SelectEquals(property, option string) Filter {
	return leaf(property, Condition{Select: &SelectCondition{Equals: &option}})
}

func SelectDoesNotEqual(property, option string) Filter {
	return leaf(property, Condition{Select: &SelectCondition{DoesNotEqual: &option}})
}

func SelectIsEmpty(property string) Filter {
	return leaf(property, Condition{Select: &SelectCondition{IsEmpty: true}})
}

func SelectIsNotEmpty(property string) Filter {
	return leaf(property, Condition{Select: &SelectCondition{IsNotEmpty: true}})
}

func StatusEquals(property, option string) Filter {
	return leaf(property, Condition{Status: &SelectCondition{Equals: &option}})
}

func StatusDoesNotEqual(property, option string) Filter {
	return leaf(property, Condition{Status: &SelectCondition{DoesNotEqual: &option}})
}

func StatusIsEmpty(property string) Filter {
	return leaf(property, Condition{Status: &SelectCondition{IsEmpty: true}})
}

func StatusIsNotEmpty(property string) Filter {
	return leaf(property, Condition{Status: &SelectCondition{IsNotEmpty: true}})
}

func UniqueIDEquals(property string, n int64) Filter {
	return leaf(property, Condition{UniqueID: &UniqueIDCondition{Equals: &n}})
}

func UniqueIDDoesNotEqual(property string, n int64) Filter {
	return leaf(property, Condition{UniqueID: &UniqueIDCondition{DoesNotEqual: &n}})
}

func UniqueIDGreaterThan(property string, n int64) Filter {
	return leaf(property, Condition{UniqueID: &UniqueIDCondition{GreaterThan: &n}})
}

func UniqueIDGreaterThanOrEqualTo(property string, n int64) Filter {
	return leaf(property, Condition{UniqueID: &UniqueIDCondition{GreaterThanOrEqualTo: &n}})
}

func UniqueIDLessThan(property string, n int64) Filter {
	return leaf(property, Condition{UniqueID: &UniqueIDCondition{LessThan: &n}})
}

func UniqueIDLessThanOrEqualTo(property string, n int64) Filter {
	return leaf(property, Condition{UniqueID: &UniqueIDCondition{LessThanOrEqualTo: &n}})
}

// RollupAny matches when any element of the rollup satisfies inner's
// condition. The property of inner is ignored.
func RollupAny(property string, inner Filter) Filter {
	return leaf(property, Condition{Rollup: &RollupCondition{Any: ptr(inner.Condition)}})
}

func RollupEvery(property string, inner Filter) Filter {
	return leaf(property, Condition{Rollup: &RollupCondition{Every: ptr(inner.Condition)}})
}

func RollupNone(property string, inner Filter) Filter {
	return leaf(property, Condition{Rollup: &RollupCondition{None: ptr(inner.Condition)}})
}

func RollupNumber(property string, c NumberCondition) Filter {
	return leaf(property, Condition{Rollup: &RollupCondition{Number: &c}})
}

func RollupDate(property string, c DateCondition) Filter {
	return leaf(property, Condition{Rollup: &RollupCondition{Date: &c}})
}

func VerificationStatusIs(property string, status VerificationStatus) Filter {
	return leaf(property, Condition{Verification: &VerificationCondition{Status: status}})
}

func CreatedByContains(property, userID string) Filter {
	return leaf(property, Condition{CreatedBy: &ListCondition{Contains: &userID}})
}

func CreatedByDoesNotContain(property, userID string) Filter {
	return leaf(property, Condition{CreatedBy: &ListCondition{DoesNotContain: &userID}})
}

func LastEditedByContains(property, userID string) Filter {
	return leaf(property, Condition{LastEditedBy: &ListCondition{Contains: &userID}})
}

func LastEditedByDoesNotContain(property, userID string) Filter {
	return leaf(property, Condition{LastEditedBy: &ListCondition{DoesNotContain: &userID}})
}

func CreatedByIsEmpty(property string) Filter {
	return leaf(property, Condition{CreatedBy: &ListCondition{IsEmpty: true}})
}

func CreatedByIsNotEmpty(property string) Filter {
	return leaf(property, Condition{CreatedBy: &ListCondition{IsNotEmpty: true}})
}

func LastEditedByIsEmpty(property string) Filter {
	return leaf(property, Condition{LastEditedBy: &ListCondition{IsEmpty: true}})
}

func LastEditedByIsNotEmpty(property string) Filter {
	return leaf(property, Condition{LastEditedBy: &ListCondition{IsNotEmpty: true}})
}
