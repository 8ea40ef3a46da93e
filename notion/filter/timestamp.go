package filter

import (
	"fmt"

	"github.com/foomo/notion-mcp/notion/vo"
)

// OnTimestamp builds a timestamp leaf on created_time or last_edited_time.
func OnTimestamp(ts Timestamp, c DateCondition) Filter {
	f := Filter{Timestamp: ts}
	if ts == TimestampLastEditedTime {
		f.Condition.LastEditedTime = &c
	} else {
		f.Condition.CreatedTime = &c
	}
	return f
}

// CreatedTimeProperty builds a leaf on a created_time property of the data
// source rather than on the page timestamp.
func CreatedTimeProperty(property string, c DateCondition) Filter {
	return leaf(property, Condition{CreatedTime: &c})
}

// LastEditedTimeProperty is CreatedTimeProperty for last_edited_time.
func LastEditedTimeProperty(property string, c DateCondition) Filter {
	return leaf(property, Condition{LastEditedTime: &c})
}

func CreatedTimeAfter(date string) Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{After: date})
}

func CreatedTimeBefore(date string) Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{Before: date})
}

func CreatedTimeEquals(date string) Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{Equals: date})
}

func CreatedTimeOnOrAfter(date string) Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{OnOrAfter: date})
}

func CreatedTimeOnOrBefore(date string) Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{OnOrBefore: date})
}

func CreatedTimePastWeek() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{PastWeek: &Empty{}})
}

func CreatedTimePastMonth() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{PastMonth: &Empty{}})
}

func CreatedTimePastYear() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{PastYear: &Empty{}})
}

func CreatedTimeThisWeek() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{ThisWeek: &Empty{}})
}

func CreatedTimeNextWeek() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{NextWeek: &Empty{}})
}

func CreatedTimeNextMonth() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{NextMonth: &Empty{}})
}

func CreatedTimeNextYear() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{NextYear: &Empty{}})
}

func CreatedTimeIsEmpty() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{IsEmpty: true})
}

func CreatedTimeIsNotEmpty() Filter {
	return OnTimestamp(TimestampCreatedTime, DateCondition{IsNotEmpty: true})
}

func LastEditedTimeAfter(date string) Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{After: date})
}

func LastEditedTimeBefore(date string) Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{Before: date})
}

func LastEditedTimeEquals(date string) Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{Equals: date})
}

func LastEditedTimeOnOrAfter(date string) Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{OnOrAfter: date})
}

func LastEditedTimeOnOrBefore(date string) Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{OnOrBefore: date})
}

func LastEditedTimePastWeek() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{PastWeek: &Empty{}})
}

func LastEditedTimePastMonth() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{PastMonth: &Empty{}})
}

func LastEditedTimePastYear() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{PastYear: &Empty{}})
}

func LastEditedTimeThisWeek() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{ThisWeek: &Empty{}})
}

func LastEditedTimeNextWeek() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{NextWeek: &Empty{}})
}

func LastEditedTimeNextMonth() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{NextMonth: &Empty{}})
}

func LastEditedTimeNextYear() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{NextYear: &Empty{}})
}

func LastEditedTimeIsEmpty() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{IsEmpty: true})
}

func LastEditedTimeIsNotEmpty() Filter {
	return OnTimestamp(TimestampLastEditedTime, DateCondition{IsNotEmpty: true})
}

// IsEmpty builds an is_empty leaf for a property of the given kind.
func IsEmpty(kind vo.PropertyType, property string) (Filter, error) {
	return emptiness(kind, property, true)
}

// IsNotEmpty builds an is_not_empty leaf for a property of the given kind.
func IsNotEmpty(kind vo.PropertyType, property string) (Filter, error) {
	return emptiness(kind, property, false)
}

func emptiness(kind vo.PropertyType, property string, empty bool) (Filter, error) {
	switch kind {
	case vo.PropertyTypeTitle, vo.PropertyTypeRichText, vo.PropertyTypeURL, vo.PropertyTypeEmail, vo.PropertyTypePhoneNumber:
		return text(kind, property, TextCondition{IsEmpty: empty, IsNotEmpty: !empty}), nil
	case vo.PropertyTypeNumber:
		return leaf(property, Condition{Number: &NumberCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypeDate:
		return leaf(property, Condition{Date: &DateCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypeFiles:
		return leaf(property, Condition{Files: &FilesCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypeSelect:
		return leaf(property, Condition{Select: &SelectCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypeStatus:
		return leaf(property, Condition{Status: &SelectCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypeMultiSelect:
		return leaf(property, Condition{MultiSelect: &ListCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypePeople:
		return leaf(property, Condition{People: &ListCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	case vo.PropertyTypeRelation:
		return leaf(property, Condition{Relation: &ListCondition{IsEmpty: empty, IsNotEmpty: !empty}}), nil
	default:
		return Filter{}, fmt.Errorf("property kind %q has no emptiness filter", kind)
	}
}
