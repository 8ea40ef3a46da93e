package vo

import "sort"

// PropertyType discriminates property schemas, property values and filter
// conditions.
type PropertyType string

const (
	PropertyTypeTitle          PropertyType = "title"
	PropertyTypeRichText       PropertyType = "rich_text"
	PropertyTypeNumber         PropertyType = "number"
	PropertyTypeSelect         PropertyType = "select"
	PropertyTypeMultiSelect    PropertyType = "multi_select"
	PropertyTypeStatus         PropertyType = "status"
	PropertyTypeDate           PropertyType = "date"
	PropertyTypePeople         PropertyType = "people"
	PropertyTypeFiles          PropertyType = "files"
	PropertyTypeRelation       PropertyType = "relation"
	PropertyTypeRollup         PropertyType = "rollup"
	PropertyTypeFormula        PropertyType = "formula"
	PropertyTypeCheckbox       PropertyType = "checkbox"
	PropertyTypeURL            PropertyType = "url"
	PropertyTypeEmail          PropertyType = "email"
	PropertyTypePhoneNumber    PropertyType = "phone_number"
	PropertyTypeCreatedBy      PropertyType = "created_by"
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeLastEditedBy   PropertyType = "last_edited_by"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypeUniqueID       PropertyType = "unique_id"
	PropertyTypeVerification   PropertyType = "verification"
	PropertyTypeButton         PropertyType = "button"
	PropertyTypePlace          PropertyType = "place"
)

var propertyTypes = newEnumSet(PropertyTypes()...)

func (t *PropertyType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, propertyTypes, "property type")
	return err
}

type propertyKind struct {
	schema slot[PropertySchema]
	value  slot[PropertyValue]
}

// propertyKinds is the single registry of property kinds. Adding a kind means
// a constant, an entry here and a condition in the filter package.
var propertyKinds = map[PropertyType]propertyKind{
	PropertyTypeTitle: {
		schema: emptySlot[PropertySchema](),
		value:  listSlot(func(v *PropertyValue) *[]RichText { return &v.Title }),
	},
	PropertyTypeRichText: {
		schema: emptySlot[PropertySchema](),
		value:  listSlot(func(v *PropertyValue) *[]RichText { return &v.RichText }),
	},
	PropertyTypeNumber: {
		schema: objSlot(func(s *PropertySchema) **NumberConfig { return &s.Number }),
		value:  ptrSlot(func(v *PropertyValue) **float64 { return &v.Number }),
	},
	PropertyTypeSelect: {
		schema: objSlot(func(s *PropertySchema) **SelectConfig { return &s.Select }),
		value:  ptrSlot(func(v *PropertyValue) **SelectOption { return &v.Select }),
	},
	PropertyTypeMultiSelect: {
		schema: objSlot(func(s *PropertySchema) **SelectConfig { return &s.MultiSelect }),
		value:  listSlot(func(v *PropertyValue) *[]SelectOption { return &v.MultiSelect }),
	},
	PropertyTypeStatus: {
		schema: objSlot(func(s *PropertySchema) **StatusConfig { return &s.Status }),
		value:  ptrSlot(func(v *PropertyValue) **SelectOption { return &v.Status }),
	},
	PropertyTypeDate: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **DateValue { return &v.Date }),
	},
	PropertyTypePeople: {
		schema: emptySlot[PropertySchema](),
		value:  listSlot(func(v *PropertyValue) *[]User { return &v.People }),
	},
	PropertyTypeFiles: {
		schema: emptySlot[PropertySchema](),
		value:  listSlot(func(v *PropertyValue) *[]File { return &v.Files }),
	},
	PropertyTypeRelation: {
		schema: objSlot(func(s *PropertySchema) **RelationConfig { return &s.Relation }),
		value:  listSlot(func(v *PropertyValue) *[]ObjectRef { return &v.Relation }),
	},
	PropertyTypeRollup: {
		schema: objSlot(func(s *PropertySchema) **RollupConfig { return &s.Rollup }),
		value:  ptrSlot(func(v *PropertyValue) **RollupValue { return &v.Rollup }),
	},
	PropertyTypeFormula: {
		schema: objSlot(func(s *PropertySchema) **FormulaConfig { return &s.Formula }),
		value:  ptrSlot(func(v *PropertyValue) **FormulaValue { return &v.Formula }),
	},
	PropertyTypeCheckbox: {
		schema: emptySlot[PropertySchema](),
		value:  valueSlot(func(v *PropertyValue) *bool { return &v.Checkbox }),
	},
	PropertyTypeURL: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **string { return &v.URL }),
	},
	PropertyTypeEmail: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **string { return &v.Email }),
	},
	PropertyTypePhoneNumber: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **string { return &v.PhoneNumber }),
	},
	PropertyTypeCreatedBy: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **User { return &v.CreatedBy }),
	},
	PropertyTypeCreatedTime: {
		schema: emptySlot[PropertySchema](),
		value:  valueSlot(func(v *PropertyValue) *string { return &v.CreatedTime }),
	},
	PropertyTypeLastEditedBy: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **User { return &v.LastEditedBy }),
	},
	PropertyTypeLastEditedTime: {
		schema: emptySlot[PropertySchema](),
		value:  valueSlot(func(v *PropertyValue) *string { return &v.LastEditedTime }),
	},
	PropertyTypeUniqueID: {
		schema: objSlot(func(s *PropertySchema) **UniqueIDConfig { return &s.UniqueID }),
		value:  ptrSlot(func(v *PropertyValue) **UniqueIDValue { return &v.UniqueID }),
	},
	PropertyTypeVerification: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **VerificationValue { return &v.Verification }),
	},
	PropertyTypeButton: {
		schema: emptySlot[PropertySchema](),
		value:  emptySlot[PropertyValue](),
	},
	PropertyTypePlace: {
		schema: emptySlot[PropertySchema](),
		value:  ptrSlot(func(v *PropertyValue) **PlaceValue { return &v.Place }),
	},
}

// PropertyTypes lists every registered kind in lexical order.
func PropertyTypes() []PropertyType {
	types := make([]PropertyType, 0, len(propertyKinds))
	for t := range propertyKinds {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
