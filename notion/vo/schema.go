package vo

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// PropertySchema declares a column of a data source. Type selects which
// configuration field is relevant; kinds without configuration encode {}.
// An empty Type is a rename-only entry in update requests.
type PropertySchema struct {
	ID          string
	Name        string
	Description string
	Type        PropertyType

	Number      *NumberConfig
	Select      *SelectConfig
	MultiSelect *SelectConfig
	Status      *StatusConfig
	Formula     *FormulaConfig
	Relation    *RelationConfig
	Rollup      *RollupConfig
	UniqueID    *UniqueIDConfig
}

type NumberFormat string

const (
	NumberFormatArgentinePeso    NumberFormat = "argentine_peso"
	NumberFormatBaht             NumberFormat = "baht"
	NumberFormatAustralianDollar NumberFormat = "australian_dollar"
	NumberFormatCanadianDollar   NumberFormat = "canadian_dollar"
	NumberFormatChileanPeso      NumberFormat = "chilean_peso"
	NumberFormatColombianPeso    NumberFormat = "colombian_peso"
	NumberFormatDanishKrone      NumberFormat = "danish_krone"
	NumberFormatDirham           NumberFormat = "dirham"
	NumberFormatDollar           NumberFormat = "dollar"
	NumberFormatEuro             NumberFormat = "euro"
	NumberFormatForint           NumberFormat = "forint"
	NumberFormatFranc            NumberFormat = "franc"
	NumberFormatHongKongDollar   NumberFormat = "hong_kong_dollar"
	NumberFormatKoruna           NumberFormat = "koruna"
	NumberFormatKrona            NumberFormat = "krona"
	NumberFormatLeu              NumberFormat = "leu"
	NumberFormatLira             NumberFormat = "lira"
	NumberFormatMexicanPeso      NumberFormat = "mexican_peso"
	NumberFormatNewTaiwanDollar  NumberFormat = "new_taiwan_dollar"
	NumberFormatNewZealandDollar NumberFormat = "new_zealand_dollar"
	NumberFormatNorwegianKrone   NumberFormat = "norwegian_krone"
	NumberFormatNumber           NumberFormat = "number"
	NumberFormatNumberWithCommas NumberFormat = "number_with_commas"
	NumberFormatPercent          NumberFormat = "percent"
	NumberFormatPhilippinePeso   NumberFormat = "philippine_peso"
	NumberFormatPound            NumberFormat = "pound"
	NumberFormatPeruvianSol      NumberFormat = "peruvian_sol"
	NumberFormatRand             NumberFormat = "rand"
	NumberFormatReal             NumberFormat = "real"
	NumberFormatRinggit          NumberFormat = "ringgit"
	NumberFormatRiyal            NumberFormat = "riyal"
	NumberFormatRuble            NumberFormat = "ruble"
	NumberFormatRupee            NumberFormat = "rupee"
	NumberFormatRupiah           NumberFormat = "rupiah"
	NumberFormatShekel           NumberFormat = "shekel"
	NumberFormatSingaporeDollar  NumberFormat = "singapore_dollar"
	NumberFormatUruguayanPeso    NumberFormat = "uruguayan_peso"
	NumberFormatYen              NumberFormat = "yen"
	NumberFormatYuan             NumberFormat = "yuan"
	NumberFormatWon              NumberFormat = "won"
	NumberFormatZloty            NumberFormat = "zloty"
)

var numberFormats = newEnumSet(
	NumberFormatArgentinePeso, NumberFormatBaht, NumberFormatAustralianDollar, NumberFormatCanadianDollar,
	NumberFormatChileanPeso, NumberFormatColombianPeso, NumberFormatDanishKrone, NumberFormatDirham,
	NumberFormatDollar, NumberFormatEuro, NumberFormatForint, NumberFormatFranc, NumberFormatHongKongDollar,
	NumberFormatKoruna, NumberFormatKrona, NumberFormatLeu, NumberFormatLira, NumberFormatMexicanPeso,
	NumberFormatNewTaiwanDollar, NumberFormatNewZealandDollar, NumberFormatNorwegianKrone, NumberFormatNumber,
	NumberFormatNumberWithCommas, NumberFormatPercent, NumberFormatPhilippinePeso, NumberFormatPound,
	NumberFormatPeruvianSol, NumberFormatRand, NumberFormatReal, NumberFormatRinggit, NumberFormatRiyal,
	NumberFormatRuble, NumberFormatRupee, NumberFormatRupiah, NumberFormatShekel, NumberFormatSingaporeDollar,
	NumberFormatUruguayanPeso, NumberFormatYen, NumberFormatYuan, NumberFormatWon, NumberFormatZloty,
)

func (f *NumberFormat) UnmarshalJSON(data []byte) (err error) {
	*f, err = decodeEnum(data, numberFormats, "number format")
	return err
}

type NumberConfig struct {
	Format NumberFormat `json:"format,omitempty"`
}

type SelectConfig struct {
	Options []SelectOption `json:"options"`
}

type StatusConfig struct {
	Options []SelectOption `json:"options"`
	Groups  []StatusGroup  `json:"groups"`
}

// Validate checks that every group references known options.
func (c StatusConfig) Validate() error {
	ids := make(map[string]struct{}, len(c.Options))
	for _, o := range c.Options {
		ids[o.ID] = struct{}{}
	}
	for _, g := range c.Groups {
		for _, id := range g.OptionIDs {
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("status group %q references unknown option %q", g.Name, id)
			}
		}
	}
	return nil
}

type FormulaConfig struct {
	Expression string `json:"expression"`
}

type RelationType string

const (
	RelationTypeSingle RelationType = "single_property"
	RelationTypeDual   RelationType = "dual_property"
)

var relationTypes = newEnumSet(RelationTypeSingle, RelationTypeDual)

func (t *RelationType) UnmarshalJSON(data []byte) (err error) {
	*t, err = decodeEnum(data, relationTypes, "relation type")
	return err
}

// RelationConfig targets a data source. Exactly one of single_property and
// dual_property is present on the wire, chosen by Type.
type RelationConfig struct {
	DataSourceID string
	DatabaseID   string
	Type         RelationType
	DualProperty *DualProperty
}

type DualProperty struct {
	SyncedPropertyName string `json:"synced_property_name,omitempty"`
	SyncedPropertyID   string `json:"synced_property_id,omitempty"`
}

var ErrAmbiguousRelation = errors.New("relation has both single_property and dual_property")

type relationWire struct {
	DataSourceID   string        `json:"data_source_id,omitempty"`
	DatabaseID     string        `json:"database_id,omitempty"`
	Type           RelationType  `json:"type,omitempty"`
	SingleProperty *struct{}     `json:"single_property,omitempty"`
	DualProperty   *DualProperty `json:"dual_property,omitempty"`
}

func (c RelationConfig) MarshalJSON() ([]byte, error) {
	w := relationWire{DataSourceID: c.DataSourceID, DatabaseID: c.DatabaseID, Type: c.Type}
	switch c.Type {
	case RelationTypeDual:
		w.DualProperty = c.DualProperty
		if w.DualProperty == nil {
			w.DualProperty = &DualProperty{}
		}
	default:
		w.Type = RelationTypeSingle
		w.SingleProperty = &struct{}{}
	}
	return json.Marshal(w)
}

func (c *RelationConfig) UnmarshalJSON(data []byte) error {
	var w relationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.SingleProperty != nil && w.DualProperty != nil {
		return ErrAmbiguousRelation
	}
	out := RelationConfig{DataSourceID: w.DataSourceID, DatabaseID: w.DatabaseID, Type: w.Type}
	switch {
	case w.DualProperty != nil:
		out.Type, out.DualProperty = RelationTypeDual, w.DualProperty
	case out.Type == "":
		out.Type = RelationTypeSingle
	}
	*c = out
	return nil
}

type RollupFunction string

const (
	RollupFunctionAverage          RollupFunction = "average"
	RollupFunctionChecked          RollupFunction = "checked"
	RollupFunctionCountPerGroup    RollupFunction = "count_per_group"
	RollupFunctionCount            RollupFunction = "count"
	RollupFunctionCountValues      RollupFunction = "count_values"
	RollupFunctionDateRange        RollupFunction = "date_range"
	RollupFunctionEarliestDate     RollupFunction = "earliest_date"
	RollupFunctionEmpty            RollupFunction = "empty"
	RollupFunctionLatestDate       RollupFunction = "latest_date"
	RollupFunctionMax              RollupFunction = "max"
	RollupFunctionMedian           RollupFunction = "median"
	RollupFunctionMin              RollupFunction = "min"
	RollupFunctionNotEmpty         RollupFunction = "not_empty"
	RollupFunctionPercentChecked   RollupFunction = "percent_checked"
	RollupFunctionPercentEmpty     RollupFunction = "percent_empty"
	RollupFunctionPercentNotEmpty  RollupFunction = "percent_not_empty"
	RollupFunctionPercentPerGroup  RollupFunction = "percent_per_group"
	RollupFunctionPercentUnchecked RollupFunction = "percent_unchecked"
	RollupFunctionRange            RollupFunction = "range"
	RollupFunctionUnchecked        RollupFunction = "unchecked"
	RollupFunctionUnique           RollupFunction = "unique"
	RollupFunctionShowOriginal     RollupFunction = "show_original"
	RollupFunctionShowUnique       RollupFunction = "show_unique"
	RollupFunctionSum              RollupFunction = "sum"
)

var rollupFunctions = newEnumSet(
	RollupFunctionAverage, RollupFunctionChecked, RollupFunctionCountPerGroup, RollupFunctionCount,
	RollupFunctionCountValues, RollupFunctionDateRange, RollupFunctionEarliestDate, RollupFunctionEmpty,
	RollupFunctionLatestDate, RollupFunctionMax, RollupFunctionMedian, RollupFunctionMin,
	RollupFunctionNotEmpty, RollupFunctionPercentChecked, RollupFunctionPercentEmpty,
	RollupFunctionPercentNotEmpty, RollupFunctionPercentPerGroup, RollupFunctionPercentUnchecked,
	RollupFunctionRange, RollupFunctionUnchecked, RollupFunctionUnique, RollupFunctionShowOriginal,
	RollupFunctionShowUnique, RollupFunctionSum,
)

func (f *RollupFunction) UnmarshalJSON(data []byte) (err error) {
	*f, err = decodeEnum(data, rollupFunctions, "rollup function")
	return err
}

type RollupConfig struct {
	Function             RollupFunction `json:"function,omitempty"`
	RelationPropertyID   string         `json:"relation_property_id,omitempty"`
	RelationPropertyName string         `json:"relation_property_name,omitempty"`
	RollupPropertyID     string         `json:"rollup_property_id,omitempty"`
	RollupPropertyName   string         `json:"rollup_property_name,omitempty"`
}

type UniqueIDConfig struct {
	Prefix string `json:"prefix,omitempty"`
}

func NewSchema(t PropertyType) PropertySchema {
	return PropertySchema{Type: t}
}

func NumberSchema(format NumberFormat) PropertySchema {
	return PropertySchema{Type: PropertyTypeNumber, Number: &NumberConfig{Format: format}}
}

func SelectSchema(options ...SelectOption) PropertySchema {
	if options == nil {
		options = []SelectOption{}
	}
	return PropertySchema{Type: PropertyTypeSelect, Select: &SelectConfig{Options: options}}
}

func MultiSelectSchema(options ...SelectOption) PropertySchema {
	if options == nil {
		options = []SelectOption{}
	}
	return PropertySchema{Type: PropertyTypeMultiSelect, MultiSelect: &SelectConfig{Options: options}}
}

func FormulaSchema(expression string) PropertySchema {
	return PropertySchema{Type: PropertyTypeFormula, Formula: &FormulaConfig{Expression: expression}}
}

func RelationSchema(dataSourceID string, dual *DualProperty) PropertySchema {
	c := &RelationConfig{DataSourceID: dataSourceID, Type: RelationTypeSingle}
	if dual != nil {
		c.Type, c.DualProperty = RelationTypeDual, dual
	}
	return PropertySchema{Type: PropertyTypeRelation, Relation: c}
}

func RollupSchema(relationProperty, rollupProperty string, fn RollupFunction) PropertySchema {
	return PropertySchema{Type: PropertyTypeRollup, Rollup: &RollupConfig{
		Function:             fn,
		RelationPropertyName: relationProperty,
		RollupPropertyName:   rollupProperty,
	}}
}

func UniqueIDSchema(prefix string) PropertySchema {
	return PropertySchema{Type: PropertyTypeUniqueID, UniqueID: &UniqueIDConfig{Prefix: prefix}}
}

// Rename returns an update entry that only changes the column name.
func Rename(name string) PropertySchema {
	return PropertySchema{Name: name}
}

func (s PropertySchema) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 5)
	if s.ID != "" {
		out["id"] = s.ID
	}
	if s.Name != "" {
		out["name"] = s.Name
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Type != "" {
		kind, ok := propertyKinds[s.Type]
		if !ok {
			return nil, fmt.Errorf("unknown property type %q", s.Type)
		}
		out["type"] = s.Type
		out[string(s.Type)] = kind.schema.encode(&s)
	}
	return json.Marshal(out)
}

func (s *PropertySchema) UnmarshalJSON(data []byte) error {
	var head struct {
		ID          string       `json:"id"`
		Name        string       `json:"name"`
		Description string       `json:"description"`
		Type        PropertyType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	out := PropertySchema{ID: head.ID, Name: head.Name, Description: head.Description, Type: head.Type}
	if head.Type != "" {
		_, raw, err := splitTagged(data, "type")
		if err != nil {
			return err
		}
		if err := propertyKinds[head.Type].schema.decode(&out, raw[string(head.Type)]); err != nil {
			return fmt.Errorf("failed to decode %s schema: %w", head.Type, err)
		}
	}
	*s = out
	return nil
}
