package vo

type SelectOption struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name,omitempty"`
	Color       SelectColor `json:"color,omitempty"`
	Description string      `json:"description,omitempty"`
}

// StatusGroup buckets status options. OptionIDs reference options of the
// same status property.
type StatusGroup struct {
	ID        string      `json:"id,omitempty"`
	Name      string      `json:"name"`
	Color     SelectColor `json:"color,omitempty"`
	OptionIDs []string    `json:"option_ids"`
}
