package filter

type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Sort orders query results by a property or by a timestamp.
type Sort struct {
	Property  string    `json:"property,omitempty"`
	Timestamp Timestamp `json:"timestamp,omitempty"`
	Direction Direction `json:"direction"`
}

func ByProperty(property string, dir Direction) Sort {
	return Sort{Property: property, Direction: dir}
}

func ByTimestamp(ts Timestamp, dir Direction) Sort {
	return Sort{Timestamp: ts, Direction: dir}
}
