package config

// Kind classifies a value held in the configuration tree.
type Kind int

const (
	// KindOther is any Go value outside the configuration value model.
	KindOther Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

var kindNames = map[Kind]string{
	KindOther:    "other",
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindMapping:  "mapping",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown"
	}

	return name
}

// KindOf reports which variant of the configuration value model v belongs to.
// Mappings must be map[string]any and sequences []any, which is what the bundled
// parsers produce.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindSequence
	case map[string]any:
		return KindMapping
	default:
		return KindOther
	}
}
