package types

// TypeCode identifies the variant of a runtime value
type TypeCode int

const (
	TYPE_UNDEFINED TypeCode = iota
	TYPE_NUM
	TYPE_STR
	TYPE_ARRAY
)

// String returns the name used for the variant in diagnostics
func (t TypeCode) String() string {
	switch t {
	case TYPE_UNDEFINED:
		return "UNDEFINED"
	case TYPE_NUM:
		return "NUMBER"
	case TYPE_STR:
		return "TEXT"
	case TYPE_ARRAY:
		return "ARRAY"
	default:
		return "UNKNOWN"
	}
}
