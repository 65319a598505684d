package ndarray

import (
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Element is the constraint for Go types that map onto a DataType.
type Element interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types. The set is closed: every kernel dispatches over it.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64

	// NumDataTypes is the number of supported data types, used to size dispatch tables.
	NumDataTypes
)

var dataTypeNames = [NumDataTypes]string{
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		exceptions.Panicf("unknown data type %d", int(dt))
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	if dt.IsValid() {
		return dataTypeNames[dt]
	}
	return "unknown"
}

// IsValid reports whether dt is one of the supported data types.
func (dt DataType) IsValid() bool {
	return dt >= 0 && dt < NumDataTypes
}

// IsFloat reports whether dt is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsInteger reports whether dt is a signed or unsigned integer type.
func (dt DataType) IsInteger() bool {
	return dt.IsSigned() || dt.IsUnsigned()
}

// IsSigned reports whether dt is a signed integer type.
func (dt DataType) IsSigned() bool {
	return dt >= Int8 && dt <= Int64
}

// IsUnsigned reports whether dt is an unsigned integer type.
func (dt DataType) IsUnsigned() bool {
	return dt >= Uint8 && dt <= Uint64
}

// ParseDataType returns the DataType with the given name ("float64", "int16", ...).
func ParseDataType(name string) (DataType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for dt, n := range dataTypeNames {
		if n == name {
			return DataType(dt), nil
		}
	}
	return 0, errors.Wrapf(ErrDType, "unknown data type %q", name)
}

// DataTypeOf returns the DataType for the Go type T.
func DataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	exceptions.Panicf("unsupported element type %T", zero)
	return 0
}
