package frame

import (
	"strconv"
)

// Kind identifies the concrete type stored in a Column.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindInt represents an integer column.
	KindInt
	// KindFloat represents a float column.
	KindFloat
	// KindString represents a string (categorical) column.
	KindString
	// KindBool represents a boolean column.
	KindBool
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	default:
		return "Invalid"
	}
}

// IsNumeric reports whether the kind is an integer or float kind.
func (k Kind) IsNumeric() bool {
	return k == KindInt || k == KindFloat
}

// Column is a typed, named column backed by a single concrete slice.
//
// The representation avoids reflection and per-cell boxing: predicate
// evaluation reads the backing slice for the column's kind directly.
type Column struct {
	name   string
	kind   Kind
	ints   []int64
	floats []float64
	strs   []string
	bools  []bool
}

// NewIntColumn creates an integer column.
func NewIntColumn(name string, values []int64) *Column {
	return &Column{name: name, kind: KindInt, ints: values}
}

// NewFloatColumn creates a float column.
func NewFloatColumn(name string, values []float64) *Column {
	return &Column{name: name, kind: KindFloat, floats: values}
}

// NewStringColumn creates a string column.
func NewStringColumn(name string, values []string) *Column {
	return &Column{name: name, kind: KindString, strs: values}
}

// NewBoolColumn creates a boolean column.
func NewBoolColumn(name string, values []bool) *Column {
	return &Column{name: name, kind: KindBool, bools: values}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Kind returns the column kind.
func (c *Column) Kind() Kind { return c.kind }

// Len returns the number of rows.
func (c *Column) Len() int {
	switch c.kind {
	case KindInt:
		return len(c.ints)
	case KindFloat:
		return len(c.floats)
	case KindString:
		return len(c.strs)
	case KindBool:
		return len(c.bools)
	default:
		return 0
	}
}

// Float64At returns the numeric value at row i. Integer columns are
// upgraded to float64. The second result is false for non-numeric kinds.
func (c *Column) Float64At(i int) (float64, bool) {
	switch c.kind {
	case KindInt:
		return float64(c.ints[i]), true
	case KindFloat:
		return c.floats[i], true
	default:
		return 0, false
	}
}

// StringAt returns the string value at row i for string columns,
// otherwise the empty string.
func (c *Column) StringAt(i int) string {
	if c.kind != KindString {
		return ""
	}
	return c.strs[i]
}

// BoolAt returns the boolean value at row i. For string columns the value
// is parsed with strconv.ParseBool, matching the boolean-domain
// classification in IsBoolDomain. The second result is false when the
// column cannot yield a boolean.
func (c *Column) BoolAt(i int) (bool, bool) {
	switch c.kind {
	case KindBool:
		return c.bools[i], true
	case KindString:
		b, err := strconv.ParseBool(c.strs[i])
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// IsBoolDomain reports whether a string column's values all parse as
// booleans, i.e. the column's category set is the two-valued boolean
// domain. Non-string columns and empty columns return false.
func (c *Column) IsBoolDomain() bool {
	if c.kind != KindString || len(c.strs) == 0 {
		return false
	}
	for _, s := range c.strs {
		if _, err := strconv.ParseBool(s); err != nil {
			return false
		}
	}
	return true
}

// subset returns a new column holding the rows in keep, in order.
func (c *Column) subset(keep []int) *Column {
	out := &Column{name: c.name, kind: c.kind}
	switch c.kind {
	case KindInt:
		out.ints = make([]int64, len(keep))
		for i, r := range keep {
			out.ints[i] = c.ints[r]
		}
	case KindFloat:
		out.floats = make([]float64, len(keep))
		for i, r := range keep {
			out.floats[i] = c.floats[r]
		}
	case KindString:
		out.strs = make([]string, len(keep))
		for i, r := range keep {
			out.strs[i] = c.strs[r]
		}
	case KindBool:
		out.bools = make([]bool, len(keep))
		for i, r := range keep {
			out.bools[i] = c.bools[r]
		}
	}
	return out
}
