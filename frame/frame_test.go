package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInt, "Int"},
		{KindFloat, "Float"},
		{KindString, "String"},
		{KindBool, "Bool"},
		{KindInvalid, "Invalid"},
		{Kind(99), "Invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestColumnFloat64At(t *testing.T) {
	ic := NewIntColumn("n", []int64{1, 2, 3})
	fc := NewFloatColumn("f", []float64{0.5, 1.5})
	sc := NewStringColumn("s", []string{"a"})

	v, ok := ic.Float64At(1)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = fc.Float64At(0)
	require.True(t, ok)
	assert.Equal(t, 0.5, v)

	_, ok = sc.Float64At(0)
	assert.False(t, ok)
}

func TestColumnBoolAt(t *testing.T) {
	bc := NewBoolColumn("b", []bool{true, false})
	sc := NewStringColumn("s", []string{"True", "false", "maybe"})

	b, ok := bc.BoolAt(0)
	require.True(t, ok)
	assert.True(t, b)

	b, ok = sc.BoolAt(0)
	require.True(t, ok)
	assert.True(t, b)

	b, ok = sc.BoolAt(1)
	require.True(t, ok)
	assert.False(t, b)

	_, ok = sc.BoolAt(2)
	assert.False(t, ok)
}

func TestColumnIsBoolDomain(t *testing.T) {
	tests := []struct {
		name     string
		col      *Column
		expected bool
	}{
		{"BoolWords", NewStringColumn("x", []string{"True", "False", "True"}), true},
		{"ParseBoolForms", NewStringColumn("x", []string{"true", "1", "0"}), true},
		{"Mixed", NewStringColumn("x", []string{"True", "banana"}), false},
		{"Empty", NewStringColumn("x", nil), false},
		{"NotString", NewBoolColumn("x", []bool{true}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.col.IsBoolDomain())
		})
	}
}

func TestFrameSetColumn(t *testing.T) {
	f := New([]string{"r0", "r1", "r2"})

	require.NoError(t, f.SetColumn(NewIntColumn("count", []int64{1, 2, 3})))
	require.NoError(t, f.SetColumn(NewStringColumn("group", []string{"a", "b", "a"})))
	assert.True(t, f.HasColumn("count"))

	// Replacement keeps column order.
	require.NoError(t, f.SetFloatColumn("count", []float64{1, 2, 3}))
	require.Len(t, f.Columns(), 2)
	assert.Equal(t, "count", f.Columns()[0].Name())
	assert.Equal(t, KindFloat, f.Columns()[0].Kind())

	err := f.SetColumn(NewIntColumn("short", []int64{1}))
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 3, lm.Expected)
	assert.Equal(t, 1, lm.Actual)
}

func TestFrameSubset(t *testing.T) {
	f := New([]string{"r0", "r1", "r2", "r3"})
	require.NoError(t, f.SetColumn(NewIntColumn("n", []int64{10, 20, 30, 40})))
	require.NoError(t, f.SetColumn(NewStringColumn("g", []string{"a", "b", "c", "d"})))

	f.Subset([]int{1, 3})

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"r1", "r3"}, f.Index())

	col, ok := f.Column("n")
	require.True(t, ok)
	v, _ := col.Float64At(0)
	assert.Equal(t, 20.0, v)
	v, _ = col.Float64At(1)
	assert.Equal(t, 40.0, v)

	col, ok = f.Column("g")
	require.True(t, ok)
	assert.Equal(t, "b", col.StringAt(0))
	assert.Equal(t, "d", col.StringAt(1))
}
