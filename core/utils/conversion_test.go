package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int64
		ok   bool
	}{
		{"int", 7, 7, true},
		{"float integral", float64(1000000000), 1000000000, true},
		{"float fractional", 1.5, 0, false},
		{"float nan", math.NaN(), 0, false},
		{"json number", json.Number("42"), 42, true},
		{"numeric string", " 12 ", 12, true},
		{"text string", "up", 0, false},
		{"bytes", []byte("3"), 3, true},
		{"nil", nil, 0, false},
		{"map", map[string]any{"0": 1}, 0, false},
		{"uint64 overflow", uint64(math.MaxUint64), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt64(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"string", "Gi0/1", "Gi0/1", true},
		{"float", float64(100), "100", true},
		{"bool", true, "true", true},
		{"int", 5, "5", true},
		{"nil", nil, "", false},
		{"slice", []any{"a"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToString(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool(float64(1)))
	assert.True(t, ToBool("TRUE"))
	assert.False(t, ToBool(float64(2)))
	assert.False(t, ToBool(nil))
}

func TestPointers(t *testing.T) {
	assert.Nil(t, Int64Ptr("n/a"))
	assert.Equal(t, int64(2), *Int64Ptr(float64(2)))
	assert.Nil(t, StringPtr(nil))
	assert.Equal(t, "x", *StringPtr("x"))
}

func TestSlices(t *testing.T) {
	assert.Equal(t, []string{"aa", "1"}, ToStringSlice([]any{"aa", float64(1), nil, map[string]any{}}))
	assert.Nil(t, ToStringSlice("aa"))
	assert.Equal(t, []int64{10, 20}, ToInt64Slice([]any{float64(10), "20", "x"}))
	assert.Nil(t, ToInt64Slice(nil))
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{true, true},
		{float64(0), false},
		{float64(1), true},
		{json.Number("2"), true},
		{"", false},
		{"0", false},
		{"False", false},
		{"yes", true},
		{[]any{}, false},
		{[]any{1}, true},
		{0.5, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.in), "%#v", tt.in)
	}
}
