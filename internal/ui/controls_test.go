package ui

import (
	"testing"

	"mapgen/internal/core"
)

func TestAdjustedValue(t *testing.T) {
	ctrl := core.ParameterControl{Key: "size", Type: core.ParamTypeInt, Step: 10, Min: 10, HasMin: true, Max: 512, HasMax: true}
	cases := []struct {
		value, direction int
		want             int
		ok               bool
	}{
		{100, 1, 110, true},
		{100, -1, 90, true},
		{15, -1, 10, true},
		{10, -1, 10, false},
		{505, 1, 512, true},
		{512, 1, 512, false},
	}
	for _, tc := range cases {
		got, ok := adjustedValue(ctrl, tc.value, tc.direction)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("adjustedValue(%d, %d) = %d, %v; want %d, %v", tc.value, tc.direction, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAdjustedValueDefaultsStep(t *testing.T) {
	got, ok := adjustedValue(core.ParameterControl{Type: core.ParamTypeInt}, 4, -1)
	if !ok || got != 3 {
		t.Fatalf("got %d, %v", got, ok)
	}
}
