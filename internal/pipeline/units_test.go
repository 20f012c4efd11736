package pipeline

import (
	"math"
	"testing"
)

func TestHeightToCm(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "centimeters", input: "180 cm", want: 180},
		{name: "meters", input: "1.8 m", want: 180},
		{name: "inches only", input: "71 inches", want: 180.3},
		{name: "feet and inches quoted", input: `5'10"`, want: 177.8},
		{name: "feet and inches words", input: "6 feet 2 inches", want: 188},
		{name: "feet without inches", input: "6'", want: 182.9},
		{name: "bare inches range", input: "70", want: 177.8},
		{name: "bare meters range", input: "1.75", want: 175},
		{name: "bare centimeters range", input: "175", want: 175},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := HeightToCm(tc.input)
			if got == nil {
				t.Fatalf("got nil")
			}
			if math.Abs(*got-tc.want) > 1e-9 {
				t.Fatalf("got %v want %v", *got, tc.want)
			}
		})
	}

	for _, input := range []string{"", "unknown", "tall"} {
		if got := HeightToCm(input); got != nil {
			t.Fatalf("HeightToCm(%q) = %v, want nil", input, *got)
		}
	}
}

func TestWeightToKg(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "pounds", input: "180 lbs", want: 81.6},
		{name: "pound range midpoint", input: "160 to 180 pounds", want: 77.1},
		{name: "kilograms", input: "80 kg", want: 80},
		{name: "kilogram range averaged", input: "75 kg to 85 kg", want: 80},
		{name: "bare number treated as pounds", input: "200", want: 90.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeightToKg(tc.input)
			if got == nil {
				t.Fatalf("got nil")
			}
			if math.Abs(*got-tc.want) > 1e-9 {
				t.Fatalf("got %v want %v", *got, tc.want)
			}
		})
	}

	for _, input := range []string{"", "unknown"} {
		if got := WeightToKg(input); got != nil {
			t.Fatalf("WeightToKg(%q) = %v, want nil", input, *got)
		}
	}
}
