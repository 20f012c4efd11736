package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"fugitives/internal/util"
)

const (
	cmPerInch = 2.54
	kgPerLb   = 0.45359237
)

var (
	cmPattern       = regexp.MustCompile(`(\d{2,3}(?:\.\d+)?)\s*cm\b`)
	meterPattern    = regexp.MustCompile(`(\d(?:\.\d{1,2})?)\s*m\b`)
	inchOnlyPattern = regexp.MustCompile(`(\d{2,3}(?:\.\d+)?)\s*(?:in|inch|inches|")`)
	feetInchPattern = regexp.MustCompile(`(\d+)\s*(?:ft|foot|feet|')\s*(\d{1,2})?`)
	barePattern     = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)`)

	kgPattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*kg\b`)
	numberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// HeightToCm converts a free-text height to centimeters. Recognized forms:
// "180 cm", "1.80 m", "71 inches", "5'10\"", "5 ft 11 in", and bare numbers
// bucketed by plausible human ranges. Unextractable input yields nil.
func HeightToCm(text string) *float64 {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if m := cmPattern.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return &v
		}
	}

	if m := meterPattern.FindStringSubmatch(s); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 1.3 && v <= 2.5 {
			return util.FloatPtr(round1(v * 100))
		}
	}

	hasFeet := strings.Contains(s, "ft") || strings.Contains(s, "foot") ||
		strings.Contains(s, "feet") || strings.Contains(s, "'")

	if m := inchOnlyPattern.FindStringSubmatch(s); m != nil && !hasFeet {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return util.FloatPtr(round1(v * cmPerInch))
		}
	}

	if m := feetInchPattern.FindStringSubmatch(s); m != nil {
		feet, err := strconv.Atoi(m[1])
		if err == nil {
			inches := 0
			if m[2] != "" {
				inches, _ = strconv.Atoi(m[2])
			}
			return util.FloatPtr(round1(float64(feet*12+inches) * cmPerInch))
		}
	}

	if m := barePattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			switch {
			case v >= 50 && v <= 90:
				return util.FloatPtr(round1(v * cmPerInch))
			case v >= 1.4 && v <= 2.5:
				return util.FloatPtr(round1(v * 100))
			case v >= 140 && v <= 230:
				return util.FloatPtr(round1(v))
			}
		}
	}

	return nil
}

// WeightToKg converts a free-text weight to kilograms. Explicit kg values
// are averaged; otherwise all numbers are treated as pounds, taking the
// midpoint of ranges like "160 to 180 pounds".
func WeightToKg(text string) *float64 {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if matches := kgPattern.FindAllStringSubmatch(s, -1); len(matches) > 0 {
		sum := 0.0
		count := 0
		for _, m := range matches {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				sum += v
				count++
			}
		}
		if count > 0 {
			return util.FloatPtr(round1(sum / float64(count)))
		}
	}

	values := []float64{}
	for _, m := range numberPattern.FindAllStringSubmatch(s, -1) {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil
	}

	pounds := values[0]
	if len(values) >= 2 {
		lo, hi := values[0], values[0]
		for _, v := range values[1:] {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		pounds = (lo + hi) / 2
	}
	return util.FloatPtr(round1(pounds * kgPerLb))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
