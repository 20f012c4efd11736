package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"fugitives/internal/util"
)

// Layouts observed on profile pages, most common first.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
	"2006-01-02",
	"2 January 2006",
	"2 Jan 2006",
}

var (
	isoDatePattern   = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	slashDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)
)

// ParseDate extracts the first recognizable date from free text. Birth date
// cells sometimes carry several dates or surrounding prose; an unparseable
// cell yields nil, never an error.
func ParseDate(text string) *time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			d := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}

	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		if d := makeDate(m[1], m[2], m[3]); d != nil {
			return d
		}
	}
	if m := slashDatePattern.FindStringSubmatch(text); m != nil {
		if d := makeDate(m[3], m[1], m[2]); d != nil {
			return d
		}
	}

	return nil
}

func makeDate(yearText, monthText, dayText string) *time.Time {
	year, errY := strconv.Atoi(yearText)
	month, errM := strconv.Atoi(monthText)
	day, errD := strconv.Atoi(dayText)
	if errY != nil || errM != nil || errD != nil {
		return nil
	}

	// Two-digit years pivot at 25: 26-99 are 1900s, 00-25 are 2000s.
	if year < 100 {
		if year > 25 {
			year += 1900
		} else {
			year += 2000
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Month() != time.Month(month) || d.Day() != day {
		return nil
	}
	return &d
}

// ComputeAge returns whole years between birth and ref, one less when the
// anniversary has not yet occurred in ref's year.
func ComputeAge(birth *time.Time, ref time.Time) *int {
	if birth == nil {
		return nil
	}

	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return nil
	}
	return &years
}

type zodiacRange struct {
	startMonth, startDay int
	endMonth, endDay     int
	sign                 string
}

// Fixed calendar cutoffs; a boundary date belongs to the later sign.
// Capricorn wraps the new year and acts as the fallback.
var zodiacRanges = []zodiacRange{
	{1, 20, 2, 18, "Aquarius"},
	{2, 19, 3, 20, "Pisces"},
	{3, 21, 4, 19, "Aries"},
	{4, 20, 5, 20, "Taurus"},
	{5, 21, 6, 20, "Gemini"},
	{6, 21, 7, 22, "Cancer"},
	{7, 23, 8, 22, "Leo"},
	{8, 23, 9, 22, "Virgo"},
	{9, 23, 10, 22, "Libra"},
	{10, 23, 11, 21, "Scorpio"},
	{11, 22, 12, 21, "Sagittarius"},
}

func ZodiacSign(birth *time.Time) *string {
	if birth == nil {
		return nil
	}

	month, day := int(birth.Month()), birth.Day()
	for _, r := range zodiacRanges {
		if (month == r.startMonth && day >= r.startDay) || (month == r.endMonth && day <= r.endDay) {
			return util.StringPtr(r.sign)
		}
	}
	return util.StringPtr("Capricorn")
}
