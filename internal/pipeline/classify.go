package pipeline

import (
	"regexp"
	"strings"

	"fugitives/internal/util"
)

const (
	OccupationUnknown = "Unknown"
	OccupationOther   = "Other"
)

type occupationCategory struct {
	label    string
	keywords []string
}

// Keyword table for bucketing free-text occupations. Order matters: the
// first category with a hit wins, so the more specific categories sit near
// the top.
var occupationCategories = []occupationCategory{
	{"Military/Intelligence", []string{
		"officer", "gru", "intelligence", "military", "fsb", "security service",
		"syrian air force", "army", "navy", "marine", "directorate", "general staff",
	}},
	{"Medical", []string{
		"doctor", "surgeon", "physician", "nurse", "nursing", "therapist",
		"cardiologist", "medical", "catheter", "respiratory", "chiropractor",
		"acupuncturist", "chemist", "pharmaceutical",
	}},
	{"IT/Technology", []string{
		"it worker", "software", "programmer", "developer", "engineer", "computer",
		"network", "blockchain", "backend", "zksnark", "technology", "web",
	}},
	{"Construction", []string{
		"construction", "carpenter", "welder", "electrician", "plumber",
		"mason", "painter", "handyman", "builder", "contractor", "tractor driver",
		"floor sander",
	}},
	{"Transportation", []string{
		"driver", "truck", "taxi", "cab", "mechanic", "aviation", "pilot",
		"shipping", "boat", "ship",
	}},
	{"Food Service", []string{
		"cook", "chef", "waiter", "restaurant", "food service", "kitchen",
	}},
	{"Business/Management", []string{
		"ceo", "president", "director", "manager", "executive", "businessman",
		"entrepreneur", "owner", "operator", "consultant",
	}},
	{"Finance/Trading", []string{
		"broker", "trader", "commodities", "investment", "banking", "finance",
		"advisor", "asset manager",
	}},
	{"Government", []string{
		"government", "official", "diplomat", "service officer", "taxation",
		"commission", "delegation",
	}},
	{"Law Enforcement", []string{
		"police", "constable", "dispatcher", "security", "law enforcement",
	}},
	{"Agriculture", []string{
		"farm", "agriculture", "laborer", "migrant", "seed", "rice", "landscaping",
	}},
	{"Sales/Retail", []string{
		"sales", "salesman", "retail", "store", "clerk", "dealer",
	}},
	{"Trade/Manufacturing", []string{
		"warehouse", "factory", "manufacturing", "production", "textile",
		"procurement", "arms broker",
	}},
	{"Religious", []string{
		"priest", "pastor", "religious", "clergy", "minister",
	}},
	{"Services", []string{
		"massage", "nail technician", "barber", "salon", "spa",
	}},
	{"Education/Research", []string{
		"teacher", "professor", "researcher", "education", "academic",
	}},
	{"Emergency Services", []string{
		"fireman", "firefighter", "paramedic", "emt", "rescue",
	}},
	{"Entertainment", []string{
		"recording studio", "amusement", "arcade", "game",
	}},
	{OccupationUnknown, []string{
		"unknown", "unemployed", "none", "n/a",
	}},
}

// CategorizeOccupation buckets a free-text occupation into a fixed label
// set. Empty input is Unknown, unmatched text is Other; it never fails.
func CategorizeOccupation(text string) string {
	if strings.TrimSpace(text) == "" {
		return OccupationUnknown
	}

	lower := strings.ToLower(text)
	for _, cat := range occupationCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.label
			}
		}
	}
	return OccupationOther
}

var (
	aliasSplitPattern = regexp.MustCompile(`(?i)(?:\saka\s|\s*\|\s*|,\s*|;\s*|\n+)`)
	aliasNoise        = map[string]struct{}{"-": {}, "None": {}, "N/A": {}, "n/a": {}}
)

// CountAliases counts distinct alias entries in the free-text alias line.
func CountAliases(text string) int {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}

	s = strings.ReplaceAll(s, "a/k/a", "aka")

	count := 0
	for _, part := range aliasSplitPattern.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, skip := aliasNoise[part]; skip {
			continue
		}
		count++
	}
	return count
}

var languageSplitPattern = regexp.MustCompile(`(?i)[,;/]|\s+and\s+`)

// SplitLanguages keeps the first three languages in source order; extras
// are dropped.
func SplitLanguages(text string) (first, second, third *string) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, nil, nil
	}

	languages := []string{}
	for _, part := range languageSplitPattern.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			languages = append(languages, part)
		}
	}

	if len(languages) > 0 {
		first = util.StringPtr(languages[0])
	}
	if len(languages) > 1 {
		second = util.StringPtr(languages[1])
	}
	if len(languages) > 2 {
		third = util.StringPtr(languages[2])
	}
	return first, second, third
}

var hairSplitPattern = regexp.MustCompile(`(?i)[/(]|\s+and\s+`)

// FirstHairColor reduces compound values like "brown/gray" or
// "black (balding)" to the leading color.
func FirstHairColor(text string) *string {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}

	head := strings.TrimSpace(hairSplitPattern.Split(s, 2)[0])
	if head == "" {
		return nil
	}
	return &head
}

var markPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btattoo|ink\b`),
	regexp.MustCompile(`\bscars?\b`),
	regexp.MustCompile(`\bpierc(ed|ing|ings)\b`),
	regexp.MustCompile(`\bburn(ed|s| mark)\b`),
	regexp.MustCompile(`\bmissing\s+fingers?\b`),
	regexp.MustCompile(`\bfreckles?\b`),
	regexp.MustCompile(`\bmole\b`),
	regexp.MustCompile(`\bbirthmark\b`),
}

// DetectMarks reports whether the scars-and-marks text names an actual
// distinguishing mark, as opposed to "none known" placeholder prose.
func DetectMarks(text string) bool {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return false
	}

	for _, p := range markPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

var dollarPattern = regexp.MustCompile(`\$\s*[\d,]+(?:\.\d{1,2})?`)

// DetectDollarAmounts reports whether the caution text mentions a dollar
// amount, which is how reward offers appear on profile pages.
func DetectDollarAmounts(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return dollarPattern.MatchString(text)
}
