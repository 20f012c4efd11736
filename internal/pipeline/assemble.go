package pipeline

import (
	"strings"
	"time"

	"fugitives/internal"
)

// Birth dates appear under slightly different labels depending on the page.
var dobKeys = []string{"Date(s) of Birth Used", "Date of Birth", "DOB"}

// Assemble normalizes one raw profile into its cleaned row. Every raw
// profile yields exactly one row; fields that cannot be normalized come out
// nil while the rest of the row is still populated.
func Assemble(raw internal.RawProfile, ref time.Time) internal.CleanedProfile {
	desc := raw.Description

	row := internal.CleanedProfile{
		URL:            raw.URL,
		Name:           raw.Name,
		AliasText:      raw.Alias,
		AliasCount:     CountAliases(deref(raw.Alias)),
		NCICNumber:     descPtr(desc, "NCIC"),
		Category:       raw.Category,
		Sex:            descPtr(desc, "Sex"),
		Nationality:    descPtr(desc, "Nationality"),
		EyeColor:       descPtr(desc, "Eyes"),
		FBIFieldOffice: raw.FieldOffice,
	}

	var dobText string
	for _, key := range dobKeys {
		if v, ok := desc[key]; ok {
			dobText = v
			break
		}
	}
	dob := ParseDate(dobText)
	if dob != nil {
		iso := dob.Format("2006-01-02")
		row.DateOfBirth = &iso
	}
	row.AgeYears = ComputeAge(dob, ref)
	row.ZodiacSign = ZodiacSign(dob)

	row.BirthCountry, row.BirthCountryCode = BirthCountry(desc["Place of Birth"])

	row.HeightCm = HeightToCm(desc["Height"])
	row.WeightKg = WeightToKg(desc["Weight"])
	row.HairColor = FirstHairColor(desc["Hair"])
	row.HasMark = DetectMarks(desc["Scars and Marks"])

	row.LanguagePrimary, row.LanguageSecondary, row.LanguageTertiary = SplitLanguages(desc["Languages"])
	row.OccupationCategory = CategorizeOccupation(desc["Occupation"])
	row.HasCaution = DetectDollarAmounts(deref(raw.Caution))

	return row
}

func descPtr(desc map[string]string, key string) *string {
	v := strings.TrimSpace(desc[key])
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
