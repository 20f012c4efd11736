package internal

type ProfileStatus string

const (
	StatusFetched ProfileStatus = "fetched"
	StatusCleaned ProfileStatus = "cleaned"
)

// RawProfile is one fugitive profile exactly as extracted from its page.
// Description holds the label/value pairs of the wanted-person description
// table without any interpretation.
type RawProfile struct {
	URL         string            `json:"url"`
	Category    *string           `json:"category"`
	Name        *string           `json:"name"`
	Alias       *string           `json:"alias"`
	ImageURL    *string           `json:"image_url"`
	Description map[string]string `json:"description"`
	Remarks     *string           `json:"remarks"`
	Caution     *string           `json:"caution"`
	FieldOffice *string           `json:"field_office"`
}

// ProfileRow wraps a stored RawProfile with its staging state.
type ProfileRow struct {
	ID        int
	Status    ProfileStatus
	FetchedAt string
	Profile   RawProfile
}

// CleanedProfile is the normalized output row. Absent source data is a nil
// pointer, never a dropped column.
type CleanedProfile struct {
	// Identification
	URL        string
	Name       *string
	AliasText  *string
	AliasCount int
	NCICNumber *string
	Category   *string

	// Demographics
	DateOfBirth      *string
	AgeYears         *int
	ZodiacSign       *string
	Sex              *string
	Nationality      *string
	BirthCountry     *string
	BirthCountryCode *string

	// Physical
	HeightCm  *float64
	WeightKg  *float64
	EyeColor  *string
	HairColor *string
	HasMark   bool

	// Languages
	LanguagePrimary   *string
	LanguageSecondary *string
	LanguageTertiary  *string

	// Professional
	OccupationCategory string

	// Agency
	FBIFieldOffice *string
	HasCaution     bool
}

// CleanedColumns is the column order shared by the CSV and XLSX exporters.
var CleanedColumns = []string{
	"url", "name", "alias_text", "alias_count", "ncic_number", "category",
	"date_of_birth", "age_years", "zodiac_sign", "sex", "nationality",
	"birth_country", "birth_country_code",
	"height_cm", "weight_kg", "eye_color", "hair_color", "has_mark",
	"language_primary", "language_secondary", "language_tertiary",
	"occupation_category",
	"fbi_field_office", "has_caution",
}
