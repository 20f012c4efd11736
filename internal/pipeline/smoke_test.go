package pipeline

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fugitives/internal"
	"fugitives/internal/config"
	"fugitives/internal/storage"
	"fugitives/internal/util"
)

func TestSmokeScrapedToCleanedRows(t *testing.T) {
	tmp := t.TempDir()
	db, err := storage.Open(filepath.Join(tmp, "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	profiles := []internal.RawProfile{
		{
			URL:      "https://www.fbi.gov/wanted/fugitives/john-doe",
			Category: util.StringPtr("fugitives"),
			Name:     util.StringPtr("JOHN DOE"),
			Alias:    util.StringPtr("Johnny, JD"),
			Description: map[string]string{
				"Date(s) of Birth Used": "March 25, 1980",
				"Place of Birth":        "Mexico",
				"Height":                `5'10"`,
				"Weight":                "180 pounds",
				"Occupation":            "Truck driver",
			},
			Caution:     util.StringPtr("Reward of up to $100,000."),
			FieldOffice: util.StringPtr("Dallas"),
		},
		{
			URL:  "https://www.fbi.gov/wanted/fugitives/jane-doe",
			Name: util.StringPtr("JANE DOE"),
			Description: map[string]string{
				"Date(s) of Birth Used": "unknown",
				"Height":                "180 cm",
			},
		},
	}
	for _, p := range profiles {
		if err := db.UpsertProfile(p); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.Config{ReferenceDate: time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC)}
	svc := NewCleaningService(db, cfg)
	res, err := svc.CleanPending(1000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Profiles != 2 {
		t.Fatalf("cleaned %d profiles, want 2", res.Profiles)
	}
	if res.UnparseableDOBs != 1 {
		t.Fatalf("unparseable DOBs %d, want 1", res.UnparseableDOBs)
	}

	rows, err := db.ListCleanedRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d cleaned rows, want 2", len(rows))
	}

	first := rows[0]
	if first.URL != "https://www.fbi.gov/wanted/fugitives/john-doe" {
		t.Fatalf("row order: got %q first", first.URL)
	}
	if first.DateOfBirth == nil || *first.DateOfBirth != "1980-03-25" {
		t.Fatalf("date_of_birth: got %v", first.DateOfBirth)
	}
	if first.AgeYears == nil || *first.AgeYears != 45 {
		t.Fatalf("age_years: got %v", first.AgeYears)
	}
	if first.HeightCm == nil || *first.HeightCm != 177.8 {
		t.Fatalf("height_cm: got %v", first.HeightCm)
	}
	if first.BirthCountryCode == nil || *first.BirthCountryCode != "MEX" {
		t.Fatalf("birth_country_code: got %v", first.BirthCountryCode)
	}
	if !first.HasCaution {
		t.Fatal("has_caution: got false")
	}

	second := rows[1]
	if second.DateOfBirth != nil || second.AgeYears != nil {
		t.Fatalf("unparseable DOB should stay nil: %v %v", second.DateOfBirth, second.AgeYears)
	}
	if second.HeightCm == nil || *second.HeightCm != 180 {
		t.Fatalf("height_cm: got %v", second.HeightCm)
	}

	cleaned, err := db.ListProfilesByStatus(internal.StatusCleaned, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(cleaned) != 2 {
		t.Fatalf("got %d profiles in status cleaned, want 2", len(cleaned))
	}
	pending, err := db.ListProfilesByStatus(internal.StatusFetched, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 0 {
		t.Fatalf("got %d profiles still fetched, want 0", len(pending))
	}

	again, err := svc.CleanPending(1000)
	if err != nil {
		t.Fatal(err)
	}
	if again.Profiles != 0 {
		t.Fatalf("second pass cleaned %d profiles, want 0", again.Profiles)
	}

	out := filepath.Join(tmp, "cleaned.csv")
	if err := ExportRowsToCSV(rows, out); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}

func TestCleanPendingPicksUpEarlierBatches(t *testing.T) {
	tmp := t.TempDir()
	db, err := storage.Open(filepath.Join(tmp, "app.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	leftover := internal.RawProfile{
		URL:         "https://www.fbi.gov/wanted/fugitives/old-run",
		Name:        util.StringPtr("OLD RUN"),
		Description: map[string]string{"Height": "175 cm"},
	}
	fresh := internal.RawProfile{
		URL:         "https://www.fbi.gov/wanted/fugitives/new-run",
		Name:        util.StringPtr("NEW RUN"),
		Description: map[string]string{"Height": "180 cm"},
	}
	if err := db.UpsertProfile(leftover); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertProfile(fresh); err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{ReferenceDate: time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC)}
	res, err := NewCleaningService(db, cfg).CleanPending(1000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Profiles != 2 {
		t.Fatalf("cleaned %d profiles, want leftover and fresh both cleaned", res.Profiles)
	}

	rows, err := db.ListCleanedRows()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d cleaned rows, want 2", len(rows))
	}
}
