package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"fugitives/internal"
	"fugitives/internal/util"
)

func sampleRows() []internal.CleanedProfile {
	return []internal.CleanedProfile{
		{
			URL:                "https://www.fbi.gov/wanted/fugitives/john-doe",
			Name:               util.StringPtr("JOHN DOE"),
			AliasCount:         2,
			DateOfBirth:        util.StringPtr("1980-03-25"),
			AgeYears:           util.IntPtr(45),
			ZodiacSign:         util.StringPtr("Aries"),
			HeightCm:           util.FloatPtr(177.8),
			WeightKg:           util.FloatPtr(81.6),
			HasMark:            true,
			OccupationCategory: "Transportation",
			HasCaution:         true,
		},
		{
			URL:                "https://www.fbi.gov/wanted/fugitives/jane-doe",
			Name:               util.StringPtr("JANE DOE"),
			OccupationCategory: "Unknown",
		},
	}
}

func TestExportRowsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")
	if err := ExportRowsToCSV(sampleRows(), path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header plus 2 rows", len(records))
	}
	if !reflect.DeepEqual(records[0], internal.CleanedColumns) {
		t.Fatalf("header mismatch: %v", records[0])
	}
	if records[1][0] != "https://www.fbi.gov/wanted/fugitives/john-doe" {
		t.Fatalf("row url: got %q", records[1][0])
	}
	if records[1][7] != "45" || records[1][8] != "Aries" {
		t.Fatalf("age/zodiac cells: got %q %q", records[1][7], records[1][8])
	}
	if records[1][13] != "177.8" || records[1][14] != "81.6" {
		t.Fatalf("height/weight cells: got %q %q", records[1][13], records[1][14])
	}
	if records[1][17] != "true" || records[1][23] != "true" {
		t.Fatalf("flag cells: got %q %q", records[1][17], records[1][23])
	}
	if records[2][6] != "" || records[2][7] != "" {
		t.Fatalf("nil fields should be empty cells: got %q %q", records[2][6], records[2][7])
	}
}

func TestExportRowsToXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.xlsx")
	if err := ExportRowsToXLSX(sampleRows(), path); err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty workbook written")
	}
}

func TestExportRawToCSV(t *testing.T) {
	profiles := []internal.RawProfile{
		{
			URL:  "https://www.fbi.gov/wanted/fugitives/john-doe",
			Name: util.StringPtr("JOHN DOE"),
			Description: map[string]string{
				"Height": `5'10"`,
				"Eyes":   "Brown",
			},
			Caution: util.StringPtr("Reward of up to $100,000."),
		},
		{
			URL:  "https://www.fbi.gov/wanted/fugitives/jane-doe",
			Name: util.StringPtr("JANE DOE"),
			Description: map[string]string{
				"Hair": "Black",
			},
		},
	}

	path := filepath.Join(t.TempDir(), "dataframe.csv")
	if err := ExportRawToCSV(profiles, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header plus 2 rows", len(records))
	}

	wantHeader := []string{
		"url", "category", "name", "alias", "image_url",
		"remarks", "caution", "field_office",
		"Eyes", "Hair", "Height",
	}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Fatalf("header mismatch: %v", records[0])
	}

	col := map[string]int{}
	for i, h := range records[0] {
		col[h] = i
	}
	if records[1][col["Height"]] != `5'10"` {
		t.Fatalf("height cell: got %q", records[1][col["Height"]])
	}
	if records[1][col["Hair"]] != "" {
		t.Fatalf("missing key should be empty cell: got %q", records[1][col["Hair"]])
	}
	if records[2][col["Hair"]] != "Black" {
		t.Fatalf("hair cell: got %q", records[2][col["Hair"]])
	}
	if records[1][col["caution"]] != "Reward of up to $100,000." {
		t.Fatalf("caution cell: got %q", records[1][col["caution"]])
	}
}

func TestExportRawToXLSX(t *testing.T) {
	profiles := []internal.RawProfile{
		{
			URL:         "https://www.fbi.gov/wanted/fugitives/john-doe",
			Name:        util.StringPtr("JOHN DOE"),
			Description: map[string]string{"Height": "180 cm"},
		},
	}

	path := filepath.Join(t.TempDir(), "dataframe.xlsx")
	if err := ExportRawToXLSX(profiles, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty workbook written")
	}
}

func TestExportRawToJSON(t *testing.T) {
	profiles := []internal.RawProfile{
		{
			URL:  "https://www.fbi.gov/wanted/fugitives/john-doe",
			Name: util.StringPtr("JOHN DOE"),
			Description: map[string]string{
				"Height": `5'10"`,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "raw.json")
	if err := ExportRawToJSON(profiles, path); err != nil {
		t.Fatalf("export: %v", err)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var decoded []internal.RawProfile
	if err := json.Unmarshal(blob, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d profiles", len(decoded))
	}
	if decoded[0].Name == nil || *decoded[0].Name != "JOHN DOE" {
		t.Fatalf("name: got %v", decoded[0].Name)
	}
	if decoded[0].Description["Height"] != `5'10"` {
		t.Fatalf("description: got %v", decoded[0].Description)
	}
}
