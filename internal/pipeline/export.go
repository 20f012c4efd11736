package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"fugitives/internal"
)

// ExportRowsToCSV writes the cleaned rows as UTF-8 CSV with the fixed
// 24-column header.
func ExportRowsToCSV(rows []internal.CleanedProfile, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(internal.CleanedColumns); err != nil {
		_ = f.Close()
		return err
	}
	for _, row := range rows {
		if err := w.Write(csvRecord(row)); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func csvRecord(row internal.CleanedProfile) []string {
	return []string{
		row.URL,
		derefString(row.Name),
		derefString(row.AliasText),
		strconv.Itoa(row.AliasCount),
		derefString(row.NCICNumber),
		derefString(row.Category),
		derefString(row.DateOfBirth),
		formatInt(row.AgeYears),
		derefString(row.ZodiacSign),
		derefString(row.Sex),
		derefString(row.Nationality),
		derefString(row.BirthCountry),
		derefString(row.BirthCountryCode),
		formatFloat(row.HeightCm),
		formatFloat(row.WeightKg),
		derefString(row.EyeColor),
		derefString(row.HairColor),
		strconv.FormatBool(row.HasMark),
		derefString(row.LanguagePrimary),
		derefString(row.LanguageSecondary),
		derefString(row.LanguageTertiary),
		row.OccupationCategory,
		derefString(row.FBIFieldOffice),
		strconv.FormatBool(row.HasCaution),
	}
}

// ExportRowsToXLSX writes the same columns as the CSV exporter to a single
// Excel sheet.
func ExportRowsToXLSX(rows []internal.CleanedProfile, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range internal.CleanedColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheet, cell, value)
		}

		set(1, row.URL)
		set(2, derefString(row.Name))
		set(3, derefString(row.AliasText))
		set(4, row.AliasCount)
		set(5, derefString(row.NCICNumber))
		set(6, derefString(row.Category))
		set(7, derefString(row.DateOfBirth))
		set(8, cellInt(row.AgeYears))
		set(9, derefString(row.ZodiacSign))
		set(10, derefString(row.Sex))
		set(11, derefString(row.Nationality))
		set(12, derefString(row.BirthCountry))
		set(13, derefString(row.BirthCountryCode))
		set(14, cellFloat(row.HeightCm))
		set(15, cellFloat(row.WeightKg))
		set(16, derefString(row.EyeColor))
		set(17, derefString(row.HairColor))
		set(18, row.HasMark)
		set(19, derefString(row.LanguagePrimary))
		set(20, derefString(row.LanguageSecondary))
		set(21, derefString(row.LanguageTertiary))
		set(22, row.OccupationCategory)
		set(23, derefString(row.FBIFieldOffice))
		set(24, row.HasCaution)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// Fixed leading columns of the raw table; the flattened description keys
// follow.
var rawBaseColumns = []string{
	"url", "category", "name", "alias", "image_url",
	"remarks", "caution", "field_office",
}

// RawColumns returns the raw-table header: the base columns plus the
// sorted union of description keys across all profiles, so every profile's
// description lands in a stable column.
func RawColumns(profiles []internal.RawProfile) []string {
	seen := map[string]struct{}{}
	for _, p := range profiles {
		for key := range p.Description {
			seen[key] = struct{}{}
		}
	}
	descColumns := make([]string, 0, len(seen))
	for key := range seen {
		descColumns = append(descColumns, key)
	}
	sort.Strings(descColumns)
	return append(append([]string{}, rawBaseColumns...), descColumns...)
}

func rawRecord(p internal.RawProfile, columns []string) []string {
	out := []string{
		p.URL,
		derefString(p.Category),
		derefString(p.Name),
		derefString(p.Alias),
		derefString(p.ImageURL),
		derefString(p.Remarks),
		derefString(p.Caution),
		derefString(p.FieldOffice),
	}
	for _, key := range columns[len(rawBaseColumns):] {
		out = append(out, p.Description[key])
	}
	return out
}

// ExportRawToCSV writes the untransformed profiles as a flat table, the
// description map spread into one column per key.
func ExportRawToCSV(profiles []internal.RawProfile, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}

	columns := RawColumns(profiles)
	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		_ = f.Close()
		return err
	}
	for _, p := range profiles {
		if err := w.Write(rawRecord(p, columns)); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ExportRawToXLSX writes the same flat raw table to a single Excel sheet.
func ExportRawToXLSX(profiles []internal.RawProfile, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	columns := RawColumns(profiles)
	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for i, p := range profiles {
		record := rawRecord(p, columns)
		for j, value := range record {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

// ExportRawToJSON archives the untransformed profiles, description map
// nested, as an indented JSON array.
func ExportRawToJSON(profiles []internal.RawProfile, outputPath string) error {
	blob, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outputPath, append(blob, '\n'), 0o644)
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func cellInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func cellFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
