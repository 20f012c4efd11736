package storage

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"fugitives/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS profiles (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  url TEXT NOT NULL UNIQUE,
  category TEXT,
  name TEXT,
  alias TEXT,
  imageUrl TEXT,
  descriptionJson TEXT NOT NULL,
  remarks TEXT,
  caution TEXT,
  fieldOffice TEXT,
  status TEXT NOT NULL DEFAULT 'fetched',
  fetchedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_profiles_status ON profiles(status);

CREATE TABLE IF NOT EXISTS cleaned (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  profileId INTEGER NOT NULL UNIQUE,
  url TEXT NOT NULL,
  name TEXT,
  alias_text TEXT,
  alias_count INTEGER NOT NULL,
  ncic_number TEXT,
  category TEXT,
  date_of_birth TEXT,
  age_years INTEGER,
  zodiac_sign TEXT,
  sex TEXT,
  nationality TEXT,
  birth_country TEXT,
  birth_country_code TEXT,
  height_cm REAL,
  weight_kg REAL,
  eye_color TEXT,
  hair_color TEXT,
  has_mark INTEGER NOT NULL,
  language_primary TEXT,
  language_secondary TEXT,
  language_tertiary TEXT,
  occupation_category TEXT NOT NULL,
  fbi_field_office TEXT,
  has_caution INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  FOREIGN KEY(profileId) REFERENCES profiles(id)
);

CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  traceId TEXT NOT NULL,
  timingsJson TEXT NOT NULL,
  countsJson TEXT NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

// UpsertProfile stores a scraped profile keyed by URL. Re-scraping the same
// profile refreshes its fields and resets it to "fetched".
func (d *DB) UpsertProfile(p internal.RawProfile) error {
	descJSON, err := json.Marshal(p.Description)
	if err != nil {
		return err
	}

	_, err = d.conn.Exec(`
INSERT INTO profiles (url, category, name, alias, imageUrl, descriptionJson, remarks, caution, fieldOffice, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'fetched')
ON CONFLICT(url) DO UPDATE SET
  category=excluded.category,
  name=excluded.name,
  alias=excluded.alias,
  imageUrl=excluded.imageUrl,
  descriptionJson=excluded.descriptionJson,
  remarks=excluded.remarks,
  caution=excluded.caution,
  fieldOffice=excluded.fieldOffice,
  status='fetched',
  updatedAt=CURRENT_TIMESTAMP
`, p.URL, p.Category, p.Name, p.Alias, p.ImageURL, string(descJSON), p.Remarks, p.Caution, p.FieldOffice)
	return err
}

func (d *DB) ListProfilesByStatus(status internal.ProfileStatus, limit int) ([]internal.ProfileRow, error) {
	rows, err := d.conn.Query(`
SELECT id, url, category, name, alias, imageUrl, descriptionJson, remarks, caution, fieldOffice, status, fetchedAt
FROM profiles WHERE status = ? ORDER BY id ASC LIMIT ?
`, string(status), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ProfileRow
	for rows.Next() {
		row, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListRawProfiles returns every stored profile in scrape order, for the raw
// JSON export.
func (d *DB) ListRawProfiles() ([]internal.RawProfile, error) {
	rows, err := d.conn.Query(`
SELECT id, url, category, name, alias, imageUrl, descriptionJson, remarks, caution, fieldOffice, status, fetchedAt
FROM profiles ORDER BY id ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.RawProfile
	for rows.Next() {
		row, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row.Profile)
	}
	return out, rows.Err()
}

func scanProfile(rows *sql.Rows) (internal.ProfileRow, error) {
	var row internal.ProfileRow
	var descJSON string
	var status string
	if err := rows.Scan(
		&row.ID, &row.Profile.URL, &row.Profile.Category, &row.Profile.Name, &row.Profile.Alias,
		&row.Profile.ImageURL, &descJSON, &row.Profile.Remarks, &row.Profile.Caution,
		&row.Profile.FieldOffice, &status, &row.FetchedAt,
	); err != nil {
		return internal.ProfileRow{}, err
	}
	row.Status = internal.ProfileStatus(status)
	row.Profile.Description = map[string]string{}
	_ = json.Unmarshal([]byte(descJSON), &row.Profile.Description)
	return row, nil
}

func (d *DB) UpdateProfileStatus(profileID int, status internal.ProfileStatus) error {
	_, err := d.conn.Exec(`UPDATE profiles SET status = ?, updatedAt = CURRENT_TIMESTAMP WHERE id = ?`, string(status), profileID)
	return err
}

func (d *DB) ClearCleaned(profileID int) error {
	_, err := d.conn.Exec(`DELETE FROM cleaned WHERE profileId = ?`, profileID)
	return err
}

func (d *DB) InsertCleaned(profileID int, row internal.CleanedProfile) error {
	_, err := d.conn.Exec(`
INSERT INTO cleaned (
  profileId, url, name, alias_text, alias_count, ncic_number, category,
  date_of_birth, age_years, zodiac_sign, sex, nationality, birth_country, birth_country_code,
  height_cm, weight_kg, eye_color, hair_color, has_mark,
  language_primary, language_secondary, language_tertiary,
  occupation_category, fbi_field_office, has_caution
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		profileID, row.URL, row.Name, row.AliasText, row.AliasCount, row.NCICNumber, row.Category,
		row.DateOfBirth, row.AgeYears, row.ZodiacSign, row.Sex, row.Nationality, row.BirthCountry, row.BirthCountryCode,
		row.HeightCm, row.WeightKg, row.EyeColor, row.HairColor, row.HasMark,
		row.LanguagePrimary, row.LanguageSecondary, row.LanguageTertiary,
		row.OccupationCategory, row.FBIFieldOffice, row.HasCaution,
	)
	return err
}

// ListCleanedRows returns cleaned rows in profile order for export.
func (d *DB) ListCleanedRows() ([]internal.CleanedProfile, error) {
	rows, err := d.conn.Query(`
SELECT url, name, alias_text, alias_count, ncic_number, category,
       date_of_birth, age_years, zodiac_sign, sex, nationality, birth_country, birth_country_code,
       height_cm, weight_kg, eye_color, hair_color, has_mark,
       language_primary, language_secondary, language_tertiary,
       occupation_category, fbi_field_office, has_caution
FROM cleaned ORDER BY profileId ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.CleanedProfile
	for rows.Next() {
		var row internal.CleanedProfile
		if err := rows.Scan(
			&row.URL, &row.Name, &row.AliasText, &row.AliasCount, &row.NCICNumber, &row.Category,
			&row.DateOfBirth, &row.AgeYears, &row.ZodiacSign, &row.Sex, &row.Nationality, &row.BirthCountry, &row.BirthCountryCode,
			&row.HeightCm, &row.WeightKg, &row.EyeColor, &row.HairColor, &row.HasMark,
			&row.LanguagePrimary, &row.LanguageSecondary, &row.LanguageTertiary,
			&row.OccupationCategory, &row.FBIFieldOffice, &row.HasCaution,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (d *DB) InsertRun(traceID string, timings map[string]float64, counts map[string]int) error {
	timingsJSON, _ := json.Marshal(timings)
	countsJSON, _ := json.Marshal(counts)
	_, err := d.conn.Exec(`
INSERT INTO runs (traceId, timingsJson, countsJson) VALUES (?, ?, ?)
`, traceID, string(timingsJSON), string(countsJSON))
	return err
}
