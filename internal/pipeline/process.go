package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"fugitives/internal"
	"fugitives/internal/config"
	"fugitives/internal/logger"
	"fugitives/internal/storage"
)

// CleaningService turns fetched raw profiles into cleaned rows and records
// a run summary per batch.
type CleaningService struct {
	db  *storage.DB
	cfg config.Config
}

func NewCleaningService(db *storage.DB, cfg config.Config) *CleaningService {
	return &CleaningService{db: db, cfg: cfg}
}

type CleanResult struct {
	Profiles        int
	UnmappedPlaces  int
	UnparseableDOBs int
}

// CleanPending processes up to batch profiles in status "fetched". Partial
// data degrades individual columns, never drops a profile.
func (s *CleaningService) CleanPending(batch int) (CleanResult, error) {
	start := time.Now()
	l := logger.WithComponent("pipeline")

	pending, err := s.db.ListProfilesByStatus(internal.StatusFetched, batch)
	if err != nil {
		return CleanResult{}, err
	}

	result := CleanResult{}
	for _, profile := range pending {
		row := Assemble(profile.Profile, s.cfg.ReferenceDate)

		if row.DateOfBirth == nil {
			result.UnparseableDOBs++
			l.Debug().Str("url", row.URL).Msg("date of birth unparseable")
		}
		if row.BirthCountry != nil && row.BirthCountryCode == nil {
			result.UnmappedPlaces++
			l.Debug().Str("url", row.URL).Str("place", *row.BirthCountry).Msg("no ISO code for birth place")
		}

		if err := s.db.ClearCleaned(profile.ID); err != nil {
			return result, err
		}
		if err := s.db.InsertCleaned(profile.ID, row); err != nil {
			return result, err
		}
		if err := s.db.UpdateProfileStatus(profile.ID, internal.StatusCleaned); err != nil {
			return result, err
		}
		result.Profiles++
	}

	_ = s.db.InsertRun(traceID(),
		map[string]float64{"totalMs": float64(time.Since(start).Milliseconds())},
		map[string]int{
			"cleaned":         result.Profiles,
			"unmappedPlaces":  result.UnmappedPlaces,
			"unparseableDobs": result.UnparseableDOBs,
		})

	l.Info().Int("profiles", result.Profiles).Msg("cleaning batch done")
	return result, nil
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
