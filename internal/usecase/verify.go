package usecase

import (
	"fmt"

	"edgeneuro/internal/domain"
)

// DatasetStats summarizes a verified dataset.
type DatasetStats struct {
	Records  int
	PerAgent map[string]int
}

// Verify checks every record against the catalog invariants: the target must
// be a catalog agent, the reason must name an intent that agent owns, and the
// input must be non-empty. The first violation aborts with its record index.
func Verify(records []domain.TrainingRecord, catalog domain.Catalog) (DatasetStats, error) {
	stats := DatasetStats{PerAgent: make(map[string]int)}
	for i, rec := range records {
		if rec.Input == "" {
			return stats, fmt.Errorf("record %d: %w: empty input", i, domain.ErrBadRecord)
		}
		dec, err := rec.Decision()
		if err != nil {
			return stats, fmt.Errorf("record %d: %w", i, err)
		}
		if !catalog.Has(dec.Target) {
			return stats, fmt.Errorf("record %d: %w: %q", i, domain.ErrUnknownAgent, dec.Target)
		}
		intent, ok := dec.Intent()
		if !ok {
			return stats, fmt.Errorf("record %d: %w: unrecognized reason %q", i, domain.ErrBadRecord, dec.Reason)
		}
		if !catalog.Owns(dec.Target, intent) {
			return stats, fmt.Errorf("record %d: %w: %q does not own %q", i, domain.ErrForeignIntent, dec.Target, intent)
		}
		stats.PerAgent[dec.Target]++
		stats.Records++
	}
	return stats, nil
}
