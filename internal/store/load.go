package store

import (
	"errors"
	"log"

	"github.com/CRAJKUMARSINGH/PREET-ENGLISH-sub000/internal/record"
)

// LoadAll reads every producer's record in pipeline order. A record that is
// absent or unreadable is reported in missing; aggregation treats it as a
// data gap rather than an error.
func LoadAll(s RecordStore) (records []record.MetricRecord, missing []record.ProducerID) {
	for _, id := range record.Producers {
		rec, err := s.Get(id)
		switch {
		case errors.Is(err, ErrNotFound):
			log.Printf("[STORE] no record for %s", id)
			missing = append(missing, id)
		case err != nil:
			log.Printf("[STORE] unreadable record for %s: %v", id, err)
			missing = append(missing, id)
		default:
			records = append(records, rec)
		}
	}
	return records, missing
}
