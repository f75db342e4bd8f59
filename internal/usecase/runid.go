package usecase

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewRunID returns a ULID identifying one generation run. Run IDs appear in
// logs, the CLI summary, and the SQLite runs table; they are deliberately
// independent of the dataset's seeded random source.
func NewRunID() string {
	t := time.Now()
	entropy := ulid.Monotonic(rand.New(rand.NewSource(t.UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}
