package domain

import "context"

// DatasetSink persists a generated dataset in record order. Implementations
// overwrite any previous dataset at their target and return the number of
// records written. A write error is fatal to the run; sinks do not retry.
type DatasetSink interface {
	Write(ctx context.Context, runID string, records []TrainingRecord) (int, error)
}
