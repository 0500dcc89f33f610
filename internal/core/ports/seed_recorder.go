package ports

import "time"

// Results reported to a SeedRecorder for each document.
const (
	ResultWritten = "written"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// SeedRecorder receives the outcome of every document and of the run.
type SeedRecorder interface {
	DocumentHandled(collection, result string)
	RunFinished(mode string, elapsed time.Duration)
}
