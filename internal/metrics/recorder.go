package metrics

import "time"

// ResultLabel enumerates per-document outcomes.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// Recorder receives per-document observations.
type Recorder interface {
	IncDocument(format string, result ResultLabel)
	ObserveRenderDuration(format string, d time.Duration)
	AddBlocks(blockType string, n int)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

func (NoopRecorder) IncDocument(string, ResultLabel)             {}
func (NoopRecorder) ObserveRenderDuration(string, time.Duration) {}
func (NoopRecorder) AddBlocks(string, int)                       {}
