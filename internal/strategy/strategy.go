package strategy

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// Blob-count thresholds separating the scale tiers. Comparisons are
// strictly-less-than, so each boundary count belongs to the higher tier.
const (
	mediumThreshold = 100
	largeThreshold  = 500
	xlargeThreshold = 2000
)

// Scale labels. Diagnostic only; no behavior hangs off them.
const (
	ScaleSmall      = "small"
	ScaleMedium     = "medium"
	ScaleLarge      = "large"
	ScaleExtraLarge = "extra-large"
)

// UploadStrategy parametrizes the upload pipeline for one run: how many
// blobs go into a request, how many requests may be in flight at once,
// and the per-request deadline.
type UploadStrategy struct {
	BatchSize   int           `json:"batch-size"`
	Concurrency int           `json:"concurrency"`
	Timeout     time.Duration `json:"timeout"`
	Scale       string        `json:"scale"`
}

func (s UploadStrategy) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("scale", s.Scale)
	enc.AddInt("batchSize", s.BatchSize)
	enc.AddInt("concurrency", s.Concurrency)
	enc.AddDuration("timeout", s.Timeout)
	return nil
}

// Select maps a blob count to its strategy tier. Pure and total: every
// count, a negative one included, lands in exactly one tier. Larger
// projects get bigger batches and more concurrency to amortize per-request
// overhead, plus a longer deadline for the heavier payloads.
func Select(blobCount int) UploadStrategy {
	switch {
	case blobCount < mediumThreshold:
		return UploadStrategy{BatchSize: 10, Concurrency: 1, Timeout: 30 * time.Second, Scale: ScaleSmall}
	case blobCount < largeThreshold:
		return UploadStrategy{BatchSize: 30, Concurrency: 2, Timeout: 45 * time.Second, Scale: ScaleMedium}
	case blobCount < xlargeThreshold:
		return UploadStrategy{BatchSize: 50, Concurrency: 3, Timeout: 60 * time.Second, Scale: ScaleLarge}
	default:
		return UploadStrategy{BatchSize: 70, Concurrency: 4, Timeout: 90 * time.Second, Scale: ScaleExtraLarge}
	}
}

// Tiers returns one strategy per tier in ascending scale order.
func Tiers() []UploadStrategy {
	return []UploadStrategy{
		Select(0),
		Select(mediumThreshold),
		Select(largeThreshold),
		Select(xlargeThreshold),
	}
}
