// Package measure times functions over growing input sizes and fits the
// observations against candidate complexity classes. Timing uses the
// monotonic clock; allocation is the TotalAlloc delta around each run after
// a forced GC baseline.
package measure

import (
	"runtime"
	"time"

	pkgerrors "textkit/pkg/errors"
	"textkit/pkg/logger"
)

// Result is one observation: the input size, the wall time, and the bytes
// allocated during the run.
type Result struct {
	Size    int
	Seconds float64
	Bytes   uint64
}

// Metric selects which observation column an analysis reads.
type Metric string

const (
	MetricTime  Metric = "time"
	MetricBytes Metric = "bytes"
)

// Value returns the observation for the given metric.
func (r Result) Value(metric Metric) (float64, error) {
	switch metric {
	case MetricTime:
		return r.Seconds, nil
	case MetricBytes:
		return float64(r.Bytes), nil
	default:
		return 0, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"unknown metric %q: valid metrics are time, bytes", metric)
	}
}

// Investigate runs fn at sizes stepSize, 2*stepSize, ..., steps*stepSize and
// records one Result per size.
func Investigate(fn func(int), steps, stepSize int) ([]Result, error) {
	if fn == nil {
		return nil, pkgerrors.New(pkgerrors.ErrInvalidArgument, "nil subject function")
	}
	if steps < 1 || stepSize < 1 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"steps and step size must be positive, got %d and %d", steps, stepSize)
	}

	log := logger.WithComponent("measure")
	results := make([]Result, 0, steps)
	var before, after runtime.MemStats

	for i := 1; i <= steps; i++ {
		size := i * stepSize

		runtime.GC()
		runtime.ReadMemStats(&before)
		start := time.Now()
		fn(size)
		elapsed := time.Since(start)
		runtime.ReadMemStats(&after)

		result := Result{
			Size:    size,
			Seconds: elapsed.Seconds(),
			Bytes:   after.TotalAlloc - before.TotalAlloc,
		}
		results = append(results, result)
		log.Debug("measured subject", "size", size, "seconds", result.Seconds, "bytes", result.Bytes)
	}
	return results, nil
}
