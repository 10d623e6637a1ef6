package measure

import (
	"math"

	pkgerrors "textkit/pkg/errors"
)

// ScaleFactor estimates the constant c in metric ≈ c * size^exponent by
// averaging the per-observation constants. Observations whose metric is zero
// or unchanged from the previous observation are skipped; with nothing left
// to average the factor is NaN.
func ScaleFactor(results []Result, exponent float64, metric Metric) (float64, error) {
	sum, count := 0.0, 0
	prev := math.NaN()
	for _, r := range results {
		v, err := r.Value(metric)
		if err != nil {
			return 0, err
		}
		if v == 0 || v == prev {
			prev = v
			continue
		}
		sum += v / math.Pow(float64(r.Size), exponent)
		count++
		prev = v
	}
	if count == 0 {
		return math.NaN(), nil
	}
	return sum / float64(count), nil
}

// Scaled evaluates c * size^exponent at every observed size.
func Scaled(results []Result, factor, exponent float64) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = factor * math.Pow(float64(r.Size), exponent)
	}
	return out
}

// Residuals subtracts the scaled fit from the measurements, element-wise.
func Residuals(measured, scaled []float64) ([]float64, error) {
	if len(measured) != len(scaled) {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument,
			"measured and scaled lengths differ: %d vs %d", len(measured), len(scaled))
	}
	out := make([]float64, len(measured))
	for i := range measured {
		out[i] = measured[i] - scaled[i]
	}
	return out, nil
}

// Normalize rescales values to [0, 1] by their range. A constant series
// normalizes to all zeros.
func Normalize(xs []float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	min, max := xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	out := make([]float64, len(xs))
	if max == min {
		return out
	}
	for i, x := range xs {
		out[i] = (x - min) / (max - min)
	}
	return out
}

// LogLogSlope fits a least-squares line through (log size, log metric) and
// returns its slope, an empirical growth exponent. Observations with a
// non-positive metric are skipped; fewer than two usable points yield NaN.
func LogLogSlope(results []Result, metric Metric) (float64, error) {
	var xs, ys []float64
	for _, r := range results {
		v, err := r.Value(metric)
		if err != nil {
			return 0, err
		}
		if v <= 0 || r.Size <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(r.Size)))
		ys = append(ys, math.Log(v))
	}
	if len(xs) < 2 {
		return math.NaN(), nil
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return math.NaN(), nil
	}
	return (n*sumXY - sumX*sumY) / denom, nil
}
