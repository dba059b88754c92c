package curve

import (
	"log/slog"
	"sort"

	"github.com/sig-0/tsycurve/storage/types"
)

// Interpolator derives complete maturity ladders from sparse feed data.
// The target maturity set is fixed at construction
type Interpolator struct {
	logger  *slog.Logger
	targets []int
}

// NewInterpolator creates an interpolator for the given target maturity
// set. Empty targets fall back to the default set; a nil logger discards
// diagnostics
func NewInterpolator(targets []int, logger *slog.Logger) *Interpolator {
	if len(targets) == 0 {
		targets = DefaultTargetMaturities()
	} else {
		owned := make([]int, len(targets))
		copy(owned, targets)
		targets = owned
	}

	if logger == nil {
		logger = noopLogger
	}

	return &Interpolator{
		logger:  logger,
		targets: targets,
	}
}

// Interpolate produces a yield for every target maturity that the raw
// ladder can support. Exact raw points are copied verbatim; the rest are
// linearly interpolated between the nearest enclosing raw points.
// Targets outside the raw ladder's span are omitted, never extrapolated.
// An empty raw ladder yields ErrNoData
func (ip *Interpolator) Interpolate(raw types.Ladder) (types.Ladder, error) {
	if len(raw) == 0 {
		return nil, ErrNoData
	}

	var (
		keys = raw.Maturities()
		out  = make(types.Ladder, len(ip.targets))
	)

	for _, target := range ip.targets {
		if rate, ok := raw[target]; ok {
			out[target] = rate

			continue
		}

		var (
			lower, lowerOK = lowerBound(keys, target)
			upper, upperOK = upperBound(keys, target)
		)

		if !lowerOK || !upperOK {
			ip.logger.Warn(
				"unable to interpolate maturity",
				"days", target,
			)

			continue
		}

		out[target] = interpolate(lower, upper, target, raw[lower], raw[upper])
	}

	return out, nil
}

// RateAtDays looks up the rate at an arbitrary maturity on an existing
// ladder. Exact keys are returned unchanged, maturities between two keys
// are linearly interpolated, and maturities beyond either end of the
// ladder clamp to the nearest edge value. The ladder must be non-empty
func RateAtDays(rates types.Ladder, days int) float64 {
	if rate, ok := rates[days]; ok {
		return rate
	}

	var (
		keys = rates.Maturities()

		lower, lowerOK = lowerBound(keys, days)
		upper, upperOK = upperBound(keys, days)
	)

	switch {
	case lowerOK && upperOK:
		return interpolate(lower, upper, days, rates[lower], rates[upper])
	case !lowerOK:
		return rates[keys[0]]
	default:
		return rates[keys[len(keys)-1]]
	}
}

// lowerBound finds the largest key strictly below target
func lowerBound(sorted []int, target int) (int, bool) {
	idx := sort.SearchInts(sorted, target)
	if idx == 0 {
		return 0, false
	}

	return sorted[idx-1], true
}

// upperBound finds the smallest key strictly above target
func upperBound(sorted []int, target int) (int, bool) {
	idx := sort.SearchInts(sorted, target+1)
	if idx == len(sorted) {
		return 0, false
	}

	return sorted[idx], true
}

// interpolate is standard linear interpolation between (x1, y1) and
// (x2, y2) at x. Callers guarantee x1 < x < x2
func interpolate(x1, x2, x int, y1, y2 float64) float64 {
	return y1 + (y2-y1)*float64(x-x1)/float64(x2-x1)
}
