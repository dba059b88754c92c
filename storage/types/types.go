package types

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Ladder maps a maturity in days to a rate. The same shape carries the
// raw feed yields (bond-equivalent, percent units) and the processed
// curve (continuously-compounded, decimal units); the stage is implied
// by where the ladder sits in the pipeline
type Ladder map[int]float64

// Maturities returns the ladder's maturities, ascending
func (l Ladder) Maturities() []int {
	out := make([]int, 0, len(l))

	for days := range l {
		out = append(out, days)
	}

	sort.Ints(out)

	return out
}

// Clone returns an independent copy of the ladder
func (l Ladder) Clone() Ladder {
	if l == nil {
		return nil
	}

	out := make(Ladder, len(l))

	for days, rate := range l {
		out[days] = rate
	}

	return out
}

// DatedCurve pairs a single feed date with its processed ladder.
// The date keeps the feed's native string form; the feed publishes
// ISO-ordered date strings, so the latest date is the string maximum
type DatedCurve struct {
	Date  string `json:"date"`
	Rates Ladder `json:"rates"`
}

// Text renders the curve in the standard human-readable form,
// one maturity per line, ascending
func (c *DatedCurve) Text() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Latest Date: %s\n", c.Date))
	sb.WriteString(strings.Repeat("-", 40))

	for _, days := range c.Rates.Maturities() {
		sb.WriteString(fmt.Sprintf("\nMaturity: %5d days, r_t: %.6f", days, c.Rates[days]))
	}

	return sb.String()
}

// TermRates holds the continuously-compounded rates at the two
// caller-specified horizons used by VIX-style term interpolation
type TermRates struct {
	NearRate float64 `json:"near_term_rate"`
	NextRate float64 `json:"next_term_rate"`
	NearDays int     `json:"near_term_days"`
	NextDays int     `json:"next_term_days"`
}

// CurveReport is the flat output document consumed by downstream
// tooling. FullRates keys the maturities as decimal strings
type CurveReport struct {
	Date         string             `json:"date"`
	Year         int                `json:"year,omitempty"`
	FullRates    map[string]float64 `json:"full_rates"`
	VIXTermRates *TermRates         `json:"vix_term_rates,omitempty"`
}

// NewCurveReport builds the output report for a processed curve.
// The term rates are optional (per-date lookups don't carry them)
func NewCurveReport(curve *DatedCurve, year int, term *TermRates) *CurveReport {
	full := make(map[string]float64, len(curve.Rates))

	for days, rate := range curve.Rates {
		full[strconv.Itoa(days)] = rate
	}

	return &CurveReport{
		Date:         curve.Date,
		Year:         year,
		FullRates:    full,
		VIXTermRates: term,
	}
}

// FullLadder re-reads the report's full_rates back into a ladder
func (r *CurveReport) FullLadder() (Ladder, error) {
	out := make(Ladder, len(r.FullRates))

	for key, rate := range r.FullRates {
		days, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid maturity key %q: %w", key, err)
		}

		out[days] = rate
	}

	return out, nil
}
