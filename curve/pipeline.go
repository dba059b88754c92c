package curve

import (
	"errors"
	"io"
	"log/slog"

	"github.com/sig-0/tsycurve/storage/types"
)

// ErrNoData signals that the feed produced no usable yield data
var ErrNoData = errors.New("no usable yield data")

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Pipeline chains feed extraction, maturity interpolation and yield
// conversion into processed per-date curves. A Pipeline is stateless
// across calls; concurrent Process calls need no coordination
type Pipeline struct {
	logger  *slog.Logger
	targets []int

	extractor *Extractor
	interp    *Interpolator
}

type Option func(p *Pipeline)

// WithLogger specifies the diagnostics logger for the pipeline
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithTargetMaturities overrides the reported maturity set
func WithTargetMaturities(targets []int) Option {
	return func(p *Pipeline) {
		p.targets = targets
	}
}

// NewPipeline creates a new Pipeline instance
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger: noopLogger,
	}

	// Apply the options
	for _, opt := range opts {
		opt(p)
	}

	p.extractor = NewExtractor(p.logger)
	p.interp = NewInterpolator(p.targets, p.logger)

	return p
}

// Process parses a raw feed document and derives the complete,
// continuously-compounded ladder for every date with usable data.
// Dates whose raw ladder can't support a single target maturity are
// dropped; a malformed document fails the whole run
func (p *Pipeline) Process(doc []byte) (map[string]types.Ladder, error) {
	raw, err := p.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	processed := make(map[string]types.Ladder, len(raw))

	for date, ladder := range raw {
		interpolated, err := p.interp.Interpolate(ladder)
		if err != nil || len(interpolated) == 0 {
			continue // no usable data for this date
		}

		processed[date] = ToContinuous(interpolated)
	}

	return processed, nil
}

// Latest picks the most recent date from the processed curves. The
// feed's date strings order lexicographically in calendar order, so the
// latest date is the string maximum. ErrNoData when nothing survived
// processing
func (p *Pipeline) Latest(processed map[string]types.Ladder) (*types.DatedCurve, error) {
	if len(processed) == 0 {
		return nil, ErrNoData
	}

	var latest string

	for date := range processed {
		if date > latest {
			latest = date
		}
	}

	return &types.DatedCurve{
		Date:  latest,
		Rates: processed[latest],
	}, nil
}

// TermRates looks up the rates at the two requested day horizons via
// independent point lookups. The horizons are not validated against each
// other; callers may pass nextDays < nearDays
func TermRates(rates types.Ladder, nearDays, nextDays int) types.TermRates {
	return types.TermRates{
		NearRate: RateAtDays(rates, nearDays),
		NextRate: RateAtDays(rates, nextDays),
		NearDays: nearDays,
		NextDays: nextDays,
	}
}
