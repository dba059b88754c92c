package treasury

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/sig-0/tsycurve/curve"
	"github.com/sig-0/tsycurve/storage/types"
)

const defaultURLTemplate = "https://home.treasury.gov/resource-center/data-chart-center/interest-rates/pages/xmlview?data=daily_treasury_yield_curve&field_tdr_date_value=%d"

const (
	defaultTimeout = time.Second * 30
	userAgent      = "tsycurve/1.0"
)

// Provider is the US Treasury daily yield curve feed provider
type Provider struct {
	client   *http.Client
	logger   *slog.Logger
	limiter  *rate.Limiter
	pipeline *curve.Pipeline

	urlTemplate string
	year        int
}

type Option func(p *Provider)

// WithYear pins the feed year. Zero resolves to the current UTC year
// at fetch time
func WithYear(year int) Option {
	return func(p *Provider) {
		p.year = year
	}
}

// WithTimeout specifies the feed request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		p.client.Timeout = timeout
	}
}

// WithURLTemplate overrides the feed URL template. The template must
// carry a single integer verb for the year
func WithURLTemplate(template string) Option {
	return func(p *Provider) {
		p.urlTemplate = template
	}
}

// WithLogger specifies the logger for the provider
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = l
	}
}

// NewProvider creates a new instance of the treasury feed provider
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		limiter:     rate.NewLimiter(rate.Every(time.Second*2), 1),
		urlTemplate: defaultURLTemplate,
	}

	// Apply the options
	for _, opt := range opts {
		opt(p)
	}

	p.pipeline = curve.NewPipeline(curve.WithLogger(p.logger))

	return p
}

func (p *Provider) Name() string {
	return "US Treasury"
}

func (p *Provider) Interval() time.Duration {
	return time.Hour * 24 // the feed is published daily
}

func (p *Provider) Fetch(ctx context.Context) ([]*types.DatedCurve, error) {
	// The feed host is shared public infrastructure, keep requests spaced
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("unable to acquire request slot: %w", err)
	}

	year := p.year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	// Prepare the request
	url := fmt.Sprintf(p.urlTemplate, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("unable to create new GET request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	// Execute the request
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to execute GET request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("invalid status code received: %d", resp.StatusCode)
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read feed response: %w", err)
	}

	// Run the feed through the processing pipeline
	processed, err := p.pipeline.Process(doc)
	if err != nil {
		return nil, err
	}

	curves := make([]*types.DatedCurve, 0, len(processed))

	for date, rates := range processed {
		curves = append(curves, &types.DatedCurve{
			Date:  date,
			Rates: rates,
		})
	}

	sort.Slice(curves, func(i, j int) bool {
		return curves[i].Date < curves[j].Date
	})

	p.logger.Debug(
		"fetched yield curve feed",
		"year", year,
		"dates", len(curves),
	)

	return curves, nil
}
