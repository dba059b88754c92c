package fetch

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/tsycurve/cmd/env"
	"github.com/sig-0/tsycurve/curve"
	"github.com/sig-0/tsycurve/provider/treasury"
	"github.com/sig-0/tsycurve/storage/types"
)

// fetchCfg wraps the fetch configuration
type fetchCfg struct {
	out io.Writer

	year        int
	near        int
	next        int
	timeout     time.Duration
	urlTemplate string
	output      string
	jsonOnly    bool
	verbose     bool
}

// NewFetchCmd creates the fetch subcommand
func NewFetchCmd() *ffcli.Command {
	cfg := &fetchCfg{
		out: os.Stdout,
	}

	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	cfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "fetch",
		ShortUsage: "fetch [flags]",
		LongHelp:   "Fetches the latest daily treasury yield curve and prints the VIX-style term rates",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

func (c *fetchCfg) registerFlags(fs *flag.FlagSet) {
	fs.IntVar(
		&c.year,
		"year",
		0,
		"the feed year to fetch (0 = current year)",
	)

	fs.IntVar(
		&c.near,
		"near",
		30,
		"the days to near-term expiration",
	)

	fs.IntVar(
		&c.next,
		"next",
		60,
		"the days to next-term expiration",
	)

	fs.DurationVar(
		&c.timeout,
		"timeout",
		time.Second*30,
		"the timeout for the feed request",
	)

	fs.StringVar(
		&c.urlTemplate,
		"url",
		"",
		"the feed URL template override, if any",
	)

	fs.StringVar(
		&c.output,
		"output",
		"latest_yield_curve.json",
		"the path for the saved JSON report (empty to skip saving)",
	)

	fs.BoolVar(
		&c.jsonOnly,
		"json-only",
		false,
		"print the JSON report instead of readable text",
	)

	fs.BoolVar(
		&c.verbose,
		"verbose",
		false,
		"enable verbose logging",
	)
}

// exec executes the fetch command
func (c *fetchCfg) exec(ctx context.Context, _ []string) error {
	logLevel := slog.LevelInfo
	if c.verbose {
		logLevel = slog.LevelDebug
	}

	// Logs go to stderr, so the JSON output mode stays machine-readable
	logger := slog.New(
		slog.NewTextHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: logLevel},
		),
	)

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Debug("unable to load .env file")
	}

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	// Pin the report year up front, so the output
	// matches the feed that was actually fetched
	year := c.year
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	opts := []treasury.Option{
		treasury.WithLogger(logger),
		treasury.WithYear(year),
		treasury.WithTimeout(c.timeout),
	}

	if c.urlTemplate != "" {
		opts = append(opts, treasury.WithURLTemplate(c.urlTemplate))
	}

	provider := treasury.NewProvider(opts...)

	if !c.jsonOnly {
		logger.Info("fetching treasury yield curve data", "year", year)
	}

	curves, err := provider.Fetch(runCtx)
	if err != nil {
		return c.fail(fmt.Errorf("unable to fetch yield curve data: %w", err))
	}

	if len(curves) == 0 {
		return c.fail(curve.ErrNoData)
	}

	// The provider returns curves sorted by date; the last one is the latest
	latest := curves[len(curves)-1]

	term := curve.TermRates(latest.Rates, c.near, c.next)
	report := types.NewCurveReport(latest, year, &term)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return c.fail(fmt.Errorf("unable to marshal curve report: %w", err))
	}

	if c.jsonOnly {
		_, _ = fmt.Fprintln(c.out, string(out))
	} else {
		c.printReport(latest, term)
	}

	// Save the report, if requested
	if c.output != "" {
		if err := os.WriteFile(c.output, out, 0o644); err != nil {
			return c.fail(fmt.Errorf("unable to save curve report: %w", err))
		}

		if !c.jsonOnly {
			logger.Info("saved latest rates", "path", c.output)
		}
	}

	return nil
}

// printReport renders the yield curve and its term rates as readable text
func (c *fetchCfg) printReport(latest *types.DatedCurve, term types.TermRates) {
	divider := strings.Repeat("=", 60)

	_, _ = fmt.Fprintf(c.out, "\n%s\n", latest.Text())

	_, _ = fmt.Fprintln(c.out, "\n"+divider)
	_, _ = fmt.Fprintln(c.out, "VIX-Style Term Rates (Continuously Compounded APY):")
	_, _ = fmt.Fprintln(c.out, divider)

	_, _ = fmt.Fprintf(
		c.out,
		"Near-term rate (%d days): %.6f (%.2f%%)\n",
		term.NearDays,
		term.NearRate,
		term.NearRate*100,
	)

	_, _ = fmt.Fprintf(
		c.out,
		"Next-term rate (%d days): %.6f (%.2f%%)\n",
		term.NextDays,
		term.NextRate,
		term.NextRate*100,
	)
}

// fail reports the error as a JSON payload in the JSON output mode,
// and passes the error through for the exit status
func (c *fetchCfg) fail(err error) error {
	if !c.jsonOnly {
		return err
	}

	out, mErr := json.MarshalIndent(
		&errorReport{Error: err.Error()},
		"",
		"  ",
	)
	if mErr == nil {
		_, _ = fmt.Fprintln(c.out, string(out))
	}

	return err
}

// errorReport is the JSON error payload for the JSON output mode
type errorReport struct {
	Error string `json:"error"`
}
