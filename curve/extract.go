package curve

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sig-0/tsycurve/storage/types"
)

const (
	dateField       = "NEW_DATE"
	rateFieldPrefix = "BC_"
)

// Extractor parses raw feed documents into per-date raw yield ladders
type Extractor struct {
	logger *slog.Logger
}

// NewExtractor creates a new feed extractor. A nil logger discards
// diagnostics
func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = noopLogger
	}

	return &Extractor{
		logger: logger,
	}
}

// feedDocument is the shape of the daily yield curve Atom feed.
// Element matching is by local name only, so the feed's namespace
// prefixes (m:, d:) never need textual stripping
type feedDocument struct {
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	Properties propertyList `xml:"content>properties"`
}

// propertyList collects the dynamic property elements of an entry.
// The rate fields vary by date, so the set can't be a fixed struct
type propertyList struct {
	fields []property
}

type property struct {
	name  string
	value string
}

func (p *propertyList) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var value string

			if err := d.DecodeElement(&value, &t); err != nil {
				return err
			}

			p.fields = append(p.fields, property{
				name:  t.Name.Local,
				value: strings.TrimSpace(value),
			})
		case xml.EndElement:
			return nil
		}
	}
}

// Extract parses the raw feed document into a mapping from date string
// to raw ladder (maturity in days -> bond-equivalent yield, percent).
// Entries without a date or without a single usable rate are omitted;
// individual fields that fail to resolve or parse are skipped
func (e *Extractor) Extract(doc []byte) (map[string]types.Ladder, error) {
	var feed feedDocument

	if err := xml.Unmarshal(doc, &feed); err != nil {
		return nil, fmt.Errorf("unable to parse feed document: %w", err)
	}

	out := make(map[string]types.Ladder, len(feed.Entries))

	for _, entry := range feed.Entries {
		date, rates := e.extractEntry(entry.Properties.fields)
		if date == "" || len(rates) == 0 {
			continue
		}

		out[date] = rates
	}

	return out, nil
}

// extractEntry reads the date and rate fields of a single feed entry
func (e *Extractor) extractEntry(fields []property) (string, types.Ladder) {
	var (
		date  string
		rates = make(types.Ladder)
	)

	for _, field := range fields {
		switch {
		case field.name == dateField && field.value != "":
			date = field.value
		case strings.HasPrefix(field.name, rateFieldPrefix) && field.value != "":
			days, ok := FieldDays(field.name)
			if !ok {
				continue // display-only and unmapped fields
			}

			rate, err := strconv.ParseFloat(field.value, 64)
			if err != nil {
				e.logger.Warn(
					"invalid rate value",
					"field", field.name,
					"value", field.value,
				)

				continue
			}

			rates[days] = rate
		}
	}

	return date, rates
}
