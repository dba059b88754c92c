// Package treasury provides the US Treasury daily yield curve provider.
//
// Source: "US Treasury"
// URL: https://home.treasury.gov/resource-center/data-chart-center/interest-rates/pages/xmlview
// Interval: 24 hours
//
// Fetches the daily_treasury_yield_curve XML view for a single year
// (the current UTC year unless pinned) and runs every date group in the
// feed through the curve pipeline:
//
//	extract -> interpolate -> convert
//
// Each feed entry carries the par yields for one publication date as
// BC_* properties (bond-equivalent, percent). The returned curves hold
// continuously-compounded rates on the standard maturity grid, sorted
// by date ascending.
//
// Outbound requests are rate limited to one every two seconds.
package treasury
