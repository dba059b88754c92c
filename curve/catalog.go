package curve

// fieldToDays maps the feed's constant-maturity field names to their
// maturity in days
var fieldToDays = map[string]int{
	"BC_1MONTH": 30,
	"BC_2MONTH": 60,
	"BC_3MONTH": 91,
	"BC_4MONTH": 120,
	"BC_6MONTH": 182,
	"BC_1YEAR":  365,
	"BC_2YEAR":  730,
	"BC_3YEAR":  1095,
	"BC_5YEAR":  1825,
	"BC_7YEAR":  2555,
	"BC_10YEAR": 3650,
	"BC_20YEAR": 7300,
	"BC_30YEAR": 10950,
}

// defaultTargetMaturities is the standard reporting maturity set, in days.
// The feed is not guaranteed to publish every one of these; missing points
// are interpolated
var defaultTargetMaturities = []int{
	30,    // 1 month
	60,    // 2 months
	91,    // 3 months
	182,   // 6 months
	365,   // 1 year
	730,   // 2 years
	1095,  // 3 years
	1825,  // 5 years
	2555,  // 7 years
	3650,  // 10 years
	7300,  // 20 years
	10950, // 30 years
}

// FieldDays resolves a feed rate field name to its maturity in days.
// Unknown field names report ok == false and are skipped by callers,
// never treated as errors
func FieldDays(field string) (int, bool) {
	days, ok := fieldToDays[field]

	return days, ok
}

// DefaultTargetMaturities returns a copy of the standard reporting
// maturity set
func DefaultTargetMaturities() []int {
	out := make([]int, len(defaultTargetMaturities))
	copy(out, defaultTargetMaturities)

	return out
}
