package curve

import (
	"math"

	"github.com/sig-0/tsycurve/storage/types"
)

// ToContinuous converts a ladder of bond-equivalent yields (semiannual
// compounding, percent units) to continuously-compounded rates:
//
//	APY = (1 + BEY/200)^2 - 1
//	r_t = ln(1 + APY)
//
// The input is assumed valid for BEY > -200 so that 1+APY stays
// positive; values outside that domain are a caller contract violation
func ToContinuous(rates types.Ladder) types.Ladder {
	out := make(types.Ladder, len(rates))

	for days, bey := range rates {
		apy := math.Pow(1.0+bey/200.0, 2) - 1.0

		out[days] = math.Log(1.0 + apy)
	}

	return out
}
