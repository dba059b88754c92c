package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/tsycurve/storage/types"
)

func TestPipeline_Process(t *testing.T) {
	t.Parallel()

	t.Run("document to continuous ladders", func(t *testing.T) {
		t.Parallel()

		doc := feedDoc(t,
			`<d:NEW_DATE m:type="Edm.DateTime">2024-01-02</d:NEW_DATE>`+
				`<d:BC_1MONTH m:type="Edm.Double">5.55</d:BC_1MONTH>`+
				`<d:BC_1YEAR m:type="Edm.Double">4.79</d:BC_1YEAR>`+
				`<d:BC_30YEAR m:type="Edm.Double">4.08</d:BC_30YEAR>`,
		)

		pipeline := NewPipeline()

		processed, err := pipeline.Process(doc)
		require.NoError(t, err)
		require.Contains(t, processed, "2024-01-02")

		ladder := processed["2024-01-02"]

		// every target between 30 and 10950 days is covered
		assert.Equal(t, DefaultTargetMaturities(), ladder.Maturities())

		// 5.55% BEY at 30 days: ln((1 + 5.55/200)^2) ≈ 0.054744
		assert.InDelta(t, 0.054744, ladder[30], 1e-5)

		// 60 days sits between the 30 and 365 day quotes before conversion
		raw60 := interpolate(30, 365, 60, 5.55, 4.79)
		want60 := math.Log(math.Pow(1.0+raw60/200.0, 2))
		assert.InDelta(t, want60, ladder[60], 1e-9)
	})

	t.Run("unparsable rate value does not drop the date", func(t *testing.T) {
		t.Parallel()

		doc := feedDoc(t,
			`<d:NEW_DATE m:type="Edm.DateTime">2024-01-02</d:NEW_DATE>`+
				`<d:BC_1MONTH m:type="Edm.Double">garbage</d:BC_1MONTH>`+
				`<d:BC_3MONTH m:type="Edm.Double">5.44</d:BC_3MONTH>`+
				`<d:BC_30YEAR m:type="Edm.Double">4.08</d:BC_30YEAR>`,
		)

		processed, err := NewPipeline().Process(doc)
		require.NoError(t, err)
		require.Contains(t, processed, "2024-01-02")

		ladder := processed["2024-01-02"]

		// 30 and 60 days fall outside the remaining 91..10950 span
		assert.NotContains(t, ladder, 30)
		assert.NotContains(t, ladder, 60)
		assert.Contains(t, ladder, 91)
		assert.Contains(t, ladder, 10950)
	})

	t.Run("date without usable span dropped", func(t *testing.T) {
		t.Parallel()

		// a lone 120 day quote matches no target and bounds nothing
		doc := feedDoc(t,
			`<d:NEW_DATE m:type="Edm.DateTime">2024-01-02</d:NEW_DATE>`+
				`<d:BC_4MONTH m:type="Edm.Double">5.41</d:BC_4MONTH>`,
		)

		processed, err := NewPipeline().Process(doc)
		require.NoError(t, err)

		assert.Empty(t, processed)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		processed, err := NewPipeline().Process([]byte(`not xml`))

		assert.Error(t, err)
		assert.Nil(t, processed)
	})

	t.Run("custom target maturities", func(t *testing.T) {
		t.Parallel()

		doc := feedDoc(t,
			`<d:NEW_DATE m:type="Edm.DateTime">2024-01-02</d:NEW_DATE>`+
				`<d:BC_1MONTH m:type="Edm.Double">5.55</d:BC_1MONTH>`+
				`<d:BC_1YEAR m:type="Edm.Double">4.79</d:BC_1YEAR>`,
		)

		pipeline := NewPipeline(WithTargetMaturities([]int{45, 90}))

		processed, err := pipeline.Process(doc)
		require.NoError(t, err)

		assert.Equal(t, []int{45, 90}, processed["2024-01-02"].Maturities())
	})
}

func TestPipeline_Latest(t *testing.T) {
	t.Parallel()

	t.Run("picks the greatest date", func(t *testing.T) {
		t.Parallel()

		processed := map[string]types.Ladder{
			"2024-01-02": {30: 0.052},
			"2024-01-03": {30: 0.053},
			"2023-12-29": {30: 0.054},
		}

		latest, err := NewPipeline().Latest(processed)
		require.NoError(t, err)

		assert.Equal(t, "2024-01-03", latest.Date)
		assert.Equal(t, types.Ladder{30: 0.053}, latest.Rates)
	})

	t.Run("no processed data", func(t *testing.T) {
		t.Parallel()

		latest, err := NewPipeline().Latest(nil)

		assert.ErrorIs(t, err, ErrNoData)
		assert.Nil(t, latest)
	})
}

func TestTermRates(t *testing.T) {
	t.Parallel()

	rates := types.Ladder{
		30:  0.0500,
		60:  0.0510,
		91:  0.0520,
		365: 0.0480,
	}

	t.Run("near and next resolved independently", func(t *testing.T) {
		t.Parallel()

		term := TermRates(rates, 30, 60)

		assert.InDelta(t, 0.0500, term.NearRate, 1e-9)
		assert.InDelta(t, 0.0510, term.NextRate, 1e-9)
		assert.Equal(t, 30, term.NearDays)
		assert.Equal(t, 60, term.NextDays)
	})

	t.Run("interpolated horizons", func(t *testing.T) {
		t.Parallel()

		term := TermRates(rates, 45, 75)

		assert.InDelta(t, 0.0505, term.NearRate, 1e-9)
		assert.InDelta(t, interpolate(60, 91, 75, 0.0510, 0.0520), term.NextRate, 1e-9)
	})

	t.Run("horizons outside the ladder clamp", func(t *testing.T) {
		t.Parallel()

		term := TermRates(rates, 7, 10000)

		assert.InDelta(t, 0.0500, term.NearRate, 1e-9)
		assert.InDelta(t, 0.0480, term.NextRate, 1e-9)
	})

	t.Run("next before near accepted", func(t *testing.T) {
		t.Parallel()

		term := TermRates(rates, 60, 30)

		assert.InDelta(t, 0.0510, term.NearRate, 1e-9)
		assert.InDelta(t, 0.0500, term.NextRate, 1e-9)
		assert.Equal(t, 60, term.NearDays)
		assert.Equal(t, 30, term.NextDays)
	})
}
