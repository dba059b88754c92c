package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-0/tsycurve/storage/types"
)

func TestStorage_SaveAndFetch(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		s   = NewStorage()
	)

	curves := []*types.DatedCurve{
		{Date: "2024-01-03", Rates: types.Ladder{30: 0.053}},
		{Date: "2024-01-02", Rates: types.Ladder{30: 0.052}},
		{Date: "2023-12-29", Rates: types.Ladder{30: 0.054}},
	}

	for _, curve := range curves {
		require.NoError(t, s.SaveCurve(ctx, curve))
	}

	t.Run("fetch by date", func(t *testing.T) {
		t.Parallel()

		curve, err := s.CurveByDate(ctx, "2024-01-02")
		require.NoError(t, err)
		require.NotNil(t, curve)

		assert.Equal(t, "2024-01-02", curve.Date)
		assert.Equal(t, types.Ladder{30: 0.052}, curve.Rates)
	})

	t.Run("fetch missing date", func(t *testing.T) {
		t.Parallel()

		curve, err := s.CurveByDate(ctx, "2020-01-01")
		require.NoError(t, err)

		assert.Nil(t, curve)
	})

	t.Run("latest is the greatest date", func(t *testing.T) {
		t.Parallel()

		curve, err := s.LatestCurve(ctx)
		require.NoError(t, err)
		require.NotNil(t, curve)

		assert.Equal(t, "2024-01-03", curve.Date)
	})

	t.Run("dates listed ascending", func(t *testing.T) {
		t.Parallel()

		dates, err := s.ListDates(ctx)
		require.NoError(t, err)

		assert.Equal(t, []string{"2023-12-29", "2024-01-02", "2024-01-03"}, dates)
	})
}

func TestStorage_Empty(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		s   = NewStorage()
	)

	curve, err := s.LatestCurve(ctx)
	require.NoError(t, err)
	assert.Nil(t, curve)

	dates, err := s.ListDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestStorage_SaveReplacesDate(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		s   = NewStorage()
	)

	require.NoError(t, s.SaveCurve(ctx, &types.DatedCurve{
		Date:  "2024-01-02",
		Rates: types.Ladder{30: 0.052},
	}))
	require.NoError(t, s.SaveCurve(ctx, &types.DatedCurve{
		Date:  "2024-01-02",
		Rates: types.Ladder{30: 0.055, 60: 0.054},
	}))

	curve, err := s.CurveByDate(ctx, "2024-01-02")
	require.NoError(t, err)
	require.NotNil(t, curve)

	assert.Equal(t, types.Ladder{30: 0.055, 60: 0.054}, curve.Rates)

	dates, err := s.ListDates(ctx)
	require.NoError(t, err)
	assert.Len(t, dates, 1)
}

func TestStorage_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	var (
		ctx = context.Background()
		s   = NewStorage()
	)

	original := &types.DatedCurve{
		Date:  "2024-01-02",
		Rates: types.Ladder{30: 0.052},
	}

	require.NoError(t, s.SaveCurve(ctx, original))

	// mutating the saved value must not reach the store
	original.Rates[30] = 0.9

	fetched, err := s.CurveByDate(ctx, "2024-01-02")
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.InDelta(t, 0.052, fetched.Rates[30], 1e-12)

	// mutating a fetched value must not reach the store either
	fetched.Rates[30] = 0.9

	refetched, err := s.CurveByDate(ctx, "2024-01-02")
	require.NoError(t, err)

	assert.InDelta(t, 0.052, refetched.Rates[30], 1e-12)
}
