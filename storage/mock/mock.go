package mock

import (
	"context"

	"github.com/sig-0/tsycurve/storage/types"
)

type (
	SaveCurveDelegate   func(context.Context, *types.DatedCurve) error
	CurveByDateDelegate func(context.Context, string) (*types.DatedCurve, error)
	LatestCurveDelegate func(context.Context) (*types.DatedCurve, error)
	ListDatesDelegate   func(context.Context) ([]string, error)
)

type Storage struct {
	SaveCurveFn   SaveCurveDelegate
	CurveByDateFn CurveByDateDelegate
	LatestCurveFn LatestCurveDelegate
	ListDatesFn   ListDatesDelegate
}

func (m *Storage) SaveCurve(ctx context.Context, curve *types.DatedCurve) error {
	if m.SaveCurveFn != nil {
		return m.SaveCurveFn(ctx, curve)
	}

	return nil
}

func (m *Storage) CurveByDate(ctx context.Context, date string) (*types.DatedCurve, error) {
	if m.CurveByDateFn != nil {
		return m.CurveByDateFn(ctx, date)
	}

	return nil, nil
}

func (m *Storage) LatestCurve(ctx context.Context) (*types.DatedCurve, error) {
	if m.LatestCurveFn != nil {
		return m.LatestCurveFn(ctx)
	}

	return nil, nil
}

func (m *Storage) ListDates(ctx context.Context) ([]string, error) {
	if m.ListDatesFn != nil {
		return m.ListDatesFn(ctx)
	}

	return nil, nil
}
