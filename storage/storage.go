package storage

import (
	"context"

	"github.com/sig-0/tsycurve/storage/types"
)

// Storage is an abstraction over processed yield curve data
type Storage interface {
	// SaveCurve saves the processed curve for its date, replacing any
	// earlier curve stored under the same date
	SaveCurve(context.Context, *types.DatedCurve) error

	// CurveByDate fetches the curve stored for the given date string
	CurveByDate(context.Context, string) (*types.DatedCurve, error)

	// LatestCurve fetches the curve with the greatest stored date
	LatestCurve(context.Context) (*types.DatedCurve, error)

	// ListDates lists the dates with stored curves, ascending
	ListDates(context.Context) ([]string, error)
}
