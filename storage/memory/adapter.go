package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sig-0/tsycurve/storage/types"
)

type Storage struct {
	curves map[string]types.Ladder

	mu sync.RWMutex
}

func NewStorage() *Storage {
	return &Storage{
		curves: make(map[string]types.Ladder),
	}
}

func (s *Storage) SaveCurve(_ context.Context, curve *types.DatedCurve) error {
	rates := curve.Rates.Clone()

	s.mu.Lock()
	s.curves[curve.Date] = rates // date is unique, later saves win
	s.mu.Unlock()

	return nil
}

func (s *Storage) CurveByDate(_ context.Context, date string) (*types.DatedCurve, error) {
	s.mu.RLock()
	rates, ok := s.curves[date]
	s.mu.RUnlock()

	if !ok {
		return nil, nil //nolint:nilnil // valid case
	}

	return &types.DatedCurve{
		Date:  date,
		Rates: rates.Clone(),
	}, nil
}

func (s *Storage) LatestCurve(_ context.Context) (*types.DatedCurve, error) {
	s.mu.RLock()

	var (
		latest string
		found  bool
	)

	for date := range s.curves {
		if !found || date > latest {
			latest = date
			found = true
		}
	}

	if !found {
		s.mu.RUnlock()

		return nil, nil //nolint:nilnil // valid case
	}

	rates := s.curves[latest].Clone()
	s.mu.RUnlock()

	return &types.DatedCurve{
		Date:  latest,
		Rates: rates,
	}, nil
}

func (s *Storage) ListDates(_ context.Context) ([]string, error) {
	s.mu.RLock()

	out := make([]string, 0, len(s.curves))

	for date := range s.curves {
		out = append(out, date)
	}

	s.mu.RUnlock()

	sort.Strings(out)

	return out, nil
}
