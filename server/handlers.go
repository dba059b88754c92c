package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sig-0/tsycurve/curve"
	"github.com/sig-0/tsycurve/storage/types"
)

var (
	errUnableToFetchCurve = errors.New("unable to fetch curve")
	errUnableToFetchDates = errors.New("unable to fetch dates")

	errNoCurveData = errors.New("no curve data")

	errInvalidNearDays = errors.New("invalid near days")
	errInvalidNextDays = errors.New("invalid next days")
	errInvalidDate     = errors.New("invalid date")
)

func (s *Server) LatestCurve(w http.ResponseWriter, r *http.Request) {
	var (
		nearParam = r.URL.Query().Get("near")
		nextParam = r.URL.Query().Get("next")
	)

	// Parse the term horizons (default to the configured values)
	near, err := parseDays(nearParam, s.config.NearTermDays, errInvalidNearDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	next, err := parseDays(nextParam, s.config.NextTermDays, errInvalidNextDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)

		return
	}

	latest, err := s.storage.LatestCurve(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch latest curve",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchCurve,
		)

		return
	}

	if latest == nil {
		writeError(w, http.StatusNotFound, errNoCurveData)

		return
	}

	term := curve.TermRates(latest.Rates, near, next)

	writeJSON(w, http.StatusOK, types.NewCurveReport(latest, 0, &term))
}

func (s *Server) CurveByDate(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(chi.URLParam(r, "date"))
	if date == "" {
		writeError(w, http.StatusBadRequest, errInvalidDate)

		return
	}

	dated, err := s.storage.CurveByDate(r.Context(), date)
	if err != nil {
		s.logger.Debug(
			"unable to fetch curve",
			"date", date,
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchCurve,
		)

		return
	}

	if dated == nil {
		writeError(w, http.StatusNotFound, errNoCurveData)

		return
	}

	writeJSON(w, http.StatusOK, types.NewCurveReport(dated, 0, nil))
}

func (s *Server) Dates(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.ListDates(r.Context())
	if err != nil {
		s.logger.Debug(
			"unable to fetch dates",
			"err", err,
		)

		writeError(
			w,
			http.StatusInternalServerError,
			errUnableToFetchDates,
		)

		return
	}

	resp := &DatesResponse{
		Results: items,
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseDays parses a day-horizon query value, falling back when empty.
// Horizons must be positive whole numbers
func parseDays(raw string, fallback int, errInvalid error) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errInvalid
	}

	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // Fine to ignore
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := &ErrorResponse{
		Error: err.Error(),
	}

	writeJSON(w, status, resp)
}
