// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ifcapi provides a JSON HTTP API for converting Gregorian dates
// to the International Fixed Calendar.
//
// The following endpoints are supported, all accept an optional
// scheme=original|proposed query parameter where relevant:
//
//	GET /convert/{date}  convert a single date, eg. /convert/2000-06-17
//	GET /year/{year}     convert every date in a year
//	GET /leap/{year}     report whether year is a leap year
//
// Errors are returned as a jsonapi.ErrorResponse. The router is intended
// to be served via webapp.NewHTTPServer and webapp.ServeWithShutdown.
package ifcapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cloudeng.io/ifc"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/webapp/jsonapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Conversion is the response for a single date.
type Conversion struct {
	Gregorian ifc.CalendarDate `json:"gregorian" yaml:"gregorian"`
	Scheme    ifc.Scheme       `json:"scheme" yaml:"scheme"`
	DayOfYear int              `json:"day_of_year" yaml:"day_of_year"`
	IFC       ifc.Date         `json:"ifc" yaml:"ifc"`
}

// NewConversion returns the Conversion for date using scheme.
func NewConversion(date ifc.CalendarDate, scheme ifc.Scheme) Conversion {
	return Conversion{
		Gregorian: date,
		Scheme:    scheme,
		DayOfYear: ifc.DayOfYear(date),
		IFC:       ifc.Convert(date, scheme),
	}
}

// YearResponse is the response for the year endpoint.
type YearResponse struct {
	Year   int          `json:"year" yaml:"year"`
	Scheme ifc.Scheme   `json:"scheme" yaml:"scheme"`
	Days   []Conversion `json:"days" yaml:"days"`
}

// NewYearResponse returns the conversions for every day in year.
func NewYearResponse(year int, scheme ifc.Scheme) YearResponse {
	resp := YearResponse{
		Year:   year,
		Scheme: scheme,
		Days:   make([]Conversion, 0, ifc.DaysInYear(year)),
	}
	for cd := range ifc.Dates(year) {
		resp.Days = append(resp.Days, NewConversion(cd, scheme))
	}
	return resp
}

// LeapResponse is the response for the leap endpoint.
type LeapResponse struct {
	Year int  `json:"year" yaml:"year"`
	Leap bool `json:"leap" yaml:"leap"`
	Days int  `json:"days" yaml:"days"`
}

// NewLeapResponse returns the LeapResponse for year.
func NewLeapResponse(year int) LeapResponse {
	return LeapResponse{Year: year, Leap: ifc.IsLeapYear(year), Days: ifc.DaysInYear(year)}
}

var errBadRequest = errors.New("bad request")

type handlers struct {
	scheme ifc.Scheme
}

// NewRouter returns a chi.Router that serves the API. The supplied scheme
// is used for requests that do not specify one.
func NewRouter(scheme ifc.Scheme) chi.Router {
	h := &handlers{scheme: scheme}
	router := chi.NewRouter()
	router.Use(middleware.RequestID, logRequests, middleware.Recoverer)
	router.Get("/convert/{date}", h.convert)
	router.Get("/year/{year}", h.year)
	router.Get("/leap/{year}", h.leap)
	router.NotFound(func(rw http.ResponseWriter, _ *http.Request) {
		jsonapi.WriteErrorMsg(rw, "not found", http.StatusNotFound)
	})
	return router
}

func (h *handlers) schemeParam(r *http.Request) (ifc.Scheme, error) {
	val := r.URL.Query().Get("scheme")
	if len(val) == 0 {
		return h.scheme, nil
	}
	s, err := ifc.ParseScheme(val)
	if err != nil {
		return h.scheme, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return s, nil
}

func yearParam(r *http.Request) (int, error) {
	val := chi.URLParam(r, "year")
	y, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid year %q", errBadRequest, val)
	}
	return y, nil
}

func (h *handlers) convert(rw http.ResponseWriter, r *http.Request) {
	scheme, err := h.schemeParam(r)
	if err != nil {
		writeError(rw, err, http.StatusBadRequest)
		return
	}
	date, err := ifc.ParseCalendarDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(rw, err, http.StatusBadRequest)
		return
	}
	writeResponse(r, rw, NewConversion(date, scheme))
}

func (h *handlers) year(rw http.ResponseWriter, r *http.Request) {
	scheme, err := h.schemeParam(r)
	if err != nil {
		writeError(rw, err, http.StatusBadRequest)
		return
	}
	year, err := yearParam(r)
	if err != nil {
		writeError(rw, err, http.StatusBadRequest)
		return
	}
	writeResponse(r, rw, NewYearResponse(year, scheme))
}

func (h *handlers) leap(rw http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeError(rw, err, http.StatusBadRequest)
		return
	}
	writeResponse(r, rw, NewLeapResponse(year))
}

func writeResponse(r *http.Request, rw http.ResponseWriter, resp any) {
	if err := WriteResponse(rw, resp); err != nil {
		ctxlog.Logger(r.Context()).Error("failed to write response", "path", r.URL.Path, "error", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		ctxlog.Logger(r.Context()).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
