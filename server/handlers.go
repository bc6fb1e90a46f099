package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/subtlepseudonym/almanac/julian"
)

type julianDayResponse struct {
	JulianDay float64 `json:"jd"`
	Modified  float64 `json:"mjd"`
	Calendar  string  `json:"calendar"`
	Epoch     string  `json:"epoch"`
}

type siderealResponse struct {
	JulianDay float64      `json:"jd"`
	GMST      julian.Hour  `json:"gmst"`
	GAST      julian.Hour  `json:"gast"`
	Longitude *float64     `json:"longitude,omitempty"`
	LMST      *julian.Hour `json:"lmst,omitempty"`
	LAST      *julian.Hour `json:"last,omitempty"`
	Formatted []string     `json:"formatted"`
}

type scalesResponse struct {
	TT          float64 `json:"tt"`
	TAI         float64 `json:"tai"`
	UT1         float64 `json:"ut1"`
	UTC         float64 `json:"utc"`
	DeltaT      float64 `json:"deltaT"`
	LeapSeconds float64 `json:"leapSeconds"`
	UT1MinusUTC float64 `json:"ut1MinusUTC"`
}

func newJulianDayResponse(jd julian.JulianDay) julianDayResponse {
	return julianDayResponse{
		JulianDay: jd.Value(),
		Modified:  jd.Modified().Value(),
		Calendar:  jd.CalendarDateTime().String(),
		Epoch:     jd.String(),
	}
}

func parseJulianDay(r *http.Request) (julian.JulianDay, error) {
	param := chi.URLParam(r, "jd")
	value, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return julian.JulianDay{}, fmt.Errorf("parse julian day %q: %w", param, julian.ErrDomain)
	}
	return julian.New(value)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleJulianDay converts ?date=2006-01-02T15:04:05Z to a Julian day
func (s *Server) handleJulianDay(w http.ResponseWriter, r *http.Request) {
	date, err := julian.ParseCalendarDateTime(r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, "jd", err)
		return
	}

	jd, err := date.JulianDay()
	if err != nil {
		s.writeError(w, "jd", err)
		return
	}

	writeJSON(w, http.StatusOK, newJulianDayResponse(jd))
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	jd, err := parseJulianDay(r)
	if err != nil {
		s.writeError(w, "calendar", err)
		return
	}

	writeJSON(w, http.StatusOK, newJulianDayResponse(jd))
}

// handleSidereal returns Greenwich sidereal time for a UT1 Julian day,
// and local sidereal time when ?longitude= is given (degrees west)
func (s *Server) handleSidereal(w http.ResponseWriter, r *http.Request) {
	jd, err := parseJulianDay(r)
	if err != nil {
		s.writeError(w, "sidereal", err)
		return
	}

	sidereal := s.observer.Sidereal()
	res := siderealResponse{
		JulianDay: jd.Value(),
		GMST:      sidereal.MeanGreenwich(jd),
		GAST:      sidereal.ApparentGreenwich(jd),
	}
	res.Formatted = []string{res.GMST.String(), res.GAST.String()}

	if param := r.URL.Query().Get("longitude"); param != "" {
		longitude, err := strconv.ParseFloat(param, 64)
		if err != nil {
			s.writeError(w, "sidereal", fmt.Errorf("parse longitude %q: %w", param, julian.ErrDomain))
			return
		}

		lmst, err := sidereal.MeanLocal(jd, longitude)
		if err != nil {
			s.writeError(w, "sidereal", err)
			return
		}
		last, err := sidereal.ApparentLocal(jd, longitude)
		if err != nil {
			s.writeError(w, "sidereal", err)
			return
		}

		res.Longitude = &longitude
		res.LMST = &lmst
		res.LAST = &last
		res.Formatted = append(res.Formatted, lmst.String(), last.String())
	}

	writeJSON(w, http.StatusOK, res)
}

// handleScales takes a TT Julian day and expresses it on every other
// scale. Offsets are in seconds.
func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	tt, err := parseJulianDay(r)
	if err != nil {
		s.writeError(w, "scales", err)
		return
	}

	scales := s.observer.TimeScales()
	utc := scales.TTtoUTC(tt)
	writeJSON(w, http.StatusOK, scalesResponse{
		TT:          tt.Value(),
		TAI:         scales.TTtoTAI(tt).Value(),
		UT1:         scales.TTtoUT1(tt).Value(),
		UTC:         utc.Value(),
		DeltaT:      scales.DeltaT(tt).Seconds(),
		LeapSeconds: scales.CumulativeLeapSeconds(utc).Seconds(),
		UT1MinusUTC: scales.UT1minusUTC(utc).Seconds(),
	})
}

func (s *Server) handleNow(w http.ResponseWriter, _ *http.Request) {
	reading, err := s.observer.Observe(s.clock.Now())
	if err != nil {
		s.writeError(w, "now", err)
		return
	}

	writeJSON(w, http.StatusOK, reading)
}
