package almanac

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/subtlepseudonym/almanac/observability"
)

type ReportKind string

const (
	ReportJulian   ReportKind = "julian"
	ReportSidereal ReportKind = "sidereal"
	ReportScales   ReportKind = "scales"
)

func ParseReportKind(s string) (ReportKind, error) {
	switch kind := ReportKind(s); kind {
	case ReportJulian, ReportSidereal, ReportScales:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown report %q", s)
	}
}

// Report logs a reading of the current instant
//
// This implements robfig/cron.Job
type Report struct {
	Kind     ReportKind
	Observer *Observer
	Clock    clockwork.Clock
	Logger   *slog.Logger
	Metrics  *observability.Metrics
}

func (r Report) Run() {
	reading, err := r.Observer.Observe(r.Clock.Now())
	if err != nil {
		r.Logger.Error("observe", "report", r.Kind, "error", err)
		r.Metrics.ReportsRun.WithLabelValues(string(r.Kind), "error").Inc()
		return
	}

	attrs := []any{"report", r.Kind, "observer", r.Observer.Location.Name}
	switch r.Kind {
	case ReportJulian:
		attrs = append(attrs,
			"utc", reading.Calendar,
			"jd", reading.UTC.Value(),
			"mjd", reading.Modified.Value(),
		)
	case ReportSidereal:
		attrs = append(attrs,
			"gmst", reading.GMST.String(),
			"gast", reading.GAST.String(),
			"lmst", reading.LMST.String(),
			"last", reading.LAST.String(),
		)
	case ReportScales:
		attrs = append(attrs,
			"utc", reading.UTC.Value(),
			"tt", reading.TT.Value(),
			"tai", reading.TAI.Value(),
			"ut1", reading.UT1.Value(),
			"delta_t", reading.DeltaT,
			"ut1_minus_utc", reading.UT1MinusUTC,
		)
	}

	r.Logger.Info("reading", attrs...)
	r.Metrics.ReportsRun.WithLabelValues(string(r.Kind), "success").Inc()
}
