package almanac

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtlepseudonym/almanac/julian"
	"github.com/subtlepseudonym/almanac/observability"
)

func nan() float64 {
	return math.NaN()
}

func newTestReport(kind ReportKind, location Location) (Report, *bytes.Buffer) {
	var buf bytes.Buffer
	return Report{
		Kind:     kind,
		Observer: NewObserver(location, julian.DefaultTimeScales),
		Clock:    clockwork.NewFakeClockAt(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)),
		Logger:   slog.New(slog.NewJSONHandler(&buf, nil)),
		Metrics:  observability.NewMetricsForTesting(),
	}, &buf
}

func TestReport_Julian(t *testing.T) {
	report, buf := newTestReport(ReportJulian, greenwich)
	report.Run()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "reading", entry["msg"])
	assert.Equal(t, "julian", entry["report"])
	assert.Equal(t, "greenwich", entry["observer"])
	assert.Equal(t, 2451545.0, entry["jd"])
	assert.Equal(t, 51544.5, entry["mjd"])
	assert.Equal(t, "2000-01-01T12:00:00.000000000Z", entry["utc"])

	assert.Equal(t, 1.0, testutil.ToFloat64(report.Metrics.ReportsRun.WithLabelValues("julian", "success")))
}

func TestReport_Sidereal(t *testing.T) {
	report, buf := newTestReport(ReportSidereal, greenwich)
	report.Run()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, entry["gmst"], entry["lmst"])
	assert.Contains(t, entry["gmst"], "18h41m")
}

func TestReport_Scales(t *testing.T) {
	report, buf := newTestReport(ReportScales, greenwich)
	report.Run()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.InDelta(t, 63.86, entry["delta_t"], 1e-3)
	assert.InDelta(t, 0.324, entry["ut1_minus_utc"], 1e-6)
}

func TestReport_UsesClock(t *testing.T) {
	report, buf := newTestReport(ReportJulian, greenwich)
	clock := clockwork.NewFakeClockAt(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	report.Clock = clock

	clock.Advance(36 * time.Hour)
	report.Run()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, 2451546.5, entry["jd"])
}

func TestReport_Error(t *testing.T) {
	report, buf := newTestReport(ReportSidereal, Location{Longitude: nan()})
	report.Run()

	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(report.Metrics.ReportsRun.WithLabelValues("sidereal", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(report.Metrics.ReportsRun.WithLabelValues("sidereal", "success")))
}

func TestParseReportKind(t *testing.T) {
	for _, s := range []string{"julian", "sidereal", "scales"} {
		kind, err := ParseReportKind(s)
		require.NoError(t, err)
		assert.Equal(t, ReportKind(s), kind)
	}

	_, err := ParseReportKind("weather")
	assert.Error(t, err)
}
