package timescale

import (
	"sort"
)

const mjdZero = 2400000.5

// LeapSecond is one row of the TAI - UTC table. From the UTC Julian
// day Effective onwards, TAI - UTC in seconds is
//
//	Offset + (MJD - ReferenceMJD) * Rate
//
// Rate is only non-zero for the drifting offsets in use before 1972.
type LeapSecond struct {
	Effective    float64
	Offset       float64
	ReferenceMJD float64
	Rate         float64
}

// LeapSecondTable is ordered by Effective
type LeapSecondTable []LeapSecond

// builtinLeapSeconds is the TAI - UTC history published by the USNO
// in tai-utc.dat, with the step of 1 January 2017 as the latest entry.
//
// Values after 1972 match the IETF list:
// https://www.ietf.org/timezones/data/leap-seconds.list
var builtinLeapSeconds = LeapSecondTable{
	{2437300.5, 1.4228180, 37300, 0.001296},  // 1961 Jan 1
	{2437512.5, 1.3728180, 37300, 0.001296},  // 1961 Aug 1
	{2437665.5, 1.8458580, 37665, 0.0011232}, // 1962 Jan 1
	{2438334.5, 1.9458580, 37665, 0.0011232}, // 1963 Nov 1
	{2438395.5, 3.2401300, 38761, 0.001296},  // 1964 Jan 1
	{2438486.5, 3.3401300, 38761, 0.001296},  // 1964 Apr 1
	{2438639.5, 3.4401300, 38761, 0.001296},  // 1964 Sep 1
	{2438761.5, 3.5401300, 38761, 0.001296},  // 1965 Jan 1
	{2438820.5, 3.6401300, 38761, 0.001296},  // 1965 Mar 1
	{2438942.5, 3.7401300, 38761, 0.001296},  // 1965 Jul 1
	{2439004.5, 3.8401300, 38761, 0.001296},  // 1965 Sep 1
	{2439126.5, 4.3131700, 39126, 0.002592},  // 1966 Jan 1
	{2439887.5, 4.2131700, 39126, 0.002592},  // 1968 Feb 1
	{2441317.5, 10, 0, 0},                    // 1972 Jan 1
	{2441499.5, 11, 0, 0},                    // 1972 Jul 1
	{2441683.5, 12, 0, 0},                    // 1973 Jan 1
	{2442048.5, 13, 0, 0},                    // 1974 Jan 1
	{2442413.5, 14, 0, 0},                    // 1975 Jan 1
	{2442778.5, 15, 0, 0},                    // 1976 Jan 1
	{2443144.5, 16, 0, 0},                    // 1977 Jan 1
	{2443509.5, 17, 0, 0},                    // 1978 Jan 1
	{2443874.5, 18, 0, 0},                    // 1979 Jan 1
	{2444239.5, 19, 0, 0},                    // 1980 Jan 1
	{2444786.5, 20, 0, 0},                    // 1981 Jul 1
	{2445151.5, 21, 0, 0},                    // 1982 Jul 1
	{2445516.5, 22, 0, 0},                    // 1983 Jul 1
	{2446247.5, 23, 0, 0},                    // 1985 Jul 1
	{2447161.5, 24, 0, 0},                    // 1988 Jan 1
	{2447892.5, 25, 0, 0},                    // 1990 Jan 1
	{2448257.5, 26, 0, 0},                    // 1991 Jan 1
	{2448804.5, 27, 0, 0},                    // 1992 Jul 1
	{2449169.5, 28, 0, 0},                    // 1993 Jul 1
	{2449534.5, 29, 0, 0},                    // 1994 Jul 1
	{2450083.5, 30, 0, 0},                    // 1996 Jan 1
	{2450630.5, 31, 0, 0},                    // 1997 Jul 1
	{2451179.5, 32, 0, 0},                    // 1999 Jan 1
	{2453736.5, 33, 0, 0},                    // 2006 Jan 1
	{2454832.5, 34, 0, 0},                    // 2009 Jan 1
	{2456109.5, 35, 0, 0},                    // 2012 Jul 1
	{2457204.5, 36, 0, 0},                    // 2015 Jul 1
	{2457754.5, 37, 0, 0},                    // 2017 Jan 1
}

// BuiltinLeapSeconds returns a copy of the compiled-in table
func BuiltinLeapSeconds() LeapSecondTable {
	table := make(LeapSecondTable, len(builtinLeapSeconds))
	copy(table, builtinLeapSeconds)
	return table
}

// TAIMinusUTC returns TAI - UTC in seconds at the UTC Julian day jd.
// Before 1961 UTC did not exist and zero is returned.
//
// The entry in effect is the last whose Effective value is not
// after jd.
func (t LeapSecondTable) TAIMinusUTC(jd float64) float64 {
	idx := sort.Search(len(t), func(i int) bool {
		return jd < t[i].Effective
	})
	if idx == 0 {
		return 0
	}

	entry := t[idx-1]
	return entry.Offset + (jd-mjdZero-entry.ReferenceMJD)*entry.Rate
}

// Merge returns t with every row of older that takes effect before
// the first row of t prepended. It is used to keep the pre-1972
// history when t comes from a list that starts in 1972.
func (t LeapSecondTable) Merge(older LeapSecondTable) LeapSecondTable {
	if len(t) == 0 {
		return append(LeapSecondTable{}, older...)
	}

	var merged LeapSecondTable
	for _, entry := range older {
		if entry.Effective < t[0].Effective {
			merged = append(merged, entry)
		}
	}
	return append(merged, t...)
}
