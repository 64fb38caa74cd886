package events

import "time"

// TwinDates holds the resolved civil dates of the Twin Holy Days for one
// Gregorian year. The two dates always fall on consecutive civil days.
type TwinDates struct {
	BirthOfBab       time.Time
	BirthOfBahaullah time.Time
}

// ResolveTwinHolyDays returns the civil dates of the Birth of the Báb and the
// Birth of Bahá'u'lláh for the given Gregorian year.
//
// Years present in the curated table are returned verbatim; they are official
// announcements and are never recomputed. For any other year the dates are
// estimated from the closest tabulated year using the 19-year Metonic cycle
// and the ~11-day annual lunar drift. The second return value reports whether
// the estimator was used: estimated dates carry no accuracy guarantee and
// must be surfaced to the caller as approximate.
func ResolveTwinHolyDays(year int) (TwinDates, bool) {
	if entry, ok := twinHolyDays[year]; ok {
		return TwinDates{
			BirthOfBab:       civilDay(year, entry.bab),
			BirthOfBahaullah: civilDay(year, entry.bahaullah),
		}, false
	}

	closest := closestTwinYear(year)
	entry := twinHolyDays[closest]

	// Reduce the year distance by whole Metonic cycles; only the remainder
	// contributes drift, at roughly -11 days per year, wrapped into one
	// solar year.
	remainder := euclidMod(year-closest, 19)
	shift := euclidMod(remainder*-11, 365)

	return TwinDates{
		BirthOfBab:       civilDay(year, entry.bab).AddDate(0, 0, shift),
		BirthOfBahaullah: civilDay(year, entry.bahaullah).AddDate(0, 0, shift),
	}, true
}

// closestTwinYear returns the tabulated year nearest to the given year,
// preferring the earlier one on ties so the result is deterministic.
func closestTwinYear(year int) int {
	best := 0
	for tabulated := range twinHolyDays {
		if best == 0 {
			best = tabulated
			continue
		}
		d, bd := absInt(year-tabulated), absInt(year-best)
		if d < bd || (d == bd && tabulated < best) {
			best = tabulated
		}
	}
	return best
}

func civilDay(year int, md monthDay) time.Time {
	return time.Date(year, md.month, md.day, 0, 0, 0, 0, time.UTC)
}

// euclidMod returns a mod m with a non-negative result.
func euclidMod(a, m int) int {
	return ((a % m) + m) % m
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
