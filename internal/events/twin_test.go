package events

import (
	"testing"
	"time"
)

func TestResolveTwinHolyDaysTabulated(t *testing.T) {
	twin, estimated := ResolveTwinHolyDays(2024)
	if estimated {
		t.Fatal("2024 is tabulated and must not be estimated")
	}
	if want := date(2024, time.October, 18); !twin.BirthOfBab.Equal(want) {
		t.Errorf("birth of the Báb = %s, want %s", twin.BirthOfBab.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if want := date(2024, time.October, 19); !twin.BirthOfBahaullah.Equal(want) {
		t.Errorf("birth of Bahá'u'lláh = %s, want %s", twin.BirthOfBahaullah.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestTwinTableConsecutiveDays(t *testing.T) {
	for year := range twinHolyDays {
		twin, estimated := ResolveTwinHolyDays(year)
		if estimated {
			t.Errorf("year %d is tabulated but reported as estimated", year)
		}
		if !twin.BirthOfBahaullah.Equal(twin.BirthOfBab.AddDate(0, 0, 1)) {
			t.Errorf("year %d: twin holy days are not consecutive (%s, %s)",
				year, twin.BirthOfBab.Format("2006-01-02"), twin.BirthOfBahaullah.Format("2006-01-02"))
		}
	}
}

func TestResolveTwinHolyDaysEstimated(t *testing.T) {
	// 2070 is outside the table: closest tabulated year is 2033, the
	// Metonic remainder is 18 and the drift wraps to +167 days from the
	// 2033 dates carried into 2070.
	twin, estimated := ResolveTwinHolyDays(2070)
	if !estimated {
		t.Fatal("2070 is not tabulated and must be estimated")
	}
	if want := date(2071, time.March, 25); !twin.BirthOfBab.Equal(want) {
		t.Errorf("birth of the Báb = %s, want %s", twin.BirthOfBab.Format("2006-01-02"), want.Format("2006-01-02"))
	}
	if !twin.BirthOfBahaullah.Equal(twin.BirthOfBab.AddDate(0, 0, 1)) {
		t.Error("estimated twin holy days must stay on consecutive days")
	}
}

func TestResolveTwinHolyDaysBeforeTable(t *testing.T) {
	twin, estimated := ResolveTwinHolyDays(2014)
	if !estimated {
		t.Fatal("2014 is not tabulated and must be estimated")
	}
	if !twin.BirthOfBahaullah.Equal(twin.BirthOfBab.AddDate(0, 0, 1)) {
		t.Error("estimated twin holy days must stay on consecutive days")
	}
}

func TestClosestTwinYearDeterministic(t *testing.T) {
	if got := closestTwinYear(2034); got != 2033 {
		t.Errorf("closestTwinYear(2034) = %d, want 2033", got)
	}
	if got := closestTwinYear(1990); got != 2015 {
		t.Errorf("closestTwinYear(1990) = %d, want 2015", got)
	}
}
