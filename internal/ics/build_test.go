package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/bahai-tools/calendar-api/internal/events"
)

func civil(y int, m time.Month, d int) events.CivilDate {
	return events.CivilDate{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestAddEvents(t *testing.T) {
	cal := NewCalendar("es")
	AddEvents(cal, []events.Event{
		{
			Key:           "nawruz",
			Name:          "Naw-Rúz",
			Description:   "Año nuevo Bahá'í",
			BadiMonth:     1,
			BadiMonthName: "Bahá",
			BadiDay:       1,
			GregorianDate: civil(2024, time.March, 21),
			URL:           "https://www.bahai.org/es",
		},
		{
			Key:           "birthBab",
			Name:          "Nacimiento del Báb",
			BadiMonth:     12,
			BadiMonthName: "'Ilm",
			BadiDay:       5,
			GregorianDate: civil(2024, time.October, 18),
		},
	})

	out := string(Serialize(cal))

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("got %d VEVENTs, want 2", got)
	}
	if !strings.Contains(out, "SUMMARY:Naw-Rúz") {
		t.Error("missing naw-ruz summary")
	}
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20240321") {
		t.Error("naw-ruz is not an all-day event on 2024-03-21")
	}
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20241018") {
		t.Error("birth of the Báb is not an all-day event on 2024-10-18")
	}
	if !strings.Contains(out, "PRODID:-//Bahá'í Calendar//ES") {
		t.Error("missing product id")
	}
}

func TestAddMonths(t *testing.T) {
	cal := NewCalendar("en")
	AddMonths(cal, "Bahá'í Month", []events.MonthStart{
		{
			BadiMonth:     1,
			BadiMonthName: "Bahá (Splendour)",
			GregorianDate: civil(2024, time.March, 21),
			Description:   "First month of the Bahá'í year.",
			Info:          "Begins at sunset on the previous day",
		},
		{
			BadiMonth:     0,
			BadiMonthName: "Ayyám-i-Há (Intercalary Days)",
			GregorianDate: civil(2025, time.February, 26),
		},
	})

	out := string(Serialize(cal))

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("got %d VEVENTs, want 2", got)
	}
	if !strings.Contains(out, "Bahá'í Month Bahá (Splendour)") {
		t.Error("named month summary should carry the title prefix")
	}
	if strings.Contains(out, "Bahá'í Month Ayyám-i-Há") {
		t.Error("intercalary period summary must not carry the title prefix")
	}
}
