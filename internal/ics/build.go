// Package ics serializes derived Bahá'í events and month starts into an
// iCalendar byte stream of all-day entries.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/bahai-tools/calendar-api/internal/events"
)

// NewCalendar returns an empty calendar carrying the product metadata for the
// given language.
func NewCalendar(lang string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//Bahá'í Calendar//%s", strings.ToUpper(lang)))
	cal.SetVersion("2.0")
	return cal
}

// AddEvents appends one all-day VEVENT per derived event.
func AddEvents(cal *ical.Calendar, evs []events.Event) {
	for _, ev := range evs {
		ve := cal.AddEvent(eventUID(ev.Key, ev.GregorianDate.Time))
		ve.SetDtStampTime(time.Now().UTC())
		ve.SetAllDayStartAt(ev.GregorianDate.Time)
		ve.SetAllDayEndAt(ev.GregorianDate.AddDate(0, 0, 1))
		ve.SetSummary(ev.Name)

		desc := ev.Description
		if ev.URL != "" {
			desc = fmt.Sprintf("%s\n\n%s", desc, ev.URL)
		}
		if ev.BadiDay > 0 {
			desc = fmt.Sprintf("%s\n\n%s %d", desc, ev.BadiMonthName, ev.BadiDay)
		}
		ve.SetDescription(strings.TrimSpace(desc))
		if ev.URL != "" {
			ve.SetURL(ev.URL)
		}
	}
}

// AddMonths appends one all-day VEVENT per month start. The localized title
// prefixes named months; the intercalary period stands on its own.
func AddMonths(cal *ical.Calendar, title string, months []events.MonthStart) {
	for _, m := range months {
		summary := fmt.Sprintf("%s %s", title, m.BadiMonthName)
		if m.BadiMonth == 0 {
			summary = m.BadiMonthName
		}

		ve := cal.AddEvent(eventUID(fmt.Sprintf("month-%d", m.BadiMonth), m.GregorianDate.Time))
		ve.SetDtStampTime(time.Now().UTC())
		ve.SetAllDayStartAt(m.GregorianDate.Time)
		ve.SetAllDayEndAt(m.GregorianDate.AddDate(0, 0, 1))
		ve.SetSummary(summary)

		desc := m.Description
		if m.Info != "" {
			desc = strings.TrimSpace(fmt.Sprintf("%s\n%s", desc, m.Info))
		}
		ve.SetDescription(fmt.Sprintf("%s\nBadí month %d", desc, m.BadiMonth))
	}
}

// Serialize renders the calendar to its wire form.
func Serialize(cal *ical.Calendar) []byte {
	return []byte(cal.Serialize())
}

func eventUID(key string, date time.Time) string {
	return fmt.Sprintf("%s-%s@bahai-calendar", key, date.Format("20060102"))
}
