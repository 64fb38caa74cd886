// Package events derives the Bahá'í holy days, intercalary days, fasting
// boundaries and month starts that fall within a requested Gregorian year.
//
// Every date obtained from the calendar-math converter is a sunset-epoch date
// and receives a uniform one-day correction to yield the civil day on which
// the Bahá'í day is observed. Per-event conversion failures are recorded as
// diagnostics and never abort the year computation; only a failure to resolve
// the Badí year itself is fatal.
package events

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/bahai-tools/calendar-api/internal/badi"
	"github.com/bahai-tools/calendar-api/internal/i18n"
)

// Converter is the calendar-math collaborator consumed by the resolver.
// *badi.Calendar satisfies it.
type Converter interface {
	BadiDateFromGregorian(year int, month time.Month, day int) (badi.Date, error)
	GregorianDateFromBadi(d badi.Date) (time.Time, error)
	NawRuzGregorianDate(badiYear int) (time.Time, error)
}

var _ Converter = (*badi.Calendar)(nil)

// Diagnostic levels and codes surfaced alongside results.
const (
	LevelWarning = "warning"

	CodeConversionFailure  = "conversion_failure"
	CodeEstimatedDates     = "estimated_dates"
	CodeMissingTranslation = "missing_translation"
)

// Diagnostic is a non-fatal condition encountered while deriving a year.
type Diagnostic struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func warnf(code, format string, args ...any) Diagnostic {
	return Diagnostic{Level: LevelWarning, Code: code, Message: fmt.Sprintf(format, args...)}
}

// CivilDate is a civil calendar day, serialized as YYYY-MM-DD.
type CivilDate struct {
	time.Time
}

func (d CivilDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *CivilDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Event is one dated entry of the Bahá'í year.
type Event struct {
	Key           string    `json:"key"`
	Name          string    `json:"event"`
	Description   string    `json:"desc"`
	BadiMonth     int       `json:"badi_month"`
	BadiMonthName string    `json:"badi_month_name"`
	BadiDay       int       `json:"badi_day"`
	GregorianDate CivilDate `json:"gregorian_date"`
	URL           string    `json:"url,omitempty"`
	Estimated     bool      `json:"estimated,omitempty"`
}

// MonthStart is the first civil day of one Badí month.
type MonthStart struct {
	BadiMonth     int       `json:"badi_month"`
	BadiMonthName string    `json:"badi_month_name"`
	GregorianDate CivilDate `json:"gregorian_date"`
	Description   string    `json:"desc"`
	Info          string    `json:"info"`
}

// YearEvents is the ordered event list for one Gregorian year, together with
// the diagnostics gathered while deriving it.
type YearEvents struct {
	Year        int          `json:"year"`
	BadiYear    int          `json:"badi_year"`
	Language    string       `json:"language"`
	Events      []Event      `json:"events"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// MonthTable lists the start of every Badí month (1-19 plus the intercalary
// period as month 0) for one Gregorian year.
type MonthTable struct {
	Year        int          `json:"year"`
	BadiYear    int          `json:"badi_year"`
	Language    string       `json:"language"`
	Months      []MonthStart `json:"months"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// yearWindow is the half-open civil-date interval [start, end) covering one
// Badí year.
type yearWindow struct {
	badiYear int
	start    time.Time
	end      time.Time
}

func (w yearWindow) contains(d time.Time) bool {
	return !d.Before(w.start) && d.Before(w.end)
}

// Resolver derives events and month tables. It is stateless apart from its
// read-only collaborators and safe for concurrent use.
type Resolver struct {
	cal    Converter
	bundle *i18n.Bundle
}

// New returns a Resolver over the given converter and translation bundle.
func New(cal Converter, bundle *i18n.Bundle) *Resolver {
	return &Resolver{cal: cal, bundle: bundle}
}

// civilDate converts a sunset-epoch date from the converter into the civil
// day on which the Bahá'í day is observed. Applied exactly once to every
// converter result.
func civilDate(raw time.Time) time.Time {
	return raw.AddDate(0, 0, 1)
}

// window resolves the Badí year whose Naw-Rúz falls at or after March 21 of
// the target Gregorian year, and its civil-date window. Failure here is fatal
// for the request.
func (r *Resolver) window(gregorianYear int) (yearWindow, error) {
	d, err := r.cal.BadiDateFromGregorian(gregorianYear, time.March, 21)
	if err != nil {
		return yearWindow{}, fmt.Errorf("resolve Badí year for %d: %w", gregorianYear, err)
	}

	start, err := r.cal.NawRuzGregorianDate(d.Year)
	if err != nil {
		return yearWindow{}, fmt.Errorf("naw-ruz of %d B.E.: %w", d.Year, err)
	}
	end, err := r.cal.NawRuzGregorianDate(d.Year + 1)
	if err != nil {
		return yearWindow{}, fmt.Errorf("naw-ruz of %d B.E.: %w", d.Year+1, err)
	}

	return yearWindow{
		badiYear: d.Year,
		start:    civilDate(start),
		end:      civilDate(end),
	}, nil
}

// EventsForYear derives the full ordered event list for a Gregorian year.
func (r *Resolver) EventsForYear(gregorianYear int, lang string) (*YearEvents, error) {
	usedLang, found := r.bundle.Resolve(lang)
	result := &YearEvents{Year: gregorianYear, Language: usedLang}
	if !found {
		result.Diagnostics = append(result.Diagnostics,
			warnf(CodeMissingTranslation, "no translations for language %q, falling back to %q", lang, usedLang))
	}

	w, err := r.window(gregorianYear)
	if err != nil {
		return nil, err
	}
	result.BadiYear = w.badiYear

	r.resolveFixedEvents(result, w, usedLang)
	r.resolveTwinHolyDays(result, w, gregorianYear, usedLang)
	r.resolveIntercalary(result, w, usedLang)
	r.resolveFastingBounds(result, w, usedLang)

	sortEvents(result.Events)
	return result, nil
}

// resolveFixedEvents emits the table-driven holy days that fall inside the
// year window. A failed conversion skips that single event.
func (r *Resolver) resolveFixedEvents(result *YearEvents, w yearWindow, lang string) {
	for _, hd := range fixedHolyDays {
		raw, err := r.cal.GregorianDateFromBadi(badi.Date{Year: w.badiYear, Month: hd.month, Day: hd.day})
		if err != nil {
			result.Diagnostics = append(result.Diagnostics,
				warnf(CodeConversionFailure, "skipping %s: %v", hd.key, err))
			continue
		}
		date := civilDate(raw)
		if !w.contains(date) {
			continue
		}
		result.Events = append(result.Events, r.newEvent(hd.key, hd.month, hd.day, date, lang))
	}
}

// resolveTwinHolyDays emits the Births of the Báb and of Bahá'u'lláh. These
// are lunar-anchored: resolved from the curated table when possible and
// estimated otherwise, with the estimate flagged as approximate. Each of the
// two dates is filtered into the window independently.
func (r *Resolver) resolveTwinHolyDays(result *YearEvents, w yearWindow, gregorianYear int, lang string) {
	twin, estimated := ResolveTwinHolyDays(gregorianYear)
	if estimated {
		result.Diagnostics = append(result.Diagnostics,
			warnf(CodeEstimatedDates,
				"twin holy days for %d are estimated from the closest tabulated year and may be inaccurate", gregorianYear))
	}

	if w.contains(twin.BirthOfBab) {
		ev := r.newEvent("birthBab", 12, 5, twin.BirthOfBab, lang)
		ev.Estimated = estimated
		result.Events = append(result.Events, ev)
	}
	if w.contains(twin.BirthOfBahaullah) {
		ev := r.newEvent("birthB", 12, 6, twin.BirthOfBahaullah, lang)
		ev.Estimated = estimated
		result.Events = append(result.Events, ev)
	}
}

// resolveIntercalary measures the Ayyám-i-Há period as the gap between the
// start of month 0 and the start of the Fasting month, and emits one event
// per intercalary day.
func (r *Resolver) resolveIntercalary(result *YearEvents, w yearWindow, lang string) {
	rawStart, err := r.cal.GregorianDateFromBadi(badi.Date{Year: w.badiYear, Month: badi.MonthAyyamiHa, Day: 1})
	if err != nil {
		result.Diagnostics = append(result.Diagnostics,
			warnf(CodeConversionFailure, "skipping ayyám-i-há: %v", err))
		return
	}
	rawFast, err := r.cal.GregorianDateFromBadi(badi.Date{Year: w.badiYear, Month: badi.MonthFasting, Day: 1})
	if err != nil {
		result.Diagnostics = append(result.Diagnostics,
			warnf(CodeConversionFailure, "skipping ayyám-i-há: %v", err))
		return
	}

	start := civilDate(rawStart)
	length := int(civilDate(rawFast).Sub(start).Hours() / 24)

	for day := 1; day <= length; day++ {
		date := start.AddDate(0, 0, day-1)
		if !w.contains(date) {
			continue
		}
		result.Events = append(result.Events, r.newEvent("ayyamiha", badi.MonthAyyamiHa, day, date, lang))
	}
}

// resolveFastingBounds emits the first and last day of the Fasting month,
// each independently fallible and independently filtered.
func (r *Resolver) resolveFastingBounds(result *YearEvents, w yearWindow, lang string) {
	bounds := []struct {
		key string
		day int
	}{
		{key: "1fast", day: 1},
		{key: "19fast", day: 19},
	}

	for _, b := range bounds {
		raw, err := r.cal.GregorianDateFromBadi(badi.Date{Year: w.badiYear, Month: badi.MonthFasting, Day: b.day})
		if err != nil {
			result.Diagnostics = append(result.Diagnostics,
				warnf(CodeConversionFailure, "skipping %s: %v", b.key, err))
			continue
		}
		date := civilDate(raw)
		if !w.contains(date) {
			continue
		}
		result.Events = append(result.Events, r.newEvent(b.key, badi.MonthFasting, b.day, date, lang))
	}
}

// newEvent builds a translated event record.
func (r *Resolver) newEvent(key string, month, day int, date time.Time, lang string) Event {
	text := r.bundle.Event(lang, key)
	return Event{
		Key:           key,
		Name:          text.Name,
		Description:   text.Description,
		BadiMonth:     month,
		BadiMonthName: badi.MonthName(month),
		BadiDay:       day,
		GregorianDate: CivilDate{date},
		URL:           text.URL,
	}
}

// sortEvents orders events by (tier, date): Naw-Rúz opens the year, the last
// day of the Fast closes it, and everything between runs chronologically.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := eventTier(events[i]), eventTier(events[j])
		if ti != tj {
			return ti < tj
		}
		return events[i].GregorianDate.Before(events[j].GregorianDate.Time)
	})
}

func eventTier(ev Event) int {
	switch {
	case ev.Key == "nawruz":
		return 0
	case ev.BadiMonth == badi.MonthFasting && ev.BadiDay == 19:
		return 2
	default:
		return 1
	}
}

// MonthStarts returns the civil start date of every Badí month for the Badí
// year anchored in the given Gregorian year: months 1-19 followed by the
// intercalary period as month 0. A month whose conversion fails is omitted
// with a diagnostic.
func (r *Resolver) MonthStarts(gregorianYear int, lang string) (*MonthTable, error) {
	usedLang, found := r.bundle.Resolve(lang)
	result := &MonthTable{Year: gregorianYear, Language: usedLang}
	if !found {
		result.Diagnostics = append(result.Diagnostics,
			warnf(CodeMissingTranslation, "no translations for language %q, falling back to %q", lang, usedLang))
	}

	w, err := r.window(gregorianYear)
	if err != nil {
		return nil, err
	}
	result.BadiYear = w.badiYear

	months := make([]int, 0, 20)
	for m := 1; m <= 19; m++ {
		months = append(months, m)
	}
	months = append(months, badi.MonthAyyamiHa)

	info := r.bundle.SunsetNote(usedLang)
	for _, m := range months {
		raw, err := r.cal.GregorianDateFromBadi(badi.Date{Year: w.badiYear, Month: m, Day: 1})
		if err != nil {
			result.Diagnostics = append(result.Diagnostics,
				warnf(CodeConversionFailure, "skipping month %d: %v", m, err))
			continue
		}
		name, desc := r.bundle.Month(usedLang, m)
		result.Months = append(result.Months, MonthStart{
			BadiMonth:     m,
			BadiMonthName: fmt.Sprintf("%s (%s)", badi.MonthName(m), name),
			GregorianDate: CivilDate{civilDate(raw)},
			Description:   desc,
			Info:          info,
		})
	}

	return result, nil
}
