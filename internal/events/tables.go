package events

import "time"

// fixedHolyDay is a holy day with a fixed position in the Badí calendar.
type fixedHolyDay struct {
	key   string
	month int
	day   int
}

// fixedHolyDays are the solar-calendar-fixed holy days and holidays. The
// births of the Báb and of Bahá'u'lláh are deliberately absent: they are
// anchored to the lunar calendar and resolved only through the Twin Holy Days
// table, never through Badí date conversion.
var fixedHolyDays = []fixedHolyDay{
	{key: "nawruz", month: 1, day: 1},
	{key: "1Ridvan", month: 2, day: 13},
	{key: "9Ridvan", month: 3, day: 2},
	{key: "12Ridvan", month: 3, day: 5},
	{key: "declarationBab", month: 4, day: 8},
	{key: "ascensionB", month: 4, day: 13},
	{key: "martyrdomBab", month: 6, day: 17},
	{key: "covenant", month: 14, day: 4},
	{key: "ascensionA", month: 14, day: 6},
}

// monthDay is a Gregorian month/day pair within an implied year.
type monthDay struct {
	month time.Month
	day   int
}

// twinEntry holds the two official Gregorian dates of the Twin Holy Days for
// one Gregorian year. The Birth of Bahá'u'lláh is always the civil day after
// the Birth of the Báb.
type twinEntry struct {
	bab       monthDay
	bahaullah monthDay
}

// twinHolyDays is the curated table of officially announced Twin Holy Day
// dates, covering one full 19-year Metonic cycle. These dates are
// authoritative and returned verbatim; years outside the table fall back to
// the cyclical estimator.
var twinHolyDays = map[int]twinEntry{
	2015: {monthDay{time.October, 27}, monthDay{time.October, 28}},
	2016: {monthDay{time.November, 15}, monthDay{time.November, 16}},
	2017: {monthDay{time.November, 4}, monthDay{time.November, 5}},
	2018: {monthDay{time.October, 24}, monthDay{time.October, 25}},
	2019: {monthDay{time.November, 12}, monthDay{time.November, 13}},
	2020: {monthDay{time.November, 1}, monthDay{time.November, 2}},
	2021: {monthDay{time.October, 21}, monthDay{time.October, 22}},
	2022: {monthDay{time.November, 9}, monthDay{time.November, 10}},
	2023: {monthDay{time.October, 29}, monthDay{time.October, 30}},
	2024: {monthDay{time.October, 18}, monthDay{time.October, 19}},
	2025: {monthDay{time.October, 7}, monthDay{time.October, 8}},
	2026: {monthDay{time.October, 26}, monthDay{time.October, 27}},
	2027: {monthDay{time.October, 15}, monthDay{time.October, 16}},
	2028: {monthDay{time.October, 4}, monthDay{time.October, 5}},
	2029: {monthDay{time.October, 23}, monthDay{time.October, 24}},
	2030: {monthDay{time.October, 12}, monthDay{time.October, 13}},
	2031: {monthDay{time.October, 1}, monthDay{time.October, 2}},
	2032: {monthDay{time.October, 20}, monthDay{time.October, 21}},
	2033: {monthDay{time.October, 9}, monthDay{time.October, 10}},
}
