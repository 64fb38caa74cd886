// Package badi provides Badí (Bahá'í) calendar arithmetic: conversion between
// Badí and Gregorian dates and resolution of Naw-Rúz for a given Badí year.
//
// All Gregorian dates produced by this package are sunset-epoch dates: they
// name the civil day on whose evening the Bahá'í day begins. The civil day on
// which the Bahá'í day is observed is one day later; that correction belongs
// to the caller and is applied exactly once.
package badi

import (
	"errors"
	"fmt"
	"time"
)

// Badí year range supported by the arithmetic model.
// Year 1 B.E. began at Naw-Rúz 1844.
const (
	MinYear = 1
	MaxYear = 507
)

// Month 0 is the intercalary period (Ayyám-i-Há); months 1-19 have 19 days
// each, with month 19 ('Alá', the Fasting month) anchored to the following
// Naw-Rúz.
const (
	MonthAyyamiHa = 0
	MonthFasting  = 19

	daysPerMonth = 19
	// Offset of the first intercalary day from Naw-Rúz: 18 months of 19 days.
	ayyamiHaOffset = 18 * daysPerMonth
)

var (
	// ErrOutOfRange is returned for Badí years outside the supported range.
	ErrOutOfRange = errors.New("badi: year out of supported range")

	// ErrInvalidDate is returned for month/day combinations that do not
	// exist in the Badí calendar.
	ErrInvalidDate = errors.New("badi: invalid date")
)

// Date is a Badí calendar date. Month 0 denotes Ayyám-i-Há.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%d-%d-%d B.E.", d.Year, d.Month, d.Day)
}

// Location is the fixed reference point used for sunset-based day boundaries.
type Location struct {
	Latitude   float64
	Longitude  float64
	ZoneOffset float64
}

// Tehran is the reference location of the Badí calendar. All day boundaries
// are anchored to sunset there.
var Tehran = Location{Latitude: 35.682376, Longitude: 51.285817, ZoneOffset: 3.5}

// Calendar converts between Badí and Gregorian dates using a deterministic
// arithmetic model anchored on the tabulated Naw-Rúz equinox dates.
type Calendar struct {
	loc Location
}

// New returns a Calendar anchored at the given reference location.
func New(loc Location) *Calendar {
	return &Calendar{loc: loc}
}

// NewDefault returns a Calendar anchored at Tehran.
func NewDefault() *Calendar {
	return New(Tehran)
}

// ReferenceLocation returns the fixed location used for sunset calculations.
func (c *Calendar) ReferenceLocation() Location {
	return c.loc
}

// rawNawRuzDay returns the sunset-epoch day of March for Naw-Rúz in the given
// Gregorian year. Within the tabulated window the equinox date alternates on
// the Gregorian leap cycle; outside it the historical fixed date of March 21
// applies.
func rawNawRuzDay(gregorianYear int) int {
	if gregorianYear >= 2015 && gregorianYear <= 2063 {
		switch gregorianYear % 4 {
		case 0, 1:
			return 20
		}
	}
	return 21
}

// rawNawRuz returns the sunset-epoch Gregorian date of Naw-Rúz for a Badí
// year, without range checking.
func rawNawRuz(badiYear int) time.Time {
	gy := badiYear + 1843
	return time.Date(gy, time.March, rawNawRuzDay(gy), 0, 0, 0, 0, time.UTC)
}

// NawRuzGregorianDate returns the sunset-epoch Gregorian date of Naw-Rúz
// (month 1, day 1) for the given Badí year.
func (c *Calendar) NawRuzGregorianDate(badiYear int) (time.Time, error) {
	// One year past MaxYear is allowed so callers can close the final
	// year window.
	if badiYear < MinYear || badiYear > MaxYear+1 {
		return time.Time{}, fmt.Errorf("naw-ruz for year %d: %w", badiYear, ErrOutOfRange)
	}
	return rawNawRuz(badiYear), nil
}

// AyyamiHaDays returns the number of intercalary days (4 or 5) in the given
// Badí year, measured from the span between consecutive Naw-Rúz dates.
func (c *Calendar) AyyamiHaDays(badiYear int) (int, error) {
	if badiYear < MinYear || badiYear > MaxYear {
		return 0, fmt.Errorf("ayyam-i-ha for year %d: %w", badiYear, ErrOutOfRange)
	}
	yearLen := daysBetween(rawNawRuz(badiYear), rawNawRuz(badiYear+1))
	return yearLen - ayyamiHaOffset - daysPerMonth, nil
}

// GregorianDateFromBadi converts a Badí date to its sunset-epoch Gregorian
// date.
func (c *Calendar) GregorianDateFromBadi(d Date) (time.Time, error) {
	if d.Year < MinYear || d.Year > MaxYear {
		return time.Time{}, fmt.Errorf("convert %s: %w", d, ErrOutOfRange)
	}
	if d.Day < 1 {
		return time.Time{}, fmt.Errorf("convert %s: %w", d, ErrInvalidDate)
	}

	switch {
	case d.Month == MonthAyyamiHa:
		length, err := c.AyyamiHaDays(d.Year)
		if err != nil {
			return time.Time{}, err
		}
		if d.Day > length {
			return time.Time{}, fmt.Errorf("convert %s: %w", d, ErrInvalidDate)
		}
		return rawNawRuz(d.Year).AddDate(0, 0, ayyamiHaOffset+d.Day-1), nil

	case d.Month == MonthFasting:
		if d.Day > daysPerMonth {
			return time.Time{}, fmt.Errorf("convert %s: %w", d, ErrInvalidDate)
		}
		// The Fasting month is anchored to end the day before the next
		// Naw-Rúz.
		return rawNawRuz(d.Year + 1).AddDate(0, 0, -daysPerMonth+d.Day-1), nil

	case d.Month >= 1 && d.Month < MonthFasting:
		if d.Day > daysPerMonth {
			return time.Time{}, fmt.Errorf("convert %s: %w", d, ErrInvalidDate)
		}
		return rawNawRuz(d.Year).AddDate(0, 0, (d.Month-1)*daysPerMonth+d.Day-1), nil

	default:
		return time.Time{}, fmt.Errorf("convert %s: %w", d, ErrInvalidDate)
	}
}

// BadiDateFromGregorian converts a Gregorian calendar date to the Badí date
// in effect at that sunset epoch.
func (c *Calendar) BadiDateFromGregorian(year int, month time.Month, day int) (Date, error) {
	g := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if g.Year() != year || g.Month() != month || g.Day() != day {
		return Date{}, fmt.Errorf("convert %d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
	}

	badiYear := year - 1843
	if g.Before(rawNawRuz(badiYear)) {
		badiYear--
	}
	if badiYear < MinYear || badiYear > MaxYear {
		return Date{}, fmt.Errorf("convert %d-%02d-%02d: %w", year, month, day, ErrOutOfRange)
	}

	offset := daysBetween(rawNawRuz(badiYear), g)
	if offset < ayyamiHaOffset {
		return Date{Year: badiYear, Month: offset/daysPerMonth + 1, Day: offset%daysPerMonth + 1}, nil
	}

	length, err := c.AyyamiHaDays(badiYear)
	if err != nil {
		return Date{}, err
	}
	if offset < ayyamiHaOffset+length {
		return Date{Year: badiYear, Month: MonthAyyamiHa, Day: offset - ayyamiHaOffset + 1}, nil
	}
	return Date{Year: badiYear, Month: MonthFasting, Day: offset - ayyamiHaOffset - length + 1}, nil
}

// daysBetween returns the whole number of days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
