package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bahai-tools/calendar-api/internal/badi"
	"github.com/bahai-tools/calendar-api/internal/config"
	"github.com/bahai-tools/calendar-api/internal/events"
	"github.com/bahai-tools/calendar-api/internal/i18n"
	"github.com/bahai-tools/calendar-api/internal/ics"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	resolver *events.Resolver
	bundle   *i18n.Bundle
	cfg      *config.Config
	logger   *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(resolver *events.Resolver, bundle *i18n.Bundle, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		resolver: resolver,
		bundle:   bundle,
		cfg:      cfg,
		logger:   logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetEvents handles GET /api/v1/events/{year}
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	year, lang, ok := h.yearAndLang(w, r)
	if !ok {
		return
	}

	result, err := h.resolver.EventsForYear(year, lang)
	if err != nil {
		h.writeResolveError(w, year, err)
		return
	}

	WriteSuccess(w, result)
}

// GetMonths handles GET /api/v1/months/{year}
func (h *Handlers) GetMonths(w http.ResponseWriter, r *http.Request) {
	year, lang, ok := h.yearAndLang(w, r)
	if !ok {
		return
	}

	result, err := h.resolver.MonthStarts(year, lang)
	if err != nil {
		h.writeResolveError(w, year, err)
		return
	}

	WriteSuccess(w, result)
}

// GetComplete handles GET /api/v1/complete/{year}
func (h *Handlers) GetComplete(w http.ResponseWriter, r *http.Request) {
	year, lang, ok := h.yearAndLang(w, r)
	if !ok {
		return
	}

	yearEvents, months, err := h.completeYear(year, lang)
	if err != nil {
		h.writeResolveError(w, year, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":        year,
		"badi_year":   yearEvents.BadiYear,
		"language":    yearEvents.Language,
		"events":      yearEvents.Events,
		"months":      months.Months,
		"diagnostics": append(yearEvents.Diagnostics, months.Diagnostics...),
	})
}

// GetEventsICS handles GET /api/v1/ics/events/{year}
func (h *Handlers) GetEventsICS(w http.ResponseWriter, r *http.Request) {
	year, lang, ok := h.yearAndLang(w, r)
	if !ok {
		return
	}

	result, err := h.resolver.EventsForYear(year, lang)
	if err != nil {
		h.writeResolveError(w, year, err)
		return
	}

	cal := ics.NewCalendar(result.Language)
	ics.AddEvents(cal, result.Events)
	writeICS(w, fmt.Sprintf("bahai_events_%d.ics", year), ics.Serialize(cal))
}

// GetMonthsICS handles GET /api/v1/ics/months/{year}
func (h *Handlers) GetMonthsICS(w http.ResponseWriter, r *http.Request) {
	year, lang, ok := h.yearAndLang(w, r)
	if !ok {
		return
	}

	result, err := h.resolver.MonthStarts(year, lang)
	if err != nil {
		h.writeResolveError(w, year, err)
		return
	}

	cal := ics.NewCalendar(result.Language)
	ics.AddMonths(cal, h.bundle.Title(result.Language), result.Months)
	writeICS(w, fmt.Sprintf("bahai_months_%d.ics", year), ics.Serialize(cal))
}

// GetCompleteICS handles GET /api/v1/ics/complete/{year}
func (h *Handlers) GetCompleteICS(w http.ResponseWriter, r *http.Request) {
	year, lang, ok := h.yearAndLang(w, r)
	if !ok {
		return
	}

	yearEvents, months, err := h.completeYear(year, lang)
	if err != nil {
		h.writeResolveError(w, year, err)
		return
	}

	cal := ics.NewCalendar(yearEvents.Language)
	ics.AddEvents(cal, yearEvents.Events)
	ics.AddMonths(cal, h.bundle.Title(yearEvents.Language), months.Months)
	writeICS(w, fmt.Sprintf("bahai_calendar_%d-%d.ics", year, year+1), ics.Serialize(cal))
}

// completeYear derives both the event list and the month table for one year.
func (h *Handlers) completeYear(year int, lang string) (*events.YearEvents, *events.MonthTable, error) {
	yearEvents, err := h.resolver.EventsForYear(year, lang)
	if err != nil {
		return nil, nil, err
	}
	months, err := h.resolver.MonthStarts(year, lang)
	if err != nil {
		return nil, nil, err
	}
	return yearEvents, months, nil
}

// yearAndLang extracts and validates the path year and language query param.
func (h *Handlers) yearAndLang(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %q", yearStr))
		return 0, "", false
	}

	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = h.cfg.DefaultLanguage
	}

	return year, lang, true
}

// writeResolveError maps a fatal year-resolution failure to a response.
func (h *Handlers) writeResolveError(w http.ResponseWriter, year int, err error) {
	if errors.Is(err, badi.ErrOutOfRange) || errors.Is(err, badi.ErrInvalidDate) {
		h.logger.Warn("year could not be resolved",
			slog.Int("year", year),
			slog.Any("error", err))
		WriteUnprocessable(w, fmt.Sprintf("Year %d could not be resolved to a Badí year", year))
		return
	}

	h.logger.Error("failed to derive calendar",
		slog.Int("year", year),
		slog.Any("error", err))
	WriteInternalError(w, "Failed to derive calendar")
}

// writeICS writes a serialized calendar as a downloadable attachment.
func writeICS(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
