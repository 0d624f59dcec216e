package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

// filtersFromRequest lê os filtros e responde 400 quando inválidos
func filtersFromRequest(w http.ResponseWriter, r *http.Request, logger log.Logger) (*domain.Filters, bool) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		logger.WithFields(log.Fields{
			"query": r.URL.RawQuery,
			"error": err.Error(),
		}).Warn("dashboard: invalid filter parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
		return nil, false
	}

	logger.WithFields(filterFields(filters)).Debug("dashboard: filters parsed")
	return filters, true
}

func filterFields(filters *domain.Filters) log.Fields {
	fields := log.Fields{
		"filter_coffees":  filters.CoffeeNames,
		"filter_payments": filters.PaymentMethods,
		"filter_seasons":  filters.Seasons,
		"filter_times":    filters.TimesOfDay,
		"filter_weekdays": filters.Weekdays,
	}
	if filters.StartDate != nil {
		fields["filter_start_date"] = filters.StartDate.Format(time.DateOnly)
	}
	if filters.EndDate != nil {
		fields["filter_end_date"] = filters.EndDate.Format(time.DateOnly)
	}
	return fields
}

func GetFilterOptions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.Options())
	})
}

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := filtersFromRequest(w, r, logger)
		if !ok {
			return
		}

		summary := service.Summary(filters)
		if summary.Empty {
			logger.Info("dashboard: no sales for the selected filters")
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

func GetKPIs(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := filtersFromRequest(w, r, logger)
		if !ok {
			return
		}

		kpis := service.KPIs(filters)

		body := map[string]any{
			"filters": filters,
			"empty":   kpis.SalesQuantity == 0,
			"kpis":    kpis,
		}
		if kpis.SalesQuantity == 0 {
			body["message"] = domain.EmptyResultMessage
		}

		writeJSON(w, logger, http.StatusOK, body)
	})
}

func GetAggregates(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := filtersFromRequest(w, r, logger)
		if !ok {
			return
		}

		dimensions, err := parseDimensions(r.URL.Query())
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid group_by parameter")

			code := apiErrors.ErrInvalidFilter
			if errors.Is(err, errMissingParam) {
				code = apiErrors.ErrMissingRequiredData
			}
			apiErrors.WriteError(w, code, err.Error(), nil)
			return
		}

		groups, err := service.Aggregate(filters, dimensions...)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"group_by": dimensions,
			"groups":   groups,
		})
	})
}

func GetTransactions(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := filtersFromRequest(w, r, logger)
		if !ok {
			return
		}

		limit, err := parseNonNegative(r.URL.Query(), paramLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		offset, err := parseNonNegative(r.URL.Query(), paramOffset)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		page, err := service.Transactions(filters, limit, offset)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, page)
	})
}

func ListCharts(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, service.Charts())
	})
}

func GetChart(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		filters, ok := filtersFromRequest(w, r, logger)
		if !ok {
			return
		}

		chart, err := service.Chart(name, filters)
		if err != nil {
			writeServiceError(w, logger.WithField("chart", name), err)
			return
		}

		writeJSON(w, logger, http.StatusOK, chart)
	})
}

func GetDatasetReport(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report := service.Report()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrDataset, "Relatório de carga indisponível", nil)
			return
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}
