package handler

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/utils"
)

// Parâmetros de consulta aceitos pelos endpoints do dashboard
const (
	paramStartDate = "start_date"
	paramEndDate   = "end_date"
	paramCoffee    = "coffee"
	paramPayment   = "payment"
	paramSeason    = "season"
	paramTimeOfDay = "time_of_day"
	paramWeekday   = "weekday"
	paramGroupBy   = "group_by"
	paramLimit     = "limit"
	paramOffset    = "offset"
)

var errMissingParam = errors.New("missing required parameter")

// queryValues junta valores repetidos e separados por vírgula, sem vazios
// nem duplicados
func queryValues(query url.Values, key string) []string {
	result := []string{}
	for _, raw := range query[key] {
		for _, value := range strings.Split(raw, ",") {
			value = strings.TrimSpace(value)
			if value != "" && !slices.Contains(result, value) {
				result = append(result, value)
			}
		}
	}
	return result
}

// parseFilters lê os filtros da query string. Parâmetros ausentes não
// restringem o resultado.
func parseFilters(query url.Values) (*domain.Filters, error) {
	startDate, err := utils.ParseDate(strings.TrimSpace(query.Get(paramStartDate)))
	if err != nil {
		return nil, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", paramStartDate, query.Get(paramStartDate))
	}

	endDate, err := utils.ParseDate(strings.TrimSpace(query.Get(paramEndDate)))
	if err != nil {
		return nil, fmt.Errorf("%s: expected YYYY-MM-DD, got %q", paramEndDate, query.Get(paramEndDate))
	}

	filters := &domain.Filters{
		StartDate:   startDate,
		EndDate:     endDate,
		CoffeeNames: queryValues(query, paramCoffee),
	}

	for _, value := range queryValues(query, paramPayment) {
		payment, err := domain.ParsePaymentMethod(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramPayment, err)
		}
		filters.PaymentMethods = append(filters.PaymentMethods, payment)
	}

	for _, value := range queryValues(query, paramSeason) {
		season, err := domain.ParseSeason(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramSeason, err)
		}
		filters.Seasons = append(filters.Seasons, season)
	}

	for _, value := range queryValues(query, paramTimeOfDay) {
		tod, err := domain.ParseTimeOfDay(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramTimeOfDay, err)
		}
		filters.TimesOfDay = append(filters.TimesOfDay, tod)
	}

	for _, value := range queryValues(query, paramWeekday) {
		weekday, err := domain.ParseWeekday(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramWeekday, err)
		}
		filters.Weekdays = append(filters.Weekdays, weekday)
	}

	return filters, nil
}

func parseDimensions(query url.Values) ([]domain.Dimension, error) {
	values := queryValues(query, paramGroupBy)
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: %s", errMissingParam, paramGroupBy)
	}

	dimensions := make([]domain.Dimension, 0, len(values))
	for _, value := range values {
		d, err := domain.ParseDimension(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", paramGroupBy, err)
		}
		dimensions = append(dimensions, d)
	}
	return dimensions, nil
}

// parseNonNegative lê um inteiro opcional; ausente vale zero
func parseNonNegative(query url.Values, key string) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%s: expected a non-negative integer, got %q", key, raw)
	}
	return value, nil
}
