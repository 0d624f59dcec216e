package handler

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

func TestParseFilters(t *testing.T) {
	query, err := url.ParseQuery("start_date=2024-03-01&end_date=2024-06-30&coffee=Latte,Americano&coffee=Latte" +
		"&payment=CARD&season=fall,Winter&time_of_day=morning&weekday=Mon&weekday=Sunday")
	require.NoError(t, err)

	filters, err := parseFilters(query)
	require.NoError(t, err)

	require.NotNil(t, filters.StartDate)
	require.NotNil(t, filters.EndDate)
	assert.Equal(t, "2024-03-01", filters.StartDate.Format(time.DateOnly))
	assert.Equal(t, "2024-06-30", filters.EndDate.Format(time.DateOnly))
	assert.Equal(t, []string{"Latte", "Americano"}, filters.CoffeeNames)
	assert.Equal(t, []domain.PaymentMethod{domain.PaymentCard}, filters.PaymentMethods)
	assert.Equal(t, []domain.Season{domain.Autumn, domain.Winter}, filters.Seasons)
	assert.Equal(t, []domain.TimeOfDay{domain.Morning}, filters.TimesOfDay)
	assert.Equal(t, []string{"Monday", "Sunday"}, filters.Weekdays)
}

func TestParseFilters_Empty(t *testing.T) {
	filters, err := parseFilters(url.Values{})
	require.NoError(t, err)

	assert.Nil(t, filters.StartDate)
	assert.Nil(t, filters.EndDate)
	assert.Empty(t, filters.CoffeeNames)
	assert.Empty(t, filters.PaymentMethods)
}

func TestParseFilters_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "data inicial inválida", query: "start_date=01/03/2024"},
		{name: "data final inválida", query: "end_date=2024-02-30"},
		{name: "pagamento desconhecido", query: "payment=pix"},
		{name: "estação desconhecida", query: "season=monsoon"},
		{name: "período desconhecido", query: "time_of_day=dawn"},
		{name: "dia desconhecido", query: "weekday=Funday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = parseFilters(query)
			assert.Error(t, err)
		})
	}
}

func TestParseDimensions(t *testing.T) {
	dimensions, err := parseDimensions(url.Values{"group_by": {"season, coffee"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.Dimension{domain.DimensionSeason, domain.DimensionCoffee}, dimensions)

	_, err = parseDimensions(url.Values{})
	assert.ErrorIs(t, err, errMissingParam)

	_, err = parseDimensions(url.Values{"group_by": {"store"}})
	assert.Error(t, err)
}

func TestParseNonNegative(t *testing.T) {
	value, err := parseNonNegative(url.Values{"limit": {"25"}}, "limit")
	require.NoError(t, err)
	assert.Equal(t, 25, value)

	value, err = parseNonNegative(url.Values{}, "limit")
	require.NoError(t, err)
	assert.Equal(t, 0, value)

	_, err = parseNonNegative(url.Values{"limit": {"-1"}}, "limit")
	assert.Error(t, err)

	_, err = parseNonNegative(url.Values{"limit": {"dez"}}, "limit")
	assert.Error(t, err)
}
