package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTransaction(t *testing.T, ts string, payment PaymentMethod, amount float64, coffee string) *Transaction {
	t.Helper()

	timestamp, err := time.Parse(time.DateTime, ts)
	require.NoError(t, err)

	tx, err := NewTransaction(timestamp, payment, decimal.NewFromFloat(amount), coffee)
	require.NoError(t, err)
	return tx
}

func TestTimeOfDayFor(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		got := TimeOfDayFor(hour)
		switch {
		case hour <= 11:
			assert.Equal(t, Morning, got, "hora %d", hour)
		case hour <= 16:
			assert.Equal(t, Afternoon, got, "hora %d", hour)
		default:
			assert.Equal(t, Night, got, "hora %d", hour)
		}
	}

	assert.Equal(t, Morning, TimeOfDayFor(8))
}

func TestSeasonFor(t *testing.T) {
	expected := map[time.Month]Season{
		time.January: Winter, time.February: Winter, time.March: Spring,
		time.April: Spring, time.May: Spring, time.June: Summer,
		time.July: Summer, time.August: Summer, time.September: Autumn,
		time.October: Autumn, time.November: Autumn, time.December: Winter,
	}

	for month, season := range expected {
		assert.Equal(t, season, SeasonFor(month), month.String())
	}
}

func TestWeekdayOrdinal(t *testing.T) {
	assert.Equal(t, 1, WeekdayOrdinal(time.Monday))
	assert.Equal(t, 5, WeekdayOrdinal(time.Friday))
	assert.Equal(t, 7, WeekdayOrdinal(time.Sunday))

	for ordinal := 1; ordinal <= 7; ordinal++ {
		assert.Equal(t, ordinal, WeekdayOrdinal(WeekdayFromOrdinal(ordinal)))
	}
}

func TestNewTransaction_DerivedFields(t *testing.T) {
	// 2024-03-01 foi uma sexta-feira
	tx := mustTransaction(t, "2024-03-01 10:15:50", PaymentCard, 38.7, "Latte")

	assert.Equal(t, 10, tx.Hour)
	assert.Equal(t, Morning, tx.TimeOfDay)
	assert.Equal(t, "Friday", tx.Weekday)
	assert.Equal(t, 5, tx.WeekdayOrder)
	assert.Equal(t, 4, tx.DayOfWeek())
	assert.Equal(t, "March", tx.Month)
	assert.Equal(t, 3, tx.MonthOrder)
	assert.Equal(t, 2024, tx.Year)
	assert.Equal(t, Spring, tx.Season)
	assert.Equal(t, Weekday, tx.DayType)
	assert.Equal(t, "2024-03-01", tx.Date.Format(time.DateOnly))
}

func TestNewTransaction_Validation(t *testing.T) {
	ts := time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payment PaymentMethod
		amount  decimal.Decimal
		coffee  string
		wantErr error
	}{
		{name: "valor zero", payment: PaymentCash, amount: decimal.Zero, coffee: "Latte", wantErr: ErrNonPositiveAmount},
		{name: "valor negativo", payment: PaymentCash, amount: decimal.NewFromInt(-3), coffee: "Latte", wantErr: ErrNonPositiveAmount},
		{name: "sem nome do café", payment: PaymentCash, amount: decimal.NewFromInt(3), coffee: "  ", wantErr: ErrMissingCoffeeName},
		{name: "pagamento desconhecido", payment: "pix", amount: decimal.NewFromInt(3), coffee: "Latte", wantErr: ErrUnknownPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(ts, tt.payment, tt.amount, tt.coffee)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	tx, err := NewTransaction(ts, PaymentCash, decimal.NewFromInt(3), "Espresso")
	require.NoError(t, err)
	assert.Equal(t, Weekend, tx.DayType)
	assert.Equal(t, Night, tx.TimeOfDay)
}

func TestParsers(t *testing.T) {
	season, err := ParseSeason("fall")
	require.NoError(t, err)
	assert.Equal(t, Autumn, season)

	season, err = ParseSeason("WINTER")
	require.NoError(t, err)
	assert.Equal(t, Winter, season)

	_, err = ParseSeason("monsoon")
	assert.ErrorIs(t, err, ErrUnknownSeason)

	day, err := ParseWeekday("mon")
	require.NoError(t, err)
	assert.Equal(t, "Monday", day)

	day, err = ParseWeekday("Sunday")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", day)

	_, err = ParseWeekday("Funday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)

	tod, err := ParseTimeOfDay("night")
	require.NoError(t, err)
	assert.Equal(t, Night, tod)

	payment, err := ParsePaymentMethod(" Card ")
	require.NoError(t, err)
	assert.Equal(t, PaymentCard, payment)
}

func TestFilters_Matches(t *testing.T) {
	latte := mustTransaction(t, "2024-03-01 10:00:00", PaymentCard, 3.5, "Latte")
	lowerLatte := mustTransaction(t, "2024-03-01 11:00:00", PaymentCard, 3.5, "latte")
	cocoa := mustTransaction(t, "2024-07-06 19:00:00", PaymentCash, 4.0, "Cocoa")

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		filters *Filters
		want    []bool
	}{
		{name: "sem filtros", filters: nil, want: []bool{true, true, true}},
		{name: "intervalo de um dia é inclusivo", filters: &Filters{StartDate: &start, EndDate: &end}, want: []bool{true, true, false}},
		{name: "café diferencia maiúsculas", filters: &Filters{CoffeeNames: []string{"Latte"}}, want: []bool{true, false, false}},
		{name: "pagamento", filters: &Filters{PaymentMethods: []PaymentMethod{PaymentCash}}, want: []bool{false, false, true}},
		{name: "estação", filters: &Filters{Seasons: []Season{Summer}}, want: []bool{false, false, true}},
		{name: "período do dia", filters: &Filters{TimesOfDay: []TimeOfDay{Night}}, want: []bool{false, false, true}},
		{name: "dia da semana", filters: &Filters{Weekdays: []string{"Friday"}}, want: []bool{true, true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []bool{tt.filters.Matches(latte), tt.filters.Matches(lowerLatte), tt.filters.Matches(cocoa)}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilters_IsEmptyRange(t *testing.T) {
	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, (&Filters{StartDate: &start, EndDate: &end}).IsEmptyRange())
	assert.False(t, (&Filters{StartDate: &end, EndDate: &start}).IsEmptyRange())
	assert.False(t, (&Filters{StartDate: &start}).IsEmptyRange())
	assert.False(t, (*Filters)(nil).IsEmptyRange())
}

func TestDimension_ValueOf(t *testing.T) {
	tx := mustTransaction(t, "2024-12-29 14:30:00", PaymentCash, 2.5, "Americano")

	assert.Equal(t, DimensionValue{Label: "Sunday", Rank: 7}, DimensionWeekday.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "December", Rank: 12}, DimensionMonth.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "Winter", Rank: 0}, DimensionSeason.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "Afternoon", Rank: 1}, DimensionTimeOfDay.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "14", Rank: 14}, DimensionHour.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "Weekend", Rank: 1}, DimensionDayType.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "2024-12-29"}, DimensionDate.ValueOf(tx))
	assert.Equal(t, DimensionValue{Label: "Americano"}, DimensionCoffee.ValueOf(tx))

	d, err := ParseDimension(" Time_Of_Day ")
	require.NoError(t, err)
	assert.Equal(t, DimensionTimeOfDay, d)

	_, err = ParseDimension("store")
	assert.Error(t, err)
}

func TestAccumulator(t *testing.T) {
	var acc Accumulator
	assert.Equal(t, SalesMetrics{}, acc.Metrics())

	for _, v := range []string{"3.5", "4.0", "2.5"} {
		acc.Add(decimal.RequireFromString(v))
	}

	metrics := acc.Metrics()
	assert.Equal(t, 10.0, metrics.TotalRevenue)
	assert.True(t, metrics.Revenue.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 3, metrics.SalesQuantity)
	assert.Equal(t, 3.33, metrics.AverageTicket)
}
