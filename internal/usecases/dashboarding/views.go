package dashboarding

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/utils"
)

var (
	monthLabels   = labelsOf(12, func(i int) string { return time.Month(i + 1).String() })
	weekdayLabels = labelsOf(7, func(i int) string { return domain.WeekdayFromOrdinal(i + 1).String() })
	seasonLabels  = labelsOf(len(domain.Seasons), func(i int) string { return string(domain.Seasons[i]) })
	dayTypeLabels = labelsOf(len(domain.DayTypes), func(i int) string { return string(domain.DayTypes[i]) })
	hourLabels    = labelsOf(24, strconv.Itoa)
)

// variáveis da matriz de correlação, na ordem de exibição
var correlationVariables = []string{"money", "hour", "day_of_week"}

func labelsOf(n int, label func(int) string) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = label(i)
	}
	return labels
}

func kpis(transactions []*domain.Transaction) domain.SalesMetrics {
	var acc domain.Accumulator
	for _, tx := range transactions {
		acc.Add(tx.Amount)
	}
	return acc.Metrics()
}

type bucket struct {
	values []domain.DimensionValue
	acc    domain.Accumulator
}

// aggregate agrupa por uma combinação de dimensões. Os grupos saem na ordem
// natural da primeira dimensão, depois da segunda, e assim por diante.
func aggregate(transactions []*domain.Transaction, dimensions ...domain.Dimension) []domain.Group {
	buckets := map[string]*bucket{}
	ordered := []*bucket{}

	labels := make([]string, len(dimensions))
	for _, tx := range transactions {
		values := make([]domain.DimensionValue, len(dimensions))
		for i, d := range dimensions {
			values[i] = d.ValueOf(tx)
			labels[i] = values[i].Label
		}

		key := strings.Join(labels, "\x1f")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{values: values}
			buckets[key] = b
			ordered = append(ordered, b)
		}
		b.acc.Add(tx.Amount)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		for k := range dimensions {
			a, b := ordered[i].values[k], ordered[j].values[k]
			if a != b {
				return a.Less(b)
			}
		}
		return false
	})

	groups := make([]domain.Group, 0, len(ordered))
	for _, b := range ordered {
		keys := make(map[domain.Dimension]string, len(dimensions))
		for i, d := range dimensions {
			keys[d] = b.values[i].Label
		}
		groups = append(groups, domain.Group{
			Keys:         keys,
			SalesMetrics: b.acc.Metrics(),
		})
	}

	return groups
}

func categories(transactions []*domain.Transaction, dimension domain.Dimension) []domain.CategoryMetrics {
	groups := aggregate(transactions, dimension)

	result := make([]domain.CategoryMetrics, 0, len(groups))
	for _, g := range groups {
		result = append(result, domain.CategoryMetrics{
			Category:     g.Keys[dimension],
			SalesMetrics: g.SalesMetrics,
		})
	}
	return result
}

// zeroFilled devolve uma entrada para cada rótulo, com métricas zeradas
// quando não há vendas
func zeroFilled(transactions []*domain.Transaction, dimension domain.Dimension, labels []string) []domain.CategoryMetrics {
	byLabel := map[string]domain.SalesMetrics{}
	for _, c := range categories(transactions, dimension) {
		byLabel[c.Category] = c.SalesMetrics
	}

	result := make([]domain.CategoryMetrics, 0, len(labels))
	for _, label := range labels {
		result = append(result, domain.CategoryMetrics{
			Category:     label,
			SalesMetrics: byLabel[label],
		})
	}
	return result
}

func dayTypes(transactions []*domain.Transaction) []domain.CategoryMetrics {
	return zeroFilled(transactions, domain.DimensionDayType, dayTypeLabels)
}

func monthly(transactions []*domain.Transaction) []domain.CategoryMetrics {
	return zeroFilled(transactions, domain.DimensionMonth, monthLabels)
}

func seasonal(transactions []*domain.Transaction) []domain.CategoryMetrics {
	return zeroFilled(transactions, domain.DimensionSeason, seasonLabels)
}

func weekdays(transactions []*domain.Transaction) []domain.CategoryMetrics {
	return zeroFilled(transactions, domain.DimensionWeekday, weekdayLabels)
}

// cumulative acumula a receita dia a dia em ordem cronológica
func cumulative(transactions []*domain.Transaction) []domain.CumulativePoint {
	daily := map[string]decimal.Decimal{}
	for _, tx := range transactions {
		date := tx.Date.Format(time.DateOnly)
		daily[date] = daily[date].Add(tx.Amount)
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]domain.CumulativePoint, 0, len(dates))
	running := decimal.Zero
	for _, date := range dates {
		running = running.Add(daily[date])
		points = append(points, domain.CumulativePoint{
			Date:         date,
			TotalRevenue: running.Round(2).InexactFloat64(),
		})
	}
	return points
}

func byRevenue(a, b domain.CategoryMetrics) bool {
	if !a.Revenue.Equal(b.Revenue) {
		return a.Revenue.GreaterThan(b.Revenue)
	}
	return a.Category < b.Category
}

func topCoffeesByRevenue(transactions []*domain.Transaction, n int) []domain.CategoryMetrics {
	coffees := categories(transactions, domain.DimensionCoffee)
	sort.SliceStable(coffees, func(i, j int) bool { return byRevenue(coffees[i], coffees[j]) })
	return coffees[:min(n, len(coffees))]
}

func topCoffeesByOrders(transactions []*domain.Transaction, n int) []domain.CategoryMetrics {
	coffees := categories(transactions, domain.DimensionCoffee)
	sort.SliceStable(coffees, func(i, j int) bool {
		if coffees[i].SalesQuantity != coffees[j].SalesQuantity {
			return coffees[i].SalesQuantity > coffees[j].SalesQuantity
		}
		return coffees[i].Category < coffees[j].Category
	})
	return coffees[:min(n, len(coffees))]
}

func averagePrice(transactions []*domain.Transaction) []domain.CategoryMetrics {
	coffees := categories(transactions, domain.DimensionCoffee)
	sort.SliceStable(coffees, func(i, j int) bool {
		if coffees[i].AverageTicket != coffees[j].AverageTicket {
			return coffees[i].AverageTicket > coffees[j].AverageTicket
		}
		return coffees[i].Category < coffees[j].Category
	})
	return coffees
}

// topCoffeesBySeason mantém os n cafés de maior receita em cada estação
func topCoffeesBySeason(transactions []*domain.Transaction, n int) []domain.Group {
	perSeason := map[string][]domain.Group{}
	for _, g := range aggregate(transactions, domain.DimensionSeason, domain.DimensionCoffee) {
		season := g.Keys[domain.DimensionSeason]
		perSeason[season] = append(perSeason[season], g)
	}

	result := []domain.Group{}
	for _, season := range seasonLabels {
		groups := perSeason[season]
		sort.SliceStable(groups, func(i, j int) bool {
			if !groups[i].Revenue.Equal(groups[j].Revenue) {
				return groups[i].Revenue.GreaterThan(groups[j].Revenue)
			}
			return groups[i].Keys[domain.DimensionCoffee] < groups[j].Keys[domain.DimensionCoffee]
		})
		result = append(result, groups[:min(n, len(groups))]...)
	}
	return result
}

// coffeeShareBySeason calcula a fração da receita de cada café na estação
func coffeeShareBySeason(transactions []*domain.Transaction) []domain.Group {
	totals := map[string]decimal.Decimal{}
	for _, c := range categories(transactions, domain.DimensionSeason) {
		totals[c.Category] = c.Revenue
	}

	groups := aggregate(transactions, domain.DimensionSeason, domain.DimensionCoffee)
	for i := range groups {
		total := totals[groups[i].Keys[domain.DimensionSeason]]
		if total.IsPositive() {
			groups[i].Share = groups[i].Revenue.Div(total).Round(4).InexactFloat64()
		}
	}
	return groups
}

// histogram divide o intervalo [min, max] dos valores em bins de mesma
// largura. Com todos os valores iguais existe um único bin.
func histogram(transactions []*domain.Transaction, bins int) []domain.HistogramBin {
	if len(transactions) == 0 || bins <= 0 {
		return []domain.HistogramBin{}
	}

	values := amounts(transactions)
	low, high := values[0], values[0]
	for _, v := range values {
		low = math.Min(low, v)
		high = math.Max(high, v)
	}

	if low == high {
		return []domain.HistogramBin{{Start: low, End: high, Count: len(values)}}
	}

	width := (high - low) / float64(bins)
	result := make([]domain.HistogramBin, bins)
	for i := range result {
		result[i].Start = utils.RoundWithTwoDecimalPlace(low + float64(i)*width)
		result[i].End = utils.RoundWithTwoDecimalPlace(low + float64(i+1)*width)
	}
	result[bins-1].End = high

	for _, v := range values {
		i := int((v - low) / width)
		if i >= bins {
			i = bins - 1
		}
		result[i].Count++
	}

	return result
}

// correlation calcula a correlação de Pearson entre valor, hora e dia da
// semana. Pares com variável constante ficam nulos.
func correlation(transactions []*domain.Transaction) []domain.CorrelationCell {
	series := [][]float64{
		amounts(transactions),
		make([]float64, len(transactions)),
		make([]float64, len(transactions)),
	}
	for i, tx := range transactions {
		series[1][i] = float64(tx.Hour)
		series[2][i] = float64(tx.DayOfWeek())
	}

	constant := make([]bool, len(series))
	for i, s := range series {
		constant[i] = len(s) < 2 || stat.Variance(s, nil) == 0
	}

	cells := make([]domain.CorrelationCell, 0, len(series)*len(series))
	for i := range series {
		for j := range series {
			cell := domain.CorrelationCell{
				Variable1: correlationVariables[i],
				Variable2: correlationVariables[j],
			}

			if !constant[i] && !constant[j] {
				value := 1.0
				if i != j {
					value = stat.Correlation(series[i], series[j], nil)
				}
				if !math.IsNaN(value) && !math.IsInf(value, 0) {
					value = utils.RoundWithFourDecimalPlace(value)
					cell.Value = &value
				}
			}

			cells = append(cells, cell)
		}
	}
	return cells
}

func amounts(transactions []*domain.Transaction) []float64 {
	values := make([]float64, len(transactions))
	for i, tx := range transactions {
		values[i] = tx.Amount.InexactFloat64()
	}
	return values
}
