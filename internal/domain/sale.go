package domain

import "github.com/shopspring/decimal"

// SalesMetrics agrega quantidade e valores de um conjunto de transações.
// Revenue é a soma exata; TotalRevenue é a mesma soma arredondada para
// exibição, então totais de grupos devem ser somados por Revenue.
type SalesMetrics struct {
	Revenue       decimal.Decimal `json:"revenue"`
	TotalRevenue  float64         `json:"total_revenue"`
	SalesQuantity int             `json:"sales_quantity"`
	AverageTicket float64         `json:"average_ticket"`
}

// CategoryMetrics são as métricas de um único valor de dimensão
type CategoryMetrics struct {
	Category string `json:"category"`
	SalesMetrics
}

// Group é uma combinação de valores de dimensões com suas métricas.
// Share é a fração da receita do grupo dentro do grupo pai, quando calculada.
type Group struct {
	Keys map[Dimension]string `json:"keys"`
	SalesMetrics
	Share float64 `json:"share,omitempty"`
}

// CumulativePoint é a receita acumulada até o fim de um dia
type CumulativePoint struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
}

// HistogramBin conta transações com valor em [Start, End); o último bin
// inclui End
type HistogramBin struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}

// CorrelationCell é um par de variáveis da matriz de correlação. Value é
// nulo quando alguma das variáveis é constante.
type CorrelationCell struct {
	Variable1 string   `json:"variable_1"`
	Variable2 string   `json:"variable_2"`
	Value     *float64 `json:"value"`
}

// Accumulator soma valores com precisão decimal antes da conversão final
type Accumulator struct {
	Total decimal.Decimal
	Count int
}

func (a *Accumulator) Add(amount decimal.Decimal) {
	a.Total = a.Total.Add(amount)
	a.Count++
}

// Metrics converte o acumulado, arredondando para centavos
func (a *Accumulator) Metrics() SalesMetrics {
	if a.Count == 0 {
		return SalesMetrics{}
	}

	average := a.Total.Div(decimal.NewFromInt(int64(a.Count)))

	return SalesMetrics{
		Revenue:       a.Total,
		TotalRevenue:  a.Total.Round(2).InexactFloat64(),
		SalesQuantity: a.Count,
		AverageTicket: average.Round(2).InexactFloat64(),
	}
}
