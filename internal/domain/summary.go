package domain

// EmptyResultMessage é exibida quando os filtros não selecionam nenhuma venda
const EmptyResultMessage = "Nenhum dado disponível para os filtros selecionados. Ajuste as seleções."

// DashboardSummary reúne todas as visões do dashboard para um conjunto de
// filtros. Com Empty verdadeiro, apenas Filters, Message e KPIs zerados
// são preenchidos.
type DashboardSummary struct {
	Filters *Filters     `json:"filters"`
	Empty   bool         `json:"empty"`
	Message string       `json:"message,omitempty"`
	KPIs    SalesMetrics `json:"kpis"`

	DayTypes   []CategoryMetrics `json:"day_types,omitempty"`
	Monthly    []CategoryMetrics `json:"monthly,omitempty"`
	Cumulative []CumulativePoint `json:"cumulative,omitempty"`

	Seasonal            []CategoryMetrics `json:"seasonal,omitempty"`
	TopCoffeesBySeason  []Group           `json:"top_coffees_by_season,omitempty"`
	CoffeeShareBySeason []Group           `json:"coffee_share_by_season,omitempty"`

	TopCoffeesByRevenue []CategoryMetrics `json:"top_coffees_by_revenue,omitempty"`
	TopCoffeesByOrders  []CategoryMetrics `json:"top_coffees_by_orders,omitempty"`
	Payments            []CategoryMetrics `json:"payments,omitempty"`
	AveragePrice        []CategoryMetrics `json:"average_price,omitempty"`
	CoffeeByTimeOfDay   []Group           `json:"coffee_by_time_of_day,omitempty"`

	Weekdays    []CategoryMetrics `json:"weekdays,omitempty"`
	Hours       []CategoryMetrics `json:"hours,omitempty"`
	Heatmap     []Group           `json:"heatmap,omitempty"`
	Histogram   []HistogramBin    `json:"histogram,omitempty"`
	Correlation []CorrelationCell `json:"correlation,omitempty"`
}

// ChartSpec é uma especificação Vega-Lite pronta para o navegador
type ChartSpec map[string]any

// ChartInfo descreve um gráfico disponível
type ChartInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Tab   string `json:"tab"`
}

// TransactionPage é uma fatia paginada das transações filtradas
type TransactionPage struct {
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
	Items  []*Transaction `json:"items"`
}
