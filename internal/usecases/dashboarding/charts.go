package dashboarding

import (
	"strings"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

const vegaLiteSchema = "https://vega.github.io/schema/vega-lite/v5.json"

// Abas do dashboard
const (
	TabKPIs     = "kpis"
	TabMonthly  = "monthly"
	TabSeasonal = "seasonal"
	TabProducts = "products"
	TabAdvanced = "advanced"
)

// Palette é a paleta de cores usada em todos os gráficos
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

type chartDef struct {
	info  domain.ChartInfo
	build func(summary *domain.DashboardSummary) domain.ChartSpec
}

var chartCatalog = []chartDef{
	{
		info: domain.ChartInfo{Name: "sales_by_day_type", Title: "Total Sales: Weekday vs. Weekend", Tab: TabKPIs},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Total Sales: Weekday vs. Weekend", categoryRows(s.DayTypes), "Day Type", revenueField, Palette[0], dayTypeLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "orders_by_day_type", Title: "Total Orders: Weekday vs. Weekend", Tab: TabKPIs},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Total Orders: Weekday vs. Weekend", categoryRows(s.DayTypes), "Day Type", ordersField, Palette[1], dayTypeLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "monthly_revenue", Title: "Monthly Revenue Trend", Tab: TabMonthly},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return lineChart("Monthly Revenue Trend", categoryRows(s.Monthly), "Month", revenueField, Palette[0], monthLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "monthly_orders", Title: "Monthly Order Trend", Tab: TabMonthly},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Monthly Order Trend", categoryRows(s.Monthly), "Month", ordersField, Palette[1], monthLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "cumulative_revenue", Title: "Cumulative Revenue Trend", Tab: TabMonthly},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			rows := make([]map[string]any, 0, len(s.Cumulative))
			for _, p := range s.Cumulative {
				rows = append(rows, map[string]any{"date": p.Date, "total_revenue": p.TotalRevenue})
			}
			return spec("Cumulative Revenue Trend", rows,
				map[string]any{"type": "area", "color": Palette[2], "opacity": 0.7},
				map[string]any{
					"x":       map[string]any{"field": "date", "type": "temporal", "title": "Date"},
					"y":       quantitative(revenueField.field, "Cumulative Revenue ($)"),
					"tooltip": []any{map[string]any{"field": "date", "type": "temporal", "format": "%Y-%m-%d"}, money(revenueField.field)},
				})
		},
	},
	{
		info: domain.ChartInfo{Name: "revenue_by_season", Title: "Total Revenue by Season", Tab: TabSeasonal},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Total Revenue by Season", categoryRows(s.Seasonal), "Season", revenueField, Palette[2], seasonLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "orders_by_season", Title: "Total Orders by Season", Tab: TabSeasonal},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Total Orders by Season", categoryRows(s.Seasonal), "Season", ordersField, Palette[3], seasonLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "season_revenue_share", Title: "Seasonal Revenue Distribution", Tab: TabSeasonal},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return arcChart("Seasonal Revenue Distribution", categoryRows(s.Seasonal), "Season", revenueField, 80)
		},
	},
	{
		info: domain.ChartInfo{Name: "season_orders_share", Title: "Seasonal Orders Distribution", Tab: TabSeasonal},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return arcChart("Seasonal Orders Distribution", categoryRows(s.Seasonal), "Season", ordersField, 80)
		},
	},
	{
		info: domain.ChartInfo{Name: "top_coffees_by_season", Title: "Top Coffees by Revenue per Season", Tab: TabSeasonal},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return spec("Top Coffees by Revenue per Season", groupRows(s.TopCoffeesBySeason), "bar",
				map[string]any{
					"x":       quantitative(revenueField.field, "Total Revenue ($)"),
					"y":       map[string]any{"field": "coffee", "type": "nominal", "sort": "-x", "title": "Coffee Name"},
					"color":   paletteColor("season", "Season"),
					"column":  map[string]any{"field": "season", "type": "nominal", "sort": seasonLabels},
					"tooltip": []any{"season", "coffee", money(revenueField.field)},
				})
		},
	},
	{
		info: domain.ChartInfo{Name: "coffee_share_by_season", Title: "Revenue Contribution of Each Coffee by Season", Tab: TabSeasonal},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return spec("Revenue Contribution of Each Coffee by Season", groupRows(s.CoffeeShareBySeason), "bar",
				map[string]any{
					"x": map[string]any{
						"field": revenueField.field, "type": "quantitative", "stack": "normalize",
						"title": "Percentage of Revenue (%)", "axis": map[string]any{"format": "%"},
					},
					"y":       map[string]any{"field": "season", "type": "nominal", "sort": seasonLabels, "title": "Season"},
					"color":   paletteColor("coffee", "Coffee Name"),
					"tooltip": []any{"season", "coffee", money(revenueField.field), map[string]any{"field": "share", "format": ".1%"}},
				})
		},
	},
	{
		info: domain.ChartInfo{Name: "top_coffees_by_revenue", Title: "Top Bestselling Coffees", Tab: TabProducts},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return horizontalBarChart("Top Bestselling Coffees", categoryRows(s.TopCoffeesByRevenue), revenueField, Palette[2])
		},
	},
	{
		info: domain.ChartInfo{Name: "top_coffees_by_orders", Title: "Top Most Ordered Coffees", Tab: TabProducts},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return horizontalBarChart("Top Most Ordered Coffees", categoryRows(s.TopCoffeesByOrders), ordersField, Palette[3])
		},
	},
	{
		info: domain.ChartInfo{Name: "revenue_by_payment", Title: "Revenue by Payment Type", Tab: TabProducts},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return arcChart("Revenue by Payment Type", categoryRows(s.Payments), "Payment Type", revenueField, 0)
		},
	},
	{
		info: domain.ChartInfo{Name: "average_price", Title: "Average Price per Coffee", Tab: TabProducts},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return horizontalBarChart("Average Price per Coffee", categoryRows(s.AveragePrice), averageField, Palette[4])
		},
	},
	{
		info: domain.ChartInfo{Name: "coffee_by_time_of_day", Title: "Revenue by Product and Time of Day", Tab: TabProducts},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return spec("Revenue by Product and Time of Day", groupRows(s.CoffeeByTimeOfDay), "bar",
				map[string]any{
					"x":       quantitative(revenueField.field, "Total Revenue ($)"),
					"y":       map[string]any{"field": "coffee", "type": "nominal", "sort": "-x", "title": ""},
					"color":   paletteColor("time_of_day", "Time of Day"),
					"tooltip": []any{"coffee", "time_of_day", money(revenueField.field)},
				})
		},
	},
	{
		info: domain.ChartInfo{Name: "revenue_by_weekday", Title: "Total Revenue by Day of Week", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Total Revenue by Day of Week", categoryRows(s.Weekdays), "Day of Week", revenueField, Palette[2], weekdayLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "orders_by_weekday", Title: "Total Orders by Day of Week", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return barChart("Total Orders by Day of Week", categoryRows(s.Weekdays), "Day of Week", ordersField, Palette[3], weekdayLabels)
		},
	},
	{
		info: domain.ChartInfo{Name: "revenue_by_hour", Title: "Total Revenue by Hour of Day", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return hourChart("Total Revenue by Hour of Day", categoryRows(s.Hours), revenueField, Palette[2])
		},
	},
	{
		info: domain.ChartInfo{Name: "orders_by_hour", Title: "Total Orders by Hour of Day", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return hourChart("Total Orders by Hour of Day", categoryRows(s.Hours), ordersField, Palette[3])
		},
	},
	{
		info: domain.ChartInfo{Name: "weekday_hour_heatmap", Title: "Revenue Heatmap: Day of Week vs. Hour", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			return spec("Revenue Heatmap: Day of Week vs. Hour", groupRows(s.Heatmap), "rect",
				map[string]any{
					"x":       map[string]any{"field": "hour", "type": "ordinal", "sort": hourLabels, "title": "Hour of Day"},
					"y":       map[string]any{"field": "weekday", "type": "nominal", "sort": weekdayLabels, "title": "Day of Week"},
					"color":   map[string]any{"field": revenueField.field, "type": "quantitative", "title": "Total Revenue ($)", "scale": map[string]any{"scheme": "viridis"}},
					"tooltip": []any{"weekday", "hour", money(revenueField.field)},
				})
		},
	},
	{
		info: domain.ChartInfo{Name: "amount_histogram", Title: "Distribution of Transaction Values", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			rows := make([]map[string]any, 0, len(s.Histogram))
			for _, b := range s.Histogram {
				rows = append(rows, map[string]any{"start": b.Start, "end": b.End, "count": b.Count})
			}
			return spec("Distribution of Transaction Values", rows,
				map[string]any{"type": "bar", "color": Palette[1]},
				map[string]any{
					"x":       map[string]any{"field": "start", "type": "quantitative", "bin": map[string]any{"binned": true}, "title": "Transaction Value ($)"},
					"x2":      map[string]any{"field": "end"},
					"y":       quantitative("count", "Number of Transactions"),
					"tooltip": []any{"start", "end", "count"},
				})
		},
	},
	{
		info: domain.ChartInfo{Name: "correlation_matrix", Title: "Correlation Matrix", Tab: TabAdvanced},
		build: func(s *domain.DashboardSummary) domain.ChartSpec {
			rows := make([]map[string]any, 0, len(s.Correlation))
			for _, c := range s.Correlation {
				rows = append(rows, map[string]any{"variable_1": c.Variable1, "variable_2": c.Variable2, "correlation": c.Value})
			}
			return spec("Correlation Matrix", rows, "rect",
				map[string]any{
					"x": map[string]any{"field": "variable_1", "type": "nominal", "title": "", "sort": correlationVariables},
					"y": map[string]any{"field": "variable_2", "type": "nominal", "title": "", "sort": correlationVariables},
					"color": map[string]any{
						"field": "correlation", "type": "quantitative", "title": "Correlation",
						"scale": map[string]any{"domain": []float64{-1, 1}, "range": []string{Palette[0], "white", Palette[2]}},
					},
					"tooltip": []any{"variable_1", "variable_2", map[string]any{"field": "correlation", "format": ".2f"}},
				})
		},
	},
}

func findChart(name string) (chartDef, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, def := range chartCatalog {
		if def.info.Name == name {
			return def, true
		}
	}
	return chartDef{}, false
}

type metricField struct {
	field  string
	title  string
	format string
}

var (
	revenueField = metricField{field: "total_revenue", title: "Total Revenue ($)", format: "$,.2f"}
	ordersField  = metricField{field: "sales_quantity", title: "Total Orders", format: ",.0f"}
	averageField = metricField{field: "average_ticket", title: "Average Price ($)", format: "$,.2f"}
)

func spec(title string, rows []map[string]any, mark any, encoding map[string]any) domain.ChartSpec {
	return domain.ChartSpec{
		"$schema":  vegaLiteSchema,
		"title":    title,
		"width":    "container",
		"data":     map[string]any{"values": rows},
		"mark":     mark,
		"encoding": encoding,
	}
}

func categoryRows(metrics []domain.CategoryMetrics) []map[string]any {
	rows := make([]map[string]any, 0, len(metrics))
	for _, m := range metrics {
		rows = append(rows, map[string]any{
			"category":       m.Category,
			"total_revenue":  m.TotalRevenue,
			"sales_quantity": m.SalesQuantity,
			"average_ticket": m.AverageTicket,
		})
	}
	return rows
}

func groupRows(groups []domain.Group) []map[string]any {
	rows := make([]map[string]any, 0, len(groups))
	for _, g := range groups {
		row := map[string]any{
			"total_revenue":  g.TotalRevenue,
			"sales_quantity": g.SalesQuantity,
			"average_ticket": g.AverageTicket,
			"share":          g.Share,
		}
		for d, label := range g.Keys {
			row[string(d)] = label
		}
		rows = append(rows, row)
	}
	return rows
}

func quantitative(field, title string) map[string]any {
	return map[string]any{"field": field, "type": "quantitative", "title": title}
}

func money(field string) map[string]any {
	return map[string]any{"field": field, "type": "quantitative", "format": "$,.2f"}
}

func paletteColor(field, title string) map[string]any {
	return map[string]any{"field": field, "type": "nominal", "title": title, "scale": map[string]any{"range": Palette}}
}

// withLabels sobrepõe o valor de cada barra ao gráfico
func withLabels(title string, rows []map[string]any, mark map[string]any, label map[string]any, encoding map[string]any, metric metricField) domain.ChartSpec {
	chart := spec(title, rows, nil, encoding)
	delete(chart, "mark")
	chart["layer"] = []any{
		map[string]any{"mark": mark},
		map[string]any{
			"mark":     label,
			"encoding": map[string]any{"text": map[string]any{"field": metric.field, "type": "quantitative", "format": metric.format}},
		},
	}
	return chart
}

func barChart(title string, rows []map[string]any, axisTitle string, metric metricField, color string, order []string) domain.ChartSpec {
	return withLabels(title, rows,
		map[string]any{"type": "bar", "color": color},
		map[string]any{"type": "text", "align": "center", "baseline": "bottom", "dy": -5, "color": "black"},
		map[string]any{
			"x":       map[string]any{"field": "category", "type": "nominal", "sort": order, "title": axisTitle},
			"y":       quantitative(metric.field, metric.title),
			"tooltip": []any{map[string]any{"field": "category", "title": axisTitle}, map[string]any{"field": metric.field, "format": metric.format}},
		}, metric)
}

func lineChart(title string, rows []map[string]any, axisTitle string, metric metricField, color string, order []string) domain.ChartSpec {
	return withLabels(title, rows,
		map[string]any{"type": "line", "point": true, "color": color},
		map[string]any{"type": "text", "align": "left", "baseline": "middle", "dx": 5, "color": "black"},
		map[string]any{
			"x":       map[string]any{"field": "category", "type": "ordinal", "sort": order, "title": axisTitle},
			"y":       quantitative(metric.field, metric.title),
			"tooltip": []any{map[string]any{"field": "category", "title": axisTitle}, map[string]any{"field": metric.field, "format": metric.format}},
		}, metric)
}

func horizontalBarChart(title string, rows []map[string]any, metric metricField, color string) domain.ChartSpec {
	return withLabels(title, rows,
		map[string]any{"type": "bar", "color": color},
		map[string]any{"type": "text", "align": "left", "dx": 3, "color": "black"},
		map[string]any{
			"x":       quantitative(metric.field, metric.title),
			"y":       map[string]any{"field": "category", "type": "nominal", "sort": "-x", "title": ""},
			"tooltip": []any{map[string]any{"field": "category", "title": "Coffee Name"}, map[string]any{"field": metric.field, "format": metric.format}},
		}, metric)
}

func hourChart(title string, rows []map[string]any, metric metricField, color string) domain.ChartSpec {
	return withLabels(title, rows,
		map[string]any{"type": "bar", "color": color},
		map[string]any{"type": "text", "align": "center", "baseline": "bottom", "dy": -5, "color": "black"},
		map[string]any{
			"x":       map[string]any{"field": "category", "type": "ordinal", "sort": nil, "title": "Hour of Day"},
			"y":       quantitative(metric.field, metric.title),
			"tooltip": []any{map[string]any{"field": "category", "title": "Hour"}, map[string]any{"field": metric.field, "format": metric.format}},
		}, metric)
}

// arcChart desenha pizza quando innerRadius é zero e rosca caso contrário
func arcChart(title string, rows []map[string]any, legend string, metric metricField, innerRadius int) domain.ChartSpec {
	chart := spec(title, rows, nil, map[string]any{
		"theta":   map[string]any{"field": metric.field, "type": "quantitative", "stack": true},
		"color":   paletteColor("category", legend),
		"tooltip": []any{map[string]any{"field": "category", "title": legend}, map[string]any{"field": metric.field, "format": metric.format}},
	})
	delete(chart, "mark")
	chart["layer"] = []any{
		map[string]any{"mark": map[string]any{"type": "arc", "outerRadius": 120, "innerRadius": innerRadius, "stroke": "#fff"}},
		map[string]any{
			"mark": map[string]any{"type": "text", "radius": 140},
			"encoding": map[string]any{
				"text":  map[string]any{"field": metric.field, "type": "quantitative", "format": metric.format},
				"color": map[string]any{"value": "black"},
			},
		},
	}
	return chart
}
