// Package dashboarding calcula as visões do dashboard de vendas a partir da
// tabela carregada e dos filtros escolhidos pelo usuário
package dashboarding

import (
	"fmt"

	"github.com/vfg2006/coffee-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

// Dashboarder define as consultas do dashboard. Tudo é recalculado a cada
// chamada, sem cache.
type Dashboarder interface {
	// Summary calcula todas as visões para os filtros
	Summary(filters *domain.Filters) *domain.DashboardSummary

	KPIs(filters *domain.Filters) domain.SalesMetrics

	// Aggregate agrupa as vendas filtradas pelas dimensões informadas
	Aggregate(filters *domain.Filters, dimensions ...domain.Dimension) ([]domain.Group, error)

	Transactions(filters *domain.Filters, limit, offset int) (*domain.TransactionPage, error)

	Options() *domain.FilterOptions
	Report() *domain.LoadReport

	Charts() []domain.ChartInfo
	Chart(name string, filters *domain.Filters) (domain.ChartSpec, error)
}

// Settings controla o tamanho das visões
type Settings struct {
	HistogramBins    int
	TopCoffees       int
	TopCoffeesSeason int
	TransactionsPage int
}

func DefaultSettings() Settings {
	return Settings{
		HistogramBins:    10,
		TopCoffees:       10,
		TopCoffeesSeason: 5,
		TransactionsPage: 100,
	}
}

type Service struct {
	repo     repository.TransactionRepository
	report   *domain.LoadReport
	settings Settings
}

func NewService(repo repository.TransactionRepository, report *domain.LoadReport, settings Settings) Dashboarder {
	defaults := DefaultSettings()
	if settings.HistogramBins <= 0 {
		settings.HistogramBins = defaults.HistogramBins
	}
	if settings.TopCoffees <= 0 {
		settings.TopCoffees = defaults.TopCoffees
	}
	if settings.TopCoffeesSeason <= 0 {
		settings.TopCoffeesSeason = defaults.TopCoffeesSeason
	}
	if settings.TransactionsPage <= 0 {
		settings.TransactionsPage = defaults.TransactionsPage
	}

	return &Service{
		repo:     repo,
		report:   report,
		settings: settings,
	}
}

func (s *Service) Summary(filters *domain.Filters) *domain.DashboardSummary {
	transactions := s.repo.Find(filters)

	summary := &domain.DashboardSummary{
		Filters: filters,
	}

	if len(transactions) == 0 {
		summary.Empty = true
		summary.Message = domain.EmptyResultMessage
		return summary
	}

	summary.KPIs = kpis(transactions)

	summary.DayTypes = dayTypes(transactions)
	summary.Monthly = monthly(transactions)
	summary.Cumulative = cumulative(transactions)

	summary.Seasonal = seasonal(transactions)
	summary.TopCoffeesBySeason = topCoffeesBySeason(transactions, s.settings.TopCoffeesSeason)
	summary.CoffeeShareBySeason = coffeeShareBySeason(transactions)

	summary.TopCoffeesByRevenue = topCoffeesByRevenue(transactions, s.settings.TopCoffees)
	summary.TopCoffeesByOrders = topCoffeesByOrders(transactions, s.settings.TopCoffees)
	summary.Payments = categories(transactions, domain.DimensionPayment)
	summary.AveragePrice = averagePrice(transactions)
	summary.CoffeeByTimeOfDay = aggregate(transactions, domain.DimensionCoffee, domain.DimensionTimeOfDay)

	summary.Weekdays = weekdays(transactions)
	summary.Hours = categories(transactions, domain.DimensionHour)
	summary.Heatmap = aggregate(transactions, domain.DimensionWeekday, domain.DimensionHour)
	summary.Histogram = histogram(transactions, s.settings.HistogramBins)
	summary.Correlation = correlation(transactions)

	return summary
}

func (s *Service) KPIs(filters *domain.Filters) domain.SalesMetrics {
	return kpis(s.repo.Find(filters))
}

func (s *Service) Aggregate(filters *domain.Filters, dimensions ...domain.Dimension) ([]domain.Group, error) {
	if len(dimensions) == 0 {
		return nil, fmt.Errorf("%w: at least one dimension is required", ErrInvalidDimension)
	}

	seen := map[domain.Dimension]bool{}
	for _, d := range dimensions {
		if _, err := domain.ParseDimension(string(d)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDimension, err)
		}
		if seen[d] {
			return nil, fmt.Errorf("%w: %s repeated", ErrInvalidDimension, d)
		}
		seen[d] = true
	}

	return aggregate(s.repo.Find(filters), dimensions...), nil
}

// Transactions pagina as transações filtradas. limit zero usa o tamanho
// de página configurado.
func (s *Service) Transactions(filters *domain.Filters, limit, offset int) (*domain.TransactionPage, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%w: limit and offset must be >= 0", ErrInvalidPagination)
	}
	if limit == 0 {
		limit = s.settings.TransactionsPage
	}

	transactions := s.repo.Find(filters)

	page := &domain.TransactionPage{
		Total:  len(transactions),
		Limit:  limit,
		Offset: offset,
		Items:  []*domain.Transaction{},
	}

	if offset >= len(transactions) {
		return page, nil
	}

	end := min(offset+limit, len(transactions))
	page.Items = transactions[offset:end]

	return page, nil
}

func (s *Service) Options() *domain.FilterOptions {
	return s.repo.Options()
}

func (s *Service) Report() *domain.LoadReport {
	return s.report
}

func (s *Service) Charts() []domain.ChartInfo {
	charts := make([]domain.ChartInfo, 0, len(chartCatalog))
	for _, def := range chartCatalog {
		charts = append(charts, def.info)
	}
	return charts
}

// Chart monta a especificação Vega-Lite do gráfico com os dados filtrados
func (s *Service) Chart(name string, filters *domain.Filters) (domain.ChartSpec, error) {
	def, ok := findChart(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChartNotFound, name)
	}

	return def.build(s.Summary(filters)), nil
}
