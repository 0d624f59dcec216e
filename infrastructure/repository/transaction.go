// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"slices"
	"sort"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

// TransactionRepository dá acesso somente leitura à tabela carregada
type TransactionRepository interface {
	All() []*domain.Transaction
	Find(filters *domain.Filters) []*domain.Transaction
	Options() *domain.FilterOptions
}

// transactionRepository mantém a tabela em memória. A tabela não muda após
// a carga, então leituras concorrentes dispensam lock.
type transactionRepository struct {
	transactions []*domain.Transaction
	options      *domain.FilterOptions
}

func NewTransactionRepository(transactions []*domain.Transaction) TransactionRepository {
	sorted := slices.Clone(transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return &transactionRepository{
		transactions: sorted,
		options:      buildOptions(sorted),
	}
}

func (r *transactionRepository) All() []*domain.Transaction {
	return r.transactions
}

// Find retorna as transações que passam nos filtros, em ordem cronológica
func (r *transactionRepository) Find(filters *domain.Filters) []*domain.Transaction {
	if filters.IsEmptyRange() {
		return []*domain.Transaction{}
	}

	result := make([]*domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if filters.Matches(tx) {
			result = append(result, tx)
		}
	}
	return result
}

func (r *transactionRepository) Options() *domain.FilterOptions {
	return r.options
}

func buildOptions(transactions []*domain.Transaction) *domain.FilterOptions {
	options := &domain.FilterOptions{
		CoffeeNames:    []string{},
		PaymentMethods: []domain.PaymentMethod{},
		Seasons:        []domain.Season{},
		TimesOfDay:     []domain.TimeOfDay{},
		Weekdays:       []string{},
		Years:          []int{},
	}

	if len(transactions) == 0 {
		return options
	}

	first := transactions[0].Date
	last := transactions[len(transactions)-1].Date
	options.MinDate = &first
	options.MaxDate = &last

	coffees := map[string]bool{}
	payments := map[domain.PaymentMethod]bool{}
	seasons := map[domain.Season]bool{}
	times := map[domain.TimeOfDay]bool{}
	weekdays := map[int]bool{}
	years := map[int]bool{}

	for _, tx := range transactions {
		coffees[tx.CoffeeName] = true
		payments[tx.PaymentMethod] = true
		seasons[tx.Season] = true
		times[tx.TimeOfDay] = true
		weekdays[tx.WeekdayOrder] = true
		years[tx.Year] = true
	}

	for name := range coffees {
		options.CoffeeNames = append(options.CoffeeNames, name)
	}
	sort.Strings(options.CoffeeNames)

	for _, payment := range domain.PaymentMethods {
		if payments[payment] {
			options.PaymentMethods = append(options.PaymentMethods, payment)
		}
	}
	for _, season := range domain.Seasons {
		if seasons[season] {
			options.Seasons = append(options.Seasons, season)
		}
	}
	for _, tod := range domain.TimesOfDay {
		if times[tod] {
			options.TimesOfDay = append(options.TimesOfDay, tod)
		}
	}
	for ordinal := 1; ordinal <= 7; ordinal++ {
		if weekdays[ordinal] {
			options.Weekdays = append(options.Weekdays, domain.WeekdayFromOrdinal(ordinal).String())
		}
	}
	for year := range years {
		options.Years = append(options.Years, year)
	}
	sort.Ints(options.Years)

	return options
}
