package domain

import (
	"slices"
	"time"
)

// Filters são as seleções do usuário no dashboard. Listas vazias não
// restringem nada; as datas são inclusivas e comparadas apenas pelo dia.
type Filters struct {
	StartDate      *time.Time      `json:"start_date,omitempty"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	CoffeeNames    []string        `json:"coffee_names,omitempty"`
	PaymentMethods []PaymentMethod `json:"payment_methods,omitempty"`
	Seasons        []Season        `json:"seasons,omitempty"`
	TimesOfDay     []TimeOfDay     `json:"times_of_day,omitempty"`
	Weekdays       []string        `json:"weekdays,omitempty"`
}

// IsEmptyRange indica um intervalo de datas que não contém nenhum dia
func (f *Filters) IsEmptyRange() bool {
	if f == nil || f.StartDate == nil || f.EndDate == nil {
		return false
	}
	return dateOnly(*f.StartDate).After(dateOnly(*f.EndDate))
}

// Matches retorna verdadeiro se a transação passa em todos os filtros
func (f *Filters) Matches(tx *Transaction) bool {
	if f == nil {
		return true
	}

	date := dateOnly(tx.Date)
	if f.StartDate != nil && date.Before(dateOnly(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && date.After(dateOnly(*f.EndDate)) {
		return false
	}

	// coffee_name é comparado com diferenciação de maiúsculas
	if len(f.CoffeeNames) > 0 && !slices.Contains(f.CoffeeNames, tx.CoffeeName) {
		return false
	}
	if len(f.PaymentMethods) > 0 && !slices.Contains(f.PaymentMethods, tx.PaymentMethod) {
		return false
	}
	if len(f.Seasons) > 0 && !slices.Contains(f.Seasons, tx.Season) {
		return false
	}
	if len(f.TimesOfDay) > 0 && !slices.Contains(f.TimesOfDay, tx.TimeOfDay) {
		return false
	}
	if len(f.Weekdays) > 0 && !slices.Contains(f.Weekdays, tx.Weekday) {
		return false
	}

	return true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
