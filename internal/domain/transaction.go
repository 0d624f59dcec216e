// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// TimeOfDay é o período do dia derivado da hora da transação
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Night     TimeOfDay = "Night"
)

type Season string

const (
	Winter Season = "Winter"
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
)

type DayType string

const (
	Weekday DayType = "Weekday"
	Weekend DayType = "Weekend"
)

var (
	PaymentMethods = []PaymentMethod{PaymentCard, PaymentCash}
	TimesOfDay     = []TimeOfDay{Morning, Afternoon, Night}
	Seasons        = []Season{Winter, Spring, Summer, Autumn}
	DayTypes       = []DayType{Weekday, Weekend}
)

var (
	ErrNonPositiveAmount    = errors.New("amount must be greater than zero")
	ErrMissingCoffeeName    = errors.New("coffee name is required")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownTimeOfDay     = errors.New("unknown time of day")
	ErrUnknownSeason        = errors.New("unknown season")
	ErrUnknownWeekday       = errors.New("unknown weekday")
)

// Transaction é uma linha da tabela carregada do dataset. Campos derivados
// são calculados a partir do Timestamp em NewTransaction e nunca alterados.
type Transaction struct {
	ID            string          `json:"id"`
	Row           int             `json:"row"`
	Timestamp     time.Time       `json:"timestamp"`
	Date          time.Time       `json:"date"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	CoffeeName    string          `json:"coffee_name"`
	Hour          int             `json:"hour"`
	TimeOfDay     TimeOfDay       `json:"time_of_day"`
	Weekday       string          `json:"weekday"`
	WeekdayOrder  int             `json:"weekday_order"`
	Month         string          `json:"month"`
	MonthOrder    int             `json:"month_order"`
	Year          int             `json:"year"`
	Season        Season          `json:"season"`
	DayType       DayType         `json:"day_type"`
}

// NewTransaction valida os campos de origem e calcula os derivados
func NewTransaction(timestamp time.Time, payment PaymentMethod, amount decimal.Decimal, coffeeName string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveAmount, amount.String())
	}

	if strings.TrimSpace(coffeeName) == "" {
		return nil, ErrMissingCoffeeName
	}

	if _, err := ParsePaymentMethod(string(payment)); err != nil {
		return nil, err
	}

	return &Transaction{
		Timestamp:     timestamp,
		Date:          time.Date(timestamp.Year(), timestamp.Month(), timestamp.Day(), 0, 0, 0, 0, timestamp.Location()),
		PaymentMethod: payment,
		Amount:        amount,
		CoffeeName:    coffeeName,
		Hour:          timestamp.Hour(),
		TimeOfDay:     TimeOfDayFor(timestamp.Hour()),
		Weekday:       timestamp.Weekday().String(),
		WeekdayOrder:  WeekdayOrdinal(timestamp.Weekday()),
		Month:         timestamp.Month().String(),
		MonthOrder:    int(timestamp.Month()),
		Year:          timestamp.Year(),
		Season:        SeasonFor(timestamp.Month()),
		DayType:       DayTypeFor(timestamp.Weekday()),
	}, nil
}

// DayOfWeek retorna o dia da semana começando em 0 na segunda-feira
func (t *Transaction) DayOfWeek() int {
	return t.WeekdayOrder - 1
}

// TimeOfDayFor particiona as 24 horas: 0-11 manhã, 12-16 tarde, 17-23 noite
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour < 12:
		return Morning
	case hour < 17:
		return Afternoon
	default:
		return Night
	}
}

// SeasonFor usa a convenção do hemisfério norte
func SeasonFor(month time.Month) Season {
	switch month {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Autumn
	}
}

// WeekdayOrdinal retorna 1 para segunda-feira e 7 para domingo
func WeekdayOrdinal(day time.Weekday) int {
	return (int(day)+6)%7 + 1
}

// WeekdayFromOrdinal é o inverso de WeekdayOrdinal
func WeekdayFromOrdinal(ordinal int) time.Weekday {
	return time.Weekday(ordinal % 7)
}

func DayTypeFor(day time.Weekday) DayType {
	if day == time.Saturday || day == time.Sunday {
		return Weekend
	}
	return Weekday
}

func ParsePaymentMethod(value string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(value))) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentCard:
		return PaymentCard, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, value)
}

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	for _, tod := range TimesOfDay {
		if strings.EqualFold(string(tod), strings.TrimSpace(value)) {
			return tod, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeOfDay, value)
}

// ParseSeason aceita "Fall" como sinônimo de Autumn
func ParseSeason(value string) (Season, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, "fall") {
		return Autumn, nil
	}
	for _, season := range Seasons {
		if strings.EqualFold(string(season), value) {
			return season, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSeason, value)
}

// ParseWeekday aceita o nome completo ("Monday") ou abreviado ("Mon")
// e devolve o nome completo
func ParseWeekday(value string) (string, error) {
	value = strings.TrimSpace(value)
	for day := time.Sunday; day <= time.Saturday; day++ {
		name := day.String()
		if strings.EqualFold(name, value) || strings.EqualFold(name[:3], value) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, value)
}
