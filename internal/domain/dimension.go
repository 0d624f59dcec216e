package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dimension é uma coluna categórica pela qual as vendas podem ser agrupadas
type Dimension string

const (
	DimensionWeekday   Dimension = "weekday"
	DimensionMonth     Dimension = "month"
	DimensionSeason    Dimension = "season"
	DimensionCoffee    Dimension = "coffee"
	DimensionTimeOfDay Dimension = "time_of_day"
	DimensionPayment   Dimension = "payment"
	DimensionHour      Dimension = "hour"
	DimensionDayType   Dimension = "day_type"
	DimensionYear      Dimension = "year"
	DimensionDate      Dimension = "date"
)

var Dimensions = []Dimension{
	DimensionWeekday,
	DimensionMonth,
	DimensionSeason,
	DimensionCoffee,
	DimensionTimeOfDay,
	DimensionPayment,
	DimensionHour,
	DimensionDayType,
	DimensionYear,
	DimensionDate,
}

// DimensionValue é o rótulo de um grupo e sua posição na ordem natural da
// dimensão. Rank igual desempata pelo rótulo.
type DimensionValue struct {
	Label string
	Rank  int
}

// Less ordena pela ordem natural e depois alfabeticamente
func (v DimensionValue) Less(other DimensionValue) bool {
	if v.Rank != other.Rank {
		return v.Rank < other.Rank
	}
	return v.Label < other.Label
}

func ParseDimension(value string) (Dimension, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, d := range Dimensions {
		if string(d) == value {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown dimension %q", value)
}

// ValueOf extrai o valor da dimensão para a transação
func (d Dimension) ValueOf(tx *Transaction) DimensionValue {
	switch d {
	case DimensionWeekday:
		return DimensionValue{Label: tx.Weekday, Rank: tx.WeekdayOrder}
	case DimensionMonth:
		return DimensionValue{Label: tx.Month, Rank: tx.MonthOrder}
	case DimensionSeason:
		return DimensionValue{Label: string(tx.Season), Rank: SeasonRank(tx.Season)}
	case DimensionCoffee:
		return DimensionValue{Label: tx.CoffeeName}
	case DimensionTimeOfDay:
		return DimensionValue{Label: string(tx.TimeOfDay), Rank: TimeOfDayRank(tx.TimeOfDay)}
	case DimensionPayment:
		return DimensionValue{Label: string(tx.PaymentMethod)}
	case DimensionHour:
		return DimensionValue{Label: strconv.Itoa(tx.Hour), Rank: tx.Hour}
	case DimensionDayType:
		rank := 0
		if tx.DayType == Weekend {
			rank = 1
		}
		return DimensionValue{Label: string(tx.DayType), Rank: rank}
	case DimensionYear:
		return DimensionValue{Label: strconv.Itoa(tx.Year), Rank: tx.Year}
	case DimensionDate:
		return DimensionValue{Label: tx.Date.Format(time.DateOnly)}
	}
	return DimensionValue{}
}

func SeasonRank(season Season) int {
	for i, s := range Seasons {
		if s == season {
			return i
		}
	}
	return len(Seasons)
}

func TimeOfDayRank(tod TimeOfDay) int {
	for i, t := range TimesOfDay {
		if t == tod {
			return i
		}
	}
	return len(TimesOfDay)
}
