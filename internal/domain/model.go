package domain

import "time"

// Coefficient é o peso ajustado de uma feature do modelo
type Coefficient struct {
	Feature string  `json:"feature"`
	Value   float64 `json:"value"`
}

// ModelSummary descreve o modelo de regressão ajustado na inicialização.
// R2 é nulo quando a variância do conjunto de teste é zero.
type ModelSummary struct {
	Target       string        `json:"target"`
	Method       string        `json:"method"`
	TrainRows    int           `json:"train_rows"`
	TestRows     int           `json:"test_rows"`
	Rank         int           `json:"rank"`
	Coefficients []Coefficient `json:"coefficients"`
	R2           *float64      `json:"r2"`
	RMSE         float64       `json:"rmse"`
	TrainedAt    time.Time     `json:"trained_at"`
}

// PredictionInput são as características de uma venda hipotética.
// DayOfWeek começa em 0 na segunda-feira.
type PredictionInput struct {
	CoffeeName string    `json:"coffee_name"`
	TimeOfDay  TimeOfDay `json:"time_of_day"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	DayOfWeek  int       `json:"day_of_week"`
	Hour       int       `json:"hour"`
}

type Prediction struct {
	Input         PredictionInput `json:"input"`
	Season        Season          `json:"season"`
	LogPrediction float64         `json:"log_prediction"`
	Amount        float64         `json:"amount"`
}
