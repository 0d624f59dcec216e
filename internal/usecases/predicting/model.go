package predicting

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

const (
	interceptFeature = "const"
	targetName       = "log1p(money)"
	methodName       = "OLS (SVD pseudo-inverse)"

	// limiar relativo de valores singulares, igual ao padrão do numpy pinv
	singularThreshold = 1e-15
)

var numericFeatures = []string{"hour", "day_of_week", "month"}

// observation são as variáveis de uma venda antes da codificação
type observation struct {
	numeric   [3]float64
	coffee    string
	timeOfDay string
	year      string
	season    string
	logAmount float64
}

// categorical guarda os níveis de uma variável categórica. O primeiro
// nível em ordem alfabética é a referência e não vira coluna.
type categorical struct {
	name   string
	levels []string
	value  func(o observation) string
}

// Model é uma regressão linear do log do valor da venda. Depois de
// ajustado é somente leitura.
type Model struct {
	columns      []column
	coefficients []float64
	means        [3]float64
	stds         [3]float64
	summary      domain.ModelSummary
}

// column descreve como preencher uma coluna da matriz de desenho
type column struct {
	feature string
	fill    func(o observation, m *Model) float64
}

func observe(tx *domain.Transaction) observation {
	return observation{
		numeric:   [3]float64{float64(tx.Hour), float64(tx.DayOfWeek()), float64(tx.MonthOrder)},
		coffee:    tx.CoffeeName,
		timeOfDay: string(tx.TimeOfDay),
		year:      strconv.Itoa(tx.Year),
		season:    string(tx.Season),
		logAmount: math.Log1p(tx.Amount.InexactFloat64()),
	}
}

// Fit ajusta o modelo com uma divisão aleatória treino/teste reprodutível
// pela semente
func Fit(transactions []*domain.Transaction, trainRatio float64, seed int64) (*Model, error) {
	if len(transactions) == 0 {
		return nil, fmt.Errorf("%w: no transactions", ErrModelUnavailable)
	}
	if trainRatio <= 0 || trainRatio >= 1 {
		return nil, fmt.Errorf("%w: train ratio %v outside (0, 1)", ErrInvalidInput, trainRatio)
	}

	observations := make([]observation, len(transactions))
	for i, tx := range transactions {
		observations[i] = observe(tx)
	}

	model := &Model{}
	model.standardize(observations)
	model.buildColumns(observations)

	n := len(observations)
	p := len(model.columns)
	trainSize := int(trainRatio * float64(n))
	testSize := n - trainSize

	if trainSize < p || testSize == 0 {
		return nil, fmt.Errorf("%w: %d rows are not enough for %d features", ErrModelUnavailable, n, p)
	}

	permutation := rand.New(rand.NewSource(seed)).Perm(n)
	train, test := permutation[:trainSize], permutation[trainSize:]

	x := model.design(observations, train)
	y := mat.NewVecDense(trainSize, targets(observations, train))

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: SVD factorization failed", ErrModelUnavailable)
	}
	rank := svd.Rank(singularThreshold)

	var beta mat.VecDense
	svd.SolveVecTo(&beta, y, rank)

	model.coefficients = make([]float64, p)
	for j := range model.coefficients {
		model.coefficients[j] = beta.AtVec(j)
	}

	model.summary = domain.ModelSummary{
		Target:       targetName,
		Method:       methodName,
		TrainRows:    trainSize,
		TestRows:     testSize,
		Rank:         rank,
		Coefficients: make([]domain.Coefficient, p),
		TrainedAt:    time.Now(),
	}
	for j, c := range model.columns {
		model.summary.Coefficients[j] = domain.Coefficient{Feature: c.feature, Value: model.coefficients[j]}
	}

	model.summary.R2, model.summary.RMSE = model.evaluate(observations, test)

	return model, nil
}

// standardize guarda média e desvio padrão amostral de cada feature numérica
func (m *Model) standardize(observations []observation) {
	values := make([]float64, len(observations))
	for k := range numericFeatures {
		for i, o := range observations {
			values[i] = o.numeric[k]
		}
		m.means[k], m.stds[k] = stat.MeanStdDev(values, nil)
		if math.IsNaN(m.stds[k]) {
			m.stds[k] = 0
		}
	}
}

func (m *Model) scaled(o observation, k int) float64 {
	if m.stds[k] == 0 {
		return 0
	}
	return (o.numeric[k] - m.means[k]) / m.stds[k]
}

// buildColumns define as colunas na ordem: intercepto, numéricas e dummies.
// Colunas sem nenhum valor diferente de zero são descartadas.
func (m *Model) buildColumns(observations []observation) {
	m.columns = []column{{
		feature: interceptFeature,
		fill:    func(observation, *Model) float64 { return 1 },
	}}

	for k, name := range numericFeatures {
		if m.stds[k] == 0 {
			continue
		}
		m.columns = append(m.columns, column{
			feature: name,
			fill:    func(o observation, m *Model) float64 { return m.scaled(o, k) },
		})
	}

	variables := []categorical{
		{name: "coffee_name", value: func(o observation) string { return o.coffee }},
		{name: "time_of_day", value: func(o observation) string { return o.timeOfDay }},
		{name: "year", value: func(o observation) string { return o.year }},
		{name: "season", value: func(o observation) string { return o.season }},
	}

	for _, v := range variables {
		seen := map[string]bool{}
		for _, o := range observations {
			seen[v.value(o)] = true
		}
		for level := range seen {
			v.levels = append(v.levels, level)
		}
		sort.Strings(v.levels)

		for _, level := range v.levels[1:] {
			m.columns = append(m.columns, column{
				feature: v.name + "_" + level,
				fill: func(o observation, _ *Model) float64 {
					if v.value(o) == level {
						return 1
					}
					return 0
				},
			})
		}
	}
}

func (m *Model) row(o observation) []float64 {
	row := make([]float64, len(m.columns))
	for j, c := range m.columns {
		row[j] = c.fill(o, m)
	}
	return row
}

func (m *Model) design(observations []observation, rows []int) *mat.Dense {
	x := mat.NewDense(len(rows), len(m.columns), nil)
	for i, idx := range rows {
		x.SetRow(i, m.row(observations[idx]))
	}
	return x
}

func targets(observations []observation, rows []int) []float64 {
	y := make([]float64, len(rows))
	for i, idx := range rows {
		y[i] = observations[idx].logAmount
	}
	return y
}

func (m *Model) predictRow(row []float64) float64 {
	return mat.Dot(mat.NewVecDense(len(row), row), mat.NewVecDense(len(m.coefficients), m.coefficients))
}

// evaluate calcula R² e RMSE na escala logarítmica. R² é nulo quando o
// conjunto de teste tem variância zero.
func (m *Model) evaluate(observations []observation, test []int) (*float64, float64) {
	actual := targets(observations, test)
	mean := stat.Mean(actual, nil)

	var ssr, sst float64
	for i, idx := range test {
		residual := actual[i] - m.predictRow(m.row(observations[idx]))
		ssr += residual * residual
		sst += (actual[i] - mean) * (actual[i] - mean)
	}

	rmse := math.Sqrt(ssr / float64(len(test)))
	if sst == 0 {
		return nil, rmse
	}

	r2 := 1 - ssr/sst
	return &r2, rmse
}

func (m *Model) Summary() domain.ModelSummary {
	return m.summary
}

// Predict estima o valor de uma venda. Categorias desconhecidas caem no
// nível de referência e a estação vem do mês.
func (m *Model) Predict(input domain.PredictionInput) (*domain.Prediction, error) {
	timeOfDay, err := validate(input)
	if err != nil {
		return nil, err
	}

	season := domain.SeasonFor(time.Month(input.Month))
	o := observation{
		numeric:   [3]float64{float64(input.Hour), float64(input.DayOfWeek), float64(input.Month)},
		coffee:    input.CoffeeName,
		timeOfDay: string(timeOfDay),
		year:      strconv.Itoa(input.Year),
		season:    string(season),
	}

	logPrediction := m.predictRow(m.row(o))

	return &domain.Prediction{
		Input:         input,
		Season:        season,
		LogPrediction: logPrediction,
		Amount:        math.Expm1(logPrediction),
	}, nil
}

func validate(input domain.PredictionInput) (domain.TimeOfDay, error) {
	if input.Month < 1 || input.Month > 12 {
		return "", fmt.Errorf("%w: month %d outside 1-12", ErrInvalidInput, input.Month)
	}
	if input.Hour < 0 || input.Hour > 23 {
		return "", fmt.Errorf("%w: hour %d outside 0-23", ErrInvalidInput, input.Hour)
	}
	if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
		return "", fmt.Errorf("%w: day of week %d outside 0-6", ErrInvalidInput, input.DayOfWeek)
	}

	timeOfDay, err := domain.ParseTimeOfDay(string(input.TimeOfDay))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return timeOfDay, nil
}
