package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/coffee-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	dashmocks "github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting"
	predmocks "github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting/mocks"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func serve(t *testing.T, rt router.Router, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"changed": false}
}

func TestDashboardHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashmocks.NewMockDashboarder(ctrl)
	rt := router.New(
		router.WithRoutes(Dashboard(service)...),
		router.WithNotFound(NotFound()),
	)

	tests := []struct {
		name     string
		target   string
		setup    func()
		status   int
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Resumo com filtro de café repassa filtros ao serviço",
			target: "/v1/dashboard?coffee=Latte&start_date=2024-03-01",
			setup: func() {
				service.EXPECT().
					Summary(gomock.Any()).
					DoAndReturn(func(filters *domain.Filters) *domain.DashboardSummary {
						assert.Equal(t, []string{"Latte"}, filters.CoffeeNames)
						require.NotNil(t, filters.StartDate)
						return &domain.DashboardSummary{
							Filters: filters,
							KPIs:    domain.SalesMetrics{TotalRevenue: 35.76, SalesQuantity: 1, AverageTicket: 35.76},
						}
					})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var summary domain.DashboardSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
				assert.False(t, summary.Empty)
				assert.Equal(t, 35.76, summary.KPIs.TotalRevenue)
			},
		},
		{
			name:   "Resultado vazio responde 200 com estado vazio",
			target: "/v1/dashboard?start_date=2024-06-01&end_date=2024-01-01",
			setup: func() {
				service.EXPECT().
					Summary(gomock.Any()).
					Return(&domain.DashboardSummary{Empty: true, Message: domain.EmptyResultMessage})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"empty":true`)
			},
		},
		{
			name:   "Data inválida responde 400",
			target: "/v1/dashboard?start_date=ontem",
			setup:  func() {},
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFilter, decodeError(t, rec).Code)
			},
		},
		{
			name:   "KPIs sem vendas trazem mensagem",
			target: "/v1/kpis",
			setup: func() {
				service.EXPECT().KPIs(gomock.Any()).Return(domain.SalesMetrics{})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), domain.EmptyResultMessage)
			},
		},
		{
			name:   "Agregação por dia da semana",
			target: "/v1/aggregates?group_by=weekday",
			setup: func() {
				service.EXPECT().
					Aggregate(gomock.Any(), domain.DimensionWeekday).
					Return([]domain.Group{
						{Keys: map[domain.Dimension]string{domain.DimensionWeekday: "Monday"}, SalesMetrics: domain.SalesMetrics{TotalRevenue: 10, SalesQuantity: 3}},
					}, nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"Monday"`)
			},
		},
		{
			name:   "Agregação sem group_by responde 400",
			target: "/v1/aggregates",
			setup:  func() {},
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Agregação com dimensão desconhecida responde 400",
			target: "/v1/aggregates?group_by=store",
			setup:  func() {},
			status: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFilter, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Paginação de transações",
			target: "/v1/transactions?limit=2&offset=4",
			setup: func() {
				service.EXPECT().
					Transactions(gomock.Any(), 2, 4).
					Return(&domain.TransactionPage{Total: 8, Limit: 2, Offset: 4}, nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"total":8`)
			},
		},
		{
			name:   "Limite negativo responde 400",
			target: "/v1/transactions?limit=-1",
			setup:  func() {},
			status: http.StatusBadRequest,
		},
		{
			name:   "Gráfico existente",
			target: "/v1/charts/monthly_revenue",
			setup: func() {
				service.EXPECT().
					Chart("monthly_revenue", gomock.Any()).
					Return(domain.ChartSpec{"mark": "line"}, nil)
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"mark":"line"`)
			},
		},
		{
			name:   "Gráfico inexistente responde 404",
			target: "/v1/charts/pizza",
			setup: func() {
				service.EXPECT().
					Chart("pizza", gomock.Any()).
					Return(nil, dashboarding.ErrChartNotFound)
			},
			status: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrChartNotFound, decodeError(t, rec).Code)
			},
		},
		{
			name:   "Relatório de carga",
			target: "/v1/dataset/report",
			setup: func() {
				service.EXPECT().Report().Return(&domain.LoadReport{
					RowsRead:     3,
					RowsAccepted: 2,
					RowsRejected: 1,
					Rejected:     []domain.RowError{{Row: 3, Reason: "money: must be greater than zero"}},
				})
			},
			status: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"row":3`)
			},
		},
		{
			name:   "Rota inexistente",
			target: "/v1/nada",
			setup:  func() {},
			status: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(t, rt, http.MethodGet, tt.target, nil)

			assert.Equal(t, tt.status, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestModelHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	predictor := predmocks.NewMockPredictor(ctrl)
	rt := router.New(router.WithRoutes(Model(predictor)...))

	t.Run("Resumo do modelo", func(t *testing.T) {
		r2 := 0.93
		predictor.EXPECT().Summary().Return(&domain.ModelSummary{Target: "log1p(money)", R2: &r2, RMSE: 0.05}, nil)

		rec := serve(t, rt, http.MethodGet, "/v1/model", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"r2":0.93`)
	})

	t.Run("Modelo indisponível responde 503", func(t *testing.T) {
		predictor.EXPECT().Summary().Return(nil, predicting.ErrModelUnavailable)

		rec := serve(t, rt, http.MethodGet, "/v1/model", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, apiErrors.ErrModelUnavailable, decodeError(t, rec).Code)
	})

	t.Run("Predição", func(t *testing.T) {
		input := domain.PredictionInput{CoffeeName: "Latte", TimeOfDay: domain.Morning, Year: 2024, Month: 3, DayOfWeek: 0, Hour: 9}
		predictor.EXPECT().Predict(input).Return(&domain.Prediction{Input: input, Season: domain.Spring, Amount: 35.5}, nil)

		body := []byte(`{"coffee_name":"Latte","time_of_day":"Morning","year":2024,"month":3,"day_of_week":0,"hour":9}`)
		rec := serve(t, rt, http.MethodPost, "/v1/model/predict", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount":35.5`)
	})

	t.Run("Entrada inválida responde 400", func(t *testing.T) {
		predictor.EXPECT().Predict(gomock.Any()).Return(nil, fmt.Errorf("%w: month 13 outside 1-12", predicting.ErrInvalidInput))

		rec := serve(t, rt, http.MethodPost, "/v1/model/predict", []byte(`{"time_of_day":"Morning","month":13}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Predição sem time_of_day responde 400", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/v1/model/predict", []byte(`{"coffee_name":"Latte","month":3}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)
	})

	t.Run("Corpo malformado responde 400", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/v1/model/predict", []byte(`{"month":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})
}

func TestCronHandlers(t *testing.T) {
	job := &fakeCronJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{DatasetWatchService: job})...))

	rec := serve(t, rt, http.MethodPost, "/v1/cron/dataset-watch/run", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, job.triggered)

	rec = serve(t, rt, http.MethodPost, "/v1/cron/all/run", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, job.triggered)

	rec = serve(t, rt, http.MethodPost, "/v1/cron/meta/run", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 2, job.triggered)

	rec = serve(t, rt, http.MethodGet, "/v1/cron/all/status", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), CronJobTypeDatasetWatch)

	rec = serve(t, rt, http.MethodGet, "/v1/cron/meta/status", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashmocks.NewMockDashboarder(ctrl)
	service.EXPECT().Report().Return(&domain.LoadReport{RowsAccepted: 3547, LoadedAt: time.Now()})

	rt := router.New(router.WithRoutes(Healthcheck(service)...))
	rec := serve(t, rt, http.MethodGet, "/healthcheck", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rows_loaded":3547`)
}

func TestDashboardPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashmocks.NewMockDashboarder(ctrl)
	predictor := predmocks.NewMockPredictor(ctrl)
	rt := router.New(router.WithRoutes(Page(service, predictor)...))

	available := &domain.FilterOptions{
		CoffeeNames:    []string{"Americano", "Latte"},
		PaymentMethods: []domain.PaymentMethod{domain.PaymentCard, domain.PaymentCash},
		Seasons:        domain.Seasons,
		TimesOfDay:     domain.TimesOfDay,
		Weekdays:       []string{"Monday", "Tuesday"},
		Years:          []int{2024},
	}
	charts := []domain.ChartInfo{
		{Name: "monthly_revenue", Title: "Monthly Revenue Trend", Tab: dashboarding.TabMonthly},
		{Name: "amount_histogram", Title: "Distribution of Transaction Values", Tab: dashboarding.TabAdvanced},
	}

	t.Run("Página com vendas", func(t *testing.T) {
		service.EXPECT().Options().Return(available)
		service.EXPECT().Report().Return(&domain.LoadReport{Source: "Coffe_sales.csv", RowsAccepted: 8})
		service.EXPECT().Charts().Return(charts)
		service.EXPECT().Summary(gomock.Any()).Return(&domain.DashboardSummary{
			KPIs: domain.SalesMetrics{TotalRevenue: 278.56, SalesQuantity: 8, AverageTicket: 34.82},
		})
		r2 := 0.9
		predictor.EXPECT().Summary().Return(&domain.ModelSummary{
			Target:       "log1p(money)",
			R2:           &r2,
			Coefficients: []domain.Coefficient{{Feature: "const", Value: 3.4}},
		}, nil)

		rec := serve(t, rt, http.MethodGet, "/?coffee=Latte", nil)
		page := rec.Body.String()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
		assert.Contains(t, page, "$278.56")
		assert.Contains(t, page, `<option value="Latte" selected>`)
		assert.Contains(t, page, `<option value="Americano">`)
		assert.Contains(t, page, `data-chart="monthly_revenue"`)
		assert.Contains(t, page, "Model Analysis")
		assert.Contains(t, page, "predict-form")
	})

	t.Run("Página sem vendas mostra aviso e nenhum gráfico", func(t *testing.T) {
		service.EXPECT().Options().Return(available)
		service.EXPECT().Report().Return(nil)
		service.EXPECT().Charts().Return(charts)
		service.EXPECT().Summary(gomock.Any()).Return(&domain.DashboardSummary{Empty: true, Message: domain.EmptyResultMessage})
		predictor.EXPECT().Summary().Return(nil, predicting.ErrModelUnavailable)

		rec := serve(t, rt, http.MethodGet, "/?start_date=2025-01-01&end_date=2024-01-01", nil)
		page := rec.Body.String()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, page, "Nenhum dado disponível")
		assert.NotContains(t, page, "data-chart=")
		assert.Contains(t, page, "Model unavailable")
	})

	t.Run("Filtro inválido responde 400", func(t *testing.T) {
		rec := serve(t, rt, http.MethodGet, "/?payment=pix", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
