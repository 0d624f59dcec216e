package handler

import (
	"net/http"

	"github.com/vfg2006/coffee-sales-dashboard/internal/api/handler/router"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting"
)

func Healthcheck(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Page(service dashboarding.Dashboarder, predictor predicting.Predictor) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service, predictor),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/aggregates",
			Method:  http.MethodGet,
			Handler: GetAggregates(service),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: GetTransactions(service),
		},
		{
			Path:    "/v1/charts",
			Method:  http.MethodGet,
			Handler: ListCharts(service),
		},
		{
			Path:    "/v1/charts/:name",
			Method:  http.MethodGet,
			Handler: GetChart(service),
		},
		{
			Path:    "/v1/dataset/report",
			Method:  http.MethodGet,
			Handler: GetDatasetReport(service),
		},
	}
}

func Model(predictor predicting.Predictor) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/model",
			Method:  http.MethodGet,
			Handler: GetModel(predictor),
		},
		{
			Path:    "/v1/model/predict",
			Method:  http.MethodPost,
			Handler: Predict(predictor),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/:type/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
