package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

//go:embed templates/*.html
var templates embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"money": func(v float64) string { return "$" + strconv.FormatFloat(v, 'f', 2, 64) },
	"ptr": func(v *float64) string {
		if v == nil {
			return "n/d"
		}
		return strconv.FormatFloat(*v, 'f', 4, 64)
	},
	"fixed": func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) },
}).ParseFS(templates, "templates/dashboard.html"))

type option struct {
	Value    string
	Selected bool
}

type tab struct {
	ID     string
	Title  string
	Charts []domain.ChartInfo
}

type pageData struct {
	Summary    *domain.DashboardSummary
	Report     *domain.LoadReport
	StartDate  string
	EndDate    string
	MinDate    string
	MaxDate    string
	Coffees    []option
	Payments   []option
	Seasons    []option
	Times      []option
	Weekdays   []option
	Tabs       []tab
	Model      *domain.ModelSummary
	ModelError string
	Years      []int
	Hours      []int
}

var tabTitles = []tab{
	{ID: dashboarding.TabKPIs, Title: "KPIs"},
	{ID: dashboarding.TabMonthly, Title: "Monthly Trends"},
	{ID: dashboarding.TabSeasonal, Title: "Seasonal Analysis"},
	{ID: dashboarding.TabProducts, Title: "Product Analysis"},
	{ID: dashboarding.TabAdvanced, Title: "Advanced Insights"},
}

func options[T ~string](available []T, selected []T) []option {
	result := make([]option, 0, len(available))
	for _, value := range available {
		result = append(result, option{Value: string(value), Selected: slices.Contains(selected, value)})
	}
	return result
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

// DashboardPage renderiza o dashboard completo. Cada envio do formulário
// de filtros recarrega a página e recalcula as visões.
func DashboardPage(service dashboarding.Dashboarder, predictor predicting.Predictor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r.URL.Query())
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid filter parameter")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		available := service.Options()

		data := pageData{
			Summary:   service.Summary(filters),
			Report:    service.Report(),
			StartDate: formatDate(filters.StartDate),
			EndDate:   formatDate(filters.EndDate),
			MinDate:   formatDate(available.MinDate),
			MaxDate:   formatDate(available.MaxDate),
			Coffees:   options(available.CoffeeNames, filters.CoffeeNames),
			Payments:  options(available.PaymentMethods, filters.PaymentMethods),
			Seasons:   options(available.Seasons, filters.Seasons),
			Times:     options(available.TimesOfDay, filters.TimesOfDay),
			Weekdays:  options(available.Weekdays, filters.Weekdays),
			Years:     available.Years,
		}
		for hour := 0; hour < 24; hour++ {
			data.Hours = append(data.Hours, hour)
		}

		charts := service.Charts()
		for _, t := range tabTitles {
			for _, info := range charts {
				if info.Tab == t.ID {
					t.Charts = append(t.Charts, info)
				}
			}
			data.Tabs = append(data.Tabs, t)
		}

		model, err := predictor.Summary()
		if err != nil {
			data.ModelError = err.Error()
		} else {
			data.Model = model
		}

		var body bytes.Buffer
		if err := pageTemplate.Execute(&body, data); err != nil {
			logger.WithError(err).Error("dashboard: failed to render page")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := body.WriteTo(w); err != nil {
			logger.WithError(err).Warn("dashboard: failed to write page")
		}
	})
}
