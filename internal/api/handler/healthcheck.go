package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

func HealthcheckHandler(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		report := service.Report()

		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if report != nil {
			body["rows_loaded"] = report.RowsAccepted
			body["loaded_at"] = report.LoadedAt
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, body)
	})
}
