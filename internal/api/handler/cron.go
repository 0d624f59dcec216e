package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/coffee-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDatasetWatch = "dataset-watch"
	CronJobTypeAll          = "all"
)

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DatasetWatchService CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger.WithField("type", cronType).Info("cron: manual run requested")

		switch cronType {
		case CronJobTypeDatasetWatch, CronJobTypeAll:
			if services.DatasetWatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação do dataset não disponível", nil)
				return
			}
			services.DatasetWatchService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-watch, all", nil)
			return
		}

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs do tipo informado
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		status := map[string]any{}
		switch cronType {
		case CronJobTypeDatasetWatch, CronJobTypeAll:
			if services.DatasetWatchService != nil {
				status[CronJobTypeDatasetWatch] = services.DatasetWatchService.GetStatus()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-watch, all", nil)
			return
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	})
}
