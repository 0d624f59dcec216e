package handler

import (
	"net/http"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

func GetModel(predictor predicting.Predictor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := predictor.Summary()
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, summary)
	})
}

func Predict(predictor predicting.Predictor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.PredictionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logger.WithField("error", err.Error()).Warn("model: invalid prediction payload")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		if input.TimeOfDay == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "time_of_day é obrigatório", nil)
			return
		}

		prediction, err := predictor.Predict(input)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"model_coffee": input.CoffeeName,
			"model_amount": prediction.Amount,
		}).Info("model: prediction served")

		writeJSON(w, logger, http.StatusOK, prediction)
	})
}
