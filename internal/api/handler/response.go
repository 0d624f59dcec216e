package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/apiErrors"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("dashboard: failed to encode response")
	}
}

// writeServiceError traduz os erros dos serviços para os códigos da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	code := apiErrors.ErrInternalServer

	switch {
	case errors.Is(err, dashboarding.ErrChartNotFound):
		code = apiErrors.ErrChartNotFound
	case errors.Is(err, dashboarding.ErrInvalidDimension), errors.Is(err, dashboarding.ErrInvalidPagination):
		code = apiErrors.ErrInvalidFilter
	case errors.Is(err, predicting.ErrModelUnavailable):
		code = apiErrors.ErrModelUnavailable
	case errors.Is(err, predicting.ErrInvalidInput):
		code = apiErrors.ErrInvalidRequest
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.WithError(err).Error("dashboard: request failed")
	} else {
		logger.WithError(err).Warn("dashboard: request rejected")
	}

	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

// NotFound responde rotas inexistentes no formato de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Rota não encontrada: "+r.URL.Path, nil)
	})
}
