// Package predicting ajusta e consulta o modelo de regressão do valor das
// vendas
package predicting

import (
	"context"
	"fmt"

	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

// Predictor expõe o modelo ajustado na inicialização. Quando o modelo não
// pôde ser ajustado, os métodos retornam ErrModelUnavailable.
type Predictor interface {
	Summary() (*domain.ModelSummary, error)
	Predict(input domain.PredictionInput) (*domain.Prediction, error)
}

type Settings struct {
	Enabled    bool
	TrainRatio float64
	Seed       int64
}

type Service struct {
	model  *Model
	reason string
}

// NewService ajusta o modelo uma única vez sobre a tabela completa
func NewService(ctx context.Context, transactions []*domain.Transaction, settings Settings) Predictor {
	logger := log.ForContext(ctx)

	if !settings.Enabled {
		logger.Info("Modelo desabilitado por configuração")
		return &Service{reason: "model disabled by configuration"}
	}

	model, err := Fit(transactions, settings.TrainRatio, settings.Seed)
	if err != nil {
		logger.WithError(err).Warn("Modelo indisponível")
		return &Service{reason: err.Error()}
	}

	summary := model.Summary()
	fields := log.Fields{
		"model_train_rows": summary.TrainRows,
		"model_test_rows":  summary.TestRows,
		"model_features":   len(summary.Coefficients),
		"model_rmse":       summary.RMSE,
	}
	if summary.R2 != nil {
		fields["model_r2"] = *summary.R2
	}
	logger.WithFields(fields).Info("Modelo ajustado")

	return &Service{model: model}
}

func (s *Service) Summary() (*domain.ModelSummary, error) {
	if s.model == nil {
		return nil, s.unavailable()
	}

	summary := s.model.Summary()
	return &summary, nil
}

func (s *Service) Predict(input domain.PredictionInput) (*domain.Prediction, error) {
	if s.model == nil {
		return nil, s.unavailable()
	}
	return s.model.Predict(input)
}

func (s *Service) unavailable() error {
	return fmt.Errorf("%w: %s", ErrModelUnavailable, s.reason)
}
