package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/coffee-sales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/coffee-sales-dashboard/internal/config"
	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

// DatasetWatchConfig representa a configuração do agendador de verificação do dataset
type DatasetWatchConfig struct {
	CronSchedule string
	WatchEnabled bool
	Path         string
}

// DatasetWatchService verifica periodicamente se o arquivo do dataset mudou
// desde a carga. O dataset nunca é recarregado: uma mudança apenas gera um
// aviso para que o operador reinicie o processo.
type DatasetWatchService struct {
	scheduler   *gocron.Scheduler
	config      DatasetWatchConfig
	loaded      string
	fingerprint func(path string) (string, error)

	checkRunning         bool
	checkMutex           sync.Mutex
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastFingerprint      string
	lastError            string
	changed              bool
}

// NewDatasetWatchService cria o serviço a partir do relatório da carga
func NewDatasetWatchService(report *domain.LoadReport, appConfig *config.Config) *DatasetWatchService {
	watchConfig := DatasetWatchConfig{
		CronSchedule: appConfig.DatasetWatch.CronSchedule,
		WatchEnabled: appConfig.DatasetWatch.Enabled,
		Path:         appConfig.Dataset.Path,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": watchConfig.CronSchedule,
		"watch_enabled": watchConfig.WatchEnabled,
		"dataset_path":  watchConfig.Path,
	}).Info("Configuração do agendador de verificação do dataset carregada")

	return &DatasetWatchService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      watchConfig,
		loaded:      report.Fingerprint,
		fingerprint: dataset.FingerprintFile,
	}
}

// Start inicia o agendador
func (s *DatasetWatchService) Start(ctx context.Context) error {
	if !s.config.WatchEnabled {
		logrus.Info("Verificação do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.checkDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// checkDataset compara o hash atual do arquivo com o hash da carga
func (s *DatasetWatchService) checkDataset() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do dataset já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.lastCheckStartedAt = time.Now()
	s.checkMutex.Unlock()

	current, err := s.fingerprint(s.config.Path)

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	s.checkRunning = false
	s.lastCheckCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).WithField("dataset_path", s.config.Path).Error("Erro ao verificar o dataset")
		return
	}

	s.lastError = ""
	s.lastFingerprint = current
	s.changed = current != s.loaded

	if s.changed {
		logrus.WithFields(logrus.Fields{
			"dataset_path":        s.config.Path,
			"loaded_fingerprint":  s.loaded,
			"current_fingerprint": current,
		}).Warn("Dataset alterado desde a carga; reinicie o dashboard para usar os novos dados")
		return
	}

	logrus.WithField("dataset_path", s.config.Path).Debug("Dataset inalterado")
}

// TriggerManualSync executa a verificação fora do agendamento
func (s *DatasetWatchService) TriggerManualSync() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual do dataset")
	go s.checkDataset()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetWatchService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"watch_enabled":           s.config.WatchEnabled,
		"watch_cron":              s.config.CronSchedule,
		"dataset_path":            s.config.Path,
		"loaded_fingerprint":      s.loaded,
		"current_fingerprint":     s.lastFingerprint,
		"dataset_changed":         s.changed,
		"last_error":              s.lastError,
		"check_running":           s.checkRunning,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
	}
}
