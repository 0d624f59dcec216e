package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/coffee-sales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/coffee-sales-dashboard/internal/config"
	"github.com/vfg2006/coffee-sales-dashboard/internal/domain"
)

func newWatchService(t *testing.T, path string, enabled bool) *DatasetWatchService {
	t.Helper()

	fingerprint, err := dataset.FingerprintFile(path)
	require.NoError(t, err)

	appConfig := &config.Config{}
	appConfig.Dataset.Path = path
	appConfig.DatasetWatch.CronSchedule = "*/5 * * * *"
	appConfig.DatasetWatch.Enabled = enabled

	return NewDatasetWatchService(&domain.LoadReport{Fingerprint: fingerprint}, appConfig)
}

func writeDataset(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDatasetWatchService_checkDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	writeDataset(t, path, "Date,Time,cash_type,money,coffee_name\n")

	service := newWatchService(t, path, true)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name:  "Arquivo inalterado - não deve sinalizar mudança",
			setup: func() {},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, false, status["dataset_changed"])
				assert.Equal(t, status["loaded_fingerprint"], status["current_fingerprint"])
				assert.Equal(t, "", status["last_error"])
			},
		},
		{
			name: "Arquivo alterado - deve sinalizar mudança sem recarregar",
			setup: func() {
				writeDataset(t, path, "Date,Time,cash_type,money,coffee_name\n2024-03-01,10:00:00,card,38.7,Latte\n")
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, true, status["dataset_changed"])
				assert.NotEqual(t, status["loaded_fingerprint"], status["current_fingerprint"])
			},
		},
		{
			name: "Arquivo removido - deve registrar o erro",
			setup: func() {
				require.NoError(t, os.Remove(path))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.NotEmpty(t, status["last_error"])
				assert.Equal(t, false, status["check_running"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			service.checkDataset()
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestDatasetWatchService_TriggerManualSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	writeDataset(t, path, "Date,Time\n")

	service := newWatchService(t, path, false)

	called := make(chan struct{}, 1)
	service.fingerprint = func(string) (string, error) {
		called <- struct{}{}
		return "", errors.New("falha de leitura")
	}

	service.TriggerManualSync()

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("verificação manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_error"] == "falha de leitura"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDatasetWatchService_Start(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	writeDataset(t, path, "Date,Time\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("desabilitado não agenda nada", func(t *testing.T) {
		service := newWatchService(t, path, false)
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 0, len(service.scheduler.Jobs()))
	})

	t.Run("habilitado agenda a verificação", func(t *testing.T) {
		service := newWatchService(t, path, true)
		require.NoError(t, service.Start(ctx))
		assert.Equal(t, 1, len(service.scheduler.Jobs()))
	})

	t.Run("expressão cron inválida", func(t *testing.T) {
		service := newWatchService(t, path, true)
		service.config.CronSchedule = "a cada minuto"
		assert.Error(t, service.Start(ctx))
	})
}
