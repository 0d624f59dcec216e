package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/coffee-sales-dashboard/infrastructure/dataset"
	"github.com/vfg2006/coffee-sales-dashboard/infrastructure/repository"
	"github.com/vfg2006/coffee-sales-dashboard/internal/api"
	"github.com/vfg2006/coffee-sales-dashboard/internal/config"
	"github.com/vfg2006/coffee-sales-dashboard/internal/scheduler"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/dashboarding"
	"github.com/vfg2006/coffee-sales-dashboard/internal/usecases/predicting"
	"github.com/vfg2006/coffee-sales-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define formato, nível e arquivo de log com base na configuração
	if err := log.Configure(cfg.App.LogLevel, cfg.App.LogFile); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := dataset.NewLoader(cfg.Dataset.RowPolicy, cfg.Dataset.Sheet)
	transactions, report, err := loader.Load(ctx, cfg.Dataset.Path)
	if err != nil {
		logrus.WithError(err).WithField("path", cfg.Dataset.Path).Fatal("Erro ao carregar o dataset de vendas")
	}

	transactionRepo := repository.NewTransactionRepository(transactions)

	dashboarder := dashboarding.NewService(transactionRepo, report, dashboarding.Settings{
		HistogramBins:    cfg.Dashboard.HistogramBins,
		TopCoffees:       cfg.Dashboard.TopCoffees,
		TopCoffeesSeason: cfg.Dashboard.TopCoffeesSeason,
		TransactionsPage: cfg.Dashboard.TransactionsPage,
	})

	// O modelo é ajustado uma única vez sobre a tabela completa
	predictor := predicting.NewService(ctx, transactionRepo.All(), predicting.Settings{
		Enabled:    cfg.Model.Enabled,
		TrainRatio: cfg.Model.TrainRatio,
		Seed:       cfg.Model.Seed,
	})

	datasetWatchService := scheduler.NewDatasetWatchService(report, cfg)
	if err := datasetWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação do dataset")
	} else {
		logrus.Info("Agendador de verificação do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboarder, predictor, datasetWatchService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
