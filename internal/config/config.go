package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Políticas para linhas malformadas do dataset
const (
	RowPolicyDrop = "drop" // linha rejeitada é reportada e descartada
	RowPolicyFail = "fail" // primeira linha rejeitada aborta a carga
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Dataset      Dataset      `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Model        Model        `mapstructure:",squash"`
	DatasetWatch DatasetWatch `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

type Server struct {
	Host                 string        `mapstructure:"host"`
	Port                 string        `mapstructure:"port"`
	CorsAllowedOrigins   []string      `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout      time.Duration `mapstructure:"shutdown_timeout"`
	SlowRequestThreshold time.Duration `mapstructure:"slow_request_threshold"`
}

type Dataset struct {
	Path      string `mapstructure:"dataset_path"`
	Sheet     string `mapstructure:"dataset_sheet"`
	RowPolicy string `mapstructure:"dataset_row_policy"`
}

type Dashboard struct {
	HistogramBins    int `mapstructure:"histogram_bins"`
	TopCoffees       int `mapstructure:"top_coffees"`
	TopCoffeesSeason int `mapstructure:"top_coffees_season"`
	TransactionsPage int `mapstructure:"transactions_page_size"`
}

type Model struct {
	Enabled    bool    `mapstructure:"model_enabled"`
	TrainRatio float64 `mapstructure:"model_train_ratio"`
	Seed       int64   `mapstructure:"model_seed"`
}

type DatasetWatch struct {
	CronSchedule string `mapstructure:"dataset_watch_cron"`
	Enabled      bool   `mapstructure:"dataset_watch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8501")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{})
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("SLOW_REQUEST_THRESHOLD", "500ms")

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FILE", "")

	viper.SetDefault("DATASET_PATH", "Coffe_sales.csv")
	viper.SetDefault("DATASET_SHEET", "")             // Apenas para .xlsx; vazio = primeira planilha
	viper.SetDefault("DATASET_ROW_POLICY", RowPolicyDrop) // drop ou fail

	viper.SetDefault("HISTOGRAM_BINS", 10)
	viper.SetDefault("TOP_COFFEES", 10)
	viper.SetDefault("TOP_COFFEES_SEASON", 5)
	viper.SetDefault("TRANSACTIONS_PAGE_SIZE", 100)

	viper.SetDefault("MODEL_ENABLED", true)
	viper.SetDefault("MODEL_TRAIN_RATIO", 0.8)
	viper.SetDefault("MODEL_SEED", 42)

	viper.SetDefault("DATASET_WATCH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DATASET_WATCH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica combinações de valores que tornariam o dashboard inutilizável
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("config: DATASET_PATH é obrigatório")
	}

	if c.Dataset.RowPolicy != RowPolicyDrop && c.Dataset.RowPolicy != RowPolicyFail {
		return fmt.Errorf("config: DATASET_ROW_POLICY inválida: %q (use %q ou %q)",
			c.Dataset.RowPolicy, RowPolicyDrop, RowPolicyFail)
	}

	if c.Model.TrainRatio <= 0 || c.Model.TrainRatio >= 1 {
		return fmt.Errorf("config: MODEL_TRAIN_RATIO deve estar entre 0 e 1, recebido %v", c.Model.TrainRatio)
	}

	if c.Dashboard.HistogramBins <= 0 {
		return fmt.Errorf("config: HISTOGRAM_BINS deve ser > 0")
	}

	if c.Dashboard.TopCoffees <= 0 || c.Dashboard.TopCoffeesSeason <= 0 {
		return fmt.Errorf("config: TOP_COFFEES e TOP_COFFEES_SEASON devem ser > 0")
	}

	if c.Dashboard.TransactionsPage <= 0 {
		return fmt.Errorf("config: TRANSACTIONS_PAGE_SIZE deve ser > 0")
	}

	return nil
}

// Address retorna host:porta do servidor HTTP
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando variáveis de ambiente e padrões")
}
