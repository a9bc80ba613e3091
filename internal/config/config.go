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

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Data       Data       `mapstructure:",squash"`
	Forecast   Forecast   `mapstructure:",squash"`
	Forecaster Forecaster `mapstructure:",squash"`
	Kaggle     Kaggle     `mapstructure:",squash"`
	Retraining Retraining `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Enabled  bool   `mapstructure:"database_enabled"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Data descreve o layout de diretórios dos datasets
type Data struct {
	Dir    string `mapstructure:"data_dir"`
	RawDir string `mapstructure:"-"`
}

// Forecast contém os valores padrão repassados ao predictor
type Forecast struct {
	ModelsDir        string        `mapstructure:"models_dir"`
	ModelName        string        `mapstructure:"model_name"`
	ModelPath        string        `mapstructure:"-"`
	PredictionLength int           `mapstructure:"forecast_prediction_length"`
	TimeLimit        time.Duration `mapstructure:"forecast_time_limit"`
	Presets          string        `mapstructure:"forecast_presets"`
	EvalMetric       string        `mapstructure:"forecast_eval_metric"`
	CacheSize        int           `mapstructure:"forecast_cache_size"`
	PersistForecasts bool          `mapstructure:"forecast_persist_predictions"`
}

// Forecaster seleciona o engine de previsão (local ou remoto)
type Forecaster struct {
	Backend string        `mapstructure:"forecaster_backend"`
	URL     string        `mapstructure:"forecaster_url"`
	Timeout time.Duration `mapstructure:"forecaster_timeout"`
}

type Kaggle struct {
	URL         string `mapstructure:"kaggle_url"`
	Username    string `mapstructure:"kaggle_username"`
	Key         string `mapstructure:"kaggle_key"`
	ConfigDir   string `mapstructure:"kaggle_config_dir"`
	Competition string `mapstructure:"kaggle_competition"`
}

type Retraining struct {
	CronSchedule string `mapstructure:"retraining_cron"`
	Enabled      bool   `mapstructure:"retraining_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/forecast")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("DATA_DIR", "data")

	viper.SetDefault("MODELS_DIR", "models")
	viper.SetDefault("MODEL_NAME", "sales_predictor")
	viper.SetDefault("FORECAST_PREDICTION_LENGTH", 16)
	viper.SetDefault("FORECAST_TIME_LIMIT", "600s")
	viper.SetDefault("FORECAST_PRESETS", "medium_quality")
	viper.SetDefault("FORECAST_EVAL_METRIC", "MASE")
	viper.SetDefault("FORECAST_CACHE_SIZE", 8)
	viper.SetDefault("FORECAST_PERSIST_PREDICTIONS", false)

	viper.SetDefault("FORECASTER_BACKEND", "local")
	viper.SetDefault("FORECASTER_URL", "http://localhost:8080")
	viper.SetDefault("FORECASTER_TIMEOUT", "15m")

	viper.SetDefault("KAGGLE_URL", "https://www.kaggle.com/api/v1")
	viper.SetDefault("KAGGLE_USERNAME", "")
	viper.SetDefault("KAGGLE_KEY", "")
	viper.SetDefault("KAGGLE_CONFIG_DIR", "")
	viper.SetDefault("KAGGLE_COMPETITION", "store-sales-time-series-forecasting")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RETRAINING_CRON", "0 2 * * 0") // Domingos às 2h da manhã
	viper.SetDefault("RETRAINING_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.resolve()

	return config, nil
}

// resolve preenche os campos derivados a partir dos valores carregados
func (c *Config) resolve() {
	c.Data.RawDir = filepath.Join(c.Data.Dir, "raw")
	c.Forecast.ModelPath = filepath.Join(c.Forecast.ModelsDir, c.Forecast.ModelName)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
