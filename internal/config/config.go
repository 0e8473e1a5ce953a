package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	Discord    Discord    `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Analysis   Analysis   `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Clients    Clients    `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"meta_version"`
}

type Discord struct {
	TimeoutSeconds int `mapstructure:"discord_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret               string `mapstructure:"auth_secret"`
	OperatorEmail        string `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string `mapstructure:"auth_operator_password_hash"`
}

// Analysis guarda os valores padrão usados quando o perfil do cliente não define os seus
type Analysis struct {
	MinSpend          float64 `mapstructure:"analysis_min_spend"`
	LowROASThreshold  float64 `mapstructure:"analysis_low_roas_threshold"`
	BudgetRulePct     float64 `mapstructure:"analysis_budget_rule_pct"`
	LookbackDays      int     `mapstructure:"analysis_lookback_days"`
	RetryMaxAttempts  int     `mapstructure:"analysis_retry_max_attempts"`
	RetryInitialWaitS int     `mapstructure:"analysis_retry_initial_wait_seconds"`
}

type ReportSync struct {
	CronSchedule        string `mapstructure:"report_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"report_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"report_sync_enabled"`
}

type Clients struct {
	FilePath string `mapstructure:"clients_file_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creative_performance")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")

	viper.SetDefault("DISCORD_TIMEOUT_SECONDS", 10)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "operador@local")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")

	// Defaults da análise de performance (o perfil do cliente pode sobrescrever)
	viper.SetDefault("ANALYSIS_MIN_SPEND", 250000)              // Gasto mínimo para entrar na classificação
	viper.SetDefault("ANALYSIS_LOW_ROAS_THRESHOLD", 85)         // ROAS abaixo disso é baixa performance
	viper.SetDefault("ANALYSIS_BUDGET_RULE_PCT", 50)            // Percentual da regra de orçamento diário
	viper.SetDefault("ANALYSIS_LOOKBACK_DAYS", 7)               // Janela de análise D7, sem o dia atual
	viper.SetDefault("ANALYSIS_RETRY_MAX_ATTEMPTS", 5)          // Tentativas antes de desistir no rate limit
	viper.SetDefault("ANALYSIS_RETRY_INITIAL_WAIT_SECONDS", 60) // Espera inicial do backoff exponencial

	// Defaults do agendador de relatórios semanais
	viper.SetDefault("REPORT_SYNC_CRON", "0 9 * * 1")        // Toda segunda-feira às 9h
	viper.SetDefault("REPORT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre clientes
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("CLIENTS_FILE_PATH", "clients.json")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
