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
	App                    App                    `mapstructure:",squash"`
	Server                 Server                 `mapstructure:",squash"`
	Databases              Databases              `mapstructure:",squash"`
	Meta                   Meta                   `mapstructure:",squash"`
	Storage                Storage                `mapstructure:",squash"`
	SMTP                   SMTP                   `mapstructure:",squash"`
	CampaignCompletionSync CampaignCompletionSync `mapstructure:",squash"`
	SecretKey              string                 `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Databases guarda um DSN por brand. Os dois bancos são independentes e
// nenhuma transação atravessa ambos.
type Databases struct {
	Driver   string `mapstructure:"database_driver"`
	FordDSN  string `mapstructure:"-"`
	TofasDSN string `mapstructure:"-"`
	FordURL  string `mapstructure:"database_ford_url"`
	TofasURL string `mapstructure:"database_tofas_url"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
}

// Meta concentra as credenciais e defaults da conta de anúncios. Antes isso
// era uma linha única de configuração no banco; aqui é resolvido uma vez no
// boot e injetado, com erro fatal se ausente.
type Meta struct {
	BaseURL          string `mapstructure:"meta_base_url"`
	URL              string `mapstructure:"-"`
	Version          string `mapstructure:"meta_version"`
	AppID            string `mapstructure:"meta_app_id"`
	AppSecret        string `mapstructure:"meta_app_secret"`
	AccessToken      string `mapstructure:"meta_access_token"`
	AdAccountID      string `mapstructure:"meta_ad_account_id"`
	Objective        string `mapstructure:"meta_default_objective"`
	BillingEvent     string `mapstructure:"meta_default_billing_event"`
	OptimizationGoal string `mapstructure:"meta_default_optimization_goal"`
	TargetCountry    string `mapstructure:"meta_target_country"`
}

func (m Meta) Validate() error {
	if m.AppID == "" || m.AppSecret == "" || m.AccessToken == "" || m.AdAccountID == "" {
		return fmt.Errorf("configuração da Meta incompleta: app_id, app_secret, access_token e ad_account_id são obrigatórios")
	}
	return nil
}

type Storage struct {
	Endpoint  string `mapstructure:"storage_endpoint"`
	Region    string `mapstructure:"storage_region"`
	Bucket    string `mapstructure:"storage_bucket"`
	AccessKey string `mapstructure:"storage_access_key"`
	SecretKey string `mapstructure:"storage_secret_key"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     string `mapstructure:"smtp_port"`
	User     string `mapstructure:"smtp_user"`
	Password string `mapstructure:"smtp_password"`
	From     string `mapstructure:"smtp_from"`
	Enabled  bool   `mapstructure:"smtp_enabled"`
}

type CampaignCompletionSync struct {
	CronSchedule string `mapstructure:"campaign_completion_cron"`
	Enabled      bool   `mapstructure:"campaign_completion_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_FORD_URL", "localhost:5432/dealerops_ford")
	viper.SetDefault("DATABASE_TOFAS_URL", "localhost:5432/dealerops_tofas")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "")
	viper.SetDefault("META_APP_SECRET", "")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_AD_ACCOUNT_ID", "")
	viper.SetDefault("META_DEFAULT_OBJECTIVE", "OUTCOME_AWARENESS")
	viper.SetDefault("META_DEFAULT_BILLING_EVENT", "IMPRESSIONS")
	viper.SetDefault("META_DEFAULT_OPTIMIZATION_GOAL", "REACH")
	viper.SetDefault("META_TARGET_COUNTRY", "TR")

	viper.SetDefault("STORAGE_ENDPOINT", "http://localhost:9000")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_BUCKET", "dealer-creatives")
	viper.SetDefault("STORAGE_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_SECRET_KEY", "")

	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", "1025")
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "noreply@dealerops.local")
	viper.SetDefault("SMTP_ENABLED", false)

	// Job de conclusão de campanhas: todos os dias às 2h da manhã
	viper.SetDefault("CAMPAIGN_COMPLETION_CRON", "0 2 * * *")
	viper.SetDefault("CAMPAIGN_COMPLETION_ENABLED", true)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
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

	config.Databases.FordDSN = dsn(config.Databases, config.Databases.FordURL)
	config.Databases.TofasDSN = dsn(config.Databases, config.Databases.TofasURL)

	return config, nil
}

func dsn(db Databases, url string) string {
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		url,
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado; usando variáveis de ambiente")
}
