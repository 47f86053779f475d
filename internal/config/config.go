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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	TikTok       TikTok       `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
	Policy       Policy       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type TikTok struct {
	BaseURL           string `mapstructure:"tiktok_base_url"`
	AdvertiserID      string `mapstructure:"tiktok_advertiser_id"`
	AccessToken       string `mapstructure:"tiktok_access_token"`
	RequestTimeoutSec int    `mapstructure:"tiktok_request_timeout_seconds"`
	MaxRetries        int    `mapstructure:"tiktok_max_retries"`
}

type CampaignSync struct {
	IntervalMinutes int  `mapstructure:"campaign_sync_interval_minutes"`
	BatchSize       int  `mapstructure:"campaign_sync_batch_size"`
	RunOnStartup    bool `mapstructure:"campaign_sync_run_on_startup"`
	Enabled         bool `mapstructure:"campaign_sync_enabled"`
}

// Policy guarda os limites da política de desativação automática. São
// constantes de operação, nunca calculadas
type Policy struct {
	MaxSpendNoInstalls float64 `mapstructure:"policy_max_spend_no_installs"`
	MaxCPI             float64 `mapstructure:"policy_max_cpi"`
}

type Auth struct {
	Secret            string `mapstructure:"auth_secret"`
	AdminEmail        string `mapstructure:"auth_admin_email"`
	AdminPasswordHash string `mapstructure:"auth_admin_password_hash"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/campaigns")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api/v1.3")
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "your_advertiser_id")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("TIKTOK_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("TIKTOK_MAX_RETRIES", 2)

	// Defaults para o ciclo de reconciliação de campanhas
	viper.SetDefault("CAMPAIGN_SYNC_INTERVAL_MINUTES", 5) // A cada 5 minutos
	viper.SetDefault("CAMPAIGN_SYNC_BATCH_SIZE", 10)      // Limite de ids por chamada remota
	viper.SetDefault("CAMPAIGN_SYNC_RUN_ON_STARTUP", true)
	viper.SetDefault("CAMPAIGN_SYNC_ENABLED", true)

	// Limites da política de desativação
	viper.SetDefault("POLICY_MAX_SPEND_NO_INSTALLS", 2.0)
	viper.SetDefault("POLICY_MAX_CPI", 2.0)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
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
