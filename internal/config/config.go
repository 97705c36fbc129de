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
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	TikTok    TikTok    `mapstructure:",squash"`
	Meta      Meta      `mapstructure:",squash"`
	ASA       ASA       `mapstructure:",squash"`
	Warehouse Warehouse `mapstructure:",squash"`
	SpendSync SpendSync `mapstructure:",squash"`
	Accounts  Accounts  `mapstructure:",squash"`
	Auth      Auth      `mapstructure:",squash"`
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

// TikTok usa token estático pré-compartilhado (Access-Token por header).
type TikTok struct {
	URL         string `mapstructure:"tiktok_url"`
	AccessToken string `mapstructure:"tiktok_access_token"`
}

// Meta usa token estático pré-compartilhado (access_token por query string).
type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	Version     string `mapstructure:"meta_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"meta_access_token"`
}

// ASA configura o fluxo OAuth2 client_credentials do Apple Search Ads.
// AccessToken, quando definido, substitui a troca inteira.
type ASA struct {
	URL              string `mapstructure:"asa_url"`
	TokenURL         string `mapstructure:"asa_token_url"`
	ClientID         string `mapstructure:"asa_client_id"`
	TeamID           string `mapstructure:"asa_team_id"`
	KeyID            string `mapstructure:"asa_key_id"`
	PrivateKeyPEM    string `mapstructure:"asa_private_key_pem"`
	PrivateKeyFile   string `mapstructure:"asa_private_key_file"`
	AccessToken      string `mapstructure:"asa_access_token"`
	ClientSecretFile string `mapstructure:"asa_client_secret_file"`
	Scope            string `mapstructure:"asa_scope"`
}

type Warehouse struct {
	Table     string `mapstructure:"warehouse_table"`
	BatchSize int    `mapstructure:"warehouse_batch_size"`
}

type SpendSync struct {
	CronSchedule string `mapstructure:"spend_sync_cron"`
	Enabled      bool   `mapstructure:"spend_sync_enabled"`
	ToWarehouse  bool   `mapstructure:"spend_sync_to_warehouse"`
}

type Accounts struct {
	File string `mapstructure:"accounts_file"`
}

type Auth struct {
	APIKey string `mapstructure:"auth_api_key"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adspend")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TIKTOK_URL", "https://business-api.tiktok.com/open_api/v1.3")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v23.0")

	viper.SetDefault("ASA_URL", "https://api.searchads.apple.com/api/v5")
	viper.SetDefault("ASA_TOKEN_URL", "https://appleid.apple.com/auth/oauth2/token")
	viper.SetDefault("ASA_CLIENT_SECRET_FILE", "client_secret.txt")
	viper.SetDefault("ASA_SCOPE", "searchadsorg")

	viper.SetDefault("WAREHOUSE_TABLE", "daily_spend")
	viper.SetDefault("WAREHOUSE_BATCH_SIZE", 500)

	viper.SetDefault("SPEND_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h UTC
	viper.SetDefault("SPEND_SYNC_ENABLED", false)
	viper.SetDefault("SPEND_SYNC_TO_WAREHOUSE", true)

	viper.SetDefault("ACCOUNTS_FILE", "accounts.json")

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

// loadEnvFile tenta carregar o .env do diretório atual ou de diretórios acima.
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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
