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
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Commerce          Commerce          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	DashboardSnapshot DashboardSnapshot `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
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

// Commerce contém as credenciais da API upstream de comércio, da qual este
// serviço consome transações, lojas, produtos, bundles, entregadores e chat
type Commerce struct {
	URL           string `mapstructure:"commerce_url"`
	AdminEmail    string `mapstructure:"commerce_admin_email"`
	AdminPassword string `mapstructure:"commerce_admin_password"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// DashboardSnapshot configura o agendador que pré-calcula o resumo diário do
// dashboard e o persiste no banco
type DashboardSnapshot struct {
	CronSchedule string `mapstructure:"dashboard_snapshot_cron"`
	Enabled      bool   `mapstructure:"dashboard_snapshot_enabled"`
	LookbackDays int    `mapstructure:"dashboard_snapshot_lookback_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/backoffice")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("COMMERCE_URL", "http://localhost:5086/api")
	viper.SetDefault("COMMERCE_ADMIN_EMAIL", "admin@example.com")
	viper.SetDefault("COMMERCE_ADMIN_PASSWORD", "your_password")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do snapshot diário do dashboard
	viper.SetDefault("DASHBOARD_SNAPSHOT_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("DASHBOARD_SNAPSHOT_ENABLED", false)
	viper.SetDefault("DASHBOARD_SNAPSHOT_LOOKBACK_DAYS", 1)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
