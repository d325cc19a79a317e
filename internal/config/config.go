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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Detection       Detection       `mapstructure:",squash"`
	LostRevenue     LostRevenue     `mapstructure:",squash"`
	LossRankingSync LossRankingSync `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Detection concentra os parâmetros do motor de detecção de ruptura.
// Os dois limiares são propositalmente independentes: o de ruptura dispara
// o registro financeiro, o de alerta apenas sinaliza "estoque baixo".
type Detection struct {
	RuptureThreshold      float64 `mapstructure:"rupture_threshold"`
	CriticalSlotThreshold float64 `mapstructure:"critical_slot_threshold"`
	StorageTimeoutSeconds int     `mapstructure:"detection_storage_timeout_seconds"`
	StorageMaxRetries     int     `mapstructure:"detection_storage_max_retries"`
}

type LostRevenue struct {
	WindowDays   int `mapstructure:"lost_revenue_window_days"`
	DefaultLimit int `mapstructure:"lost_revenue_limit"`
}

type LossRankingSync struct {
	CronSchedule string `mapstructure:"loss_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"loss_ranking_sync_enabled"`
	WindowDays   int    `mapstructure:"loss_ranking_sync_window_days"`
}

// StorageTimeout retorna o timeout das chamadas de armazenamento do detector
func (d Detection) StorageTimeout() time.Duration {
	if d.StorageTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(d.StorageTimeoutSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/shelf")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do motor de detecção de ruptura
	viper.SetDefault("RUPTURE_THRESHOLD", 0.10)              // Ocupação abaixo de 10% caracteriza ruptura
	viper.SetDefault("CRITICAL_SLOT_THRESHOLD", 0.40)        // Limiar de alerta "estoque baixo" (independente do de ruptura)
	viper.SetDefault("DETECTION_STORAGE_TIMEOUT_SECONDS", 5) // Timeout das chamadas ao banco no caminho de detecção
	viper.SetDefault("DETECTION_STORAGE_MAX_RETRIES", 3)     // Tentativas de escrita antes de propagar erro

	// Defaults do relatório de perda de receita
	viper.SetDefault("LOST_REVENUE_WINDOW_DAYS", 30) // Janela padrão do ranking de perda
	viper.SetDefault("LOST_REVENUE_LIMIT", 10)       // Quantidade padrão de produtos no ranking

	// Defaults do snapshot diário de ranking de perda por loja
	viper.SetDefault("LOSS_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("LOSS_RANKING_SYNC_ENABLED", false)    // Habilitar snapshot diário
	viper.SetDefault("LOSS_RANKING_SYNC_WINDOW_DAYS", 30)   // Janela somada no snapshot

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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
