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

	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Warehouse      Warehouse      `mapstructure:",squash"`
	RevenueWindow  RevenueWindow  `mapstructure:",squash"`
	Snapshot       Snapshot       `mapstructure:",squash"`
	RevenueRefresh RevenueRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Warehouse descreve a conexão com o data warehouse. O token é a credencial
// de acesso e sua ausência é um erro fatal de configuração na inicialização.
type Warehouse struct {
	DSN    string `mapstructure:"-"`
	Driver string `mapstructure:"warehouse_driver"`
	URL    string `mapstructure:"warehouse_url"`
	User   string `mapstructure:"warehouse_user"`
	Token  string `mapstructure:"warehouse_token"`
}

// RevenueWindow define a janela fixa de meses considerada na agregação
type RevenueWindow struct {
	Start  string `mapstructure:"revenue_window_start"`
	Months int    `mapstructure:"revenue_window_months"`
}

// Snapshot define os caminhos dos arquivos produzidos pelo pipeline
type Snapshot struct {
	DataPath        string `mapstructure:"revenue_snapshot_path"`
	LastUpdatedPath string `mapstructure:"last_updated_path"`
}

// RevenueRefresh define o agendamento da atualização do snapshot
type RevenueRefresh struct {
	CronSchedule string `mapstructure:"revenue_refresh_cron"`
	Enabled      bool   `mapstructure:"revenue_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("WAREHOUSE_DRIVER", "postgres")
	viper.SetDefault("WAREHOUSE_URL", "localhost:5432/warehouse")
	viper.SetDefault("WAREHOUSE_USER", "postgres")

	viper.SetDefault("REVENUE_WINDOW_START", "2025-01")
	viper.SetDefault("REVENUE_WINDOW_MONTHS", 5)

	viper.SetDefault("REVENUE_SNAPSHOT_PATH", "revenue_data.json")
	viper.SetDefault("LAST_UPDATED_PATH", "last_updated.txt")

	viper.SetDefault("REVENUE_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("REVENUE_REFRESH_ENABLED", false)

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

	// O token do warehouse é obrigatório: sem ele o processo não deve subir
	// para servir nem consultar
	if config.Warehouse.Token == "" {
		return nil, fmt.Errorf("token do warehouse não encontrado. Defina WAREHOUSE_TOKEN como variável de ambiente")
	}

	if _, err := config.Window(); err != nil {
		return nil, fmt.Errorf("janela de faturamento inválida: %w", err)
	}

	config.Warehouse.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Warehouse.Driver,
		config.Warehouse.User,
		config.Warehouse.Token,
		config.Warehouse.URL,
	)

	return config, nil
}

// Window converte a configuração textual da janela na janela de meses usada
// pelo pipeline
func (c *Config) Window() (domain.MonthWindow, error) {
	start, err := time.Parse("2006-01", c.RevenueWindow.Start)
	if err != nil {
		return domain.MonthWindow{}, fmt.Errorf("REVENUE_WINDOW_START deve estar no formato yyyy-mm: %w", err)
	}

	if c.RevenueWindow.Months < 1 {
		return domain.MonthWindow{}, fmt.Errorf("REVENUE_WINDOW_MONTHS deve ser ao menos 1")
	}

	return domain.NewMonthWindow(start, c.RevenueWindow.Months), nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
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
