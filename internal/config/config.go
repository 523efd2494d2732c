package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Report   ReportConfig   `mapstructure:"report"`
	Export   ExportConfig   `mapstructure:"export"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsDir   string        `mapstructure:"migrations_dir"`
}

// SheetsConfig holds the spreadsheet submission endpoint configuration
type SheetsConfig struct {
	EndpointURL string        `mapstructure:"endpoint_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ReportConfig holds the report boilerplate and PDF settings
type ReportConfig struct {
	MinistryName   string `mapstructure:"ministry_name"`
	DepartmentName string `mapstructure:"department_name"`
	Title          string `mapstructure:"title"`
	Subtitle       string `mapstructure:"subtitle"`
	ManagerName    string `mapstructure:"manager_name"`
	PDFFontPath    string `mapstructure:"pdf_font_path"`
}

// ExportConfig holds the local audit workbook configuration
type ExportConfig struct {
	WorkbookPath string `mapstructure:"workbook_path"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables. A .env
// file in the working directory is applied first, then the yaml file, then
// environment overrides.
func Load(configPath string) (*Config, error) {
	_ = gotenv.Load()

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env cover a dev setup.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	// Database defaults
	viper.SetDefault("database.path", "data/inspection.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	viper.SetDefault("database.migrations_dir", "migrations")

	// Sheets defaults
	viper.SetDefault("sheets.timeout", 30*time.Second)

	// Report boilerplate defaults match the printed form
	viper.SetDefault("report.ministry_name", "مديرية الشئون الصحية بالغربية")
	viper.SetDefault("report.department_name", "إدارة المراجعة الداخلية والحوكمة")
	viper.SetDefault("report.title", "تقرير مرور")
	viper.SetDefault("report.subtitle", "للعرض علي السيد الدكتور/ وكيل الوزارة")
	viper.SetDefault("report.manager_name", "أ/عبدالله الجبالي")
	viper.SetDefault("report.pdf_font_path", "assets/fonts/Amiri-Regular.ttf")

	// Export defaults
	viper.SetDefault("export.workbook_path", "data/inspection_summary.xlsx")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("sheets.endpoint_url", "SHEETS_ENDPOINT_URL")
	viper.BindEnv("database.path", "DATABASE_PATH")
	viper.BindEnv("server.port", "PORT")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Sheets.EndpointURL == "" {
		return fmt.Errorf("sheets.endpoint_url is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port number")
	}
	return nil
}
