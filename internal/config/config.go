package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DBTypePostgres = "postgres"
	DBTypeMySQL    = "mysql"
	DBTypeSQLite   = "sqlite"
)

type Config struct {
	DB  DBConfig
	Log LogConfig
}

type DBConfig struct {
	Type        string
	URL         string
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	SSLMode     string
	Path        string
	AutoMigrate bool
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

// Load reads .env (if present), an optional tracker.yml and TRACKER_* environment
// variables. The unprefixed DATABASE_URL and DB_USER/DB_PASSWORD/DB_NAME names are
// honored as fallbacks.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("tracker")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "employee-tracker"))
	}

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.type", DBTypePostgres)
	v.SetDefault("db.url", os.Getenv("DATABASE_URL"))
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", os.Getenv("DB_NAME"))
	v.SetDefault("db.user", os.Getenv("DB_USER"))
	v.SetDefault("db.password", os.Getenv("DB_PASSWORD"))
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.path", "tracker.db")
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
}

func fromViper(v *viper.Viper) Config {
	return Config{
		DB: DBConfig{
			Type:        strings.ToLower(strings.TrimSpace(v.GetString("db.type"))),
			URL:         strings.TrimSpace(v.GetString("db.url")),
			Host:        v.GetString("db.host"),
			Port:        v.GetString("db.port"),
			Name:        v.GetString("db.name"),
			User:        v.GetString("db.user"),
			Password:    v.GetString("db.password"),
			SSLMode:     v.GetString("db.sslmode"),
			Path:        v.GetString("db.path"),
			AutoMigrate: v.GetBool("db.auto_migrate"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: strings.ToLower(v.GetString("log.format")),
			Output: v.GetString("log.output"),
		},
	}
}

func (c Config) Validate() error {
	switch c.DB.Type {
	case DBTypePostgres, DBTypeMySQL:
		if c.DB.URL == "" && c.DB.Name == "" {
			return fmt.Errorf("db.name or db.url required for %s", c.DB.Type)
		}
	case DBTypeSQLite:
		if c.DB.URL == "" && c.DB.Path == "" {
			return errors.New("db.path required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported db.type %q", c.DB.Type)
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log.format %q", c.Log.Format)
	}
	return nil
}
