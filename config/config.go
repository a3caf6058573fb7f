package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the environment-driven settings of the portal.
// AllowedOrigins is structured data on purpose: the origin list is
// never assembled by string concatenation.
type Config struct {
	DBType            string        `mapstructure:"DB_TYPE"` // sqlite, postgres, mysql
	DSN               string        `mapstructure:"DSN"`
	Port              int           `mapstructure:"PORT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	OrcidBaseURL      string        `mapstructure:"ORCID_BASE_URL"`
	OrcidResearcherID string        `mapstructure:"ORCID_RESEARCHER_ID"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("DB_TYPE", "sqlite")
	viper.SetDefault("DSN", "portal.db")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})
	viper.SetDefault("ORCID_BASE_URL", "https://pub.orcid.org/v3.0")
	viper.SetDefault("ORCID_RESEARCHER_ID", "0000-0003-2058-3648")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
