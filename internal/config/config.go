package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string        `mapstructure:"APP_PORT"`
	Mode         string        `mapstructure:"APP_MODE"`
	SnapshotDir  string        `mapstructure:"SNAPSHOT_DIR"`
	RedisAddr    string        `mapstructure:"REDIS_ADDR"`
	DBHost       string        `mapstructure:"DB_HOST"`
	DBPort       string        `mapstructure:"DB_PORT"`
	DBUser       string        `mapstructure:"DB_USER"`
	DBPassword   string        `mapstructure:"DB_PASSWORD"`
	DBName       string        `mapstructure:"DB_NAME"`
	AccessSecret string        `mapstructure:"ACCESS_SECRET"`
	RefreshSecret string       `mapstructure:"REFRESH_SECRET"`
	LoginTimeout time.Duration `mapstructure:"LOGIN_TIMEOUT"`
	FrontendURL  string        `mapstructure:"FRONTEND_URL"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("APP_MODE", "dev")
	viper.SetDefault("SNAPSHOT_DIR", "./data")
	viper.SetDefault("LOGIN_TIMEOUT", 10*time.Second)

	// Bind explicitly so viper picks the vars up even without a config file.
	for _, key := range []string{
		"APP_PORT", "APP_MODE", "SNAPSHOT_DIR", "REDIS_ADDR",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"ACCESS_SECRET", "REFRESH_SECRET", "LOGIN_TIMEOUT", "FRONTEND_URL",
	} {
		_ = viper.BindEnv(key)
	}

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}

// DatabaseConfigured reports whether enough DB settings are present to open
// the administrative passthrough store.
func (c Config) DatabaseConfigured() bool {
	return c.DBHost != "" && c.DBName != ""
}
