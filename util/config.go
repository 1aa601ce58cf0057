package util

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	MaxLines          int           `mapstructure:"MAX_LINES"`
	MaxLineLength     int           `mapstructure:"MAX_LINE_LENGTH"`
}

func LoadConfig(path string) (config Config, err error) {
	// a fresh viper instance so repeated loads don't accumulate search paths
	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
