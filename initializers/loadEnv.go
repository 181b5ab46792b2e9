package initializers

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	DBHost         string `mapstructure:"POSTGRES_HOST"`
	DBUserName     string `mapstructure:"POSTGRES_USER"`
	DBUserPassword string `mapstructure:"POSTGRES_PASSWORD"`
	DBName         string `mapstructure:"POSTGRES_DB"`
	DBPort         string `mapstructure:"POSTGRES_PORT"`

	ServerPort string `mapstructure:"PORT"`

	TokenSecret    string        `mapstructure:"TOKEN_SECRET"`
	TokenExpiresIn time.Duration `mapstructure:"TOKEN_EXPIRED_IN"`
	TokenMaxAge    int           `mapstructure:"TOKEN_MAXAGE"`

	IMGStorePath string `mapstructure:"IMG_STORE_PATH"`
}

var configKeys = []string{
	"POSTGRES_HOST",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
	"POSTGRES_DB",
	"POSTGRES_PORT",
	"PORT",
	"TOKEN_SECRET",
	"TOKEN_EXPIRED_IN",
	"TOKEN_MAXAGE",
	"IMG_STORE_PATH",
}

// LoadConfig reads app.env from path when present; process environment
// variables always take part and are enough on their own.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigType("env")
	viper.SetConfigName("app")

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("TOKEN_EXPIRED_IN", "60m")
	viper.SetDefault("TOKEN_MAXAGE", 60)
	viper.SetDefault("IMG_STORE_PATH", "./media")

	viper.AutomaticEnv()
	for _, key := range configKeys {
		if err = viper.BindEnv(key); err != nil {
			return
		}
	}

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	// Environment values arrive as strings; decode them into the typed
	// fields as well.
	err = viper.Unmarshal(&config, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	})
	return
}
