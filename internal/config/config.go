package config

import (
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// JWT holds the token signing settings. Issuer and audience are validated
// on every protected request, so they must match between issue and verify.
type JWT struct {
	Secret   string
	Issuer   string
	Audience string
}

type Config struct {
	ServerAddr string
	DSN        string
	LogLevel   string
	JWT        JWT
}

// Load reads settings from the environment. main is expected to have run
// godotenv.Load() already, so a local .env file works in development.
// The --addr flag overrides SERVER_ADDR when present.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_ISSUER", "inventory-api")
	v.SetDefault("JWT_AUDIENCE", "inventory-api-clients")

	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	addr := cmdLine.String("addr", "", "listen address, overrides SERVER_ADDR")
	_ = cmdLine.Parse(os.Args[1:])

	cfg := Config{
		ServerAddr: v.GetString("SERVER_ADDR"),
		DSN:        v.GetString("DB_DSN"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		JWT: JWT{
			Secret:   v.GetString("JWT_SECRET"),
			Issuer:   v.GetString("JWT_ISSUER"),
			Audience: v.GetString("JWT_AUDIENCE"),
		},
	}
	if *addr != "" {
		cfg.ServerAddr = *addr
	}
	return cfg
}
