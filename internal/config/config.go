package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Mode    string
	Carrier CarrierConfig
	Redis   RedisConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type CarrierConfig struct {
	BaseURL        string
	Email          string
	Password       string
	PickupLocation string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LogConfig struct {
	Level string
}

const (
	ModeTest = "test"
	ModeLive = "live"
)

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 5001)
	viper.SetDefault("MODE", ModeTest)
	viper.SetDefault("CARRIER_BASE_URL", "https://apiv2.shiprocket.in/v1/external")
	viper.SetDefault("CARRIER_EMAIL", "")
	viper.SetDefault("CARRIER_PASSWORD", "")
	viper.SetDefault("CARRIER_PICKUP", "Primary")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Mode: viper.GetString("MODE"),
		Carrier: CarrierConfig{
			BaseURL:        viper.GetString("CARRIER_BASE_URL"),
			Email:          viper.GetString("CARRIER_EMAIL"),
			Password:       viper.GetString("CARRIER_PASSWORD"),
			PickupLocation: viper.GetString("CARRIER_PICKUP"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Mode != ModeTest && cfg.Mode != ModeLive {
		return nil, fmt.Errorf("MODE must be %q or %q, got %q", ModeTest, ModeLive, cfg.Mode)
	}

	if cfg.Mode == ModeLive && (cfg.Carrier.Email == "" || cfg.Carrier.Password == "") {
		return nil, fmt.Errorf("live mode requires CARRIER_EMAIL and CARRIER_PASSWORD")
	}

	return cfg, nil
}
