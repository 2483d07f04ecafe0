package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wpwhiz/signalwire-woo/pkg/mq"
	"github.com/wpwhiz/signalwire-woo/pkg/mysql"
	"github.com/wpwhiz/signalwire-woo/pkg/signalwire"
)

type Config struct {
	API        API               `mapstructure:"api"`
	Database   mysql.Config      `mapstructure:"database"`
	RabbitMQ   mq.Config         `mapstructure:"rabbitmq"`
	SignalWire signalwire.Config `mapstructure:"signalwire"`
	Site       Site              `mapstructure:"site"`
	Redeliver  Redeliver         `mapstructure:"redeliver"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Site struct {
	Name string `mapstructure:"name"`
}

type Redeliver struct {
	BatchSize int           `mapstructure:"batch_size"`
	Interval  time.Duration `mapstructure:"interval"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
