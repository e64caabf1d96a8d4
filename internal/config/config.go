package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ReferralConfig struct {
	Env string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	ReferralDB   `yaml:"referral_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Attribution  `yaml:"attribution"`
	MigrationsPath string `yaml:"migrations_path"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ReferralDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"commission-events"`
}

type Attribution struct {
	WindowDays int `yaml:"window_days" env-default:"90"`
}

func (a Attribution) Window() time.Duration {
	return time.Duration(a.WindowDays) * 24 * time.Hour
}

func MustLoad() *ReferralConfig {

	// Processing env config variable and file
	configPath := os.Getenv("REFERRAL_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("REFERRAL_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ReferralConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
