package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr     string `envconfig:"PARTY_GRPC_ADDR" default:"localhost:50051"`
	Username string `envconfig:"PARTY_USERNAME" required:"true"`
	Password string `envconfig:"PARTY_PASSWORD" required:"true"`
	Strategy string `envconfig:"PARTY_STRATEGY" default:"balanced"`
	MinSize  int32  `envconfig:"PARTY_MIN_SIZE" default:"0"`
	MaxSize  int32  `envconfig:"PARTY_MAX_SIZE" default:"0"`
	// PARTY_COLOURS disables ANSI colours when the output is piped
	Colours bool `envconfig:"PARTY_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
