package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	GRPCAddr string `envconfig:"PARTY_GRPC_ADDR"`
	HTTPAddr string `envconfig:"PARTY_HTTP_ADDR"`
	// E2E_DEBUG_JSON dumps full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
