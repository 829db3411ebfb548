package config

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// GMOConfig defines the configuration for the GMO Coin API clients.
type GMOConfig struct {
	PublicURL  string        `mapstructure:"public_url"`  // e.g. https://api.coin.z.com/public
	PrivateURL string        `mapstructure:"private_url"` // e.g. https://api.coin.z.com/private
	WSURL      string        `mapstructure:"ws_url"`      // e.g. wss://api.coin.z.com/ws/private/v1
	Timeout    time.Duration `mapstructure:"timeout"`

	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// Credentials returns the API key pair. In prod the pair comes from
// SSM Parameter Store instead of the config file.
func (cfg *GMOConfig) Credentials(env string) (string, string) {
	if env == "prod" {
		key := getParameterStoreValue("GMO_COLLECTOR_API_KEY", true)
		secret := getParameterStoreValue("GMO_COLLECTOR_API_SECRET", true)
		return key, secret
	}
	return cfg.APIKey, cfg.APISecret
}

func getParameterStoreValue(parameterName string, decrypt bool) string {
	baseCtx := context.Background()
	ctxWithTimeout, cancel := context.WithTimeout(baseCtx, 5*time.Second)
	defer cancel()

	cfg, err := config.LoadDefaultConfig(ctxWithTimeout)
	if err != nil {
		return ""
	}

	client := ssm.NewFromConfig(cfg)

	input := &ssm.GetParameterInput{
		Name:           &parameterName,
		WithDecryption: &decrypt,
	}

	result, err := client.GetParameter(ctxWithTimeout, input)
	if err != nil {
		return ""
	}

	if result.Parameter.Value == nil {
		return ""
	}

	return *result.Parameter.Value
}
