package config

import (
	"errors"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// environment is the flat view of Configs read from environment variables.
type environment struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	APIHost        string   `mapstructure:"API_HOST"`
	APIPort        string   `mapstructure:"PORT"`
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
	WriteRateLimit float64  `mapstructure:"WRITE_RATE_LIMIT"`
	WriteRateBurst int      `mapstructure:"WRITE_RATE_BURST"`

	PrometheusHost string `mapstructure:"PROMETHEUS_HOST"`
	PrometheusPort string `mapstructure:"PROMETHEUS_PORT"`

	ChainName           string        `mapstructure:"CHAIN_NAME"`
	RPC                 string        `mapstructure:"RPC_URL"`
	ChainID             uint64        `mapstructure:"CHAIN_ID"`
	PrivateKey          string        `mapstructure:"PRIVATE_KEY"`
	ContractAddress     string        `mapstructure:"CONTRACT_ADDRESS"`
	UseEip1559          bool          `mapstructure:"USE_EIP_1559"`
	RpcTimeout          time.Duration `mapstructure:"RPC_TIMEOUT"`
	ConfirmationTimeout time.Duration `mapstructure:"CONFIRMATION_TIMEOUT"`
	ReceiptPollInterval time.Duration `mapstructure:"RECEIPT_POLL_INTERVAL"`
	HealthCheckInterval time.Duration `mapstructure:"HEALTH_CHECK_INTERVAL"`

	BoosterBallPrice    int64  `mapstructure:"BOOSTER_BALL_PRICE_XFI"`
	BoosterBallDecimals int    `mapstructure:"BOOSTER_BALL_DECIMALS"`
	BoosterBallGasLimit uint64 `mapstructure:"BOOSTER_BALL_GAS_LIMIT"`
}

// Load builds the configuration in three layers: defaults, the optional TOML
// file named by CONFIG_FILE, then environment variables (after loading
// envFile with godotenv, when it exists).
func Load(envFile string) (Configs, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Configs{}, err
		}
	}

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if err := applyEnvironment(&cfg, environ()); err != nil {
		return Configs{}, err
	}

	return cfg, cfg.Validate()
}

func environ() map[string]string {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		key, value, found := strings.Cut(kv, "=")
		if found {
			env[key] = value
		}
	}

	return env
}

// applyEnvironment overwrites the fields of cfg whose variables are present
// in env. Absent variables keep the value from the previous layer.
func applyEnvironment(cfg *Configs, env map[string]string) error {
	e := fromConfigs(*cfg)

	input := map[string]any{}
	for _, key := range envKeys() {
		if value, ok := env[key]; ok && value != "" {
			input[key] = value
		}
	}

	if _, ok := input["ALLOWED_ORIGINS"]; ok {
		e.AllowedOrigins = nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &e,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			trimSpaceHook,
		),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return err
	}

	e.apply(cfg)
	return nil
}

func trimSpaceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || to.Kind() != reflect.Slice {
		return data, nil
	}

	items, ok := data.([]string)
	if !ok {
		return data, nil
	}

	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			trimmed = append(trimmed, item)
		}
	}

	return trimmed, nil
}

func envKeys() []string {
	t := reflect.TypeOf(environment{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, t.Field(i).Tag.Get("mapstructure"))
	}

	return keys
}

func fromConfigs(cfg Configs) environment {
	return environment{
		Env:                 cfg.Env,
		LogLevel:            cfg.LogLevel,
		APIHost:             cfg.ApiServer.Host,
		APIPort:             cfg.ApiServer.Port,
		AllowedOrigins:      cfg.ApiServer.AllowedOrigins,
		WriteRateLimit:      cfg.ApiServer.WriteRateLimit,
		WriteRateBurst:      cfg.ApiServer.WriteRateBurst,
		PrometheusHost:      cfg.PrometheusServer.Host,
		PrometheusPort:      cfg.PrometheusServer.Port,
		ChainName:           cfg.Chain.Name,
		RPC:                 cfg.Chain.RPC,
		ChainID:             cfg.Chain.ChainID,
		PrivateKey:          cfg.Chain.PrivateKey,
		ContractAddress:     cfg.Chain.ContractAddress,
		UseEip1559:          cfg.Chain.UseEip1559,
		RpcTimeout:          cfg.Chain.RpcTimeout,
		ConfirmationTimeout: cfg.Chain.ConfirmationTimeout,
		ReceiptPollInterval: cfg.Chain.ReceiptPollInterval,
		HealthCheckInterval: cfg.Chain.HealthCheckInterval,
		BoosterBallPrice:    cfg.BoosterBall.PriceXFI,
		BoosterBallDecimals: cfg.BoosterBall.Decimals,
		BoosterBallGasLimit: cfg.BoosterBall.GasLimit,
	}
}

func (e environment) apply(cfg *Configs) {
	cfg.Env = e.Env
	cfg.LogLevel = e.LogLevel
	cfg.ApiServer.Host = e.APIHost
	cfg.ApiServer.Port = e.APIPort
	cfg.ApiServer.AllowedOrigins = e.AllowedOrigins
	cfg.ApiServer.WriteRateLimit = e.WriteRateLimit
	cfg.ApiServer.WriteRateBurst = e.WriteRateBurst
	cfg.PrometheusServer.Host = e.PrometheusHost
	cfg.PrometheusServer.Port = e.PrometheusPort
	cfg.Chain.Name = e.ChainName
	cfg.Chain.RPC = e.RPC
	cfg.Chain.ChainID = e.ChainID
	cfg.Chain.PrivateKey = e.PrivateKey
	cfg.Chain.ContractAddress = e.ContractAddress
	cfg.Chain.UseEip1559 = e.UseEip1559
	cfg.Chain.RpcTimeout = e.RpcTimeout
	cfg.Chain.ConfirmationTimeout = e.ConfirmationTimeout
	cfg.Chain.ReceiptPollInterval = e.ReceiptPollInterval
	cfg.Chain.HealthCheckInterval = e.HealthCheckInterval
	cfg.BoosterBall.PriceXFI = e.BoosterBallPrice
	cfg.BoosterBall.Decimals = e.BoosterBallDecimals
	cfg.BoosterBall.GasLimit = e.BoosterBallGasLimit
}
