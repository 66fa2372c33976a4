package config

import (
	"errors"
	"fmt"
	"time"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	ApiServer        APIServerConfigs   `toml:"api_server"`
	PrometheusServer ServerConfigs      `toml:"prometheus_server"`
	Chain            ChainConfigs       `toml:"chain"`
	BoosterBall      BoosterBallConfigs `toml:"booster_ball"`
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type APIServerConfigs struct {
	ServerConfigs

	AllowedOrigins []string `toml:"allowed_origins"`

	// Requests per second allowed on the server-signed write endpoints. Zero
	// disables the limiter.
	WriteRateLimit float64 `toml:"write_rate_limit"`
	WriteRateBurst int     `toml:"write_rate_burst"`
}

type ChainConfigs struct {
	Name            string `toml:"name"`
	RPC             string `toml:"rpc"`
	ChainID         uint64 `toml:"chain_id"`
	PrivateKey      string `toml:"-"`
	ContractAddress string `toml:"contract_address"`

	// ETH
	UseEip1559 bool `toml:"use_eip_1559"`

	RpcTimeout          time.Duration `toml:"rpc_timeout"`
	ConfirmationTimeout time.Duration `toml:"confirmation_timeout"`
	ReceiptPollInterval time.Duration `toml:"receipt_poll_interval"`
	HealthCheckInterval time.Duration `toml:"health_check_interval"`
}

type BoosterBallConfigs struct {
	// Price of one purchase in whole currency units.
	PriceXFI int64  `toml:"price_xfi"`
	Decimals int    `toml:"decimals"`
	GasLimit uint64 `toml:"gas_limit"`
}

// Default returns the configuration used before the environment is applied.
func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		ApiServer: APIServerConfigs{
			ServerConfigs:  ServerConfigs{Host: "", Port: "3000"},
			AllowedOrigins: []string{"*"},
			WriteRateLimit: 5,
			WriteRateBurst: 10,
		},
		PrometheusServer: ServerConfigs{Host: "", Port: "9090"},
		Chain: ChainConfigs{
			Name:                "crossfi-testnet",
			UseEip1559:          true,
			RpcTimeout:          5 * time.Second,
			ConfirmationTimeout: 60 * time.Second,
			ReceiptPollInterval: time.Second,
			HealthCheckInterval: 30 * time.Second,
		},
		BoosterBall: BoosterBallConfigs{
			PriceXFI: 10,
			Decimals: 18,
			GasLimit: 300000,
		},
	}
}

// Validate checks the settings the gateway cannot start without.
func (c Configs) Validate() error {
	var errs []error
	if c.Chain.RPC == "" {
		errs = append(errs, errors.New("RPC_URL is required"))
	}

	if c.Chain.ChainID == 0 {
		errs = append(errs, errors.New("CHAIN_ID is required"))
	}

	if c.Chain.PrivateKey == "" {
		errs = append(errs, errors.New("PRIVATE_KEY is required"))
	}

	if c.Chain.ContractAddress == "" {
		errs = append(errs, errors.New("CONTRACT_ADDRESS is required"))
	}

	if c.Chain.ConfirmationTimeout <= 0 {
		errs = append(errs, errors.New("confirmation timeout must be positive"))
	}

	if c.Chain.ReceiptPollInterval <= 0 {
		errs = append(errs, errors.New("receipt poll interval must be positive"))
	}

	if c.BoosterBall.PriceXFI <= 0 {
		errs = append(errs, errors.New("booster ball price must be positive"))
	}

	if c.BoosterBall.GasLimit == 0 {
		errs = append(errs, errors.New("booster ball gas limit must be positive"))
	}

	if c.BoosterBall.Decimals < 0 {
		errs = append(errs, errors.New("booster ball decimals must not be negative"))
	}

	return errors.Join(errs...)
}
