package testutil

import (
	"context"
	"time"

	"github.com/questx-lab/tournament/config"
	"github.com/questx-lab/tournament/pkg/logger"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

const (
	// Well-known development key, never funded outside local nodes.
	ServerPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	ServerAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	ContractAddress  = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	PlayerAddress    = "0xA433cf593297386cea675Aab3e166Ba71A851CB0"
	ChainID          = 4157
)

func MockConfigs() config.Configs {
	cfg := config.Default()
	cfg.Env = "test"
	cfg.Chain.RPC = "http://localhost:8545"
	cfg.Chain.ChainID = ChainID
	cfg.Chain.PrivateKey = ServerPrivateKey
	cfg.Chain.ContractAddress = ContractAddress
	cfg.Chain.UseEip1559 = false
	cfg.Chain.RpcTimeout = time.Second
	cfg.Chain.ConfirmationTimeout = 200 * time.Millisecond
	cfg.Chain.ReceiptPollInterval = 5 * time.Millisecond

	return cfg
}

func MockContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))

	return ctx
}
