package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/questx-lab/tournament/config"
	"github.com/questx-lab/tournament/internal/common"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

const (
	DefaultRpcTimeOut = time.Second * 5

	// MaxReadRetry is the number of extra attempts for a failed read.
	MaxReadRetry = 1
)

// A wrapper around eth.client so that we can mock it in gateway tests.
type EthClient interface {
	bind.ContractBackend

	Start(ctx context.Context) error
	Close()

	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error)
	BalanceAt(ctx context.Context, account ethcommon.Address, block *big.Int) (*big.Int, error)
}

// Default implementation of ETH client. A single connection to the
// configured node is shared by every request. Each call gets its own timeout
// and reads are retried once on transport failures.
type defaultEthClient struct {
	chain   string
	rpc     string
	timeout time.Duration

	client *ethclient.Client
	lock   sync.RWMutex
}

func NewEthClient(cfg config.ChainConfigs) EthClient {
	timeout := cfg.RpcTimeout
	if timeout <= 0 {
		timeout = DefaultRpcTimeOut
	}

	return &defaultEthClient{
		chain:   cfg.Name,
		rpc:     cfg.RPC,
		timeout: timeout,
	}
}

func (c *defaultEthClient) Start(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.client != nil {
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := ethclient.DialContext(dialCtx, c.rpc)
	if err != nil {
		return fmt.Errorf("cannot dial rpc of chain %s: %w", c.chain, err)
	}

	c.client = client
	xcontext.Logger(ctx).Infof("Connected to rpc of chain %s", c.chain)
	return nil
}

func (c *defaultEthClient) Close() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

func (c *defaultEthClient) getClient(ctx context.Context) (*ethclient.Client, error) {
	c.lock.RLock()
	client := c.client
	c.lock.RUnlock()

	if client != nil {
		return client, nil
	}

	if err := c.Start(ctx); err != nil {
		return nil, err
	}

	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.client, nil
}

// execute runs f with a per-attempt timeout. When retry is set, a failed
// attempt is repeated up to MaxReadRetry times unless the node reported a
// revert, which is deterministic.
func (c *defaultEthClient) execute(
	ctx context.Context,
	method string,
	retry bool,
	f func(ctx context.Context, client *ethclient.Client) (any, error),
) (any, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		common.PromCounters[common.ChainCallTotal].WithLabelValues(method, "error").Inc()
		return nil, err
	}

	attempts := 1
	if retry {
		attempts += MaxReadRetry
	}

	var ret any
	for i := 0; i < attempts; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		ret, err = f(attemptCtx, client)
		cancel()

		if err == nil {
			common.PromCounters[common.ChainCallTotal].WithLabelValues(method, "ok").Inc()
			return ret, nil
		}

		if _, reverted := RevertReason(err); reverted || errors.Is(err, ethereum.NotFound) || ctx.Err() != nil {
			break
		}

		if i+1 < attempts {
			xcontext.Logger(ctx).Warnf("Call %s on chain %s failed, retrying: %v", method, c.chain, err)
		}
	}

	common.PromCounters[common.ChainCallTotal].WithLabelValues(method, "error").Inc()
	return ret, err
}

func (c *defaultEthClient) BlockNumber(ctx context.Context) (uint64, error) {
	num, err := c.execute(ctx, "eth_blockNumber", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.BlockNumber(ctx)
	})
	if err != nil {
		return 0, err
	}

	return num.(uint64), nil
}

func (c *defaultEthClient) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.execute(ctx, "eth_chainId", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.ChainID(ctx)
	})
	if err != nil {
		return nil, err
	}

	return id.(*big.Int), nil
}

func (c *defaultEthClient) HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error) {
	header, err := c.execute(ctx, "eth_getBlockByNumber", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.HeaderByNumber(ctx, number)
	})
	if err != nil {
		return nil, err
	}

	return header.(*ethtypes.Header), nil
}

func (c *defaultEthClient) CodeAt(ctx context.Context, contract ethcommon.Address, blockNumber *big.Int) ([]byte, error) {
	code, err := c.execute(ctx, "eth_getCode", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.CodeAt(ctx, contract, blockNumber)
	})
	if err != nil {
		return nil, err
	}

	return code.([]byte), nil
}

func (c *defaultEthClient) PendingCodeAt(ctx context.Context, account ethcommon.Address) ([]byte, error) {
	code, err := c.execute(ctx, "eth_getCode", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.PendingCodeAt(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	return code.([]byte), nil
}

func (c *defaultEthClient) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	output, err := c.execute(ctx, "eth_call", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.CallContract(ctx, call, blockNumber)
	})
	if err != nil {
		return nil, err
	}

	return output.([]byte), nil
}

func (c *defaultEthClient) PendingNonceAt(ctx context.Context, account ethcommon.Address) (uint64, error) {
	nonce, err := c.execute(ctx, "eth_getTransactionCount", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.PendingNonceAt(ctx, account)
	})
	if err != nil {
		return 0, err
	}

	return nonce.(uint64), nil
}

func (c *defaultEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	gas, err := c.execute(ctx, "eth_gasPrice", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.SuggestGasPrice(ctx)
	})
	if err != nil {
		return nil, err
	}

	return gas.(*big.Int), nil
}

func (c *defaultEthClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	tip, err := c.execute(ctx, "eth_maxPriorityFeePerGas", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.SuggestGasTipCap(ctx)
	})
	if err != nil {
		return nil, err
	}

	return tip.(*big.Int), nil
}

func (c *defaultEthClient) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	gas, err := c.execute(ctx, "eth_estimateGas", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.EstimateGas(ctx, call)
	})
	if err != nil {
		return 0, err
	}

	return gas.(uint64), nil
}

// SendTransaction is never retried, the dispatcher decides what a failed
// submission means.
func (c *defaultEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	_, err := c.execute(ctx, "eth_sendRawTransaction", false, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return nil, client.SendTransaction(ctx, tx)
	})

	return err
}

func (c *defaultEthClient) TransactionReceipt(ctx context.Context, txHash ethcommon.Hash) (*ethtypes.Receipt, error) {
	receipt, err := c.execute(ctx, "eth_getTransactionReceipt", false, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.TransactionReceipt(ctx, txHash)
	})
	if err != nil {
		return nil, err
	}

	return receipt.(*ethtypes.Receipt), nil
}

func (c *defaultEthClient) BalanceAt(ctx context.Context, account ethcommon.Address, block *big.Int) (*big.Int, error) {
	balance, err := c.execute(ctx, "eth_getBalance", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		balance, err := client.BalanceAt(ctx, account, block)
		if err == nil && balance != nil && balance.Sign() == 0 {
			xcontext.Logger(ctx).Warnf("Balance of %s is 0 on chain %s", account, c.chain)
		}

		return balance, err
	})
	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

func (c *defaultEthClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]ethtypes.Log, error) {
	logs, err := c.execute(ctx, "eth_getLogs", true, func(ctx context.Context, client *ethclient.Client) (any, error) {
		return client.FilterLogs(ctx, query)
	})
	if err != nil {
		return nil, err
	}

	return logs.([]ethtypes.Log), nil
}

func (c *defaultEthClient) SubscribeFilterLogs(
	ctx context.Context, query ethereum.FilterQuery, ch chan<- ethtypes.Log,
) (ethereum.Subscription, error) {
	client, err := c.getClient(ctx)
	if err != nil {
		return nil, err
	}

	return client.SubscribeFilterLogs(ctx, query, ch)
}
