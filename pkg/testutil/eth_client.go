package testutil

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// MockEthClient is a chain node double. Unset functions behave like a
// healthy node holding the contract code, with a funded server account and
// every transaction mined successfully in block 1.
type MockEthClient struct {
	BlockNumberFunc        func(ctx context.Context) (uint64, error)
	ChainIDFunc            func(ctx context.Context) (*big.Int, error)
	CallContractFunc       func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	EstimateGasFunc        func(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	PendingNonceAtFunc     func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceFunc    func(ctx context.Context) (*big.Int, error)
	SendTransactionFunc    func(ctx context.Context, tx *ethtypes.Transaction) error
	TransactionReceiptFunc func(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error)
	BalanceAtFunc          func(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error)
	CloseFunc              func()
}

func (m *MockEthClient) Start(ctx context.Context) error {
	return nil
}

func (m *MockEthClient) Close() {
	if m.CloseFunc != nil {
		m.CloseFunc()
	}
}

func (m *MockEthClient) BlockNumber(ctx context.Context) (uint64, error) {
	if m.BlockNumberFunc != nil {
		return m.BlockNumberFunc(ctx)
	}

	return 1, nil
}

func (m *MockEthClient) ChainID(ctx context.Context) (*big.Int, error) {
	if m.ChainIDFunc != nil {
		return m.ChainIDFunc(ctx)
	}

	return big.NewInt(ChainID), nil
}

func (m *MockEthClient) HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error) {
	return &ethtypes.Header{Number: big.NewInt(1)}, nil
}

func (m *MockEthClient) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (m *MockEthClient) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (m *MockEthClient) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if m.CallContractFunc != nil {
		return m.CallContractFunc(ctx, call, blockNumber)
	}

	return nil, nil
}

func (m *MockEthClient) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if m.EstimateGasFunc != nil {
		return m.EstimateGasFunc(ctx, call)
	}

	return 100_000, nil
}

func (m *MockEthClient) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if m.PendingNonceAtFunc != nil {
		return m.PendingNonceAtFunc(ctx, account)
	}

	return 0, nil
}

func (m *MockEthClient) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if m.SuggestGasPriceFunc != nil {
		return m.SuggestGasPriceFunc(ctx)
	}

	return big.NewInt(1_000_000_000), nil
}

func (m *MockEthClient) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (m *MockEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	if m.SendTransactionFunc != nil {
		return m.SendTransactionFunc(ctx, tx)
	}

	return nil
}

func (m *MockEthClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethtypes.Receipt, error) {
	if m.TransactionReceiptFunc != nil {
		return m.TransactionReceiptFunc(ctx, txHash)
	}

	return &ethtypes.Receipt{
		Status:      ethtypes.ReceiptStatusSuccessful,
		TxHash:      txHash,
		BlockNumber: big.NewInt(1),
		GasUsed:     50_000,
	}, nil
}

func (m *MockEthClient) BalanceAt(ctx context.Context, account common.Address, block *big.Int) (*big.Int, error) {
	if m.BalanceAtFunc != nil {
		return m.BalanceAtFunc(ctx, account, block)
	}

	return big.NewInt(1e18), nil
}

func (m *MockEthClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]ethtypes.Log, error) {
	return nil, nil
}

func (m *MockEthClient) SubscribeFilterLogs(
	ctx context.Context, query ethereum.FilterQuery, ch chan<- ethtypes.Log,
) (ethereum.Subscription, error) {
	panic("not implemented")
}
