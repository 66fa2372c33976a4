package eth

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/questx-lab/tournament/pkg/ethutil"
)

// Signer holds the single server key used for administrative writes.
type Signer struct {
	privateKey *ecdsa.PrivateKey
	from       ethcommon.Address
	chainID    *big.Int
	useEip1559 bool
}

func NewSigner(privateKey string, chainID uint64, useEip1559 bool) (*Signer, error) {
	key, err := ethutil.LoadPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	return &Signer{
		privateKey: key,
		from:       ethutil.PublicKeyToAddress(key),
		chainID:    new(big.Int).SetUint64(chainID),
		useEip1559: useEip1559,
	}, nil
}

func (s *Signer) Address() ethcommon.Address {
	return s.from
}

func (s *Signer) ChainID() *big.Int {
	return new(big.Int).Set(s.chainID)
}

func (s *Signer) UseEip1559() bool {
	return s.useEip1559
}

// TransactionOpts returns options that make a binding build and sign a
// transaction without submitting it.
func (s *Signer) TransactionOpts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: s.from,
		Signer: func(a ethcommon.Address, t *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			if a != s.from {
				return nil, bind.ErrNotAuthorized
			}

			return ethtypes.SignTx(t, s.signer(), s.privateKey)
		},
		Value:   value,
		Context: ctx,
		NoSend:  true,
	}
}

func (s *Signer) signer() ethtypes.Signer {
	if s.useEip1559 {
		return ethtypes.NewLondonSigner(s.chainID)
	}

	return ethtypes.NewEIP155Signer(s.chainID)
}
