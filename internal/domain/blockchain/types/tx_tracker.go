package types

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type TrackResult int

const (
	TrackResultConfirmed TrackResult = iota
	TrackResultFailure
	TrackResultTimeout
)

type TrackUpdate struct {
	Chain       string
	BlockHeight uint64
	Result      TrackResult
	Hash        common.Hash
	Receipt     *ethtypes.Receipt

	Nonce uint64
}

// Confirmation is what a server-signed write reports back once its
// transaction is mined successfully.
type Confirmation struct {
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
	Nonce       uint64
}
