package ethutil

import (
	"crypto/ecdsa"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

var (
	ErrInvalidAddress  = errors.New("invalid address")
	ErrInvalidChecksum = errors.New("invalid address checksum")
	ErrZeroAddress     = errors.New("zero address")
)

// ParseAddress validates a hex account address. All-lowercase and
// all-uppercase forms carry no checksum and are accepted; mixed-case input
// must match its EIP-55 checksum.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) || !has0xPrefix(s) {
		return common.Address{}, ErrInvalidAddress
	}

	addr := common.HexToAddress(s)
	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) {
		if addr.Hex() != s {
			return common.Address{}, ErrInvalidChecksum
		}
	}

	if addr == (common.Address{}) {
		return common.Address{}, ErrZeroAddress
	}

	return addr, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// MethodID returns the 4-byte function selector of a canonical signature such
// as "purchaseBoosterBalls()".
func MethodID(signature string) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(signature))
	return hash.Sum(nil)[:4]
}

func LoadPrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	return ethcrypto.HexToECDSA(hexKey)
}

func PublicKeyToAddress(key *ecdsa.PrivateKey) common.Address {
	return ethcrypto.PubkeyToAddress(key.PublicKey)
}
