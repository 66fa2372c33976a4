package ethutil

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	checksummed := "0xA433cf593297386cea675Aab3e166Ba71A851CB0"

	addr, err := ParseAddress(checksummed)
	require.NoError(t, err)
	require.Equal(t, checksummed, addr.Hex())

	addr, err = ParseAddress(strings.ToLower(checksummed))
	require.NoError(t, err)
	require.Equal(t, checksummed, addr.Hex())

	addr, err = ParseAddress("0x" + strings.ToUpper(checksummed[2:]))
	require.NoError(t, err)
	require.Equal(t, checksummed, addr.Hex())

	// Flip the case of one letter to break the checksum.
	broken := "0xa433cf593297386cea675Aab3e166Ba71A851CB0"
	_, err = ParseAddress(broken)
	require.ErrorIs(t, err, ErrInvalidChecksum)

	for _, invalid := range []string{
		"",
		"0x",
		"0xabc",
		"A433cf593297386cea675Aab3e166Ba71A851CB0",
		"0xZZ33cf593297386cea675Aab3e166Ba71A851CB0",
		"0xA433cf593297386cea675Aab3e166Ba71A851CB000",
	} {
		_, err := ParseAddress(invalid)
		require.ErrorIs(t, err, ErrInvalidAddress, invalid)
	}

	_, err = ParseAddress("0x0000000000000000000000000000000000000000")
	require.ErrorIs(t, err, ErrZeroAddress)
}

func TestMethodID(t *testing.T) {
	require.Equal(t, "a9059cbb", hex.EncodeToString(MethodID("transfer(address,uint256)")))
	require.Equal(t, "70a08231", hex.EncodeToString(MethodID("balanceOf(address)")))
}

func TestLoadPrivateKey(t *testing.T) {
	key, err := LoadPrivateKey("0x7886876e514713dcdc516d1d5a4bde14db8027ae67707303a14d09ba7c409ad4")
	require.NoError(t, err)

	again, err := LoadPrivateKey("7886876e514713dcdc516d1d5a4bde14db8027ae67707303a14d09ba7c409ad4")
	require.NoError(t, err)
	require.Equal(t, PublicKeyToAddress(key), PublicKeyToAddress(again))

	_, err = LoadPrivateKey("not-a-key")
	require.Error(t, err)
}
