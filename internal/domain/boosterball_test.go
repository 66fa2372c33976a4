package domain

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/ethutil"
	"github.com/questx-lab/tournament/pkg/testutil"
	"github.com/questx-lab/tournament/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_boosterBallDomain_GetPurchaseData(t *testing.T) {
	gateway := &testutil.MockGateway{}
	resp, err := NewBoosterBallDomain(gateway).GetPurchaseData(
		testutil.MockContext(), &model.GetPurchaseDataRequest{UserAddress: testutil.PlayerAddress})
	require.NoError(t, err)
	require.Equal(t, model.PurchaseTransaction{
		To:       testutil.ContractAddress,
		From:     testutil.PlayerAddress,
		Data:     hexutil.Encode(ethutil.MethodID("purchaseBoosterBalls()")),
		Value:    "10000000000000000000",
		ChainID:  testutil.ChainID,
		GasLimit: "300000",
	}, resp.Transaction)
	require.Zero(t, gateway.Calls.Load())
}

func Test_boosterBallDomain_GetPurchaseData_LowercaseAddress(t *testing.T) {
	resp, err := NewBoosterBallDomain(&testutil.MockGateway{}).GetPurchaseData(
		testutil.MockContext(), &model.GetPurchaseDataRequest{UserAddress: strings.ToLower(testutil.PlayerAddress)})
	require.NoError(t, err)
	require.Equal(t, testutil.PlayerAddress, resp.Transaction.From)
}

func Test_boosterBallDomain_GetPurchaseData_Price(t *testing.T) {
	cfg := testutil.MockConfigs()
	cfg.BoosterBall.PriceXFI = 123456789
	cfg.BoosterBall.GasLimit = 21000
	ctx := xcontext.WithConfigs(testutil.MockContext(), cfg)

	resp, err := NewBoosterBallDomain(&testutil.MockGateway{}).GetPurchaseData(
		ctx, &model.GetPurchaseDataRequest{UserAddress: testutil.PlayerAddress})
	require.NoError(t, err)
	require.Equal(t, "123456789000000000000000000", resp.Transaction.Value)
	require.Equal(t, "21000", resp.Transaction.GasLimit)
}

func Test_boosterBallDomain_GetPurchaseData_ChainIDFromGateway(t *testing.T) {
	gateway := &testutil.MockGateway{
		ChainIDFunc: func() *big.Int { return big.NewInt(4158) },
	}

	resp, err := NewBoosterBallDomain(gateway).GetPurchaseData(
		testutil.MockContext(), &model.GetPurchaseDataRequest{UserAddress: testutil.PlayerAddress})
	require.NoError(t, err)
	require.Equal(t, uint64(4158), resp.Transaction.ChainID)
}

func Test_boosterBallDomain_GetPurchaseData_Invalid(t *testing.T) {
	for _, address := range []string{"", "0x12", "hello"} {
		_, err := NewBoosterBallDomain(&testutil.MockGateway{}).GetPurchaseData(
			testutil.MockContext(), &model.GetPurchaseDataRequest{UserAddress: address})
		require.True(t, errorx.Is(err, errorx.InvalidRequest), "address %q", address)
	}
}

func Test_boosterBallDomain_GetPurchaseData_BadCallData(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		err  error
	}{
		{name: "pack error", err: errors.New("method not found")},
		{name: "wrong selector", data: ethutil.MethodID("resetTournament()")},
		{name: "short", data: []byte{0x01}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &testutil.MockGateway{
				PurchaseCallDataFunc: func() ([]byte, error) { return tt.data, tt.err },
			}

			_, err := NewBoosterBallDomain(gateway).GetPurchaseData(
				testutil.MockContext(), &model.GetPurchaseDataRequest{UserAddress: testutil.PlayerAddress})
			require.ErrorIs(t, err, errorx.Unknown)
		})
	}
}
