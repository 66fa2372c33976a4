package domain

import (
	"bytes"
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/questx-lab/tournament/internal/domain/blockchain"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/ethutil"
	"github.com/questx-lab/tournament/pkg/numberutil"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

const purchaseSignature = "purchaseBoosterBalls()"

type BoosterBallDomain interface {
	GetPurchaseData(context.Context, *model.GetPurchaseDataRequest) (*model.GetPurchaseDataResponse, error)
}

type boosterBallDomain struct {
	gateway blockchain.Gateway
}

func NewBoosterBallDomain(gateway blockchain.Gateway) *boosterBallDomain {
	return &boosterBallDomain{gateway: gateway}
}

// GetPurchaseData builds the unsigned purchase transaction. The server never
// signs or submits it.
func (d *boosterBallDomain) GetPurchaseData(
	ctx context.Context, req *model.GetPurchaseDataRequest,
) (*model.GetPurchaseDataResponse, error) {
	if req.UserAddress == "" {
		return nil, errorx.New(errorx.InvalidRequest, "Missing userAddress")
	}

	from, err := ethutil.ParseAddress(req.UserAddress)
	if err != nil {
		return nil, errorx.New(errorx.InvalidRequest, "Invalid userAddress %q: %v", req.UserAddress, err)
	}

	data, err := d.gateway.PurchaseCallData()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot pack purchase call data: %v", err)
		return nil, errorx.Unknown
	}

	if len(data) < 4 || !bytes.Equal(data[:4], ethutil.MethodID(purchaseSignature)) {
		xcontext.Logger(ctx).Errorf("Purchase call data has unexpected selector: %x", data)
		return nil, errorx.Unknown
	}

	cfg := xcontext.Configs(ctx)
	value := numberutil.ToSmallestUnit(cfg.BoosterBall.PriceXFI, cfg.BoosterBall.Decimals)

	return &model.GetPurchaseDataResponse{
		Transaction: model.PurchaseTransaction{
			To:       d.gateway.ContractAddress().Hex(),
			From:     from.Hex(),
			Data:     hexutil.Encode(data),
			Value:    numberutil.DecimalString(value),
			ChainID:  d.gateway.ChainID().Uint64(),
			GasLimit: strconv.FormatUint(cfg.BoosterBall.GasLimit, 10),
		},
	}, nil
}
