package model

// PurchaseTransaction is an unsigned transaction for the player's wallet to
// sign. Currency amounts are decimal strings.
type PurchaseTransaction struct {
	To       string `json:"to"`
	From     string `json:"from"`
	Data     string `json:"data"`
	Value    string `json:"value"`
	ChainID  uint64 `json:"chainId"`
	GasLimit string `json:"gasLimit"`
}

type GetPurchaseDataRequest struct {
	UserAddress string `json:"userAddress"`
}

type GetPurchaseDataResponse struct {
	Transaction PurchaseTransaction `json:"transaction"`
}
