package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseLot struct {
	ID             int32            `json:"id"`
	Date           time.Time        `json:"date"`
	Price          decimal.Decimal  `json:"price"`
	Quantity       int32            `json:"quantity"`
	Symbol         string           `json:"symbol"`
	StopLossPrice  *decimal.Decimal `json:"stopLossPrice,omitempty"`
	ProfitAmount   *decimal.Decimal `json:"profitAmount,omitempty"`
	SettlementDate *time.Time       `json:"settlementDate,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// SavePurchaseLotRequest is the payload for both create and update; the
// lot id comes from the URL on updates.
type SavePurchaseLotRequest struct {
	Date           time.Time        `json:"date"`
	Price          decimal.Decimal  `json:"price"`
	Quantity       int32            `json:"quantity"`
	Symbol         string           `json:"symbol"`
	StopLossPrice  *decimal.Decimal `json:"stopLossPrice"`
	ProfitAmount   *decimal.Decimal `json:"profitAmount"`
	SettlementDate *time.Time       `json:"settlementDate"`
}

type ListPurchaseLotsResponse struct {
	Lots []PurchaseLot `json:"lots"`
}

type DeletePurchaseLotResponse struct {
	Deleted bool `json:"deleted"`
}

type PositionAggregatesResponse struct {
	Symbol               string          `json:"symbol,omitempty"`
	TotalInvestment      decimal.Decimal `json:"totalInvestment"`
	TotalQuantity        int64           `json:"totalQuantity"`
	AveragePurchasePrice decimal.Decimal `json:"averagePurchasePrice"`
}

type ResolveProfitRequest struct {
	// CurrentPrice is optional; without it an already-resolved amount
	// is returned unchanged.
	CurrentPrice *decimal.Decimal `json:"currentPrice"`
}

type ResolveProfitResponse struct {
	ProfitAmount decimal.Decimal `json:"profitAmount"`
	Basis        string          `json:"basis"`
	Lot          PurchaseLot     `json:"lot"`
}
