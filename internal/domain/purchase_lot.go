package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseLot is one buy transaction for a symbol. The ID is nil until
// the repository assigns one on insert.
type PurchaseLot struct {
	PurchaseLotID  *int32
	Date           time.Time
	Price          decimal.Decimal
	Quantity       int32
	Symbol         string
	StopLossPrice  *decimal.Decimal
	ProfitAmount   *decimal.Decimal
	SettlementDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Investment is the total cost of the lot (price x quantity).
func (p PurchaseLot) Investment() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt32(p.Quantity))
}

// Settled reports whether the lot has been closed out. Once a settled
// lot carries a profit amount, that amount is authoritative.
func (p PurchaseLot) Settled() bool {
	return p.SettlementDate != nil
}

func (p PurchaseLot) DeepCopy() *PurchaseLot {
	out := p
	if p.PurchaseLotID != nil {
		id := *p.PurchaseLotID
		out.PurchaseLotID = &id
	}
	if p.StopLossPrice != nil {
		stopLoss := *p.StopLossPrice
		out.StopLossPrice = &stopLoss
	}
	if p.ProfitAmount != nil {
		profit := *p.ProfitAmount
		out.ProfitAmount = &profit
	}
	if p.SettlementDate != nil {
		settled := *p.SettlementDate
		out.SettlementDate = &settled
	}
	return &out
}
