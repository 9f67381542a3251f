package valuation

import (
	"bstudio/internal/domain"

	"github.com/shopspring/decimal"
)

// ProfitBasis names the rule that priced a lot when its profit was
// resolved. The constants are listed in evaluation order; the first
// matching rule wins.
type ProfitBasis string

const (
	// ProfitBasisExisting reuses a previously resolved amount when no
	// fresh price was supplied.
	ProfitBasisExisting ProfitBasis = "EXISTING"
	// ProfitBasisSettlementLock returns the recorded amount of a
	// settled lot, even against a fresh price.
	ProfitBasisSettlementLock ProfitBasis = "SETTLEMENT_LOCK"
	// ProfitBasisStopLoss prices the lot at its stop-loss threshold
	// because the supplied price triggered it.
	ProfitBasisStopLoss ProfitBasis = "STOP_LOSS"
	// ProfitBasisCurrentPrice marks the lot to the supplied price.
	ProfitBasisCurrentPrice ProfitBasis = "CURRENT_PRICE"
	// ProfitBasisAcquisitionPrice falls back to the lot's own purchase
	// price, which nets the profit to zero.
	ProfitBasisAcquisitionPrice ProfitBasis = "ACQUISITION_PRICE"
)

// ProfitResolution is the outcome of ResolveProfitAmount. The input lot
// is never mutated; Lot is a copy carrying the resolved ProfitAmount,
// and Dirty tells the caller the copy differs from what is stored and
// should be persisted.
type ProfitResolution struct {
	Profit decimal.Decimal
	Basis  ProfitBasis
	Lot    domain.PurchaseLot
	Dirty  bool
}
