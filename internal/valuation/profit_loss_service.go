package valuation

import (
	"database/sql"
	"strings"

	"bstudio/internal/domain"
	"bstudio/internal/repository"

	"github.com/shopspring/decimal"

	bstudio_errors "bstudio/internal"
)

var oneHundred = decimal.NewFromInt(100)

// ProfitLossService computes P&L views over purchase lots. The only
// state it touches is the lot repository, and only for the symbol-level
// aggregate methods.
type ProfitLossService interface {
	ProfitLoss(lot *domain.PurchaseLot, currentPrice decimal.Decimal) (decimal.Decimal, error)
	TotalProfitLoss(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (decimal.Decimal, error)
	ProfitLossPercentage(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (decimal.Decimal, error)
	CurrentMarketValue(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (decimal.Decimal, error)
	IsStopLossTriggered(lot *domain.PurchaseLot, currentPrice decimal.Decimal) bool
	SettlementProfit(lot *domain.PurchaseLot, settlementPrice decimal.Decimal) (decimal.Decimal, error)
	ResolveProfitAmount(lot *domain.PurchaseLot, currentPrice *decimal.Decimal) (*ProfitResolution, error)
	Summary(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (*ProfitLossSummary, error)
}

// ProfitLossSummary aggregates a symbol's position against one quote.
// All money fields are rounded to 2 decimals; the percentage is rounded
// when computed.
type ProfitLossSummary struct {
	TotalInvestment      decimal.Decimal `json:"totalInvestment"`
	CurrentMarketValue   decimal.Decimal `json:"currentMarketValue"`
	TotalProfitLoss      decimal.Decimal `json:"totalProfitLoss"`
	ProfitLossPercentage decimal.Decimal `json:"profitLossPercentage"`
	TotalQuantity        int64           `json:"totalQuantity"`
	AveragePurchasePrice decimal.Decimal `json:"averagePurchasePrice"`
	CurrentPrice         decimal.Decimal `json:"currentPrice"`
	Symbol               string          `json:"symbol"`
}

type profitLossServiceHandler struct {
	lotRepository repository.PurchaseLotRepository
}

func NewProfitLossService(lotRepository repository.PurchaseLotRepository) ProfitLossService {
	return profitLossServiceHandler{lotRepository: lotRepository}
}

// ProfitLoss is (currentPrice - purchase price) x quantity, unrounded.
func (h profitLossServiceHandler) ProfitLoss(lot *domain.PurchaseLot, currentPrice decimal.Decimal) (decimal.Decimal, error) {
	if lot == nil {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "lot", Reason: "must not be nil"}
	}
	if currentPrice.IsNegative() {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "currentPrice", Reason: "must not be negative"}
	}

	return currentPrice.Sub(lot.Price).Mul(decimal.NewFromInt32(lot.Quantity)), nil
}

func (h profitLossServiceHandler) TotalProfitLoss(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(symbol) == "" {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "symbol", Reason: "must not be empty"}
	}
	if currentPrice.IsNegative() {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "currentPrice", Reason: "must not be negative"}
	}

	lots, err := h.lotRepository.ListBySymbol(tx, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range lots {
		profitLoss, err := h.ProfitLoss(&lots[i], currentPrice)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(profitLoss)
	}

	return total, nil
}

// ProfitLossPercentage is totalProfitLoss / totalInvestment x 100,
// rounded to 2 decimals. An empty position yields exactly zero.
func (h profitLossServiceHandler) ProfitLossPercentage(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (decimal.Decimal, error) {
	totalInvestment, err := h.lotRepository.TotalInvestment(tx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if totalInvestment.IsZero() {
		return decimal.Zero, nil
	}

	totalProfitLoss, err := h.TotalProfitLoss(tx, symbol, currentPrice)
	if err != nil {
		return decimal.Zero, err
	}

	return totalProfitLoss.Div(totalInvestment).Mul(oneHundred).Round(2), nil
}

func (h profitLossServiceHandler) CurrentMarketValue(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(symbol) == "" {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "symbol", Reason: "must not be empty"}
	}
	if currentPrice.IsNegative() {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "currentPrice", Reason: "must not be negative"}
	}

	totalQuantity, err := h.lotRepository.TotalQuantity(tx, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	return currentPrice.Mul(decimal.NewFromInt(totalQuantity)), nil
}

// IsStopLossTriggered never errors: a lot without a stop-loss threshold
// simply cannot trigger.
func (h profitLossServiceHandler) IsStopLossTriggered(lot *domain.PurchaseLot, currentPrice decimal.Decimal) bool {
	if lot == nil || lot.StopLossPrice == nil {
		return false
	}

	return currentPrice.LessThanOrEqual(*lot.StopLossPrice)
}

func (h profitLossServiceHandler) SettlementProfit(lot *domain.PurchaseLot, settlementPrice decimal.Decimal) (decimal.Decimal, error) {
	if lot == nil {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "lot", Reason: "must not be nil"}
	}
	if settlementPrice.IsNegative() {
		return decimal.Zero, bstudio_errors.ErrInvalidArgument{Argument: "settlementPrice", Reason: "must not be negative"}
	}

	return settlementPrice.Sub(lot.Price).Mul(decimal.NewFromInt32(lot.Quantity)).Round(2), nil
}

// ResolveProfitAmount decides a lot's realized or mark-to-market profit.
// Rules evaluate in order; the first match wins:
//
//  1. an already-resolved amount is reused when no fresh price arrives
//  2. settlement locks a recorded amount against any price
//  3. a triggered stop-loss prices the lot at its threshold
//  4. otherwise the supplied price, falling back to the acquisition
//     price (zero profit) when none was given
//
// The input lot is not mutated; callers persist the returned copy when
// Dirty is set.
func (h profitLossServiceHandler) ResolveProfitAmount(lot *domain.PurchaseLot, currentPrice *decimal.Decimal) (*ProfitResolution, error) {
	if lot == nil {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "lot", Reason: "must not be nil"}
	}
	if currentPrice != nil && currentPrice.IsNegative() {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "currentPrice", Reason: "must not be negative"}
	}

	if lot.ProfitAmount != nil && currentPrice == nil {
		return &ProfitResolution{Profit: *lot.ProfitAmount, Basis: ProfitBasisExisting, Lot: *lot}, nil
	}
	if lot.Settled() && lot.ProfitAmount != nil {
		return &ProfitResolution{Profit: *lot.ProfitAmount, Basis: ProfitBasisSettlementLock, Lot: *lot}, nil
	}

	basis := ProfitBasisAcquisitionPrice
	priceUsed := lot.Price
	switch {
	case !lot.Settled() && currentPrice != nil && h.IsStopLossTriggered(lot, *currentPrice):
		basis = ProfitBasisStopLoss
		priceUsed = *lot.StopLossPrice
	case currentPrice != nil:
		basis = ProfitBasisCurrentPrice
		priceUsed = *currentPrice
	}

	profit := priceUsed.Sub(lot.Price).Mul(decimal.NewFromInt32(lot.Quantity)).Round(2)
	updated := *lot
	updated.ProfitAmount = &profit

	return &ProfitResolution{Profit: profit, Basis: basis, Lot: updated, Dirty: true}, nil
}

func (h profitLossServiceHandler) Summary(tx *sql.Tx, symbol string, currentPrice decimal.Decimal) (*ProfitLossSummary, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "symbol", Reason: "must not be empty"}
	}
	if currentPrice.IsNegative() {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "currentPrice", Reason: "must not be negative"}
	}

	totalInvestment, err := h.lotRepository.TotalInvestment(tx, symbol)
	if err != nil {
		return nil, err
	}
	currentMarketValue, err := h.CurrentMarketValue(tx, symbol, currentPrice)
	if err != nil {
		return nil, err
	}
	totalProfitLoss, err := h.TotalProfitLoss(tx, symbol, currentPrice)
	if err != nil {
		return nil, err
	}
	profitLossPercentage, err := h.ProfitLossPercentage(tx, symbol, currentPrice)
	if err != nil {
		return nil, err
	}
	totalQuantity, err := h.lotRepository.TotalQuantity(tx, symbol)
	if err != nil {
		return nil, err
	}
	averagePurchasePrice, err := h.lotRepository.AveragePurchasePrice(tx, symbol)
	if err != nil {
		return nil, err
	}

	return &ProfitLossSummary{
		TotalInvestment:      totalInvestment.Round(2),
		CurrentMarketValue:   currentMarketValue.Round(2),
		TotalProfitLoss:      totalProfitLoss.Round(2),
		ProfitLossPercentage: profitLossPercentage,
		TotalQuantity:        totalQuantity,
		AveragePurchasePrice: averagePurchasePrice.Round(2),
		CurrentPrice:         currentPrice,
		Symbol:               symbol,
	}, nil
}
