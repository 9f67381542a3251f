package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"bstudio/internal/db/models/postgres/public/model"
	. "bstudio/internal/db/models/postgres/public/table"
	"bstudio/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"

	bstudio_errors "bstudio/internal"
)

// DefaultSymbol groups lots created without an instrument identifier.
// It matches the column default in the schema.
const DefaultSymbol = "STOCK"

// PurchaseLotRepository owns the canonical set of purchase lots.
// An empty symbol on the aggregate methods means "all symbols".
type PurchaseLotRepository interface {
	List(tx *sql.Tx) ([]domain.PurchaseLot, error)
	Get(tx *sql.Tx, purchaseLotID int32) (*domain.PurchaseLot, error)
	ListBySymbol(tx *sql.Tx, symbol string) ([]domain.PurchaseLot, error)
	Add(tx *sql.Tx, lot *domain.PurchaseLot) (*domain.PurchaseLot, error)
	Update(tx *sql.Tx, lot *domain.PurchaseLot) (*domain.PurchaseLot, error)
	Delete(tx *sql.Tx, purchaseLotID int32) (bool, error)
	TotalInvestment(tx *sql.Tx, symbol string) (decimal.Decimal, error)
	TotalQuantity(tx *sql.Tx, symbol string) (int64, error)
	AveragePurchasePrice(tx *sql.Tx, symbol string) (decimal.Decimal, error)
}

type purchaseLotRepositoryHandler struct {
}

func NewPurchaseLotRepository() PurchaseLotRepository {
	return purchaseLotRepositoryHandler{}
}

func (h purchaseLotRepositoryHandler) List(tx *sql.Tx) ([]domain.PurchaseLot, error) {
	query := PurchaseLot.SELECT(PurchaseLot.AllColumns).
		ORDER_BY(PurchaseLot.Date.DESC())

	result := []model.PurchaseLot{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase lots: %w", err)
	}

	return lotsFromDb(result), nil
}

func (h purchaseLotRepositoryHandler) Get(tx *sql.Tx, purchaseLotID int32) (*domain.PurchaseLot, error) {
	if purchaseLotID <= 0 {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "purchaseLotID", Reason: "must be positive"}
	}

	query := PurchaseLot.SELECT(PurchaseLot.AllColumns).
		WHERE(PurchaseLot.PurchaseLotID.EQ(postgres.Int32(purchaseLotID)))

	result := model.PurchaseLot{}
	err := query.Query(tx, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, bstudio_errors.ErrLotNotFound{PurchaseLotID: purchaseLotID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase lot %d: %w", purchaseLotID, err)
	}

	lot := lotFromDb(result)
	return &lot, nil
}

func (h purchaseLotRepositoryHandler) ListBySymbol(tx *sql.Tx, symbol string) ([]domain.PurchaseLot, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "symbol", Reason: "must not be empty"}
	}

	query := PurchaseLot.SELECT(PurchaseLot.AllColumns).
		WHERE(PurchaseLot.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(PurchaseLot.Date.DESC())

	result := []model.PurchaseLot{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase lots for %s: %w", symbol, err)
	}

	return lotsFromDb(result), nil
}

func (h purchaseLotRepositoryHandler) Add(tx *sql.Tx, lot *domain.PurchaseLot) (*domain.PurchaseLot, error) {
	if lot == nil {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "lot", Reason: "must not be nil"}
	}
	if err := validateLot(*lot); err != nil {
		return nil, err
	}

	record := lotToDb(*lot)
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now

	stmt := PurchaseLot.INSERT(PurchaseLot.MutableColumns).
		MODEL(record).
		RETURNING(PurchaseLot.AllColumns)

	result := model.PurchaseLot{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to insert purchase lot: %w", err)
	}

	out := lotFromDb(result)
	return &out, nil
}

func (h purchaseLotRepositoryHandler) Update(tx *sql.Tx, lot *domain.PurchaseLot) (*domain.PurchaseLot, error) {
	if lot == nil {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "lot", Reason: "must not be nil"}
	}
	if lot.PurchaseLotID == nil || *lot.PurchaseLotID <= 0 {
		return nil, bstudio_errors.ErrInvalidArgument{Argument: "purchaseLotID", Reason: "must be positive"}
	}
	if err := validateLot(*lot); err != nil {
		return nil, err
	}

	// fetch first so a missing lot surfaces as not-found, and so the
	// original creation time survives the overwrite
	existing, err := h.Get(tx, *lot.PurchaseLotID)
	if err != nil {
		return nil, err
	}

	record := lotToDb(*lot)
	record.PurchaseLotID = *lot.PurchaseLotID
	record.CreatedAt = existing.CreatedAt
	record.UpdatedAt = time.Now().UTC()

	stmt := PurchaseLot.UPDATE(PurchaseLot.MutableColumns).
		MODEL(record).
		WHERE(PurchaseLot.PurchaseLotID.EQ(postgres.Int32(record.PurchaseLotID))).
		RETURNING(PurchaseLot.AllColumns)

	result := model.PurchaseLot{}
	err = stmt.Query(tx, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to update purchase lot %d: %w", record.PurchaseLotID, err)
	}

	out := lotFromDb(result)
	return &out, nil
}

// Delete reports whether a lot was found and removed. A missing lot is
// a false result, not an error.
func (h purchaseLotRepositoryHandler) Delete(tx *sql.Tx, purchaseLotID int32) (bool, error) {
	if purchaseLotID <= 0 {
		return false, bstudio_errors.ErrInvalidArgument{Argument: "purchaseLotID", Reason: "must be positive"}
	}

	stmt := PurchaseLot.DELETE().
		WHERE(PurchaseLot.PurchaseLotID.EQ(postgres.Int32(purchaseLotID)))

	result, err := stmt.Exec(tx)
	if err != nil {
		return false, fmt.Errorf("failed to delete purchase lot %d: %w", purchaseLotID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete purchase lot %d: %w", purchaseLotID, err)
	}

	return rows > 0, nil
}

func (h purchaseLotRepositoryHandler) TotalInvestment(tx *sql.Tx, symbol string) (decimal.Decimal, error) {
	agg, err := h.aggregates(tx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if agg.TotalInvestment == nil {
		return decimal.Zero, nil
	}
	return *agg.TotalInvestment, nil
}

func (h purchaseLotRepositoryHandler) TotalQuantity(tx *sql.Tx, symbol string) (int64, error) {
	agg, err := h.aggregates(tx, symbol)
	if err != nil {
		return 0, err
	}
	if agg.TotalQuantity == nil {
		return 0, nil
	}
	return *agg.TotalQuantity, nil
}

// AveragePurchasePrice is the weighted average cost per unit:
// sum(price*quantity) / sum(quantity), zero when no lots match.
func (h purchaseLotRepositoryHandler) AveragePurchasePrice(tx *sql.Tx, symbol string) (decimal.Decimal, error) {
	agg, err := h.aggregates(tx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if agg.TotalInvestment == nil || agg.TotalQuantity == nil || *agg.TotalQuantity == 0 {
		return decimal.Zero, nil
	}
	return agg.TotalInvestment.Div(decimal.NewFromInt(*agg.TotalQuantity)), nil
}

type lotAggregates struct {
	TotalInvestment *decimal.Decimal
	TotalQuantity   *int64
}

// both sums run in one statement so the aggregate methods never pull
// full row sets into memory
func (h purchaseLotRepositoryHandler) aggregates(tx *sql.Tx, symbol string) (lotAggregates, error) {
	stmt := PurchaseLot.SELECT(
		postgres.SUMf(PurchaseLot.Price.MUL(postgres.CAST(PurchaseLot.Quantity).AS_NUMERIC())).AS("total_investment"),
		postgres.SUMi(PurchaseLot.Quantity).AS("total_quantity"),
	)
	if symbol != "" {
		stmt = stmt.WHERE(PurchaseLot.Symbol.EQ(postgres.String(symbol)))
	}

	result := lotAggregates{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return lotAggregates{}, fmt.Errorf("failed to aggregate purchase lots: %w", err)
	}

	return result, nil
}

func validateLot(lot domain.PurchaseLot) error {
	if !lot.Price.IsPositive() {
		return bstudio_errors.ErrInvalidArgument{Argument: "price", Reason: "must be positive"}
	}
	if lot.Quantity <= 0 {
		return bstudio_errors.ErrInvalidArgument{Argument: "quantity", Reason: "must be positive"}
	}
	if lot.StopLossPrice != nil && !lot.StopLossPrice.IsPositive() {
		return bstudio_errors.ErrInvalidArgument{Argument: "stopLossPrice", Reason: "must be positive when set"}
	}
	return nil
}

func lotFromDb(l model.PurchaseLot) domain.PurchaseLot {
	return domain.PurchaseLot{
		PurchaseLotID:  &l.PurchaseLotID,
		Date:           l.Date,
		Price:          l.Price,
		Quantity:       l.Quantity,
		Symbol:         l.Symbol,
		StopLossPrice:  l.StopLossPrice,
		ProfitAmount:   l.ProfitAmount,
		SettlementDate: l.SettlementDate,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func lotsFromDb(lots []model.PurchaseLot) []domain.PurchaseLot {
	out := make([]domain.PurchaseLot, len(lots))
	for i, l := range lots {
		out[i] = lotFromDb(l)
	}
	return out
}

func lotToDb(l domain.PurchaseLot) model.PurchaseLot {
	symbol := l.Symbol
	if strings.TrimSpace(symbol) == "" {
		symbol = DefaultSymbol
	}
	return model.PurchaseLot{
		Date:           l.Date,
		Price:          l.Price,
		Quantity:       l.Quantity,
		Symbol:         symbol,
		StopLossPrice:  l.StopLossPrice,
		ProfitAmount:   l.ProfitAmount,
		SettlementDate: l.SettlementDate,
	}
}
