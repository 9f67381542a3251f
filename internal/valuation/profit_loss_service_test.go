package valuation

import (
	"testing"
	"time"

	"bstudio/internal/domain"
	"bstudio/internal/repository"
	"bstudio/internal/util"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	bstudio_errors "bstudio/internal"
)

func testLot(price string, quantity int32) domain.PurchaseLot {
	return domain.PurchaseLot{
		Date:     time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Price:    decimal.RequireFromString(price),
		Quantity: quantity,
		Symbol:   "XYZ",
	}
}

func TestProfitLoss(t *testing.T) {
	service := NewProfitLossService(nil)

	t.Run("break even at acquisition price", func(t *testing.T) {
		lot := testLot("100.00", 10)
		out, err := service.ProfitLoss(&lot, lot.Price)
		require.NoError(t, err)
		require.True(t, out.IsZero(), out.String())
	})

	t.Run("gain", func(t *testing.T) {
		lot := testLot("100.00", 10)
		out, err := service.ProfitLoss(&lot, decimal.RequireFromString("120.00"))
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(200)), out.String())
	})

	t.Run("loss", func(t *testing.T) {
		lot := testLot("50.00", 4)
		out, err := service.ProfitLoss(&lot, decimal.RequireFromString("45.00"))
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(-20)), out.String())
	})

	t.Run("negative price rejected", func(t *testing.T) {
		lot := testLot("100.00", 10)
		_, err := service.ProfitLoss(&lot, decimal.NewFromInt(-1))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})

	t.Run("nil lot rejected", func(t *testing.T) {
		_, err := service.ProfitLoss(nil, decimal.NewFromInt(1))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})
}

func TestTotalProfitLoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	lotRepository := repository.NewMockPurchaseLotRepository(ctrl)
	service := NewProfitLossService(lotRepository)

	t.Run("sums over the symbol's lots", func(t *testing.T) {
		lotRepository.EXPECT().
			ListBySymbol(gomock.Any(), "XYZ").
			Return([]domain.PurchaseLot{testLot("10", 100), testLot("20", 50)}, nil)

		out, err := service.TotalProfitLoss(nil, "XYZ", decimal.NewFromInt(15))
		require.NoError(t, err)
		// (15-10)*100 + (15-20)*50
		require.True(t, out.Equal(decimal.NewFromInt(250)), out.String())
	})

	t.Run("empty symbol rejected", func(t *testing.T) {
		_, err := service.TotalProfitLoss(nil, " ", decimal.NewFromInt(15))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := service.TotalProfitLoss(nil, "XYZ", decimal.NewFromInt(-15))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})
}

func TestProfitLossPercentage(t *testing.T) {
	ctrl := gomock.NewController(t)
	lotRepository := repository.NewMockPurchaseLotRepository(ctrl)
	service := NewProfitLossService(lotRepository)

	t.Run("zero investment yields exactly zero", func(t *testing.T) {
		lotRepository.EXPECT().
			TotalInvestment(gomock.Any(), "XYZ").
			Return(decimal.Zero, nil)

		out, err := service.ProfitLossPercentage(nil, "XYZ", decimal.NewFromInt(15))
		require.NoError(t, err)
		require.True(t, out.IsZero(), out.String())
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		lotRepository.EXPECT().
			TotalInvestment(gomock.Any(), "XYZ").
			Return(decimal.NewFromInt(2000), nil)
		lotRepository.EXPECT().
			ListBySymbol(gomock.Any(), "XYZ").
			Return([]domain.PurchaseLot{testLot("10", 100), testLot("20", 50)}, nil)

		out, err := service.ProfitLossPercentage(nil, "XYZ", decimal.NewFromInt(15))
		require.NoError(t, err)
		// 250 / 2000 * 100
		require.True(t, out.Equal(decimal.RequireFromString("12.5")), out.String())
	})
}

func TestCurrentMarketValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	lotRepository := repository.NewMockPurchaseLotRepository(ctrl)
	service := NewProfitLossService(lotRepository)

	t.Run("price times held quantity", func(t *testing.T) {
		lotRepository.EXPECT().
			TotalQuantity(gomock.Any(), "XYZ").
			Return(int64(150), nil)

		out, err := service.CurrentMarketValue(nil, "XYZ", decimal.NewFromInt(15))
		require.NoError(t, err)
		require.True(t, out.Equal(decimal.NewFromInt(2250)), out.String())
	})

	t.Run("empty symbol rejected", func(t *testing.T) {
		_, err := service.CurrentMarketValue(nil, "", decimal.NewFromInt(15))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})
}

func TestIsStopLossTriggered(t *testing.T) {
	service := NewProfitLossService(nil)

	t.Run("no threshold never triggers", func(t *testing.T) {
		lot := testLot("50.00", 4)
		require.False(t, service.IsStopLossTriggered(&lot, decimal.Zero))
	})

	t.Run("nil lot never triggers", func(t *testing.T) {
		require.False(t, service.IsStopLossTriggered(nil, decimal.Zero))
	})

	t.Run("at or below threshold triggers", func(t *testing.T) {
		lot := testLot("50.00", 4)
		lot.StopLossPrice = util.DecimalPtr(decimal.RequireFromString("45.00"))
		require.True(t, service.IsStopLossTriggered(&lot, decimal.RequireFromString("45.00")))
		require.True(t, service.IsStopLossTriggered(&lot, decimal.RequireFromString("40.00")))
		require.False(t, service.IsStopLossTriggered(&lot, decimal.RequireFromString("45.01")))
	})
}

func TestSettlementProfit(t *testing.T) {
	service := NewProfitLossService(nil)

	t.Run("rounds to two decimals", func(t *testing.T) {
		lot := testLot("33.335", 3)
		out, err := service.SettlementProfit(&lot, decimal.RequireFromString("40.00"))
		require.NoError(t, err)
		// (40 - 33.335) * 3 = 19.995
		require.True(t, out.Equal(decimal.RequireFromString("20.00")), out.String())
	})

	t.Run("negative settlement price rejected", func(t *testing.T) {
		lot := testLot("50.00", 4)
		_, err := service.SettlementProfit(&lot, decimal.NewFromInt(-1))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})
}

func TestResolveProfitAmount(t *testing.T) {
	service := NewProfitLossService(nil)

	t.Run("reuses existing amount when no fresh price arrives", func(t *testing.T) {
		lot := testLot("100.00", 10)
		lot.ProfitAmount = util.DecimalPtr(decimal.RequireFromString("75.50"))

		resolution, err := service.ResolveProfitAmount(&lot, nil)
		require.NoError(t, err)
		require.Equal(t, ProfitBasisExisting, resolution.Basis)
		require.True(t, resolution.Profit.Equal(decimal.RequireFromString("75.50")))
		require.False(t, resolution.Dirty)
	})

	t.Run("settlement locks the recorded amount against a fresh price", func(t *testing.T) {
		lot := testLot("100.00", 10)
		lot.SettlementDate = util.TimePtr(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
		lot.ProfitAmount = util.DecimalPtr(decimal.RequireFromString("75.50"))

		resolution, err := service.ResolveProfitAmount(&lot, util.DecimalPtr(decimal.RequireFromString("999.00")))
		require.NoError(t, err)
		require.Equal(t, ProfitBasisSettlementLock, resolution.Basis)
		require.True(t, resolution.Profit.Equal(decimal.RequireFromString("75.50")))
		require.False(t, resolution.Dirty)
	})

	t.Run("triggered stop loss prices the lot at its threshold", func(t *testing.T) {
		lot := testLot("50.00", 4)
		lot.StopLossPrice = util.DecimalPtr(decimal.RequireFromString("45.00"))

		resolution, err := service.ResolveProfitAmount(&lot, util.DecimalPtr(decimal.RequireFromString("40.00")))
		require.NoError(t, err)
		require.Equal(t, ProfitBasisStopLoss, resolution.Basis)
		require.True(t, resolution.Profit.Equal(decimal.RequireFromString("-20.00")), resolution.Profit.String())
		require.True(t, resolution.Dirty)
		require.NotNil(t, resolution.Lot.ProfitAmount)
		require.True(t, resolution.Lot.ProfitAmount.Equal(decimal.RequireFromString("-20.00")))
		// input stays untouched
		require.Nil(t, lot.ProfitAmount)
	})

	t.Run("marks to the supplied price", func(t *testing.T) {
		lot := testLot("100.00", 10)

		resolution, err := service.ResolveProfitAmount(&lot, util.DecimalPtr(decimal.RequireFromString("120.00")))
		require.NoError(t, err)
		require.Equal(t, ProfitBasisCurrentPrice, resolution.Basis)
		require.True(t, resolution.Profit.Equal(decimal.NewFromInt(200)))
		require.True(t, resolution.Dirty)
	})

	t.Run("no information nets to zero", func(t *testing.T) {
		lot := testLot("100.00", 10)

		resolution, err := service.ResolveProfitAmount(&lot, nil)
		require.NoError(t, err)
		require.Equal(t, ProfitBasisAcquisitionPrice, resolution.Basis)
		require.True(t, resolution.Profit.IsZero())
		require.True(t, resolution.Dirty)
	})

	t.Run("settled lot without recorded amount ignores its stop loss", func(t *testing.T) {
		lot := testLot("100.00", 10)
		lot.SettlementDate = util.TimePtr(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC))
		lot.StopLossPrice = util.DecimalPtr(decimal.RequireFromString("150.00"))

		resolution, err := service.ResolveProfitAmount(&lot, util.DecimalPtr(decimal.RequireFromString("120.00")))
		require.NoError(t, err)
		require.Equal(t, ProfitBasisCurrentPrice, resolution.Basis)
		require.True(t, resolution.Profit.Equal(decimal.NewFromInt(200)))
	})

	t.Run("resolving twice is idempotent", func(t *testing.T) {
		lot := testLot("100.00", 10)

		first, err := service.ResolveProfitAmount(&lot, util.DecimalPtr(decimal.RequireFromString("120.00")))
		require.NoError(t, err)
		require.True(t, first.Dirty)

		second, err := service.ResolveProfitAmount(&first.Lot, nil)
		require.NoError(t, err)
		require.Equal(t, ProfitBasisExisting, second.Basis)
		require.True(t, second.Profit.Equal(first.Profit))
		require.False(t, second.Dirty)
	})

	t.Run("nil lot rejected", func(t *testing.T) {
		_, err := service.ResolveProfitAmount(nil, nil)
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})

	t.Run("negative price rejected", func(t *testing.T) {
		lot := testLot("100.00", 10)
		_, err := service.ResolveProfitAmount(&lot, util.DecimalPtr(decimal.NewFromInt(-1)))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	lotRepository := repository.NewMockPurchaseLotRepository(ctrl)
	service := NewProfitLossService(lotRepository)

	t.Run("aggregates the position", func(t *testing.T) {
		lotRepository.EXPECT().
			TotalInvestment(gomock.Any(), "XYZ").
			Return(decimal.NewFromInt(2000), nil).
			AnyTimes()
		lotRepository.EXPECT().
			TotalQuantity(gomock.Any(), "XYZ").
			Return(int64(150), nil).
			AnyTimes()
		lotRepository.EXPECT().
			ListBySymbol(gomock.Any(), "XYZ").
			Return([]domain.PurchaseLot{testLot("10", 100), testLot("20", 50)}, nil).
			AnyTimes()
		lotRepository.EXPECT().
			AveragePurchasePrice(gomock.Any(), "XYZ").
			Return(decimal.NewFromInt(2000).Div(decimal.NewFromInt(150)), nil)

		summary, err := service.Summary(nil, "XYZ", decimal.NewFromInt(15))
		require.NoError(t, err)
		require.True(t, summary.TotalInvestment.Equal(decimal.NewFromInt(2000)))
		require.True(t, summary.CurrentMarketValue.Equal(decimal.NewFromInt(2250)))
		require.True(t, summary.TotalProfitLoss.Equal(decimal.NewFromInt(250)))
		require.True(t, summary.ProfitLossPercentage.Equal(decimal.RequireFromString("12.5")))
		require.Equal(t, int64(150), summary.TotalQuantity)
		require.True(t, summary.AveragePurchasePrice.Equal(decimal.RequireFromString("13.33")), summary.AveragePurchasePrice.String())
		require.True(t, summary.CurrentPrice.Equal(decimal.NewFromInt(15)))
		require.Equal(t, "XYZ", summary.Symbol)
	})

	t.Run("empty symbol rejected", func(t *testing.T) {
		_, err := service.Summary(nil, "", decimal.NewFromInt(15))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := service.Summary(nil, "XYZ", decimal.NewFromInt(-15))
		require.ErrorAs(t, err, &bstudio_errors.ErrInvalidArgument{})
	})
}
