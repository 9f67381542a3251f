package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	api_types "bstudio/api-types"
	"bstudio/internal/domain"
	"bstudio/internal/repository"
	"bstudio/internal/valuation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	bstudio_errors "bstudio/internal"
)

type apiHandler struct {
	db            *sql.DB
	lotRepository repository.PurchaseLotRepository
	profitLoss    valuation.ProfitLossService
	logger        zerolog.Logger
}

func StartApi(port int, db *sql.DB, lotRepository repository.PurchaseLotRepository, profitLoss valuation.ProfitLossService, logger zerolog.Logger) error {
	h := apiHandler{
		db:            db,
		lotRepository: lotRepository,
		profitLoss:    profitLoss,
		logger:        logger,
	}

	router := gin.Default()

	router.Use(cors.Default())
	router.Use(requestID)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, map[string]string{"message": "welcome to bstudio"})
	})

	router.GET("/lots", h.listLots)
	router.GET("/lots/aggregates", h.aggregates)
	router.GET("/lots/:id", h.getLot)
	router.POST("/lots", h.addLot)
	router.PUT("/lots/:id", h.updateLot)
	router.DELETE("/lots/:id", h.deleteLot)
	router.POST("/lots/:id/profit", h.resolveProfit)
	router.GET("/summary", h.summary)

	return router.Run(fmt.Sprintf(":%d", port))
}

func requestID(c *gin.Context) {
	id := c.GetHeader("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	c.Header("X-Request-Id", id)
	c.Set("requestID", id)
	c.Next()
}

func (h apiHandler) listLots(c *gin.Context) {
	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	var lots []domain.PurchaseLot
	if symbol := c.Query("symbol"); symbol != "" {
		lots, err = h.lotRepository.ListBySymbol(tx, symbol)
	} else {
		lots, err = h.lotRepository.List(tx)
	}
	if err != nil {
		h.returnError(c, err)
		return
	}

	out := api_types.ListPurchaseLotsResponse{Lots: make([]api_types.PurchaseLot, len(lots))}
	for i, lot := range lots {
		out.Lots[i] = lotToApi(lot)
	}
	c.JSON(http.StatusOK, out)
}

func (h apiHandler) getLot(c *gin.Context) {
	id, err := parseLotID(c)
	if err != nil {
		h.returnError(c, err)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	lot, err := h.lotRepository.Get(tx, id)
	if err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusOK, lotToApi(*lot))
}

func (h apiHandler) addLot(c *gin.Context) {
	var req api_types.SavePurchaseLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnError(c, bstudio_errors.ErrInvalidArgument{Argument: "body", Reason: err.Error()})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	lot := lotFromRequest(req)
	stored, err := h.lotRepository.Add(tx, &lot)
	if err != nil {
		h.returnError(c, err)
		return
	}
	if err := tx.Commit(); err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lotToApi(*stored))
}

func (h apiHandler) updateLot(c *gin.Context) {
	id, err := parseLotID(c)
	if err != nil {
		h.returnError(c, err)
		return
	}
	var req api_types.SavePurchaseLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnError(c, bstudio_errors.ErrInvalidArgument{Argument: "body", Reason: err.Error()})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	lot := lotFromRequest(req)
	lot.PurchaseLotID = &id
	updated, err := h.lotRepository.Update(tx, &lot)
	if err != nil {
		h.returnError(c, err)
		return
	}
	if err := tx.Commit(); err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusOK, lotToApi(*updated))
}

func (h apiHandler) deleteLot(c *gin.Context) {
	id, err := parseLotID(c)
	if err != nil {
		h.returnError(c, err)
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	deleted, err := h.lotRepository.Delete(tx, id)
	if err != nil {
		h.returnError(c, err)
		return
	}
	if err := tx.Commit(); err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusOK, api_types.DeletePurchaseLotResponse{Deleted: deleted})
}

func (h apiHandler) aggregates(c *gin.Context) {
	symbol := c.Query("symbol")

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	totalInvestment, err := h.lotRepository.TotalInvestment(tx, symbol)
	if err != nil {
		h.returnError(c, err)
		return
	}
	totalQuantity, err := h.lotRepository.TotalQuantity(tx, symbol)
	if err != nil {
		h.returnError(c, err)
		return
	}
	averagePurchasePrice, err := h.lotRepository.AveragePurchasePrice(tx, symbol)
	if err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusOK, api_types.PositionAggregatesResponse{
		Symbol:               symbol,
		TotalInvestment:      totalInvestment,
		TotalQuantity:        totalQuantity,
		AveragePurchasePrice: averagePurchasePrice,
	})
}

func (h apiHandler) summary(c *gin.Context) {
	symbol := c.Query("symbol")
	currentPrice, err := decimal.NewFromString(c.Query("currentPrice"))
	if err != nil {
		h.returnError(c, bstudio_errors.ErrInvalidArgument{Argument: "currentPrice", Reason: "must be a decimal number"})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	summary, err := h.profitLoss.Summary(tx, symbol, currentPrice)
	if err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// resolveProfit computes the lot's profit and persists the updated lot
// in the same transaction when the resolution changed it.
func (h apiHandler) resolveProfit(c *gin.Context) {
	id, err := parseLotID(c)
	if err != nil {
		h.returnError(c, err)
		return
	}
	var req api_types.ResolveProfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.returnError(c, bstudio_errors.ErrInvalidArgument{Argument: "body", Reason: err.Error()})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		h.returnError(c, err)
		return
	}
	defer tx.Rollback()

	lot, err := h.lotRepository.Get(tx, id)
	if err != nil {
		h.returnError(c, err)
		return
	}

	resolution, err := h.profitLoss.ResolveProfitAmount(lot, req.CurrentPrice)
	if err != nil {
		h.returnError(c, err)
		return
	}

	resolved := resolution.Lot
	if resolution.Dirty {
		updated, err := h.lotRepository.Update(tx, &resolution.Lot)
		if err != nil {
			h.returnError(c, err)
			return
		}
		resolved = *updated
	}
	if err := tx.Commit(); err != nil {
		h.returnError(c, err)
		return
	}

	c.JSON(http.StatusOK, api_types.ResolveProfitResponse{
		ProfitAmount: resolution.Profit,
		Basis:        string(resolution.Basis),
		Lot:          lotToApi(resolved),
	})
}

func (h apiHandler) returnError(c *gin.Context, err error) {
	requestID := c.GetString("requestID")
	h.logger.Error().Err(err).Str("requestID", requestID).Str("path", c.FullPath()).Msg("request failed")

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &bstudio_errors.ErrInvalidArgument{}):
		status = http.StatusBadRequest
	case errors.As(err, &bstudio_errors.ErrLotNotFound{}):
		status = http.StatusNotFound
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func parseLotID(c *gin.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		return 0, bstudio_errors.ErrInvalidArgument{Argument: "id", Reason: "must be an integer"}
	}
	return int32(id), nil
}

func lotToApi(lot domain.PurchaseLot) api_types.PurchaseLot {
	out := api_types.PurchaseLot{
		Date:           lot.Date,
		Price:          lot.Price,
		Quantity:       lot.Quantity,
		Symbol:         lot.Symbol,
		StopLossPrice:  lot.StopLossPrice,
		ProfitAmount:   lot.ProfitAmount,
		SettlementDate: lot.SettlementDate,
		CreatedAt:      lot.CreatedAt,
		UpdatedAt:      lot.UpdatedAt,
	}
	if lot.PurchaseLotID != nil {
		out.ID = *lot.PurchaseLotID
	}
	return out
}

func lotFromRequest(req api_types.SavePurchaseLotRequest) domain.PurchaseLot {
	return domain.PurchaseLot{
		Date:           req.Date,
		Price:          req.Price,
		Quantity:       req.Quantity,
		Symbol:         req.Symbol,
		StopLossPrice:  req.StopLossPrice,
		ProfitAmount:   req.ProfitAmount,
		SettlementDate: req.SettlementDate,
	}
}
