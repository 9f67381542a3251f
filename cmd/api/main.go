package main

import (
	"log"
	"os"

	"bstudio/api"
	db "bstudio/internal/db/query"
	"bstudio/internal/repository"
	"bstudio/internal/util"
	"bstudio/internal/valuation"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

func main() {
	config, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New(config.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	lotRepository := repository.NewPurchaseLotRepository()
	profitLossService := valuation.NewProfitLossService(lotRepository)

	err = api.StartApi(config.Port, dbConn, lotRepository, profitLossService, logger)
	if err != nil {
		log.Fatal(err)
	}
}
