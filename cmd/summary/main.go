package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	db "bstudio/internal/db/query"
	"bstudio/internal/repository"
	"bstudio/internal/util"
	"bstudio/internal/valuation"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: summary <symbol> <currentPrice>")
	}
	symbol := os.Args[1]
	currentPrice, err := decimal.NewFromString(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	config, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	dbConn, err := db.New(config.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	profitLossService := valuation.NewProfitLossService(repository.NewPurchaseLotRepository())

	summary, err := profitLossService.Summary(tx, symbol, currentPrice)
	if err != nil {
		log.Fatal(err)
	}

	bytes, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(bytes))
}
