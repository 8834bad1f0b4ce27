package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/stpnv0/ParkSpot/internal/app"
	"github.com/stpnv0/ParkSpot/internal/config"
)

func main() {
	// .env необязателен, переменные окружения имеют приоритет
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
