package main

import (
	"log"

	"github.com/nexa-tech-solution/tu-lanh-thong-minh/cmd/config"
	"github.com/nexa-tech-solution/tu-lanh-thong-minh/internal/utils"
)

func main() {
	utils.LoadConfig()

	store, closer, err := config.ConnectStorage()
	if err != nil {
		log.Fatalf("failed to connect storage: %v", err)
	}
	if closer != nil {
		defer closer()
	}

	app, err := config.NewApp(store)
	if err != nil {
		log.Fatalf("failed to configure app: %v", err)
	}

	port := utils.GetConfig("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
