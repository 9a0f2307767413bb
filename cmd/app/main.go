package main

import (
	"context"
	"hotelops/config"
	"hotelops/di"
	"hotelops/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	go app.Expirer.Run(context.Background())

	app.HTTP.Serve()
}
