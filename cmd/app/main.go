package main

import (
	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/di"
	"github.com/adokuru/affordaily-api/shared/logger"
)

// @title Affordaily API
// @version 1.0
// @description Hostel front-desk API: rooms, rates, bookings, payments and visitor passes.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	app.Scheduler.Start()
	defer app.Scheduler.Stop()

	app.HTTP.Serve()
}
