package main

import (
	"os"
	"os/signal"
	"syscall"

	"food-expiry-tracker/cmd/config"
	migration "food-expiry-tracker/cmd/database/migrate"
	"food-expiry-tracker/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, scheduler, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}

	scheduler.Start()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "5000"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
}
