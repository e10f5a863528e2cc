package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"flashdeck.app/configs"
	"flashdeck.app/configs/configsdatabase"
	"flashdeck.app/configs/configslog"
	"flashdeck.app/database"
	"flashdeck.app/routes"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadAppConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	if cfg.AutoMigrate {
		database.Initialize(db, true, false)
	}

	app := fiber.New(fiber.Config{
		AppName: "flashdeck",
	})
	routes.SetupRoutes(app, db)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Shutdown signal received, stopping server...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Server listening on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
}
