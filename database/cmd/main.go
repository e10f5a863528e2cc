package main

import (
	"flag"

	"github.com/joho/godotenv"

	"flashdeck.app/configs/configsdatabase"
	"flashdeck.app/configs/configslog"
	"flashdeck.app/database"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Run the database migrations")
	seedFlag := flag.Bool("seed", false, "Run the database seeders")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
