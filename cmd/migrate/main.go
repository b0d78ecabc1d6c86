package main

import (
	"log"

	"mecda-academy/app/config"
	"mecda-academy/app/database"
)

// Standalone migration runner for environments where the server should
// not apply schema changes at boot.
func main() {
	log.Println("Running database migrations...")

	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migrations completed successfully")
}
